package game

import "golang.org/x/exp/rand"

// Rules owns the parts of the game the search's opponent model abstracts
// away: the real spawn distribution, the target tile, and game-over
// detection.
type Rules interface {
	TargetTile() int
	InitialTiles() int
	SpawnValue(rng *rand.Rand) int
	GameOver(b *Board) bool
}

// StandardRules implements the usual 2048 rules: target 2048, two starting
// tiles, spawns of 2 (90%) and 4 (10%).
type StandardRules struct {
	Target     int
	StartTiles int
	FourChance float64
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Target:     2048,
		StartTiles: 2,
		FourChance: 0.1,
	}
}

func (sr *StandardRules) TargetTile() int {
	return sr.Target
}

func (sr *StandardRules) InitialTiles() int {
	return sr.StartTiles
}

func (sr *StandardRules) SpawnValue(rng *rand.Rand) int {
	if rng.Float64() < sr.FourChance {
		return 4
	}
	return 2
}

func (sr *StandardRules) GameOver(b *Board) bool {
	return len(b.AvailableMoves()) == 0
}
