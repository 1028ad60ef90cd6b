package searcher

import (
	"math"
	"time"

	"slide/game"
)

// Hyperparameters for the adversarial search

const DefaultMaxDepth = 4
const DefaultTarget = 2048

const maxUtility = math.MaxInt

// SpawnOutcome weights a tile value the insertion adversary may play.
type SpawnOutcome struct {
	Value  int
	Weight int
}

// DefaultSpawnModel keeps only the dominant spawn outcome. The rare 4 is
// omitted from the expectation for speed; the real spawn policy in game.Rules
// still produces it.
var DefaultSpawnModel = []SpawnOutcome{{Value: 2, Weight: 9}}

type Option func(m *Minimax)

// Minimax selects shift directions by depth-bounded adversarial search with
// alpha-beta pruning, modeling tile insertion as a minimizing adversary whose
// value choice is an expectation.
type Minimax struct {
	maxDepth   int
	target     int
	nodeBudget int
	spawns     []SpawnOutcome
	evaluator  Evaluator
	metrics    collector
}

func WithMaxDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

func WithTarget(target int) Option {
	return func(m *Minimax) {
		if target > 0 {
			m.target = target
		}
	}
}

func WithWeights(weights Weights) Option {
	return func(m *Minimax) {
		m.evaluator = NewEvaluator(weights)
	}
}

func WithSpawnModel(spawns []SpawnOutcome) Option {
	return func(m *Minimax) {
		if len(spawns) > 0 {
			m.spawns = spawns
		}
	}
}

// WithNodeBudget caps the number of search nodes per move; once exceeded the
// remaining recursion cuts off to static evaluation.
func WithNodeBudget(nodes int) Option {
	return func(m *Minimax) {
		if nodes > 0 {
			m.nodeBudget = nodes
		}
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		maxDepth:  DefaultMaxDepth,
		target:    DefaultTarget,
		spawns:    DefaultSpawnModel,
		evaluator: NewEvaluator(DefaultWeights),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Target returns the tile value treated as a terminal state.
func (m *Minimax) Target() int {
	return m.target
}

// ChooseMove runs a fresh search from board and returns the best shift
// direction with its utility. The direction is game.NoDirection when the
// board has no legal move or is already terminal.
func (m *Minimax) ChooseMove(board *game.Board) (game.Direction, int, SearchMetrics) {
	m.metrics.reset()
	start := time.Now()
	move, utility := m.maximize(board, 0, -maxUtility, maxUtility)
	return move, utility, m.metrics.complete(time.Since(start))
}

// cutoff is the shared leaf condition of both plies.
func (m *Minimax) cutoff(board *game.Board, depth int) bool {
	if depth == m.maxDepth || board.MaxTile() == m.target {
		return true
	}
	return m.nodeBudget > 0 && m.metrics.nodes > m.nodeBudget
}

func (m *Minimax) leaf(board *game.Board) int {
	m.metrics.leafEvals++
	return m.evaluator.Evaluate(board)
}
