package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"slide/game"
	"slide/searcher"

	"github.com/stretchr/testify/require"
)

func TestWriter(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	writer, err := NewWriter("unit")
	require.NoError(t, err)

	configs := []AgentConfig{
		{ID: 0, Random: true},
		{ID: 1, MaxDepth: 4, NodeBudget: 1000},
	}
	require.NoError(t, writer.WriteAgentConfigs(configs))

	now := time.Now()
	gameRecords := []GameRecord{{
		ID:    1,
		Agent: 1,
		GameMetric: GameMetric{
			StartTime:  now,
			EndTime:    now.Add(time.Second),
			Duration:   time.Second,
			TotalMoves: 2,
			Score:      20,
			MaxTile:    8,
		},
	}}
	require.NoError(t, writer.WriteGameRecords(gameRecords))

	moveRecords := []MoveRecord{{
		Game: 1,
		MoveMetric: MoveMetric{
			Step:          1,
			Move:          game.Left,
			Score:         4,
			MaxTile:       4,
			SearchMetrics: searcher.SearchMetrics{Nodes: 10, LeafEvals: 6},
		},
	}}
	require.NoError(t, writer.WriteMoveRecords(moveRecords))

	wantRows := map[string]int{
		"agent_configs.csv": 3,
		"game_records.csv":  2,
		"move_records.csv":  2,
	}
	for file, want := range wantRows {
		matches, err := filepath.Glob(filepath.Join("experiments", "unit", "*", file))
		require.NoError(t, err)
		require.Len(t, matches, 1, "Writer should create %s in the run directory", file)

		f, err := os.Open(matches[0])
		require.NoError(t, err)
		rows, err := csv.NewReader(f).ReadAll()
		f.Close()
		require.NoError(t, err)
		require.Len(t, rows, want, "Header plus one row per record in %s", file)
	}

	matches, _ := filepath.Glob(filepath.Join("experiments", "unit", "*", "move_records.csv"))
	f, err := os.Open(matches[0])
	require.NoError(t, err)
	rows, err := csv.NewReader(f).ReadAll()
	f.Close()
	require.NoError(t, err)
	require.Equal(t, "left", rows[1][2], "Moves should be written by direction name")
	require.Equal(t, "10", rows[1][6], "Search node counts should round-trip")
}
