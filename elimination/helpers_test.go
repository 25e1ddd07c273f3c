package elimination_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pennant/elimination"
	"github.com/katalvlaran/pennant/schedule"
)

// fixtures lists every league under testdata with the expected certificate
// per eliminated team; teams not listed are not eliminated.
var fixtures = map[string]map[string][]string{
	"teams1.txt": {},
	"teams2.txt": {
		"Hopper": {"Turing"},
	},
	"teams4.txt": {
		"Philadelphia": {"Atlanta", "New_York"},
		"Montreal":     {"Atlanta"},
	},
	"teams4a.txt": {
		"Montreal": {"Atlanta", "Philadelphia", "New_York"},
	},
	"teams5.txt": {
		"Detroit": {"New_York", "Baltimore", "Boston", "Toronto"},
	},
}

func loadRepo(t testing.TB, file string) *schedule.Repository {
	t.Helper()
	repo, err := schedule.LoadFile(filepath.Join("..", "testdata", file))
	require.NoError(t, err)

	return repo
}

func loadEngine(t testing.TB, file string, opts ...elimination.Option) *elimination.Engine {
	t.Helper()

	return elimination.NewEngine(loadRepo(t, file), opts...)
}
