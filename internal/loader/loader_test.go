package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/sudoku-cli/internal/validator"
)

const goodPuzzle = `# classic example
5 3 . . 7 . . . .
6 . . 1 9 5 . . .
. 9 8 . . . . 6 .
8 . . . 6 . . . 3
4 . . 8 . 3 . . 1
7 . . . 2 . . . 6
. 6 . . . . 2 8 .
. . . 4 1 9 . . 5
. . . . 8 . . 7 9
`

func newLoader() *FileLoader { return New(validator.New()) }

func TestParseGoodPuzzle(t *testing.T) {
	b, err := newLoader().Parse(strings.NewReader(goodPuzzle))
	require.NoError(t, err)
	require.Equal(t, uint8(5), b.Values[0][0])
	require.Equal(t, uint8(9), b.Values[8][8])
	require.Zero(t, b.Values[0][2])
	require.True(t, b.Fixed[0][0], "givens are fixed")
	require.False(t, b.Fixed[0][2], "empties are not")
}

func TestParseCompactFormats(t *testing.T) {
	for name, text := range map[string]string{
		"dots":        strings.Repeat(".........\n", 9),
		"zeros":       strings.Repeat("000000000\n", 9),
		"underscores": strings.Repeat("_________\n", 9),
		"blank lines": "\n\n" + strings.Repeat(".........\n\n", 9),
	} {
		t.Run(name, func(t *testing.T) {
			b, err := newLoader().Parse(strings.NewReader(text))
			require.NoError(t, err)
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					require.Zero(t, b.Values[r][c])
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	nineDots := strings.Repeat(".........\n", 8)
	cases := []struct {
		name string
		text string
		want error
	}{
		{"too few rows", nineDots, ErrRowCount},
		{"too many rows", strings.Repeat(".........\n", 10), ErrRowCount},
		{"short row", nineDots + "........\n", ErrCellCount},
		{"long row", nineDots + "..........\n", ErrCellCount},
		{"bad rune", nineDots + "....x....\n", ErrBadCell},
		{
			"peer conflict",
			"11.......\n" + strings.Repeat(".........\n", 8),
			ErrConflict,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newLoader().Parse(strings.NewReader(tc.text))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	require.NoError(t, os.WriteFile(path, []byte(goodPuzzle), 0o644))

	b, err := newLoader().Load(path)
	require.NoError(t, err)
	require.Equal(t, uint8(7), b.Values[0][4])

	_, err = newLoader().Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
