package maps

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/mapcolor/internal/core"
)

// letterBorders lists every border of b as sorted letter pairs like "NQ".
func letterBorders(t *testing.T, b *Board) []string {
	t.Helper()
	var out []string
	for _, r := range b.Regions() {
		ns, err := b.Graph().Neighbors(r)
		require.NoError(t, err)
		for _, n := range ns {
			pair := []rune{b.Letter(r), b.Letter(n)}
			if pair[0] < pair[1] {
				out = append(out, string(pair))
			}
		}
	}
	sort.Strings(out)
	return out
}

func TestGridBoard(t *testing.T) {
	b := GridBoard("normal", "Normal", 6)

	assert.True(t, b.IsGrid())
	assert.Equal(t, 36, b.RegionCount())
	assert.Equal(t, 60, b.Graph().BorderCount())

	r, ok := b.RegionAt(core.C(3, 2))
	require.True(t, ok)
	assert.Equal(t, core.C(3, 2), r)
	assert.Equal(t, []core.Coord{core.C(3, 2)}, b.Cells(r))
	assert.Equal(t, "(3,2)", b.Label(r))

	_, ok = b.RegionAt(core.C(6, 0))
	assert.False(t, ok)
}

func TestParseAustralia(t *testing.T) {
	b, err := Builtin("australia")
	require.NoError(t, err)

	assert.Equal(t, "Australia", b.Name)
	assert.Equal(t, 8, b.Width)
	assert.Equal(t, 8, b.Height)
	assert.False(t, b.IsGrid())
	assert.Equal(t, 7, b.RegionCount())

	assert.Equal(t, []string{
		"EQ", "ES", "EV", "NQ", "NS", "NW", "QS", "SV", "SW", "TV",
	}, letterBorders(t, b))

	sa, ok := b.RegionAt(core.C(4, 5))
	require.True(t, ok)
	assert.Equal(t, core.C(3, 2), sa, "anchor is the first cell row-major")
	assert.Equal(t, "South Australia", b.Label(sa))
	assert.Equal(t, 'S', b.Letter(sa))
	assert.Len(t, b.Cells(sa), 11)

	d, err := b.Graph().Degree(sa)
	require.NoError(t, err)
	assert.Equal(t, 5, d)
	assert.Equal(t, 5, b.Graph().MaxDegree())

	_, ok = b.RegionAt(core.C(0, 6))
	assert.False(t, ok, "water")
	assert.True(t, b.SameRegion(core.C(0, 0), core.C(2, 3)))
	assert.False(t, b.SameRegion(core.C(0, 0), core.C(3, 0)))
}

func TestParseWheel(t *testing.T) {
	b, err := Builtin("wheel")
	require.NoError(t, err)

	assert.Equal(t, 6, b.RegionCount())
	assert.Equal(t, []string{
		"AB", "AE", "AH", "BC", "BH", "CD", "CH", "DE", "DH", "EH",
	}, letterBorders(t, b))

	hub, ok := b.RegionAt(core.C(2, 2))
	require.True(t, ok)
	assert.Equal(t, "Hub", b.Label(hub))
	d, _ := b.Graph().Degree(hub)
	assert.Equal(t, 5, d)
}

func TestBuiltinsSorted(t *testing.T) {
	boards, err := Builtins()
	require.NoError(t, err)

	var ids []string
	for _, b := range boards {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"australia", "wheel"}, ids)

	_, err = Builtin("atlantis")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"missing id", "layout: [\"A\"]", ErrMissingID},
		{"no rows", "id: x", ErrEmptyLayout},
		{"all water", "id: x\nlayout: [\"..\", \". \"]", ErrEmptyLayout},
		{"ragged", "id: x\nlayout: [\"AB\", \"A\"]", ErrRaggedLayout},
		{"split", "id: x\nlayout: [\"ABA\"]", ErrSplitRegion},
		{"diagonal split", "id: x\nlayout: [\"A.\", \".A\"]", ErrSplitRegion},
		{"unknown border", "id: x\nlayout: [\"AB\"]\nborders: [[A, Z]]", ErrUnknownRegion},
		{"long border name", "id: x\nlayout: [\"AB\"]\nborders: [[AB, A]]", ErrUnknownRegion},
		{"unknown legend", "id: x\nlayout: [\"AB\"]\nlegend: {Q: Nowhere}", ErrUnknownRegion},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.yaml))
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := ParseYAML([]byte("id: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml unmarshal")
}

func TestParseNameDefaultsToID(t *testing.T) {
	b, err := ParseYAML([]byte("id: solo\nlayout: [\"A\"]"))
	require.NoError(t, err)
	assert.Equal(t, "solo", b.Name)
	assert.Equal(t, 1, b.RegionCount())
	assert.Equal(t, "A", b.Label(core.C(0, 0)))
}

func TestLoaderLoadAll(t *testing.T) {
	var skipped []string
	l := NewLoader("testdata")
	l.OnSkip = func(path string, err error) {
		skipped = append(skipped, filepath.Base(path))
		assert.ErrorIs(t, err, ErrRaggedLayout)
	}

	boards, err := l.LoadAll()
	require.NoError(t, err)
	require.Len(t, boards, 2)
	assert.Equal(t, "islands", boards[0].ID)
	assert.Equal(t, "triangle", boards[1].ID)
	assert.Equal(t, []string{"broken.yaml"}, skipped)

	islands := boards[0]
	assert.Equal(t, filepath.Join("testdata", "islands.yml"), islands.FilePath)
	assert.Equal(t, 1, islands.Graph().BorderCount(), "declared border joins the islands")
}

func TestLoaderLoadByID(t *testing.T) {
	b, err := NewLoader("testdata").LoadByID("triangle")
	require.NoError(t, err)
	assert.Equal(t, 3, b.RegionCount())
	assert.Equal(t, 3, b.Graph().BorderCount())

	_, err = NewLoader("testdata").LoadByID("missing")
	assert.Error(t, err)
}

func TestLoaderMissingRoot(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "line.yaml")
	require.NoError(t, os.WriteFile(p, []byte("id: line\nlayout: [\"ABC\"]\n"), 0o644))

	b, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, p, b.FilePath)
	assert.Equal(t, 2, b.Graph().BorderCount())

	txt := filepath.Join(dir, "line.txt")
	require.NoError(t, os.WriteFile(txt, []byte("id: line"), 0o644))
	_, err = LoadFile(txt)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported extension"))

	_, err = LoadFile(filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}
