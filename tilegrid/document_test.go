package tilegrid_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/delve/tilegrid"
)

type DocumentSuite struct {
	suite.Suite
	g *tilegrid.Grid
}

// SetupTest builds a small grid with every kind of per-cell payload and an
// RNG that has already been advanced.
func (s *DocumentSuite) SetupTest() {
	g, err := tilegrid.New(5, 3, 1234, tilegrid.WithGenerator("dungeon:test"))
	require.NoError(s.T(), err)
	g.FillRect(1, 1, 3, 1, 0)
	g.SetTile(2, 1, 6)
	g.SetMeta(1, 1, "room", "0")
	g.SetMeta(1, 1, "lit", "true")
	g.PlaceObject(3, 1, tilegrid.Object{ID: "potion-1", Kind: "potion", Glyph: "!"})
	g.PlaceObject(3, 1, tilegrid.Object{ID: "key", Attrs: map[string]string{"door": "north"}})
	for i := 0; i < 17; i++ {
		_ = g.Rand().Intn(100)
	}
	s.g = g
}

func (s *DocumentSuite) TestJSONRoundTrip() {
	require := require.New(s.T())
	var buf bytes.Buffer
	require.NoError(s.g.Encode(&buf, tilegrid.FormatJSON))
	require.Contains(buf.String(), `"generator_type": "dungeon:test"`)
	require.Contains(buf.String(), `"rng_position"`)

	got, err := tilegrid.Decode(&buf, tilegrid.FormatJSON)
	require.NoError(err)
	s.assertSame(got)
}

func (s *DocumentSuite) TestYAMLRoundTrip() {
	require := require.New(s.T())
	var buf bytes.Buffer
	require.NoError(s.g.Encode(&buf, tilegrid.FormatYAML))
	require.Contains(buf.String(), "generator_type: dungeon:test")

	got, err := tilegrid.Decode(&buf, tilegrid.FormatYAML)
	require.NoError(err)
	s.assertSame(got)
}

func (s *DocumentSuite) TestMarshalerInterfaces() {
	require := require.New(s.T())

	data, err := json.Marshal(s.g)
	require.NoError(err)
	var fromJSON tilegrid.Grid
	require.NoError(json.Unmarshal(data, &fromJSON))
	s.assertSame(&fromJSON)

	data, err = yaml.Marshal(s.g)
	require.NoError(err)
	var fromYAML tilegrid.Grid
	require.NoError(yaml.Unmarshal(data, &fromYAML))
	s.assertSame(&fromYAML)
}

func (s *DocumentSuite) TestFileRoundTrip() {
	require := require.New(s.T())
	dir := s.T().TempDir()
	for _, name := range []string{"level.json", "level.yaml", "level.yml"} {
		path := filepath.Join(dir, name)
		require.NoError(s.g.SaveFile(path))
		got, err := tilegrid.LoadFile(path)
		require.NoError(err, name)
		s.assertSame(got)
	}
	_, err := tilegrid.LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(err)
}

// TestLoadHugeRNGPosition rejects a replay position far past any real level
// instead of replaying it.
func (s *DocumentSuite) TestLoadHugeRNGPosition() {
	path := filepath.Join(s.T().TempDir(), "level.json")
	src := `{"width":2,"height":1,"seed":1,"grid":[[0,1]],"rng_position":1000000000000000000}`
	require.NoError(s.T(), os.WriteFile(path, []byte(src), 0o644))
	_, err := tilegrid.LoadFile(path)
	require.ErrorIs(s.T(), err, tilegrid.ErrDocumentShape)
}

// TestResumeRNG verifies that a loaded grid continues the random stream
// exactly where the saved one stopped.
func (s *DocumentSuite) TestResumeRNG() {
	require := require.New(s.T())
	var buf bytes.Buffer
	require.NoError(s.g.Encode(&buf, tilegrid.FormatJSON))
	got, err := tilegrid.Decode(&buf, tilegrid.FormatJSON)
	require.NoError(err)

	require.Equal(s.g.Rand().Position(), got.Rand().Position())
	for i := 0; i < 50; i++ {
		require.Equal(s.g.Rand().Intn(1<<20), got.Rand().Intn(1<<20), "draw %d", i)
	}
}

func (s *DocumentSuite) TestShapeErrors() {
	require := require.New(s.T())

	doc := s.g.Document()
	doc.Grid = doc.Grid[:2]
	_, err := tilegrid.FromDocument(doc)
	require.ErrorIs(err, tilegrid.ErrDocumentShape)

	doc = s.g.Document()
	doc.Grid[1] = doc.Grid[1][:4]
	_, err = tilegrid.FromDocument(doc)
	require.ErrorIs(err, tilegrid.ErrDocumentShape)

	doc = s.g.Document()
	doc.Metadata = doc.Metadata[:1]
	_, err = tilegrid.FromDocument(doc)
	require.ErrorIs(err, tilegrid.ErrDocumentShape)

	doc = s.g.Document()
	doc.Objects[2] = nil
	_, err = tilegrid.FromDocument(doc)
	require.ErrorIs(err, tilegrid.ErrDocumentShape)

	for _, pos := range []int64{-1, tilegrid.MaxRNGPosition + 1, 1e18} {
		doc = s.g.Document()
		doc.RNGPosition = pos
		_, err = tilegrid.FromDocument(doc)
		require.ErrorIs(err, tilegrid.ErrDocumentShape, "rng_position %d", pos)
	}

	doc = s.g.Document()
	doc.Width = 0
	_, err = tilegrid.FromDocument(doc)
	require.ErrorIs(err, tilegrid.ErrInvalidSize)
}

// TestOptionalSections accepts documents without metadata and objects.
func (s *DocumentSuite) TestOptionalSections() {
	require := require.New(s.T())
	doc := tilegrid.Document{
		Width:  2,
		Height: 1,
		Seed:   5,
		Grid:   [][]int{{0, 1}},
	}
	g, err := tilegrid.FromDocument(doc)
	require.NoError(err)
	require.Equal(0, g.Tile(0, 0))
	require.Equal(int64(0), g.Rand().Position())
	require.Equal(0, g.ObjectCount())
}

func (s *DocumentSuite) TestUnknownFormat() {
	var buf bytes.Buffer
	require.ErrorIs(s.T(), s.g.Encode(&buf, tilegrid.Format(9)), tilegrid.ErrUnknownFormat)
	_, err := tilegrid.Decode(&buf, tilegrid.Format(9))
	require.ErrorIs(s.T(), err, tilegrid.ErrUnknownFormat)
}

func (s *DocumentSuite) assertSame(got *tilegrid.Grid) {
	require := require.New(s.T())
	require.Equal(s.g.Document(), got.Document())
	require.Equal(s.g.Render(nil, true), got.Render(nil, true))
	v, ok := got.Meta(1, 1, "lit")
	require.True(ok)
	require.Equal("true", v)
	require.Equal("north", got.ObjectsAt(3, 1)[1].Attrs["door"])
}

func TestDocumentSuite(t *testing.T) {
	suite.Run(t, new(DocumentSuite))
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]tilegrid.Format{
		"a.json":     tilegrid.FormatJSON,
		"a.yaml":     tilegrid.FormatYAML,
		"dir/b.YML":  tilegrid.FormatYAML,
		"noext":      tilegrid.FormatJSON,
		"level.toml": tilegrid.FormatJSON,
	}
	for path, want := range cases {
		if got := tilegrid.FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %v; want %v", path, got, want)
		}
	}
}
