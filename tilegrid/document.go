package tilegrid

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects a document encoding.
type Format int

const (
	// FormatJSON encodes documents with encoding/json.
	FormatJSON Format = iota
	// FormatYAML encodes documents with gopkg.in/yaml.v3.
	FormatYAML
)

// FormatFromPath picks FormatYAML for .yaml/.yml files and FormatJSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// MaxRNGPosition bounds Document.RNGPosition. Restoring replays every step,
// so larger positions are rejected rather than replayed.
const MaxRNGPosition = 1 << 28

// Document is the serialized form of a Grid. Per-cell fields are row-major
// rows indexed [y][x]; empty cells hold {} and [] respectively.
type Document struct {
	Width         int                   `json:"width" yaml:"width"`
	Height        int                   `json:"height" yaml:"height"`
	Seed          int64                 `json:"seed" yaml:"seed"`
	Grid          [][]int               `json:"grid" yaml:"grid"`
	Metadata      [][]map[string]string `json:"metadata" yaml:"metadata"`
	Objects       [][][]Object          `json:"objects" yaml:"objects"`
	GeneratorType string                `json:"generator_type" yaml:"generator_type"`
	RNGPosition   int64                 `json:"rng_position" yaml:"rng_position"`
}

// Document snapshots the grid into its serialized form.
// Complexity: O(W·H).
func (g *Grid) Document() Document {
	doc := Document{
		Width:         g.width,
		Height:        g.height,
		Seed:          g.seed,
		Grid:          g.Rows(),
		Metadata:      make([][]map[string]string, g.height),
		Objects:       make([][][]Object, g.height),
		GeneratorType: g.generator,
		RNGPosition:   g.rng.Position(),
	}
	for y := 0; y < g.height; y++ {
		metaRow := make([]map[string]string, g.width)
		objRow := make([][]Object, g.width)
		for x := 0; x < g.width; x++ {
			i := g.index(x, y)
			m := make(map[string]string, len(g.meta[i]))
			for k, v := range g.meta[i] {
				m[k] = v
			}
			metaRow[x] = m
			objRow[x] = append(make([]Object, 0, len(g.objects[i])), g.objects[i]...)
		}
		doc.Metadata[y] = metaRow
		doc.Objects[y] = objRow
	}
	return doc
}

// FromDocument rebuilds a Grid from doc. The RNG resumes at doc.RNGPosition.
// Metadata and Objects may be omitted; when present they must match the grid shape.
// Returns ErrInvalidSize or ErrDocumentShape on malformed input, including
// an RNGPosition outside [0, MaxRNGPosition].
func FromDocument(doc Document) (*Grid, error) {
	g, err := New(doc.Width, doc.Height, doc.Seed, WithGenerator(doc.GeneratorType))
	if err != nil {
		return nil, err
	}
	if doc.RNGPosition < 0 || doc.RNGPosition > MaxRNGPosition {
		return nil, fmt.Errorf("%w: rng_position %d outside [0, %d]", ErrDocumentShape, doc.RNGPosition, MaxRNGPosition)
	}
	if len(doc.Grid) != doc.Height {
		return nil, fmt.Errorf("%w: grid has %d rows, height is %d", ErrDocumentShape, len(doc.Grid), doc.Height)
	}
	for y, row := range doc.Grid {
		if len(row) != doc.Width {
			return nil, fmt.Errorf("%w: grid row %d has %d cells, width is %d", ErrDocumentShape, y, len(row), doc.Width)
		}
		copy(g.cells[y*g.width:(y+1)*g.width], row)
	}
	if err = checkShape("metadata", len(doc.Metadata), doc.Width, doc.Height, func(y int) int { return len(doc.Metadata[y]) }); err != nil {
		return nil, err
	}
	if err = checkShape("objects", len(doc.Objects), doc.Width, doc.Height, func(y int) int { return len(doc.Objects[y]) }); err != nil {
		return nil, err
	}
	for y, row := range doc.Metadata {
		for x, m := range row {
			for k, v := range m {
				g.SetMeta(x, y, k, v)
			}
		}
	}
	for y, row := range doc.Objects {
		for x, objs := range row {
			for _, o := range objs {
				g.PlaceObject(x, y, o)
			}
		}
	}
	if doc.RNGPosition > 0 {
		g.rng = RestoreRNG(doc.Seed, doc.RNGPosition)
	}
	return g, nil
}

// checkShape validates an optional per-cell section: absent, or exactly height rows of width.
func checkShape(name string, rows, width, height int, rowLen func(y int) int) error {
	if rows == 0 {
		return nil
	}
	if rows != height {
		return fmt.Errorf("%w: %s has %d rows, height is %d", ErrDocumentShape, name, rows, height)
	}
	for y := 0; y < rows; y++ {
		if n := rowLen(y); n != width {
			return fmt.Errorf("%w: %s row %d has %d cells, width is %d", ErrDocumentShape, name, y, n, width)
		}
	}
	return nil
}

// Encode writes the grid document to w in format f.
func (g *Grid) Encode(w io.Writer, f Format) error {
	doc := g.Document()
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
}

// Decode reads a grid document in format f from r.
func Decode(r io.Reader, f Format) (*Grid, error) {
	var doc Document
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("tilegrid: decoding json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("tilegrid: decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	return FromDocument(doc)
}

// SaveFile writes the grid to path, choosing the format by extension.
func (g *Grid) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tilegrid: saving %s: %w", path, err)
	}
	if err = g.Encode(f, FormatFromPath(path)); err != nil {
		_ = f.Close()
		return fmt.Errorf("tilegrid: saving %s: %w", path, err)
	}
	return f.Close()
}

// LoadFile reads a grid from path, choosing the format by extension.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilegrid: loading %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("tilegrid: loading %s: %w", path, err)
	}
	return g, nil
}

// MarshalJSON implements json.Marshaler via Document.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Document())
}

// UnmarshalJSON implements json.Unmarshaler via FromDocument.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	ng, err := FromDocument(doc)
	if err != nil {
		return err
	}
	*g = *ng
	return nil
}

// MarshalYAML implements yaml.Marshaler via Document.
func (g *Grid) MarshalYAML() (interface{}, error) {
	return g.Document(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler via FromDocument.
func (g *Grid) UnmarshalYAML(value *yaml.Node) error {
	var doc Document
	if err := value.Decode(&doc); err != nil {
		return err
	}
	ng, err := FromDocument(doc)
	if err != nil {
		return err
	}
	*g = *ng
	return nil
}
