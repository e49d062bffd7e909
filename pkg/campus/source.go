package campus

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrUnsupportedFormat = errors.New("unsupported campus file format")

// Bounds. geographic extent of the campus map, used to crop the mercator projection.
type Bounds struct {
	LeftLon   float64 `json:"left_lon" hcl:"left_lon"`
	RightLon  float64 `json:"right_lon" hcl:"right_lon"`
	BottomLat float64 `json:"bottom_lat" hcl:"bottom_lat"`
}

type SourceVertex struct {
	ID            string  `json:"id"`
	Name          string  `json:"name,omitempty"`
	Class         string  `json:"class,omitempty"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	Vulnerability float64 `json:"vulnerability"`
}

// Source. campus as it is stored on disk: places and the walkways between them. edges carry no cost,
// costs are derived from the projected positions when the graph is built.
type Source struct {
	Name     string         `json:"name,omitempty"`
	Bounds   *Bounds        `json:"bounds,omitempty"`
	Vertices []SourceVertex `json:"vertices"`
	Edges    [][2]string    `json:"edges"`
}

func NewSource(name string) *Source {
	return &Source{
		Name:     name,
		Vertices: make([]SourceVertex, 0),
		Edges:    make([][2]string, 0),
	}
}

func (s *Source) AddVertex(v SourceVertex) {
	s.Vertices = append(s.Vertices, v)
}

func (s *Source) AddEdge(a, b string) {
	s.Edges = append(s.Edges, [2]string{a, b})
}

// GetBounds. explicit bounds of the source, or the extent of its vertices when none were given.
func (s *Source) GetBounds() (Bounds, error) {
	if s.Bounds != nil {
		return *s.Bounds, nil
	}
	if len(s.Vertices) == 0 {
		return Bounds{}, fmt.Errorf("campus %q has no vertices", s.Name)
	}

	b := Bounds{
		LeftLon:   s.Vertices[0].Lon,
		RightLon:  s.Vertices[0].Lon,
		BottomLat: s.Vertices[0].Lat,
	}
	for _, v := range s.Vertices[1:] {
		if v.Lon < b.LeftLon {
			b.LeftLon = v.Lon
		}
		if v.Lon > b.RightLon {
			b.RightLon = v.Lon
		}
		if v.Lat < b.BottomLat {
			b.BottomLat = v.Lat
		}
	}
	if b.RightLon == b.LeftLon {
		// all vertices on one meridian
		b.RightLon = b.LeftLon + 1e-6
	}
	return b, nil
}

// Open reads a campus file. the format is chosen by extension: .json, .hcl or a bzip2 snapshot (.bz2).
func Open(filename string) (*Source, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".json":
		f, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadJSON(f)
	case ".hcl":
		return ReadHCLFile(filename)
	case ".bz2":
		return ReadSnapshot(filename)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

func ReadJSON(r io.Reader) (*Source, error) {
	var src Source
	if err := json.NewDecoder(r).Decode(&src); err != nil {
		return nil, fmt.Errorf("decode campus json: %w", err)
	}
	return &src, nil
}

func WriteJSON(w io.Writer, src *Source) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(src)
}
