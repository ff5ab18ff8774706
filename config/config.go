package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathviz/graph"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/shortestpath"
	"github.com/katalvlaran/pathviz/vertex"
)

// Sentinel errors for scenario loading and resolution.
var (
	// ErrUnknownFormat indicates a file extension Load cannot decode.
	ErrUnknownFormat = errors.New("config: unknown scenario format")
	// ErrInvalid indicates a scenario that failed validation.
	ErrInvalid = errors.New("config: invalid scenario")
	// ErrUnknownAlgorithm indicates an unsupported algorithm name.
	ErrUnknownAlgorithm = errors.New("config: unknown algorithm")
	// ErrMissingEndpoint indicates a scenario without a start or end vertex.
	ErrMissingEndpoint = errors.New("config: scenario needs a start and an end")
	// ErrBlockedEndpoint indicates a start or end on a blocked or out-of-grid cell.
	ErrBlockedEndpoint = errors.New("config: start and end must be open cells")
)

// Format is a scenario encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
	FormatGrid
)

// FormatOf picks the Format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".txt", ".grid", ".map":
		return FormatGrid, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Algorithm selects the heuristic of the search engine.
type Algorithm int

const (
	Dijkstra Algorithm = iota
	AStar
)

// String returns "dijkstra" or "astar".
func (a Algorithm) String() string {
	if a == AStar {
		return "astar"
	}

	return "dijkstra"
}

// ParseAlgorithm accepts "dijkstra", "astar", "a*" and "a-star", case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return Dijkstra, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Point is an optional start or end override.
type Point struct {
	X int `yaml:"x" toml:"x" json:"x"`
	Y int `yaml:"y" toml:"y" json:"y"`
}

// Scenario is the user-facing description of one search.
type Scenario struct {
	Name           string   `yaml:"name" toml:"name" json:"name"`
	Grid           []string `yaml:"grid" toml:"grid" json:"grid" validate:"required,min=1,dive,required,gridrow"`
	Algorithm      string   `yaml:"algorithm" toml:"algorithm" json:"algorithm" validate:"required,algorithm"`
	Representation string   `yaml:"representation" toml:"representation" json:"representation" validate:"required,representation"`
	Connectivity   int      `yaml:"connectivity" toml:"connectivity" json:"connectivity" validate:"oneof=4 8"`
	Delay          string   `yaml:"delay" toml:"delay" json:"delay" validate:"omitempty,duration"`
	Start          *Point   `yaml:"start,omitempty" toml:"start,omitempty" json:"start,omitempty"`
	End            *Point   `yaml:"end,omitempty" toml:"end,omitempty" json:"end,omitempty"`
}

// Default returns the built-in demo scenario.
func Default() Scenario {
	return Scenario{
		Name: "demo",
		Grid: []string{
			"S...#.....",
			".##.#.###.",
			".#..#...#.",
			".#.####.#.",
			".#......#E",
		},
		Algorithm:      "astar",
		Representation: "list",
		Connectivity:   4,
		Delay:          "50ms",
	}
}

// WithDefaults fills empty fields from Default, except Grid.
func (s Scenario) WithDefaults() Scenario {
	def := Default()
	if s.Algorithm == "" {
		s.Algorithm = def.Algorithm
	}
	if s.Representation == "" {
		s.Representation = def.Representation
	}
	if s.Connectivity == 0 {
		s.Connectivity = def.Connectivity
	}
	if s.Delay == "" {
		s.Delay = def.Delay
	}

	return s
}

// StepDelay returns the parsed delay, or 0 when unset or malformed.
func (s Scenario) StepDelay() time.Duration {
	d, err := time.ParseDuration(s.Delay)
	if err != nil || d < 0 {
		return 0
	}

	return d
}

// Validate checks the struct tags and the custom grid, algorithm,
// representation and duration rules.
func (s Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Parse decodes data in the given format, applies defaults and validates.
func Parse(data []byte, format Format) (Scenario, error) {
	var s Scenario
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return Scenario{}, fmt.Errorf("config: decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &s)
		if err != nil {
			return Scenario{}, fmt.Errorf("config: decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Scenario{}, fmt.Errorf("config: decode toml: unknown keys %v", undecoded)
		}
	case FormatGrid:
		for _, line := range strings.Split(string(data), "\n") {
			if line = strings.TrimSpace(line); line != "" {
				s.Grid = append(s.Grid, line)
			}
		}
	default:
		return Scenario{}, ErrUnknownFormat
	}

	s = s.WithDefaults()
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (Scenario, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Scenario{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("config: %w", err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return Scenario{}, err
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return s, nil
}

// Plan is a resolved scenario ready to search.
type Plan struct {
	Name           string
	Grid           *gridgraph.Grid
	Graph          graph.Graph[vertex.Name]
	Start, End     vertex.Name
	Algorithm      Algorithm
	Representation graph.Representation
	Delay          time.Duration
}

// Resolve validates s, builds its grid and graph and settles the endpoints.
func (s Scenario) Resolve() (*Plan, error) {
	s = s.WithDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	algo, err := ParseAlgorithm(s.Algorithm)
	if err != nil {
		return nil, err
	}
	rep, err := graph.ParseRepresentation(s.Representation)
	if err != nil {
		return nil, err
	}
	conn := gridgraph.Conn4
	if s.Connectivity == 8 {
		conn = gridgraph.Conn8
	}

	gr, err := gridgraph.Parse(strings.Join(s.Grid, "\n"), gridgraph.GridOptions{Conn: conn})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	start, okS := gr.Start()
	end, okE := gr.End()
	if s.Start != nil {
		start, okS = vertex.At(s.Start.X, s.Start.Y), true
	}
	if s.End != nil {
		end, okE = vertex.At(s.End.X, s.End.Y), true
	}
	if !okS || !okE {
		return nil, ErrMissingEndpoint
	}
	ps, aS := gr.Cell(start)
	pe, aE := gr.Cell(end)
	if !aS || !aE {
		return nil, fmt.Errorf("%w: start=%s end=%s", ErrBlockedEndpoint, start, end)
	}
	gr = gr.WithMarkers(ps, pe)

	g, err := gr.Build(rep)
	if err != nil {
		return nil, err
	}

	return &Plan{
		Name:           s.Name,
		Grid:           gr,
		Graph:          g,
		Start:          start,
		End:            end,
		Algorithm:      algo,
		Representation: rep,
		Delay:          s.StepDelay(),
	}, nil
}

// NewEngine returns a fresh single-use engine for the plan.
func (p *Plan) NewEngine(opts ...shortestpath.Option[vertex.Name]) *shortestpath.Engine[vertex.Name] {
	if p.Algorithm == AStar {
		return shortestpath.NewAStar(p.Graph, p.Start, p.End, opts...)
	}

	return shortestpath.NewDijkstra(p.Graph, p.Start, p.End, opts...)
}
