package house

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ashgrove/heatflow-core/internal/geometry"
)

// HouseConfig describes the static structure of one house: its rooms,
// the holes connecting them, and the physical simulation parameters.
type HouseConfig struct {
	AmbientTempC float64         `yaml:"ambient_temp_c" json:"ambient_temp_c"`
	TimestepS    float64         `yaml:"timestep_s" json:"timestep_s"`
	Rooms        []geometry.Room `yaml:"rooms" json:"rooms"`
	Holes        []geometry.Hole `yaml:"holes" json:"holes"`
}

// Validate checks the whole house configuration.
//
// Per-field checks run first: every room and hole validates itself and
// the timestep must be positive. Whole-object invariants follow: room
// IDs must be pairwise unique and no two rooms' bounding boxes may
// overlap. The overlap check is O(n²) over the room count, which is
// fine for realistic houses.
func (c *HouseConfig) Validate() error {
	for i := range c.Rooms {
		if err := c.Rooms[i].Validate(); err != nil {
			return err
		}
	}
	for i := range c.Holes {
		if err := c.Holes[i].Validate(); err != nil {
			return err
		}
	}
	if c.TimestepS <= 0 {
		return fmt.Errorf("%w (got %v)", ErrNonPositiveTimestep, c.TimestepS)
	}

	seen := make(map[string]bool, len(c.Rooms))
	for i := range c.Rooms {
		id := c.Rooms[i].ID
		if seen[id] {
			return fmt.Errorf("%w: %q", ErrDuplicateRoomID, id)
		}
		seen[id] = true
	}

	for i := range c.Rooms {
		for j := i + 1; j < len(c.Rooms); j++ {
			if c.Rooms[i].OverlapsWith(&c.Rooms[j]) {
				return fmt.Errorf("%w: %q and %q", ErrRoomsOverlap, c.Rooms[i].ID, c.Rooms[j].ID)
			}
		}
	}
	return nil
}

// SimulationConfig is the top-level simulation document: the house plus
// solver control parameters.
type SimulationConfig struct {
	House                HouseConfig `yaml:"house" json:"house"`
	MaxIterations        int         `yaml:"max_iterations" json:"max_iterations"`
	ConvergenceThreshold float64     `yaml:"convergence_threshold" json:"convergence_threshold"`
	OutputInterval       int         `yaml:"output_interval" json:"output_interval"`
}

// Validate checks the solver parameters and the embedded house config.
func (c *SimulationConfig) Validate() error {
	if err := c.House.Validate(); err != nil {
		return err
	}
	if c.MaxIterations <= 0 {
		return fmt.Errorf("%w (got %d)", ErrNonPositiveIterations, c.MaxIterations)
	}
	if c.ConvergenceThreshold <= 0 {
		return fmt.Errorf("%w (got %v)", ErrNonPositiveThreshold, c.ConvergenceThreshold)
	}
	if c.OutputInterval <= 0 {
		return fmt.Errorf("%w (got %d)", ErrNonPositiveInterval, c.OutputInterval)
	}
	return nil
}

// ConfigJSON serializes the accepted configuration for storage as the
// config_json blob of a simulation run.
func (c *SimulationConfig) ConfigJSON() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("serializing simulation config: %w", err)
	}
	return string(b), nil
}

// Parse decodes and validates a simulation config from YAML.
func Parse(data []byte) (*SimulationConfig, error) {
	cfg := defaultSimulationConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing simulation config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating simulation config: %w", err)
	}
	return cfg, nil
}

// Load reads and validates a simulation config from a YAML file.
func Load(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading simulation config: %w", err)
	}
	return Parse(data)
}

// defaultSimulationConfig carries the solver defaults applied before
// the YAML document is decoded over them.
func defaultSimulationConfig() *SimulationConfig {
	return &SimulationConfig{
		House: HouseConfig{
			TimestepS: 1.0,
		},
		MaxIterations:        1000,
		ConvergenceThreshold: 1e-6,
		OutputInterval:       10,
	}
}
