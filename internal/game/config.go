package game

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config holds the fixed-for-the-session table configuration
type Config struct {
	Ante     int `hcl:"ante,optional"`
	PotLimit int `hcl:"pot_limit,optional"`
	// HumanSeat is the seat index controlled by the user; -1 means every
	// seat is played by the opponent policy (simulation mode).
	HumanSeat int `hcl:"human_seat,optional"`

	// Opponent pacing. Not a correctness knob; zero means defaults.
	ThinkDelayMS int `hcl:"think_delay_ms,optional"`
	ActDelayMS   int `hcl:"act_delay_ms,optional"`

	Seats []SeatConfig `hcl:"seat,block"`
}

// SeatConfig defines one seat at the table
type SeatConfig struct {
	Name    string `hcl:"name,label"`
	Avatar  string `hcl:"avatar,optional"`
	Balance int    `hcl:"balance,optional"`
}

const (
	defaultAnte     = 100
	defaultPotLimit = 10000
	defaultBalance  = 10000

	defaultThinkDelay = 1200 * time.Millisecond
	defaultActDelay   = 500 * time.Millisecond
)

// DefaultConfig returns the standard five-seat table: ante 100, pot limit
// 10,000, every seat starting with 10,000, human in seat 0.
func DefaultConfig() Config {
	return Config{
		Ante:      defaultAnte,
		PotLimit:  defaultPotLimit,
		HumanSeat: 0,
		Seats: []SeatConfig{
			{Name: "You", Balance: defaultBalance},
			{Name: "Rohan", Balance: defaultBalance},
			{Name: "Priya", Balance: defaultBalance},
			{Name: "Vikram", Balance: defaultBalance},
			{Name: "Anjali", Balance: defaultBalance},
		},
	}
}

// LoadConfig loads table configuration from an HCL file, falling back to
// DefaultConfig when the file does not exist.
func LoadConfig(filename string) (Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Absent optional attributes keep their zero values, so a file that
	// omits human_seat puts the user in seat 0; -1 must be explicit.
	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Ante == 0 {
		c.Ante = defaultAnte
	}
	if c.PotLimit == 0 {
		c.PotLimit = defaultPotLimit
	}
	for i := range c.Seats {
		if c.Seats[i].Balance == 0 {
			c.Seats[i].Balance = defaultBalance
		}
	}
}

// Validate checks the configuration for structural problems
func (c Config) Validate() error {
	if len(c.Seats) < 2 {
		return fmt.Errorf("table needs at least 2 seats, got %d", len(c.Seats))
	}
	if c.Ante <= 0 {
		return fmt.Errorf("ante must be positive, got %d", c.Ante)
	}
	if c.PotLimit <= c.Ante*len(c.Seats) {
		return fmt.Errorf("pot limit %d must exceed the combined antes %d", c.PotLimit, c.Ante*len(c.Seats))
	}
	if c.HumanSeat < -1 || c.HumanSeat >= len(c.Seats) {
		return fmt.Errorf("human_seat %d out of range for %d seats", c.HumanSeat, len(c.Seats))
	}
	return nil
}

// ThinkDelay returns the stage-one opponent delay
func (c Config) ThinkDelay() time.Duration {
	if c.ThinkDelayMS > 0 {
		return time.Duration(c.ThinkDelayMS) * time.Millisecond
	}
	return defaultThinkDelay
}

// ActDelay returns the stage-two opponent delay
func (c Config) ActDelay() time.Duration {
	if c.ActDelayMS > 0 {
		return time.Duration(c.ActDelayMS) * time.Millisecond
	}
	return defaultActDelay
}
