package app

import "strconv"

// Config represents the command-line parameters for the application. It is
// filled by goconfig from flags, environment variables and an optional JSON
// file.
type Config struct {
	Sim         string  `usage:"simulation to run"`
	Width       int     `usage:"grid width in cells"`
	Height      int     `usage:"grid height in cells"`
	Density     float64 `usage:"probability that a cell starts alive"`
	Seed        int64   `usage:"seed for simulation reset"`
	Generations int     `usage:"generations to print in headless mode (0 runs until interrupted)"`
	TPS         int     `usage:"ticks per second (0 disables pacing in headless mode)"`
	Scale       int     `usage:"pixel scale multiplier for the viewer"`
	Quiet       bool    `usage:"only print the final generation"`
}

// Default returns a Config populated with sensible defaults.
func Default() Config {
	return Config{
		Sim:         "life",
		Width:       40,
		Height:      20,
		Density:     0.3,
		Seed:        42,
		Generations: 10,
		TPS:         10,
		Scale:       8,
	}
}

// SimOptions converts the config into the key/value map sim factories read.
func (c Config) SimOptions() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}
