package core

// RuntimeConfig describes the terminal a session renders into.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for food placement; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// Fits reports whether a w×h area fits inside the configured screen.
func (c RuntimeConfig) Fits(w, h int) bool {
	return w <= c.ScreenW && h <= c.ScreenH
}
