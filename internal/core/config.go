package core

// RuntimeConfig carries process-level settings into the session.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means derive from the clock in the platform layer
}

