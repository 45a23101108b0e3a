package core

// RuntimeConfig contains configuration passed to the engine and platform at startup.
// The platform uses this to size the screen buffer and drive the tick loop.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform wakeups per second (default 100)
	Seed     int64 // RNG seed for deterministic row generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 100,
		Seed:     0, // 0 means use current time in platform layer
	}
}
