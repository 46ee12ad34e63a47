package animation

import "time"

// DefaultConfig returns the mascot timings used by the desktop window.
func DefaultConfig() Config {
	return Config{
		BlinkClosedDuration: Range{
			Min: 150 * time.Millisecond,
			Max: 200 * time.Millisecond,
		},
		BlinkInterval: Range{
			Min: 3 * time.Second,
			Max: 8 * time.Second,
		},
		DoubleBlinkChance: 0.12,
		DoubleBlinkGap: Range{
			Min: 50 * time.Millisecond,
			Max: 100 * time.Millisecond,
		},
		WaterFrame:    400 * time.Millisecond,
		WaterDuration: 6 * time.Second,
	}
}
