package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/roadjump.yaml
var defaultYAML []byte

// Default returns the hard-coded configuration, used when the embedded
// YAML cannot be parsed.
func Default() Config {
	return Config{
		Road: RoadConfig{
			Length:   10,
			TileSize: 4,
		},
		Input: InputConfig{
			EnableDelay: 100 * time.Millisecond,
		},
		Player: PlayerConfig{
			JumpTicks: 8,
		},
		TickRate: 30,
		Sim: SimConfig{
			Runs:   20,
			Policy: "random",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
