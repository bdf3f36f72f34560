package game

import (
	"os"

	"github.com/samdwyer/slugdungeon/data"
)

// Config holds game configuration options.
type Config struct {
	// Level is the name of the embedded level to play.
	Level string
}

// ConfigFromEnv builds a Config from the environment, falling back to the
// default level when SLUGDUNGEON_LEVEL is unset.
func ConfigFromEnv() Config {
	level := os.Getenv("SLUGDUNGEON_LEVEL")
	if level == "" {
		level = data.DefaultLevel
	}
	return Config{Level: level}
}
