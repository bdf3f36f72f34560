package data

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultLevel is the level loaded when none is configured.
const DefaultLevel = "dungeon"

// ReadLevel returns the raw bytes of a named embedded level.
func ReadLevel(name string) ([]byte, error) {
	raw, err := levelFS.ReadFile(name + ".txt")
	if err != nil {
		return nil, fmt.Errorf("data: unknown level %q: %w", name, err)
	}
	return raw, nil
}

// MustReadLevel returns a named embedded level, panicking on error.
func MustReadLevel(name string) []byte {
	raw, err := ReadLevel(name)
	if err != nil {
		panic(err)
	}
	return raw
}

// Levels lists the names of all embedded levels, sorted.
func Levels() []string {
	entries, err := levelFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}
