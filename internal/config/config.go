// Package config loads the game_forge.yaml data model: a global thread
// count plus, per named game engine, an output sink and a set of
// difficulty classes. The loader is a hand-rolled subset parser (see
// yaml.go), not a general YAML library — the schema is small and fixed,
// and deliberately replaceable per the system's module boundary.
package config

import "strconv"

// Difficulty is a named bag of key/value properties plus the target
// count of accepted boards. Recognized keys (columns, rows,
// mines.minimum, mines.maximum, tags, max_time) are looked up through
// GetInt/GetString like any other property; engines decide their own
// defaults.
type Difficulty struct {
	Name       string
	Count      int
	Properties map[string]string
}

// GetInt returns the property as an int, or def if the key is absent
// or not a valid integer.
func (d *Difficulty) GetInt(key string, def int) int {
	v, ok := d.Properties[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// GetString returns the property verbatim, or def if absent.
func (d *Difficulty) GetString(key, def string) string {
	v, ok := d.Properties[key]
	if !ok {
		return def
	}
	return v
}

// EngineConfig is one named game engine's output sink and difficulty
// list, processed as a unit in configuration order.
type EngineConfig struct {
	Name         string
	Output       string
	Append       bool
	Difficulties []Difficulty
}

// Config is the fully parsed game_forge.yaml.
type Config struct {
	Threads int
	Games   []EngineConfig
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	return parseFile(path)
}
