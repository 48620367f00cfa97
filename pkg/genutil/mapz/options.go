package mapz

import "github.com/rs/zerolog"

//go:generate go run github.com/ecordell/optgen -output zz_generated.options.go . Config

// Config holds the sizing hints used when constructing a MultiMap.
type Config struct {
	// KeyCapacity is the initial capacity of the map of keys.
	KeyCapacity uint32 `debugmap:"visible" default:"12"`

	// ValueCapacity is the initial capacity of each value set created on
	// demand for a new key.
	ValueCapacity uint32 `debugmap:"visible"`
}

// MarshalZerologObject logs the configured capacities.
func (c *Config) MarshalZerologObject(e *zerolog.Event) {
	e.
		Uint32("keyCapacity", c.KeyCapacity).
		Uint32("valueCapacity", c.ValueCapacity)
}
