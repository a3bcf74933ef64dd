package qresult

// Config controls how result payloads are decoded and read.
type Config struct {
	// StrictHeaders surfaces header decode failures as errors instead of
	// dropping the header and formatting with raw state keys.
	StrictHeaders bool
	// ValidateShots rejects experiment records reporting a negative shot
	// count at construction time.
	ValidateShots bool
}

func NewConfig() *Config {
	return &Config{}
}
