// Package config provides the configuration service for the textchunk CLI.
// Values are merged from defaults, an optional YAML file, environment
// variables (TEXTCHUNK_ prefix), and CLI flags, in that precedence order,
// then validated.
package config

type Config struct {
	Locale string      `koanf:"locale" validate:"required,bcp47_language_tag"`
	Chunk  ChunkConfig `koanf:"chunk"  validate:"required"`
	Log    LogConfig   `koanf:"log"`
}

// ChunkConfig carries the default split settings applied when the
// corresponding CLI flags are not set.
type ChunkConfig struct {
	Strategy           string `koanf:"strategy"             validate:"oneof=soft hard"`
	Size               int    `koanf:"size"                 validate:"min=1"`
	MinSize            int    `koanf:"min_size"             validate:"min=0"`
	MaxSize            int    `koanf:"max_size"             validate:"min=0"`
	PreserveWhitespace bool   `koanf:"preserve_whitespace"`
	SentenceBoundaries bool   `koanf:"sentence_boundaries"`
	PreserveEmptyLines bool   `koanf:"preserve_empty_lines"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	Level  string `koanf:"level"  validate:"oneof=debug info warn error disabled"`
	JSON   bool   `koanf:"json"`
	Source bool   `koanf:"source"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Locale: "en",
		Chunk: ChunkConfig{
			Strategy:           "soft",
			Size:               200,
			MinSize:            1,
			PreserveWhitespace: true,
			SentenceBoundaries: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
