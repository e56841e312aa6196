package config

// EmbeddedTMDBKey is an API key injected at build time via ldflags.
// It serves as a default and can be overridden by the config file or
// environment variables.
//
// Build with:
//   go build -ldflags "-X 'github.com/renamarr/renamarr/internal/config.EmbeddedTMDBKey=xxx'"
var EmbeddedTMDBKey string
