package utils

import (
	"log"
	"os"
)

// LoggerConfig controls logger output and format.
type LoggerConfig struct {
	// Log format (text/json-ish line)
	Format string
	// Output stream (os.Stdout, file, etc.)
	Output *os.File
}

// InitLogger builds the service logger.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	prefix := "[JagahVA] "

	if cfg.Format == "json" {
		return log.New(cfg.Output, prefix, log.LstdFlags|log.LUTC)
	}
	return log.New(cfg.Output, prefix, log.LstdFlags|log.Lshortfile|log.LUTC)
}
