package app

import (
	"os"

	"direct-transport-es/internal/logx"
)

// NewLogger returns a JSON logger on stdout tagged with the process name.
func NewLogger(service string) logx.Logger {
	return logx.NewJSON(os.Stdout, os.Getenv("LOG_LEVEL")).With(logx.String("service", service))
}
