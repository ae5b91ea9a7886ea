package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		env   string
		want  slog.Level
	}{
		{name: "default", want: slog.LevelInfo},
		{name: "debug env", env: "debug", want: slog.LevelDebug},
		{name: "warning env", env: "WARNING", want: slog.LevelWarn},
		{name: "error env", env: "error", want: slog.LevelError},
		{name: "unknown env", env: "loud", want: slog.LevelInfo},
		{name: "debug flag wins", debug: true, env: "error", want: slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levelFor(tt.debug, tt.env))
		})
	}
}

func TestNewLoggerDropsTime(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("deployed", "contract", "OwnerProxy")

	assert.Equal(t, "level=INFO msg=deployed contract=OwnerProxy\n", buf.String())
}
