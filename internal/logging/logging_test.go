package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLevels(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	tests := []struct {
		name string
		opts Options
		want zerolog.Level
	}{
		{"default warn", Options{}, zerolog.WarnLevel},
		{"one -v", Options{Verbosity: 1}, zerolog.InfoLevel},
		{"two -v", Options{Verbosity: 2}, zerolog.DebugLevel},
		{"many -v", Options{Verbosity: 5}, zerolog.TraceLevel},
		{"quiet wins", Options{Verbosity: 2, Quiet: true}, zerolog.ErrorLevel},
		{"explicit level", Options{Level: "DEBUG"}, zerolog.DebugLevel},
		{"bad level falls back", Options{Level: "loud", Verbosity: 1}, zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.opts.Out = &out
			Setup(tt.opts)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestLoggerComponent(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var out bytes.Buffer
	Setup(Options{Out: &out, Verbosity: 2, NoColor: true})
	l := Logger("cli")
	done := LogOperationStart(l, "extract")
	done()

	s := out.String()
	assert.Contains(t, s, "component=cli")
	assert.Contains(t, s, "Operation started")
	assert.Contains(t, s, "Operation completed")
}
