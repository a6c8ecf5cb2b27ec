package lnk

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

var logger atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	logger.Store(&nop)
}

// SetLogger installs the logger used by Open. The default discards
// everything. Decode never logs.
func SetLogger(l zerolog.Logger) {
	l = l.With().Str("component", "lnk").Logger()
	logger.Store(&l)
}

func log() *zerolog.Logger { return logger.Load() }
