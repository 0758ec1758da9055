package boundary

import (
	"net/http"

	"go.uber.org/zap"
)

// Config holds configuration for a boundary handler.
//
// All fields are optional. Zero values trigger default behavior:
//   - Logger: zap.NewNop()
//   - OnPanic: nil (non-signal panics are re-raised)
//   - DisableActionMarking: false (non-GET/HEAD requests count as actions)
//
// Config is a value type. Changes to a Config after passing it to Wrap do
// not affect the created handler.
type Config struct {
	// Logger receives a debug entry for every resolved redirect. If nil,
	// logging is disabled.
	Logger *zap.Logger

	// OnPanic is called for recovered values that are not redirect
	// signals. The inner handler may already have written to w.
	//
	// If nil, such values are re-panicked unchanged.
	OnPanic func(w http.ResponseWriter, r *http.Request, recovered any)

	// DisableActionMarking turns off the default behavior of treating
	// non-GET/HEAD requests as mutating actions. With marking disabled,
	// redirects raised below the boundary keep their method-preserving
	// default status (307/308) regardless of the request method.
	DisableActionMarking bool
}

// DefaultConfig returns a Config with recommended default values:
//   - Logger: zap.NewNop()
//   - OnPanic: nil
//   - DisableActionMarking: false
//
// Callers can modify the returned Config before passing it to Wrap.
func DefaultConfig() Config {
	return Config{
		Logger: zap.NewNop(),
	}
}

// applyDefaults returns a copy of the config with defaults applied for
// zero values.
func (c Config) applyDefaults() Config {
	cfg := c

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return cfg
}
