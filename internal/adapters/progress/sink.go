package progress

import (
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
)

// NewProgressSink picks the spinner for terminals and a no-op sink otherwise
func NewProgressSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive {
		return usecase.NopProgress{}
	}
	return NewSpinnerSink()
}
