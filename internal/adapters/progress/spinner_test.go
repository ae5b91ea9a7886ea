package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/openavatar/openavatar-deploy/internal/domain/config"
	"github.com/openavatar/openavatar-deploy/internal/usecase"
	"github.com/stretchr/testify/assert"
)

func TestSpinnerSink(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	sink := newSpinnerSink(&buf)

	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "deploy", Current: 2, Total: 19, Message: "deploy OwnerProxy"})
	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "waiting", Message: "Waiting for 0x01", Spinner: true})
	sink.OnProgress(context.Background(), usecase.ProgressEvent{Stage: "mined", Message: "deploy OwnerProxy"})
	sink.Info("already deployed")
	sink.Error("boom")

	assert.Equal(t, "[2/19] deploy OwnerProxy", sink.Step())
	out := buf.String()
	assert.Contains(t, out, "[2/19] deploy OwnerProxy\n")
	assert.Contains(t, out, "already deployed\n")
	assert.Contains(t, out, "boom\n")
	assert.False(t, sink.spinner.Active())
}

func TestNewProgressSink(t *testing.T) {
	assert.IsType(t, usecase.NopProgress{}, NewProgressSink(&config.RuntimeConfig{NonInteractive: true}))
	assert.IsType(t, &SpinnerSink{}, NewProgressSink(&config.RuntimeConfig{}))
}
