package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit_Disabled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")
	core, logs := observer.New(zapcore.InfoLevel)

	shutdown, err := Init(context.Background(), "flow7-api", "test", zap.New(core))
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "tracing_configured", logs.All()[0].Message)
	assert.Equal(t, false, logs.All()[0].ContextMap()["tracing_enabled"])
}

func TestInit_UnsupportedProtocol(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "")
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "carrier-pigeon")
	core, logs := observer.New(zapcore.InfoLevel)

	shutdown, err := Init(context.Background(), "flow7-api", "test", zap.New(core))
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	assert.Equal(t, 1, logs.FilterMessage("tracing_init_failed").Len())
}

func TestGetSampler(t *testing.T) {
	tests := []struct {
		sampler string
		arg     string
		want    string
	}{
		{"always_on", "", "AlwaysOnSampler"},
		{"always_off", "", "AlwaysOffSampler"},
		{"traceidratio", "0.5", "TraceIDRatioBased{0.5}"},
		{"traceidratio", "bogus", "AlwaysOnSampler"},
		{"parentbased_always_off", "", "ParentBased{root:AlwaysOffSampler"},
		{"", "", "ParentBased{root:AlwaysOnSampler"},
	}

	for _, tt := range tests {
		t.Run(tt.sampler+"/"+tt.arg, func(t *testing.T) {
			t.Setenv("OTEL_TRACES_SAMPLER", tt.sampler)
			t.Setenv("OTEL_TRACES_SAMPLER_ARG", tt.arg)
			assert.Contains(t, getSampler().Description(), tt.want)
		})
	}
}

func TestSamplerRatio(t *testing.T) {
	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "0.25")
	assert.Equal(t, 0.25, samplerRatio())

	t.Setenv("OTEL_TRACES_SAMPLER_ARG", "2")
	assert.Equal(t, 1.0, samplerRatio())
}
