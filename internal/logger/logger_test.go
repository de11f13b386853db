package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/vamoose/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerService_DisabledWithoutLicense(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()

	service, err := NewLoggerService(cfg)
	require.NoError(t, err)
	assert.Nil(t, service.GetApplication())

	// Shutdown must be safe without an agent.
	service.Shutdown()
}

func TestLoggerService_NilReceiver(t *testing.T) {
	var service *LoggerService
	assert.Nil(t, service.GetApplication())
}

func TestNewLogger_JSONFields(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = "test"

	buf := &bytes.Buffer{}
	log := newLogger(cfg, nil, buf)
	log.Info().Str("route", "/api/v1/trips/plan").Msg("handled")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "handled", entry["message"])
	assert.Equal(t, "vamoose", entry["service"])
	assert.Equal(t, "test", entry["environment"])
	assert.Equal(t, "/api/v1/trips/plan", entry["route"])
}

func TestNewLogger_RespectsLevel(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	buf := &bytes.Buffer{}
	log := newLogger(cfg, nil, buf)
	log.Info().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	buf := &bytes.Buffer{}
	cfg := config.DefaultObservabilityConfig()
	log := WithTraceContext(newLogger(cfg, nil, buf), nil)
	log.Info().Msg("no trace")

	assert.NotContains(t, buf.String(), "trace.id")
}
