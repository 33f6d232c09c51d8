package broker

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"stashvest/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SimulatedMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	backend, err := New(&config.BrokerConfig{
		Mode:                  ModeSimulated,
		SimulatedStartingCash: 50000,
	}, logger)

	require.NoError(t, err)
	assert.Equal(t, ModeSimulated, backend.Name())
	assert.IsType(t, &SimulatedBackend{}, backend)
}

func TestNew_LiveMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	backend, err := New(&config.BrokerConfig{
		Mode:            ModeLive,
		BaseURL:         "https://paper-api.example.com",
		APIKey:          "key",
		APISecret:       "secret",
		RequestTimeout:  10 * time.Second,
		OrdersPerSecond: 2,
	}, logger)

	require.NoError(t, err)
	assert.Equal(t, ModeLive, backend.Name())
	assert.IsType(t, &LiveBackend{}, backend)
}

func TestNew_UnknownMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := New(&config.BrokerConfig{Mode: "paper"}, logger)

	assert.ErrorIs(t, err, ErrUnknownMode)
}
