package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestSetGlobalLogger(t *testing.T) {
	originalLogger := Logger
	originalLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		SetGlobalLogger(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	})

	t.Run("defaults to nop", func(t *testing.T) {
		require.Equal(t, zerolog.Disabled, originalLogger.GetLevel())
	})

	t.Run("routes helpers to the global logger", func(t *testing.T) {
		var buf bytes.Buffer
		SetGlobalLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))

		Trace().Int("keys", 2).Msg("cleared")
		require.Contains(t, buf.String(), `"level":"trace"`)
		require.Contains(t, buf.String(), `"keys":2`)

		buf.Reset()
		Warn().Msg("careful")
		require.Contains(t, buf.String(), `"message":"careful"`)
	})

	t.Run("respects the configured level", func(t *testing.T) {
		var buf bytes.Buffer
		SetGlobalLogger(zerolog.New(&buf))
		SetLevel(zerolog.InfoLevel)

		Debug().Msg("hidden")
		require.Empty(t, buf.String())

		Info().Msg("shown")
		require.Contains(t, buf.String(), "shown")
	})

	t.Run("context without a logger uses the global logger", func(t *testing.T) {
		var buf bytes.Buffer
		SetGlobalLogger(zerolog.New(&buf))

		Ctx(context.Background()).Info().Msg("from context")
		require.Contains(t, buf.String(), "from context")
	})

	t.Run("with adds fields", func(t *testing.T) {
		var buf bytes.Buffer
		SetGlobalLogger(zerolog.New(&buf))

		logger := With().Str("component", "mapz").Logger()
		logger.Info().Msg("hello")
		require.Contains(t, buf.String(), `"component":"mapz"`)
	})
}
