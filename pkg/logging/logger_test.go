package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pxlchk1/Complete-Camping-App-3.0-sub005/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	// Create a buffer to capture output
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	// Test logging at different levels
	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	// Create test logger
	testLogger := logging.NewTestLogger(t)

	// Create context with logger
	ctx := logging.WithLogger(context.Background(), testLogger.Logger)

	// Add fields to context
	ctx = logging.WithList(ctx, "pl-7")
	ctx = logging.WithTemplate(ctx, "winter")

	// Get logger from context and log
	logger := logging.FromContext(ctx)
	logger.Info().Msg("test message")

	// Verify output contains expected fields
	testLogger.AssertContains(t, "pl-7")
	testLogger.AssertContains(t, "winter")
	testLogger.AssertContains(t, "test message")
}

func TestFromContextFallback(t *testing.T) {
	//nolint:staticcheck // Verifying nil-context fallback on purpose
	if logging.FromContext(nil) == nil {
		t.Fatal("Expected default logger for nil context")
	}
	if logging.FromContext(context.Background()) == nil {
		t.Fatal("Expected default logger for empty context")
	}
}

func TestNewJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logging.NewJSON(buf)
	logger.Info().Str("section", "Shelter").Msg("created")

	output := buf.String()
	if !strings.Contains(output, `"section":"Shelter"`) {
		t.Errorf("Expected JSON field in output, got: %s", output)
	}
}
