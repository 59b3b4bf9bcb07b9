package benchmark

import (
	"io"
	"log/slog"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/emberlog/ember/logger"
)

// Comparative benchmarks against other console-oriented loggers, all
// writing to io.Discard. Each logger uses its text/console encoder
// with timestamps enabled, matching ember's default line shape as
// closely as each API allows.

func newZap() *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(io.Discard),
		zap.InfoLevel,
	)
	return zap.New(core)
}

func BenchmarkZapMessageOnly(b *testing.B) {
	l := newZap()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message")
	}
}

func BenchmarkZapFiveFields(b *testing.B) {
	l := newZap()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message",
			zap.String("service", "api"),
			zap.Int("status", 200),
			zap.Int64("bytes", 1<<20),
			zap.Bool("cached", false),
			zap.Float64("elapsed_ms", 1.25),
		)
	}
}

func BenchmarkZerologMessageOnly(b *testing.B) {
	l := zerolog.New(io.Discard).With().Timestamp().Logger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info().Msg("benchmark message")
	}
}

func BenchmarkZerologFiveFields(b *testing.B) {
	l := zerolog.New(io.Discard).With().Timestamp().Logger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info().
			Str("service", "api").
			Int("status", 200).
			Int64("bytes", 1<<20).
			Bool("cached", false).
			Float64("elapsed_ms", 1.25).
			Msg("benchmark message")
	}
}

func BenchmarkZerologConsoleMode(b *testing.B) {
	l := zerolog.New(zerolog.ConsoleWriter{Out: io.Discard}).With().Timestamp().Logger()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info().Str("service", "api").Msg("benchmark message")
	}
}

func BenchmarkLogrusMessageOnly(b *testing.B) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message")
	}
}

func BenchmarkLogrusFiveFields(b *testing.B) {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.WithFields(logrus.Fields{
			"service":    "api",
			"status":     200,
			"bytes":      1 << 20,
			"cached":     false,
			"elapsed_ms": 1.25,
		}).Info("benchmark message")
	}
}

func BenchmarkSlogMessageOnly(b *testing.B) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message")
	}
}

func BenchmarkSlogFiveFields(b *testing.B) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message",
			"service", "api",
			"status", 200,
			"bytes", 1<<20,
			"cached", false,
			"elapsed_ms", 1.25,
		)
	}
}

func BenchmarkCharmMessageOnly(b *testing.B) {
	l := charmlog.NewWithOptions(io.Discard, charmlog.Options{ReportTimestamp: true})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message")
	}
}

func BenchmarkCharmFiveFields(b *testing.B) {
	l := charmlog.NewWithOptions(io.Discard, charmlog.Options{ReportTimestamp: true})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Info("benchmark message",
			"service", "api",
			"status", 200,
			"bytes", 1<<20,
			"cached", false,
			"elapsed_ms", 1.25,
		)
	}
}

// Filtered-out comparison: the cost of a call below the threshold.

func BenchmarkZapFilteredOut(b *testing.B) {
	l := newZap()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debug("never emitted", zap.String("k", "v"))
	}
}

func BenchmarkZerologFilteredOut(b *testing.B) {
	l := zerolog.New(io.Discard).Level(zerolog.ErrorLevel)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debug().Str("k", "v").Msg("never emitted")
	}
}

func BenchmarkEmberVsOthersFilteredOut(b *testing.B) {
	l := discardLogger(logger.ErrorLevel)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Debug("never emitted", logger.String("k", "v"))
	}
}
