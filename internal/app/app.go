package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/gradeadvisor/internal/ctxlog"
	"github.com/vk/gradeadvisor/internal/scale"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	inR    io.Reader
	logger *slog.Logger
	config *Config
	scale  *scale.Scale
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a loaded
// grading scale.
func NewApp(outW io.Writer, inR io.Reader, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	sc, err := scale.Load(ctx, cfg.ScalePath)
	if err != nil {
		// A failure to load the scale is a fatal startup error.
		panic(fmt.Errorf("failed to load grading scale: %w", err))
	}
	logger.Debug("Grading scale loaded.", "max_grade", sc.MaxGrade, "grade_count", sc.GradeCount, "epsilon", sc.Epsilon)

	return &App{
		outW:   outW,
		inR:    inR,
		logger: logger,
		config: cfg,
		scale:  sc,
	}
}

// Scale returns the loaded grading scale. This is primarily for testing.
func (a *App) Scale() *scale.Scale {
	return a.scale
}
