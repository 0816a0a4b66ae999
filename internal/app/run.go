package app

import (
	"context"
	"fmt"

	"github.com/vk/gradeadvisor/internal/ctxlog"
	"github.com/vk/gradeadvisor/internal/session"
)

// Run executes one interactive advising session.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	sess := session.New(a.inR, a.outW, a.scale)
	if err := sess.Run(ctx); err != nil {
		return fmt.Errorf("advising session failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
