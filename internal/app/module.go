package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/goresult/internal/result"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.result.enabled") {
		closer, err := result.New(result.Dependency{
			Config:    a.config,
			Router:    a.router,
			Goroutine: a.goroutine,
			Context:   a.ctx,
			ID:        a.snowflake,
			EventID:   a.uuid,
		})
		if err != nil {
			slog.Error("failed to init module result", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Result"] = closer
		}
	}
}
