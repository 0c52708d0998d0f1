package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/corpuseditor/internal/editor"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.editor.enabled") {
		closer, err := editor.New(editor.Dependency{
			Config:       a.config,
			Router:       a.router,
			Context:      a.ctx,
			Metrics:      a.metrics,
			NavigationID: a.navigationID,
		})
		if err != nil {
			slog.Error("failed to init module editor", "error", err)
			os.Exit(1)
		}
		if closer != nil {
			if a.closerFn == nil {
				a.closerFn = map[string]func(context.Context) error{}
			}
			a.closerFn["Editor"] = closer
		}
	}
}
