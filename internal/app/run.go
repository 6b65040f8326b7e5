package app

import (
	"context"
	"fmt"

	"github.com/vk/courseplan/internal/ctxlog"
	"github.com/vk/courseplan/internal/menu"
)

// Run executes the configured command: one of the one-shot queries, or the
// interactive menu when none was requested.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	switch {
	case cfg.List:
		menu.PrintCourseList(a.outW, a.catalog)

	case cfg.InfoKey != "":
		course, ok := a.catalog.Find(cfg.InfoKey)
		if !ok {
			return fmt.Errorf("course %q not found", cfg.InfoKey)
		}
		menu.PrintCourseInfo(a.outW, course)

	case cfg.PlanKey != "":
		plan, err := a.engine.PrerequisiteOrder(ctx, cfg.PlanKey)
		if err != nil {
			return err
		}
		menu.PrintPlan(a.outW, cfg.PlanKey, plan)

	case cfg.CheckKey != "":
		cyclic, err := a.engine.HasCycle(ctx, cfg.CheckKey)
		if err != nil {
			return err
		}
		menu.PrintCycleResult(a.outW, cfg.CheckKey, cyclic)

	case cfg.Validate:
		menu.PrintViolations(a.outW, a.engine.Validate(ctx))

	default:
		a.logger.Debug("No one-shot command given, starting interactive menu.")
		return menu.New(a.inR, a.outW, a.catalog, a.engine).Run(ctx)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
