package app

import (
	"context"
	"fmt"

	"github.com/vk/langtags/internal/ctxlog"
	"github.com/vk/langtags/internal/extract"
	"github.com/vk/langtags/internal/pipeline"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if a.config.PipelinePath != "" {
		manifest, err := pipeline.Load(ctx, a.config.PipelinePath)
		if err != nil {
			return fmt.Errorf("failed to load pipeline manifest: %w", err)
		}
		if err := manifest.Run(ctx); err != nil {
			return err
		}
		a.logger.Debug("App.Run method finished.")
		return nil
	}

	if err := extract.Tags(ctx, a.config.InputPath, a.config.OutputPath); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
