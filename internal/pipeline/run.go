package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/langtags/internal/ctxlog"
	"github.com/vk/langtags/internal/extract"
)

// Run executes every job in declaration order, synchronously, stopping at the
// first failure. Outputs written by earlier jobs are left in place.
func (m *Manifest) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Info("Starting pipeline run.", "jobs", len(m.Jobs))

	for _, job := range m.Jobs {
		logger.Info("Running job.", "kind", job.Kind, "name", job.Name, "table", job.Table)
		table := m.Tables[job.Table]

		var err error
		switch job.Kind {
		case KindTags:
			// The pipeline owns its output layout; extraction itself never
			// creates directories.
			if err = os.MkdirAll(filepath.Dir(job.Output), 0755); err == nil {
				err = extract.TagsReserved(ctx, table.Path, job.Output, table.Reserved)
			}
		case KindExport:
			err = runExport(ctx, table, job)
		}
		if err != nil {
			return fmt.Errorf("job %s %q failed: %w", job.Kind, job.Name, err)
		}
	}

	logger.Info("Pipeline run finished.")
	return nil
}
