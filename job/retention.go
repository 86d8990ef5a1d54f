package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Anjani2611/legal-doc-simplifier/config"
	"github.com/Anjani2611/legal-doc-simplifier/service"
)

// RetentionJob removes documents older than the configured retention window
// and cleans up their archived originals.
type RetentionJob struct {
	store         *service.DocumentStore
	archive       *service.ArchiveService // may be nil
	retentionDays int
	cron          *cron.Cron
}

func NewRetentionJob(store *service.DocumentStore, archive *service.ArchiveService, cfg *config.StoreConfig) *RetentionJob {
	return &RetentionJob{
		store:         store,
		archive:       archive,
		retentionDays: cfg.RetentionDays,
	}
}

// Start schedules the sweep according to the cron spec and begins running it.
func (j *RetentionJob) Start(schedule string) error {
	j.cron = cron.New()
	if _, err := j.cron.AddFunc(schedule, j.Sweep); err != nil {
		return err
	}
	j.cron.Start()
	slog.Info("retention job scheduled", "schedule", schedule, "retention_days", j.retentionDays)
	return nil
}

func (j *RetentionJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// Sweep expires documents past the retention cutoff. Archive removal is
// best effort: a failed delete is logged and the document is still expired.
func (j *RetentionJob) Sweep() {
	cutoff := time.Now().AddDate(0, 0, -j.retentionDays)
	expired := j.store.ExpireOld(cutoff)
	if len(expired) == 0 {
		return
	}

	for _, doc := range expired {
		if j.archive != nil && doc.ArchiveURL != "" {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			objectName := j.archive.ObjectName(doc.Tenant, doc.ID, doc.Filename)
			if err := j.archive.Remove(ctx, objectName); err != nil {
				slog.Warn("failed to remove archived object", "document_id", doc.ID, "object", objectName, "error", err)
			}
			cancel()
		}
	}

	slog.Info("retention sweep completed", "removed", len(expired), "cutoff", cutoff.Format(time.RFC3339))
}
