package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/bhrigu123/readster/internal/logger"
	"github.com/bhrigu123/readster/internal/repo"
	"github.com/bhrigu123/readster/internal/sources/listfile"
)

// ImportReloader periodically re-reads a reading-list YAML export and
// feeds it through the repository. AddItem's URL de-duplication makes
// each pass idempotent: already-saved pages are skipped.
type ImportReloader struct {
	loader        *listfile.Loader
	mapper        *listfile.Mapper
	repo          *repo.Repository
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewImportReloader creates an import reloader for the given file.
func NewImportReloader(
	importFile string,
	r *repo.Repository,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *ImportReloader {
	return &ImportReloader{
		loader:        listfile.NewLoader(importFile),
		mapper:        listfile.NewMapper(),
		repo:          r,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start imports immediately, then keeps re-importing on the configured
// interval and on every manual trigger until Stop or context cancel.
func (ir *ImportReloader) Start(ctx context.Context) error {
	if err := ir.Reload(ctx); err != nil {
		return fmt.Errorf("initial import failed: %w", err)
	}

	ticker := time.NewTicker(ir.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := ir.Reload(ctx); err != nil {
					ir.logger.Error("failed to reload import file",
						logger.Error(err))
				}
			case <-ir.manualTrigger:
				ir.logger.Info("manual import triggered")
				if err := ir.Reload(ctx); err != nil {
					ir.logger.Error("failed to reload import file",
						logger.Error(err))
				}
			case <-ir.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (ir *ImportReloader) Stop() {
	close(ir.stopCh)
}

// Reload loads the import file and saves its entries. Pages already in
// the list are left untouched.
func (ir *ImportReloader) Reload(ctx context.Context) error {
	ir.logger.Info("importing reading list from file")

	file, err := ir.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load import file: %w", err)
	}

	items, tags, err := ir.mapper.Map(file)
	if err != nil {
		return fmt.Errorf("failed to map import entries: %w", err)
	}

	for _, item := range items {
		if err := ir.repo.AddItem(ctx, item); err != nil {
			return fmt.Errorf("failed to import %s: %w", item.URL, err)
		}
	}
	for _, tag := range tags {
		if err := ir.repo.AddGlobalTag(ctx, tag); err != nil {
			return fmt.Errorf("failed to register tag %s: %w", tag, err)
		}
	}

	ir.logger.Info("import pass finished",
		logger.Int("entries", len(items)),
		logger.Int("tags", len(tags)))

	return nil
}
