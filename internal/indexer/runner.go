package indexer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"roleScope/internal/chain"
	"roleScope/internal/model"
	"roleScope/internal/storage"
)

// RunConfig holds runtime settings for the ingest loop.
type RunConfig struct {
	FromLedger        uint32
	ToLedger          uint32
	ContractIDs       []string
	BatchSize         uint32
	PageLimit         int
	CheckpointPath    string
	CheckpointEnabled bool
	MaxRetries        int
	RetryBackoff      time.Duration
}

// Runner streams contract events from soroban-rpc and writes them to
// storage in ledger order.
type Runner struct {
	cfg        RunConfig
	chain      *chain.Client
	storage    storage.RawStorage
	logger     *zap.Logger
	seen       map[string]struct{}
	checkpoint *CheckpointStore
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg RunConfig, chainClient *chain.Client, storageSink storage.RawStorage, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		cfg:        cfg,
		chain:      chainClient,
		storage:    storageSink,
		logger:     logger,
		seen:       make(map[string]struct{}),
		checkpoint: NewCheckpointStore(cfg.CheckpointPath, cfg.CheckpointEnabled),
	}
}

// Run executes the ingest loop.
func (r *Runner) Run(ctx context.Context) error {
	if r.chain == nil {
		return fmt.Errorf("chain client is nil")
	}
	if r.storage == nil {
		return fmt.Errorf("storage is nil")
	}
	if r.cfg.BatchSize == 0 {
		return fmt.Errorf("batch size must be greater than zero")
	}
	if r.cfg.PageLimit <= 0 {
		r.cfg.PageLimit = 100
	}

	from := r.cfg.FromLedger
	to := r.cfg.ToLedger
	if to == 0 {
		latest, err := r.chain.LatestLedger(ctx)
		if err != nil {
			return fmt.Errorf("get latest ledger: %w", err)
		}
		to = latest
	}

	if r.checkpoint != nil {
		cp, ok, err := r.checkpoint.Load()
		if err != nil {
			return err
		}
		if ok && cp.LastProcessedLedger >= from {
			from = cp.LastProcessedLedger + 1
			r.logger.Info("resume from checkpoint", zap.Uint32("last_processed", cp.LastProcessedLedger), zap.Uint32("from", from))
		}
	}

	if from > to {
		r.logger.Info("nothing to sync", zap.Uint32("from", from), zap.Uint32("to", to))
		return nil
	}

	ranges, err := SplitRange(from, to, r.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, ledgerRange := range ranges {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r.logger.Info("fetch events", zap.Uint32("from", ledgerRange.From), zap.Uint32("to", ledgerRange.To))

		events, err := r.fetchRange(ctx, ledgerRange)
		if err != nil {
			return fmt.Errorf("fetch events: %w", err)
		}

		ingestedAt := time.Now().UTC()
		records := make([]model.RawContractEvent, 0, len(events))
		for _, event := range events {
			if r.isDuplicate(event) {
				continue
			}
			records = append(records, buildRawEvent(event, ingestedAt))
		}

		if err := r.storage.PutEventBatch(records); err != nil {
			return fmt.Errorf("store events: %w", err)
		}

		if r.checkpoint != nil {
			if err := r.checkpoint.Save(ledgerRange.To); err != nil {
				return err
			}
		}

		r.logger.Info("batch complete", zap.Int("events", len(records)), zap.Uint32("from", ledgerRange.From), zap.Uint32("to", ledgerRange.To))
	}

	return nil
}

// fetchRange pages through getEvents for one ledger range.
func (r *Runner) fetchRange(ctx context.Context, ledgerRange LedgerRange) ([]chain.ContractEvent, error) {
	var events []chain.ContractEvent
	cursor := ""
	for {
		page, err := r.getEventsWithRetry(ctx, ledgerRange, cursor)
		if err != nil {
			return nil, err
		}

		done := len(page.Events) < r.cfg.PageLimit
		for _, event := range page.Events {
			if event.Ledger > ledgerRange.To {
				done = true
				break
			}
			events = append(events, event)
		}

		if done || page.Cursor == "" {
			return events, nil
		}
		cursor = page.Cursor
	}
}

func (r *Runner) getEventsWithRetry(ctx context.Context, ledgerRange LedgerRange, cursor string) (chain.EventsPage, error) {
	var page chain.EventsPage
	err := withRetry(ctx, r.cfg.MaxRetries, r.cfg.RetryBackoff, func(ctx context.Context) error {
		var err error
		page, err = r.chain.GetEvents(ctx, ledgerRange.From, ledgerRange.To, r.cfg.ContractIDs, cursor, r.cfg.PageLimit)
		if err != nil {
			r.logger.Warn("get events failed", zap.Error(err), zap.Uint32("from", ledgerRange.From), zap.Uint32("to", ledgerRange.To))
		}
		return err
	})
	return page, err
}

func (r *Runner) isDuplicate(event chain.ContractEvent) bool {
	if _, ok := r.seen[event.ID]; ok {
		return true
	}
	r.seen[event.ID] = struct{}{}
	return false
}
