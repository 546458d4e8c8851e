package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roleScope/internal/config"
	"roleScope/internal/model"
	"roleScope/internal/project"
	"roleScope/internal/storage"
	"roleScope/internal/storage/memory"
	"roleScope/internal/storage/postgres"
)

const projectStateName = "projector"

func runProject(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadProject(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.In == "" {
		return fmt.Errorf("input path is required")
	}
	if !cfg.DryRun && cfg.PGDSN == "" {
		return fmt.Errorf("pg dsn is required unless --dry-run")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store storage.Store
	var pgStore *postgres.Store
	if cfg.DryRun {
		store = memory.NewStore()
	} else {
		pgStore, err = postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pgStore.Close()
		store = pgStore
	}

	var startLedger uint32
	if pgStore != nil {
		last, ok, err := pgStore.LoadState(ctx, projectStateName)
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}
		if ok {
			startLedger = last
			logger.Info("resume from state", zap.Uint32("last_processed_ledger", last))
		}
	}

	projector := project.NewProjector(store, logger)

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	logger.Info("project start",
		zap.String("in", cfg.In),
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
		zap.Bool("dry_run", cfg.DryRun),
	)

	scanner := bufio.NewScanner(inputFile)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var total, applied, skipped, failed int
	maxLedger := startLedger
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		total++

		var event model.DomainEvent
		if err := json.Unmarshal(line, &event); err != nil {
			failed++
			logger.Warn("decode domain event", zap.Error(err))
			continue
		}
		if event.Ledger <= startLedger && startLedger > 0 {
			skipped++
			continue
		}

		if err := projector.Apply(ctx, event); err != nil {
			return fmt.Errorf("apply event %s: %w", event.ID, err)
		}
		applied++
		if event.Ledger > maxLedger {
			maxLedger = event.Ledger
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}

	if pgStore != nil && maxLedger > startLedger {
		if err := pgStore.SaveState(ctx, projectStateName, maxLedger); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
	}

	logger.Info("project complete",
		zap.Int("total", total),
		zap.Int("applied", applied),
		zap.Int("skipped", skipped),
		zap.Int("failed", failed),
		zap.Uint32("last_processed_ledger", maxLedger),
	)

	return nil
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
