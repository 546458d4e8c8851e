package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"roleScope/internal/chain"
	"roleScope/internal/config"
	"roleScope/internal/indexer"
	"roleScope/internal/storage"
)

func main() {
	root := &cobra.Command{
		Use:          "rolescope",
		Short:        "Soroban access-control event indexer",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	ingestCmd := &cobra.Command{
		Use:   "ingest",
		Short: "Fetch raw contract events from soroban-rpc",
		RunE:  runIngest,
	}

	ingestCmd.Flags().String("rpc", "", "soroban-rpc URL")
	ingestCmd.Flags().Uint32("from", 0, "start ledger (inclusive)")
	ingestCmd.Flags().Uint32("to", 0, "end ledger (inclusive), 0 means latest")
	ingestCmd.Flags().StringSlice("contract-id", nil, "contract ids to filter (comma-separated)")
	ingestCmd.Flags().Uint32("batch-size", 2000, "ledgers per batch")
	ingestCmd.Flags().Int("page-limit", 100, "events per getEvents page")
	ingestCmd.Flags().String("out", "./data/raw_events.jsonl", "output JSONL path")
	ingestCmd.Flags().String("checkpoint", "./data/checkpoint.json", "checkpoint file path")
	ingestCmd.Flags().Bool("checkpoint-enabled", true, "enable checkpointing")
	ingestCmd.Flags().Int("max-retries", 5, "maximum retry attempts")
	ingestCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	ingestCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(ingestCmd)

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract canonical domain events from raw events",
		RunE:  runExtract,
	}

	extractCmd.Flags().String("in", "", "input raw events JSONL")
	extractCmd.Flags().String("out", "./data/domain_events.jsonl", "output domain events JSONL")
	extractCmd.Flags().String("errors", "./data/extract_errors.jsonl", "extract errors JSONL")
	extractCmd.Flags().Int("max-depth", 32, "maximum tagged-value decode depth")
	extractCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(extractCmd)

	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Project domain events into the aggregate store",
		RunE:  runProject,
	}

	projectCmd.Flags().String("in", "", "input domain events JSONL")
	projectCmd.Flags().String("pg-dsn", "", "Postgres DSN")
	projectCmd.Flags().Bool("dry-run", false, "apply to an in-memory store and report counts only")
	projectCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(projectCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}

	contractIDs, err := indexer.ParseContractIDs(cfg.ContractIDs)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chainClient := chain.NewClient(cfg.RPCURL)
	if err := chainClient.Health(ctx); err != nil {
		return fmt.Errorf("rpc health: %w", err)
	}

	storageSink := storage.NewJsonlStorage(cfg.Out)

	runner := indexer.NewRunner(indexer.RunConfig{
		FromLedger:        cfg.FromLedger,
		ToLedger:          cfg.ToLedger,
		ContractIDs:       contractIDs,
		BatchSize:         cfg.BatchSize,
		PageLimit:         cfg.PageLimit,
		CheckpointPath:    cfg.Checkpoint,
		CheckpointEnabled: cfg.CheckpointEnabled,
		MaxRetries:        cfg.MaxRetries,
		RetryBackoff:      cfg.RetryBackoff,
	}, chainClient, storageSink, logger)

	logger.Info("ingest start",
		zap.String("rpc", cfg.RPCURL),
		zap.Uint32("from", cfg.FromLedger),
		zap.Uint32("to", cfg.ToLedger),
		zap.Int("contract_ids", len(contractIDs)),
		zap.Uint32("batch_size", cfg.BatchSize),
		zap.String("out", cfg.Out),
		zap.Bool("checkpoint_enabled", cfg.CheckpointEnabled),
		zap.String("checkpoint", cfg.Checkpoint),
	)

	return runner.Run(ctx)
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
