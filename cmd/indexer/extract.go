package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"roleScope/internal/config"
	"roleScope/internal/extract"
	"roleScope/internal/model"
)

func runExtract(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadExtract(cfgFile, cmd.Flags())
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
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.Errors == "" {
		return fmt.Errorf("errors path is required")
	}

	extractor := extract.NewExtractor(extract.Config{MaxDepth: cfg.MaxDepth}, logger)

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	outWriter, err := newJSONLWriter(cfg.Out, false)
	if err != nil {
		return err
	}
	defer outWriter.Close()

	errWriter, err := newJSONLWriter(cfg.Errors, false)
	if err != nil {
		return err
	}
	defer errWriter.Close()

	logger.Info("extract start",
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
		zap.String("errors", cfg.Errors),
		zap.Int("max_depth", cfg.MaxDepth),
	)

	scanner := bufio.NewScanner(inputFile)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var total, extracted, skipped, declined, failed int
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		total++

		var raw model.RawContractEvent
		if err := json.Unmarshal(line, &raw); err != nil {
			failed++
			writeProcessError(errWriter, model.ProcessError{Error: err.Error()})
			continue
		}

		event, outcome := extractor.Extract(raw)
		switch outcome {
		case extract.OutcomeExtracted:
			if err := outWriter.Write(event); err != nil {
				return err
			}
			extracted++
		case extract.OutcomeSkipped:
			skipped++
		case extract.OutcomeDeclined:
			declined++
		case extract.OutcomeMissingMeta:
			failed++
			writeProcessError(errWriter, processErrorFromRaw(raw, "missing envelope metadata"))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}

	logger.Info("extract complete",
		zap.Int("total", total),
		zap.Int("extracted", extracted),
		zap.Int("skipped", skipped),
		zap.Int("declined", declined),
		zap.Int("failed", failed),
	)

	return nil
}

type jsonlWriter struct {
	file   *os.File
	writer *bufio.Writer
}

func newJSONLWriter(path string, appendMode bool) (*jsonlWriter, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir: %w", err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}

	return &jsonlWriter{
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

func (w *jsonlWriter) Write(value interface{}) error {
	line, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if _, err := w.writer.Write(line); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("write newline: %w", err)
	}
	return nil
}

func (w *jsonlWriter) Close() error {
	if w == nil {
		return nil
	}
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

func processErrorFromRaw(raw model.RawContractEvent, msg string) model.ProcessError {
	return model.ProcessError{
		EventID:    raw.ID,
		ContractID: raw.ContractID,
		LedgerSeq:  raw.LedgerSeq,
		TxHash:     raw.TxHash,
		Error:      msg,
	}
}

func writeProcessError(writer *jsonlWriter, errRecord model.ProcessError) {
	if writer == nil {
		return
	}
	_ = writer.Write(errRecord)
}
