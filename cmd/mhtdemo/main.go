// Package main implements mhtdemo, a small CLI that drives an mht.Engine
// over a synthetic crossing-tracks report stream and prints the resulting
// track decisions. It is a demonstration harness only: no part of the
// mht module depends on it.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arfken-labs/mht/mht"
	"github.com/arfken-labs/mht/model"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mhtdemo: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "mhtdemo",
		Short: "Run a synthetic crossing-tracks scenario through the MHT engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Path to a .mhtdemo.yaml config file")
	return cmd
}

func runDemo(cmd *cobra.Command, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	runID := uuid.New()
	log := zerolog.New(os.Stderr).With().Timestamp().Str("run_id", runID.String()).Logger()
	log.Info().Int("scans", cfg.Scans).Msg("starting mhtdemo run")

	m := newDemoModel(cfg.GateWidth, cfg.Sigma)
	verifier := &recordingVerifier{}
	engine := mht.New(func() model.Model { return m }, verifier,
		mht.WithMaxDepth(cfg.MaxDepth),
		mht.WithMinGHypoRatio(cfg.MinGHypoRatio),
		mht.WithMaxGHypos(cfg.MaxGHypos),
		mht.WithLogger(log))

	ctx := context.Background()
	for scanIdx, batch := range crossingTracksScenario(cfg.Scans) {
		verifier.curScan = scanIdx
		engine.AddReports(batch)
		if _, err := engine.Scan(ctx); err != nil {
			return fmt.Errorf("scan %d: %w", scanIdx, err)
		}
	}

	verifier.curScan = cfg.Scans
	if err := engine.Clear(ctx); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	renderEvents(cmd.OutOrStdout(), verifier.events, cfg.NoColor)
	return nil
}
