package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Simplici0/masscalc/internal/config"
	"github.com/Simplici0/masscalc/internal/material"
	"github.com/Simplici0/masscalc/internal/partfile"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printErr(os.Stderr, err)
		os.Exit(1)
	}
}

type app struct {
	configPath string
	cfg        config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "masscalc",
		Short:         "Mass, volume and cost calculator for scalable parts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (YAML or TOML)")

	root.AddCommand(a.reportCmd())
	root.AddCommand(a.sweepCmd())
	root.AddCommand(a.entryCostCmd())
	root.AddCommand(a.validateCmd())
	root.AddCommand(a.materialsCmd())
	return root
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	a.logger.Debug("config loaded",
		"unit_thickness", cfg.UnitThickness,
		"entry_cost_slope", cfg.EntryCost.Slope,
		"round_costs", cfg.EntryCost.Round,
	)
	return nil
}

func (a *app) partOptions(cat *material.Catalog) partfile.Options {
	return partfile.Options{
		Catalog:       cat,
		UnitThickness: a.cfg.UnitThickness,
		Pricing:       a.cfg.EntryCost,
		Logger:        a.logger,
	}
}

func printErr(w io.Writer, err error) {
	fmt.Fprintf(w, "masscalc: %v\n", err)
}
