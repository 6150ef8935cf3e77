package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/Simplici0/masscalc/internal/material"
	"github.com/Simplici0/masscalc/internal/part"
	"github.com/Simplici0/masscalc/internal/partfile"
	"github.com/Simplici0/masscalc/internal/pricing"
	"github.com/Simplici0/masscalc/internal/report"
	"github.com/Simplici0/masscalc/internal/seed"
)

func findPart(parts []*part.Part, name string) (*part.Part, error) {
	for _, p := range parts {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("part %q not found", name)
}

func (a *app) reportCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Print the composition and resizer values of every part in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, loadErr := partfile.Load(args[0], a.partOptions(nil))
			if name != "" {
				p, err := findPart(parts, name)
				if err != nil {
					return multierr.Append(loadErr, err)
				}
				parts = []*part.Part{p}
				loadErr = nil
			}

			out := cmd.OutOrStdout()
			for i, p := range parts {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := report.WritePart(out, p); err != nil {
					return err
				}
			}
			return loadErr
		},
	}

	cmd.Flags().StringVarP(&name, "part", "p", "", "only report the named part")
	return cmd
}

func (a *app) sweepCmd() *cobra.Command {
	var (
		name string
		opts report.SweepOptions
	)

	cmd := &cobra.Command{
		Use:   "sweep <file>",
		Short: "Tabulate mass, volume and cost of a part over a range of scales",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, loadErr := partfile.Load(args[0], a.partOptions(nil))
			p, err := findPart(parts, name)
			if err != nil {
				return multierr.Append(loadErr, err)
			}
			rows, err := report.Sweep(p, opts)
			if err != nil {
				return err
			}
			return report.WriteSweep(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringVarP(&name, "part", "p", "", "part to sweep")
	_ = cmd.MarkFlagRequired("part")
	addSweepFlags(cmd.Flags(), &opts)
	return cmd
}

func (a *app) entryCostCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entry-cost <cost>...",
		Short: "Compute the unlock price of raw part costs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, raw := range args {
				cost, err := parseNonNegativeFloat(raw, fmt.Sprintf("cost %d", i+1))
				if err != nil {
					return err
				}
				res := pricing.Calculate(pricing.Input{AdditionalCost: cost}, a.cfg.EntryCost)
				fmt.Fprintf(out, "%s\t%s\n", raw, strconv.FormatFloat(res.Totals.EntryCost, 'f', -1, 64))
			}
			return nil
		},
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Build every part in a file and report the ones that fail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := partfile.ReadFile(args[0])
			if err != nil {
				return err
			}
			parts, err := f.Build(a.partOptions(nil))
			if parts == nil {
				// invalid materials abort the whole file
				return err
			}
			failures := multierr.Errors(err)

			out := cmd.OutOrStdout()
			for _, p := range parts {
				fmt.Fprintf(out, "ok    %s\n", p.Name())
			}
			for _, failure := range failures {
				fmt.Fprintf(out, "FAIL  %v\n", failure)
			}
			if len(failures) > 0 {
				return fmt.Errorf("%d of %d parts failed", len(failures), len(parts)+len(failures))
			}
			return nil
		},
	}
}

func (a *app) materialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials [file]",
		Short: "List the material catalog, optionally merged with a file's materials",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := material.NewCatalog()
			if len(args) == 1 {
				f, err := partfile.ReadFile(args[0])
				if err != nil {
					return err
				}
				if _, err := f.SeedCatalog(cat); err != nil {
					return err
				}
			} else if _, err := seed.Run(cat, nil); err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDENSITY t/m^3\tCOST Cr/m^3")
			for _, name := range cat.Names() {
				m, _ := cat.Lookup(name)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Name, humanize.Ftoa(m.Density), humanize.Ftoa(m.Cost))
			}
			return tw.Flush()
		},
	}
}
