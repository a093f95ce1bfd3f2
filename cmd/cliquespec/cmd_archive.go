package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cliquespec/archive"
)

func newArchiveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect archived counterexamples",
	}
	cmd.AddCommand(newArchiveListCmd(a), newArchiveShowCmd(a), newArchiveDeleteCmd(a))

	return cmd
}

func openArchive(a *app, dir string) (*archive.Store, error) {
	store, err := archive.Open(archive.Config{Dir: dir, Logger: a.logger})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, store)

	return store, nil
}

func newArchiveListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list DIR",
		Short: "List archived counterexamples, oldest first",
		Args:  exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := openArchive(a, args[0])
			if err != nil {
				return err
			}
			recs, err := store.List()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tTRIAL\tCLIQUES\tRHO1\tRHO2")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d/%d\t%.6f\t%.6f\n",
					r.ID, humanize.Time(r.CreatedAt), humanize.Comma(r.Trial),
					r.Cliques1, r.Cliques2, r.Rho1, r.Rho2)
			}
			return tw.Flush()
		},
	}
}

func newArchiveShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show DIR ID",
		Short: "Print one archived counterexample as YAML",
		Args:  exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := openArchive(a, args[0])
			if err != nil {
				return err
			}
			rec, err := store.Get(args[1])
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(a.out)
			enc.SetIndent(2)
			if err = enc.Encode(rec); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func newArchiveDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete DIR ID",
		Short: "Remove one archived counterexample",
		Args:  exactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := openArchive(a, args[0])
			if err != nil {
				return err
			}
			return store.Delete(args[1])
		},
	}
}
