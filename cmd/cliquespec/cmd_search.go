package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cliquespec/archive"
	"github.com/katalvlaran/cliquespec/search"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		seed       int64
		workers    int
		maxTrials  int64
		timeout    time.Duration
		maxOrder   int
		maxCliques int
		archiveDir string
		sortRows   bool
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search for graph pairs whose clique spectral radius is not monotone in the clique count",
		Long: `search draws random pairs G1 = G(k+inc, p1), G2 = G(k, p2) and compares the
spectral radii of their clique-transition matrices whenever G1 has more
cliques and neither graph is a join. It stops at the first counterexample
(exit code 3), at --max-trials, at --timeout, or on interrupt.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Search
			flags := cmd.Flags()
			if flags.Changed("seed") {
				cfg.Seed = seed
			} else if cfg.Seed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("max-trials") {
				cfg.MaxTrials = maxTrials
			}
			if flags.Changed("timeout") {
				cfg.Timeout = timeout
			}
			if flags.Changed("max-order") {
				cfg.Params.MaxOrder = maxOrder
			}
			if flags.Changed("max-cliques") {
				cfg.Params.MaxCliques = maxCliques
			}
			if flags.Changed("archive") {
				a.cfg.Archive.Dir = archiveDir
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector())
			opts := []search.Option{
				search.WithLogger(a.logger),
				search.WithMetrics(search.NewMetrics(reg)),
				search.WithReporter(search.TextReporter{W: a.out, SortRows: sortRows}),
			}

			if dir := a.cfg.Archive.Dir; dir != "" {
				store, err := archive.Open(archive.Config{Dir: dir, Logger: a.logger})
				if err != nil {
					return err
				}
				a.closers = append(a.closers, store)
				opts = append(opts, search.WithArchiver(store))
			}

			s, err := search.New(cfg, opts...)
			if err != nil {
				return usageError("%v", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if addr := a.cfg.Metrics.Addr; addr != "" {
				_, shutdown, err := serveMetrics(a, addr, reg)
				if err != nil {
					return err
				}
				defer shutdown()
			}

			res, err := s.Run(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s after %s trials in %s (seed %d): %s filtered, %s consistent\n",
				res.State, humanize.Comma(res.Trials), res.Elapsed.Round(time.Millisecond), cfg.Seed,
				humanize.Comma(res.Counts[search.Filtered]), humanize.Comma(res.Counts[search.Consistent]))
			if res.ArchiveID != "" {
				fmt.Fprintf(a.out, "archived as %s\n", res.ArchiveID)
			}
			if res.State == search.Reported {
				return &ExitError{Code: exitCounterexample}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Int64Var(&seed, "seed", 0, "base random seed; worker i uses seed+i (default: config, else time)")
	f.IntVar(&workers, "workers", 0, "number of worker goroutines")
	f.Int64Var(&maxTrials, "max-trials", 0, "stop after this many trials (0 = unlimited)")
	f.DurationVar(&timeout, "timeout", 0, "stop after this long (0 = none)")
	f.IntVar(&maxOrder, "max-order", 0, "largest order k of G2")
	f.IntVar(&maxCliques, "max-cliques", 0, "skip pairs with more cliques than this (0 = no cap)")
	f.StringVar(&archiveDir, "archive", "", "store counterexamples in this BadgerDB directory")
	f.BoolVar(&sortRows, "sort-rows", false, "also print the matrices with rows ordered by row sum")

	return cmd
}

// serveMetrics exposes reg on addr until the returned shutdown is called.
// It returns the bound address, which differs from addr for port 0.
func serveMetrics(a *app, addr string, reg *prometheus.Registry) (string, func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", nil, fmt.Errorf("metrics listener: %w", err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server", "err", err)
		}
	}()
	bound := ln.Addr().String()
	a.logger.Info("serving metrics", "addr", bound)

	return bound, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
