// Copyright (c) 2026 The Nanocube Authors
// SPDX-License-Identifier: MIT

// Command nanocube is a small demo CLI over the nanocube package: ingest
// addressed objects from the command line and query aggregates back.
// Grounded in edirooss-zmux-server's cmd/*/main.go convention (a cobra root
// command wired to a zap logger and a service constructed from config).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nanocube/nanocube"
	"github.com/nanocube/nanocube/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "nanocube",
		Short: "Insert and query an in-memory multidimensional aggregation index",
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a YAML config file (see config.Config)")

	root.AddCommand(newIngestCmd(&cfgPath), newQueryCmd(&cfgPath))
	return root
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

// newIngestCmd builds "nanocube ingest <address> <object>...", inserting one
// object per positional argument after the address, all under the same
// address.
func newIngestCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <address> <object>...",
		Short: "Insert one or more objects at an address",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			addr, err := parseAddress(args[0])
			if err != nil {
				return err
			}

			nc := nanocube.New[string](cfg.Levels, nanocube.WithLogger[string](log))
			for _, obj := range args[1:] {
				if err := nc.Insert(addr, obj); err != nil {
					return fmt.Errorf("insert %q: %w", obj, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "inserted %d object(s) at %s\n", len(args)-1, args[0])
			return nil
		},
	}
}

// newQueryCmd builds "nanocube query <address>...", inserting only the
// --seed entries and printing the Summary at each given address prefix. Since the cube starts
// empty on every invocation and there is no persisted, externally shared
// cube to query against, this subcommand accepts a --seed flag to populate
// a demo cube before querying it.
func newQueryCmd(cfgPath *string) *cobra.Command {
	var seed []string

	cmd := &cobra.Command{
		Use:   "query <address>...",
		Short: "Seed a demo cube from --seed then query one or more address prefixes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			nc := nanocube.New[string](cfg.Levels, nanocube.WithLogger[string](log))
			for _, s := range seed {
				addrObj := strings.SplitN(s, "=", 2)
				if len(addrObj) != 2 {
					return fmt.Errorf("--seed entry %q must be address=object", s)
				}
				addr, err := parseAddress(addrObj[0])
				if err != nil {
					return err
				}
				if err := nc.Insert(addr, addrObj[1]); err != nil {
					return fmt.Errorf("seed insert %q: %w", s, err)
				}
			}

			for _, a := range args {
				addr, err := parseAddress(a)
				if err != nil {
					return err
				}
				summary, err := nc.Query(addr)
				if err != nil {
					return err
				}
				if summary == nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: <no match>\n", a)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", a, summary.Info())
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&seed, "seed", nil, "address=object pairs to insert before querying")
	return cmd
}
