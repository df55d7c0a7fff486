package main

import (
	"fmt"
	"route-validator/internal/adapters/distance"
	"route-validator/internal/config"
	"route-validator/internal/report"
	"strings"

	"github.com/spf13/cobra"
)

type options struct {
	method  string
	cache   string
	verbose bool
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "validator",
		Short:         "Validate a vehicle-routing solution against its fleet and demand dataset",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				err = fmt.Errorf("loading config: %w", err)
				report.New(cmd.OutOrStdout(), false).Failure(err)
				return err
			}

			if cmd.Flags().Changed("method") {
				cfg.Distance.Method = opts.method
			}
			if cmd.Flags().Changed("cache") {
				cfg.Distance.Cache = opts.cache
			}
			if opts.verbose {
				cfg.Log.Level = "debug"
			}

			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.method, "method", distance.MethodHaversine,
		"Distance calculation method ("+strings.Join(distance.Methods(), ", ")+")")
	cmd.Flags().StringVar(&opts.cache, "cache", "distance_cache.json",
		"Distance cache location: file path, sqlite://, postgres:// or redis:// URL")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Show detailed output")

	return cmd
}
