package main

import (
	"context"
	"fmt"
	"os"
	"route-validator/internal/adapters/cache"
	"route-validator/internal/platform/logger"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var from, to, method string

	cmd := &cobra.Command{
		Use:   "cachetool",
		Short: "Copy a persisted distance cache snapshot between backends",
		Long: "Copies every entry of one distance cache into another, replacing the target's contents.\n" +
			"Locations are file paths or sqlite://, postgres:// and redis:// URLs.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()

			log, err := logger.New(os.Getenv("LOG_LEVEL"))
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			n, err := copySnapshot(cmd.Context(), from, to, method)
			if err != nil {
				return err
			}

			log.Info("distance cache copied",
				zap.String("from", from),
				zap.String("to", to),
				zap.Int("entries", n),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %d entries.\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "distance_cache.json", "Source cache location")
	cmd.Flags().StringVar(&to, "to", "", "Target cache location")
	cmd.Flags().StringVar(&method, "method", "", "Only copy entries computed with this distance method")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

// copySnapshot replaces the target snapshot with the source one, optionally
// keeping only the keys of a single strategy.
func copySnapshot(ctx context.Context, from, to, method string) (int, error) {
	src, closeSrc, err := cache.OpenStore(ctx, from)
	if err != nil {
		return 0, fmt.Errorf("copy snapshot: source: %w", err)
	}
	defer closeSrc()

	entries, err := src.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("copy snapshot: %w", err)
	}

	if method != "" {
		suffix := "_" + strings.ToLower(method)
		for k := range entries {
			if !strings.HasSuffix(k, suffix) {
				delete(entries, k)
			}
		}
	}

	dst, closeDst, err := cache.OpenStore(ctx, to)
	if err != nil {
		return 0, fmt.Errorf("copy snapshot: target: %w", err)
	}
	defer closeDst()

	if err := dst.Save(ctx, entries); err != nil {
		return 0, fmt.Errorf("copy snapshot: %w", err)
	}

	return len(entries), nil
}
