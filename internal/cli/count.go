package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/lazypower/lovesim/internal/counter"
	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print how many simulations have been run",
	RunE:  runCount,
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s, err := counter.Open(cfg)
	if err != nil {
		return fmt.Errorf("open counter: %w", err)
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Read the store directly: a backend error fails the command.
	n, err := s.Get(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s simulations run (%s)\n", bold(humanize.Comma(n)), cfg.Counter.Backend)
	return nil
}
