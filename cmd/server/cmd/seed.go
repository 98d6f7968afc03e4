package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/placementiq/placement-api/pkg/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty database with sample data",
	Long: `Insert 50 students, 10 companies, 20 drives and 30 to 40 offers.

Nothing is written when the students collection already has documents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func runSeed(cmd *cobra.Command) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.close(context.Background()); err != nil {
			logger.Get().Error().Err(err).Msg("closing connections")
		}
	}()

	res, err := a.seed.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, res.Message)
	if !res.AlreadySeeded {
		fmt.Fprintf(out, "  students:  %d\n  companies: %d\n  drives:    %d\n  offers:    %d\n",
			res.Students, res.Companies, res.Drives, res.Offers)
	}
	return nil
}
