package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func sweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Trigger an immediate source sweep",
		Long:  "Triggers the pipeline to sweep all configured deal sources now.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.TriggerSweep(context.Background()); err != nil {
				return err
			}

			fmt.Println("Sweep triggered.")
			return nil
		},
	}
}

func cleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Delete expired deals now",
		Long:  "Triggers immediate deletion of catalog deals whose offer window has ended.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.TriggerCleanup(context.Background()); err != nil {
				return err
			}

			fmt.Println("Cleanup triggered.")
			return nil
		},
	}
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show page-fetch quota status",
		Example: `  dealctl quota
  dealctl quota --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			q, err := c.GetQuota(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(q)
			}
			return printQuota(q)
		},
	}
}
