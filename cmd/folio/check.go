package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"folio.dev/internal/services"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch and decode every data file",
	Long:  `Loads the project, education and experience records and every linked project detail page, reporting any that cannot be fetched or decoded.`,
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ps, ts, err := newServices(cfg)
	if err != nil {
		return err
	}

	results := services.Check(cmd.Context(), ps, ts)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(tw, "FAIL\t%s\t%v\n", r.Resource, r.Err)
			continue
		}
		fmt.Fprintf(tw, "ok\t%s\t%d items\n", r.Resource, r.Items)
	}
	tw.Flush()

	if failed > 0 {
		return fmt.Errorf("%d of %d resources failed", failed, len(results))
	}
	return nil
}
