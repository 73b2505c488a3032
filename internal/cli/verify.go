package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Re-verify every record signature",
		Long:  "verify recomputes the HMAC of every record and prints the integrity report as JSON. It exits 1 when any record is invalid or the log cannot be read.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, stack, err := a.openStack(ctx)
			if err != nil {
				return err
			}
			defer stack.Close()

			svc := stack.NewAuditService(cfg, nil, a.logger())
			report := svc.VerifyAllActions(ctx)

			if !quiet {
				enc := json.NewEncoder(a.stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			}

			for _, e := range report.Errors {
				if e.ID == "" {
					return fmt.Errorf("%w: %s", ErrIntegrity, e.Reason)
				}
			}
			if report.Invalid > 0 {
				return fmt.Errorf("%w: %d of %d records invalid", ErrIntegrity, report.Invalid, report.Total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing; report only through the exit code")
	return cmd
}
