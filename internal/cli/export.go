package cli

import (
	"fmt"
	"io"
	"os"

	"admin-audit-log/internal/adapter/http/dto"

	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		q   dto.FilterQuery
		out string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export matching records as CSV",
		Long:  "export writes the records matching the filters as CSV, newest first, to stdout or to --out.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := q.Filter()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			cfg, stack, err := a.openStack(ctx)
			if err != nil {
				return err
			}
			defer stack.Close()

			svc := stack.NewAuditService(cfg, nil, a.logger())
			csv, err := svc.ExportActionsAsCSV(ctx, filter)
			if err != nil {
				return err
			}

			if out == "" {
				_, err := io.WriteString(a.stdout, csv)
				return err
			}
			if err := writeFile(out, csv); err != nil {
				return err
			}
			fmt.Fprintf(a.stderr, "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&q.AdminEmail, "admin-email", "", "case-insensitive substring of the admin email")
	cmd.Flags().StringVar(&q.ActionType, "action-type", "", "exact action type")
	cmd.Flags().StringVar(&q.SessionID, "session-id", "", "exact session id")
	cmd.Flags().StringVar(&q.From, "from", "", "lower createdAt bound (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&q.To, "to", "", "upper createdAt bound (RFC 3339, or YYYY-MM-DD for the whole day)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

// writeFile reports a failed Close, since buffered data may only reach the
// disk then.
func writeFile(path, data string) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o640)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, data); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
