package cli

import (
	"errors"
	"fmt"
	"time"

	"admin-audit-log/internal/core/ports"
	"admin-audit-log/internal/service"

	"github.com/spf13/cobra"
)

func newTokenCmd(a *app) *cobra.Command {
	var (
		claims ports.AdminClaims
		expiry time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an admin bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if claims.AdminID == "" || claims.Email == "" {
				return errors.New("--admin-id and --email are required")
			}

			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Auth.JWTSecret == "" {
				return errors.New("auth.jwt_secret is required (AAL_AUTH_JWT_SECRET)")
			}
			if expiry <= 0 {
				expiry = cfg.Auth.TokenExpiry
			}

			tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, expiry, cfg.Auth.Issuer)
			token, expiresAt, err := tokenSvc.Generate(claims)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.stdout, token)
			fmt.Fprintf(a.stderr, "expires %s\n", expiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&claims.AdminID, "admin-id", "", "admin id (token subject)")
	cmd.Flags().StringVar(&claims.Email, "email", "", "admin email")
	cmd.Flags().StringVar(&claims.SessionID, "session", "", "session id recorded on every action")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime (default auth.token_expiry)")
	return cmd
}
