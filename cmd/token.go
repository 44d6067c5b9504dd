package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/restodesk/internal/devserver"
)

var tokenOpts struct {
	subject string
	ttl     time.Duration
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the development backend",
	Long: `Sign a token with server.jwt_secret. Put it in backend.token (or
RESTODESK_BACKEND_TOKEN) to talk to a dev backend started with a secret.

Example:
  export RESTODESK_BACKEND_TOKEN=$(restodesk token --ttl 24h)`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ttl := tokenOpts.ttl
		if ttl <= 0 {
			ttl = cfg.Server.TokenTTL
		}
		tok, err := devserver.IssueToken(cfg.Server.JWTSecret, tokenOpts.subject, ttl, time.Now())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenOpts.subject, "subject", "restodesk", "token subject")
	tokenCmd.Flags().DurationVar(&tokenOpts.ttl, "ttl", 0, "validity (default server.token_ttl)")
	rootCmd.AddCommand(tokenCmd)
}
