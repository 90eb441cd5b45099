package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inamate/sceneedit/internal/auth"
	"github.com/inamate/sceneedit/internal/config"
)

// NewTokenCommand creates the command that issues API bearer tokens
func NewTokenCommand(cfg *config.Config) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the editor API",
		Long:  "Signs a token with SCENEEDIT_JWT_SECRET. It expires after SCENEEDIT_TOKEN_TTL.",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := auth.NewService(cfg.JWTSecret, cfg.TokenTTL).IssueToken(subject)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "editor", "Token subject")

	return cmd
}
