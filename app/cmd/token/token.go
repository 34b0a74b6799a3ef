package token

import (
	"github.com/ribgsilva/studyvault/platform/auth"
	"github.com/ribgsilva/studyvault/platform/env"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"time"
)

// Command returns the token command, minting a token signed with AUTH_SECRET for local use
func Command() *cobra.Command {
	var u auth.User
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mints a bearer token for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := zap.NewNop().Sugar()
			v := auth.NewVerifier(env.Must(log, "AUTH_SECRET"), env.OrDefault(log, "AUTH_ISSUER", ""))

			signed, err := v.Issue(u, ttl)
			if err != nil {
				return err
			}
			cmd.Println(signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&u.ID, "user", "", "user id")
	cmd.Flags().StringVar(&u.Name, "name", "", "display name")
	cmd.Flags().StringVar(&u.Email, "email", "", "email")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
