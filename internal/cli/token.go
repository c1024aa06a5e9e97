package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/utils"
	"github.com/spf13/cobra"
)

func newTokenCommand(a *app) *cobra.Command {
	var (
		userID string
		email  string
		roles  []string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for the HTTP API signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id := uuid.New()
			if userID != "" {
				parsed, err := utils.ParseUUID(userID)
				if err != nil {
					return fmt.Errorf("invalid --user-id %q: %w", userID, err)
				}
				id = parsed
			}

			jwtManager := utils.NewJWTManager(a.cfg.JWT.Secret, a.cfg.JWT.ExpiryHours)
			token, err := jwtManager.GenerateAccessToken(id, email, roles)
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "user id of the token (random when empty)")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().StringSliceVar(&roles, "role", []string{"cashier"}, "role claims")

	return cmd
}
