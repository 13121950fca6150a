package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/auth"
	"github.com/szentjozsefhackathon/cantores/internal/infrastructure/config"
	"github.com/szentjozsefhackathon/cantores/internal/shared/authorization"
	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
)

var (
	env        string
	configPath string
	userID     uint
	role       string
)

// NewCommand issues access tokens for users authenticated elsewhere.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		Long:  `Sign a bearer token for a user id and role with the configured JWT secret.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().UintVarP(&userID, "user-id", "u", 0, "User id (required)")
	cmd.Flags().StringVarP(&role, "role", "r", string(authorization.RoleUser), "Role (user, admin)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	userRole := authorization.UserRole(role)
	if !userRole.IsValid() {
		return fmt.Errorf("invalid role %q", role)
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	token, err := svc.Generate(userID, userRole)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token.Token)
	fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", token.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}
