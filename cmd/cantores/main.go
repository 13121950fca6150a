package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/szentjozsefhackathon/cantores/internal/interfaces/cli/migrate"
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/cli/seed"
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/cli/server"
	"github.com/szentjozsefhackathon/cantores/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cantores",
		Short: "Cantores - liturgical music planning service",
		Long:  `Cantores serves music plans for liturgical celebrations, with migration, catalog seeding and token tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
