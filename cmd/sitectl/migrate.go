package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"studio-site/internal/config"
	"studio-site/internal/repository/sqlite"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQLite migrations",
	Long: `migrate brings the SQLite content store at store.path up to the latest schema.
The DynamoDB store is schemaless and needs no migrations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if appConfig.Store.Driver != config.DriverSQLite {
			return fmt.Errorf("migrate only applies to the %s driver, configured driver is %q", config.DriverSQLite, appConfig.Store.Driver)
		}
		if err := appConfig.ValidateStore(); err != nil {
			return err
		}

		dbConn, err := sqlite.Open(appConfig.Store.Path)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		version, err := sqlite.Migrate(cmd.Context(), dbConn)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is at schema version %d\n", appConfig.Store.Path, version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
