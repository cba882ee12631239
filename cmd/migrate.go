package cmd

import (
	"fmt"

	"student-registry/core/config"
	"student-registry/core/database"
	"student-registry/core/logger"
	"student-registry/feature/students"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Initialize the database schema and exit",
	Long: `Runs the idempotent schema migration for the students table without
starting the HTTP server, then prints the resulting table layout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}

		store := students.NewStore(db)
		if err := store.Migrate(); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
		logg.Info("Schema migration completed", zap.String("table", "students"))

		// Print the effective table layout so operators can eyeball the result.
		columns, err := database.GetTableColumns(db, "students")
		if err != nil {
			return fmt.Errorf("failed to inspect students table: %w", err)
		}

		fmt.Println("\n=== students table ===")
		for _, col := range columns {
			fmt.Printf("%-12s %s\n", col.Field, col.Type)
		}
		fmt.Printf("Columns: %d\n", len(columns))

		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
