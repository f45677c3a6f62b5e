package main

import (
	"context"
	"fmt"
	"os"

	"llm-chatbot/internal/repository"
	"llm-chatbot/pkg/config"
	"llm-chatbot/pkg/database"
	"llm-chatbot/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dbDriver string
	dbDSN    string
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Recreate the reference tables and load the sample data",
	Long: `Drops and recreates product_info, order_status, support_contacts, faq and
chat_log, then inserts the sample products, orders, support contacts and FAQs.`,
	RunE: runSeed,
}

func init() {
	rootCmd.Flags().StringVar(&dbDriver, "driver", "", "database driver (sqlite3 or pgx), defaults to DB_DRIVER")
	rootCmd.Flags().StringVar(&dbDSN, "dsn", "", "database DSN, defaults to DB_DSN")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dbDriver != "" {
		cfg.Database.Driver = dbDriver
	}
	if dbDSN != "" {
		cfg.Database.DSN = dbDSN
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.Open(ctx, &cfg.Database, logger.Get())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Starting database seeding...", zap.String("driver", db.Driver))
	if err := repository.NewSeeder(db, logger.Get()).Reset(ctx); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	logger.Info("Database seeding completed successfully!")
	return nil
}
