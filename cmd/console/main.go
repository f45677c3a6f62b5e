package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"llm-chatbot/internal/models"
	"llm-chatbot/internal/repository"
	"llm-chatbot/internal/service"
	"llm-chatbot/pkg/config"
	"llm-chatbot/pkg/database"
	"llm-chatbot/pkg/logger"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dbDSN    string
	reset    bool
	question string
	noColor  bool
)

var (
	botColor    = color.New(color.FgGreen)
	promptColor = color.New(color.FgCyan, color.Bold)
	errColor    = color.New(color.FgRed)
)

var rootCmd = &cobra.Command{
	Use:   "console",
	Short: "Keyword support bot for the terminal",
	Long: `Answers order, pricing, support and FAQ questions from the local database
using fixed keyword rules. No language model is involved.`,
	RunE: runConsole,
}

func init() {
	rootCmd.Flags().StringVar(&dbDSN, "db", "", "SQLite database file, defaults to DB_DSN")
	rootCmd.Flags().BoolVar(&reset, "reset", false, "recreate and seed the database first")
	rootCmd.Flags().StringVarP(&question, "question", "q", "", "answer a single question and exit")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConsole(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if dbDSN != "" {
		cfg.Database.Driver = database.DriverSQLite
		cfg.Database.DSN = dbDSN
	}

	// keep the terminal for the conversation
	appLogger, err := logger.New("error")
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer appLogger.Sync()

	ctx := context.Background()
	db, err := database.Open(ctx, &cfg.Database, appLogger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	seeder := repository.NewSeeder(db, appLogger)
	if reset {
		if err := seeder.Reset(ctx); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	} else if err := seeder.EnsureChatLog(ctx); err != nil {
		return fmt.Errorf("prepare chat log: %w", err)
	}

	bot := service.NewKeywordBot(
		repository.NewCatalogRepository(db, appLogger),
		repository.NewFAQRepository(db, appLogger),
		appLogger,
	)
	chatLogs := repository.NewChatLogRepository(db, appLogger)
	sessionID := uuid.NewString()

	answer := func(text string) bool {
		reply, done := bot.Reply(ctx, text)
		turn := &models.ChatTurn{SessionID: sessionID, Timestamp: time.Now(), UserQuery: text, BotResponse: reply}
		if err := chatLogs.Create(ctx, turn); err != nil {
			appLogger.Error("Failed to write chat log", zap.Error(err))
		}

		if done {
			botColor.Println(reply)
			return true
		}
		if strings.HasPrefix(reply, "❌") {
			errColor.Println("Bot:", reply)
		} else {
			botColor.Println("Bot:", reply)
		}
		return false
	}

	if question != "" {
		answer(question)
		return nil
	}

	fmt.Println("🦙 LLaMA2 Chatbot\nAsk me anything related to orders, pricing, tech support, and more!")
	fmt.Printf("Session %s\n\n", sessionID)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		promptColor.Print("💬 Your Message\n\nYou: ")
		if !scanner.Scan() {
			break
		}
		if answer(scanner.Text()) {
			break
		}
	}
	return scanner.Err()
}
