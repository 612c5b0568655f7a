package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kazuyat/siege-roster/cmd/cli/commands"
	"github.com/kazuyat/siege-roster/internal/config"
	"github.com/kazuyat/siege-roster/pkg/clients/sheetsclient"
	"github.com/kazuyat/siege-roster/pkg/db"
	"github.com/kazuyat/siege-roster/pkg/sheetssql"
	"github.com/kazuyat/siege-roster/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Siege Roster CLI - Manage event rosters",
		Long:  `A CLI tool for managing alliance members and building daily rosters for multi-day siege events.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.BuildScheduleCmd(appRef()))
	rootCmd.AddCommand(commands.UpdateMemberCmd(appRef()))
	rootCmd.AddCommand(commands.ListMembersCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared application context, allocating it before
// initApp fills it in during PersistentPreRunE
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, clients, and database
func initApp() error {
	var err error
	a := appRef()
	a.Ctx = context.Background()

	// Initialize logger
	a.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	a.Logger.Info("Loading configuration")
	a.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.Logger.Debug("Configuration loaded successfully")

	// Load OAuth client configuration
	a.Logger.Info("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load OAuth client config: %w", err)
	}
	a.Logger.Debug("OAuth configuration loaded successfully")

	// Initialize sheets client
	a.Logger.Info("Initializing sheets client")
	a.SheetsClient, err = sheetsclient.NewClient(a.Ctx, oauthCfg, env)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}
	a.Logger.Debug("Sheets client initialized successfully")

	// Initialize database schema
	a.Logger.Info("Initializing database schema")
	schema, err := sheetssql.SchemaFromModels(
		db.Member{},
		db.ScheduleRun{},
	)
	if err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}
	a.Logger.Debug("Database schema created", zap.Int("tables", len(schema.Tables)))

	// Initialize SheetsSQL database
	a.Logger.Info("Connecting to database", zap.String("spreadsheet_id", a.Cfg.DatabaseSheetID))
	ssqlDB, err := sheetssql.NewDB(a.SheetsClient, a.Cfg.DatabaseSheetID, schema)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize DB layer
	a.Database = db.NewDB(ssqlDB)
	a.Logger.Info("Database initialized successfully")

	return nil
}
