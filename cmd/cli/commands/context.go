package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/kazuyat/siege-roster/internal/config"
	"github.com/kazuyat/siege-roster/pkg/clients/sheetsclient"
	"github.com/kazuyat/siege-roster/pkg/db"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg          *config.Config
	SheetsClient *sheetsclient.Client
	Database     *db.DB
	Logger       *zap.Logger
	Ctx          context.Context
}
