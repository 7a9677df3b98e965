// Command dms is the command-line front end for the document-management
// backend: sign in, browse and search documents, run two-phase uploads, and
// administer users, departments, and categories.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/dms-platform/dms-cli/config"
	"github.com/dms-platform/dms-cli/internal/bootstrap"
	apperrors "github.com/dms-platform/dms-cli/internal/errors"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx      context.Context
	Logger   *slog.Logger
	Config   config.AppConfig
	Services *bootstrap.ServiceContainer
}

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		bootstrap.InitLogger("info").Error("load config", "error", err)
		os.Exit(1)
	}
	logger := bootstrap.InitLogger(cfg.LogLevel)

	if len(os.Args) < 2 {
		if usageErr := printUsage(); usageErr != nil {
			logger.Error("print usage failed", "error", usageErr)
		}
		os.Exit(2)
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if writeErr := writef(os.Stderr, "unknown command %q\n\n", cmdName); writeErr != nil {
			logger.Error("print unknown command message failed", "error", writeErr)
		}
		if usageErr := printUsage(); usageErr != nil {
			logger.Error("print usage failed", "error", usageErr)
		}
		os.Exit(2)
	}

	services, err := bootstrap.BuildServices(bootstrap.ServiceDeps{
		Config: &cfg,
		Logger: logger,
	})
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := services.Close(); closeErr != nil {
			logger.Warn("close services failed", "error", closeErr)
		}
	}()

	cmdCtx := &commandContext{
		Ctx:      context.Background(),
		Logger:   logger,
		Config:   cfg,
		Services: services,
	}

	// Restore a persisted session before dispatch; protected commands refuse
	// without one.
	if restoreErr := services.Auth.Restore(cmdCtx.Ctx); restoreErr != nil {
		logger.Warn("session restore failed", "error", restoreErr)
	}

	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		reportFailure(logger, cmdName, runErr)
		os.Exit(1)
	}
}

// reportFailure prints expected operational failures as plain messages and
// logs everything else.
func reportFailure(logger *slog.Logger, cmdName string, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if writeErr := writef(os.Stderr, "%s\n", err.Error()); writeErr != nil {
			logger.Error("print failure message failed", "error", writeErr)
		}
		return
	}
	logger.Error("command failed", "command", cmdName, "error", err)
}

func commands() map[string]command {
	return map[string]command{
		"login": {
			name:        "login",
			description: "Sign in and persist the session",
			run:         runLogin,
		},
		"logout": {
			name:        "logout",
			description: "Clear the persisted session",
			run:         runLogout,
		},
		"whoami": {
			name:        "whoami",
			description: "Show the active session",
			run:         runWhoami,
		},
		"register": {
			name:        "register",
			description: "Create an account (does not sign in)",
			run:         runRegister,
		},
		"docs": {
			name:        "docs",
			description: "Browse, search, upload, and delete documents",
			run:         runDocs,
		},
		"users": {
			name:        "users",
			description: "Manage directory users (admin)",
			run:         runUsers,
		},
		"departments": {
			name:        "departments",
			description: "Manage departments (admin for mutations)",
			run:         runDepartments,
		},
		"categories": {
			name:        "categories",
			description: "Manage categories (admin for mutations)",
			run:         runCategories,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: dms <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	for _, name := range commandOrder {
		c := commands()[name]
		if err := writef(os.Stdout, "  %-14s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

var commandOrder = []string{
	"login", "logout", "whoami", "register",
	"docs", "users", "departments", "categories",
}
