package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ManuelReschke/RazorSync/internal/pkg/config"
	"github.com/ManuelReschke/RazorSync/internal/pkg/database"
	"github.com/ManuelReschke/RazorSync/internal/pkg/logger"
	"github.com/ManuelReschke/RazorSync/internal/pkg/timestamp"
)

// app holds what every subcommand needs once the environment is loaded.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	rt := &app{}

	root := &cobra.Command{
		Use:   "razorsync",
		Short: "Mirror Razorpay plans, customers and subscriptions into a local database",
		Long: `razorsync copies Razorpay plans (with their items), customers and
subscriptions into a relational database. Records are upserted by their
Razorpay ID, so running it repeatedly is safe.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.log != nil {
				_ = rt.log.Sync()
			}
		},
	}

	root.AddCommand(newSyncCmd(rt), newStatusCmd(rt))
	return root
}

func (rt *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.IsDev(), cfg.LogLevel)
	if err != nil {
		return err
	}

	timestamp.SetDefault(timestamp.New(
		timestamp.WithUseTZ(cfg.UseTZ),
		timestamp.WithLogger(log),
	))

	rt.cfg = cfg
	rt.log = log
	return nil
}

// openDatabase connects and migrates. The returned func closes the pool.
func (rt *app) openDatabase() (*gorm.DB, func(), error) {
	db, err := database.SetupDatabase(rt.cfg.Database, rt.log)
	if err != nil {
		return nil, nil, fmt.Errorf("database: %w", err)
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, closeFn, nil
}
