package cmd

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"servicetrack/internal/config"
	"servicetrack/internal/database"
	"servicetrack/internal/server"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the ServiceTrack API server",
	Long: `Start the ServiceTrack API server: connects to MySQL, creates the
schema if needed, runs the startup maintenance tasks and serves the
REST API used by the mobile app.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Infow("configuration loaded", "source", cfg.Source, "host", cfg.DB.Host)

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()
	log.Infof("database connected to %s:%d", cfg.DB.Host, cfg.DB.Port)

	if err := db.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Info("all tables initialized")

	// Contracts that lapse while the process stays up get flipped by a
	// daily re-run of the startup sweep. Reads never trigger it.
	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@daily", func() {
		n, err := db.ExpireOverdueAmcs(time.Now())
		if err != nil {
			log.Errorw("AMC expiry sweep failed", "error", err)
			return
		}
		if n > 0 {
			log.Infof("AMC expiry sweep marked %d contract(s) expired", n)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule AMC sweep: %w", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	srv := server.NewServer(db, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Infof("ServiceTrack API running on port %d", cfg.Server.Port)
	if err := srv.Start(addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
