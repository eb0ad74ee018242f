// Package main provides the CLI entry point for sheetsync.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/hokuto3/sheetsync-go/pkg/sheetsync"
	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/config"
	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/excel"
	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/logging"
	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/models"
	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/server"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetsync",
		Short: "Synchronize tabular data between spreadsheet ranges",
		Long: `sheetsync reads an origin and a destination spreadsheet range, decides
whether the destination is stale, and rewrites it wholesale or row by row.`,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ./sheetsync.toml)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the synchronization HTTP server",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	syncCmd := &cobra.Command{
		Use:   "sync [request.json]",
		Short: "Run one synchronization from a JSON request file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSync,
	}

	rootCmd.AddCommand(serveCmd, syncCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.JSON)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	store := excel.NewStore(cfg.Workspace.Dir, log)
	syncer := sheetsync.NewSyncer(store, log)
	srv := server.New(syncer, log)

	log.Infow("sheetsync server starting",
		"addr", cfg.Server.Addr,
		"workspace", cfg.Workspace.Dir,
	)
	return http.ListenAndServe(cfg.Server.Addr, srv.Handler())
}

func runSync(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.JSON)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading request file: %w", err)
	}
	var req models.SyncRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("parsing request file: %w", err)
	}

	store := excel.NewStore(cfg.Workspace.Dir, log)
	syncer := sheetsync.NewSyncer(store, log)

	res, err := syncer.Sync(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}
	if res.Strategy == models.StrategySkip {
		fmt.Println("No update needed; data is already synchronized.")
	} else {
		fmt.Println("Completed")
	}
	return nil
}
