package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jankerzone/tagihan-serampangan-v2/internal/budget"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/cli"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/config"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/iocli"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/session"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/storage"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/storage/boltdb"
	"github.com/jankerzone/tagihan-serampangan-v2/internal/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "", "Path to local database (overrides TAGIHAN_DB_PATH)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	cfg := config.Load()
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	kv, err := openStorage(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	users := budget.NewUserStore(kv, cfg.HashScheme)
	sessions := session.NewManager(kv, cfg.SessionTTL)
	commands := cli.New(iocli.NewStdio(), kv, users, sessions, logger)

	commands.Run(ctx, args[0], args[1:])
}

func openStorage(ctx context.Context, cfg *config.Config) (storage.KV, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlite.New(ctx, cfg.DBPath)
	default:
		return boltdb.New(ctx, cfg.DBPath)
	}
}

func printVersion() {
	fmt.Printf("Tagihan Serampangan\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
