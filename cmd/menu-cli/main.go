package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"menu-engine/internal/config"
	"menu-engine/internal/database"
	"menu-engine/internal/generator"
	"menu-engine/internal/logger"
	"menu-engine/internal/metrics"
	"menu-engine/internal/notification"
	"menu-engine/internal/observability"
	"menu-engine/internal/week"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()
	cfg, err := config.NewFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.NewDB(cfg.DatabasePath, log)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}
	defer db.Close()

	ctx := context.Background()

	switch os.Args[1] {
	case "generate":
		generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
		weekStart := generateCmd.String("week-start", "", "Monday of the week to generate (YYYY-MM-DD)")
		weekEnd := generateCmd.String("week-end", "", "Sunday of the week to generate (YYYY-MM-DD)")
		force := generateCmd.Bool("force", false, "Delete and regenerate existing menus")
		generateCmd.Parse(os.Args[2:])

		override, err := week.ParseOverride(*weekStart, *weekEnd)
		if err != nil {
			log.Fatal("Invalid week", "error", err)
		}

		deliverer, err := notification.NewDelivererFromConfig(cfg, log)
		if err != nil {
			log.Fatal("Failed to initialize notification channel", "error", err)
		}

		shutdownTracing := observability.InitOTel(ctx, cfg, log)
		report, err := generator.NewRunnerFromDB(db.SQL, deliverer, log).Run(ctx, generator.Request{Override: override, Force: *force})
		if serr := shutdownTracing(ctx); serr != nil {
			log.Warn("Tracer shutdown failed", "error", serr)
		}
		if err != nil {
			log.Fatal("Generation failed", "error", err)
		}

		generated, skipped, failed := report.Result.Counts()
		fmt.Printf("Week %s..%s: %d generated, %d skipped, %d failed, %d notified.\n",
			report.Window.WeekStart(), report.Window.WeekEnd(), generated, skipped, failed, report.NotificationsSent)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.Result.Outcomes); err != nil {
			log.Error("Failed to print results", "error", err)
		}
		if failed > 0 {
			os.Exit(2)
		}
	case "runs-cleanup":
		cleanupCmd := flag.NewFlagSet("runs-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 90, "Keep runs for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		affected, err := metrics.NewStore(db.SQL).Cleanup(ctx, *days)
		if err != nil {
			log.Fatal("Cleanup failed", "error", err)
		}
		fmt.Printf("Successfully removed %d old generation runs.\n", affected)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: menu-cli <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  generate       Generate weekly menus for all active subscriptions")
	fmt.Println("  runs-cleanup   Remove old generation run records")
}
