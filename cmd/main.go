package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/sbilibin2017/volunteer-hours/internal/cli"
	"github.com/sbilibin2017/volunteer-hours/internal/logger"
	"github.com/sbilibin2017/volunteer-hours/internal/middlewares"
	"github.com/sbilibin2017/volunteer-hours/internal/repositories"
	"github.com/sbilibin2017/volunteer-hours/internal/services"
	"github.com/sbilibin2017/volunteer-hours/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the application
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	dbPath, logLevel, logFile, adminsFile, strict, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		dbPath, logLevel, logFile, adminsFile, strict,
		os.Stdin, os.Stdout,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the database, logging, admin seeding and validation settings.
func parseConfig(path string) (
	dbPath, logLevel, logFile, adminsFile string,
	strict bool,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	dbPath = getEnv("APP_DB_PATH", "volunteer_hours.db")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	logFile = getEnv("APP_LOG_FILE", "volunteer_hours.log")
	adminsFile = getEnv("APP_ADMINS_FILE", "admins.yaml")
	if strict, err = strconv.ParseBool(getEnv("APP_STRICT", "false")); err != nil {
		return
	}

	return
}

// run initializes the logger and the database, seeds Admin accounts and
// serves the terminal session on in/out until the user leaves.
func run(ctx context.Context,
	dbPath, logLevel, logFile, adminsFile string,
	strict bool,
	in io.Reader, out io.Writer,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel, logFile); err != nil {
		fmt.Fprintln(out, "failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infow("logger initialized", "level", logLevel, "strict", strict)

	// Open SQLite and apply the schema
	db, err := storage.Open(ctx, dbPath, strict)
	if err != nil {
		logger.Log.Errorw("failed to open database", "path", dbPath, "error", err)
		return err
	}
	defer db.Close()

	if err := storage.RunMigrations(ctx, db); err != nil {
		logger.Log.Errorw("failed to run migrations", "error", err)
		return err
	}

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	hourReadRepo := repositories.NewHourEntryReadRepository(db, txGetter)
	hourWriteRepo := repositories.NewHourEntryWriteRepository(db, txGetter)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo)
	hoursService := services.NewHoursService(hourWriteRepo, hourReadRepo, userReadRepo, strict)

	// Seed Admin accounts
	err = middlewares.WithTx(ctx, db, func(ctx context.Context) error {
		_, err := authService.SeedAdmins(ctx, adminsFile)
		return err
	})
	if err != nil {
		return err
	}

	// Serve the terminal session
	console := cli.NewConsole(in, out)
	app := cli.NewApp(db, authService, hoursService, console, out)
	cli.Run(ctx, app, console.Scanner())

	logger.Log.Info("session ended")
	return nil
}
