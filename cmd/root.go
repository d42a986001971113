package cmd

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/andresmejia3/frames/internal/logger"
	"github.com/andresmejia3/frames/internal/store"
	"github.com/andresmejia3/frames/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// dbURL is the connection string; empty means resolve from the environment
	dbURL   string
	verbose bool
	noColor bool
)

// Version is the application version.
const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "frames",
	Short:   "Inspect, export and publish the built-in detection frame table",
	Version: Version,
	// Errors are reported once, by run
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(verbose, noColor)
	},
}

func Execute() {
	// Create a context that listens for Ctrl+C (SIGINT) or Kill (SIGTERM)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		os.Exit(1)
	}
}

// run executes the command line and reports a failure on stderr exactly once.
func run(ctx context.Context, args []string, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		utils.ShowError(stderr, "Command failed", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored log output")
}

// addDBFlag registers --db on commands that talk to PostgreSQL.
func addDBFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&dbURL, "db", "", "PostgreSQL connection string (default: postgres://localhost:5432/frames)")
}

// resolveDBURL prefers the flag, then POSTGRES_* variables, then a local default.
func resolveDBURL(flag string) string {
	if flag != "" {
		return flag
	}
	if host := os.Getenv("POSTGRES_HOST"); host != "" {
		user := os.Getenv("POSTGRES_USER")
		pass := os.Getenv("POSTGRES_PASSWORD")
		name := os.Getenv("POSTGRES_DB")
		port := os.Getenv("POSTGRES_PORT")
		if port == "" {
			port = "5432"
		}
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(user, pass),
			Host:   net.JoinHostPort(host, port),
			Path:   "/" + name,
		}
		return u.String()
	}
	return "postgres://localhost:5432/frames"
}

// openDB connects using the resolved URL. Callers must Close the store.
func openDB(ctx context.Context) (*store.Store, error) {
	connString := resolveDBURL(dbURL)
	log.Debug("connecting to database", "url", redactURL(connString))
	db, err := store.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// redactURL hides the password so connection strings are safe to log.
func redactURL(connString string) string {
	u, err := url.Parse(connString)
	if err != nil {
		return "<unparseable>"
	}
	return u.Redacted()
}
