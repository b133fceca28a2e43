// Package cli implements the cfdns command tree.
package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/REOL/cloudflare/internal/config"
	"github.com/REOL/cloudflare/internal/metrics"
	"github.com/REOL/cloudflare/pkg/api"
)

var (
	configPath  string
	showVersion bool
)

// Version is set via ldflags during build.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "cfdns",
	Short: "Manage DNS records through the legacy Cloudflare API",
	Long: "cfdns lists, creates, and deletes DNS records for domains hosted on\n" +
		"Cloudflare, speaking the legacy GET-based client API.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Println(Version)
			os.Exit(0)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (.yaml or .toml)")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

// Execute runs the command tree.
func Execute() {
	metrics.SetBuildInfo(Version, runtime.Version())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the configuration, installs the logger, and builds a client.
func setup() (*config.Config, *api.Client) {
	path := configPath
	if path == "" {
		path = config.GetConfigFilePath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fatal(err)
	}

	logger := setupLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	opts := []api.Option{
		api.WithLogger(logger),
		api.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, api.WithEndpoint(cfg.Endpoint))
	}
	if cfg.MaxPages > 0 {
		opts = append(opts, api.WithMaxPages(cfg.MaxPages))
	}

	return cfg, api.New(cfg.Email, cfg.APIKey, opts...)
}

func setupLogger(level, format string) *slog.Logger {
	logLevel := parseLogLevel(level)

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	}

	return slog.New(handler)
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// printRecords writes records as an aligned table to stdout.
func printRecords(records []api.Record) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tNAME\tTTL\tCONTENT")
	for _, rec := range records {
		ttl := fmt.Sprintf("%d", rec.TTL)
		if rec.TTL == api.TTLAutomatic {
			ttl = "auto"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", rec.ID, rec.Type, rec.Name, ttl, rec.Content)
	}
	w.Flush()
}
