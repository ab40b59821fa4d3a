package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cognicore/cinerec/pkg/cinerec"
	"github.com/cognicore/cinerec/pkg/cinerec/config"
)

var (
	cfgPath      string
	cfgEngine    string
	cfgFactStore string
	cfgSQLiteDSN string
	cfgFormat    string
	cfgNoColor   bool
	cfgVerbose   bool
)

// Process-wide state built in PersistentPreRunE and released in
// PersistentPostRun.
var (
	settings config.Config
	logger   *zap.Logger
	app      *cinerec.Cinerec
)

var rootCmd = &cobra.Command{
	Use:   "cinerec",
	Short: "Cinerec - movie catalog filter and recommendation rules",
	Long: `Cinerec filters a fixed catalog of 24 movies by genre, year and rating,
and answers recommendation rules over the same catalog.

Genres: ciencia_ficcion, drama, accion, comedia, terror
(English names such as sci-fi, action, comedy and horror are accepted).`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&cfgEngine, "engine", "", "Rule engine: simple or prolog (default: simple)")
	rootCmd.PersistentFlags().StringVar(&cfgFactStore, "fact-store", "", "Fact store for the simple engine: memory or sqlite (default: memory)")
	rootCmd.PersistentFlags().StringVar(&cfgSQLiteDSN, "sqlite-dsn", "", "SQLite DSN for the sqlite fact store (default: in-memory)")
	rootCmd.PersistentFlags().StringVar(&cfgFormat, "format", "", "Output format: text, json or html (default: text)")
	rootCmd.PersistentFlags().BoolVar(&cfgNoColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().BoolVarP(&cfgVerbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(shellCmd)
}

// loadConfig layers the config file, CINEREC_* variables and flags over the
// defaults, in that order.
func loadConfig() (config.Config, error) {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	path := cfgPath
	if path == "" {
		path = os.Getenv("CINEREC_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg.ApplyEnv(os.Getenv)

	if cfgEngine != "" {
		cfg.Engine = strings.ToLower(cfgEngine)
	}
	if cfgFactStore != "" {
		cfg.FactStore = strings.ToLower(cfgFactStore)
	}
	if cfgSQLiteDSN != "" {
		cfg.SQLiteDSN = cfgSQLiteDSN
	}
	if cfgFormat != "" {
		cfg.Format = strings.ToLower(cfgFormat)
	}
	if cfgNoColor {
		cfg.Color = "never"
	}
	if cfgVerbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true
	return zc.Build()
}

func setup(cmd *cobra.Command, args []string) error {
	if app != nil {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	c, err := cinerec.Open(cmd.Context(), cfg, log)
	if err != nil {
		_ = log.Sync()
		return err
	}

	settings, logger, app = cfg, log, c
	return nil
}

func teardown(cmd *cobra.Command, args []string) {
	if app != nil {
		if err := app.Close(); err != nil {
			logger.Warn("close", zap.Error(err))
		}
		app = nil
	}
	if logger != nil {
		// Syncing stderr returns EINVAL on some platforms.
		_ = logger.Sync()
		logger = nil
	}
}
