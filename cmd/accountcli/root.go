package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"accountcli/internal/api"
	"accountcli/internal/cli"
	"accountcli/internal/config"
	"accountcli/internal/logging"
	"accountcli/internal/output"
	"accountcli/internal/session"
	"accountcli/internal/storage"
)

var (
	cfgFile    string
	serverURL  string
	storePath  string
	reqTimeout time.Duration
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "accountcli",
	Short: "Interactive account client",
	Long: `accountcli is an interactive client for the account service.

It walks through registration, OTP verification, sign-in and password
reset, and opens the profile dashboard once signed in. Session state is
kept locally, so a restart resumes the signed-in session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .accountcli.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "account service base URL")
	rootCmd.PersistentFlags().StringVar(&storePath, "storage", "", "local state database path")
	rootCmd.PersistentFlags().DurationVar(&reqTimeout, "timeout", 0, "request timeout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("server.url", rootCmd.PersistentFlags().Lookup("server"))
	_ = viper.BindPFlag("storage.path", rootCmd.PersistentFlags().Lookup("storage"))
	_ = viper.BindPFlag("server.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if serverURL != "" {
		cfg.Server.URL = serverURL
	}
	if storePath != "" {
		cfg.Storage.Path = storePath
	}
	if reqTimeout > 0 {
		cfg.Server.Timeout = reqTimeout
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger := logging.NewTextLogger(os.Stderr, level)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DSN()
	if err != nil {
		return err
	}
	db, err := storage.InitDatabase(ctx, dsn)
	if err != nil {
		return fmt.Errorf("opening local storage: %w", err)
	}
	defer func() { _ = db.Close() }()

	client := api.NewHTTPClient(cfg.Server.URL, cfg.Server.Timeout, storage.NewTokenSource(db))
	sess := session.NewStore(client, db, logger)
	printer := output.NewPrinter(output.ResolveColors(cfg.Output.Colors))

	app := cli.NewApp(sess, client, db, printer, logger)
	return app.Run(ctx)
}
