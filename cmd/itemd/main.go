// itemd - CRUD HTTP service for items.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/getitemd/itemd/pkg/api"
	"github.com/getitemd/itemd/pkg/config"
	"github.com/getitemd/itemd/pkg/logging"
	"github.com/getitemd/itemd/pkg/store"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var (
	flagConfig    string
	flagPort      int
	flagDBBackend string
	flagDBDSN     string
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:          "itemd",
	Short:        "Items CRUD API server",
	Args:         cobra.NoArgs,
	RunE:         runServe,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("itemd %s (commit %s, built %s)\n", Version, Commit, BuildDate)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to a YAML or JSON config file")
	rootCmd.Flags().IntVarP(&flagPort, "port", "p", 0, "HTTP listen port (overrides config)")
	rootCmd.Flags().StringVar(&flagDBBackend, "db-backend", "", "Storage backend: sqlite, postgres, or memory")
	rootCmd.Flags().StringVar(&flagDBDSN, "db-dsn", "", "Database DSN (file path for sqlite)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagLogFormat, "log-format", "", "Log format: text or json")
	rootCmd.AddCommand(versionCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Flags win over file and environment.
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}
	if flagDBBackend != "" {
		cfg.Store.Backend = store.Backend(flagDBBackend)
	}
	if flagDBDSN != "" {
		cfg.Store.DSN = flagDBDSN
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.Log.Format = flagLogFormat
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
	})

	// Schema initialization happens inside Open, before the listener starts.
	st, err := store.Open(cfg.Store)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn("error closing store", "error", err)
		}
	}()

	a := api.New(cfg.Port, api.WithStore(st), api.WithLogger(log))
	if err := a.Start(); err != nil {
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	if err := a.Stop(); err != nil {
		log.Warn("error during shutdown", "error", err)
	}
	log.Info("itemd stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
