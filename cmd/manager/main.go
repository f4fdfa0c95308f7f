package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/plfanzen/plfanzen/pkg/api"
	"github.com/plfanzen/plfanzen/pkg/config"
	"github.com/plfanzen/plfanzen/pkg/log"
	"github.com/plfanzen/plfanzen/pkg/manager"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "manager",
	Short: "Plfanzen manager - CTF challenge orchestration",
	Long: `The Plfanzen manager serves the challenge gRPC API: it syncs the
challenge repository, renders and scores challenges per actor, and deploys
challenge instances as namespaces into the cluster.

Domain configuration comes from the environment (GIT_URL, GIT_BRANCH,
REPO_DIR, EXPOSED_DOMAIN, HMAC_SECRET_KEY); see 'manager serve --help'.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Plfanzen manager version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen-addr", "", "gRPC listen address (overrides LISTEN_ADDR)")
	serveCmd.Flags().String("health-addr", ":8081", "health and metrics listen address")
	serveCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the challenge manager",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen-addr")
		healthAddr, _ := cmd.Flags().GetString("health-addr")
		logLevel, _ := cmd.Flags().GetString("log-level")

		log.Init(log.Config{Level: log.Level(logLevel), JSONOutput: true})
		logger := log.WithComponent("main")
		api.Version = Version

		cfg, err := config.ManagerFromEnv()
		if err != nil {
			return err
		}
		if listenAddr != "" {
			cfg.ListenAddr = listenAddr
		}
		if cfg.HMACSecret == "" {
			logger.Warn().Msg("HMAC_SECRET_KEY is not set, instance passwords will be derived from flag material")
		}

		restConfig, err := ctrl.GetConfig()
		if err != nil {
			return fmt.Errorf("loading cluster config: %w", err)
		}
		client, err := kubernetes.NewForConfig(restConfig)
		if err != nil {
			return fmt.Errorf("creating cluster client: %w", err)
		}
		dyn, err := dynamic.NewForConfig(restConfig)
		if err != nil {
			return fmt.Errorf("creating dynamic client: %w", err)
		}

		mgr := manager.NewManager(cfg, client, dyn)

		// First sync. A failure here is not fatal: the readiness probe
		// stays red until a later SyncChallenges RPC succeeds.
		if _, err := mgr.SyncChallenges(cmd.Context()); err != nil {
			logger.Warn().Err(err).Msg("initial repository sync failed")
		}

		collector := manager.NewMetricsCollector(mgr)
		collector.Start()
		defer collector.Stop()

		healthServer := api.NewHealthServer(mgr)
		go func() {
			if err := healthServer.Start(healthAddr); err != nil {
				logger.Error().Err(err).Msg("health server stopped")
			}
		}()

		apiServer := api.NewServer(mgr)
		errCh := make(chan error, 1)
		go func() {
			errCh <- apiServer.Start(cfg.ListenAddr)
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			logger.Info().Str("signal", sig.String()).Msg("shutting down")
		case err := <-errCh:
			if err != nil {
				return err
			}
		}

		apiServer.Stop()
		return nil
	},
}
