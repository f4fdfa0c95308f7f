package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	apiextensionsclient "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	"github.com/plfanzen/plfanzen/api/v1alpha1"
	"github.com/plfanzen/plfanzen/pkg/config"
	"github.com/plfanzen/plfanzen/pkg/gateway"
	"github.com/plfanzen/plfanzen/pkg/log"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var scheme = runtime.NewScheme()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ssh-gateway",
	Short: "Plfanzen SSH gateway - multi-tenant SSH reverse proxy",
	Long: `The Plfanzen SSH gateway is the single SSH endpoint players connect
to. It watches SSHGateway objects across the cluster, maps each login name
to the backend SSH server of one challenge instance, and proxies shell,
exec and direct-tcpip sessions onto it.

The host key location is read from PRIVATE_KEY_FILE; see
'ssh-gateway serve --help'.`,
	Version: Version,
}

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(v1alpha1.AddToScheme(scheme))

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Plfanzen ssh-gateway version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen-addr", "", "SSH listen address (overrides LISTEN_ADDR)")
	serveCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the SSH gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen-addr")
		logLevel, _ := cmd.Flags().GetString("log-level")

		log.Init(log.Config{Level: log.Level(logLevel), JSONOutput: true})
		logger := log.WithComponent("main")
		ctrl.SetLogger(zap.New(zap.UseDevMode(false)))

		cfg, err := config.GatewayFromEnv()
		if err != nil {
			return err
		}
		if listenAddr != "" {
			cfg.ListenAddr = listenAddr
		}

		signer, err := gateway.LoadOrGenerateHostKey(cfg.PrivateKeyFile)
		if err != nil {
			return err
		}

		restConfig, err := ctrl.GetConfig()
		if err != nil {
			return fmt.Errorf("loading cluster config: %w", err)
		}

		ctx, cancel := context.WithCancel(ctrl.SetupSignalHandler())
		defer cancel()

		extClient, err := apiextensionsclient.NewForConfig(restConfig)
		if err != nil {
			return fmt.Errorf("creating apiextensions client: %w", err)
		}
		if err := gateway.EnsureCRD(ctx, extClient, logger); err != nil {
			return err
		}

		mgr, err := ctrl.NewManager(restConfig, ctrl.Options{
			Scheme: scheme,
			// Session counters are served by our own metrics endpoint;
			// the controller-runtime one stays off.
			Metrics: metricsserver.Options{BindAddress: "0"},
		})
		if err != nil {
			return fmt.Errorf("creating controller manager: %w", err)
		}

		registry := gateway.NewRegistry()
		if err := gateway.NewReconciler(mgr.GetClient(), registry).SetupWithManager(mgr); err != nil {
			return fmt.Errorf("setting up reconciler: %w", err)
		}

		server := gateway.NewServer(signer, registry)
		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start(cfg.ListenAddr)
			cancel()
		}()
		defer server.Stop()

		// Blocks until the context is cancelled by a signal or by the SSH
		// listener failing.
		if err := mgr.Start(ctx); err != nil {
			return fmt.Errorf("running controller manager: %w", err)
		}
		select {
		case err := <-errCh:
			return err
		default:
			return nil
		}
	},
}
