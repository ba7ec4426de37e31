// Package commands defines the CLI commands for the namaa binary.
package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/api"
	"github.com/om607397-wq/namaa/internal/cloud"
	"github.com/om607397-wq/namaa/internal/config"
	"github.com/om607397-wq/namaa/internal/core"
	"github.com/om607397-wq/namaa/internal/crypto"
	"github.com/om607397-wq/namaa/internal/logger"
	"github.com/om607397-wq/namaa/internal/middleware"
	"github.com/om607397-wq/namaa/internal/observe"
	"github.com/om607397-wq/namaa/internal/providers"
	"github.com/om607397-wq/namaa/internal/store"
	"github.com/om607397-wq/namaa/internal/tracker"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// NewServeCommand creates the serve command that runs the HTTP server.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the namaa HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runServer(); err != nil {
				fmt.Fprintf(os.Stderr, "serve: %v\n", err)
				os.Exit(1)
			}
		},
	}
}

// NewExportCommand creates the export command that dumps all records to JSON.
func NewExportCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all local records as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runExport(output); err != nil {
				fmt.Fprintf(os.Stderr, "export: %v\n", err)
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// NewImportCommand creates the import command that restores records from a
// JSON export. Existing records are replaced; settings are preserved unless
// the import contains their own.
func NewImportCommand() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import records from a JSON export",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runImport(input); err != nil {
				fmt.Fprintf(os.Stderr, "import: %v\n", err)
				os.Exit(1)
			}
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file (required)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the namaa version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("namaa %s\n", Version)
		},
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	gin.SetMode(cfg.GinMode)
	metrics := observe.New()

	ns, err := openNamespace(cfg, log, metrics)
	if err != nil {
		return err
	}
	defer func() { _ = ns.Close() }()

	trk := tracker.NewService(ns, nil)
	sessions := core.NewSessionManager()

	var (
		clients   *cloud.Clients
		syncSvc   core.SyncService
		accounts  core.AccountService
		scheduler *core.Scheduler
	)
	if cfg.CloudEnabled() {
		clients, err = cloud.Init(context.Background(), cfg, log)
		if err != nil {
			return fmt.Errorf("init firebase: %w", err)
		}
		defer clients.Close()

		var cipher *crypto.Cipher
		if cfg.SnapshotEncryptionKey != "" {
			if cipher, err = crypto.NewCipher(cfg.SnapshotEncryptionKey); err != nil {
				return fmt.Errorf("snapshot encryption key: %w", err)
			}
		}

		snapshots := cloud.NewFirestoreSnapshotRepository(clients.Firestore)
		authProvider := cloud.NewFirebaseAuthProvider(clients.Auth)
		syncSvc = core.NewSyncService(ns, trk, snapshots, sessions, cipher, cfg.SyncTimeout(), log, metrics)
		accounts = core.NewAccountService(authProvider, sessions, syncSvc, log)

		scheduler = core.NewScheduler(syncSvc, sessions, trk, cfg.AutoSyncInterval(), log, metrics)
		scheduler.OnRollover(func(oldKey, newKey string) {
			log.Info("Day rolled over", zap.String("from", oldKey), zap.String("to", newKey))
		})
		scheduler.Start()
		defer scheduler.Stop()

		log.Info("Cloud sync enabled", zap.String("project_id", cfg.FirebaseProjectID))
	} else {
		log.Info("Running local-only, cloud sync disabled")
	}

	var chat core.ChatProvider
	if cfg.ChatEndpoint != "" {
		chat = providers.NewHTTPChatProvider(cfg.ChatEndpoint, cfg.ChatAPIKey)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.ClientURL))
	api.SetupRoutes(router, api.Deps{
		Logger:      log,
		Metrics:     metrics,
		Namespace:   ns,
		Tracker:     trk,
		Sessions:    sessions,
		Sync:        syncSvc,
		Accounts:    accounts,
		PrayerTimes: providers.NewHTTPPrayerTimesProvider(cfg.PrayerTimesBaseURL),
		Chat:        chat,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Server stopped")
	return nil
}

func runExport(output string) error {
	ns, err := openQuietNamespace()
	if err != nil {
		return err
	}
	defer func() { _ = ns.Close() }()

	payload, err := json.MarshalIndent(ns.ExportAll(), "", "  ")
	if err != nil {
		return fmt.Errorf("serialize records: %w", err)
	}
	payload = append(payload, '\n')

	if output == "" {
		_, err = os.Stdout.Write(payload)
		return err
	}
	return os.WriteFile(output, payload, 0o600)
}

func runImport(input string) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse %s: %w", input, err)
	}

	ns, err := openQuietNamespace()
	if err != nil {
		return err
	}
	defer func() { _ = ns.Close() }()

	ns.Wipe(store.KeySettings)
	ns.RestoreAll(data)
	fmt.Printf("Imported %d records\n", len(data))
	return nil
}

func openNamespace(cfg *config.Config, log *zap.Logger, metrics *observe.Metrics) (*store.Namespace, error) {
	path := cfg.DataPath
	if path == "" {
		var err error
		if path, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	backend, err := store.OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	log.Info("Database opened", zap.String("path", path))
	return store.NewNamespace(backend, log, metrics), nil
}

func openQuietNamespace() (*store.Namespace, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return openNamespace(cfg, zap.NewNop(), observe.New())
}
