package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"view-cache-policy/internal/cache/l1"
	"view-cache-policy/internal/cache/l2"
	"view-cache-policy/internal/cache/noop"
	"view-cache-policy/internal/cache/service"
	"view-cache-policy/internal/config"
	"view-cache-policy/internal/httpserver"
	"view-cache-policy/internal/interfaces"
	"view-cache-policy/internal/policy"
)

// CompositionRoot holds all application dependencies and provides a centralized
// place for dependency injection and service initialization.
type CompositionRoot struct {
	// Configuration
	Config   *config.Config
	Logger   *zap.Logger
	Policies interfaces.PolicyProvider

	// Store components
	L1Store interfaces.Store
	L2Store interfaces.Store

	// Services
	EvaluationService *service.EvaluationService
	HTTPServer        *httpserver.Server
	MetricsServer     *httpserver.MetricsServer
}

// NewCompositionRoot creates and initializes all application dependencies.
//
// Initialization order:
// 1. Logger (needed by all other components)
// 2. Configuration (defines how components should be configured)
// 3. View cache policies (the per-view policy configuration)
// 4. Store components (L1, L2)
// 5. Evaluation service
// 6. HTTP servers
func NewCompositionRoot() (*CompositionRoot, error) {
	root := &CompositionRoot{}

	if err := root.initLogger(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := root.loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := root.loadPolicies(); err != nil {
		return nil, fmt.Errorf("failed to load view cache policies: %w", err)
	}

	if err := root.initStores(); err != nil {
		return nil, fmt.Errorf("failed to initialize store components: %w", err)
	}

	root.initServices()

	return root, nil
}

// initLogger initializes the application logger
func (r *CompositionRoot) initLogger() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	r.Logger = logger
	return nil
}

// loadConfig loads the application configuration
func (r *CompositionRoot) loadConfig() error {
	configPath := os.Getenv("VIEW_CACHE_CONFIG_FILE")
	if configPath == "" {
		configPath = "/app/view_cache_config.yaml"
	}

	cfg, err := config.LoadConfig(configPath, r.Logger)
	if err != nil {
		return err
	}

	r.Config = cfg
	return nil
}

// loadPolicies loads and normalizes the per-view policy configuration
func (r *CompositionRoot) loadPolicies() error {
	policiesPath := os.Getenv("VIEW_CACHE_POLICIES_FILE")
	if policiesPath == "" {
		policiesPath = "/app/view_cache_policies.yaml"
	}

	provider, err := policy.LoadPolicies(policiesPath, r.Logger)
	if err != nil {
		return err
	}

	r.Policies = provider
	return nil
}

// initStores initializes the L1 and L2 store levels
func (r *CompositionRoot) initStores() error {
	if err := r.initL1Store(); err != nil {
		return fmt.Errorf("failed to initialize L1 store: %w", err)
	}

	if err := r.initL2Store(); err != nil {
		return fmt.Errorf("failed to initialize L2 store: %w", err)
	}

	return nil
}

// initL1Store initializes the L1 store (BigCache)
func (r *CompositionRoot) initL1Store() error {
	if r.Config.BigCache.Enabled {
		l1Store, err := l1.NewBigCacheStore(&r.Config.BigCache, r.Logger)
		if err != nil {
			return err
		}
		r.L1Store = l1Store
		r.Logger.Info("BigCache (L1) initialized", zap.Int("size_mb", r.Config.BigCache.Size))
	} else {
		r.L1Store = noop.NewNoOpStore()
		r.Logger.Info("BigCache (L1) disabled")
	}
	return nil
}

// initL2Store initializes the L2 store (KeyDB)
func (r *CompositionRoot) initL2Store() error {
	if r.Config.KeyDB.Enabled {
		keydbURL := GetKeyDBURL(r.Config, r.Logger)

		keydbClient, err := l2.NewRedisKeyDbClient(r.Config, keydbURL, r.Logger)
		if err != nil {
			r.Logger.Warn("Failed to connect to KeyDB, falling back to no L2 store",
				zap.String("keydb_url", keydbURL),
				zap.Error(err))
			r.L2Store = noop.NewNoOpStore()
			return nil
		}

		r.L2Store = l2.NewKeyDBStore(r.Config, keydbClient, r.Logger)
		r.Logger.Info("KeyDB (L2) initialized", zap.String("keydb_url", keydbURL))
	} else {
		r.L2Store = noop.NewNoOpStore()
		r.Logger.Info("KeyDB (L2) disabled")
	}
	return nil
}

// initServices initializes the evaluation service and the HTTP servers
func (r *CompositionRoot) initServices() {
	r.EvaluationService = service.NewEvaluationService(
		r.L1Store,
		r.L2Store,
		r.Policies,
		r.Logger,
	)

	r.HTTPServer = httpserver.NewServer(r.EvaluationService, r.Logger)
	r.MetricsServer = httpserver.NewMetricsServer(r.Logger)
}

// Cleanup performs cleanup of all resources
func (r *CompositionRoot) Cleanup() error {
	var errors []error

	if r.Logger != nil {
		if err := r.Logger.Sync(); err != nil {
			errors = append(errors, fmt.Errorf("failed to sync logger: %w", err))
		}
	}

	if r.L1Store != nil {
		if bigCacheStore, ok := r.L1Store.(*l1.BigCacheStore); ok {
			if err := bigCacheStore.Close(); err != nil {
				errors = append(errors, fmt.Errorf("failed to close L1 store: %w", err))
			}
		}
	}

	if r.L2Store != nil {
		if keydbStore, ok := r.L2Store.(*l2.KeyDBStore); ok {
			if err := keydbStore.Close(); err != nil {
				errors = append(errors, fmt.Errorf("failed to close L2 store: %w", err))
			}
		}
	}

	if len(errors) > 0 {
		return errors[0]
	}

	return nil
}

// GetSocketPath returns the Unix socket path for the server
func (r *CompositionRoot) GetSocketPath() string {
	socketPath := os.Getenv("VIEW_CACHE_SOCKET_PATH")
	if socketPath == "" {
		socketPath = "/tmp/view-cache.sock"
	}
	return socketPath
}

// GetMetricsPort returns the TCP port for the metrics server
func (r *CompositionRoot) GetMetricsPort() string {
	port := os.Getenv("VIEW_CACHE_METRICS_PORT")
	if port == "" {
		port = "9090"
	}
	return port
}
