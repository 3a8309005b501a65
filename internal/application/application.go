package application

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/wagon-calculator/internal/api"
	"github.com/eugenenazirov/wagon-calculator/internal/calculator"
	"github.com/eugenenazirov/wagon-calculator/internal/catalog"
	"github.com/eugenenazirov/wagon-calculator/internal/config"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	catalog    *catalog.Catalog
	calculator calculator.Calculator
	handler    *api.Handler
	router     http.Handler
	logger     *zap.Logger
	server     *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	vehicles, err := catalog.New(cfg.Vehicles)
	if err != nil {
		return nil, fmt.Errorf("failed to build vehicle catalog: %w", err)
	}
	warnUnusableVehicles(vehicles, logger)

	calc := calculator.New()
	handler := api.NewHandler(calc, vehicles)
	apiRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	rootHandler, err := BuildRootHandler(apiRouter)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP handler: %w", err)
	}

	return &App{
		catalog:    vehicles,
		calculator: calc,
		handler:    handler,
		router:     apiRouter,
		logger:     logger,
		server:     NewServer(cfg, rootHandler),
	}, nil
}

// warnUnusableVehicles logs catalog entries the calculator will reject, so a
// bad capacity figure shows up at startup rather than on first use.
func warnUnusableVehicles(vehicles *catalog.Catalog, logger *zap.Logger) {
	for _, spec := range vehicles.List() {
		if err := calculator.ValidateSpec(spec); err != nil {
			logger.Warn("calculation unavailable for vehicle",
				zap.String("vehicle", spec.Name),
				zap.Error(err),
			)
		}
	}
	logger.Info("vehicle catalog loaded", zap.Int("vehicles", vehicles.Len()))
}

// BuildRootHandler constructs the root HTTP handler that serves static files and routes API requests.
func BuildRootHandler(apiHandler http.Handler) (http.Handler, error) {
	mux := http.NewServeMux()

	staticPath, err := resolveProjectPath(filepath.Join("web", "static"))
	if err != nil {
		return nil, err
	}
	staticDir := http.Dir(staticPath)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(staticDir)))
	mux.Handle("/api/", apiHandler)

	indexPath, err := resolveProjectPath(filepath.Join("web", "templates", "index.html"))
	if err != nil {
		return nil, err
	}
	mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, indexPath)
	}))

	return mux, nil
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start binds the listener and serves HTTP in a goroutine. Bind failures are
// returned to the caller.
func (a *App) Start() error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", a.server.Addr, err)
	}

	go func() {
		a.logger.Info("server listening",
			zap.String("addr", ln.Addr().String()),
			zap.Int("vehicles", a.catalog.Len()),
		)
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}

// resolveProjectPath locates a file or directory relative to the project root by walking up the directory tree.
func resolveProjectPath(relative string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, relative)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("unable to locate %s", relative)
}
