package application

import (
	"context"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/eugenenazirov/wagon-calculator/internal/calculator"
	"github.com/eugenenazirov/wagon-calculator/internal/catalog"
	"github.com/eugenenazirov/wagon-calculator/internal/config"
)

func TestNewInitializesDependencies(t *testing.T) {
	cfg := baseTestConfig(":8085")
	logger := zaptest.NewLogger(t)

	app, err := New(cfg, logger)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if app.catalog.Len() != len(cfg.Vehicles) {
		t.Fatalf("expected %d vehicles, got %d", len(cfg.Vehicles), app.catalog.Len())
	}
	if _, err := app.catalog.Lookup("Standard wagon"); err != nil {
		t.Fatalf("expected default vehicle to be present: %v", err)
	}
	if app.server == nil || app.router == nil || app.handler == nil {
		t.Fatalf("expected server, router, and handler to be initialized")
	}
	if app.Server() != app.server {
		t.Fatalf("Server accessor did not return underlying instance")
	}
}

func TestNewWarnsAboutUnusableVehicles(t *testing.T) {
	cfg := baseTestConfig(":0")
	cfg.Vehicles = append(cfg.Vehicles, calculator.VehicleSpec{Name: "Broken wagon"})

	core, logs := observer.New(zap.WarnLevel)
	if _, err := New(cfg, zap.New(core)); err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	entries := logs.FilterMessage("calculation unavailable for vehicle").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["vehicle"]; got != "Broken wagon" {
		t.Fatalf("expected warning for Broken wagon, got %v", got)
	}
}

func TestNewServerAppliesConfig(t *testing.T) {
	cfg := baseTestConfig("9090")
	handler := http.NewServeMux()

	server := NewServer(cfg, handler)
	if server.Addr != ":9090" {
		t.Fatalf("expected address :9090, got %s", server.Addr)
	}
	if server.Handler != handler {
		t.Fatalf("expected handler to be applied")
	}
	if server.ReadHeaderTimeout != cfg.ReadHeaderTimeout ||
		server.WriteTimeout != cfg.WriteTimeout ||
		server.IdleTimeout != cfg.IdleTimeout {
		t.Fatalf("server timeouts do not match configuration")
	}
}

func TestStartAndShutdown(t *testing.T) {
	app, err := New(baseTestConfig("127.0.0.1:0"), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := app.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := app.Server().Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown returned error: %v", err)
	}
}

func TestStartReturnsBindError(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer occupied.Close()

	app, err := New(baseTestConfig(occupied.Addr().String()), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := app.Start(); err == nil {
		t.Fatalf("expected bind error for occupied address")
	}
}

func TestResolveProjectPathFindsGoMod(t *testing.T) {
	path, err := resolveProjectPath("go.mod")
	if err != nil {
		t.Fatalf("resolveProjectPath returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected go.mod to exist at %s: %v", path, err)
	}
}

func TestNewReturnsErrorForEmptyCatalog(t *testing.T) {
	cfg := baseTestConfig(":0")
	cfg.Vehicles = nil

	if _, err := New(cfg, zaptest.NewLogger(t)); err == nil {
		t.Fatalf("expected error for empty vehicle catalog")
	}
}

func TestResolveProjectPathUnknownTarget(t *testing.T) {
	if _, err := resolveProjectPath("definitely-not-a-real-file"); err == nil {
		t.Fatalf("expected error for missing resource")
	}
}

func baseTestConfig(port string) config.Config {
	return config.Config{
		Port:                 port,
		ShutdownGracePeriod:  50 * time.Millisecond,
		ReadHeaderTimeout:    20 * time.Millisecond,
		WriteTimeout:         30 * time.Millisecond,
		IdleTimeout:          40 * time.Millisecond,
		EnableRequestLogging: false,
		RateLimitRPS:         0,
		RateLimitBurst:       0,
		Vehicles:             catalog.DefaultVehicles(),
	}
}
