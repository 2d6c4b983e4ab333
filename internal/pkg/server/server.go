package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/antarid/antar/internal/pkg/logger"
)

// ShutdownTimeout bounds how long draining may take, for the HTTP server
// and for the dependency teardown that follows it.
const ShutdownTimeout = 30 * time.Second

// GracefulServer wraps the Echo server with signal-driven graceful shutdown.
type GracefulServer struct {
	echo   *echo.Echo
	logger *logger.ZapLogger
	port   int
}

// NewGracefulServer creates a new server with graceful shutdown
func NewGracefulServer(e *echo.Echo, log *logger.ZapLogger, port int) *GracefulServer {
	return &GracefulServer{
		echo:   e,
		logger: log,
		port:   port,
	}
}

// Start serves HTTP and blocks until SIGINT or SIGTERM, then drains
// in-flight requests before returning.
func (s *GracefulServer) Start() error {
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("Starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	sig := <-quit
	s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	return s.Shutdown()
}

// Shutdown drains the server within the shutdown timeout.
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

type shutdownComponent struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager runs registered cleanup functions in registration order
// once the HTTP server has drained.
type ShutdownManager struct {
	logger     *logger.ZapLogger
	mu         sync.Mutex
	components []shutdownComponent
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(log *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{
		logger:     log,
		components: make([]shutdownComponent, 0),
	}
}

// Register adds a named cleanup function to be called during shutdown.
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	if fn == nil {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.components = append(sm.components, shutdownComponent{name: name, fn: fn})
}

// Shutdown executes all registered cleanup functions. A failing component
// is logged and does not stop the remaining ones.
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	components := make([]shutdownComponent, len(sm.components))
	copy(components, sm.components)
	sm.mu.Unlock()

	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(components)))

	for _, component := range components {
		if err := component.fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", component.name),
				logger.Err(err))
			continue
		}
		sm.logger.Info("Component shutdown completed", logger.String("component", component.name))
	}

	return nil
}
