package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/pathlab/internal/bench"
	"github.com/vovakirdan/pathlab/internal/grid"
	"github.com/vovakirdan/pathlab/internal/render"
	"github.com/vovakirdan/pathlab/internal/search"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.pathlab/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Maze shape for every session. Each session gets its own seed.
	Rows            int
	Cols            int
	WallProbability float64

	Strategies []search.Strategy
	TickRate   int
	Theme      render.Theme
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:         ":23234",
		IdleTimeout:     30 * time.Minute,
		Rows:            grid.DefaultRows,
		Cols:            grid.DefaultCols,
		WallProbability: grid.DefaultWallProbability,
		Strategies:      search.DefaultStrategies(),
		TickRate:        30,
		Theme:           render.DefaultTheme(),
	}
}

// SSHServer wraps a Wish SSH server that serves the path viewer.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	saver  bench.ReportSaver
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
// saver may be nil; when set, every generated report is recorded.
func NewSSHServer(cfg SSHServerConfig, saver bench.ReportSaver, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "pathlab-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		saver:  saver,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".pathlab", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// newReport generates a maze with a fresh seed and compares every
// configured strategy on it.
func (s *SSHServer) newReport(ctx context.Context) (*bench.Report, error) {
	gen, err := grid.Generate(s.config.Rows, s.config.Cols, s.config.WallProbability, uint64(time.Now().UnixNano()))
	if err != nil {
		return nil, err
	}
	return bench.CompareGenerated(ctx, gen, bench.Options{
		Strategies: s.config.Strategies,
		Logger:     s.logger,
	})
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	report, err := s.newReport(sshSession.Context())
	if err != nil {
		s.logger.Error("cannot build report", "user", sshSession.User(), "error", err)
		return nil, nil
	}
	if s.saver != nil {
		if _, err := s.saver.SaveReport(sshSession.Context(), report); err != nil {
			s.logger.Warn("could not save run", "error", err)
		}
	}

	model := NewModel(report, ViewerConfig{
		TickRate: s.config.TickRate,
		Theme:    s.config.Theme,
		Source:   s.newReport,
		Saver:    s.saver,
		Width:    pty.Window.Width,
		Height:   pty.Window.Height,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
