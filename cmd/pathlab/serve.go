package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathlab/internal/platform/tui"
	"github.com/vovakirdan/pathlab/internal/render"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pathlab SSH server",
	Long: `Start an SSH server that serves the interactive viewer.

Each SSH connection gets a freshly generated maze using the grid settings
from the config. Every run is recorded in the shared history database
unless storage is disabled.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses server.host_key_path from the config

Examples:
  pathlab serve                           # Listen on the configured address
  pathlab serve --ssh :2222               # Listen on port 2222
  pathlab serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides config")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides config")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	logger := newLogger(cfg).WithPrefix("pathlab-ssh")

	address := flagSSHAddr
	if address == "" {
		address = net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	}
	hostKey := flagHostKey
	if hostKey == "" {
		hostKey = cfg.Server.HostKeyPath
	}

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = address
	serverCfg.HostKeyPath = hostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.Rows = cfg.Grid.Rows
	serverCfg.Cols = cfg.Grid.Cols
	serverCfg.WallProbability = cfg.Grid.WallProbability
	serverCfg.Strategies = cfg.Strategies()
	serverCfg.TickRate = cfg.Viewer.TickRate
	serverCfg.Theme = render.ThemeByName(cfg.Viewer.Theme)

	server, err := tui.NewSSHServer(serverCfg, saverFor(store), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pathlab SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh localhost -p %d\n", cfg.Server.Port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
