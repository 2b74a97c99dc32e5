// ABOUTME: HTTP host for the MCP endpoint, landing page and health check.
// ABOUTME: Listens on plain TCP or on a tsnet node, and shuts down gracefully on context cancel.

package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"tailscale.com/ipn/ipnstate"
	"tailscale.com/tsnet"

	"github.com/2389/zaico-mcp/internal/config"
	"github.com/2389/zaico-mcp/internal/mcp"
)

// Server hosts the MCP HTTP transport.
type Server struct {
	config      *config.Config
	mcpServer   *mcp.Server
	httpServer  *http.Server
	tsnetServer *tsnet.Server
	logger      *slog.Logger
	landing     []byte

	// endpoint is the public MCP URL; it changes once the listener is bound.
	endpoint atomic.Value
}

// New builds the HTTP host. It renders the landing page eagerly so template
// errors surface at startup.
func New(cfg *config.Config, mcpServer *mcp.Server, logger *slog.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if mcpServer == nil {
		return nil, errors.New("mcp server is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	published := mcpServer.Tools()
	data := landingData{
		Name:     mcp.ServerName,
		Version:  mcpServer.Version(),
		Endpoint: mcp.Endpoint,
		Tools:    make([]mcp.DiscoveryTool, len(published)),
	}
	for i, t := range published {
		data.Tools[i] = mcp.DiscoveryTool{Name: t.Name, Description: t.Description}
	}
	landing, err := renderLanding(data)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:    cfg,
		mcpServer: mcpServer,
		logger:    logger.With("component", "server"),
		landing:   landing,
	}
	s.endpoint.Store("http://" + cfg.Server.HTTPAddr + mcp.Endpoint)
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.mcpServer.RegisterRoutes(mux)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleLanding)
	return mux
}

// Endpoint returns the MCP URL clients should use.
func (s *Server) Endpoint() string {
	return s.endpoint.Load().(string)
}

// Run starts the HTTP server and blocks until the context is canceled.
// Returns nil on graceful shutdown (context canceled), or an error if the server fails.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.setupListener(ctx)
	if err != nil {
		return err
	}

	errCh := s.startServer(ln)
	serverErr := s.waitForShutdownSignal(ctx, errCh)

	shutdownErr := s.gracefulShutdown()

	if serverErr != nil {
		return serverErr
	}
	return shutdownErr
}

// setupListener creates the listener based on configuration (Tailscale or TCP).
func (s *Server) setupListener(ctx context.Context) (net.Listener, error) {
	if s.config.Tailscale.Enabled {
		if s.config.Server.HTTPAddr != "" {
			s.logger.Warn("server.http_addr is ignored when tailscale is enabled",
				"http_addr", s.config.Server.HTTPAddr,
			)
		}
		return s.setupTailscaleListener(ctx)
	}

	ln, err := net.Listen("tcp", s.config.Server.HTTPAddr)
	if err != nil {
		return nil, fmt.Errorf("listening on HTTP address: %w", err)
	}
	s.endpoint.Store("http://" + ln.Addr().String() + mcp.Endpoint)
	return ln, nil
}

func (s *Server) startServer(ln net.Listener) chan error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening",
			"addr", ln.Addr().String(),
			"mcp_endpoint", s.Endpoint(),
		)
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()
	return errCh
}

// waitForShutdownSignal waits for context cancellation or server error.
func (s *Server) waitForShutdownSignal(ctx context.Context, errCh chan error) error {
	select {
	case <-ctx.Done():
		s.logger.Info("context canceled, initiating shutdown")
		return nil
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
		return err
	}
}

// gracefulShutdown performs shutdown with a fresh context and timeout.
// Uses context.Background() because the run context is already canceled.
func (s *Server) gracefulShutdown() error {
	timeout := s.config.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown stops the HTTP server and releases the tailnet node.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")

	var errs []error
	errs = appendCloseError(errs, "HTTP shutdown", s.httpServer.Shutdown(ctx))
	if s.tsnetServer != nil {
		errs = appendCloseError(errs, "tailscale shutdown", s.tsnetServer.Close())
	}

	if len(errs) > 0 {
		return fmt.Errorf("shutdown errors: %v", errs)
	}
	return nil
}

// appendCloseError appends an error with label if err is non-nil.
func appendCloseError(errs []error, label string, err error) []error {
	if err != nil {
		return append(errs, fmt.Errorf("%s: %w", label, err))
	}
	return errs
}

// resolveTailscaleStateDir returns the state directory, using default if not configured.
func resolveTailscaleStateDir(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory for tailscale state (set tailscale.state_dir explicitly): %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "zaico-mcp", "tailscale"), nil
}

// resolveTailscaleAuthKey returns the auth key from config or environment.
func resolveTailscaleAuthKey(configured string) (string, error) {
	authKey := configured
	if authKey == "" {
		authKey = os.Getenv("TS_AUTHKEY")
	}
	if authKey == "" {
		return "", errors.New("tailscale auth key required: set auth_key in config or TS_AUTHKEY environment variable")
	}
	return authKey, nil
}

// setupTailscaleListener starts a tsnet node and returns its HTTP listener.
func (s *Server) setupTailscaleListener(ctx context.Context) (net.Listener, error) {
	tsCfg := s.config.Tailscale

	stateDir, err := resolveTailscaleStateDir(tsCfg.StateDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return nil, fmt.Errorf("creating tailscale state dir: %w", err)
	}

	authKey, err := resolveTailscaleAuthKey(tsCfg.AuthKey)
	if err != nil {
		return nil, err
	}

	s.tsnetServer = &tsnet.Server{
		Hostname:  tsCfg.Hostname,
		Dir:       stateDir,
		Ephemeral: tsCfg.Ephemeral,
		AuthKey:   authKey,
	}

	s.logger.Info("starting tailscale node", "hostname", tsCfg.Hostname, "state_dir", stateDir, "ephemeral", tsCfg.Ephemeral)
	status, err := s.tsnetServer.Up(ctx)
	if err != nil {
		_ = s.tsnetServer.Close()
		return nil, fmt.Errorf("starting tailscale: %w", err)
	}

	s.logTailscaleStatus(tsCfg.Hostname, status)
	s.updateEndpointFromStatus(status, tsCfg.HTTPS || tsCfg.Funnel)

	return s.createTailscaleListener(tsCfg)
}

// logTailscaleStatus logs info about the tailscale node status.
func (s *Server) logTailscaleStatus(hostname string, status *ipnstate.Status) {
	var tsAddr, dnsName string
	if len(status.TailscaleIPs) > 0 {
		tsAddr = status.TailscaleIPs[0].String()
	} else {
		s.logger.Warn("tailscale node has no IP addresses assigned")
	}
	if status.Self != nil {
		dnsName = status.Self.DNSName
	}
	s.logger.Info("tailscale node ready", "hostname", hostname, "tailscale_ip", tsAddr, "dns_name", dnsName)
}

// updateEndpointFromStatus points the MCP endpoint at the node's DNS name.
func (s *Server) updateEndpointFromStatus(status *ipnstate.Status, secure bool) {
	if status.Self == nil || status.Self.DNSName == "" {
		return
	}
	scheme := "http://"
	if secure {
		scheme = "https://"
	}
	s.endpoint.Store(scheme + strings.TrimSuffix(status.Self.DNSName, ".") + mcp.Endpoint)
}

// createTailscaleListener creates the appropriate HTTP listener based on config.
func (s *Server) createTailscaleListener(tsCfg config.TailscaleConfig) (net.Listener, error) {
	switch {
	case tsCfg.Funnel:
		s.logger.Info("enabling tailscale funnel (public HTTPS) on :443")
		ln, err := s.tsnetServer.ListenFunnel("tcp", ":443")
		if err != nil {
			_ = s.tsnetServer.Close()
			return nil, fmt.Errorf("listening on tailscale funnel: %w", err)
		}
		return ln, nil
	case tsCfg.HTTPS:
		return s.createTailscaleTLSListener()
	default:
		ln, err := s.tsnetServer.Listen("tcp", ":80")
		if err != nil {
			_ = s.tsnetServer.Close()
			return nil, fmt.Errorf("listening on tailscale HTTP port: %w", err)
		}
		return ln, nil
	}
}

// createTailscaleTLSListener creates a TLS listener using Tailscale's auto-provisioned certs.
func (s *Server) createTailscaleTLSListener() (net.Listener, error) {
	s.logger.Info("enabling HTTPS with Tailscale certs on :443")
	ln, err := s.tsnetServer.Listen("tcp", ":443")
	if err != nil {
		_ = s.tsnetServer.Close()
		return nil, fmt.Errorf("listening on tailscale HTTPS port: %w", err)
	}
	lc, err := s.tsnetServer.LocalClient()
	if err != nil {
		_ = ln.Close()
		_ = s.tsnetServer.Close()
		return nil, fmt.Errorf("getting tailscale local client: %w", err)
	}
	return tls.NewListener(ln, &tls.Config{
		GetCertificate: lc.GetCertificate,
		MinVersion:     tls.VersionTLS12,
	}), nil
}

// handleHealth returns 200 OK if the server is alive.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleLanding(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(s.landing)
}
