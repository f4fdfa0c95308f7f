package gateway

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/ssh"

	"github.com/plfanzen/plfanzen/pkg/log"
	"github.com/plfanzen/plfanzen/pkg/metrics"
)

const (
	// authRejectionDelay slows down password probing.
	authRejectionDelay = 500 * time.Millisecond

	// idleTimeout closes connections that move no bytes in either
	// direction for this long.
	idleTimeout = 10 * time.Minute

	// backendDialTimeout bounds TCP connect plus handshake towards a
	// backend server.
	backendDialTimeout = 10 * time.Second
)

const banner = "Plfanzen SSH Gateway - Connecting you to your backend server.\n\n" +
	"Please note: Certain SSH features, like remote port forwarding, are not supported and may lead to connection issues.\n\n"

// Server is the public-facing SSH endpoint. It authenticates players
// against the backend registry and proxies their sessions onto the matching
// backend server inside the cluster.
type Server struct {
	registry *Registry
	config   *ssh.ServerConfig
	logger   zerolog.Logger

	mu       sync.Mutex
	listener net.Listener
	closed   bool
}

// NewServer builds a gateway server using signer as its host key.
func NewServer(signer ssh.Signer, registry *Registry) *Server {
	s := &Server{
		registry: registry,
		logger:   log.WithComponent("gateway"),
	}
	config := &ssh.ServerConfig{
		PasswordCallback: s.authenticate,
		BannerCallback: func(ssh.ConnMetadata) string {
			return banner
		},
	}
	config.AddHostKey(signer)
	s.config = config
	return s
}

// Start listens on addr and serves until Stop is called.
func (s *Server) Start(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.logger.Info().Str("addr", lis.Addr().String()).Msg("SSH gateway listening")
	return s.Serve(lis)
}

// Serve accepts connections from lis, handling each on its own goroutine.
func (s *Server) Serve(lis net.Listener) error {
	s.mu.Lock()
	s.listener = lis
	s.mu.Unlock()

	for {
		conn, err := lis.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		go s.handleConn(conn)
	}
}

// Stop closes the listener. In-flight sessions are not interrupted.
func (s *Server) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.listener != nil {
		s.listener.Close()
	}
}

// authenticate resolves the login name against the registry. The login
// either has no gateway password, in which case any password is accepted,
// or the presented password must match.
func (s *Server) authenticate(conn ssh.ConnMetadata, password []byte) (*ssh.Permissions, error) {
	login := conn.User()
	backend, ok := s.registry.Get(login)
	if !ok {
		s.logger.Warn().Str("login", login).Msg("No backend found for login")
		s.rejectAuth()
		return nil, fmt.Errorf("unknown login %q", login)
	}
	if backend.GatewayPass != nil && *backend.GatewayPass != string(password) {
		s.logger.Warn().Str("login", login).Msg("Authentication failed for login")
		s.rejectAuth()
		return nil, fmt.Errorf("wrong password for login %q", login)
	}
	s.logger.Info().Str("login", login).Msg("Matched backend for login")
	return &ssh.Permissions{Extensions: map[string]string{"login": login}}, nil
}

func (s *Server) rejectAuth() {
	metrics.GatewayAuthFailures.Inc()
	time.Sleep(authRejectionDelay)
}

func (s *Server) handleConn(netConn net.Conn) {
	conn := newIdleTimeoutConn(netConn, idleTimeout)
	sconn, chans, reqs, err := ssh.NewServerConn(conn, s.config)
	if err != nil {
		s.logger.Debug().Err(err).Str("remote", netConn.RemoteAddr().String()).Msg("Handshake failed")
		conn.Close()
		return
	}
	defer sconn.Close()

	login := sconn.Permissions.Extensions["login"]
	logger := s.logger.With().Str("login", login).Str("remote", sconn.RemoteAddr().String()).Logger()
	logger.Info().Msg("Client connected")

	go s.handleGlobalRequests(logger, reqs)
	for nch := range chans {
		switch nch.ChannelType() {
		case "session":
			go s.handleSession(logger, login, nch)
		case "direct-tcpip":
			go s.handleDirectTCPIP(logger, login, nch)
		default:
			logger.Debug().Str("type", nch.ChannelType()).Msg("Rejecting channel")
			nch.Reject(ssh.UnknownChannelType, fmt.Sprintf("unsupported channel type %q", nch.ChannelType()))
		}
	}
	logger.Info().Msg("Client disconnected")
}

// handleGlobalRequests rejects every global request. Remote forwarding in
// particular would punch a listener into the gateway on behalf of a single
// player, so it is never honored.
func (s *Server) handleGlobalRequests(logger zerolog.Logger, reqs <-chan *ssh.Request) {
	for req := range reqs {
		switch req.Type {
		case "tcpip-forward", "cancel-tcpip-forward":
			logger.Warn().Str("type", req.Type).Msg("Remote forwarding not supported")
		default:
			logger.Debug().Str("type", req.Type).Msg("Rejecting global request")
		}
		if req.WantReply {
			req.Reply(false, nil)
		}
	}
}

// dialBackend resolves login and opens an authenticated SSH client towards
// its backend. The registry is consulted again here because the entry may
// have changed since authentication.
func (s *Server) dialBackend(login string) (*ssh.Client, error) {
	backend, ok := s.registry.Get(login)
	if !ok {
		return nil, fmt.Errorf("no backend registered for login %q", login)
	}
	config := &ssh.ClientConfig{
		User: backend.User,
		Auth: []ssh.AuthMethod{ssh.Password(backend.Pass)},
		// Backends are short-lived instance pods with generated host
		// keys, so there is nothing to pin against.
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         backendDialTimeout,
	}
	client, err := ssh.Dial("tcp", backend.Addr, config)
	if err != nil {
		return nil, fmt.Errorf("dialing backend %s: %w", backend.Addr, err)
	}
	return client, nil
}

// idleTimeoutConn wraps a connection with a watchdog that closes it when no
// bytes move for the configured timeout. Reads and writes both pet the
// watchdog.
type idleTimeoutConn struct {
	net.Conn

	timeout time.Duration

	mu       sync.Mutex
	watchdog *time.Timer
}

func newIdleTimeoutConn(conn net.Conn, timeout time.Duration) *idleTimeoutConn {
	return &idleTimeoutConn{
		Conn:    conn,
		timeout: timeout,
		watchdog: time.AfterFunc(timeout, func() {
			conn.Close()
		}),
	}
}

func (c *idleTimeoutConn) pet() {
	c.mu.Lock()
	defer c.mu.Unlock()
	// If the timer already fired the connection is closed or about to be.
	if c.watchdog.Stop() {
		c.watchdog.Reset(c.timeout)
	}
}

func (c *idleTimeoutConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if n > 0 {
		c.pet()
	}
	return n, err
}

func (c *idleTimeoutConn) Write(p []byte) (int, error) {
	n, err := c.Conn.Write(p)
	if n > 0 {
		c.pet()
	}
	return n, err
}

func (c *idleTimeoutConn) Close() error {
	err := c.Conn.Close()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watchdog.Stop()
	return err
}
