package gateway

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/ssh"

	"github.com/plfanzen/plfanzen/pkg/metrics"
)

// Channel request payloads, RFC 4254.
type (
	ptyRequestMsg struct {
		Term     string
		Columns  uint32
		Rows     uint32
		Width    uint32
		Height   uint32
		Modelist string
	}

	envRequestMsg struct {
		Name  string
		Value string
	}

	execMsg struct {
		Command string
	}

	windowChangeMsg struct {
		Columns uint32
		Rows    uint32
		Width   uint32
		Height  uint32
	}

	exitStatusMsg struct {
		Status uint32
	}

	// channelOpenDirectMsg is the "direct-tcpip" open payload.
	channelOpenDirectMsg struct {
		DestAddr string
		DestPort uint32
		OrigAddr string
		OrigPort uint32
	}
)

// session proxies one client "session" channel onto a freshly dialed
// backend SSH session. PTY and env requests arriving before shell/exec are
// buffered and replayed against the backend.
type session struct {
	server *Server
	logger zerolog.Logger
	login  string
	ch     ssh.Channel

	pty *ptyRequestMsg
	env []envRequestMsg

	mu      sync.Mutex
	client  *ssh.Client
	backend *ssh.Session
	started bool
}

func (s *Server) handleSession(logger zerolog.Logger, login string, nch ssh.NewChannel) {
	ch, reqs, err := nch.Accept()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to accept session channel")
		return
	}
	sess := &session{server: s, logger: logger, login: login, ch: ch}
	defer sess.close()
	for req := range reqs {
		sess.handleRequest(req)
	}
}

func (sess *session) handleRequest(req *ssh.Request) {
	switch req.Type {
	case "pty-req":
		var msg ptyRequestMsg
		if err := ssh.Unmarshal(req.Payload, &msg); err != nil {
			sess.logger.Warn().Err(err).Msg("Failed to parse pty request")
			sess.reply(req, false)
			return
		}
		sess.logger.Debug().Str("term", msg.Term).Uint32("cols", msg.Columns).Uint32("rows", msg.Rows).Msg("PTY request")
		sess.pty = &msg
		sess.reply(req, true)

	case "env":
		var msg envRequestMsg
		if err := ssh.Unmarshal(req.Payload, &msg); err != nil {
			sess.logger.Warn().Err(err).Msg("Failed to parse env request")
			sess.reply(req, false)
			return
		}
		sess.env = append(sess.env, msg)
		sess.reply(req, true)

	case "shell":
		sess.logger.Info().Msg("Shell request - connecting to backend")
		sess.reply(req, sess.start(nil) == nil)

	case "exec":
		var msg execMsg
		if err := ssh.Unmarshal(req.Payload, &msg); err != nil {
			sess.logger.Warn().Err(err).Msg("Failed to parse exec request")
			sess.reply(req, false)
			return
		}
		sess.logger.Info().Str("command", msg.Command).Msg("Exec request - connecting to backend")
		sess.reply(req, sess.start(&msg.Command) == nil)

	case "window-change":
		sess.windowChange(req)

	default:
		sess.logger.Debug().Str("type", req.Type).Msg("Rejecting session request")
		sess.reply(req, false)
	}
}

func (sess *session) reply(req *ssh.Request, ok bool) {
	if req.WantReply {
		req.Reply(ok, nil)
	}
}

// start dials the backend, replays buffered PTY and env state, requests a
// shell (command == nil) or command execution, and hands the channel over
// to the pumps. It may run at most once per session.
func (sess *session) start(command *string) error {
	sess.mu.Lock()
	if sess.started {
		sess.mu.Unlock()
		return fmt.Errorf("session already started")
	}
	sess.started = true
	sess.mu.Unlock()

	client, err := sess.server.dialBackend(sess.login)
	if err != nil {
		sess.logger.Error().Err(err).Msg("Failed to connect to backend")
		return err
	}
	backend, err := client.NewSession()
	if err != nil {
		sess.logger.Error().Err(err).Msg("Failed to open backend session")
		client.Close()
		return err
	}

	if sess.pty != nil {
		modes := parseTerminalModes([]byte(sess.pty.Modelist))
		if err := backend.RequestPty(sess.pty.Term, int(sess.pty.Rows), int(sess.pty.Columns), modes); err != nil {
			sess.logger.Error().Err(err).Msg("Backend refused PTY")
			backend.Close()
			client.Close()
			return err
		}
	}
	for _, kv := range sess.env {
		if err := backend.Setenv(kv.Name, kv.Value); err != nil {
			// Most sshds only accept an allowlist of names. Not fatal.
			sess.logger.Debug().Str("name", kv.Name).Err(err).Msg("Backend refused environment variable")
		}
	}

	stdin, err := backend.StdinPipe()
	if err != nil {
		backend.Close()
		client.Close()
		return err
	}
	stdout, err := backend.StdoutPipe()
	if err != nil {
		backend.Close()
		client.Close()
		return err
	}
	stderr, err := backend.StderrPipe()
	if err != nil {
		backend.Close()
		client.Close()
		return err
	}

	kind := "shell"
	if command != nil {
		kind = "exec"
		err = backend.Start(*command)
	} else {
		err = backend.Shell()
	}
	if err != nil {
		sess.logger.Error().Err(err).Str("kind", kind).Msg("Failed to start backend session")
		backend.Close()
		client.Close()
		return err
	}
	metrics.GatewaySessions.WithLabelValues(kind).Inc()
	sess.logger.Info().Str("kind", kind).Msg("Backend session started")

	sess.mu.Lock()
	sess.client = client
	sess.backend = backend
	sess.mu.Unlock()

	// Client to backend. A single copier preserves byte order; closing
	// stdin forwards the client's EOF.
	go func() {
		io.Copy(stdin, sess.ch)
		stdin.Close()
	}()

	// Backend to client, stdout and stderr on their own streams.
	var out sync.WaitGroup
	out.Add(2)
	go func() {
		defer out.Done()
		io.Copy(sess.ch, stdout)
	}()
	go func() {
		defer out.Done()
		io.Copy(sess.ch.Stderr(), stderr)
	}()

	go func() {
		err := backend.Wait()
		out.Wait()
		status := exitStatus(err)
		sess.logger.Debug().Uint32("status", status).Msg("Backend session finished")
		if _, err := sess.ch.SendRequest("exit-status", false, ssh.Marshal(exitStatusMsg{Status: status})); err != nil {
			sess.logger.Debug().Err(err).Msg("Failed to send exit status")
		}
		sess.ch.Close()
		client.Close()
	}()
	return nil
}

func (sess *session) windowChange(req *ssh.Request) {
	var msg windowChangeMsg
	if err := ssh.Unmarshal(req.Payload, &msg); err != nil {
		sess.logger.Warn().Err(err).Msg("Failed to parse window change")
		return
	}
	sess.mu.Lock()
	backend := sess.backend
	sess.mu.Unlock()
	if backend == nil {
		return
	}
	if err := backend.WindowChange(int(msg.Rows), int(msg.Columns)); err != nil {
		sess.logger.Debug().Err(err).Msg("Failed to forward window change")
	}
}

func (sess *session) close() {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.backend != nil {
		sess.backend.Close()
	}
	if sess.client != nil {
		sess.client.Close()
	}
	sess.ch.Close()
}

// exitStatus maps a backend Wait error to the status propagated to the
// client. Sessions that die without reporting one count as failed.
func exitStatus(err error) uint32 {
	if err == nil {
		return 0
	}
	if exitErr, ok := err.(*ssh.ExitError); ok {
		return uint32(exitErr.ExitStatus())
	}
	return 255
}

// parseTerminalModes decodes the RFC 4254 §8 encoded terminal modes opcode
// list so it can be replayed against the backend.
func parseTerminalModes(data []byte) ssh.TerminalModes {
	modes := ssh.TerminalModes{}
	for len(data) >= 5 {
		op := data[0]
		// 0 is TTY_OP_END; 160 and up are not opcode-argument pairs.
		if op == 0 || op >= 160 {
			break
		}
		modes[op] = binary.BigEndian.Uint32(data[1:5])
		data = data[5:]
	}
	return modes
}

// handleDirectTCPIP serves a client port-forward by opening the same
// forward through the backend and pumping bytes both ways. Either side
// closing tears down both.
func (s *Server) handleDirectTCPIP(logger zerolog.Logger, login string, nch ssh.NewChannel) {
	var msg channelOpenDirectMsg
	if err := ssh.Unmarshal(nch.ExtraData(), &msg); err != nil {
		logger.Warn().Err(err).Msg("Failed to parse direct-tcpip request")
		nch.Reject(ssh.UnknownChannelType, "failed to parse direct-tcpip request")
		return
	}
	dest := net.JoinHostPort(msg.DestAddr, strconv.Itoa(int(msg.DestPort)))
	logger.Info().Str("dest", dest).Str("orig", fmt.Sprintf("%s:%d", msg.OrigAddr, msg.OrigPort)).Msg("Direct TCP/IP request")

	client, err := s.dialBackend(login)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to backend")
		nch.Reject(ssh.ConnectionFailed, err.Error())
		return
	}
	conn, err := client.Dial("tcp", dest)
	if err != nil {
		logger.Error().Err(err).Str("dest", dest).Msg("Backend refused forward")
		client.Close()
		nch.Reject(ssh.ConnectionFailed, err.Error())
		return
	}
	ch, reqs, err := nch.Accept()
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to accept direct-tcpip channel")
		conn.Close()
		client.Close()
		return
	}
	go ssh.DiscardRequests(reqs)
	metrics.GatewaySessions.WithLabelValues("direct-tcpip").Inc()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		io.Copy(ch, conn)
		ch.Close()
	}()
	go func() {
		defer wg.Done()
		io.Copy(conn, ch)
		conn.Close()
	}()
	wg.Wait()
	client.Close()
	logger.Debug().Str("dest", dest).Msg("Direct TCP/IP channel closed")
}
