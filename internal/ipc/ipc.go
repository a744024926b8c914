// Package ipc implements the unix socket control interface of the bar: a
// line oriented server inside the bar process and a matching client used
// by strutmsg. One connection carries one command and one reply.
package ipc

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"strings"
	"time"
)

const replyTimeout = 2 * time.Second

// Handler processes one command and returns the reply sent back to the
// client. An empty reply closes the connection without writing.
type Handler func(cmd string) string

// Server accepts commands on a unix socket and forwards them to a
// handler. The handler runs on the connection's goroutine; anything that
// must touch GTK has to hop onto the main loop itself.
type Server struct {
	socketPath string
	handler    Handler
	listener   net.Listener
	done       chan struct{}
}

func NewServer(socketPath string, handler Handler) *Server {
	return &Server{
		socketPath: socketPath,
		handler:    handler,
		done:       make(chan struct{}),
	}
}

// Start binds the socket and begins accepting connections. A stale
// socket file from a previous run is replaced.
func (s *Server) Start() error {
	if _, err := os.Stat(s.socketPath); err == nil {
		os.Remove(s.socketPath)
	}

	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create socket listener: %w", err)
	}
	s.listener = listener

	go s.acceptLoop()

	log.Printf("IPC server listening on %s", s.socketPath)
	return nil
}

// Stop closes the listener and removes the socket file. Safe to call
// more than once.
func (s *Server) Stop() {
	select {
	case <-s.done:
		return
	default:
	}
	close(s.done)

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)

	log.Printf("IPC server stopped")
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.done:
			default:
				log.Printf("IPC server accept error: %v", err)
			}
			return
		}
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil {
		log.Printf("IPC read error: %v", err)
		return
	}

	cmd := strings.TrimSpace(string(buf[:n]))
	if cmd == "" {
		return
	}

	reply := s.handler(cmd)
	if reply == "" {
		return
	}
	if _, err := conn.Write([]byte(reply + "\n")); err != nil {
		log.Printf("IPC write error: %v", err)
	}
}

// Send delivers one command to a running bar and returns its reply, or
// an empty string when the command produced none.
func Send(socketPath, cmd string) (string, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return "", fmt.Errorf("failed to connect to %s: %w", socketPath, err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(cmd)); err != nil {
		return "", fmt.Errorf("failed to send command: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(replyTimeout))
	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read reply: %w", err)
	}
	return strings.TrimSpace(string(buf[:n])), nil
}
