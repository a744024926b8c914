package ipc

import (
	"os"
	"path/filepath"
	"testing"
)

func startTestServer(t *testing.T, handler Handler) (*Server, string) {
	t.Helper()
	socket := filepath.Join(t.TempDir(), "strut.sock")
	srv := NewServer(socket, handler)
	if err := srv.Start(); err != nil {
		t.Fatalf("Failed to start IPC server: %v", err)
	}
	t.Cleanup(srv.Stop)
	return srv, socket
}

func TestServerRepliesToCommand(t *testing.T) {
	_, socket := startTestServer(t, func(cmd string) string {
		if cmd == "ping" {
			return "pong"
		}
		return "unknown"
	})

	reply, err := Send(socket, "ping")
	if err != nil {
		t.Fatalf("Failed to send command: %v", err)
	}
	if reply != "pong" {
		t.Errorf("Expected pong, got %q", reply)
	}
}

func TestServerTrimsCommandWhitespace(t *testing.T) {
	got := make(chan string, 1)
	_, socket := startTestServer(t, func(cmd string) string {
		got <- cmd
		return "ok"
	})

	if _, err := Send(socket, "  redraw\n"); err != nil {
		t.Fatalf("Failed to send command: %v", err)
	}
	if cmd := <-got; cmd != "redraw" {
		t.Errorf("Expected trimmed command redraw, got %q", cmd)
	}
}

func TestServerEmptyReplyClosesConnection(t *testing.T) {
	_, socket := startTestServer(t, func(cmd string) string { return "" })

	reply, err := Send(socket, "quit")
	if err != nil {
		t.Fatalf("Expected clean close on empty reply, got %v", err)
	}
	if reply != "" {
		t.Errorf("Expected empty reply, got %q", reply)
	}
}

func TestServerReplacesStaleSocket(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "strut.sock")
	if err := os.WriteFile(socket, []byte("stale"), 0644); err != nil {
		t.Fatalf("Failed to plant stale socket: %v", err)
	}

	srv := NewServer(socket, func(string) string { return "ok" })
	if err := srv.Start(); err != nil {
		t.Fatalf("Expected start to replace stale socket, got %v", err)
	}
	defer srv.Stop()

	if _, err := Send(socket, "ping"); err != nil {
		t.Errorf("Failed to reach server after stale socket replacement: %v", err)
	}
}

func TestStopRemovesSocketAndIsIdempotent(t *testing.T) {
	srv, socket := startTestServer(t, func(string) string { return "ok" })

	srv.Stop()
	if _, err := os.Stat(socket); !os.IsNotExist(err) {
		t.Errorf("Expected socket file to be removed, got %v", err)
	}
	srv.Stop()
}

func TestSendFailsWithoutServer(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "nobody-home.sock")
	if _, err := Send(socket, "ping"); err == nil {
		t.Error("Expected an error dialing a missing socket")
	}
}
