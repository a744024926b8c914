// strutmsg sends one command to a running bar over its unix socket and
// prints the reply. The socket path comes from STRUT_SOCKET or falls back
// to the default.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chess10kp/strut/internal/ipc"
)

const defaultSocketPath = "/tmp/strut_socket"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: strutmsg redraw|ping|quit|<message>\n")
		os.Exit(1)
	}

	socketPath := os.Getenv("STRUT_SOCKET")
	if socketPath == "" {
		socketPath = defaultSocketPath
	}

	message := strings.Join(os.Args[1:], " ")
	reply, err := ipc.Send(socketPath, message)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if reply != "" {
		fmt.Println(reply)
	}
}
