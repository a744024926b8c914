package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/chess10kp/strut/internal/bar"
	"github.com/chess10kp/strut/internal/bar/widgets"
	"github.com/chess10kp/strut/internal/config"
	"github.com/chess10kp/strut/internal/draw"
	"github.com/chess10kp/strut/internal/gtkdraw"
	"github.com/chess10kp/strut/internal/ipc"
	"github.com/chess10kp/strut/internal/wm"
)

const pidFile = "/tmp/strut.pid"

// ensureSingleInstance kills a previous bar still holding the pid file,
// then claims it for this process.
func ensureSingleInstance() error {
	if data, err := os.ReadFile(pidFile); err == nil {
		if pid, err := strconv.Atoi(string(data)); err == nil {
			if process, err := os.FindProcess(pid); err == nil {
				if err := process.Signal(syscall.Signal(0)); err == nil {
					process.Kill()
					process.Wait()
				}
			}
		}
	}
	return os.WriteFile(pidFile, []byte(strconv.Itoa(os.Getpid())), 0644)
}

func setupLogging(path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return
	}
	log.SetOutput(logFile)
}

func barConfig(cfg *config.Config, ws []bar.Widget) (bar.Config, error) {
	bg, err := draw.ParseColor(cfg.Bar.Colors.Background)
	if err != nil {
		return bar.Config{}, err
	}
	position := bar.Top
	if cfg.Bar.Position == "bottom" {
		position = bar.Bottom
	}
	return bar.Config{
		Position:   position,
		Spacing:    cfg.Bar.Spacing,
		Screen:     cfg.Bar.Screen,
		Height:     cfg.Bar.Height,
		Background: bg,
		Fonts:      cfg.Bar.Fonts,
		Widgets:    ws,
	}, nil
}

func main() {
	configPath := flag.String("config", "~/.config/strut/config.toml", "path to the config file")
	flag.Parse()

	cfg, err := config.LoadAndValidateConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	setupLogging(cfg.LogFile)

	if err := ensureSingleInstance(); err != nil {
		log.Fatalf("Failed to ensure single instance: %v", err)
	}
	defer os.Remove(pidFile)

	log.Println("Strut starting...")

	gtk.Init(nil)

	backend, err := gtkdraw.New(cfg.Bar.Screen)
	if err != nil {
		log.Fatalf("Failed to create drawing backend: %v", err)
	}
	defer backend.Close()

	ws, err := widgets.FromConfig(&cfg.Bar)
	if err != nil {
		log.Fatalf("Failed to build widgets: %v", err)
	}
	defer func() {
		for _, w := range ws {
			if c, ok := w.(interface{ Close() }); ok {
				c.Close()
			}
		}
	}()

	barCfg, err := barConfig(cfg, ws)
	if err != nil {
		log.Fatalf("Failed to assemble bar config: %v", err)
	}
	sb, err := bar.New(backend, barCfg)
	if err != nil {
		log.Fatalf("Failed to create status bar: %v", err)
	}

	// All state mutation and painting happens on the GTK main loop; the
	// sway subscription, IPC connections and signal handler only ever
	// queue work onto it.
	dispatch := func(f func()) {
		glib.IdleAdd(func() bool {
			f()
			return false
		})
	}

	monitor := wm.NewMonitor([]wm.Hook{sb}, dispatch)
	monitor.OnQuit(gtk.MainQuit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		// The bar keeps running without sway; time driven widgets still
		// advance through the refresh ticker.
		if err := monitor.Run(ctx); err != nil {
			log.Printf("Window manager monitor unavailable: %v", err)
		}
	}()

	srv := ipc.NewServer(cfg.SocketPath, func(cmd string) string {
		switch cmd {
		case "ping":
			return "pong"
		case "redraw":
			dispatch(func() {
				if err := sb.Redraw(); err != nil {
					log.Printf("unable to redraw bar: %v", err)
				}
			})
			return "ok"
		case "quit":
			dispatch(gtk.MainQuit)
			return "ok"
		default:
			return fmt.Sprintf("unknown command %q", cmd)
		}
	})
	if err := srv.Start(); err != nil {
		log.Printf("Warning: failed to start IPC server: %v", err)
	} else {
		defer srv.Stop()
	}

	if cfg.Bar.RefreshMS > 0 {
		glib.TimeoutAdd(uint(cfg.Bar.RefreshMS), func() bool {
			sb.RedrawIfNeeded()
			return true
		})
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		dispatch(gtk.MainQuit)
	}()

	gtk.Main()

	log.Println("Strut stopped")
}
