package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"

	"github.com/tomz197/warpteroids/internal/config"
	"github.com/tomz197/warpteroids/internal/game"
	"github.com/tomz197/warpteroids/internal/loop"
)

const shutdownGrace = 5 * time.Second

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("load .env", "err", err)
	}
	settings := config.Load()
	logger := settings.NewLogger(os.Stderr, "ssh")

	// closing cancels every running session
	closing, closeSessions := context.WithCancel(context.Background())
	defer closeSessions()
	h := &handler{settings: settings, log: logger, closing: closing}

	opts := []ssh.Option{
		wish.WithAddress(settings.SSHAddr()),
		wish.WithMiddleware(
			h.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if settings.SSHHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(settings.SSHHostKey))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	logger.Info("starting SSH server", "addr", settings.SSHAddr())
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server", "sessions", h.active())
	closeSessions()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("shutdown error", "err", err)
	}
}

// handler runs one independent game per SSH session.
type handler struct {
	settings config.Settings
	log      *log.Logger
	closing  context.Context

	mu       sync.Mutex
	sessions int
}

func (h *handler) active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessions
}

func (h *handler) track(delta int) {
	h.mu.Lock()
	h.sessions += delta
	h.mu.Unlock()
}

func (h *handler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		h.track(1)
		defer h.track(-1)

		logger := h.log.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("new game session", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

		sizes := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizes.update(win.Width, win.Height)
			}
		}()

		ctx, cancel := context.WithCancel(sess.Context())
		defer cancel()
		stop := context.AfterFunc(h.closing, cancel)
		defer stop()

		world := game.New(
			game.WithSeed(h.settings.RandSeed()),
			game.WithLogger(logger),
			game.WithBroadPhase(true),
		)
		err := loop.Run(ctx, sess, sess, loop.Options{
			World:       world,
			TermSize:    sizes.getSize,
			Styles:      lipgloss.NewRenderer(sess, termenv.WithProfile(termenv.TrueColor)),
			Logger:      logger,
			IdleWarn:    config.InactivityWarn,
			IdleTimeout: config.InactivityDisconnect,
		})
		switch {
		case errors.Is(err, loop.ErrIdle):
			fmt.Fprintln(sess, "Disconnected for inactivity.")
			logger.Info("session idle")
		case h.closing.Err() != nil:
			fmt.Fprintln(sess, "Server is shutting down.")
		case err != nil && !errors.Is(err, context.Canceled):
			logger.Error("game error", "err", err)
		}

		logger.Info("session ended", "score", world.Score(), "level", world.Level())
		next(sess)
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}
