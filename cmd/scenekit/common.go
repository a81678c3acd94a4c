package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/scenekit/internal/audio"
	"github.com/vovakirdan/scenekit/internal/audio/speaker"
	"github.com/vovakirdan/scenekit/internal/core"
	"github.com/vovakirdan/scenekit/internal/platform/tui"
	"github.com/vovakirdan/scenekit/internal/registry"
	"github.com/vovakirdan/scenekit/internal/storage"
)

// terminalSize returns the terminal size in characters, 80x24 when stdout
// is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the scores database. A failure is reported and the demo
// runs without score keeping.
func openStore(errOut io.Writer) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(errOut, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// scoreStore avoids handing demos a typed nil.
func scoreStore(s *storage.Store) registry.ScoreStore {
	if s == nil {
		return nil
	}
	return s
}

func scoreSource(s *storage.Store) tui.ScoreSource {
	if s == nil {
		return nil
	}
	return s
}

// newLogger writes to path, or discards everything when path is empty. The
// terminal belongs to the scene while it runs.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "scenekit",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

func playerName() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return os.Getenv("USER")
}

func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// playDemo runs one demo on the local terminal.
func playDemo(ctx context.Context, id, difficulty string, store *storage.Store) error {
	logger, closeLog, err := newLogger(flagLog)
	if err != nil {
		return err
	}
	defer closeLog()

	dev := audio.NewMuted()
	if !flagMute {
		dev = speaker.NewDevice()
		if err := dev.Open(); err != nil {
			logger.Warn("audio unavailable, running muted", "error", err)
			dev = audio.NewMuted()
		}
	}

	cols, rows := terminalSize()
	w, h := core.CanvasForTerminal(cols, rows)
	logger.Info("starting demo", "demo", id, "canvas", fmt.Sprintf("%dx%d", w, h), "difficulty", difficulty)

	sess, err := tui.NewSession(tui.SessionConfig{
		DemoID:  id,
		CanvasW: w,
		CanvasH: h,
		Options: registry.Options{
			ConfigPath: flagConfig,
			Difficulty: difficulty,
			FrameRate:  flagFPS,
			Seed:       seed(),
			Player:     playerName(),
			Scores:     scoreStore(store),
		},
		Logger: logger,
		Audio:  dev,
	})
	if err != nil {
		return err
	}
	return tui.Play(ctx, sess)
}
