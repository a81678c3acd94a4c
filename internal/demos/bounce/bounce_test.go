package bounce

import (
	"context"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/scenekit/internal/actor"
	"github.com/vovakirdan/scenekit/internal/clock"
	"github.com/vovakirdan/scenekit/internal/core"
	"github.com/vovakirdan/scenekit/internal/registry"
	"github.com/vovakirdan/scenekit/internal/scene"
)

type canvas struct{}

func (canvas) Size() (int, int)                      { return 200, 120 }
func (canvas) Clear()                                {}
func (canvas) Blit(image.Image, image.Point)         {}
func (canvas) FillRect(image.Rectangle, color.Color) {}
func (canvas) Present() error                        { return nil }

// keys delivers one batch per poll and quits when it runs out.
type keys [][]core.Event

func (k *keys) Poll() []core.Event {
	if len(*k) == 0 {
		return []core.Event{core.QuitEvent()}
	}
	b := (*k)[0]
	*k = (*k)[1:]
	return b
}

func build(t *testing.T, events scene.EventSource, opts registry.Options) (*Demo, *scene.Game) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	ctx := scene.NewContext(canvas{}, events)
	ctx.Clock = clock.NewManual(time.Unix(0, 0))
	g := scene.NewGame(ctx)
	d := New()
	if err := d.Build(g, opts); err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	return d, g
}

func TestBuildDefaults(t *testing.T) {
	d, g := build(t, &keys{}, registry.Options{})

	if g.CurrentName() != "bounce" {
		t.Errorf("CurrentName() = %q, expected bounce", g.CurrentName())
	}
	box := d.Box()
	if box.X() != 100 || box.Y() != 60 {
		t.Errorf("box at (%v, %v), expected canvas center (100, 60)", box.X(), box.Y())
	}
	if box.Speed() != 4 {
		t.Errorf("Speed() = %v, expected 4", box.Speed())
	}
	if math.Abs(box.MoveAngle()-230) > 1e-9 {
		t.Errorf("MoveAngle() = %v, expected 230", box.MoveAngle())
	}
	if box.BoundAction() != actor.Bounce {
		t.Errorf("BoundAction() = %v, expected Bounce", box.BoundAction())
	}
	if s, _ := g.Scene("bounce"); s.FrameRate() != 30 {
		t.Errorf("FrameRate() = %d, expected 30", s.FrameRate())
	}
}

func TestFrameRateOverride(t *testing.T) {
	_, g := build(t, &keys{}, registry.Options{FrameRate: 12})
	if s, _ := g.Scene("bounce"); s.FrameRate() != 12 {
		t.Errorf("FrameRate() = %d, expected 12", s.FrameRate())
	}
}

func TestKeysSwitchBoundAction(t *testing.T) {
	tests := []struct {
		key      string
		expected actor.BoundAction
	}{
		{"w", actor.Wrap},
		{"s", actor.Stop},
		{"h", actor.Hide},
		{"c", actor.Continue},
		{"b", actor.Bounce},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			d, g := build(t, &keys{{core.KeyDown("w")}, {core.KeyDown(tt.key)}}, registry.Options{})
			if err := g.Run(context.Background()); err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if d.Box().BoundAction() != tt.expected {
				t.Errorf("BoundAction() = %v, expected %v", d.Box().BoundAction(), tt.expected)
			}
		})
	}
}

func TestResetKey(t *testing.T) {
	d, g := build(t, &keys{nil, nil, nil, {core.KeyDown("r")}}, registry.Options{})
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	// The reset lands in the fourth tick's events; that tick and the quitting
	// fifth tick each move the box once.
	box := d.Box()
	rad := 230 * math.Pi / 180
	x, y := 100+8*math.Cos(rad), 60-8*math.Sin(rad)
	if math.Abs(box.X()-x) > 1e-9 || math.Abs(box.Y()-y) > 1e-9 {
		t.Errorf("box at (%v, %v), expected (%v, %v)", box.X(), box.Y(), x, y)
	}
}

func TestBuildRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bounce.yaml")
	if err := os.WriteFile(path, []byte("bound_action: explode\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	t.Setenv("HOME", t.TempDir())
	g := scene.NewGame(scene.NewContext(canvas{}, nil))
	if err := New().Build(g, registry.Options{ConfigPath: path}); err == nil {
		t.Error("expected error for unknown bound action")
	}
}

func TestFrameRate(t *testing.T) {
	if got := frameRate(30, 0); got != 30 {
		t.Errorf("frameRate(30, 0) = %d, expected 30", got)
	}
	if got := frameRate(30, 60); got != 60 {
		t.Errorf("frameRate(30, 60) = %d, expected 60", got)
	}
}
