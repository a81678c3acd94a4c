// Package runner implements a two-scene endless runner: a title scene with
// a start button and a track scene where the runner jumps hurdles that
// score when they reach the wall. Finished runs are saved as scores.
package runner

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/scenekit/internal/actor"
	"github.com/vovakirdan/scenekit/internal/audio"
	"github.com/vovakirdan/scenekit/internal/clock"
	"github.com/vovakirdan/scenekit/internal/config"
	"github.com/vovakirdan/scenekit/internal/core"
	"github.com/vovakirdan/scenekit/internal/gfx"
	"github.com/vovakirdan/scenekit/internal/registry"
	"github.com/vovakirdan/scenekit/internal/scene"
	"github.com/vovakirdan/scenekit/internal/tilemap"
)

const demoID = "runner"

// Scene names.
const (
	StartScene = "start"
	TrackScene = "track"
)

// blinkEvent is the timer event that flashes the game-over label.
const blinkEvent = 1

// blinkPeriod is how often the game-over label toggles.
const blinkPeriod = 400 * time.Millisecond

func init() {
	registry.Register(demoID, func() registry.Demo { return New() })
}

// timerSource is implemented by event sources that can post deferred events.
type timerSource interface {
	SetTimer(ev core.Event, d time.Duration)
}

// Demo is the runner demo.
type Demo struct {
	cfg  config.RunnerConfig
	opts registry.Options
	game *scene.Game
	rng  *rand.Rand

	difficulty *config.DifficultyManager
	watch      *clock.Stopwatch
	jump       *audio.Sound

	// Start scene
	button *actor.Actor

	// Track scene
	track     *scene.Scene
	runner    *actor.Actor
	hurdle    *actor.Actor
	scoreText *gfx.TextBox
	bestText  *gfx.TextBox
	gameOver  *actor.Actor
	wallTiles []tilemap.Tile
	floorTop  float64
	score     int
	best      int
	canScore  bool
	over      bool
	startTick int
}

// New creates the demo with its default configuration.
func New() *Demo {
	return &Demo{cfg: config.DefaultRunnerConfig()}
}

// ID returns the demo identifier.
func (d *Demo) ID() string { return demoID }

// Title returns the display name.
func (d *Demo) Title() string { return "Runner" }

// Tunable reports that the demo honors difficulty presets.
func (d *Demo) Tunable() bool { return true }

// Score returns the current run's score.
func (d *Demo) Score() int { return d.score }

// Over reports whether the current run has ended.
func (d *Demo) Over() bool { return d.over }

// Build loads the configuration and adds the start and track scenes.
func (d *Demo) Build(g *scene.Game, opts registry.Options) error {
	cfg, err := config.LoadRunner(opts.ConfigPath)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(opts.Difficulty)
	if err != nil {
		return err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}

	d.cfg = cfg
	d.opts = opts
	d.game = g
	d.rng = rand.New(rand.NewSource(opts.Seed))
	d.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	d.watch = clock.NewStopwatch(g.Context().Clock)

	if d.jump, err = d.loadJumpSound(g.Context().Audio); err != nil {
		return err
	}
	if opts.Scores != nil {
		if d.best, err = opts.Scores.HighScore(demoID); err != nil {
			return fmt.Errorf("runner: %w", err)
		}
	}

	if err := d.buildStart(g); err != nil {
		return err
	}
	if err := d.buildTrack(g); err != nil {
		return err
	}
	return g.SetCurrentScene(StartScene)
}

func (d *Demo) loadJumpSound(dev *audio.Device) (*audio.Sound, error) {
	if dev == nil {
		dev = audio.NewMuted()
	}
	if d.cfg.Sound.JumpFile != "" {
		return dev.Load(d.cfg.Sound.JumpFile)
	}
	rate := dev.SampleRate()
	tone := audio.Tone(rate, d.cfg.Sound.ToneHz, time.Duration(d.cfg.Sound.ToneMS)*time.Millisecond)
	return dev.NewSound(tone, audio.ToneFormat(rate)), nil
}

func (d *Demo) frameRate() int {
	if d.opts.FrameRate > 0 {
		return d.opts.FrameRate
	}
	return d.cfg.Scene.FrameRate
}

// buildStart adds the title scene: a label and a start button.
func (d *Demo) buildStart(g *scene.Game) error {
	bg, err := d.cfg.Scene.BackgroundColor()
	if err != nil {
		return err
	}
	w, h := g.Context().Surface.Size()
	m := scene.NewMap(w, h)
	m.SetBackground(gfx.Solid(w, h, bg))

	title := gfx.NewTextBox("scenekit Runner")
	title.SetTextColor(gfx.MustColor("white"))
	title.SetBackgroundColor(gfx.MustColor("#23637e"))
	label := actor.New(title)
	label.SetName("title")
	label.SetCollidable(false)
	label.SetPosition(float64(w)/2, float64(h)/4)

	d.button = actor.New(gfx.NewTextBox("Start Game"))
	d.button.SetName("start")
	d.button.SetPosition(float64(w)/2, float64(h)/2)
	d.button.SetClickable(actor.NewClickable(func(*actor.Actor) { d.startRun() }))

	s := g.NewScene(StartScene, m)
	s.SetFrameRate(d.frameRate())
	s.AddActor(label, d.button)
	s.SetHooks(scene.Hooks{OnEvent: func(_ *scene.Scene, ev core.Event) {
		if ev.Type == core.EventKeyDown && (ev.Key == "enter" || ev.Key == "space") {
			d.startRun()
		}
	}})
	return nil
}

// startRun switches to the track with a fresh run.
func (d *Demo) startRun() {
	d.reset()
	//nolint:errcheck // The track scene is registered in Build
	d.game.GoToScene(TrackScene)
}
