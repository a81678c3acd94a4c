package runner

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/scenekit/internal/actor"
	"github.com/vovakirdan/scenekit/internal/core"
	"github.com/vovakirdan/scenekit/internal/gfx"
	"github.com/vovakirdan/scenekit/internal/scene"
	"github.com/vovakirdan/scenekit/internal/storage"
	"github.com/vovakirdan/scenekit/internal/tilemap"
)

// hudWidth fits "Score: 9999" in the built-in face.
const hudWidth = 80

// floorCells flags the bottom row and the left column of a rows x cols grid.
func floorCells(rows, cols int) [][]int {
	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
		cells[r][0] = tilemap.Flag
	}
	for c := range cells[rows-1] {
		cells[rows-1][c] = tilemap.Flag
	}
	return cells
}

// buildTrack adds the track scene: floor grid, runner, hurdle and HUD.
func (d *Demo) buildTrack(g *scene.Game) error {
	bg, err := d.cfg.Scene.BackgroundColor()
	if err != nil {
		return err
	}
	w, h := g.Context().Surface.Size()
	m := scene.NewMap(w, h)
	m.SetBackground(gfx.Solid(w, h, bg))
	if d.cfg.Scene.ShowTiles {
		m.ShowTiles()
	}

	rows := d.cfg.Floor.Rows
	grid := m.CreateBoundsMap(floorCells(rows, d.cfg.Floor.Cols), w, h)
	d.wallTiles = d.wallTiles[:0]
	for _, t := range grid.Tiles() {
		switch {
		case t.Row == rows-1:
			d.floorTop = t.Box().Top()
		case t.Col == 0:
			d.wallTiles = append(d.wallTiles, t)
		}
	}

	rc := d.cfg.Runner
	d.runner = actor.New(gfx.NewPicture(runnerSheet(rc.Frames, rc.Width, rc.Height)))
	d.runner.SetName("runner")
	if err := d.runner.CreateAnimation("running", rc.Frames, rc.Width, rc.Height, 0, 0, 1); err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	d.runner.SetCurrentAnimation("running")
	d.runner.SetAnimationSpeed(rc.AnimThreshold, 1)
	d.runner.Crop(0, 0, rc.Width, rc.Height)
	d.runner.SetBoundAction(actor.Continue)
	d.runner.SetBehavior(actor.BehaviorFunc(d.fall))

	hc := d.cfg.Hurdle
	d.hurdle = actor.New(gfx.NewPicture(hurdleImage(hc.Width, hc.Height, gfx.MustColor(hc.Color))))
	d.hurdle.SetName("hurdle")
	d.hurdle.SetBoundAction(actor.Continue)

	d.scoreText = hudText(gfx.MustColor("white"))
	score := actor.New(d.scoreText)
	score.SetCollidable(false)
	score.SetPosition(2+hudWidth/2, 2+textHeight(d.scoreText)/2)

	d.bestText = hudText(gfx.MustColor("gold"))
	best := actor.New(d.bestText)
	best.SetCollidable(false)
	best.SetPosition(float64(w)-2-hudWidth/2, 2+textHeight(d.bestText)/2)

	over := gfx.NewTextBox("Game Over!")
	over.SetTextColor(gfx.MustColor("white"))
	over.SetBackgroundColor(gfx.MustColor("firebrick"))
	d.gameOver = actor.New(over)
	d.gameOver.SetName("game-over")
	d.gameOver.SetCollidable(false)
	d.gameOver.SetPosition(float64(w)/2, float64(h)/3)
	d.gameOver.Hide()

	s := g.NewScene(TrackScene, m)
	s.SetFrameRate(d.frameRate())
	s.CreateGroup("players", d.runner, d.hurdle)
	s.CreateGroup("hud", score, best, d.gameOver)
	s.SetHooks(scene.Hooks{
		OnEvent:  d.onTrackEvent,
		OnUpdate: d.update,
	})
	d.track = s

	d.reset()
	return nil
}

func hudText(fg color.Color) *gfx.TextBox {
	t := gfx.NewTextBox("")
	t.SetTextColor(fg)
	t.SetBackgroundColor(core.ColorBackground)
	t.SetSize(hudWidth, 0)
	return t
}

func textHeight(t *gfx.TextBox) float64 {
	return float64(t.Image().Bounds().Dy())
}

// reset starts a new run on the track.
func (d *Demo) reset() {
	w, _ := d.game.Context().Surface.Size()

	d.over = false
	d.score = 0
	d.canScore = true
	d.startTick = d.track.Ticks()

	d.runner.SetPosition(float64(d.cfg.Runner.X), d.floorTop-float64(d.cfg.Runner.Height)/2)
	d.runner.SetDY(0)
	d.runner.ResetAnimation()
	d.runner.PlayAnimation()

	d.spawnHurdle(float64(w))
	d.hurdle.SetMotionVector(d.cfg.Hurdle.Speed, 180)

	d.gameOver.Hide()
	d.setBlink(false)
	d.jump.Stop()
	d.updateHUD()

	d.watch.Reset()
	d.watch.Start()
}

// spawnHurdle places the hurdle just right of x on the floor.
func (d *Demo) spawnHurdle(x float64) {
	d.hurdle.SetPosition(x+float64(d.cfg.Hurdle.Width)/2, d.floorTop-float64(d.cfg.Hurdle.Height)/2)
}

// onFloor reports whether the runner stands on the floor.
func (d *Demo) onFloor() bool {
	return d.runner.Y()+float64(d.cfg.Runner.Height)/2 >= d.floorTop-1e-6
}

// fall applies gravity while airborne and lands the runner on the floor.
func (d *Demo) fall(a *actor.Actor) {
	half := float64(d.cfg.Runner.Height) / 2
	bottom := a.Y() + half
	dy := a.DY()

	if bottom < d.floorTop {
		dy = min(dy+d.cfg.Physics.Gravity, d.cfg.Physics.MaxFallSpeed)
	}
	if bottom+dy >= d.floorTop {
		a.SetY(d.floorTop - half)
		dy = 0
	}
	a.SetDY(dy)
}

func (d *Demo) onTrackEvent(s *scene.Scene, ev core.Event) {
	switch ev.Type {
	case core.EventUser:
		if ev.Code == blinkEvent && d.over {
			if d.gameOver.Visible() {
				d.gameOver.Hide()
			} else {
				d.gameOver.Show()
			}
		}
	case core.EventKeyDown:
		switch ev.Key {
		case "space", "up", "w":
			if d.over {
				d.reset()
				return
			}
			if d.onFloor() {
				d.runner.SetDY(d.cfg.Physics.JumpImpulse)
				d.jump.Play()
			}
		case "enter":
			if d.over {
				d.reset()
			}
		case "esc", "m":
			d.setBlink(false)
			//nolint:errcheck // The start scene is registered in Build
			d.game.GoToScene(StartScene)
		}
	}
}

// update runs before the actors move: hurdle speed, scoring, respawn and
// the collision that ends the run.
func (d *Demo) update(s *scene.Scene) {
	if d.over {
		return
	}

	ticks := s.Ticks() - d.startTick
	d.hurdle.SetSpeed(d.difficulty.Speed(d.cfg.Hurdle.Speed, d.score, ticks))

	if d.canScore {
		if _, hit := d.hurdle.CollidesWithTiles(d.wallTiles); hit {
			d.score++
			d.canScore = false
		}
	}
	if d.hurdle.Box().Right() < 0 {
		w, _ := s.Context().Surface.Size()
		d.spawnHurdle(float64(w + d.rng.Intn(max(w/2, 1))))
		d.canScore = true
	}

	if d.runner.CollidesWith(d.hurdle) {
		d.endRun(s, ticks)
	}
	d.updateHUD()
}

func (d *Demo) updateHUD() {
	d.scoreText.SetText(fmt.Sprintf("Score: %d", d.score))
	d.bestText.SetText(fmt.Sprintf("Best: %d", max(d.best, d.score)))
}

// endRun freezes the track, records the score and flashes the label.
func (d *Demo) endRun(s *scene.Scene, ticks int) {
	d.over = true
	d.hurdle.SetSpeed(0)
	d.runner.PauseAnimation()
	d.gameOver.Show()
	d.setBlink(true)

	elapsed := d.watch.Stop()
	log := s.Context().Logger()
	log.Info("run over", "demo", demoID, "score", d.score, "ticks", ticks, "elapsed", elapsed)

	if d.score > d.best {
		d.best = d.score
	}
	if d.opts.Scores == nil {
		return
	}
	entry := storage.ScoreEntry{DemoID: demoID, Player: d.opts.Player, Score: d.score, Ticks: ticks}
	if _, err := d.opts.Scores.SaveScore(entry); err != nil {
		log.Error("cannot save score", "demo", demoID, "error", err)
	}
}

// setBlink starts or stops the game-over flash when the event source can
// post timed events.
func (d *Demo) setBlink(on bool) {
	ts, ok := d.game.Context().Events.(timerSource)
	if !ok {
		return
	}
	period := blinkPeriod
	if !on {
		period = 0
	}
	ts.SetTimer(core.UserEvent(blinkEvent), period)
}
