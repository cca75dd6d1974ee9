// Package runner implements the Robo Runner game loop: a side-scrolling
// runner where a robot jumps over ground obstacles and dodges flying ones.
//
// The engine owns all session state explicitly and has no knowledge of the
// host. Hosts feed input frames, drive Step at a fixed rate and hand a
// Canvas to Draw.
package runner

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robo-runner/internal/config"
	"github.com/vovakirdan/robo-runner/internal/core"
)

// GameID identifies the runner in score storage.
const GameID = "runner"

// Title is the display name.
const Title = "Robo Runner"

// Sound is the audio output capability.
type Sound interface {
	PlayJump()
	PlayGameOver()
}

// Sprite is an image resource that may still be loading.
type Sprite interface {
	Ready() bool
}

// ScoreRecorder persists final scores.
type ScoreRecorder interface {
	RecordScore(score int) error
}

// Options carries the engine's collaborators. Zero values are valid.
type Options struct {
	Sound     Sound
	Sprite    Sprite
	Recorder  ScoreRecorder
	Logger    *log.Logger
	HighScore int // Best score loaded from storage

	// Attract marks a computer-played session. Its game overs are not
	// recorded and do not raise the high score.
	Attract bool
}

// Engine runs the game.
type Engine struct {
	cfg      config.RunnerConfig
	s        Session
	rng      *rand.Rand
	sound    Sound
	sprite   Sprite
	recorder ScoreRecorder
	logger   *log.Logger
	attract  bool
	paused   bool
}

// New creates an engine and starts the first session.
func New(cfg config.RunnerConfig, runtime core.RuntimeConfig, opts Options) *Engine {
	e := &Engine{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(runtime.Seed)),
		sound:    opts.Sound,
		sprite:   opts.Sprite,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		attract:  opts.Attract,
	}
	if e.sound == nil {
		e.sound = silence{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	e.s.ramp = config.NewRamp(cfg.Difficulty)
	e.s.HighScore = opts.HighScore
	e.InitGame()
	return e
}

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.RunnerConfig {
	return e.cfg
}

// Session exposes the live session state. Hosts read it for drawing and
// hit-testing the restart control; tests use it to set up scenarios.
func (e *Engine) Session() *Session {
	return &e.s
}

// InitGame resets the session to its starting state and hides the restart
// control. The high score is kept.
func (e *Engine) InitGame() {
	s := &e.s
	s.ramp.Reset()
	s.Player = Player{
		Box: core.NewBox(
			e.cfg.Player.X,
			e.groundY()-e.cfg.Player.Height,
			e.cfg.Player.Width,
			e.cfg.Player.Height,
		),
	}
	s.Ground.Clear()
	s.Flying.Clear()
	s.groundCounter = 0
	s.flyCounter = 0
	s.spawnThreshold = e.rollSpawnThreshold()
	s.Score = 0
	s.Frames = 0
	s.GameOver = false
	s.RestartVisible = false
	e.paused = false
}

// Restart leaves GAME_OVER for a fresh session. It does nothing while a
// session is in progress.
func (e *Engine) Restart() bool {
	if !e.s.GameOver {
		return false
	}
	e.InitGame()
	e.logger.Debug("session restarted", "high", e.s.HighScore)
	return true
}

// JumpVelocity returns the initial upward velocity that lifts the player by
// the configured jump height.
func (e *Engine) JumpVelocity() float64 {
	return -math.Sqrt(2 * e.cfg.Physics.Gravity * e.cfg.Physics.JumpHeight)
}

// HandleJump applies a jump if the player has jumps left since touching the
// ground. Ignored after game over.
func (e *Engine) HandleJump() bool {
	s := &e.s
	if s.GameOver || s.Player.Jumps >= e.cfg.Physics.MaxJumps {
		return false
	}
	s.Player.VY = e.JumpVelocity()
	s.Player.Jumps++
	e.sound.PlayJump()
	return true
}

// Update advances physics and obstacles by one frame.
func (e *Engine) Update() {
	s := &e.s
	speed := s.Speed()

	// Player physics
	s.Player.VY += e.cfg.Physics.Gravity
	s.Player.Y += s.Player.VY
	if floor := e.groundY() - s.Player.H; s.Player.Y > floor {
		s.Player.Y = floor
		s.Player.VY = 0
		s.Player.Jumps = 0
	}

	// Ground obstacles move and leave
	s.Ground.Advance(speed)
	s.Ground.PruneFront()

	// Flying obstacles spawn, move and leave
	s.flyCounter++
	if s.flyCounter >= e.cfg.Flying.SpawnEvery {
		s.flyCounter = 0
		s.Flying.Push(e.newFlyingObstacle())
	}
	s.Flying.Advance(speed)
	s.Flying.PruneFront()

	// Ground obstacles spawn
	s.groundCounter++
	if s.groundCounter >= s.spawnThreshold {
		s.groundCounter = 0
		s.spawnThreshold = e.rollSpawnThreshold()
		s.Ground.Push(e.newGroundObstacle())
	}
}

// Tick runs one iteration of the game loop body: update, collision and
// scoring. After game over it only reports the state, so hosts can keep
// ticking to render the overlay.
func (e *Engine) Tick() core.StepResult {
	s := &e.s
	if s.GameOver {
		return core.StepResult{State: e.State()}
	}

	e.Update()
	s.Frames++

	if e.hit() {
		s.GameOver = true
		e.sound.PlayGameOver()
		e.recordScore()
		return core.StepResult{State: e.State(), Crashed: true}
	}

	s.Score++
	speedUp := s.ramp.Observe(s.Score)
	if speedUp {
		e.logger.Debug("speed up", "score", s.Score, "speed", s.Speed())
	}
	return core.StepResult{State: e.State(), SpeedUp: speedUp}
}

// Step applies one frame of host input and then runs Tick unless paused.
func (e *Engine) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && e.Restart() {
		return core.StepResult{State: e.State()}
	}

	if in.Has(core.ActionPause) && !e.s.GameOver {
		e.paused = !e.paused
	}

	jumped := false
	if !e.paused {
		for i := 0; i < in.Count(core.ActionJump); i++ {
			if e.HandleJump() {
				jumped = true
			}
		}
	}

	if e.paused {
		return core.StepResult{State: e.State()}
	}

	result := e.Tick()
	result.Jumped = jumped
	return result
}

// Frame is one scheduled callback: Step followed by Draw.
func (e *Engine) Frame(in core.InputFrame, c Canvas) core.StepResult {
	result := e.Step(in)
	e.Draw(c)
	return result
}

// State returns the current game state.
func (e *Engine) State() core.GameState {
	return core.GameState{
		Score:     e.s.Score,
		HighScore: e.s.HighScore,
		Speed:     e.s.Speed(),
		GameOver:  e.s.GameOver,
		Paused:    e.paused,
	}
}

// hit tests the player against ground obstacles, then flying obstacles.
func (e *Engine) hit() bool {
	p := e.s.Player.Box
	for _, o := range e.s.Ground.All() {
		if Collides(p, o.Box, e.cfg.Collision.Margin) {
			return true
		}
	}
	for _, o := range e.s.Flying.All() {
		if Collides(p, o.Box, e.cfg.Collision.Margin) {
			return true
		}
	}
	return false
}

// recordScore raises the high score and persists the final score once per
// game over. Persistence failures are logged; the game carries on.
func (e *Engine) recordScore() {
	s := &e.s
	if e.attract {
		e.logger.Debug("attract run over", "score", s.Score)
		return
	}
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	e.logger.Info("game over", "score", s.Score, "high", s.HighScore)

	if e.recorder == nil {
		return
	}
	if err := e.recorder.RecordScore(s.Score); err != nil {
		e.logger.Warn("could not record score", "score", s.Score, "error", err)
	}
}

// Grounded reports whether the player is standing on the ground.
func (e *Engine) Grounded() bool {
	p := e.s.Player
	return p.VY == 0 && p.Bottom() >= e.groundY()-1e-9
}

func (e *Engine) groundY() float64 {
	return e.cfg.World.GroundY()
}

// rollSpawnThreshold picks the frames until the next ground obstacle,
// uniform in [MinInterval, MaxInterval).
func (e *Engine) rollSpawnThreshold() int {
	g := e.cfg.Ground
	if g.MaxInterval <= g.MinInterval {
		return g.MinInterval
	}
	return g.MinInterval + e.rng.Intn(g.MaxInterval-g.MinInterval)
}

func (e *Engine) newGroundObstacle() Obstacle {
	g := e.cfg.Ground
	h := g.MinHeight + e.rng.Float64()*(g.MaxHeight-g.MinHeight)
	return Obstacle{
		Box:  core.NewBox(e.cfg.World.Width, e.groundY()-h, g.Width, h),
		Kind: KindGround,
	}
}

func (e *Engine) newFlyingObstacle() Obstacle {
	f := e.cfg.Flying
	y := f.MinY + e.rng.Float64()*(f.MaxY-f.MinY)
	return Obstacle{
		Box:  core.NewBox(e.cfg.World.Width, y, f.Size, f.Size),
		Kind: KindFlying,
	}
}

type silence struct{}

func (silence) PlayJump()     {}
func (silence) PlayGameOver() {}
