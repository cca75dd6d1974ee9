package runner

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/robo-runner/internal/clock"
	"github.com/vovakirdan/robo-runner/internal/config"
	"github.com/vovakirdan/robo-runner/internal/core"
)

type countingSound struct {
	jumps    int
	gameOver int
}

func (s *countingSound) PlayJump()     { s.jumps++ }
func (s *countingSound) PlayGameOver() { s.gameOver++ }

type memRecorder struct {
	scores []int
	err    error
}

func (r *memRecorder) RecordScore(score int) error {
	r.scores = append(r.scores, score)
	return r.err
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// quietConfig never spawns obstacles on its own.
func quietConfig() config.RunnerConfig {
	cfg := config.DefaultRunnerConfig()
	cfg.Ground.MinInterval = 1 << 30
	cfg.Ground.MaxInterval = 1 << 30
	cfg.Flying.SpawnEvery = 1 << 30
	return cfg
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestInitGameDefaults(t *testing.T) {
	e := New(config.DefaultRunnerConfig(), testRuntime(1), Options{HighScore: 42})
	s := e.Session()

	if s.Speed() != 6 {
		t.Errorf("Speed() = %f, expected 6", s.Speed())
	}
	if s.NextSpeedAt() != 500 {
		t.Errorf("NextSpeedAt() = %d, expected 500", s.NextSpeedAt())
	}
	if s.Score != 0 || s.GameOver || s.RestartVisible {
		t.Errorf("unexpected start state: score=%d gameOver=%v restart=%v", s.Score, s.GameOver, s.RestartVisible)
	}
	if s.Ground.Len() != 0 || s.Flying.Len() != 0 {
		t.Errorf("lanes should start empty, got %d ground, %d flying", s.Ground.Len(), s.Flying.Len())
	}
	if s.Player.Jumps != 0 || s.Player.VY != 0 {
		t.Errorf("player should be at rest, got jumps=%d vy=%f", s.Player.Jumps, s.Player.VY)
	}
	if s.Player.Box != core.NewBox(50, 132, 48, 48) {
		t.Errorf("player box = %+v, expected standing at x=50 on groundY=180", s.Player.Box)
	}
	if th := s.SpawnThreshold(); th < 30 || th >= 50 {
		t.Errorf("SpawnThreshold() = %d, expected in [30, 50)", th)
	}
	if s.HighScore != 42 {
		t.Errorf("HighScore = %d, expected 42 from options", s.HighScore)
	}
	if !e.Grounded() {
		t.Error("player should start grounded")
	}
}

func TestHandleJumpDoubleJumpCap(t *testing.T) {
	sound := &countingSound{}
	e := New(quietConfig(), testRuntime(1), Options{Sound: sound})
	s := e.Session()

	expectedVY := -math.Sqrt(2 * 0.6 * 60)

	if !e.HandleJump() {
		t.Fatal("first jump should succeed")
	}
	if math.Abs(s.Player.VY-expectedVY) > 1e-12 {
		t.Errorf("VY = %f, expected %f", s.Player.VY, expectedVY)
	}

	e.Update()

	if !e.HandleJump() {
		t.Fatal("second jump should succeed mid-air")
	}
	if s.Player.Jumps != 2 {
		t.Errorf("Jumps = %d, expected 2", s.Player.Jumps)
	}

	e.Update()
	vyBefore := s.Player.VY

	if e.HandleJump() {
		t.Error("third jump before landing should be a no-op")
	}
	if s.Player.VY != vyBefore || s.Player.Jumps != 2 {
		t.Errorf("third jump changed state: vy=%f jumps=%d", s.Player.VY, s.Player.Jumps)
	}
	if sound.jumps != 2 {
		t.Errorf("jump sound played %d times, expected 2", sound.jumps)
	}
}

func TestJumpReachesConfiguredHeight(t *testing.T) {
	e := New(quietConfig(), testRuntime(1), Options{})
	s := e.Session()
	startY := s.Player.Y

	e.HandleJump()
	minY := startY
	for i := 0; i < 60; i++ {
		e.Update()
		minY = math.Min(minY, s.Player.Y)
	}

	rise := startY - minY
	// Discrete integration falls slightly short of the analytic apex
	if rise > 60 || rise < 55 {
		t.Errorf("jump rise = %f, expected just under 60", rise)
	}
	if !e.Grounded() || s.Player.Jumps != 0 {
		t.Errorf("player should have landed, grounded=%v jumps=%d", e.Grounded(), s.Player.Jumps)
	}
}

func TestPlayerNeverBelowGround(t *testing.T) {
	cfg := quietConfig()
	e := New(cfg, testRuntime(7), Options{})
	s := e.Session()
	groundY := cfg.World.GroundY()

	for frame := 0; frame < 3000; frame++ {
		in := core.NewInputFrame()
		if frame%17 == 0 || frame%23 == 0 {
			in.Set(core.ActionJump)
		}
		e.Step(in)

		if s.Player.Bottom() > groundY {
			t.Fatalf("frame %d: player bottom %f below ground %f", frame, s.Player.Bottom(), groundY)
		}
		if s.Player.Jumps > cfg.Physics.MaxJumps {
			t.Fatalf("frame %d: jumps %d exceed cap", frame, s.Player.Jumps)
		}
	}
}

func TestTwoJumpsInOneFrame(t *testing.T) {
	e := New(quietConfig(), testRuntime(1), Options{})

	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	in.Set(core.ActionJump)
	in.Set(core.ActionJump)

	result := e.Step(in)
	if !result.Jumped {
		t.Error("Step should report a jump")
	}
	if got := e.Session().Player.Jumps; got != 2 {
		t.Errorf("Jumps = %d, expected 2 (third press capped)", got)
	}
}

func TestScoreAndSpeedProgression(t *testing.T) {
	e := New(quietConfig(), testRuntime(1), Options{})
	s := e.Session()

	speed := s.Speed()
	for frame := 1; frame <= 1500; frame++ {
		result := e.Tick()

		if s.Score != frame {
			t.Fatalf("frame %d: score = %d, expected %d", frame, s.Score, frame)
		}

		crossed := frame%500 == 0
		if result.SpeedUp != crossed {
			t.Fatalf("frame %d: SpeedUp = %v, expected %v", frame, result.SpeedUp, crossed)
		}
		if crossed {
			speed *= 1.3
		}
		if s.Speed() != speed {
			t.Fatalf("frame %d: speed = %f, expected %f", frame, s.Speed(), speed)
		}
	}

	if math.Abs(s.Speed()-6*1.3*1.3*1.3) > 1e-9 {
		t.Errorf("speed after 1500 = %f, expected %f", s.Speed(), 6*1.3*1.3*1.3)
	}
	if s.NextSpeedAt() != 2000 {
		t.Errorf("NextSpeedAt() = %d, expected 2000", s.NextSpeedAt())
	}
}

func TestFixedDifficultyKeepsSpeed(t *testing.T) {
	cfg := quietConfig()
	config.ApplyPreset(&cfg, config.DifficultyFixed)
	e := New(cfg, testRuntime(1), Options{})

	var clk clock.Manual
	clk.Advance(1200, func() bool {
		e.Tick()
		return true
	})
	if clk.Frames() != 1200 {
		t.Fatalf("ran %d frames, expected 1200", clk.Frames())
	}
	if e.Session().Speed() != 6 {
		t.Errorf("Speed() = %f, expected constant 6", e.Session().Speed())
	}
}

func TestObstacleSpawning(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Collision.Margin = 1000 // Shrinks the player to nothing: no collisions
	e := New(cfg, testRuntime(99), Options{})
	s := e.Session()

	lastGroundSpawn := 0
	groundSpawns := 0
	for frame := 1; frame <= 1000; frame++ {
		flyingBefore := s.Flying.Len()
		threshold := s.SpawnThreshold()

		e.Update()

		// Flying obstacles appear exactly every 200 frames
		if frame%200 == 0 {
			f := s.Flying.All()[s.Flying.Len()-1]
			if f.Kind != KindFlying || f.W != 30 || f.H != 30 {
				t.Fatalf("frame %d: unexpected flying obstacle %+v", frame, f)
			}
			if f.Y < 20 || f.Y >= 80 {
				t.Fatalf("frame %d: flying y = %f, expected in [20, 80)", frame, f.Y)
			}
			if f.X != 800-s.Speed() {
				t.Fatalf("frame %d: new flying obstacle at x=%f, expected moved once from 800", frame, f.X)
			}
		} else if s.Flying.Len() > flyingBefore {
			t.Fatalf("frame %d: flying obstacle spawned off schedule", frame)
		}

		// A ground obstacle still at x=800 was spawned this frame
		n := s.Ground.Len()
		if n == 0 || s.Ground.All()[n-1].X != 800 {
			continue
		}
		if frame-lastGroundSpawn != threshold {
			t.Fatalf("frame %d: ground spawn after %d frames, threshold was %d", frame, frame-lastGroundSpawn, threshold)
		}
		g := s.Ground.All()[n-1]
		if g.Kind != KindGround || g.W != 20 || g.H < 20 || g.H >= 60 {
			t.Fatalf("frame %d: ground obstacle %+v outside size ranges", frame, g.Box)
		}
		if math.Abs(g.Bottom()-180) > 1e-9 {
			t.Fatalf("frame %d: ground obstacle bottom = %f, expected 180", frame, g.Bottom())
		}
		if th := s.SpawnThreshold(); th < 30 || th >= 50 {
			t.Fatalf("frame %d: new threshold %d outside [30, 50)", frame, th)
		}
		lastGroundSpawn = frame
		groundSpawns++
	}

	if groundSpawns < 1000/50 {
		t.Errorf("only %d ground spawns in 1000 frames", groundSpawns)
	}
}

func TestLanesStayOrderedAndPruned(t *testing.T) {
	e := New(config.DefaultRunnerConfig(), testRuntime(3), Options{})
	s := e.Session()
	auto := NewAutopilot()

	for frame := 0; frame < 5000 && !s.GameOver; frame++ {
		in := core.NewInputFrame()
		if auto.Decide(e) {
			in.Set(core.ActionJump)
		}
		e.Step(in)

		for _, lane := range []*Lane{&s.Ground, &s.Flying} {
			items := lane.All()
			for i := range items {
				if items[i].Right() < 0 {
					t.Fatalf("frame %d: obstacle %d fully off-screen but not pruned: %+v", frame, i, items[i].Box)
				}
				if i > 0 && items[i-1].X >= items[i].X {
					t.Fatalf("frame %d: lane out of spawn order at %d", frame, i)
				}
			}
		}
	}
}

func TestPruneExactlyWhenRightEdgePassesZero(t *testing.T) {
	e := New(quietConfig(), testRuntime(1), Options{})
	s := e.Session()

	// After one update at speed 6 the right edge lands exactly on x=0
	s.Ground.Push(Obstacle{Box: core.NewBox(-14, 170, 20, 10), Kind: KindGround})
	s.Ground.Push(Obstacle{Box: core.NewBox(400, 170, 20, 10), Kind: KindGround})

	e.Update()
	front, _ := s.Ground.Front()
	if s.Ground.Len() != 2 || front.Right() != 0 {
		t.Fatalf("obstacle with right edge at 0 should stay, len=%d front=%+v", s.Ground.Len(), front.Box)
	}

	e.Update()
	front, _ = s.Ground.Front()
	if s.Ground.Len() != 1 || front.X != 388 {
		t.Fatalf("front should be pruned once past 0, len=%d front=%+v", s.Ground.Len(), front.Box)
	}
}

func TestNeverJumpEndsGame(t *testing.T) {
	sound := &countingSound{}
	rec := &memRecorder{}
	e := New(config.DefaultRunnerConfig(), testRuntime(5), Options{Sound: sound, Recorder: rec})
	s := e.Session()

	crashes := 0
	for frame := 0; frame < 400 && !s.GameOver; frame++ {
		if e.Step(core.NewInputFrame()).Crashed {
			crashes++
		}
	}

	if !s.GameOver {
		t.Fatal("game should end when the first ground obstacle reaches the player")
	}
	if crashes != 1 {
		t.Errorf("Crashed reported %d times, expected 1", crashes)
	}
	if s.Score != s.Frames-1 {
		t.Errorf("score = %d, expected one point per survived frame (%d)", s.Score, s.Frames-1)
	}
	front, _ := s.Ground.Front()
	if !Collides(s.Player.Box, front.Box, 10) {
		t.Errorf("front ground obstacle %+v should be touching the player", front.Box)
	}
	if sound.gameOver != 1 {
		t.Errorf("game over sound played %d times, expected 1", sound.gameOver)
	}
	if len(rec.scores) != 1 || rec.scores[0] != s.Score {
		t.Errorf("recorded scores = %v, expected [%d]", rec.scores, s.Score)
	}
	if s.HighScore != s.Score {
		t.Errorf("HighScore = %d, expected %d", s.HighScore, s.Score)
	}

	// The restart control appears once the overlay is drawn
	if s.RestartVisible {
		t.Error("restart control should stay hidden until drawn")
	}
	e.Draw(Discard)
	if !s.RestartVisible {
		t.Error("restart control should be visible after drawing game over")
	}

	// Further ticks neither score nor record again
	score := s.Score
	for i := 0; i < 10; i++ {
		e.Step(jumpFrame())
	}
	if s.Score != score || len(rec.scores) != 1 || sound.jumps != 0 {
		t.Errorf("game over should be terminal: score=%d recorded=%v jumps=%d", s.Score, rec.scores, sound.jumps)
	}
}

func TestRestartResetsSession(t *testing.T) {
	e := New(config.DefaultRunnerConfig(), testRuntime(5), Options{})
	s := e.Session()

	if e.Restart() {
		t.Fatal("restart while playing should be a no-op")
	}

	for !s.GameOver {
		e.Tick()
	}
	e.Draw(Discard)
	high := s.HighScore

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	e.Step(in)

	if s.GameOver || s.RestartVisible {
		t.Errorf("restart should clear game over and hide the control: gameOver=%v visible=%v", s.GameOver, s.RestartVisible)
	}
	if s.Score != 0 || s.Speed() != 6 {
		t.Errorf("restart should reset score and speed, got %d and %f", s.Score, s.Speed())
	}
	if s.Ground.Len() != 0 || s.Flying.Len() != 0 {
		t.Errorf("restart should clear lanes, got %d ground, %d flying", s.Ground.Len(), s.Flying.Len())
	}
	if s.HighScore != high {
		t.Errorf("restart should keep the high score %d, got %d", high, s.HighScore)
	}
}

func TestHighScoreOnlyGrows(t *testing.T) {
	rec := &memRecorder{err: errors.New("disk full")}
	e := New(config.DefaultRunnerConfig(), testRuntime(5), Options{Recorder: rec, HighScore: 100000})
	s := e.Session()

	for !s.GameOver {
		e.Tick()
	}

	if s.HighScore != 100000 {
		t.Errorf("HighScore = %d, a lower score must not replace it", s.HighScore)
	}
	if len(rec.scores) != 1 {
		t.Errorf("score should still be offered to the recorder once, got %v", rec.scores)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	e := New(quietConfig(), testRuntime(1), Options{})
	s := e.Session()

	e.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	e.Step(pause)
	if !e.State().Paused {
		t.Fatal("pause action should pause")
	}

	score := s.Score
	for i := 0; i < 10; i++ {
		e.Step(jumpFrame())
	}
	if s.Score != score || s.Player.Jumps != 0 {
		t.Errorf("paused game advanced: score %d -> %d, jumps %d", score, s.Score, s.Player.Jumps)
	}

	e.Step(pause)
	if e.State().Paused {
		t.Error("second pause action should resume")
	}
	if s.Score != score+1 {
		t.Errorf("resuming should tick once, score = %d", s.Score)
	}
}

func TestDeterminism(t *testing.T) {
	run := func() *Session {
		e := New(config.DefaultRunnerConfig(), testRuntime(12345), Options{})
		var clk clock.Manual
		clk.Advance(2000, func() bool {
			in := core.NewInputFrame()
			if (clk.Frames()-1)%37 == 0 {
				in.Set(core.ActionJump)
			}
			return !e.Step(in).State.GameOver
		})
		return e.Session()
	}

	s1, s2 := run(), run()

	if s1.Score != s2.Score || s1.Frames != s2.Frames {
		t.Errorf("determinism failed: scores %d/%d frames %d/%d", s1.Score, s2.Score, s1.Frames, s2.Frames)
	}
	if s1.Ground.Len() != s2.Ground.Len() || s1.Flying.Len() != s2.Flying.Len() {
		t.Fatalf("determinism failed: lane sizes differ")
	}
	for i, o := range s1.Ground.All() {
		if o != s2.Ground.All()[i] {
			t.Errorf("ground obstacle %d differs: %+v vs %+v", i, o, s2.Ground.All()[i])
		}
	}
}

func TestAttractRunsAreNotRecorded(t *testing.T) {
	rec := &memRecorder{}
	e := New(config.DefaultRunnerConfig(), testRuntime(7), Options{
		Recorder:  rec,
		HighScore: 50,
		Attract:   true,
	})

	// Crash, linger and restart the way the attract host does
	gameOvers, lingered := 0, 0
	var clk clock.Manual
	clk.Advance(5000, func() bool {
		in := core.NewInputFrame()
		if e.Session().GameOver {
			lingered++
			if lingered == 120 {
				in.Set(core.ActionRestart)
				lingered = 0
			}
		}
		if e.Step(in).Crashed {
			gameOvers++
		}
		return gameOvers < 3
	})

	if gameOvers != 3 {
		t.Fatalf("saw %d game overs in %d frames, expected 3", gameOvers, clk.Frames())
	}
	if len(rec.scores) != 0 {
		t.Errorf("attract runs recorded: %v", rec.scores)
	}
	if got := e.State().HighScore; got != 50 {
		t.Errorf("HighScore = %d, expected the loaded 50", got)
	}
}

func TestAutopilotDecide(t *testing.T) {
	e := New(quietConfig(), testRuntime(1), Options{})
	s := e.Session()
	auto := NewAutopilot()

	if auto.Decide(e) {
		t.Error("no obstacles: should not jump")
	}

	// Player's shrunken right edge is at 88; 60 units ahead at speed 6
	s.Ground.Push(Obstacle{Box: core.NewBox(148, 140, 20, 40), Kind: KindGround})
	if !auto.Decide(e) {
		t.Error("obstacle at lead distance: should jump")
	}

	s.Ground.Clear()
	s.Ground.Push(Obstacle{Box: core.NewBox(300, 140, 20, 40), Kind: KindGround})
	if auto.Decide(e) {
		t.Error("obstacle far ahead: should wait")
	}

	s.GameOver = true
	if auto.Decide(e) {
		t.Error("game over: should not jump")
	}
}
