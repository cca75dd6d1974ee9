package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robo-runner/internal/clock"
	"github.com/vovakirdan/robo-runner/internal/core"
	"github.com/vovakirdan/robo-runner/internal/runner"
)

var (
	flagSimFrames    int
	flagSimAutopilot bool
	flagSimRealtime  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless",
	Long: `Run the game loop without a display and print the result.

The simulation stops after --frames frames or at the first game over.
Without --realtime frames run back to back; with it they run at --fps.

Examples:
  runner sim --frames 600
  runner sim --frames 5000 --autopilot --seed 42
  runner sim --realtime --fps 30`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 1000, "Maximum frames to simulate")
	simCmd.Flags().BoolVar(&flagSimAutopilot, "autopilot", false, "Jump over ground obstacles automatically")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Run at --fps instead of as fast as possible")
}

// simResult is the outcome of a headless run.
type simResult struct {
	Frames   int
	Jumps    int
	State    core.GameState
	Canceled bool
}

func runSim(_ *cobra.Command, _ []string) {
	if flagSimFrames <= 0 {
		fail("--frames must be positive, got %d", flagSimFrames)
	}
	logger := newLogger(os.Stderr, "runner-sim")

	cfg, err := loadRunnerConfig()
	if err != nil {
		fail("%v", err)
	}

	rc := runtimeConfig(int(cfg.World.Width), int(cfg.World.Height))
	engine := runner.New(cfg, rc, runner.Options{Logger: logger})

	rate := 0
	if flagSimRealtime {
		rate = flagFPS
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := simulate(ctx, engine, clock.NewTicker(rate), flagSimFrames, flagSimAutopilot)
	if err != nil {
		fail("simulation: %v", err)
	}
	printSimResult(os.Stdout, rc.Seed, result)
}

// simulate steps engine on ticker until maxFrames have run or the game
// ends. A canceled context stops early and is reported in the result.
func simulate(ctx context.Context, engine *runner.Engine, ticker *clock.Ticker, maxFrames int, autopilot bool) (simResult, error) {
	var pilot *runner.Autopilot
	if autopilot {
		pilot = runner.NewAutopilot()
	}

	var res simResult
	in := core.NewInputFrame()
	err := ticker.Run(ctx, func() bool {
		in.Clear()
		if pilot != nil && pilot.Decide(engine) {
			in.Set(core.ActionJump)
		}
		step := engine.Frame(in, runner.Discard)
		if step.Jumped {
			res.Jumps++
		}
		res.State = step.State
		return !step.State.GameOver && ticker.Frames() < maxFrames
	})

	res.Frames = ticker.Frames()
	switch {
	case err == nil:
	case ctx.Err() != nil:
		res.Canceled = true
	default:
		return res, err
	}
	if res.Frames == 0 {
		res.State = engine.State()
	}
	return res, nil
}

func printSimResult(w io.Writer, seed int64, res simResult) {
	fmt.Fprintf(w, "Seed:      %d\n", seed)
	fmt.Fprintf(w, "Frames:    %d\n", res.Frames)
	fmt.Fprintf(w, "Jumps:     %d\n", res.Jumps)
	fmt.Fprintf(w, "Score:     %d\n", res.State.Score)
	fmt.Fprintf(w, "Speed:     %.2f\n", res.State.Speed)
	fmt.Fprintf(w, "Game over: %t\n", res.State.GameOver)
	if res.Canceled {
		fmt.Fprintln(w, "Stopped early")
	}
}
