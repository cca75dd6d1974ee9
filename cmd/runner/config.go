package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/robo-runner/internal/config"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner configuration",
	Long: `Print the default runner configuration as YAML. Save it to
~/.robo-runner/configs/runner.yaml or pass it with --config to customize
the game.

With --resolved the printed config is the one the game would run with,
after --config and --difficulty are applied, followed by the speed it
reaches at each step.

Examples:
  runner config > ~/.robo-runner/configs/runner.yaml
  runner config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective config instead of the defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadRunnerConfig()
	if err != nil {
		fail("%v", err)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fail("encoding config: %v", err)
	}
	enc.Close()
	writeSpeedSchedule(os.Stdout, cfg.Difficulty, scheduleSteps)
}

// scheduleSteps is how many speed-ups the resolved config lists.
const scheduleSteps = 5

// writeSpeedSchedule appends the speeds the ramp reaches as YAML comments.
func writeSpeedSchedule(w io.Writer, d config.DifficultyConfig, steps int) {
	if !d.Enabled || d.SpeedStep <= 0 {
		fmt.Fprintf(w, "# speed fixed at %.2f\n", d.BaseSpeed)
		return
	}
	fmt.Fprintln(w, "# speed schedule")
	for i := 0; i <= steps; i++ {
		score := i * d.SpeedStep
		fmt.Fprintf(w, "#   score %d: %.2f\n", score, d.SpeedAt(score))
	}
}
