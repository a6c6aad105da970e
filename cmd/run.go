package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leprpht/autoclick/internal/constants"
	"github.com/leprpht/autoclick/internal/input"
	"github.com/leprpht/autoclick/internal/logging"
	"github.com/leprpht/autoclick/internal/script"
)

var startDelay time.Duration

var runCmd = &cobra.Command{
	Use:   "run <script-file>",
	Short: "Execute an automation script against the live desktop",
	Long: `Run loads a script file and executes it. Ctrl-C requests a stop, as
does moving the mouse by hand (the killswitch). Use --delay to leave
time to position the pointer before the script takes over.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading script: %w", err)
		}

		injector, err := input.NewRobot()
		if err != nil {
			return err
		}

		interp, err := script.New(injector, script.Options{
			Tolerance:      viper.GetInt("killswitch.tolerance"),
			SettleInterval: viper.GetDuration("move.settle_interval"),
			SettleAttempts: viper.GetInt("move.settle_attempts"),
		})
		if err != nil {
			return err
		}

		delay := startDelay
		if !cmd.Flags().Changed("delay") {
			delay = viper.GetDuration("run.start_delay")
		}
		if delay > 0 {
			logging.Info("starting in", "delay", delay)
			time.Sleep(delay)
		}

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Stop(interrupt)

		logging.Info("running script", "file", args[0])
		interp.Start(string(data))

		ticker := time.NewTicker(constants.RunStatusPollInterval)
		defer ticker.Stop()
		for interp.IsRunning() {
			select {
			case <-interrupt:
				logging.Warn("interrupt received, halting run")
				interp.Halt()
			case <-ticker.C:
			}
		}

		logging.Info("run finished")
		return nil
	},
}

func init() {
	runCmd.Flags().DurationVar(&startDelay, "delay", 0, "grace period before the script starts")
	viper.BindPFlag("run.start_delay", runCmd.Flags().Lookup("delay"))
	rootCmd.AddCommand(runCmd)
}
