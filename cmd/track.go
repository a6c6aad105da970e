package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leprpht/autoclick/internal/input"
	"github.com/leprpht/autoclick/internal/tui"
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Show the live pointer position",
	Long: `Track displays the pointer position as it moves, sampled at a fixed
cadence. Useful for finding the coordinates a MOVE command needs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		injector, err := input.NewRobot()
		if err != nil {
			return err
		}

		tracker := input.NewTracker(injector, viper.GetDuration("tracker.interval"))
		program := tea.NewProgram(tui.NewTrackModel())

		tracker.Start(func(x, y int) {
			program.Send(tui.PositionMsg{X: x, Y: y})
		})
		defer tracker.Stop()

		if _, err := program.Run(); err != nil {
			return fmt.Errorf("error running tracker display: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
}
