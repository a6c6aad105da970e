package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leprpht/autoclick/internal/constants"
	"github.com/leprpht/autoclick/internal/logging"
)

var (
	cfgFile  string
	logLevel string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "autoclick",
	Short: "autoclick runs mouse and keyboard automation scripts",
	Long: `autoclick interprets a small line-oriented scripting language for
mouse and keyboard automation (PRESS, RELEASE, CLICK, MOVE, WAIT,
REPEAT/END, HALT) and executes it against the live desktop.

Moving the mouse by hand while a script runs trips the killswitch and
stops the run immediately.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logLevel == "" {
			logLevel = viper.GetString("log_level")
		}
		logging.InitWithLevel(logLevel)
		logging.Debug("logging initialized", "level", logLevel)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.autoclick.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("AUTOCLICK")
	viper.AutomaticEnv()

	viper.SetDefault("log_level", "info")
	viper.SetDefault("killswitch.tolerance", constants.KillswitchTolerance)
	viper.SetDefault("move.settle_interval", constants.SettlePollInterval)
	viper.SetDefault("move.settle_attempts", constants.SettleAttemptLimit)
	viper.SetDefault("tracker.interval", constants.TrackerInterval)
	viper.SetDefault("run.start_delay", constants.DefaultStartDelay)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home))
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".autoclick")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
		// No config file is fine, defaults and env vars cover everything
	}
}
