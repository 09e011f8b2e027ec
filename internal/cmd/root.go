package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atikulmunna/fauxlog/internal/config"
)

var (
	cfgFile   string
	configErr error // from ReadInConfig, fatal only for an explicit --config
)

// rootCmd streams synthetic logs when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "fauxlog",
	Short: "fauxlog: endless fake logs and whimsical progress bars",
	Long: `fauxlog prints an endless stream of plausible-looking log lines,
interleaved with animated progress bars for tasks that do not exist.
It exists purely to look busy. Press Ctrl+C to stop.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStream,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.fauxlog.yaml)")
	flags.StringP("output", "o", "text", "output format: text, json")
	flags.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "warn", "diagnostic log level on stderr: debug, info, warn, error")

	for key, flag := range map[string]string{
		"output":    "output",
		"seed":      "seed",
		"no_color":  "no-color",
		"log_level": "log-level",
	} {
		cobra.CheckErr(viper.BindPFlag(key, flags.Lookup(flag)))
	}
}

func initConfig() {
	config.Register(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".fauxlog")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("FAUXLOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	configErr = viper.ReadInConfig()
}
