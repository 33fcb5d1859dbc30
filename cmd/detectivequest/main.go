package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"detectivequest/config"
	"detectivequest/internal/game"
	"detectivequest/internal/logger"
)

var (
	cfgFile   string
	threshold int
	mute      bool
	cfg       *config.Config
	log       = logger.New()
)

var rootCmd = &cobra.Command{
	Use:   "detectivequest",
	Short: "Detective text adventure played from the terminal",
	Long:  "A CLI detective game: explore a mansion, collect clues and accuse a suspect, with cases defined in JSON.",
}

var playCmd = &cobra.Command{
	Use:   "play [case.json]",
	Short: "Play a case, or the built-in one when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := game.NewEngine(cfg)
		if err != nil {
			return fmt.Errorf("failed to create engine: %w", err)
		}

		if len(args) == 1 {
			e.WithMysteryFile(args[0])
		} else {
			e.WithMystery(game.SampleMystery())
		}

		return e.WithThreshold(threshold).WithMute(mute).Start()
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Current Configuration:\n")
		fmt.Printf("  Threshold: %d clue(s) to convict\n", cfg.Game.Threshold)
		fmt.Printf("  Hints: %t\n", cfg.Game.Hints)
		fmt.Printf("  Log level: %s\n", cfg.Log.Level)
		fmt.Printf("  Ambience: enabled=%t file=%q volume=%.1f\n",
			cfg.Audio.Enabled, cfg.Audio.File, cfg.Audio.Volume)
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	playCmd.Flags().IntVar(&threshold, "threshold", 0, "clues required to sustain an accusation (overrides config)")
	playCmd.Flags().BoolVar(&mute, "mute", false, "disable ambience for this run")
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		log.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Error("Invalid configuration")
		os.Exit(1)
	}
	logger.SetLevel(cfg.Log.Level)
}

func main() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("Command execution failed")
		os.Exit(1)
	}
}
