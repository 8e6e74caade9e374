package main

import (
	"fmt"
	"io"
	"os"

	"logpick/internal/browse"
	"logpick/internal/config"
	"logpick/internal/log"
	"logpick/internal/tui"
	"logpick/internal/vcs"
	"logpick/internal/watch"
	"logpick/internal/workspace"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	cfgFile string
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:     "logpick",
		Short:   "Find and select your LogSeq workspace",
		Long:    `Logpick is a terminal browser for locating a LogSeq notes workspace and preparing it for git sync.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/logpick/config.yaml)")
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runBrowser() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)

	// Informational only; the browser works without git.
	if gitPath, ok := vcs.FindGit(); ok {
		fmt.Printf("found git at %s\n", gitPath)
	} else {
		fmt.Println("⚠️ Git is not installed! You'll need it to sync the workspace.")
		fmt.Println("💡 Install it from https://git-scm.com/downloads")
	}

	startDir := cfg.Browse.StartDir
	if startDir == "" {
		if startDir, err = os.Getwd(); err != nil {
			startDir = "."
		}
	}

	validator, err := workspace.NewValidator(cfg)
	if err != nil {
		return err
	}
	state := browse.NewState(startDir, browse.NewLister(cfg.Browse.ShowHidden), validator)

	var watcher *watch.Watcher
	if cfg.Browse.AutoRefresh {
		if watcher, err = watch.New(); err != nil {
			log.Warnf("auto-refresh disabled: %v", err)
			watcher = nil
		} else {
			if err := watcher.Start(); err != nil {
				log.Warnf("auto-refresh disabled: %v", err)
				watcher = nil
			} else {
				defer watcher.Stop()
			}
		}
	}

	model := tui.New(cfg, state, watcher)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running browser: %w", err)
	}

	m, ok := final.(*tui.Model)
	if !ok || m.Selected() == "" {
		fmt.Println("No workspace selected.")
		return nil
	}

	markerPath, err := workspace.WriteMarker(m.Selected(), cfg.Marker.Filename, cfg.Marker.Message)
	if err != nil {
		return err
	}
	fmt.Printf("Selected LogSeq workspace: %s\n", m.Selected())
	fmt.Printf("Sync marker written to %s\n", markerPath)
	return nil
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check PATH",
		Short: "Validate a directory against the workspace layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			validator, err := workspace.NewValidator(cfg)
			if err != nil {
				return err
			}

			result := validator.Validate(args[0])
			for _, line := range result.Summary() {
				fmt.Println(line)
			}
			if !result.Valid {
				return fmt.Errorf("%s is not a valid LogSeq workspace", args[0])
			}
			fmt.Printf("%s is a valid LogSeq workspace\n", args[0])
			return nil
		},
		SilenceUsage: true,
	}
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadConfigFile(cfgFile)
	}
	return config.LoadConfig()
}

// setupLogging points the log facade away from the terminal; the TUI
// owns stdout while it runs.
func setupLogging(cfg *config.Config) {
	log.SetDebug(cfg.Settings.Debug)
	if cfg.Settings.LogFile == "" {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(cfg.Settings.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
}
