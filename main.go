package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-levelog/levelog"
)

// Demo of the go-levelog package: dynamic levels, markup formats, and sinks.
// Usage: ./go-levelog [--level DEBUG] [--plain] [--file ./app.log]

var (
	flagLevel string
	flagPlain bool
	flagFile  string
)

var rootCmd = &cobra.Command{
	Use:   "go-levelog",
	Short: "Demonstrates the levelog dynamic-level logger",
	RunE: func(cmd *cobra.Command, args []string) error {
		format := "<level>{level.icon} {level.name: <9}</level>| {message}"

		mode := levelog.ColorAuto
		if flagPlain {
			mode = levelog.ColorNever
		}
		id, err := levelog.AddConsole(levelog.SinkConfig{Level: flagLevel, Format: format, Color: mode})
		if err != nil {
			return err
		}
		defer func() { _ = levelog.Remove(id) }()

		if flagFile != "" {
			fileID, err := levelog.AddFile(flagFile, levelog.FileConfig{MaxSizeMB: 10, MaxBackups: 3},
				levelog.SinkConfig{Level: flagLevel, Format: "{level.name: <9}| {message}"})
			if err != nil {
				return err
			}
			defer func() { _ = levelog.Remove(fileID) }()
			_ = levelog.Info("logging to file: {0}", flagFile)
		}

		// The built-in levels.
		_ = levelog.Trace("starting up")
		_ = levelog.Debug("listening on port {0}", 8080)
		_ = levelog.Info("hello {0}", "world")
		_ = levelog.Success("all systems go")
		_ = levelog.Warning("disk usage at {pct}%", levelog.F{"pct": 91})
		_ = levelog.Error("oops: {0}", "something happened")
		_ = levelog.Critical("meltdown imminent")

		// Register a custom level at runtime and log through it.
		if err := levelog.SetLevel("audit", levelog.WithNo(35),
			levelog.WithColor("<magenta><bold>"), levelog.WithIcon("@")); err != nil {
			return err
		}
		_ = levelog.Log("audit", "user {user} changed {what}", levelog.F{"user": "root", "what": "quota"})

		// Edit a built-in level; the next call picks it up immediately.
		if err := levelog.SetLevel("INFO", levelog.WithColor("<green>")); err != nil {
			return err
		}
		_ = levelog.Info("info is green now")

		// Bound fields travel with the derived logger.
		req := levelog.With(levelog.F{"request_id": "a1b2c3"})
		_ = req.Info("request {request_id} completed")

		// User data that looks like markup is emitted literally.
		_ = levelog.Info("payload was {0}", "<red>not markup</red>")
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVar(&flagLevel, "level", "TRACE", "minimum level for the console sink")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "disable terminal detection and log plain text")
	rootCmd.Flags().StringVar(&flagFile, "file", "", "also log to this file (rotated)")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
