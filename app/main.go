package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wsxiaoys/terminal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	noColor bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "slist",
	Short: "Replays scripted operations against a singly-linked list",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	SilenceUsage: true,
}

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Replay the steps of a YAML script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := LoadScript(args[0])
		if err != nil {
			return err
		}
		return replayAndPrint(cmd.OutOrStdout(), script)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Replay the built-in scenario",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return replayAndPrint(cmd.OutOrStdout(), demoScript())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "plain output")
	rootCmd.AddCommand(runCmd, demoCmd)
}

func replayAndPrint(out io.Writer, script *Script) error {
	results, err := Replay(script, logger)
	if err != nil {
		return err
	}
	for _, result := range results {
		if noColor {
			fmt.Fprintln(out, formatResult(result))
			continue
		}
		printColored(result)
	}
	return nil
}

func formatResult(result Result) string {
	line := result.Step.String()
	if result.Err != nil {
		return line + " error: " + result.Err.Error()
	}
	if result.Output != "" {
		line += " " + result.Output
	}
	return line + " -> " + result.List
}

func printColored(result Result) {
	w := terminal.Stdout.Color("c").Print(result.Step.String()).Reset()
	if result.Err != nil {
		w.Color("r").Print(" error: ", result.Err.Error()).Reset().Nl()
		return
	}
	if result.Output != "" {
		w.Color("y").Print(" ", result.Output).Reset()
	}
	w.Print(" -> ").Color("g").Print(result.List).Reset().Nl()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
