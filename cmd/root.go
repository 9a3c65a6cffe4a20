package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"promptpack/pkg/aggregate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	logger   *zap.Logger
	logLevel zap.AtomicLevel

	flagOutput      string
	flagExtensions  []string
	flagExcludes    []string
	flagSkipInvalid bool
	flagDebug       bool
)

// rootCmd is the base command; running it performs one aggregation pass.
var rootCmd = &cobra.Command{
	Use:   "promptpack [folder]",
	Short: "promptpack concatenates source files into a single prompt document",
	Long: `promptpack walks a directory tree, selects source-like files by extension,
and writes their contents into one markdown document with per-file fenced
blocks, ready to paste into an LLM prompt.

When no folder is given, the path is read from standard input (with an
interactive prompt on a terminal).`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			logLevel.SetLevel(zap.DebugLevel)
		}
	},
	RunE: runRoot,
}

// Execute wires the logger into the command tree and runs it. The level
// handle lets the --debug flag raise verbosity after parsing.
func Execute(l *zap.Logger, level zap.AtomicLevel) error {
	logger = l
	logLevel = level
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	root := ""
	if len(args) > 0 {
		root = strings.TrimSpace(args[0])
	}
	if root == "" {
		interactive := term.IsTerminal(int(os.Stdin.Fd()))
		r, err := readRootPath(cmd.InOrStdin(), cmd.ErrOrStderr(), interactive)
		if err != nil {
			return err
		}
		root = r
	}

	// Precedence: flags over environment over fixed defaults.
	runArgs := aggregate.FromEnv()
	runArgs.Root = root
	if cmd.Flags().Changed("output") {
		runArgs.Output = flagOutput
	}
	if cmd.Flags().Changed("extensions") {
		runArgs.Extensions = flagExtensions
	}
	if cmd.Flags().Changed("exclude") {
		runArgs.Excludes = flagExcludes
	}
	if cmd.Flags().Changed("skip-invalid") {
		runArgs.SkipInvalid = flagSkipInvalid
	}

	return aggregate.Run(runArgs, logger)
}

// readRootPath reads one line naming the folder to aggregate. On an
// interactive terminal the prompt is printed first; piped input is read
// silently so the command stays scriptable.
func readRootPath(in io.Reader, out io.Writer, interactive bool) (string, error) {
	if interactive {
		fmt.Fprint(out, "Enter the folder path: ")
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read folder path: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("no folder path given")
	}
	return line, nil
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", aggregate.DefaultOutput, "Path of the aggregated document")
	rootCmd.Flags().StringSliceVar(&flagExtensions, "extensions", aggregate.DefaultExtensions, "File suffixes eligible for inclusion")
	rootCmd.Flags().StringSliceVar(&flagExcludes, "exclude", aggregate.DefaultExcludes, "Path substrings that disqualify a file")
	rootCmd.Flags().BoolVar(&flagSkipInvalid, "skip-invalid", false, "Skip files that are not valid UTF-8 instead of aborting")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "Enable debug logging")
}
