package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose  bool
	quiet    bool
	jsonOut  bool
	logLevel string
)

// logger discards everything until configureLogging runs.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

var rootCmd = &cobra.Command{
	Use:   "collectl",
	Short: "Run collection algorithms over integer arrays and lists",
	Long: `collectl runs the array and circular-list algorithms on the integers
given as arguments and prints the resulting collection.

Example:
  collectl array filter --keep odd 1 2 3 4 5
  collectl list isort 4 2 3 5 1`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configureLogging(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&logLevel, "log-level", "info", "Log level used with --verbose (debug, info, warn, error)")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// configureLogging enables a text logger on w when --verbose is set.
func configureLogging(w io.Writer) error {
	if !verbose || quiet {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return nil
}

// result is the output of one algorithm run.
type result struct {
	Op      string `json:"op"`
	Result  []int  `json:"result"`
	Count   *int   `json:"count,omitempty"`
	Removed *int   `json:"removed,omitempty"`
	Index   *int   `json:"index,omitempty"`
	Found   *bool  `json:"found,omitempty"`
}

// printResult writes r as JSON with --json, or as plain text otherwise.
func printResult(w io.Writer, r result) error {
	if quiet {
		return nil
	}
	if jsonOut {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)
	}

	var parts []string
	if r.Index != nil {
		parts = append(parts, fmt.Sprintf("index=%d", *r.Index))
	}
	if r.Found != nil {
		parts = append(parts, fmt.Sprintf("found=%t", *r.Found))
	}
	if r.Count != nil {
		parts = append(parts, fmt.Sprintf("count=%d", *r.Count))
	}
	if r.Removed != nil {
		parts = append(parts, fmt.Sprintf("removed=%d", *r.Removed))
	}
	parts = append(parts, fmt.Sprint(r.Result))
	_, err := fmt.Fprintln(w, strings.Join(parts, " "))
	return err
}

// parseInts converts positional arguments to integers.
func parseInts(args []string) ([]int, error) {
	values := make([]int, len(args))
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		values[i] = v
	}
	return values, nil
}

// predicates available to --keep.
var predicates = map[string]func(int) bool{
	"odd":      func(x int) bool { return x%2 != 0 },
	"even":     func(x int) bool { return x%2 == 0 },
	"positive": func(x int) bool { return x > 0 },
	"negative": func(x int) bool { return x < 0 },
	"nonzero":  func(x int) bool { return x != 0 },
}

func lookupPredicate(name string) (func(int) bool, error) {
	p, ok := predicates[name]
	if !ok {
		return nil, fmt.Errorf("unknown predicate %q (want odd, even, positive, negative or nonzero)", name)
	}
	return p, nil
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
