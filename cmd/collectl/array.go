package main

import (
	"cmp"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"collalgo/arrays"
)

type arrayOptions struct {
	key  int
	pos  int
	elem int
	keep string
	pure bool
}

var arrayOpts arrayOptions

func init() {
	cmd := newArrayCmd()
	cmd.Flags().IntVar(&arrayOpts.key, "key", 0, "Key for find")
	cmd.Flags().IntVar(&arrayOpts.pos, "pos", 0, "Position for insert and remove")
	cmd.Flags().IntVar(&arrayOpts.elem, "elem", 0, "Element for insert")
	cmd.Flags().StringVar(&arrayOpts.keep, "keep", "odd", "Predicate for filter and count")
	cmd.Flags().BoolVar(&arrayOpts.pure, "pure", false, "Filter into a new array, leaving the input untouched")
	rootCmd.AddCommand(cmd)
}

func newArrayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "array <op> [ints...]",
		Short: "Run an array algorithm",
		Long: `The array command runs one array algorithm over a fixed-size array.
The array never grows: insert drops the last element, remove zeroes it.

Operations: find, max, min, filter, count, insert, remove, reverse

Example:
  collectl array find --key 3 1 2 3
  collectl array filter --keep odd 1 2 3 4 5
  collectl array insert --pos 2 --elem 9 1 2 3 4 5
  collectl array reverse 1 2 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			return runArray(cmd.OutOrStdout(), args[0], values, arrayOpts)
		},
	}
}

func runArray(w io.Writer, op string, values []int, opts arrayOptions) error {
	logger.Debug("array operation", "op", op, "len", len(values))

	r := result{Op: op, Result: values}
	switch op {
	case "find":
		idx := arrays.Find(opts.key, values, cmp.Compare[int])
		r.Index = intPtr(idx)
		r.Found = boolPtr(idx != arrays.NotFound)
	case "max", "min":
		find := arrays.FindMax[int]
		if op == "min" {
			find = arrays.FindMin[int]
		}
		idx, err := find(values, cmp.Compare[int])
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		r.Index = intPtr(idx)
	case "filter":
		keep, err := lookupPredicate(opts.keep)
		if err != nil {
			return err
		}
		if opts.pure {
			dst := make([]int, len(values))
			n, err := arrays.Filter(dst, values, keep)
			if err != nil {
				return fmt.Errorf("filter: %w", err)
			}
			r.Result = dst[:n]
			r.Count = intPtr(n)
			break
		}
		n := arrays.FilterInPlace(values, keep, func(v int) {
			logger.Debug("discarded", "value", v)
		})
		r.Count = intPtr(n)
	case "count":
		keep, err := lookupPredicate(opts.keep)
		if err != nil {
			return err
		}
		r.Count = intPtr(arrays.Count(values, keep))
	case "insert":
		if err := arrays.Insert(values, opts.pos, opts.elem, func(v int) {
			logger.Debug("dropped tail", "value", v)
		}); err != nil {
			return fmt.Errorf("insert at %d: %w", opts.pos, err)
		}
	case "remove":
		if err := arrays.Remove(values, opts.pos, nil); err != nil {
			return fmt.Errorf("remove at %d: %w", opts.pos, err)
		}
	case "reverse":
		arrays.Reverse(values)
	default:
		return fmt.Errorf("unknown array operation %q", op)
	}

	logger.Info("array operation done", "op", op)
	return printResult(w, r)
}
