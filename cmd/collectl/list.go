package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"collalgo/lists"
)

type listOptions struct {
	key   int
	value int
	keep  string
	pure  bool
}

var listOpts listOptions

func init() {
	cmd := newListCmd()
	cmd.Flags().IntVar(&listOpts.key, "key", 0, "Key for find")
	cmd.Flags().IntVar(&listOpts.value, "value", 0, "Value for sorted-insert")
	cmd.Flags().StringVar(&listOpts.keep, "keep", "odd", "Predicate for filter and count")
	cmd.Flags().BoolVar(&listOpts.pure, "pure", false, "Filter into a new list of copied nodes")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <op> [ints...]",
		Short: "Run a circular linked-list algorithm",
		Long: `The list command builds a circular doubly-linked list from the arguments
and runs one list algorithm on it.

Operations: find, max, min, filter, count, sorted-insert, isort, sort, msort, reverse

Example:
  collectl list sorted-insert --value 0 1 2 3 4 5
  collectl list isort 4 2 3 5 1
  collectl list filter --keep odd 1 2 3 4 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseInts(args[1:])
			if err != nil {
				return err
			}
			return runList(cmd.OutOrStdout(), args[0], values, listOpts)
		},
	}
}

func runList(w io.Writer, op string, values []int, opts listOptions) error {
	l := lists.New(values...)
	logger.Debug("list operation", "op", op, "len", l.Len())

	r := result{Op: op}
	switch op {
	case "find":
		n := l.Find(opts.key, cmp.Compare[int])
		r.Found = boolPtr(n != nil)
		r.Index = intPtr(position(l, n))
	case "max", "min":
		find := l.FindMax
		if op == "min" {
			find = l.FindMin
		}
		n, err := find(cmp.Compare[int])
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		r.Index = intPtr(position(l, n))
	case "filter":
		keep, err := lookupPredicate(opts.keep)
		if err != nil {
			return err
		}
		if opts.pure {
			dst := lists.New[int]()
			r.Count = intPtr(l.Filter(dst, keep, lists.CopyNode[int]))
			l = dst
			break
		}
		removed := lists.New[int]()
		r.Removed = intPtr(l.FilterInPlace(removed, keep))
		logger.Debug("removed nodes", "values", removed.String())
	case "count":
		keep, err := lookupPredicate(opts.keep)
		if err != nil {
			return err
		}
		r.Count = intPtr(l.Count(keep))
	case "sorted-insert":
		if err := l.SortedInsert(lists.NewNode(opts.value), cmp.Compare[int]); err != nil {
			return fmt.Errorf("sorted-insert: %w", err)
		}
	case "isort":
		l.InsertionSort(cmp.Compare[int])
	case "sort":
		l.Sort(cmp.Compare[int])
	case "msort":
		l.MergeSort(cmp.Compare[int])
	case "reverse":
		l.Reverse()
	default:
		return fmt.Errorf("unknown list operation %q", op)
	}

	r.Result = slices.Collect(l.Values())
	logger.Info("list operation done", "op", op)
	return printResult(w, r)
}

// position returns the index of n in l, or -1.
func position(l *lists.List[int], n *lists.Node[int]) int {
	i := 0
	for current := range l.Nodes() {
		if current == n {
			return i
		}
		i++
	}
	return -1
}
