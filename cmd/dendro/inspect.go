package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/dendro"
	"github.com/tsawler/dendro/tree"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input>",
	Short: "Summarize a tree file's structure and attribute columns",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	t, err := dendro.Open(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "nodes: %d\n", t.NodeCount())
	fmt.Fprintf(out, "edges: %d\n", t.EdgeCount())
	fmt.Fprintf(out, "depth: %d\n", depth(t))

	printColumns(cmd, "node columns", t.NodeData())
	printColumns(cmd, "edge columns", t.EdgeData())
	return nil
}

func printColumns(cmd *cobra.Command, label string, set *tree.ColumnSet) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d\n", label, set.Len())
	for i := 0; i < set.Len(); i++ {
		c := set.At(i)
		fmt.Fprintf(out, "  %s (%d rows", c.Name(), c.Len())
		if c.Components() > 1 {
			fmt.Fprintf(out, ", %d components", c.Components())
		}
		fmt.Fprintln(out, ")")
	}
}

// depth returns the number of edges on the longest root-to-leaf path.
func depth(t *tree.Tree) int {
	root := t.Root()
	if root == tree.NoNode {
		return 0
	}
	var walk func(v int) int
	walk = func(v int) int {
		max := 0
		for _, c := range t.Children(v) {
			if d := walk(c) + 1; d > max {
				max = d
			}
		}
		return max
	}
	return walk(root)
}
