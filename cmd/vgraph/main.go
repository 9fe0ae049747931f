// Command vgraph is the command-line driver around the library: it
// builds a graph from a vertex count and an edge list on stdin, runs
// one algorithm, and prints the result to stdout.
//
// Usage:
//
//	vgraph bfs --start 1 < graph.txt
//	vgraph dfs --start 1 --directed < graph.txt
//	vgraph components < graph.txt
//	vgraph cycle --directed < graph.txt
//	vgraph topo < dag.txt
//
// Input format: the first token is the vertex count n, followed by
// whitespace-separated integer pairs "x y", one per edge, ids in 1..n.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/vgraph/bfs"
	"github.com/katalvlaran/vgraph/components"
	"github.com/katalvlaran/vgraph/core"
	"github.com/katalvlaran/vgraph/cycle"
	"github.com/katalvlaran/vgraph/dfs"
	"github.com/katalvlaran/vgraph/graphio"
	"github.com/katalvlaran/vgraph/topo"
)

var (
	directed bool
	start    int
	useBFS   bool
)

// readStdin builds the graph from stdin with the --directed flag applied.
func readStdin() (*core.Graph, error) {
	var opts []core.GraphOption
	if directed {
		opts = append(opts, core.WithDirected())
	}

	return graphio.ReadGraph(os.Stdin, opts...)
}

var rootCmd = &cobra.Command{
	Use:   "vgraph",
	Short: "Traversal, cycle detection, and components for dense-id graphs",
	Long: "vgraph reads a vertex count and an edge list from stdin and runs\n" +
		"breadth-first or depth-first traversal, component enumeration,\n" +
		"cycle detection, or a Kahn topological sort.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var bfsCmd = &cobra.Command{
	Use:   "bfs",
	Short: "Print the breadth-first visit order",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readStdin()
		if err != nil {
			return err
		}
		res, err := bfs.BFS(g, start)
		if err != nil {
			return err
		}

		return graphio.WriteOrder(cmd.OutOrStdout(), res.Order)
	},
}

var dfsCmd = &cobra.Command{
	Use:   "dfs",
	Short: "Print the depth-first visit order",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readStdin()
		if err != nil {
			return err
		}
		res, err := dfs.DFS(g, start)
		if err != nil {
			return err
		}

		return graphio.WriteOrder(cmd.OutOrStdout(), res.Order)
	},
}

var componentsCmd = &cobra.Command{
	Use:   "components",
	Short: "Enumerate components, one line per component",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readStdin()
		if err != nil {
			return err
		}
		opt := components.WithTraversal(components.UseDFS)
		if useBFS {
			opt = components.WithTraversal(components.UseBFS)
		}
		res, err := components.Find(g, opt)
		if err != nil {
			return err
		}
		for _, c := range res.Components {
			fmt.Fprintln(cmd.OutOrStdout(), c)
		}

		return nil
	},
}

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Report whether the graph contains a cycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := readStdin()
		if err != nil {
			return err
		}
		found, err := cycle.Detect(g)
		if err != nil {
			return err
		}
		if found {
			fmt.Fprintln(cmd.OutOrStdout(), "cycle detected")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "no cycle")
		}

		return nil
	},
}

var topoCmd = &cobra.Command{
	Use:   "topo",
	Short: "Print a topological order (directed graphs only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		// topo implies a directed reading of the input
		directed = true
		g, err := readStdin()
		if err != nil {
			return err
		}
		order, err := topo.Sort(g)
		if err != nil {
			return err
		}

		return graphio.WriteOrder(cmd.OutOrStdout(), order)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&directed, "directed", false, "treat the input as a directed graph")
	bfsCmd.Flags().IntVar(&start, "start", 1, "seed vertex of the first traversal tree")
	dfsCmd.Flags().IntVar(&start, "start", 1, "seed vertex of the first traversal tree")
	componentsCmd.Flags().BoolVar(&useBFS, "bfs", false, "collect components breadth-first instead of depth-first")

	rootCmd.AddCommand(bfsCmd)
	rootCmd.AddCommand(dfsCmd)
	rootCmd.AddCommand(componentsCmd)
	rootCmd.AddCommand(cycleCmd)
	rootCmd.AddCommand(topoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vgraph:", err)
		os.Exit(1)
	}
}
