package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hveem/digraph"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:           "digraph",
		Short:         "Build, render and time in-memory directed graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDemoCmd(logger), newDotCmd(logger), newBenchCmd(logger))
	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newDemoCmd(logger zerolog.Logger) *cobra.Command {
	var (
		nodes      int
		extraEdges int
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a random graph and walk it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if nodes < 1 {
				return fmt.Errorf("need at least one node, got %d", nodes)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))
			petname.NonDeterministicMode()

			// random labels, wired into a connected graph
			g := digraph.New[string]()
			labels := make([]string, 0, nodes)
			for i := 0; i < nodes; i++ {
				label := petname.Generate(2, "-")
				for g.HasNode(label) {
					label = petname.Generate(2, "-")
				}
				_ = g.AddNode(label)
				labels = append(labels, label)
			}
			for i := 1; i < len(labels); i++ {
				_ = g.AddEdge(labels[rng.Intn(i)], labels[i])
			}
			for i := 0; i < extraEdges; i++ {
				from := labels[rng.Intn(len(labels))]
				to := labels[rng.Intn(len(labels))]
				if err := g.AddEdge(from, to); err != nil {
					logger.Debug().Err(err).Msg("skipping edge")
				}
			}
			logger.Info().
				Int64("seed", seed).
				Int("order", g.Order()).
				Int("size", g.Size()).
				Msg("built random graph")

			dfs, err := g.DepthFirst(labels[0])
			if err != nil {
				return err
			}
			bfs, err := g.BreadthFirst(labels[0])
			if err != nil {
				return err
			}
			fmt.Printf("depth-first:   %s\n", strings.Join(dfs, " > "))
			fmt.Printf("breadth-first: %s\n", strings.Join(bfs, " > "))
			return nil
		},
	}
	cmd.Flags().IntVar(&nodes, "nodes", 8, "number of nodes")
	cmd.Flags().IntVar(&extraEdges, "extra-edges", 4, "random edges on top of the spanning tree")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the random wiring (0 picks one)")
	return cmd
}

func newDotCmd(logger zerolog.Logger) *cobra.Command {
	var mermaid bool
	cmd := &cobra.Command{
		Use:   "dot from>to [from>to ...]",
		Short: "Render a graph given as edges",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := digraph.New[string]()
			for _, arg := range args {
				from, to, ok := strings.Cut(arg, ">")
				if !ok || from == "" || to == "" {
					return fmt.Errorf("malformed edge %q, want from>to", arg)
				}
				if err := g.AddEdge(from, to); err != nil {
					logger.Warn().Err(err).Str("edge", arg).Msg("skipping edge")
				}
			}
			if mermaid {
				fmt.Print(g.Mermaid())
				return nil
			}
			fmt.Print(g.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&mermaid, "mermaid", false, "render a mermaid flowchart instead of dot")
	return cmd
}

func newBenchCmd(logger zerolog.Logger) *cobra.Command {
	var (
		length int
		rounds int
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the traversals on a chain graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < 1 || rounds < 1 {
				return fmt.Errorf("length and rounds must be positive")
			}
			g := digraph.New[int]()
			for i := 0; i < length; i++ {
				_ = g.AddEdge(i, i+1)
			}
			logger.Info().Int("order", g.Order()).Int("size", g.Size()).Msg("built chain graph")

			start := time.Now()
			for i := 0; i < rounds; i++ {
				if _, err := g.DepthFirst(0); err != nil {
					return err
				}
			}
			dfs := time.Since(start)

			start = time.Now()
			for i := 0; i < rounds; i++ {
				if _, err := g.BreadthFirst(0); err != nil {
					return err
				}
			}
			bfs := time.Since(start)

			fmt.Printf("depth-first:   %d rounds in %s (%s per round)\n", rounds, dfs, dfs/time.Duration(rounds))
			fmt.Printf("breadth-first: %d rounds in %s (%s per round)\n", rounds, bfs, bfs/time.Duration(rounds))
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "length", 100, "number of edges in the chain")
	cmd.Flags().IntVar(&rounds, "rounds", 1000, "traversal rounds to time")
	return cmd
}
