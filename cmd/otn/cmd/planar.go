package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netgraph"
	"github.com/spf13/cobra"
)

var planarCmd = &cobra.Command{
	Use:   "planar <circuit_file>",
	Short: "Check net graph planarity",
	Long: `Project the netlist onto its nets (one node per net, one edge per
bridging component) and test whether the resulting graph is planar.

Exits with status 1 when the graph is not planar.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlanar,
}

func init() {
	rootCmd.AddCommand(planarCmd)
}

func runPlanar(cmd *cobra.Command, args []string) error {
	s, err := loadSchematic(args[0])
	if err != nil {
		return err
	}

	ng := netgraph.NewNetGraph(s.Nets())
	if verbose {
		fmt.Printf("Net graph: %d nodes, %d edges\n", len(ng.Nodes()), len(ng.Lines()))
	}

	if netgraph.IsPlanar(ng.Graph()) {
		fmt.Println("planar")
		return nil
	}
	fmt.Println("not planar")
	os.Exit(1)
	return nil
}
