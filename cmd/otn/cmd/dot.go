package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netgraph"
	"github.com/spf13/cobra"
)

var dotView string

var dotCmd = &cobra.Command{
	Use:   "dot <circuit_file>",
	Short: "Export netlist graphs as Graphviz DOT",
	Long: `Export one of the netlist's graph projections in Graphviz DOT format
on stdout.

Views:
  bipartite   net and component nodes, one edge per attached pin (default)
  nets        net nodes only, one edge per bridging component`,
	Args: cobra.ExactArgs(1),
	RunE: runDot,
}

func init() {
	rootCmd.AddCommand(dotCmd)
	dotCmd.Flags().StringVar(&dotView, "view", "bipartite", "graph view: bipartite or nets")
}

func runDot(cmd *cobra.Command, args []string) error {
	s, err := loadSchematic(args[0])
	if err != nil {
		return err
	}

	name := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))

	var data []byte
	switch dotView {
	case "bipartite":
		data, err = netgraph.MarshalDOT(netgraph.NewBipartite(s.Nets()).Graph(), name)
	case "nets":
		data, err = netgraph.MarshalDOT(netgraph.NewNetGraph(s.Nets()).Graph(), name)
	default:
		return fmt.Errorf("unknown view %q (want bipartite or nets)", dotView)
	}
	if err != nil {
		return err
	}

	os.Stdout.Write(data)
	fmt.Println()
	return nil
}
