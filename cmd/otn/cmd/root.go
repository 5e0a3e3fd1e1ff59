package cmd

import (
	"fmt"
	"os"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netdsl"
	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/schematic"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "otn",
	Short: "OpenTraceNetlist - Schematic connectivity tools",
	Long: `OpenTraceNetlist (otn) works with circuit description files (.ckt):
  - Connectivity summaries and validation
  - Pin incidence listings
  - Planarity checks on the net connection graph
  - Graphviz DOT export of the netlist graphs

Examples:
  otn info divider.ckt              # Show netlist summary
  otn incidence divider.ckt         # List pin attachments
  otn planar divider.ckt            # Check net graph planarity
  otn dot --view nets divider.ckt   # Export net projection as DOT`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadSchematic parses and builds a circuit description file.
func loadSchematic(filename string) (*schematic.Schematic, error) {
	parser, err := netdsl.NewParser()
	if err != nil {
		return nil, err
	}
	f, err := parser.ParseFile(filename)
	if err != nil {
		return nil, err
	}
	s, err := netdsl.Build(f)
	if err != nil {
		return nil, fmt.Errorf("error building netlist: %w", err)
	}
	return s, nil
}
