package cmd

import (
	"fmt"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/netgraph"
	"github.com/spf13/cobra"
)

var incidenceCmd = &cobra.Command{
	Use:   "incidence <circuit_file>",
	Short: "List pin incidences",
	Long: `List every (net, component, pin) attachment of the netlist, in net
declaration order.`,
	Args: cobra.ExactArgs(1),
	RunE: runIncidence,
}

func init() {
	rootCmd.AddCommand(incidenceCmd)
}

func runIncidence(cmd *cobra.Command, args []string) error {
	s, err := loadSchematic(args[0])
	if err != nil {
		return err
	}

	count := 0
	for inc := range netgraph.IterIncidences(s.Nets()) {
		pin := inc.Component.Pins()[inc.PinIndex]
		fmt.Printf("%s  %s.%s (pin %d)\n", inc.Net.Name(), inc.Component.Name(), pin.Name(), inc.PinIndex)
		count++
	}
	fmt.Printf("%d incidences\n", count)
	return nil
}
