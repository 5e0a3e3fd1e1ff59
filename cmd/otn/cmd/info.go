package cmd

import (
	"errors"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceNetlist/pkg/schematic"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <circuit_file> [component]",
	Short: "Show netlist information",
	Long: `Display connectivity information for a circuit description file.

Without component argument: shows netlist summary
With component argument: shows details for that specific component`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := loadSchematic(args[0])
	if err != nil {
		return err
	}

	if len(args) >= 2 {
		return showComponentDetails(s, args[1])
	}

	showSummary(s, args[0])
	return nil
}

func showSummary(s *schematic.Schematic, filename string) {
	fmt.Printf("Netlist: %s\n", filename)
	fmt.Println()

	fmt.Println("Statistics:")
	fmt.Printf("  Components: %d\n", len(s.Components()))
	fmt.Printf("  Nets: %d\n", len(s.Nets()))
	fmt.Println()

	if gnd, err := s.Ground(); err == nil {
		fmt.Printf("Ground: %s\n", gnd.Name())
	} else if errors.Is(err, schematic.ErrMultipleGrounds) {
		fmt.Printf("Ground: ambiguous (%v)\n", err)
	} else {
		fmt.Println("Ground: none")
	}
	fmt.Println()

	fmt.Println("Nets:")
	for _, n := range s.Nets() {
		fmt.Printf("  %s (degree %d)\n", n.Name(), n.Degree())
		if verbose {
			for _, conn := range n.Connections() {
				fmt.Printf("    %s pins %v\n", conn.Component.Name(), conn.PinIndices)
			}
		}
	}
	fmt.Println()

	fmt.Println("Components:")
	for _, c := range s.Components() {
		fmt.Printf("  %s\n", c)
	}
	fmt.Println()

	if err := s.Validate(); err != nil {
		fmt.Printf("Validation: %v\n", err)
	} else {
		fmt.Println("Validation: all pins connected")
	}
}

func showComponentDetails(s *schematic.Schematic, name string) error {
	c, err := s.Component(name)
	if err != nil {
		return err
	}

	fmt.Printf("Component: %s\n", c.Name())
	fmt.Printf("Kind: %s\n", c.Kind())
	fmt.Println()

	fmt.Println("Pins:")
	for _, p := range c.Pins() {
		if p.Net() == nil {
			fmt.Printf("  %d (%s): not connected\n", p.Index(), p.Name())
		} else {
			fmt.Printf("  %d (%s): %s\n", p.Index(), p.Name(), p.Net().Name())
		}
	}

	params := c.Parameters()
	if len(params) > 0 {
		fmt.Println()
		fmt.Println("Parameters:")
		for k, v := range params {
			fmt.Printf("  %s: %v\n", k, v)
		}
	}
	return nil
}
