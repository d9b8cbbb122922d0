package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List rule presets",
	Long:  `Shows the built-in rule presets accepted by --preset.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	names := config.PresetNames()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Println("Available presets:")
	fmt.Println()
	fmt.Printf("  %-*s  %-5s  %-6s  %-6s  %s\n", maxNameLen, "Name", "Size", "P(4)", "Target", "Description")
	fmt.Printf("  %-*s  %-5s  %-6s  %-6s  %s\n", maxNameLen, "----", "----", "----", "------", "-----------")

	for _, name := range names {
		p := config.Presets[name]
		fmt.Printf("  %-*s  %-5s  %-6.2f  %-6d  %s\n",
			maxNameLen, p.Name, fmt.Sprintf("%dx%d", p.Size, p.Size), p.ProbFour, p.Target, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play --preset <name>' to play with a preset.")
}
