package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mapcolor/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows the grid presets, the built-in maps and any maps loaded from --maps.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	boards := registry.List()

	if len(boards) == 0 {
		fmt.Println("No boards available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, b := range boards {
		maxIDLen = max(maxIDLen, len(b.ID))
		maxTitleLen = max(maxTitleLen, len(b.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----------")

	for _, b := range boards {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, b.ID, maxTitleLen, b.Title, b.Description)
	}

	fmt.Println()
	fmt.Println("Run 'mapcolor play <id>' to play a board.")
}
