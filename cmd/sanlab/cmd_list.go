package main

import (
	"fmt"
	"strings"

	"sanlab/internal/catalog"

	"github.com/spf13/cobra"
)

// listCmd prints the catalog grouped by defect category
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog routines grouped by defect category",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	fmt.Print(renderCatalog())
	return nil
}

func renderCatalog() string {
	var b strings.Builder

	b.WriteString("Defect Catalog\n")
	b.WriteString(strings.Repeat("─", 60) + "\n")
	for _, cat := range catalog.Categories() {
		fmt.Fprintf(&b, "%s  (%s)\n", cat, catalog.BuildMode(cat))
		for _, r := range catalog.ByCategory(cat) {
			fmt.Fprintf(&b, "  %-22s %s\n", r.Name, r.Summary)
		}
	}
	b.WriteString(strings.Repeat("─", 60) + "\n")
	fmt.Fprintf(&b, "Total: %d routines\n", len(catalog.Entries()))
	b.WriteString("\nUse: sanlab run <routine>\n")

	return b.String()
}
