package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show vector database statistics",
		Args:  cobra.NoArgs,
		Run:   runStats,
	}

	RootCmd.AddCommand(cmd)
}

func runStats(cmd *cobra.Command, args []string) {
	s, err := openStore(loadConfig())
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := s.Stats(cmd.Context())
	if err != nil {
		exitErr("stats", err)
	}

	if formatFlag == "json" {
		printJSON(stats)
		return
	}
	fmt.Printf("db:   %s (%d bytes)\n", stats.DBPath, stats.DBSizeBytes)
	for _, c := range stats.Collections {
		fmt.Printf("\n%s: %d documents, %d batches, %d dims\n", c.Name, c.Documents, c.Batches, c.Dims)
		cats := make([]string, 0, len(c.Categories))
		for cat := range c.Categories {
			cats = append(cats, cat)
		}
		sort.Strings(cats)
		for _, cat := range cats {
			fmt.Printf("  %-20s %d\n", cat, c.Categories[cat])
		}
	}
}
