package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/sukoon/internal/prompts"
)

func init() {
	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List the selectable moods",
		Args:  cobra.NoArgs,
		Run:   runMoods,
	}

	RootCmd.AddCommand(cmd)
}

func runMoods(cmd *cobra.Command, args []string) {
	if formatFlag == "json" {
		printJSON(prompts.Moods)
		return
	}
	for _, m := range prompts.Moods {
		fmt.Printf("%-13s %s  %s\n", m.Key, m.Label, m.Description)
	}
}
