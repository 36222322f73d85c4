package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/sukoon/internal/rag"
)

func init() {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for knowledge-base files",
		Args:  cobra.NoArgs,
		Run:   runSchema,
	}

	RootCmd.AddCommand(cmd)
}

func runSchema(cmd *cobra.Command, args []string) {
	b, err := rag.Schema()
	if err != nil {
		exitErr("schema", err)
	}
	fmt.Println(string(b))
}
