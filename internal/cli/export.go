package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a collection as JSON",
		Long:  "Export every document in a collection, in insertion order, as a JSON array. Vectors are not included.",
		Args:  cobra.NoArgs,
		Run:   runExport,
	}

	cmd.Flags().String("collection", "", "Collection name (default: rag.collection)")

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	collection, _ := cmd.Flags().GetString("collection")
	if collection == "" {
		collection = cfg.RAG.Collection
	}

	s, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	docs, err := s.ExportAll(cmd.Context(), collection)
	if err != nil {
		exitErr("export", err)
	}
	printJSON(docs)
}
