package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rcliao/sukoon/internal/embedding"
	"github.com/rcliao/sukoon/internal/rag"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Show the passages retrieved for a query",
		Long:  "Embed the query and print the nearest knowledge-base passages with their cosine distance.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().IntP("limit", "l", rag.DefaultTopK, "Max results")
	cmd.Flags().String("collection", "", "Collection name (default: rag.collection)")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	limit, _ := cmd.Flags().GetInt("limit")
	collection, _ := cmd.Flags().GetString("collection")
	if collection == "" {
		collection = cfg.RAG.Collection
	}
	query := strings.Join(args, " ")

	s, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	dims, err := s.Dims(cmd.Context(), collection)
	if err != nil {
		exitErr("search", err)
	}
	e, err := embedding.NewForCollection(cfg.Embedding, dims)
	if err != nil {
		exitErr("embedding", err)
	}

	passages, err := rag.NewRetriever(e, s, collection, cfg.RAG.Timeout).Retrieve(cmd.Context(), query, limit)
	if err != nil {
		exitErr("search", err)
	}

	if formatFlag == "json" {
		if len(passages) == 0 {
			fmt.Println("[]")
			return
		}
		printJSON(passages)
		return
	}
	if len(passages) == 0 {
		fmt.Println("no passages found")
		return
	}
	for i, p := range passages {
		fmt.Printf("%d. [%s] distance=%.4f category=%s\n%s\n\n", i+1, p.ID, p.Distance, p.Metadata["category"], p.Content)
	}
}
