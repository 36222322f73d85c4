package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/sukoon/internal/embedding"
	"github.com/rcliao/sukoon/internal/rag"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Index the knowledge base",
		Long: "Load every .json, .yaml and .yml file in the knowledge directory, embed the records " +
			"and add them to the collection. Re-ingesting existing ids fails unless --reset is given.",
		Args: cobra.NoArgs,
		Run:  runIngest,
	}

	cmd.Flags().String("dir", "", "Knowledge directory (default: rag.knowledge_dir)")
	cmd.Flags().String("collection", "", "Collection name (default: rag.collection)")
	cmd.Flags().Bool("reset", false, "Clear the collection before indexing")

	RootCmd.AddCommand(cmd)
}

func runIngest(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	dir, _ := cmd.Flags().GetString("dir")
	collection, _ := cmd.Flags().GetString("collection")
	reset, _ := cmd.Flags().GetBool("reset")
	if dir == "" {
		dir = cfg.RAG.KnowledgeDir
	}
	if collection == "" {
		collection = cfg.RAG.Collection
	}

	s, err := openStore(cfg)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if err := s.Initialize(cmd.Context(), collection); err != nil {
		exitErr("initialize", err)
	}
	if reset {
		if err := s.Clear(cmd.Context(), collection); err != nil {
			exitErr("reset", err)
		}
	}
	dims, err := s.Dims(cmd.Context(), collection)
	if err != nil {
		exitErr("ingest", err)
	}
	e, err := embedding.NewForCollection(cfg.Embedding, dims)
	if err != nil {
		exitErr("embedding", err)
	}

	res, err := rag.Index(cmd.Context(), s, e, dir, collection)
	if err != nil {
		exitErr("ingest", err)
	}

	if formatFlag == "json" {
		printJSON(res)
		return
	}
	fmt.Printf("indexed %d documents into %s using %s\n", res.Documents, res.Collection, res.Embedder)
}
