// Package cli implements the sukoon CLI commands.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/sukoon/internal/config"
	"github.com/rcliao/sukoon/internal/conversation"
	"github.com/rcliao/sukoon/internal/embedding"
	"github.com/rcliao/sukoon/internal/llm"
	"github.com/rcliao/sukoon/internal/logger"
	"github.com/rcliao/sukoon/internal/rag"
	"github.com/rcliao/sukoon/internal/store"
)

var (
	cfgFile    string
	dbPath     string
	formatFlag string
	logLevel   string
	logFile    string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "sukoon",
	Short: "A calm, culturally aware emotional support companion",
	Long: "Sukoon chats in English and Roman Urdu, grounds replies in a small knowledge base " +
		"of lived wisdom, and routes crisis language to fixed supportive responses.",
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initLogger)

	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file (default: ./sukoon.yaml or ~/.sukoon/sukoon.yaml)")
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Vector database path (default: $SUKOON_STORE_PATH or ~/.sukoon/vectors.db)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	RootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Append logs to this file instead of stderr")
}

func initLogger() {
	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: configure logger: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	v, err := config.New(cfgFile)
	if err != nil {
		exitErr("load config", err)
	}
	if err := v.BindPFlag("store.path", RootCmd.PersistentFlags().Lookup("db")); err != nil {
		exitErr("bind flags", err)
	}
	cfg, err := config.Load(v)
	if err != nil {
		exitErr("config", err)
	}
	return cfg
}

func openStore(cfg *config.Config) (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.Store.Path)
}

// runtime is the wired pipeline shared by chat and ask.
type runtime struct {
	cfg    *config.Config
	store  *store.SQLiteStore
	engine *conversation.Engine
}

// newRuntime wires the engine. Retrieval problems degrade to running without
// it; only an invalid completion provider is fatal.
func newRuntime(ctx context.Context, cfg *config.Config) (*runtime, error) {
	completer, err := llm.New(cfg.LLM)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg}
	var source conversation.ContextSource
	if cfg.RAG.Enabled {
		if r := rt.openRetrieval(ctx); r != nil {
			source = r
		}
	}

	rt.engine = conversation.NewEngine(completer, source, conversation.Options{
		Model:         cfg.LLM.Model,
		MaxTokens:     cfg.LLM.MaxTokens,
		Temperature:   cfg.LLM.Temperature,
		HistoryWindow: cfg.Chat.HistoryWindow,
		TopK:          cfg.RAG.TopK,
		LLMTimeout:    cfg.LLM.Timeout,
	})
	return rt, nil
}

func (rt *runtime) openRetrieval(ctx context.Context) *rag.Retriever {
	s, err := openStore(rt.cfg)
	if err != nil {
		logger.Warn("vector store unavailable, continuing without retrieval", "path", rt.cfg.Store.Path, "error", err)
		return nil
	}
	rt.store = s

	collection := rt.cfg.RAG.Collection
	var dims int
	if err := s.Initialize(ctx, collection); err != nil {
		logger.Warn("initialize collection", "collection", collection, "error", err)
	} else if dims, err = s.Dims(ctx, collection); err != nil {
		logger.Warn("read collection dims", "collection", collection, "error", err)
	}

	e, err := embedding.NewForCollection(rt.cfg.Embedding, dims)
	if err != nil {
		logger.Warn("embedding unavailable, continuing without retrieval", "error", err)
		return nil
	}

	res, err := rag.EnsureIndexed(ctx, s, e, rt.cfg.RAG.KnowledgeDir, collection)
	if err != nil {
		logger.Warn("auto-index failed", "dir", rt.cfg.RAG.KnowledgeDir, "error", err)
	} else if !res.Skipped {
		logger.Info("knowledge base indexed", "documents", res.Documents, "embedder", res.Embedder)
	}
	return rag.NewRetriever(e, s, collection, rt.cfg.RAG.Timeout)
}

func (rt *runtime) Close() {
	if rt.store != nil {
		rt.store.Close()
	}
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		exitErr("encode json", err)
	}
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
