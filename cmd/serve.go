package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/propertyloop/leadmatch/internal/concepts"
	"github.com/propertyloop/leadmatch/internal/server"
	"github.com/propertyloop/leadmatch/internal/vectordb"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the leadmatch HTTP API",
	Long:  `Starts the REST API serving flows, leads, advice, the field catalog, and recommendations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Port = servePort
		}

		registry := concepts.Builtin()

		database, err := openDatabase(cfg)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		drafter, err := createDrafterFromConfig(cfg, registry)
		if err != nil {
			return err
		}

		// The vector index is optional; without an embedder the search
		// endpoint answers 503.
		var search vectordb.VectorStore
		embedder, err := createEmbedderFromConfig(cfg)
		if err != nil {
			return err
		}
		if embedder != nil {
			store, err := vectordb.NewChromemStore(embedder)
			if err != nil {
				return fmt.Errorf("creating vector store: %w", err)
			}
			if err := store.Load(context.Background(), cfg.DataDir); err != nil && !errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(os.Stderr, "Warning: could not load vector index from %s: %v\n", cfg.DataDir, err)
			}
			search = store
		}

		srv := server.New(cfg, database, registry, drafter, search)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down...")
			if search != nil {
				if err := search.Persist(context.Background(), cfg.DataDir); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: could not persist vector index to %s: %v\n", cfg.DataDir, err)
				}
			}
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "leadmatch %s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Data dir: %s\n", cfg.DataDir)
		if search != nil {
			fmt.Fprintf(os.Stderr, "  Advice indexed: %d\n", search.Count())
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Override the configured port")
	rootCmd.AddCommand(serveCmd)
}
