package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/puzzlecut/puzzlecut/internal/api"
	"github.com/puzzlecut/puzzlecut/pkg/cache"
	"github.com/puzzlecut/puzzlecut/pkg/pipeline"
	"github.com/puzzlecut/puzzlecut/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		storeKind string
		mongoURI  string
		cacheKind string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the puzzle generation HTTP API",
		Long: `Run the puzzle generation HTTP API.

Generated puzzles are persisted in the configured store and addressable by
ID. With --store=mongo and --cache=redis, multiple instances can share
state; the defaults (memory store, file cache) suit a single instance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, storeKind, mongoURI, cacheKind, redisAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&storeKind, "store", "memory", "puzzle store: memory, mongo")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI (with --store=mongo)")
	cmd.Flags().StringVar(&cacheKind, "cache", "file", "cache backend: file, redis, none")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis address (with --cache=redis)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, storeKind, mongoURI, cacheKind, redisAddr string) error {
	st, err := newStore(ctx, storeKind, mongoURI)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer st.Close(context.Background())

	ca, err := newServerCache(ctx, cacheKind, redisAddr)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	runner := pipeline.NewRunner(ca, nil, c.Logger)
	defer runner.Close()

	server := api.NewServer(st, runner, c.Logger)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr, "store", storeKind, "cache", cacheKind)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

func newStore(ctx context.Context, kind, mongoURI string) (store.Store, error) {
	switch kind {
	case "memory":
		return store.NewMemoryStore(), nil
	case "mongo":
		return store.NewMongoStore(ctx, store.MongoConfig{URI: mongoURI})
	default:
		return nil, fmt.Errorf("invalid store: %s (must be 'memory' or 'mongo')", kind)
	}
}

func newServerCache(ctx context.Context, kind, redisAddr string) (cache.Cache, error) {
	switch kind {
	case "none":
		return cache.NewNullCache(), nil
	case "file":
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	default:
		return nil, fmt.Errorf("invalid cache: %s (must be 'file', 'redis', or 'none')", kind)
	}
}
