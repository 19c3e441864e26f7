// Command murmur is a terminal client for the Murmur social network. It is a
// thin view over the state store: commands dispatch orchestrators, then
// render the resulting snapshot.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"murmur/internal/api"
	"murmur/internal/cache"
	"murmur/internal/config"
	"murmur/internal/observability"
	"murmur/internal/store"
	"murmur/internal/token"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var (
	appStore        *store.Store
	tracingShutdown func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:           "murmur",
	Short:         "Terminal client for the Murmur social network",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
			observability.SetLevel(level)
		}

		tracingShutdown, err = observability.InitTracing(observability.TracingConfig{
			ServiceName:    "murmur-client",
			ServiceVersion: version,
			Environment:    cfg.Env,
			Enabled:        cfg.TracingEnabled,
			Exporter:       cfg.TraceExporter,
			OTLPEndpoint:   cfg.OTLPEndpoint,
			SamplerRatio:   cfg.SamplerRatio,
		})
		if err != nil {
			return err
		}

		if cfg.CacheEnabled {
			cache.InitRedis(cfg.RedisURL)
		}

		tokens, err := buildTokenStore(cfg)
		if err != nil {
			return err
		}

		client, err := api.New(cfg.APIBaseURL,
			api.WithTimeout(time.Duration(cfg.HTTPTimeout)*time.Second))
		if err != nil {
			return err
		}

		appStore = store.New(client, tokens)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if tracingShutdown != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tracingShutdown(ctx)
		}
	},
}

const version = "1.0.0"

func buildTokenStore(cfg *config.Config) (token.Store, error) {
	switch cfg.TokenStore {
	case "redis":
		opts := &redis.Options{Addr: cfg.RedisURL}
		if parsed, err := redis.ParseURL(cfg.RedisURL); err == nil {
			opts = parsed
		}
		return token.NewRedisStore(redis.NewClient(opts)), nil
	default:
		return token.NewFileStore(cfg.TokenPath)
	}
}

// drainAlert prints and clears any alert the last orchestrator raised.
func drainAlert() {
	st := appStore.State()
	if !st.Alert.IsOpen || st.Alert.Alert == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] %s\n", st.Alert.Alert.Severity, st.Alert.Alert.Message)
	appStore.RemoveAlert()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
