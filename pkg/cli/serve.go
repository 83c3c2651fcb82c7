package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/cli/config"
	httpctrl "github.com/secmon-lab/inkwell/pkg/controller/http"
	"github.com/secmon-lab/inkwell/pkg/usecase"
	"github.com/secmon-lab/inkwell/pkg/utils/logging"
	"github.com/secmon-lab/inkwell/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var authSecret string
	var maxImagesPerChunk int
	var maxPayloadBytes int
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var chatCfg config.Chat
	var taxonomyCfg config.Taxonomy

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("INKWELL_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "auth-secret",
			Category:    "Authentication",
			Usage:       "HS256 secret for bearer token verification. Empty disables authentication (development only)",
			Sources:     cli.EnvVars("INKWELL_AUTH_SECRET"),
			Destination: &authSecret,
		},
		&cli.IntFlag{
			Name:        "max-images-per-chunk",
			Usage:       "Maximum number of images sent to the model in one call",
			Value:       2,
			Sources:     cli.EnvVars("INKWELL_MAX_IMAGES_PER_CHUNK"),
			Destination: &maxImagesPerChunk,
		},
		&cli.IntFlag{
			Name:        "max-payload-bytes",
			Usage:       "Maximum encoded payload size of one model call",
			Value:       6 << 20,
			Sources:     cli.EnvVars("INKWELL_MAX_PAYLOAD_BYTES"),
			Destination: &maxPayloadBytes,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, chatCfg.Flags()...)
	flags = append(flags, taxonomyCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			ucOpts := []usecase.Option{
				usecase.WithChunkPolicy(maxImagesPerChunk, maxPayloadBytes),
			}

			modelClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure extraction client")
			}
			if modelClient != nil {
				ucOpts = append(ucOpts, usecase.WithModelClient(modelClient))
				logging.Default().Info("Note extraction enabled", "gemini", &geminiCfg)
			} else {
				logging.Default().Warn("Gemini API key not configured, note ingestion is disabled")
			}

			chatClient, err := chatCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure chat client")
			}
			if chatClient != nil {
				ucOpts = append(ucOpts, usecase.WithChatClient(chatClient))
				logging.Default().Info("Chat assistant enabled", "chat", &chatCfg)
			}

			defaults, err := taxonomyCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load category config")
			}
			if defaults != nil {
				ucOpts = append(ucOpts, usecase.WithTaxonomyDefaults(defaults))
				logging.Default().Info("Default categories loaded", "count", len(defaults))
			}

			uc := usecase.New(repo, ucOpts...)

			var httpOpts []httpctrl.Options
			if authSecret != "" {
				httpOpts = append(httpOpts, httpctrl.WithAuthSecret([]byte(authSecret)))
			} else {
				logging.Default().Warn("Running without authentication (development only)")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
