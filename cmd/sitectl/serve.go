package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"studio-site/handler"
	"studio-site/internal/auth"
	"studio-site/internal/config"
	"studio-site/internal/domain"
	"studio-site/internal/httpapi"
	"studio-site/internal/integrations/llm"
	"studio-site/internal/usecase"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the content API and the chat endpoint over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveAddr != "" {
			appConfig.Addr = serveAddr
		}
		if err := appConfig.ValidateServer(); err != nil {
			return err
		}
		ctx := cmd.Context()

		st, err := openStores(ctx, appConfig)
		if err != nil {
			return err
		}
		defer st.close()

		router, err := buildRouter(appConfig, st)
		if err != nil {
			return err
		}
		srv := httpapi.NewServer(appConfig.Addr, router, appConfig.Chat.UpstreamTimeout)

		errCh := make(chan error, 1)
		go func() {
			slog.Info("server listening", "addr", srv.Addr, "store", appConfig.Store.Driver)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		slog.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		slog.Info("server exited")
		return nil
	},
}

func buildRouter(cfg config.Config, st *stores) (http.Handler, error) {
	contentService, err := usecase.NewContentService(st.content, st.secrets, cfg.ParamPrefix)
	if err != nil {
		return nil, err
	}

	llmClient, err := llm.NewClient(llm.DefaultRegistry(endpoints(cfg.Chat.Endpoints)), llm.WithTimeout(cfg.Chat.UpstreamTimeout))
	if err != nil {
		return nil, err
	}
	chatService, err := usecase.NewChatService(llmClient, st.secrets, contentService, cfg.ParamPrefix, cfg.Chat.DefaultKeyParam)
	if err != nil {
		return nil, err
	}
	chatHandler, err := handler.NewHandler(chatService)
	if err != nil {
		return nil, err
	}

	issuer, err := auth.NewIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		return nil, err
	}
	authService, err := usecase.NewAuthService(cfg.Admin.Email, cfg.Admin.PasswordHash, issuer)
	if err != nil {
		return nil, err
	}

	return httpapi.NewRouter(httpapi.Services{
		Content: contentService,
		Auth:    authService,
		Tokens:  issuer,
		Chat:    chatHandler,
	})
}

// endpoints maps the provider-keyed endpoint overrides of the config file.
func endpoints(m map[string]string) llm.Endpoints {
	return llm.Endpoints{
		ChatGPT:  m[domain.ProviderChatGPT],
		Grok:     m[domain.ProviderGrok],
		DeepSeek: m[domain.ProviderDeepSeek],
		Gemini:   m[domain.ProviderGemini],
		Default:  m[domain.ProviderDefault],
	}
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (overrides addr in config)")
	rootCmd.AddCommand(serveCmd)
}
