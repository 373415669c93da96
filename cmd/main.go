package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"studio-site/handler"
	"studio-site/internal/integrations/llm"
	"studio-site/internal/integrations/paramstore"
	"studio-site/internal/repository"
	"studio-site/internal/usecase"
)

func main() {
	ctx := context.Background()
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// ---- Configuration (read only here) ----
	stateTable := mustEnv("STATE_TABLE")
	paramPrefix := mustEnv("PARAM_PREFIX")
	upstreamTimeout := time.Duration(envInt("UPSTREAM_TIMEOUT_SECONDS", 30)) * time.Second
	defaultKeyParam := os.Getenv("DEFAULT_PROVIDER_KEY_PARAM")

	// ---- AWS SDK config ----
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		slog.Error("failed to load AWS config", "err", err)
		os.Exit(1)
	}

	// ---- Clients ----
	ssmClient, err := paramstore.New(awsssm.NewFromConfig(cfg))
	if err != nil {
		slog.Error("failed to create SSM client", "err", err)
		os.Exit(1)
	}
	contentStore, err := repository.New(awsdynamodb.NewFromConfig(cfg), stateTable)
	if err != nil {
		slog.Error("failed to create content store", "err", err)
		os.Exit(1)
	}

	llmClient, err := llm.NewClient(llm.DefaultRegistry(llm.Endpoints{}), llm.WithTimeout(upstreamTimeout))
	if err != nil {
		slog.Error("failed to create LLM client", "err", err)
		os.Exit(1)
	}

	// ---- Handler ----
	contentService, err := usecase.NewContentService(contentStore, ssmClient, paramPrefix)
	if err != nil {
		slog.Error("failed to create content service", "err", err)
		os.Exit(1)
	}
	chatService, err := usecase.NewChatService(llmClient, ssmClient, contentService, paramPrefix, defaultKeyParam)
	if err != nil {
		slog.Error("failed to create chat service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandler(chatService)
	if err != nil {
		slog.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	lambda.Start(h.Handle)
}

func mustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		slog.Error("required environment variable is not set", "key", key)
		os.Exit(1)
	}
	return v
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
