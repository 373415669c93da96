package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"

	"studio-site/internal/config"
	"studio-site/internal/integrations/paramstore"
	"studio-site/internal/repository"
	"studio-site/internal/repository/sqlite"
	"studio-site/internal/usecase"
)

// stores are the content and secret backends selected by store.driver.
type stores struct {
	content usecase.ContentRepository
	secrets usecase.SecretStore
	close   func() error
}

func openStores(ctx context.Context, cfg config.Config) (*stores, error) {
	if err := cfg.ValidateStore(); err != nil {
		return nil, err
	}

	switch cfg.Store.Driver {
	case config.DriverDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		content, err := repository.New(awsdynamodb.NewFromConfig(awsCfg), cfg.Store.Table)
		if err != nil {
			return nil, fmt.Errorf("creating content store: %w", err)
		}
		secrets, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
		if err != nil {
			return nil, fmt.Errorf("creating SSM client: %w", err)
		}
		return &stores{content: content, secrets: secrets, close: func() error { return nil }}, nil
	default:
		dbConn, err := sqlite.New(ctx, cfg.Store.Path)
		if err != nil {
			return nil, err
		}
		repo := sqlite.NewRepository(dbConn)
		return &stores{content: repo, secrets: repo, close: repo.Close}, nil
	}
}

func openContentService(ctx context.Context, cfg config.Config) (*usecase.ContentService, func() error, error) {
	st, err := openStores(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	svc, err := usecase.NewContentService(st.content, st.secrets, cfg.ParamPrefix)
	if err != nil {
		st.close()
		return nil, nil, err
	}
	return svc, st.close, nil
}
