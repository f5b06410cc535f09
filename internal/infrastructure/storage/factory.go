package storage

import (
	"context"
	"errors"
	"fmt"

	"orcafacil/internal/adapter/persistence/apiclient"
	"orcafacil/internal/adapter/persistence/dynamo"
	"orcafacil/internal/adapter/persistence/localfile"
	"orcafacil/internal/infrastructure/config"
	"orcafacil/internal/infrastructure/database"
	"orcafacil/internal/usecase/interfaces"
)

// Open builds the storage backend selected in cfg.
//
// The api backend proxies another orcafacil instance and has no user
// repository of its own; callers must treat a nil IUserRepository as
// "auth unavailable" and skip wiring the auth routes.
func Open(ctx context.Context, cfg *config.Config) (interfaces.IStorageService, interfaces.IUserRepository, error) {
	switch cfg.Storage.Backend {
	case config.BackendLocal:
		svc, err := localfile.New(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return svc, svc, nil

	case config.BackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to dynamodb: %w", err)
		}
		svc := dynamo.New(ddb)
		return svc, svc, nil

	case config.BackendAPI:
		if cfg.API.BaseURL == "" {
			return nil, nil, errors.New("ORCAFACIL_API_BASE_URL is required for the api backend")
		}
		return apiclient.New(cfg.API.BaseURL, cfg.API.Token), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
