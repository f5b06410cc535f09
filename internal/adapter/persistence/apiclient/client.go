// Package apiclient implements the storage abstraction over a remote
// OrcaFacil-compatible HTTP API. The remote side allocates identifiers and
// answers 404 where the contract wants a silent no-op, so this backend
// translates "not found" responses back into zero-value results.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase/interfaces"
)

const defaultTimeout = 5 * time.Second

var errNotFound = errors.New("apiclient: not found")

// StorageService talks to a remote budget API. Token, when set, travels as
// a bearer credential on every request.

type StorageService struct {
	baseURL string
	token   string
	http    *http.Client
}

var _ interfaces.IStorageService = (*StorageService)(nil)

func New(baseURL, token string) *StorageService {
	return &StorageService{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// do issues a request and decodes a 2xx response into out (when non-nil).
// 404 surfaces as errNotFound; other failures carry the remote error body.
func (s *StorageService) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: encoding request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var remote struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&remote) == nil && remote.Error.Message != "" {
			return fmt.Errorf("apiclient: %s %s: %s (%s)", method, path, remote.Error.Message, remote.Error.Code)
		}
		return fmt.Errorf("apiclient: %s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Clientes

func (s *StorageService) SaveClient(ctx context.Context, client entities.Client) (entities.Client, error) {
	var saved entities.Client
	if err := s.do(ctx, http.MethodPost, "/v1/clients", client, &saved); err != nil {
		return entities.Client{}, err
	}
	return saved, nil
}

func (s *StorageService) GetClients(ctx context.Context) ([]entities.Client, error) {
	var clients []entities.Client
	if err := s.do(ctx, http.MethodGet, "/v1/clients", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *StorageService) GetClientByName(ctx context.Context, name string) (entities.Client, error) {
	var client entities.Client
	err := s.do(ctx, http.MethodGet, "/v1/clients/by-name?name="+url.QueryEscape(name), nil, &client)
	if errors.Is(err, errNotFound) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, err
	}
	return client, nil
}

func (s *StorageService) UpdateClient(ctx context.Context, client entities.Client) (entities.Client, error) {
	var updated entities.Client
	err := s.do(ctx, http.MethodPut, "/v1/clients/"+strconv.Itoa(client.ID), client, &updated)
	if errors.Is(err, errNotFound) {
		return entities.Client{}, nil
	}
	if err != nil {
		return entities.Client{}, err
	}
	return updated, nil
}

func (s *StorageService) DeleteClient(ctx context.Context, clientID int) error {
	err := s.do(ctx, http.MethodDelete, "/v1/clients/"+strconv.Itoa(clientID), nil, nil)
	if errors.Is(err, errNotFound) {
		return nil
	}
	return err
}

// Orçamentos

func (s *StorageService) SaveBudget(ctx context.Context, budget entities.Budget) (entities.Budget, error) {
	var saved entities.Budget
	if err := s.do(ctx, http.MethodPost, "/v1/budgets", budget, &saved); err != nil {
		return entities.Budget{}, err
	}
	return saved, nil
}

func (s *StorageService) SaveBudgets(ctx context.Context, budgets []entities.Budget) error {
	if budgets == nil {
		budgets = []entities.Budget{}
	}
	return s.do(ctx, http.MethodPut, "/v1/budgets", budgets, nil)
}

func (s *StorageService) GetBudgets(ctx context.Context) ([]entities.Budget, error) {
	var budgets []entities.Budget
	if err := s.do(ctx, http.MethodGet, "/v1/budgets", nil, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (s *StorageService) UpdateBudget(ctx context.Context, budget entities.Budget) (entities.Budget, error) {
	var updated entities.Budget
	err := s.do(ctx, http.MethodPut, "/v1/budgets/"+strconv.Itoa(budget.ID), budget, &updated)
	if errors.Is(err, errNotFound) {
		return entities.Budget{}, nil
	}
	if err != nil {
		return entities.Budget{}, err
	}
	return updated, nil
}

func (s *StorageService) DeleteBudget(ctx context.Context, budgetID int) error {
	err := s.do(ctx, http.MethodDelete, "/v1/budgets/"+strconv.Itoa(budgetID), nil, nil)
	if errors.Is(err, errNotFound) {
		return nil
	}
	return err
}

// Materiais

func (s *StorageService) SaveMaterial(ctx context.Context, material entities.Material) (entities.Material, error) {
	var saved entities.Material
	if err := s.do(ctx, http.MethodPost, "/v1/materials", material, &saved); err != nil {
		return entities.Material{}, err
	}
	return saved, nil
}

func (s *StorageService) GetMaterials(ctx context.Context) ([]entities.Material, error) {
	var materials []entities.Material
	if err := s.do(ctx, http.MethodGet, "/v1/materials", nil, &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

func (s *StorageService) UpdateMaterial(ctx context.Context, materialID int, patch entities.MaterialPatch) (entities.Material, error) {
	var updated entities.Material
	err := s.do(ctx, http.MethodPatch, "/v1/materials/"+strconv.Itoa(materialID), patch, &updated)
	if errors.Is(err, errNotFound) {
		return entities.Material{}, nil
	}
	if err != nil {
		return entities.Material{}, err
	}
	return updated, nil
}

func (s *StorageService) DeleteMaterial(ctx context.Context, materialID int) error {
	err := s.do(ctx, http.MethodDelete, "/v1/materials/"+strconv.Itoa(materialID), nil, nil)
	if errors.Is(err, errNotFound) {
		return nil
	}
	return err
}
