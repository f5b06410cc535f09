package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase"
	"orcafacil/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientHandler_CreateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("validation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewClientHandler(usecase.NewClientStore(storage))

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"name":"Ana"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Error struct {
				Details []string `json:"details"`
			} `json:"error"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Error.Details) != 2 {
			t.Fatalf("expected company and phone errors, got %v", body.Error.Details)
		}
	})

	t.Run("success normalizes phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewClientHandler(usecase.NewClientStore(storage))

		r := gin.New()
		r.POST("/v1/clients", h.CreateClient)

		storage.EXPECT().SaveClient(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, c entities.Client) (entities.Client, error) {
				c.ID = 1
				return c, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString(`{"name":"Ana","company":"Construtora Alfa","phone":"5511999998888"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["phone"] != "(11) 99999-8888" {
			t.Fatalf("unexpected phone: %v", body["phone"])
		}
	})
}

func TestClientHandler_GetClientByName(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewClientHandler(usecase.NewClientStore(storage))

		r := gin.New()
		r.GET("/v1/clients/by-name", h.GetClientByName)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/by-name", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewClientHandler(usecase.NewClientStore(storage))

		r := gin.New()
		r.GET("/v1/clients/by-name", h.GetClientByName)

		storage.EXPECT().GetClientByName(gomock.Any(), "Bruno").Return(entities.Client{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/by-name?name=Bruno", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewClientHandler(usecase.NewClientStore(storage))

		r := gin.New()
		r.GET("/v1/clients/by-name", h.GetClientByName)

		storage.EXPECT().GetClientByName(gomock.Any(), "Ana").Return(entities.Client{ID: 2, Name: "Ana", Company: "Alfa", Phone: "(11) 99999-8888"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/clients/by-name?name=Ana", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != 2.0 {
			t.Fatalf("unexpected id: %v", body["id"])
		}
	})
}

func TestClientHandler_UpdateClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewClientHandler(usecase.NewClientStore(storage))

		r := gin.New()
		r.PUT("/v1/clients/:id", h.UpdateClient)

		req := httptest.NewRequest(http.MethodPut, "/v1/clients/abc", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("silent no-op maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewClientHandler(usecase.NewClientStore(storage))

		r := gin.New()
		r.PUT("/v1/clients/:id", h.UpdateClient)

		storage.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(entities.Client{}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/clients/9", bytes.NewBufferString(`{"name":"Ana","company":"Alfa","phone":"11999998888"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestClientHandler_DeleteClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	storage := mocks.NewMockIStorageService(ctrl)
	h := NewClientHandler(usecase.NewClientStore(storage))

	r := gin.New()
	r.DELETE("/v1/clients/:id", h.DeleteClient)

	storage.EXPECT().DeleteClient(gomock.Any(), 3).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/clients/3", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
