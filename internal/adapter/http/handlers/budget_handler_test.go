package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase"
	"orcafacil/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const validBudgetJSON = `{
	"client": {"id": 1, "name": "Ana", "company": "Construtora Alfa", "phone": "11999998888"},
	"items": [{"id": 1, "name": "Cimento", "brand": "Votoran", "quantity": 10, "unit": "sc", "unit_price": 35.5}]
}`

func TestBudgetHandler_CreateBudget(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewBudgetHandler(usecase.NewBudgetStore(storage))

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation failure carries ordered messages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewBudgetHandler(usecase.NewBudgetStore(storage))

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(`{"client":{},"items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body struct {
			Error struct {
				Code    string   `json:"code"`
				Details []string `json:"details"`
			} `json:"error"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body.Error.Code != "VALIDATION_FAILED" {
			t.Fatalf("unexpected code %q", body.Error.Code)
		}
		if len(body.Error.Details) == 0 || body.Error.Details[0] != "Nome do cliente é obrigatório" {
			t.Fatalf("unexpected details: %v", body.Error.Details)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewBudgetHandler(usecase.NewBudgetStore(storage))

		r := gin.New()
		r.POST("/v1/budgets", h.CreateBudget)

		storage.EXPECT().SaveBudget(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, b entities.Budget) (entities.Budget, error) {
				b.ID = 1
				return b, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/budgets", bytes.NewBufferString(validBudgetJSON))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["number"] != "0001" {
			t.Fatalf("unexpected number: %v", body["number"])
		}
		if body["status"] != "Pendente" {
			t.Fatalf("unexpected status: %v", body["status"])
		}
		if body["total"] != 355.0 {
			t.Fatalf("unexpected total: %v", body["total"])
		}
	})
}

func TestBudgetHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(h *BudgetHandler) *gin.Engine {
		r := gin.New()
		r.PATCH("/v1/budgets/:id/status", h.ChangeStatus)
		return r
	}

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewBudgetHandler(usecase.NewBudgetStore(storage))
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/1/status", bytes.NewBufferString(`{"status":"Arquivado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found after refetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewBudgetHandler(usecase.NewBudgetStore(storage))
		r := newRouter(h)

		storage.EXPECT().GetBudgets(gomock.Any()).Return([]entities.Budget{}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/9/status", bytes.NewBufferString(`{"status":"Aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewBudgetHandler(usecase.NewBudgetStore(storage))
		r := newRouter(h)

		storage.EXPECT().GetBudgets(gomock.Any()).Return([]entities.Budget{
			{ID: 1, Status: entities.BudgetStatusRejeitado},
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/1/status", bytes.NewBufferString(`{"status":"Aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewBudgetHandler(usecase.NewBudgetStore(storage))
		r := newRouter(h)

		storage.EXPECT().GetBudgets(gomock.Any()).Return([]entities.Budget{
			{ID: 1, Status: entities.BudgetStatusPendente},
		}, nil)
		storage.EXPECT().UpdateBudget(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ interface{}, b entities.Budget) (entities.Budget, error) {
				return b, nil
			})

		req := httptest.NewRequest(http.MethodPatch, "/v1/budgets/1/status", bytes.NewBufferString(`{"status":"Aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "Aprovado" {
			t.Fatalf("unexpected status: %v", body["status"])
		}
	})
}

func TestBudgetHandler_ListBudgets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("storage error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewBudgetHandler(usecase.NewBudgetStore(storage))

		r := gin.New()
		r.GET("/v1/budgets", h.ListBudgets)

		storage.EXPECT().GetBudgets(gomock.Any()).Return(nil, errors.New("backend down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/budgets", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestMapBudgetError(t *testing.T) {
	if got := mapBudgetError(usecase.ErrUnknownBudgetStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapBudgetError(usecase.ErrInvalidStatusTransition); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapBudgetError(usecase.ErrBudgetNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapBudgetError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
