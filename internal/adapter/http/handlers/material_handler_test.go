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

func TestMaterialHandler_CreateMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	storage := mocks.NewMockIStorageService(ctrl)
	h := NewMaterialHandler(usecase.NewMaterialStore(storage))

	r := gin.New()
	r.POST("/v1/materials", h.CreateMaterial)

	storage.EXPECT().SaveMaterial(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, m entities.Material) (entities.Material, error) {
			m.ID = 1
			return m, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/materials", bytes.NewBufferString(`{"name":"Cimento","brand":"Votoran","quantity":2,"unit":"sc","unit_price":35.5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["total"] != 71.0 {
		t.Fatalf("unexpected total: %v", body["total"])
	}
	if body["total_formatted"] != "R$ 71,00" {
		t.Fatalf("unexpected formatted total: %v", body["total_formatted"])
	}
}

func TestMaterialHandler_PatchMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewMaterialHandler(usecase.NewMaterialStore(storage))

		r := gin.New()
		r.PATCH("/v1/materials/:id", h.PatchMaterial)

		storage.EXPECT().UpdateMaterial(gomock.Any(), 9, gomock.Any()).Return(entities.Material{}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/materials/9", bytes.NewBufferString(`{"quantity":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mocks.NewMockIStorageService(ctrl)
		h := NewMaterialHandler(usecase.NewMaterialStore(storage))

		r := gin.New()
		r.PATCH("/v1/materials/:id", h.PatchMaterial)

		storage.EXPECT().UpdateMaterial(gomock.Any(), 1, gomock.Any()).Return(entities.Material{ID: 1, Name: "Cimento", Quantity: 5, UnitPrice: 35.5, Total: 177.5}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/materials/1", bytes.NewBufferString(`{"quantity":5}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != 177.5 {
			t.Fatalf("unexpected total: %v", body["total"])
		}
	})
}

func TestMaterialHandler_DeleteMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	storage := mocks.NewMockIStorageService(ctrl)
	h := NewMaterialHandler(usecase.NewMaterialStore(storage))

	r := gin.New()
	r.DELETE("/v1/materials/:id", h.DeleteMaterial)

	storage.EXPECT().DeleteMaterial(gomock.Any(), 2).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/materials/2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
