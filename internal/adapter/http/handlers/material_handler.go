package handlers

import (
	"net/http"
	"strconv"

	request "orcafacil/internal/adapter/http/dto/request"
	response "orcafacil/internal/adapter/http/dto/response"
	"orcafacil/internal/domain/entities"
	"orcafacil/internal/usecase"
	"orcafacil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidMaterialPayload = pkg.NewDomainErrorSimple("INVALID_MATERIAL_INPUT", "Invalid material payload", http.StatusBadRequest)
	errMaterialNotFound       = pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	errInvalidMaterialID      = pkg.NewDomainErrorSimple("INVALID_MATERIAL_ID", "Invalid material id", http.StatusBadRequest)
)

// MaterialHandler handles HTTP requests for the material catalog.

type MaterialHandler struct {
	store *usecase.MaterialStore
}

func NewMaterialHandler(store *usecase.MaterialStore) *MaterialHandler {
	return &MaterialHandler{store: store}
}

func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	material := payload.ToEntity()
	if details := h.store.ValidateMaterial(material); len(details) > 0 {
		appErr := pkg.NewValidationError(details, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.store.CreateMaterial(c.Request.Context(), material)
	if err != nil {
		appErr := mapStorageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMaterial(saved))
}

func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	materials, err := h.store.FetchMaterials(c.Request.Context())
	if err != nil {
		appErr := mapStorageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterials(materials))
}

// PatchMaterial applies a partial update; absent fields keep their stored
// value and the total is recomputed server-side.
func (h *MaterialHandler) PatchMaterial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidMaterialID.HTTPStatus, errInvalidMaterialID.ToHTTPError())
		return
	}

	var patch entities.MaterialPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	updated, err := h.store.UpdateMaterial(c.Request.Context(), id, patch)
	if err != nil {
		appErr := mapStorageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if updated.ID == 0 {
		c.JSON(errMaterialNotFound.HTTPStatus, errMaterialNotFound.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterial(updated))
}

func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidMaterialID.HTTPStatus, errInvalidMaterialID.ToHTTPError())
		return
	}

	if err := h.store.DeleteMaterial(c.Request.Context(), id); err != nil {
		appErr := mapStorageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}
