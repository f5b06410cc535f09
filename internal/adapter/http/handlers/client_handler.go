package handlers

import (
	"net/http"
	"strconv"

	request "orcafacil/internal/adapter/http/dto/request"
	response "orcafacil/internal/adapter/http/dto/response"
	"orcafacil/internal/usecase"
	"orcafacil/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClientPayload = pkg.NewDomainErrorSimple("INVALID_CLIENT_INPUT", "Invalid client payload", http.StatusBadRequest)
	errClientNotFound       = pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	errInvalidClientID      = pkg.NewDomainErrorSimple("INVALID_CLIENT_ID", "Invalid client id", http.StatusBadRequest)
)

// ClientHandler handles HTTP requests for the client registry.

type ClientHandler struct {
	store *usecase.ClientStore
}

func NewClientHandler(store *usecase.ClientStore) *ClientHandler {
	return &ClientHandler{store: store}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client := payload.ToEntity()
	if details := h.store.ValidateClient(client); len(details) > 0 {
		appErr := pkg.NewValidationError(details, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.store.CreateClient(c.Request.Context(), client)
	if err != nil {
		appErr := mapStorageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(saved))
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.store.FetchClients(c.Request.Context())
	if err != nil {
		appErr := mapStorageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

// GetClientByName resolves a client by its exact name, case-insensitive.
func (h *ClientHandler) GetClientByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client, err := h.store.FindByName(c.Request.Context(), name)
	if err != nil {
		appErr := mapStorageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if client.ID == 0 {
		c.JSON(errClientNotFound.HTTPStatus, errClientNotFound.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

// SearchClients filters by name or company substring, case-insensitive.
func (h *ClientHandler) SearchClients(c *gin.Context) {
	clients, err := h.store.SearchClients(c.Request.Context(), c.Query("q"))
	if err != nil {
		appErr := mapStorageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidClientID.HTTPStatus, errInvalidClientID.ToHTTPError())
		return
	}

	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClientPayload.HTTPStatus, errInvalidClientPayload.ToHTTPError())
		return
	}

	client := payload.ToEntity()
	client.ID = id
	if details := h.store.ValidateClient(client); len(details) > 0 {
		appErr := pkg.NewValidationError(details, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.store.UpdateClient(c.Request.Context(), client)
	if err != nil {
		appErr := mapStorageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if updated.ID == 0 {
		c.JSON(errClientNotFound.HTTPStatus, errClientNotFound.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(updated))
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidClientID.HTTPStatus, errInvalidClientID.ToHTTPError())
		return
	}

	if err := h.store.DeleteClient(c.Request.Context(), id); err != nil {
		appErr := mapStorageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapStorageError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
