package handlers

import (
	"errors"
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
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
	errInvalidBudgetID      = pkg.NewDomainErrorSimple("INVALID_BUDGET_ID", "Invalid budget id", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for budgets and their workflow.

type BudgetHandler struct {
	store *usecase.BudgetStore
}

func NewBudgetHandler(store *usecase.BudgetStore) *BudgetHandler {
	return &BudgetHandler{store: store}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget := payload.ToEntity()
	if details := h.store.ValidateBudget(budget); len(details) > 0 {
		appErr := pkg.NewValidationError(details, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.store.CreateBudget(c.Request.Context(), budget)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(saved))
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.store.FetchBudgets(c.Request.Context())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidBudgetID.HTTPStatus, errInvalidBudgetID.ToHTTPError())
		return
	}

	budget, ok := h.store.GetBudgetByID(id)
	if !ok {
		if _, err := h.store.FetchBudgets(c.Request.Context()); err != nil {
			appErr := mapBudgetError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if budget, ok = h.store.GetBudgetByID(id); !ok {
			appErr := mapBudgetError(usecase.ErrBudgetNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// ReplaceBudgets overwrites the whole collection, ids included.
func (h *BudgetHandler) ReplaceBudgets(c *gin.Context) {
	var budgets []entities.Budget
	if err := c.ShouldBindJSON(&budgets); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	if err := h.store.ReplaceBudgets(c.Request.Context(), budgets); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidBudgetID.HTTPStatus, errInvalidBudgetID.ToHTTPError())
		return
	}

	var payload request.BudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget := payload.ToEntity()
	budget.ID = id
	if details := h.store.ValidateBudget(budget); len(details) > 0 {
		appErr := pkg.NewValidationError(details, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.store.UpdateBudget(c.Request.Context(), budget)
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if updated.ID == 0 {
		appErr := mapBudgetError(usecase.ErrBudgetNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(updated))
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidBudgetID.HTTPStatus, errInvalidBudgetID.ToHTTPError())
		return
	}

	if err := h.store.DeleteBudget(c.Request.Context(), id); err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ChangeStatus moves a budget through the approval workflow.
func (h *BudgetHandler) ChangeStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(errInvalidBudgetID.HTTPStatus, errInvalidBudgetID.ToHTTPError())
		return
	}

	var payload request.BudgetStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	updated, err := h.store.ChangeStatus(c.Request.Context(), id, entities.BudgetStatus(payload.Status))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(updated))
}

// NextNumber returns the display number the next budget will take.
func (h *BudgetHandler) NextNumber(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"number": h.store.NextProposalNumber()})
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownBudgetStatus):
		return pkg.NewDomainErrorSimple("UNKNOWN_BUDGET_STATUS", "Unknown budget status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Invalid status transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
