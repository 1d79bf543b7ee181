package handlers

import (
	"fmt"
	"net/http"

	"pg-management-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExpenseHandler handles HTTP requests for expenses
type ExpenseHandler struct {
	expenses service.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenses service.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

// CreateExpense handles POST /api/expenses
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body service.CreateExpenseRequest true "Expense data"
// @Success 201 {object} models.Expense
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.expenses.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "failed to create expense")
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// ListExpenses handles GET /api/expenses
// @Summary List expenses
// @Description Newest first. Passing month and/or year limits the list to that month.
// @Tags expenses
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {array} models.Expense
// @Failure 400 {object} ErrorResponse "Invalid month or year"
// @Security BearerAuth
// @Router /api/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	expenses, err := h.expenses.List(c.Request.Context(), actor, c.Query("month"), c.Query("year"))
	if err != nil {
		respondError(c, err, "failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// UpdateExpense handles PUT /api/expenses/:id
// @Summary Update an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Param expense body service.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} models.Expense
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req service.UpdateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.expenses.Update(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "failed to update expense")
		return
	}

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense handles DELETE /api/expenses/:id
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID (UUID)"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.expenses.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "failed to delete expense")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Expense removed successfully"})
}

// UpdateExpenseCollection handles PUT /api/expenses
// @Summary Bulk expense update (not implemented)
// @Tags expenses
// @Produce json
// @Failure 501 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/expenses [put]
func (h *ExpenseHandler) UpdateExpenseCollection(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, ErrorResponse{Error: "Update functionality not yet implemented."})
}

// DeleteExpenseCollection handles DELETE /api/expenses
// @Summary Bulk expense delete (not implemented)
// @Tags expenses
// @Produce json
// @Failure 501 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/expenses [delete]
func (h *ExpenseHandler) DeleteExpenseCollection(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, ErrorResponse{Error: "Delete functionality not yet implemented."})
}

// ExportExpenses handles GET /api/expenses/export
// @Summary Export expenses as xlsx
// @Description Same filters as the list endpoint; the sheet ends with a total row
// @Tags expenses
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/expenses/export [get]
func (h *ExpenseHandler) ExportExpenses(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	export, err := h.expenses.Export(c.Request.Context(), actor, c.Query("month"), c.Query("year"))
	if err != nil {
		respondError(c, err, "failed to export expenses")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, xlsxContentType, export.Content)
}
