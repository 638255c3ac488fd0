package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/SscSPs/customs_clearance_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

func registerPayrollRoutes(rg *gin.RouterGroup, ps portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(ps)

	runs := rg.Group("/payroll-runs")
	{
		runs.POST("", h.createRun)
		runs.GET("", h.listRuns)
		runs.GET("/:id", h.getRun)
		runs.PUT("/:id/items", h.replaceItems)
		runs.POST("/:id/approve", h.approveRun)
		runs.POST("/:id/unapprove", h.unapproveRun)
	}
}

// createRun godoc
// @Summary Create a payroll run
// @Description Opens a DRAFT run for the month with one item per active employee
// @Tags payroll
// @Accept json
// @Produce json
// @Param run body dto.CreatePayrollRunRequest true "Month (YYYY-MM)"
// @Success 201 {object} domain.PayrollRun
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "A run for the month already exists"
// @Security BearerAuth
// @Router /payroll-runs [post]
func (h *payrollHandler) createRun(c *gin.Context) {
	var req dto.CreatePayrollRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	run, err := h.payrollService.CreateRun(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "create payroll run")
		return
	}
	c.JSON(http.StatusCreated, run)
}

// listRuns godoc
// @Summary List payroll runs
// @Tags payroll
// @Produce json
// @Param limit query int false "Limit" default(12)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.PayrollRun
// @Security BearerAuth
// @Router /payroll-runs [get]
func (h *payrollHandler) listRuns(c *gin.Context) {
	var params dto.ListPayrollRunsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	runs, err := h.payrollService.ListRuns(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list payroll runs")
		return
	}
	c.JSON(http.StatusOK, runs)
}

// getRun godoc
// @Summary Get a payroll run with its items
// @Tags payroll
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} domain.PayrollRun
// @Failure 404 {object} map[string]string "Run not found"
// @Security BearerAuth
// @Router /payroll-runs/{id} [get]
func (h *payrollHandler) getRun(c *gin.Context) {
	run, err := h.payrollService.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get payroll run")
		return
	}
	c.JSON(http.StatusOK, run)
}

// replaceItems godoc
// @Summary Replace the items of a DRAFT run
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Param items body dto.ReplacePayrollItemsRequest true "Items"
// @Success 200 {object} domain.PayrollRun
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Run is not a draft"
// @Security BearerAuth
// @Router /payroll-runs/{id}/items [put]
func (h *payrollHandler) replaceItems(c *gin.Context) {
	var req dto.ReplacePayrollItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	run, err := h.payrollService.ReplaceItems(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "replace payroll items")
		return
	}
	c.JSON(http.StatusOK, run)
}

// approveRun godoc
// @Summary Approve a payroll run
// @Description Pays every item with a positive net through one payment voucher, atomically
// @Tags payroll
// @Accept json
// @Produce json
// @Param id path string true "Run ID"
// @Param payment body dto.ApprovePayrollRequest false "Payment method, defaults to CASH"
// @Success 200 {object} domain.PayrollRun
// @Failure 409 {object} map[string]string "Run already approved"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Security BearerAuth
// @Router /payroll-runs/{id}/approve [post]
func (h *payrollHandler) approveRun(c *gin.Context) {
	var req dto.ApprovePayrollRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}
	runID := c.Param("id")

	run, err := h.payrollService.Approve(c.Request.Context(), runID, req, userID)
	if err != nil {
		respondError(c, err, "approve payroll run")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Payroll run approved successfully", slog.String("run_id", runID))
	c.JSON(http.StatusOK, run)
}

// unapproveRun godoc
// @Summary Return an approved payroll run to DRAFT
// @Tags payroll
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} domain.PayrollRun
// @Failure 409 {object} map[string]string "Run is not approved"
// @Security BearerAuth
// @Router /payroll-runs/{id}/unapprove [post]
func (h *payrollHandler) unapproveRun(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	run, err := h.payrollService.Unapprove(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondError(c, err, "unapprove payroll run")
		return
	}
	c.JSON(http.StatusOK, run)
}
