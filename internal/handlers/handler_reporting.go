package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/general-journal", h.getGeneralJournal)
		reportingGroup.GET("/income-statement", h.getIncomeStatement)
		reportingGroup.GET("/treasury", h.getTreasuryReport)
		reportingGroup.GET("/bank/:id", h.getBankReport)
		reportingGroup.GET("/statement/:code", h.getAccountStatement)
	}
}

func (h *reportingHandler) today() time.Time {
	y, m, d := h.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// period resolves the from/to query pair. from defaults to the first of the current month and
// to defaults to today.
func (h *reportingHandler) period(c *gin.Context) (time.Time, time.Time, bool) {
	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return time.Time{}, time.Time{}, false
	}
	to := h.today()
	if params.To != nil {
		to = *params.To
	}
	from := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	if params.From != nil {
		from = *params.From
	}
	return from, to, true
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Per-account debit and credit totals of every entry up to the end of asOf
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	var params dto.AsOfParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	asOf := h.today()
	if params.AsOf != nil {
		asOf = *params.AsOf
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), asOf, c.GetHeader("Accept-Language"))
	if err != nil {
		respondError(c, err, "generate trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(asOf, rows))
}

// getGeneralJournal godoc
// @Summary List the general journal
// @Tags reports
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD), inclusive"
// @Param limit query int false "Limit" default(50)
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListEntriesResponse
// @Security BearerAuth
// @Router /reports/general-journal [get]
func (h *reportingHandler) getGeneralJournal(c *gin.Context) {
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	entries, next, err := h.reportingService.GeneralJournal(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list general journal")
		return
	}
	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: dto.ToLedgerEntryResponses(entries), NextToken: next})
}

// getIncomeStatement godoc
// @Summary Generate income statement
// @Description Revenue and expense accounts over a period, with net income
// @Tags reports
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)" default(first of the month)
// @Param to query string false "To date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.IncomeStatement
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	from, to, ok := h.period(c)
	if !ok {
		return
	}

	report, err := h.reportingService.IncomeStatement(c.Request.Context(), from, to, c.GetHeader("Accept-Language"))
	if err != nil {
		respondError(c, err, "generate income statement")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getTreasuryReport godoc
// @Summary Generate treasury report
// @Tags reports
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)" default(first of the month)
// @Param to query string false "To date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.TreasuryReport
// @Security BearerAuth
// @Router /reports/treasury [get]
func (h *reportingHandler) getTreasuryReport(c *gin.Context) {
	from, to, ok := h.period(c)
	if !ok {
		return
	}

	report, err := h.reportingService.TreasuryReport(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "generate treasury report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBankReport godoc
// @Summary Generate bank account report
// @Tags reports
// @Produce json
// @Param id path string true "Bank account ID"
// @Param from query string false "From date (YYYY-MM-DD)" default(first of the month)
// @Param to query string false "To date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.BankReport
// @Failure 404 {object} map[string]string "Bank account not found"
// @Security BearerAuth
// @Router /reports/bank/{id} [get]
func (h *reportingHandler) getBankReport(c *gin.Context) {
	from, to, ok := h.period(c)
	if !ok {
		return
	}

	report, err := h.reportingService.BankReport(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		respondError(c, err, "generate bank report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getAccountStatement godoc
// @Summary Generate an account statement
// @Description Entries touching one account with a running balance, e.g. customer:<id>
// @Tags reports
// @Produce json
// @Param code path string true "Account code"
// @Param from query string false "From date (YYYY-MM-DD)" default(first of the month)
// @Param to query string false "To date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.AccountStatement
// @Failure 400 {object} map[string]string "Malformed account code"
// @Security BearerAuth
// @Router /reports/statement/{code} [get]
func (h *reportingHandler) getAccountStatement(c *gin.Context) {
	from, to, ok := h.period(c)
	if !ok {
		return
	}

	statement, err := h.reportingService.AccountStatement(c.Request.Context(), c.Param("code"), from, to, c.GetHeader("Accept-Language"))
	if err != nil {
		respondError(c, err, "generate account statement")
		return
	}
	c.JSON(http.StatusOK, statement)
}
