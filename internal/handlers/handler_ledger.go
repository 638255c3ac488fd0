package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/customs_clearance_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/SscSPs/customs_clearance_ledger/internal/i18n"
	"github.com/SscSPs/customs_clearance_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests against the journal.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ls)

	ledger := rg.Group("/ledger")
	{
		ledger.POST("/entries", h.postEntry)
		ledger.GET("/accounts/:code/balance", h.getAccountBalance)
		ledger.GET("/accounts/:code/entries", h.listAccountEntries)
	}
}

// postEntry godoc
// @Summary Post a standalone ledger entry
// @Description Appends one double-entry line. Treasury and bank accounts are only posted through vouchers.
// @Tags ledger
// @Accept json
// @Produce json
// @Param entry body dto.PostEntryRequest true "Entry"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /ledger/entries [post]
func (h *ledgerHandler) postEntry(c *gin.Context) {
	var req dto.PostEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	entry, err := h.ledgerService.Post(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "post ledger entry")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Ledger entry posted", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// getAccountBalance godoc
// @Summary Get the journal balance of an account
// @Description Sum of debits minus sum of credits for an account code such as customer:<id> or treasury
// @Tags ledger
// @Produce json
// @Param code path string true "Account code"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 400 {object} map[string]string "Malformed account code"
// @Security BearerAuth
// @Router /ledger/accounts/{code}/balance [get]
func (h *ledgerHandler) getAccountBalance(c *gin.Context) {
	code := c.Param("code")
	balance, err := h.ledgerService.AccountBalance(c.Request.Context(), code)
	if err != nil {
		respondError(c, err, "get account balance")
		return
	}

	name := code
	if ref, err := domain.ParseAccountRef(code); err == nil {
		name = i18n.AccountLabel(i18n.Printer(c.GetHeader("Accept-Language")), ref, "")
	}
	c.JSON(http.StatusOK, dto.AccountBalanceResponse{Account: code, Name: name, Balance: balance})
}

// listAccountEntries godoc
// @Summary List ledger entries touching an account
// @Tags ledger
// @Produce json
// @Param code path string true "Account code"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD), inclusive"
// @Param limit query int false "Limit" default(50)
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListEntriesResponse
// @Security BearerAuth
// @Router /ledger/accounts/{code}/entries [get]
func (h *ledgerHandler) listAccountEntries(c *gin.Context) {
	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	entries, next, err := h.ledgerService.AccountEntries(c.Request.Context(), c.Param("code"), params)
	if err != nil {
		respondError(c, err, "list account entries")
		return
	}
	c.JSON(http.StatusOK, dto.ListEntriesResponse{Entries: dto.ToLedgerEntryResponses(entries), NextToken: next})
}
