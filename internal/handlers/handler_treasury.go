package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// treasuryHandler serves the cash singleton and the bank account balances.
type treasuryHandler struct {
	treasuryService portssvc.TreasurySvcFacade
}

func newTreasuryHandler(ts portssvc.TreasurySvcFacade) *treasuryHandler {
	return &treasuryHandler{treasuryService: ts}
}

func registerTreasuryRoutes(rg *gin.RouterGroup, ts portssvc.TreasurySvcFacade) {
	h := newTreasuryHandler(ts)

	treasury := rg.Group("/treasury")
	{
		treasury.GET("", h.getTreasury)
		treasury.POST("/opening-balance", h.setOpeningBalance)
		treasury.GET("/transactions", h.listTransactions)
	}

	banks := rg.Group("/bank-accounts")
	{
		banks.POST("", h.createBankAccount)
		banks.GET("", h.listBankAccounts)
		banks.GET("/:id", h.getBankAccount)
	}
}

// getTreasury godoc
// @Summary Get the treasury balance
// @Tags treasury
// @Produce json
// @Success 200 {object} domain.Treasury
// @Security BearerAuth
// @Router /treasury [get]
func (h *treasuryHandler) getTreasury(c *gin.Context) {
	t, err := h.treasuryService.GetTreasury(c.Request.Context())
	if err != nil {
		respondError(c, err, "get treasury")
		return
	}
	c.JSON(http.StatusOK, t)
}

// setOpeningBalance godoc
// @Summary Set the treasury opening balance
// @Description Succeeds once. Later calls fail with 409 and change nothing.
// @Tags treasury
// @Accept json
// @Produce json
// @Param opening body dto.SetOpeningBalanceRequest true "Opening balance"
// @Success 200 {object} domain.Treasury
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Opening balance already set"
// @Security BearerAuth
// @Router /treasury/opening-balance [post]
func (h *treasuryHandler) setOpeningBalance(c *gin.Context) {
	var req dto.SetOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	t, err := h.treasuryService.SetOpeningBalance(c.Request.Context(), req.Amount, userID)
	if err != nil {
		respondError(c, err, "set treasury opening balance")
		return
	}
	c.JSON(http.StatusOK, t)
}

// listTransactions godoc
// @Summary List the cash subledger
// @Tags treasury
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD), inclusive"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.TreasuryTransaction
// @Security BearerAuth
// @Router /treasury/transactions [get]
func (h *treasuryHandler) listTransactions(c *gin.Context) {
	var params dto.DateRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	txns, err := h.treasuryService.ListTreasuryTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list treasury transactions")
		return
	}
	c.JSON(http.StatusOK, txns)
}

// createBankAccount godoc
// @Summary Register a bank account
// @Tags bank-accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateBankAccountRequest true "Bank account"
// @Success 201 {object} domain.BankAccount
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 409 {object} map[string]string "Account number already registered"
// @Security BearerAuth
// @Router /bank-accounts [post]
func (h *treasuryHandler) createBankAccount(c *gin.Context) {
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	account, err := h.treasuryService.CreateBankAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "create bank account")
		return
	}
	c.JSON(http.StatusCreated, account)
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Tags bank-accounts
// @Produce json
// @Success 200 {array} domain.BankAccount
// @Security BearerAuth
// @Router /bank-accounts [get]
func (h *treasuryHandler) listBankAccounts(c *gin.Context) {
	accounts, err := h.treasuryService.ListBankAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "list bank accounts")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// getBankAccount godoc
// @Summary Get a bank account
// @Tags bank-accounts
// @Produce json
// @Param id path string true "Bank account ID"
// @Success 200 {object} domain.BankAccount
// @Failure 404 {object} map[string]string "Bank account not found"
// @Security BearerAuth
// @Router /bank-accounts/{id} [get]
func (h *treasuryHandler) getBankAccount(c *gin.Context) {
	account, err := h.treasuryService.GetBankAccount(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get bank account")
		return
	}
	c.JSON(http.StatusOK, account)
}
