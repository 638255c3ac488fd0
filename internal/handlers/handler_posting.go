package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// postingHandler journals documents owned by the invoicing and shipping modules.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
}

func registerPostingRoutes(rg *gin.RouterGroup, ps portssvc.PostingSvcFacade) {
	h := &postingHandler{postingService: ps}

	postings := rg.Group("/postings")
	{
		postings.POST("/invoices", h.postInvoice)
		postings.POST("/trips", h.postTrip)
		postings.POST("/fees", h.postFee)
	}
}

// postInvoice godoc
// @Summary Journal an invoice
// @Tags postings
// @Accept json
// @Produce json
// @Param invoice body dto.PostInvoiceRequest true "Invoice"
// @Success 201 {object} dto.InvoicePostingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Customer not found"
// @Security BearerAuth
// @Router /postings/invoices [post]
func (h *postingHandler) postInvoice(c *gin.Context) {
	var req dto.PostInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	code, entry, err := h.postingService.PostInvoice(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "post invoice")
		return
	}
	c.JSON(http.StatusCreated, dto.InvoicePostingResponse{InvoiceCode: code, Entry: dto.ToLedgerEntryResponse(entry)})
}

// postTrip godoc
// @Summary Journal a shipping trip cost
// @Tags postings
// @Accept json
// @Produce json
// @Param trip body dto.PostTripRequest true "Trip"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "Agent not found"
// @Security BearerAuth
// @Router /postings/trips [post]
func (h *postingHandler) postTrip(c *gin.Context) {
	var req dto.PostTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	entry, err := h.postingService.PostTrip(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "post trip")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// postFee godoc
// @Summary Journal an additional agent fee
// @Tags postings
// @Accept json
// @Produce json
// @Param fee body dto.PostAdditionalFeeRequest true "Fee"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 404 {object} map[string]string "Agent or customer not found"
// @Security BearerAuth
// @Router /postings/fees [post]
func (h *postingHandler) postFee(c *gin.Context) {
	var req dto.PostAdditionalFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	entry, err := h.postingService.PostAdditionalFee(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "post additional fee")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}
