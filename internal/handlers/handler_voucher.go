package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/customs_clearance_ledger/internal/core/ports/services"
	"github.com/SscSPs/customs_clearance_ledger/internal/dto"
	"github.com/SscSPs/customs_clearance_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests related to receipt and payment vouchers.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{voucherService: vs}
}

// registerVoucherRoutes registers routes related to vouchers
func registerVoucherRoutes(rg *gin.RouterGroup, vs portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(vs)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:id", h.getVoucher)
		vouchers.PATCH("/:id", h.updateVoucher)
		vouchers.DELETE("/:id", h.removeVoucher)
	}
}

// createVoucher godoc
// @Summary Create a voucher
// @Description Creates a receipt or payment voucher, moves the treasury or bank balance and posts one ledger entry
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucher body dto.CreateVoucherRequest true "Voucher details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Referenced party, category or bank account not found"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Failure 500 {object} map[string]string "Internal server error"
// @Security BearerAuth
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "create voucher")
		return
	}

	logger.Info("Voucher created successfully", slog.String("voucher_id", voucher.VoucherID), slog.String("code", voucher.Code))
	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers
// @Tags vouchers
// @Produce json
// @Param type query string false "RECEIPT or PAYMENT"
// @Param method query string false "CASH or BANK_TRANSFER"
// @Param bankAccountID query string false "Bank account ID"
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD), inclusive"
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	vouchers, err := h.voucherService.ListVouchers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list vouchers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListVoucherResponse(vouchers))
}

// getVoucher godoc
// @Summary Get a voucher
// @Tags vouchers
// @Produce json
// @Param id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} map[string]string "Voucher not found"
// @Security BearerAuth
// @Router /vouchers/{id} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	voucher, err := h.voucherService.GetVoucher(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// updateVoucher godoc
// @Summary Update a voucher
// @Description Rewrites editable fields. Balances and the ledger keep the effect posted at creation.
// @Tags vouchers
// @Accept json
// @Produce json
// @Param id path string true "Voucher ID"
// @Param voucher body dto.UpdateVoucherRequest true "Fields to change"
// @Success 200 {object} dto.VoucherResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Security BearerAuth
// @Router /vouchers/{id} [patch]
func (h *voucherHandler) updateVoucher(c *gin.Context) {
	var req dto.UpdateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := actorID(c)
	if !ok {
		return
	}

	voucher, err := h.voucherService.UpdateVoucher(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "update voucher")
		return
	}
	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// removeVoucher godoc
// @Summary Remove a voucher
// @Description Reverses the balance effect and deletes the voucher. The ledger entry stays.
// @Tags vouchers
// @Param id path string true "Voucher ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Voucher not found"
// @Security BearerAuth
// @Router /vouchers/{id} [delete]
func (h *voucherHandler) removeVoucher(c *gin.Context) {
	userID, ok := actorID(c)
	if !ok {
		return
	}
	voucherID := c.Param("id")

	if err := h.voucherService.RemoveVoucher(c.Request.Context(), voucherID, userID); err != nil {
		respondError(c, err, "remove voucher")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Voucher removed successfully", slog.String("voucher_id", voucherID))
	c.Status(http.StatusNoContent)
}
