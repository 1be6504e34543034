package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/mappers"
	"github.com/LavaJover/shvark-gig-service/internal/usecase"
	paymentdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/payment"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	uc usecase.PaymentUsecase
}

func NewPaymentHandler(uc usecase.PaymentUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	out, err := h.uc.CreateOrder(c.Request.Context(), &paymentdto.CreateOrderInput{
		UserID:    caller(c).UserID,
		PackageID: req.PackageID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mappers.ToCreateOrderResponse(out))
}

func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	out, err := h.uc.ConfirmPayment(c.Request.Context(), &paymentdto.ConfirmPaymentInput{
		UserID:    caller(c).UserID,
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToConfirmPaymentResponse(out))
}
