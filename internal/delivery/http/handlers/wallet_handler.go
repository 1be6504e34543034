package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/mappers"
	"github.com/LavaJover/shvark-gig-service/internal/usecase"
	walletdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/wallet"
	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	uc usecase.WalletUsecase
}

func NewWalletHandler(uc usecase.WalletUsecase) *WalletHandler {
	return &WalletHandler{uc: uc}
}

func (h *WalletHandler) GetWallet(c *gin.Context) {
	out, err := h.uc.GetWallet(c.Request.Context(), caller(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToWalletResponse(out))
}

func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	var req request.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	w, err := h.uc.RequestWithdrawal(c.Request.Context(), &walletdto.WithdrawalInput{
		UserID: caller(c).UserID,
		Amount: req.Amount,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mappers.ToWithdrawalResponse(w))
}

func (h *WalletHandler) ApproveWithdrawal(c *gin.Context) {
	if err := h.uc.ApproveWithdrawal(c.Request.Context(), c.Param("id"), caller(c).UserID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WalletHandler) RejectWithdrawal(c *gin.Context) {
	var req request.RejectWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	if err := h.uc.RejectWithdrawal(c.Request.Context(), c.Param("id"), caller(c).UserID, req.Reason); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WalletHandler) VerifyBalance(c *gin.Context) {
	userID := c.Param("id")
	ok, err := h.uc.VerifyBalance(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.WalletCheckResponse{UserID: userID, Consistent: ok})
}
