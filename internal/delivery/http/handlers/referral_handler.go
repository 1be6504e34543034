package handlers

import (
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/mappers"
	"github.com/LavaJover/shvark-gig-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type ReferralHandler struct {
	uc usecase.ReferralUsecase
}

func NewReferralHandler(uc usecase.ReferralUsecase) *ReferralHandler {
	return &ReferralHandler{uc: uc}
}

func (h *ReferralHandler) List(c *gin.Context) {
	referrals, err := h.uc.GetUserReferrals(c.Request.Context(), caller(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToReferralList(referrals))
}

func (h *ReferralHandler) Stats(c *gin.Context) {
	stats, err := h.uc.GetReferralStats(c.Request.Context(), caller(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToReferralStatsResponse(stats))
}

func (h *ReferralHandler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	top, err := h.uc.GetTopReferrers(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToTopReferrers(top))
}
