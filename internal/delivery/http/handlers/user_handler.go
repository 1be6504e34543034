package handlers

import (
	"net/http"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/mappers"
	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/LavaJover/shvark-gig-service/internal/usecase"
	userdto "github.com/LavaJover/shvark-gig-service/internal/usecase/dto/user"
	"github.com/gin-gonic/gin"
)

type TokenIssuer interface {
	IssueToken(identity domain.Identity, now time.Time) (string, error)
}

type UserHandler struct {
	users  usecase.UserUsecase
	quota  usecase.QuotaUsecase
	tokens TokenIssuer
}

func NewUserHandler(users usecase.UserUsecase, quota usecase.QuotaUsecase, tokens TokenIssuer) *UserHandler {
	return &UserHandler{users: users, quota: quota, tokens: tokens}
}

// Register signs up a vendor and returns a token for the new account.
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	user, err := h.users.RegisterVendor(c.Request.Context(), &userdto.RegisterVendorInput{
		Name:         req.Name,
		Email:        req.Email,
		ReferralCode: req.ReferralCode,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	token, err := h.tokens.IssueToken(domain.Identity{UserID: user.ID, Role: user.Role}, time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.RegisterResponse{
		User:  mappers.ToUserResponse(user),
		Token: token,
	})
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.users.GetUser(c.Request.Context(), caller(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToUserResponse(user))
}

func (h *UserHandler) Quota(c *gin.Context) {
	status, err := h.quota.GetQuotaStatus(c.Request.Context(), caller(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToQuotaResponse(status))
}

// Grants lists every package grant the caller has held, newest first.
func (h *UserHandler) Grants(c *gin.Context) {
	grants, err := h.quota.ListGrants(c.Request.Context(), caller(c).UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	out := make([]response.GrantResponse, len(grants))
	for i, g := range grants {
		out[i] = mappers.ToGrantResponse(g)
	}
	c.JSON(http.StatusOK, out)
}
