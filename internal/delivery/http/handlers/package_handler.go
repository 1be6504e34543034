package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/dto/request"
	"github.com/LavaJover/shvark-gig-service/internal/delivery/http/mappers"
	"github.com/LavaJover/shvark-gig-service/internal/usecase"
	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	uc usecase.PackageUsecase
}

func NewPackageHandler(uc usecase.PackageUsecase) *PackageHandler {
	return &PackageHandler{uc: uc}
}

// ListActive is the public catalog, cheapest first.
func (h *PackageHandler) ListActive(c *gin.Context) {
	pkgs, err := h.uc.ListActivePackages(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToPackageList(pkgs))
}

func (h *PackageHandler) ListAll(c *gin.Context) {
	pkgs, err := h.uc.ListPackages(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToPackageList(pkgs))
}

func (h *PackageHandler) Create(c *gin.Context) {
	var req request.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	pkg, err := h.uc.CreatePackage(c.Request.Context(), mappers.ToPackageInput(&req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mappers.ToPackageResponse(pkg))
}

func (h *PackageHandler) Update(c *gin.Context) {
	var req request.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	pkg, err := h.uc.UpdatePackage(c.Request.Context(), c.Param("id"), mappers.ToPackageInput(&req))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, mappers.ToPackageResponse(pkg))
}

func (h *PackageHandler) Delete(c *gin.Context) {
	if err := h.uc.DeletePackage(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
