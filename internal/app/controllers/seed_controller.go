package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/hrmslite/internal/app/models/dto"
	"github.com/yigit/hrmslite/internal/app/services"
	"github.com/yigit/hrmslite/internal/middleware"
)

// SeedController installs the demo dataset
type SeedController struct {
	seedService *services.SeedService
}

// NewSeedController creates a new SeedController
func NewSeedController(seedService *services.SeedService) *SeedController {
	return &SeedController{
		seedService: seedService,
	}
}

// Seed populates demo data when the store is empty
// @Summary Seed demo data
// @Description Creates demo employees and three days of attendance history; does nothing when employees already exist
// @Tags system
// @Produce json
// @Success 200 {object} dto.MessageResponse "Seed outcome"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /seed [post]
func (c *SeedController) Seed(ctx *gin.Context) {
	seeded, err := c.seedService.SeedDemoData(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !seeded {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "Store already populated"})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Msg: "Demo data created"})
}
