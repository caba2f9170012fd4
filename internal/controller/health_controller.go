package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
)

type HealthController struct {
	DB        *gorm.DB
	GraphRepo *repository.GraphCurriculumRepository
}

func NewHealthController(db *gorm.DB, graphRepo *repository.GraphCurriculumRepository) *HealthController {
	return &HealthController{DB: db, GraphRepo: graphRepo}
}

// HealthCheck godoc
// @Summary Service health
// @Description Reports database and graph mirror status
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components := gin.H{}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil || sqlDB.Ping() != nil {
			util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		components["database"] = "ok"
	} else {
		components["database"] = "memory"
	}

	if c.GraphRepo.Enabled() {
		if ids, err := c.GraphRepo.ListNodeIDs(ctx.Request.Context()); err == nil {
			components["graph"] = gin.H{"status": "ok", "nodes": len(ids)}
		} else {
			components["graph"] = gin.H{"status": "degraded"}
		}
	} else {
		components["graph"] = "disabled"
	}

	util.Success(ctx, gin.H{
		"status":     "ok",
		"components": components,
	})
}
