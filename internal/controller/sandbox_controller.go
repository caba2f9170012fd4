package controller

import (
	"github.com/gin-gonic/gin"

	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"
)

type SandboxController struct {
	SandboxService *service.SandboxService
}

func NewSandboxController(sandboxService *service.SandboxService) *SandboxController {
	return &SandboxController{SandboxService: sandboxService}
}

// swagger:model SandboxQueryRequest
type SandboxQueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// Execute godoc
// @Summary Run a read-only query against the sample database
// @Description SELECT and WITH only; queries without LIMIT get LIMIT 100 appended
// @Tags sandbox
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SandboxQueryRequest true "SQL query"
// @Success 200 {object} util.Response{data=service.SandboxResult}
// @Failure 400 {object} util.Response "Rejected statement"
// @Router /api/sql/execute [post]
func (c *SandboxController) Execute(ctx *gin.Context) {
	var req SandboxQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.SandboxService.Execute(req.Query)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, result)
}

// Verify godoc
// @Summary Check a query without running it
// @Tags sandbox
// @Accept json
// @Produce json
// @Param body body SandboxQueryRequest true "SQL query"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Rejected statement"
// @Router /api/sql/verify [post]
func (c *SandboxController) Verify(ctx *gin.Context) {
	var req SandboxQueryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SandboxService.Verify(req.Query); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"valid": true})
}

// Schema godoc
// @Summary Sample database schema
// @Tags sandbox
// @Produce json
// @Success 200 {object} util.Response{data=[]service.TableSchema}
// @Router /api/sql/schema [get]
func (c *SandboxController) Schema(ctx *gin.Context) {
	schemas, err := c.SandboxService.Schema()
	if err != nil {
		util.StorageError(ctx, err)
		return
	}
	util.Success(ctx, schemas)
}

// Sample godoc
// @Summary First rows of one sample table
// @Tags sandbox
// @Produce json
// @Param table path string true "Table name"
// @Success 200 {object} util.Response{data=service.SandboxResult}
// @Failure 404 {object} util.Response
// @Router /api/sql/sample/{table} [get]
func (c *SandboxController) Sample(ctx *gin.Context) {
	result, err := c.SandboxService.Sample(ctx.Param("table"))
	if err != nil {
		if err == util.ErrTableNotFound {
			util.NotFound(ctx)
		} else {
			util.StorageError(ctx, err)
		}
		return
	}
	util.Success(ctx, result)
}
