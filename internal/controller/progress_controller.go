package controller

import (
	"github.com/gin-gonic/gin"

	"learnpath_backend/internal/adaptive"
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"
)

type ProgressController struct {
	ProgressService *service.ProgressService
	UserService     *service.UserService
}

func NewProgressController(progressService *service.ProgressService, userService *service.UserService) *ProgressController {
	return &ProgressController{
		ProgressService: progressService,
		UserService:     userService,
	}
}

// Placement godoc
// @Summary Placement question bank
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/progress/theta [get]
func (c *ProgressController) Placement(ctx *gin.Context) {
	util.Success(ctx, c.ProgressService.PlacementBank())
}

// SubmitPlacement godoc
// @Summary Score the placement test
// @Description Correct answers add 1.0 to theta, wrong ones subtract 0.5; the score seeds the unlocked node set
// @Tags progress
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body []adaptive.PlacementAnswer true "Chosen options"
// @Success 200 {object} util.Response{data=service.PlacementOutcome}
// @Failure 400 {object} util.Response
// @Router /api/progress/theta [post]
func (c *ProgressController) SubmitPlacement(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Answers []adaptive.PlacementAnswer `json:"answers" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Profile(claims.UserID)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	outcome, err := c.ProgressService.SubmitPlacement(user, req.Answers)
	if err != nil {
		util.StorageError(ctx, err)
		return
	}
	util.Success(ctx, outcome)
}

// CompleteNode godoc
// @Summary Complete a curriculum node
// @Description Marks the node done and unlocks its direct dependents
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Param nodeId path string true "Curriculum node id"
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Failure 404 {object} util.Response "Unknown node"
// @Router /api/progress/complete/{nodeId} [post]
func (c *ProgressController) CompleteNode(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.Profile(claims.UserID)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.CompleteNode(ctx.Request.Context(), user, ctx.Param("nodeId"))
	if err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx)
		} else {
			util.StorageError(ctx, err)
		}
		return
	}
	util.Success(ctx, progress)
}

// Get godoc
// @Summary Current unlock state
// @Tags progress
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.UserProgress}
// @Router /api/progress [get]
func (c *ProgressController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.Get(claims.UserID)
	if err != nil {
		util.StorageError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
