package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"
)

type QuestController struct {
	QuestService *service.QuestService
	UserService  *service.UserService
	AuthService  *service.AuthService
}

func NewQuestController(questService *service.QuestService, userService *service.UserService, authService *service.AuthService) *QuestController {
	return &QuestController{
		QuestService: questService,
		UserService:  userService,
		AuthService:  authService,
	}
}

// List godoc
// @Summary The user's quests
// @Description Instantiates any missing quest templates on first call
// @Tags quests
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Quest}
// @Router /api/quests [get]
func (c *QuestController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quests, err := c.QuestService.List(claims.UserID)
	if err != nil {
		util.StorageError(ctx, err)
		return
	}
	util.Success(ctx, quests)
}

// swagger:model QuestProgressRequest
type QuestProgressRequest struct {
	Progress int `json:"progress" binding:"min=0"`
}

// UpdateProgress godoc
// @Summary Update a quest's progress
// @Description Sets progress, clamped to 100; completion pays the XP reward once
// @Tags quests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quest id"
// @Param body body QuestProgressRequest true "New progress"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Unknown or foreign quest"
// @Router /api/quests/{id} [put]
func (c *QuestController) UpdateProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid quest id")
		return
	}

	var req QuestProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Profile(claims.UserID)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	quest, err := c.QuestService.UpdateProgress(user, uint(id), req.Progress)
	if err != nil {
		if err == util.ErrQuestNotFound {
			util.NotFound(ctx)
		} else {
			util.StorageError(ctx, err)
		}
		return
	}

	token, err := c.AuthService.IssueToken(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"quest": quest, "token": token})
}
