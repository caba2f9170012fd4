package controller

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"
)

type UserController struct {
	UserService    *service.UserService
	ContentService *service.ContentService
	Storage        service.StorageProvider
}

func NewUserController(userService *service.UserService, contentService *service.ContentService, storage service.StorageProvider) *UserController {
	return &UserController{
		UserService:    userService,
		ContentService: contentService,
		Storage:        storage,
	}
}

// Profile godoc
// @Summary Current user's profile
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/user/profile [get]
func (c *UserController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.Profile(claims.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user)
}

// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Description Empty fields keep their current value
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req.Name, req.Avatar)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, user)
}

// UploadAvatar godoc
// @Summary Upload an avatar image
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Image file"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/user/avatar/upload [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, header, err := ctx.Request.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "avatar file is required")
		return
	}
	defer file.Close()

	// Unique name per upload so stale CDN/browser caches never serve the
	// old image.
	filename := fmt.Sprintf("avatars/%d-%s%s", claims.UserID, model.GenerateUUID(), filepath.Ext(header.Filename))
	url, err := c.Storage.Upload(ctx.Request.Context(), filename, file, header.Size,
		header.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if _, err := c.UserService.UpdateProfile(claims.UserID, "", url); err != nil {
		util.StorageError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"avatar": url})
}

// Content godoc
// @Summary Content catalogue
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param type query string false "Filter by content type"
// @Success 200 {object} util.Response
// @Router /api/user/content [get]
func (c *UserController) Content(ctx *gin.Context) {
	items, err := c.ContentService.List(ctx.Query("type"))
	if err != nil {
		util.StorageError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// PrioritizedContent godoc
// @Summary Content split by the user's learning style
// @Description Recommended items first, ordered by style preference
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/user/content-prioritized [get]
func (c *UserController) PrioritizedContent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	style := claims.LearningStyle
	if style == "" {
		style = model.Multimodal
	}

	partition, err := c.ContentService.Prioritized(ctx.Request.Context(), style)
	if err != nil {
		util.StorageError(ctx, err)
		return
	}
	util.Success(ctx, partition)
}

// Insights godoc
// @Summary Study record aggregates
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.Insights}
// @Router /api/user/insights [get]
func (c *UserController) Insights(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.Profile(claims.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	insights, err := c.UserService.Insights(user)
	if err != nil {
		util.StorageError(ctx, err)
		return
	}
	util.Success(ctx, insights)
}

// QuestionStats godoc
// @Summary Frequently missed questions
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/user/question-stats [get]
func (c *UserController) QuestionStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.UserService.QuestionStats(claims.Email)
	if err != nil {
		util.StorageError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// WeakAreas godoc
// @Summary Weak areas for review
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/user/weak-areas [get]
func (c *UserController) WeakAreas(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	areas, err := c.UserService.WeakAreas(claims.Email)
	if err != nil {
		util.StorageError(ctx, err)
		return
	}
	util.Success(ctx, areas)
}

// ReviewWeakArea godoc
// @Summary Mark a weak area reviewed
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param id path int true "Weak area id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/user/weak-areas/{id}/review [post]
func (c *UserController) ReviewWeakArea(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid weak area id")
		return
	}

	area, err := c.UserService.ReviewWeakArea(claims.Email, uint(id))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, area)
}
