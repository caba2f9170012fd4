package controller

import (
	"github.com/gin-gonic/gin"

	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"
)

type TutorController struct {
	TutorService *service.TutorService
}

func NewTutorController(tutorService *service.TutorService) *TutorController {
	return &TutorController{TutorService: tutorService}
}

// swagger:model TutorAskRequest
type TutorAskRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Ask godoc
// @Summary Ask the AI tutor
// @Description One attempt against the configured provider; provider errors return a fixed fallback answer with status 200
// @Tags tutor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TutorAskRequest true "Prompt"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/tutor/ask [post]
func (c *TutorController) Ask(ctx *gin.Context) {
	var req TutorAskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	answer := c.TutorService.Ask(ctx.Request.Context(), req.Prompt)
	util.Success(ctx, gin.H{"answer": answer})
}

// swagger:model TutorFeedbackRequest
type TutorFeedbackRequest struct {
	TopicLabel string `json:"topicLabel" binding:"required"`
	Score      int    `json:"score"`
	Total      int    `json:"total" binding:"required"`
}

// Feedback godoc
// @Summary Personalized quiz feedback
// @Tags tutor
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body TutorFeedbackRequest true "Quiz outcome"
// @Success 200 {object} util.Response
// @Router /api/tutor/feedback [post]
func (c *TutorController) Feedback(ctx *gin.Context) {
	var req TutorFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	feedback := c.TutorService.Feedback(ctx.Request.Context(), req.TopicLabel, req.Score, req.Total)
	util.Success(ctx, gin.H{"feedback": feedback})
}
