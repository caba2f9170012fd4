package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"
)

type AuthController struct {
	AuthService *service.AuthService
	QuizService *service.QuizService
	VarkService *service.VarkService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, quizService *service.QuizService, varkService *service.VarkService, userService *service.UserService) *AuthController {
	return &AuthController{
		AuthService: authService,
		QuizService: quizService,
		VarkService: varkService,
		UserService: userService,
	}
}

// swagger:model SignupRequest
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary Create an account
// @Description Registers a new learner and returns a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Signup payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response "Invalid payload or weak password"
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmailRegistered):
			util.Error(ctx, http.StatusConflict, err.Error())
		case errors.Is(err, util.ErrPasswordTooShort):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"user": user, "token": token})
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login payload"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response "Invalid credentials"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Error(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	util.Success(ctx, gin.H{"user": user, "token": token})
}

// Verify godoc
// @Summary Verify the current token
// @Description Re-reads the account and reissues a token with fresh claims
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/auth/verify [get]
func (c *AuthController) Verify(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, token, err := c.AuthService.Verify(claims.UserID)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	util.Success(ctx, gin.H{"user": user, "token": token})
}

// CompleteQuiz godoc
// @Summary Record a finished quiz
// @Description Upserts the attempt, grants topic XP once, records missed questions
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.QuizCompletion true "Quiz completion"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/auth/complete-quiz [post]
func (c *AuthController) CompleteQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.QuizCompletion
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Profile(claims.UserID)
	if err != nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.QuizService.CompleteQuiz(user, &req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	token, err := c.AuthService.IssueToken(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"result": result, "token": token})
}

// SubmitVark godoc
// @Summary Submit the learning style questionnaire
// @Description Classifies the 16 answers and updates the profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body map[string]string true "Answers q1..q16, letters a-d"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Missing or invalid answer"
// @Router /api/auth/vark-submit [post]
func (c *AuthController) SubmitVark(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Responses map[string]string `json:"responses" binding:"required"`
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

	result, err := c.VarkService.Submit(user, req.Responses)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, err := c.AuthService.IssueToken(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token":         token,
		"scores":        result.Scores,
		"learningStyle": result.LearningStyle,
	})
}

// Leaderboard godoc
// @Summary Top learners by XP
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/auth/leaderboard [get]
func (c *AuthController) Leaderboard(ctx *gin.Context) {
	entries, err := c.UserService.Leaderboard(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
