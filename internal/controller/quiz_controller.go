package controller

import (
	"errors"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/service"
	"mahad_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type QuizController struct {
	Quiz         *service.QuizService
	ResidentRepo *repository.ResidentRepository
}

func NewQuizController(quiz *service.QuizService, residentRepo *repository.ResidentRepository) *QuizController {
	return &QuizController{Quiz: quiz, ResidentRepo: residentRepo}
}

type createQuizRequest struct {
	Title     string                      `json:"title" binding:"required"`
	Material  string                      `json:"material"`
	Questions []service.QuizQuestionInput `json:"questions" binding:"required,min=1,dive"`
}

// @Summary Create a quiz assignment
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body createQuizRequest true "quiz payload"
// @Success 201 {object} util.Response
// @Router /api/staff/quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req createQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment, err := c.Quiz.CreateAssignment(req.Title, req.Material, claims.UserID, req.Questions)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Created(ctx, assignment)
}

// @Summary Publish a quiz assignment to residents
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response
// @Router /api/staff/quizzes/{id}/publish [post]
func (c *QuizController) Publish(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.Quiz.Publish(id); err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"published": true})
}

// @Summary List published quizzes
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/quizzes [get]
func (c *QuizController) ListPublished(ctx *gin.Context) {
	assignments, err := c.Quiz.ListPublished()
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// @Summary Quiz detail with questions
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	assignment, err := c.Quiz.GetAssignment(id)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, assignment)
}

// @Summary Submit quiz answers as the logged-in resident
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "assignment id"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var submission service.QuizSubmission
	if err := ctx.ShouldBindJSON(&submission); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	// Residents answer as themselves; the resident row is looked up from the
	// authenticated user, never taken from the request body.
	resident, err := c.ResidentRepo.FindByUserID(claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, util.ErrUnknownResident.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	result, err := c.Quiz.SubmitAnswers(resident.ID, id, submission)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
