package controller

import (
	"mahad_backend/internal/model"
	"mahad_backend/internal/service"
	"mahad_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GradeController struct {
	Grades *service.GradeService
	Scope  *service.ScopeService
}

func NewGradeController(grades *service.GradeService, scope *service.ScopeService) *GradeController {
	return &GradeController{Grades: grades, Scope: scope}
}

type upsertGradeRequest struct {
	ResidentID  uint               `json:"residentId" binding:"required"`
	TargetID    uint               `json:"targetId" binding:"required"`
	Status      model.GradeStatus  `json:"status" binding:"required,oneof=complete incomplete needs_revision"`
	LetterGrade *model.LetterGrade `json:"letterGrade" binding:"omitempty,oneof=A B C D E"`
}

// @Summary Record a tahfidz grade for a resident and target
// @Tags grades
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body upsertGradeRequest true "grade payload"
// @Success 200 {object} util.Response
// @Router /api/staff/grades [put]
func (c *GradeController) Upsert(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req upsertGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	scope, err := c.Scope.Resolve(claims)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	grade, err := c.Grades.Upsert(req.ResidentID, req.TargetID, req.Status, req.LetterGrade, claims.UserID, scope)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, grade)
}

// @Summary A resident's grade sheet
// @Tags grades
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "resident id"
// @Success 200 {object} util.Response
// @Router /api/staff/residents/{id}/grades [get]
func (c *GradeController) GradesForResident(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	scope, err := c.Scope.Resolve(claims)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	grades, err := c.Grades.GradesForResident(id, scope)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, grades)
}

// @Summary All grade rows within the caller's scope
// @Tags grades
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/staff/grades [get]
func (c *GradeController) GradesInScope(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	scope, err := c.Scope.Resolve(claims)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	grades, err := c.Grades.GradesInScope(scope)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, grades)
}

type importGradesRequest struct {
	Rows []service.GradeImportRow `json:"rows" binding:"required,min=1"`
}

// @Summary Bulk-import validated grade rows
// @Tags grades
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body importGradesRequest true "pre-validated rows"
// @Success 200 {object} util.Response
// @Router /api/staff/grades/import [post]
func (c *GradeController) Import(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req importGradesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	scope, err := c.Scope.Resolve(claims)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	result, err := c.Grades.Import(req.Rows, claims.UserID, scope)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
