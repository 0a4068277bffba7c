package controller

import (
	"mahad_backend/internal/service"
	"mahad_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *service.ProgressService
	Scope    *service.ScopeService
}

func NewProgressController(progress *service.ProgressService, scope *service.ScopeService) *ProgressController {
	return &ProgressController{Progress: progress, Scope: scope}
}

// @Summary Per-target completion counts within the caller's scope
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/staff/progress/targets [get]
func (c *ProgressController) TargetProgress(ctx *gin.Context) {
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

	rows, err := c.Progress.TargetProgress(scope)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}
