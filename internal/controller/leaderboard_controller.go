package controller

import (
	"mahad_backend/internal/model"
	"mahad_backend/internal/service"
	"mahad_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	Leaderboard *service.LeaderboardService
	Scope       *service.ScopeService
}

func NewLeaderboardController(leaderboard *service.LeaderboardService, scope *service.ScopeService) *LeaderboardController {
	return &LeaderboardController{Leaderboard: leaderboard, Scope: scope}
}

// @Summary Ranked residents within the caller's scope
// @Tags leaderboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/staff/leaderboard [get]
func (c *LeaderboardController) StaffLeaderboard(ctx *gin.Context) {
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

	entries, err := c.Leaderboard.Leaderboard(ctx.Request.Context(), scope)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary Ma'had-wide leaderboard, visible to every logged-in resident
// @Tags leaderboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/leaderboard [get]
func (c *LeaderboardController) GlobalLeaderboard(ctx *gin.Context) {
	entries, err := c.Leaderboard.Leaderboard(ctx.Request.Context(), model.AdminScope())
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
