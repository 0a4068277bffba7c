package controller

import (
	"errors"
	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TargetController struct {
	TargetRepo *repository.TargetRepository
}

func NewTargetController(targetRepo *repository.TargetRepository) *TargetController {
	return &TargetController{TargetRepo: targetRepo}
}

type subTargetInput struct {
	Name    string `json:"name" binding:"required"`
	Passage string `json:"passage"`
}

type createTargetRequest struct {
	Name       string           `json:"name" binding:"required"`
	Passage    string           `json:"passage" binding:"required"`
	SubTargets []subTargetInput `json:"subTargets"`
}

// @Summary Create a memorization target
// @Tags targets
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body createTargetRequest true "target payload"
// @Success 201 {object} util.Response
// @Router /api/admin/targets [post]
func (c *TargetController) Create(ctx *gin.Context) {
	var req createTargetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	target := &model.MemorizationTarget{
		Name:    req.Name,
		Passage: req.Passage,
	}
	for i, st := range req.SubTargets {
		target.SubTargets = append(target.SubTargets, model.SubTarget{
			Name:    st.Name,
			Passage: st.Passage,
			Order:   i + 1,
		})
	}

	if err := c.TargetRepo.Create(target); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, target)
}

// @Summary List memorization targets in curriculum order
// @Tags targets
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/targets [get]
func (c *TargetController) List(ctx *gin.Context) {
	targets, err := c.TargetRepo.FindAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, targets)
}

// @Summary Target detail with ordered sub-targets
// @Tags targets
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "target id"
// @Success 200 {object} util.Response
// @Router /api/targets/{id} [get]
func (c *TargetController) Get(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	target, err := c.TargetRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, util.ErrUnknownTarget.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, target)
}

// @Summary Delete a memorization target
// @Tags targets
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "target id"
// @Success 200 {object} util.Response
// @Router /api/admin/targets/{id} [delete]
func (c *TargetController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.TargetRepo.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}
