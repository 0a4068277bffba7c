package controller

import (
	"errors"
	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/service"
	"mahad_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HierarchyController exposes the admin CRUD for the gedung → lantai →
// usroh tree and staff assignments.
type HierarchyController struct {
	Hierarchy    *service.HierarchyService
	BuildingRepo *repository.BuildingRepository
	FloorRepo    *repository.FloorRepository
	GroupRepo    *repository.StudyGroupRepository
	StaffRepo    *repository.StaffRepository
}

func NewHierarchyController(
	hierarchy *service.HierarchyService,
	buildingRepo *repository.BuildingRepository,
	floorRepo *repository.FloorRepository,
	groupRepo *repository.StudyGroupRepository,
	staffRepo *repository.StaffRepository,
) *HierarchyController {
	return &HierarchyController{
		Hierarchy:    hierarchy,
		BuildingRepo: buildingRepo,
		FloorRepo:    floorRepo,
		GroupRepo:    groupRepo,
		StaffRepo:    staffRepo,
	}
}

func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id < 1 {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

type namedRequest struct {
	Name string `json:"name" binding:"required"`
}

// @Summary Create a building
// @Tags hierarchy
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /api/admin/buildings [post]
func (c *HierarchyController) CreateBuilding(ctx *gin.Context) {
	var req namedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	b := &model.Building{Name: req.Name}
	if err := c.BuildingRepo.Create(b); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, b)
}

// @Summary List buildings
// @Tags hierarchy
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/buildings [get]
func (c *HierarchyController) ListBuildings(ctx *gin.Context) {
	buildings, err := c.BuildingRepo.FindAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, buildings)
}

// @Summary Delete a building
// @Tags hierarchy
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "building id"
// @Success 200 {object} util.Response
// @Router /api/admin/buildings/{id} [delete]
func (c *HierarchyController) DeleteBuilding(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.BuildingRepo.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

type createFloorRequest struct {
	Name       string `json:"name" binding:"required"`
	BuildingID uint   `json:"buildingId" binding:"required"`
}

// @Summary Create a floor in a building
// @Tags hierarchy
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /api/admin/floors [post]
func (c *HierarchyController) CreateFloor(ctx *gin.Context) {
	var req createFloorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if _, err := c.BuildingRepo.FindByID(req.BuildingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "building not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	f := &model.Floor{Name: req.Name, BuildingID: req.BuildingID}
	if err := c.FloorRepo.Create(f); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, f)
}

// @Summary List floors of a building
// @Tags hierarchy
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "building id"
// @Success 200 {object} util.Response
// @Router /api/admin/buildings/{id}/floors [get]
func (c *HierarchyController) ListFloors(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	floors, err := c.FloorRepo.FindByBuilding(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, floors)
}

type createGroupRequest struct {
	Name    string `json:"name" binding:"required"`
	FloorID uint   `json:"floorId" binding:"required"`
}

// @Summary Create an usroh on a floor
// @Tags hierarchy
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /api/admin/study-groups [post]
func (c *HierarchyController) CreateStudyGroup(ctx *gin.Context) {
	var req createGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if _, err := c.FloorRepo.FindByID(req.FloorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "floor not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	g := &model.StudyGroup{Name: req.Name, FloorID: req.FloorID}
	if err := c.GroupRepo.Create(g); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, g)
}

// @Summary List usroh of a floor
// @Tags hierarchy
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "floor id"
// @Success 200 {object} util.Response
// @Router /api/admin/floors/{id}/study-groups [get]
func (c *HierarchyController) ListStudyGroups(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	groups, err := c.GroupRepo.FindByFloor(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, groups)
}

type assignSupervisorRequest struct {
	SupervisorID uint `json:"supervisorId" binding:"required"`
	FloorID      uint `json:"floorId" binding:"required"`
}

// @Summary Assign a musyrif to a floor
// @Tags hierarchy
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/supervisors/assign [post]
func (c *HierarchyController) AssignSupervisor(ctx *gin.Context) {
	var req assignSupervisorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Hierarchy.AssignSupervisor(req.SupervisorID, req.FloorID); err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"assigned": true})
}

type assignAssistantRequest struct {
	AssistantID  uint `json:"assistantId" binding:"required"`
	StudyGroupID uint `json:"studyGroupId" binding:"required"`
}

// @Summary Assign an asisten to an usroh
// @Tags hierarchy
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/assistants/assign [post]
func (c *HierarchyController) AssignAssistant(ctx *gin.Context) {
	var req assignAssistantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.Hierarchy.AssignAssistant(req.AssistantID, req.StudyGroupID); err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"assigned": true})
}
