package controller

import (
	"fmt"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/service"
	"mahad_backend/internal/util"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type ResidentController struct {
	Hierarchy    *service.HierarchyService
	Scope        *service.ScopeService
	ResidentRepo *repository.ResidentRepository
	Storage      *service.StorageService
}

func NewResidentController(
	hierarchy *service.HierarchyService,
	scope *service.ScopeService,
	residentRepo *repository.ResidentRepository,
	storage *service.StorageService,
) *ResidentController {
	return &ResidentController{
		Hierarchy:    hierarchy,
		Scope:        scope,
		ResidentRepo: residentRepo,
		Storage:      storage,
	}
}

type createResidentRequest struct {
	Name             string `json:"name" binding:"required"`
	EnrollmentNumber string `json:"enrollmentNumber" binding:"required"`
	StudyGroupID     uint   `json:"studyGroupId" binding:"required"`
	UserID           *uint  `json:"userId"`
}

// @Summary Enroll a mahasantri into an usroh
// @Tags residents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /api/admin/residents [post]
func (c *ResidentController) Create(ctx *gin.Context) {
	var req createResidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resident, err := c.Hierarchy.CreateResident(req.Name, req.EnrollmentNumber, req.StudyGroupID, req.UserID)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Created(ctx, resident)
}

// @Summary List residents visible to the caller
// @Tags residents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/residents [get]
func (c *ResidentController) List(ctx *gin.Context) {
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

	residents, err := c.ResidentRepo.FindInScope(scope)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, residents)
}

type moveResidentRequest struct {
	StudyGroupID uint `json:"studyGroupId" binding:"required"`
}

// @Summary Move a mahasantri to another usroh
// @Tags residents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "resident id"
// @Success 200 {object} util.Response
// @Router /api/admin/residents/{id}/move [post]
func (c *ResidentController) Move(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req moveResidentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resident, err := c.Hierarchy.MoveResident(id, req.StudyGroupID)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, resident)
}

// @Summary Remove a mahasantri and their grade history
// @Tags residents
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "resident id"
// @Success 200 {object} util.Response
// @Router /api/admin/residents/{id} [delete]
func (c *ResidentController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.ResidentRepo.Delete(id); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": true})
}

// @Summary Upload a resident photo
// @Tags residents
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "resident id"
// @Success 200 {object} util.Response
// @Router /api/admin/residents/{id}/photo [post]
func (c *ResidentController) UploadPhoto(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	resident, err := c.ResidentRepo.FindByID(id)
	if err != nil {
		util.NotFound(ctx, util.ErrUnknownResident.Error())
		return
	}

	file, err := ctx.FormFile("photo")
	if err != nil {
		util.BadRequest(ctx, "photo file required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, e := range util.AllowedPhotoExtensions {
		if ext == e {
			allowed = true
			break
		}
	}
	if !allowed {
		util.BadRequest(ctx, "unsupported photo format")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("residents/%d_%d%s", resident.ID, time.Now().Unix(), ext)
	url, err := c.Storage.Upload(ctx.Request.Context(), filename, src, file.Size, util.MimeImage+strings.TrimPrefix(ext, "."))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	resident.Photo = url
	if err := c.ResidentRepo.Update(resident); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"photo": url})
}
