package repository

import (
	"mahad_backend/internal/model"

	"gorm.io/gorm"
)

type StudyGroupRepository struct {
	DB *gorm.DB
}

func NewStudyGroupRepository(db *gorm.DB) *StudyGroupRepository {
	return &StudyGroupRepository{DB: db}
}

func (r *StudyGroupRepository) Create(g *model.StudyGroup) error {
	return r.DB.Create(g).Error
}

func (r *StudyGroupRepository) FindByID(id uint) (*model.StudyGroup, error) {
	var g model.StudyGroup
	err := r.DB.First(&g, id).Error
	return &g, err
}

func (r *StudyGroupRepository) FindByFloor(floorID uint) ([]model.StudyGroup, error) {
	var groups []model.StudyGroup
	err := r.DB.Where("floor_id = ?", floorID).Order("id").Find(&groups).Error
	return groups, err
}

func (r *StudyGroupRepository) Update(g *model.StudyGroup) error {
	return r.DB.Save(g).Error
}

func (r *StudyGroupRepository) Delete(id uint) error {
	return r.DB.Delete(&model.StudyGroup{}, id).Error
}
