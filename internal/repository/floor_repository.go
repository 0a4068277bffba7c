package repository

import (
	"mahad_backend/internal/model"

	"gorm.io/gorm"
)

type FloorRepository struct {
	DB *gorm.DB
}

func NewFloorRepository(db *gorm.DB) *FloorRepository {
	return &FloorRepository{DB: db}
}

func (r *FloorRepository) Create(f *model.Floor) error {
	return r.DB.Create(f).Error
}

func (r *FloorRepository) FindByID(id uint) (*model.Floor, error) {
	var f model.Floor
	err := r.DB.Preload("StudyGroups").First(&f, id).Error
	return &f, err
}

func (r *FloorRepository) FindByBuilding(buildingID uint) ([]model.Floor, error) {
	var floors []model.Floor
	err := r.DB.Where("building_id = ?", buildingID).Order("id").Find(&floors).Error
	return floors, err
}

func (r *FloorRepository) Update(f *model.Floor) error {
	return r.DB.Save(f).Error
}

func (r *FloorRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Floor{}, id).Error
}
