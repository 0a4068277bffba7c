package repository

import (
	"mahad_backend/internal/model"

	"gorm.io/gorm"
)

type BuildingRepository struct {
	DB *gorm.DB
}

func NewBuildingRepository(db *gorm.DB) *BuildingRepository {
	return &BuildingRepository{DB: db}
}

func (r *BuildingRepository) Create(b *model.Building) error {
	return r.DB.Create(b).Error
}

func (r *BuildingRepository) FindByID(id uint) (*model.Building, error) {
	var b model.Building
	err := r.DB.Preload("Floors").First(&b, id).Error
	return &b, err
}

func (r *BuildingRepository) FindAll() ([]model.Building, error) {
	var buildings []model.Building
	err := r.DB.Order("id").Find(&buildings).Error
	return buildings, err
}

func (r *BuildingRepository) Update(b *model.Building) error {
	return r.DB.Save(b).Error
}

func (r *BuildingRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Building{}, id).Error
}
