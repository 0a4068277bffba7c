package repository

import (
	"mahad_backend/internal/model"

	"gorm.io/gorm"
)

type TargetRepository struct {
	DB *gorm.DB
}

func NewTargetRepository(db *gorm.DB) *TargetRepository {
	return &TargetRepository{DB: db}
}

func (r *TargetRepository) Create(t *model.MemorizationTarget) error {
	return r.DB.Create(t).Error
}

func (r *TargetRepository) FindByID(id uint) (*model.MemorizationTarget, error) {
	var t model.MemorizationTarget
	err := r.DB.Preload("SubTargets", func(db *gorm.DB) *gorm.DB {
		return db.Order("sub_targets.`order`")
	}).First(&t, id).Error
	return &t, err
}

// FindAll returns targets in creation (id) order so aggregation output is
// stable across calls.
func (r *TargetRepository) FindAll() ([]model.MemorizationTarget, error) {
	var targets []model.MemorizationTarget
	err := r.DB.Order("id").Find(&targets).Error
	return targets, err
}

func (r *TargetRepository) Update(t *model.MemorizationTarget) error {
	return r.DB.Save(t).Error
}

func (r *TargetRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("target_id = ?", id).Delete(&model.SubTarget{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.MemorizationTarget{}, id).Error
	})
}
