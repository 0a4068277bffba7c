package repository

import (
	"mahad_backend/internal/model"

	"gorm.io/gorm"
)

type ResidentRepository struct {
	DB *gorm.DB
}

func NewResidentRepository(db *gorm.DB) *ResidentRepository {
	return &ResidentRepository{DB: db}
}

// scoped narrows a residents query to the given scope. Residents carry a
// denormalized floor_id, so both staff scopes filter on a single column.
func scoped(db *gorm.DB, scope model.ScopeSet) *gorm.DB {
	switch scope.Role {
	case model.RoleSupervisor:
		return db.Where("floor_id = ?", scope.FloorID)
	case model.RoleAssistant:
		return db.Where("study_group_id = ?", scope.StudyGroupID)
	}
	return db
}

func (r *ResidentRepository) Create(res *model.Resident) error {
	return r.DB.Create(res).Error
}

func (r *ResidentRepository) FindByID(id uint) (*model.Resident, error) {
	var res model.Resident
	err := r.DB.First(&res, id).Error
	return &res, err
}

func (r *ResidentRepository) FindByUserID(userID uint) (*model.Resident, error) {
	var res model.Resident
	err := r.DB.Where("user_id = ?", userID).First(&res).Error
	return &res, err
}

func (r *ResidentRepository) FindInScope(scope model.ScopeSet) ([]model.Resident, error) {
	var residents []model.Resident
	err := scoped(r.DB.Order("id"), scope).Find(&residents).Error
	return residents, err
}

func (r *ResidentRepository) CountInScope(scope model.ScopeSet) (int64, error) {
	var count int64
	err := scoped(r.DB.Model(&model.Resident{}), scope).Count(&count).Error
	return count, err
}

func (r *ResidentRepository) Update(res *model.Resident) error {
	return r.DB.Save(res).Error
}

// Move re-parents a resident. Both the usroh reference and the denormalized
// floor reference change in one UPDATE so they can never disagree.
func (r *ResidentRepository) Move(residentID, studyGroupID, floorID uint) error {
	return r.DB.Model(&model.Resident{}).
		Where("id = ?", residentID).
		Updates(map[string]interface{}{
			"study_group_id": studyGroupID,
			"floor_id":       floorID,
		}).Error
}

// Delete removes the resident and cascades its grade and answer rows.
func (r *ResidentRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resident_id = ?", id).Delete(&model.TahfidzGrade{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resident_id = ?", id).Delete(&model.QuizAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Resident{}, id).Error
	})
}
