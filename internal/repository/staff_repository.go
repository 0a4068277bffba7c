package repository

import (
	"mahad_backend/internal/model"

	"gorm.io/gorm"
)

// StaffRepository holds the musyrif and asisten assignment rows.
type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

func (r *StaffRepository) CreateSupervisor(s *model.Supervisor) error {
	return r.DB.Create(s).Error
}

func (r *StaffRepository) CreateAssistant(a *model.SupervisorAssistant) error {
	return r.DB.Create(a).Error
}

func (r *StaffRepository) FindSupervisorByUserID(userID uint) (*model.Supervisor, error) {
	var s model.Supervisor
	err := r.DB.Where("user_id = ?", userID).First(&s).Error
	return &s, err
}

func (r *StaffRepository) FindAssistantByUserID(userID uint) (*model.SupervisorAssistant, error) {
	var a model.SupervisorAssistant
	err := r.DB.Where("user_id = ?", userID).First(&a).Error
	return &a, err
}

func (r *StaffRepository) FindSupervisorByFloor(floorID uint) (*model.Supervisor, error) {
	var s model.Supervisor
	err := r.DB.Where("floor_id = ?", floorID).First(&s).Error
	return &s, err
}

func (r *StaffRepository) FindAssistantByGroup(studyGroupID uint) (*model.SupervisorAssistant, error) {
	var a model.SupervisorAssistant
	err := r.DB.Where("study_group_id = ?", studyGroupID).First(&a).Error
	return &a, err
}

func (r *StaffRepository) AssignSupervisor(supervisorID, floorID uint) error {
	return r.DB.Model(&model.Supervisor{}).
		Where("id = ?", supervisorID).
		Update("floor_id", floorID).
		Error
}

func (r *StaffRepository) AssignAssistant(assistantID, studyGroupID uint) error {
	return r.DB.Model(&model.SupervisorAssistant{}).
		Where("id = ?", assistantID).
		Update("study_group_id", studyGroupID).
		Error
}
