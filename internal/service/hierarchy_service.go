package service

import (
	"errors"
	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/util"

	"gorm.io/gorm"
)

// HierarchyService manages the gedung → lantai → usroh → mahasantri tree and
// the staff assignments hanging off it. Admin-only mutations.
type HierarchyService struct {
	BuildingRepo *repository.BuildingRepository
	FloorRepo    *repository.FloorRepository
	GroupRepo    *repository.StudyGroupRepository
	ResidentRepo *repository.ResidentRepository
	StaffRepo    *repository.StaffRepository
}

func NewHierarchyService(
	buildingRepo *repository.BuildingRepository,
	floorRepo *repository.FloorRepository,
	groupRepo *repository.StudyGroupRepository,
	residentRepo *repository.ResidentRepository,
	staffRepo *repository.StaffRepository,
) *HierarchyService {
	return &HierarchyService{
		BuildingRepo: buildingRepo,
		FloorRepo:    floorRepo,
		GroupRepo:    groupRepo,
		ResidentRepo: residentRepo,
		StaffRepo:    staffRepo,
	}
}

// CreateResident places a new mahasantri in an usroh. The denormalized floor
// reference is derived from the group here, never taken from the caller, so
// the two can't start out disagreeing.
func (s *HierarchyService) CreateResident(name, enrollmentNumber string, studyGroupID uint, userID *uint) (*model.Resident, error) {
	group, err := s.GroupRepo.FindByID(studyGroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnknownGroup
		}
		return nil, err
	}

	resident := &model.Resident{
		Name:             name,
		EnrollmentNumber: enrollmentNumber,
		StudyGroupID:     group.ID,
		FloorID:          group.FloorID,
		UserID:           userID,
	}
	if err := s.ResidentRepo.Create(resident); err != nil {
		return nil, err
	}
	return resident, nil
}

// MoveResident re-parents a mahasantri into another usroh. The target floor
// is looked up from the destination group and both parent references are
// written in a single atomic update.
func (s *HierarchyService) MoveResident(residentID, studyGroupID uint) (*model.Resident, error) {
	if _, err := s.ResidentRepo.FindByID(residentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnknownResident
		}
		return nil, err
	}

	group, err := s.GroupRepo.FindByID(studyGroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnknownGroup
		}
		return nil, err
	}

	if err := s.ResidentRepo.Move(residentID, group.ID, group.FloorID); err != nil {
		return nil, err
	}
	return s.ResidentRepo.FindByID(residentID)
}

// AssignSupervisor links a musyrif to a floor, enforcing at most one musyrif
// per floor at the application layer.
func (s *HierarchyService) AssignSupervisor(supervisorID, floorID uint) error {
	if _, err := s.FloorRepo.FindByID(floorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUnknownFloor
		}
		return err
	}

	existing, err := s.StaffRepo.FindSupervisorByFloor(floorID)
	if err == nil && existing.ID != supervisorID {
		return util.ErrSupervisorTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.StaffRepo.AssignSupervisor(supervisorID, floorID)
}

// AssignAssistant links an asisten to an usroh, one per usroh.
func (s *HierarchyService) AssignAssistant(assistantID, studyGroupID uint) error {
	if _, err := s.GroupRepo.FindByID(studyGroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUnknownGroup
		}
		return err
	}

	existing, err := s.StaffRepo.FindAssistantByGroup(studyGroupID)
	if err == nil && existing.ID != assistantID {
		return util.ErrAssistantTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.StaffRepo.AssignAssistant(assistantID, studyGroupID)
}
