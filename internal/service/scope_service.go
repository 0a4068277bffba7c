package service

import (
	"errors"
	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/util"

	"gorm.io/gorm"
)

// ScopeService resolves an authenticated staff identity into the set of
// residents it may see or grade. Pure lookup; safe to call once per request
// and pass the result down.
type ScopeService struct {
	StaffRepo *repository.StaffRepository
}

func NewScopeService(staffRepo *repository.StaffRepository) *ScopeService {
	return &ScopeService{StaffRepo: staffRepo}
}

// Resolve maps claims to a ScopeSet. Admins are unrestricted; a musyrif
// scopes to their floor, an asisten to their usroh. A staff user whose
// assignment row has no floor/usroh yet gets ErrNoScopeAssigned, which
// callers present as "no residents to manage", not as a failure.
func (s *ScopeService) Resolve(claims *util.Claims) (model.ScopeSet, error) {
	switch claims.Role {
	case model.RoleAdmin:
		return model.AdminScope(), nil

	case model.RoleSupervisor:
		sup, err := s.StaffRepo.FindSupervisorByUserID(claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ScopeSet{}, util.ErrNoScopeAssigned
			}
			return model.ScopeSet{}, err
		}
		if sup.FloorID == nil {
			return model.ScopeSet{}, util.ErrNoScopeAssigned
		}
		return model.FloorScope(*sup.FloorID), nil

	case model.RoleAssistant:
		asst, err := s.StaffRepo.FindAssistantByUserID(claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return model.ScopeSet{}, util.ErrNoScopeAssigned
			}
			return model.ScopeSet{}, err
		}
		if asst.StudyGroupID == nil {
			return model.ScopeSet{}, util.ErrNoScopeAssigned
		}
		return model.GroupScope(*asst.StudyGroupID), nil
	}

	return model.ScopeSet{}, util.ErrNoScopeAssigned
}
