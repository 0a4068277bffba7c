package service

import (
	"testing"

	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newHierarchyService(db *gorm.DB) *HierarchyService {
	return NewHierarchyService(
		repository.NewBuildingRepository(db),
		repository.NewFloorRepository(db),
		repository.NewStudyGroupRepository(db),
		repository.NewResidentRepository(db),
		repository.NewStaffRepository(db),
	)
}

func TestCreateResidentDerivesFloor(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	svc := newHierarchyService(db)

	res, err := svc.CreateResident("Ahmad", "MHS001", f.group3.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, f.group3.ID, res.StudyGroupID)
	assert.Equal(t, f.floor2.ID, res.FloorID)
}

func TestCreateResidentUnknownGroup(t *testing.T) {
	db := newTestDB(t)
	seedHierarchy(t, db)
	svc := newHierarchyService(db)

	_, err := svc.CreateResident("Ahmad", "MHS001", 999, nil)
	assert.ErrorIs(t, err, util.ErrUnknownGroup)
}

func TestMoveResidentKeepsFloorConsistent(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	svc := newHierarchyService(db)
	res := seedResident(t, db, "Budi", "MHS002", f.group1)

	moved, err := svc.MoveResident(res.ID, f.group3.ID)
	require.NoError(t, err)
	assert.Equal(t, f.group3.ID, moved.StudyGroupID)
	assert.Equal(t, f.floor2.ID, moved.FloorID)

	// Moving back down re-derives the floor from the destination usroh.
	moved, err = svc.MoveResident(res.ID, f.group2.ID)
	require.NoError(t, err)
	assert.Equal(t, f.group2.ID, moved.StudyGroupID)
	assert.Equal(t, f.floor1.ID, moved.FloorID)
}

func TestMoveResidentErrors(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	svc := newHierarchyService(db)
	res := seedResident(t, db, "Citra", "MHS003", f.group1)

	_, err := svc.MoveResident(999, f.group1.ID)
	assert.ErrorIs(t, err, util.ErrUnknownResident)

	_, err = svc.MoveResident(res.ID, 999)
	assert.ErrorIs(t, err, util.ErrUnknownGroup)
}

func TestAssignSupervisorOnePerFloor(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	staffRepo := repository.NewStaffRepository(db)
	svc := newHierarchyService(db)

	first := model.Supervisor{UserID: 10}
	second := model.Supervisor{UserID: 11}
	require.NoError(t, staffRepo.CreateSupervisor(&first))
	require.NoError(t, staffRepo.CreateSupervisor(&second))

	require.NoError(t, svc.AssignSupervisor(first.ID, f.floor1.ID))

	// The floor already has its musyrif.
	err := svc.AssignSupervisor(second.ID, f.floor1.ID)
	assert.ErrorIs(t, err, util.ErrSupervisorTaken)

	// Re-assigning the same musyrif is a no-op, not a conflict.
	require.NoError(t, svc.AssignSupervisor(first.ID, f.floor1.ID))

	// A different floor is free.
	require.NoError(t, svc.AssignSupervisor(second.ID, f.floor2.ID))
}

func TestAssignAssistantOnePerGroup(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	staffRepo := repository.NewStaffRepository(db)
	svc := newHierarchyService(db)

	first := model.SupervisorAssistant{UserID: 20}
	second := model.SupervisorAssistant{UserID: 21}
	require.NoError(t, staffRepo.CreateAssistant(&first))
	require.NoError(t, staffRepo.CreateAssistant(&second))

	require.NoError(t, svc.AssignAssistant(first.ID, f.group1.ID))

	err := svc.AssignAssistant(second.ID, f.group1.ID)
	assert.ErrorIs(t, err, util.ErrAssistantTaken)

	require.NoError(t, svc.AssignAssistant(second.ID, f.group2.ID))
}
