package service

import (
	"testing"

	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAdminIsUnrestricted(t *testing.T) {
	db := newTestDB(t)
	svc := NewScopeService(repository.NewStaffRepository(db))

	scope, err := svc.Resolve(&util.Claims{UserID: 1, Role: model.RoleAdmin})
	require.NoError(t, err)
	assert.True(t, scope.Unrestricted())
}

func TestResolveSupervisorScopesToFloor(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	staffRepo := repository.NewStaffRepository(db)
	svc := NewScopeService(staffRepo)

	floorID := f.floor1.ID
	require.NoError(t, staffRepo.CreateSupervisor(&model.Supervisor{UserID: 7, FloorID: &floorID}))

	scope, err := svc.Resolve(&util.Claims{UserID: 7, Role: model.RoleSupervisor})
	require.NoError(t, err)
	assert.False(t, scope.Unrestricted())
	assert.Equal(t, f.floor1.ID, scope.FloorID)

	// Residents anywhere on the floor are in scope, regardless of usroh.
	assert.True(t, scope.Contains(f.group1.ID, f.floor1.ID))
	assert.True(t, scope.Contains(f.group2.ID, f.floor1.ID))
	assert.False(t, scope.Contains(f.group3.ID, f.floor2.ID))
}

func TestResolveAssistantScopesToGroup(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	staffRepo := repository.NewStaffRepository(db)
	svc := NewScopeService(staffRepo)

	groupID := f.group1.ID
	require.NoError(t, staffRepo.CreateAssistant(&model.SupervisorAssistant{UserID: 9, StudyGroupID: &groupID}))

	scope, err := svc.Resolve(&util.Claims{UserID: 9, Role: model.RoleAssistant})
	require.NoError(t, err)
	assert.Equal(t, f.group1.ID, scope.StudyGroupID)

	assert.True(t, scope.Contains(f.group1.ID, f.floor1.ID))
	assert.False(t, scope.Contains(f.group2.ID, f.floor1.ID))
}

func TestResolveStaffWithoutAssignment(t *testing.T) {
	db := newTestDB(t)
	staffRepo := repository.NewStaffRepository(db)
	svc := NewScopeService(staffRepo)

	// No assignment row at all.
	_, err := svc.Resolve(&util.Claims{UserID: 3, Role: model.RoleSupervisor})
	assert.ErrorIs(t, err, util.ErrNoScopeAssigned)

	// Assignment row exists but no floor linked yet.
	require.NoError(t, staffRepo.CreateSupervisor(&model.Supervisor{UserID: 4}))
	_, err = svc.Resolve(&util.Claims{UserID: 4, Role: model.RoleSupervisor})
	assert.ErrorIs(t, err, util.ErrNoScopeAssigned)

	require.NoError(t, staffRepo.CreateAssistant(&model.SupervisorAssistant{UserID: 5}))
	_, err = svc.Resolve(&util.Claims{UserID: 5, Role: model.RoleAssistant})
	assert.ErrorIs(t, err, util.ErrNoScopeAssigned)
}

func TestResolveResidentRoleHasNoScope(t *testing.T) {
	db := newTestDB(t)
	svc := NewScopeService(repository.NewStaffRepository(db))

	_, err := svc.Resolve(&util.Claims{UserID: 11, Role: model.RoleResident})
	assert.ErrorIs(t, err, util.ErrNoScopeAssigned)
}
