package service

import (
	"testing"
	"time"

	"mahad_backend/internal/config"
	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(
		repository.NewUserRepository(db),
		repository.NewStaffRepository(db),
		cfg,
	)
}

func TestRegisterHashesPasswordAndCreatesAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Ustadz Salim", Email: "salim@mahad.test", Password: "rahasia-sekali", Role: model.RoleSupervisor}
	require.NoError(t, svc.Register(user))
	assert.NotEqual(t, "rahasia-sekali", user.Password)

	// Staff registration creates the unassigned supervisor row.
	sup, err := repository.NewStaffRepository(db).FindSupervisorByUserID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, sup.FloorID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	first := &model.User{Name: "Ahmad", Email: "ahmad@mahad.test", Password: "password123", Role: model.RoleResident}
	require.NoError(t, svc.Register(first))

	dup := &model.User{Name: "Ahmad Lain", Email: "ahmad@mahad.test", Password: "password456", Role: model.RoleResident}
	assert.ErrorIs(t, svc.Register(dup), util.ErrEmailRegistered)
}

func TestLoginIssuesParseableToken(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user := &model.User{Name: "Budi", Email: "budi@mahad.test", Password: "password123", Role: model.RoleAssistant}
	require.NoError(t, svc.Register(user))

	token, err := svc.Login("budi@mahad.test", "password123")
	require.NoError(t, err)

	claims, err := util.ParseJWT(token, svc.Cfg.JWTSecret())
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleAssistant, claims.Role)

	_, err = svc.Login("budi@mahad.test", "wrong-password")
	assert.Error(t, err)
	_, err = svc.Login("nobody@mahad.test", "password123")
	assert.Error(t, err)
}
