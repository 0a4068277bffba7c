package service

import (
	"errors"
	"mahad_backend/internal/config"
	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	StaffRepo *repository.StaffRepository
	Cfg       *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, staffRepo *repository.StaffRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		StaffRepo: staffRepo,
		Cfg:       cfg,
	}
}

// Register creates the user and, for staff roles, the empty assignment row.
// A musyrif/asisten starts unassigned; the scope resolver reports no scope
// until an administrator links them to a floor/usroh.
func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	if err := s.UserRepo.Create(user); err != nil {
		return err
	}

	switch user.Role {
	case model.RoleSupervisor:
		return s.StaffRepo.CreateSupervisor(&model.Supervisor{UserID: user.ID})
	case model.RoleAssistant:
		return s.StaffRepo.CreateAssistant(&model.SupervisorAssistant{UserID: user.ID})
	}
	return nil
}

func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	jwtCfg := s.Cfg.JWTSettings()
	return util.GenerateJWT(user, jwtCfg.Secret, jwtCfg.ExpireTime)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}
