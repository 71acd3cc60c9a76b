package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// Sentinel errors the controllers translate into HTTP responses. The generic
// credentials error deliberately covers both unknown email and wrong password
// so responses can't be used to enumerate accounts.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// RegisterUser creates an account with target status Ongoing. A duplicate
// email is rejected before anything is written.
func (s *AuthService) RegisterUser(fullName, email, password string) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FullName:     fullName,
		Email:        email,
		Password:     hashed,
		TargetStatus: models.TargetOngoing,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks credentials and appends the login audit row.
func (s *AuthService) AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	if err := s.recordLogin(&user.ID, false); err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateAdmin is the admin-side counterpart; the audit row carries a
// nil user id and the admin flag.
func (s *AuthService) AuthenticateAdmin(email, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := s.db.Where("email = ?", email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !utils.CheckPasswordHash(password, admin.Password) {
		return nil, ErrInvalidCredentials
	}

	if err := s.recordLogin(nil, true); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AuthService) recordLogin(userID *uint, isAdmin bool) error {
	return s.db.Create(&models.LoginLog{
		UserID:    userID,
		IsAdmin:   isAdmin,
		LoginTime: time.Now().UTC(),
	}).Error
}

// CreateResetToken issues a short-lived reset code for the account. The
// caller sends it by email; unknown emails surface as ErrInvalidCredentials
// so the endpoint can answer neutrally.
func (s *AuthService) CreateResetToken(email string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	token := utils.GenerateRandomToken(6)
	user.ResetToken = token
	user.ResetTokenExp = time.Now().Add(15 * time.Minute)
	if err := s.db.Save(&user).Error; err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// ResetPassword consumes a reset code and stores the new password hash.
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if token == "" {
		return ErrResetTokenInvalid
	}

	var user models.User
	if err := s.db.Where("reset_token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetTokenInvalid
		}
		return err
	}
	if time.Now().After(user.ResetTokenExp) {
		return ErrResetTokenInvalid
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.db.Save(&user).Error
}
