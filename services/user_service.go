package services

import (
	"errors"

	"backend/models"
	"backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a user and binds a session token to it. A token already
// presented by the caller is adopted as-is; otherwise a fresh one is minted.
// The duplicate-email pre-check only gives the common case a friendlier path;
// the unique index on users.email is the authoritative guard, so a lost race
// still comes back as ErrEmailTaken.
func (s *UserService) Register(name, email string, presented *uuid.UUID) (*models.User, error) {
	if perr := utils.RequireText("name", name, 255); perr != nil {
		return nil, perr
	}
	if perr := utils.RequireEmail("email", email); perr != nil {
		return nil, perr
	}

	var existing models.User
	err := s.db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	session := uuid.New()
	if presented != nil {
		session = *presented
	}

	user := models.User{Name: name, Email: email, SessionID: &session}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

// ResolveSession maps a session token back to its user. Every call is a
// fresh lookup; there is no in-process session cache.
func (s *UserService) ResolveSession(session uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.Where("session_id = ?", session).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnknownSession
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
