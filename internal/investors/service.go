package investors

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"wellcrest-backend/internal/domain"
	"wellcrest-backend/internal/pkg/constants"
	"wellcrest-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrInvestorNotFound = errors.New("Investor not found")
	ErrNameRequired     = errors.New("Full name is required")
	ErrInvalidEmail     = errors.New("Invalid email format")
	ErrInvalidPassword  = errors.New("Invalid password format")
	ErrEmailTaken       = errors.New("Email already registered")
)

// Service manages investor records and their portal access.
type Service struct {
	DB *gorm.DB
}

// CreateInput for the admin "add investor" action. Password is the initial
// portal password handed to the investor; they change it on first login.
type CreateInput struct {
	FullName       string
	Email          string
	Phone          string
	Password       string
	BankingDetails map[string]interface{}
	Profile        map[string]interface{}
}

// Create adds the investor record and provisions its portal user in one
// transaction: an investor without a login (or the reverse) never exists.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Investor, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" || !validation.IsValidFullname(fullName) {
		return nil, ErrNameRequired
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !validation.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if in.Password == "" || !validation.IsValidPassword(in.Password) {
		return nil, ErrInvalidPassword
	}

	var existing domain.Investor
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}
	var existingUser domain.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&existingUser).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), 10)
	if err != nil {
		return nil, err
	}

	var investor *domain.Investor
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := &domain.User{
			Fullname:     fullName,
			Email:        email,
			PasswordHash: string(hash),
			Role:         constants.Investor,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		investor = &domain.Investor{
			UserID:   &user.UserID,
			FullName: fullName,
			Email:    email,
		}
		if in.Phone != "" {
			phone := strings.TrimSpace(in.Phone)
			investor.Phone = &phone
		}
		if in.BankingDetails != nil {
			b, _ := json.Marshal(in.BankingDetails)
			investor.BankingDetails = datatypes.JSON(b)
		}
		if in.Profile != nil {
			b, _ := json.Marshal(in.Profile)
			investor.Profile = datatypes.JSON(b)
		}
		return tx.Create(investor).Error
	})
	if err != nil {
		return nil, err
	}
	return investor, nil
}

// UpdateInput carries editable profile fields; nil means leave unchanged.
type UpdateInput struct {
	FullName       *string
	Phone          *string
	BankingDetails map[string]interface{}
	Profile        map[string]interface{}
}

// Update edits investor profile fields (self-service onboarding or admin
// edits). Email is the business key and is not editable here.
func (s *Service) Update(ctx context.Context, investorID uuid.UUID, in UpdateInput) (*domain.Investor, error) {
	var investor domain.Investor
	if err := s.DB.WithContext(ctx).Where("investor_id = ?", investorID).First(&investor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvestorNotFound
		}
		return nil, err
	}

	if in.FullName != nil {
		name := strings.TrimSpace(*in.FullName)
		if name == "" || !validation.IsValidFullname(name) {
			return nil, ErrNameRequired
		}
		investor.FullName = name
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		investor.Phone = &phone
	}
	if in.BankingDetails != nil {
		b, _ := json.Marshal(in.BankingDetails)
		investor.BankingDetails = datatypes.JSON(b)
	}
	if in.Profile != nil {
		b, _ := json.Marshal(in.Profile)
		investor.Profile = datatypes.JSON(b)
	}

	if err := s.DB.WithContext(ctx).Save(&investor).Error; err != nil {
		return nil, err
	}
	return &investor, nil
}

// Get returns one investor by ID.
func (s *Service) Get(ctx context.Context, investorID uuid.UUID) (*domain.Investor, error) {
	var investor domain.Investor
	if err := s.DB.WithContext(ctx).Where("investor_id = ?", investorID).First(&investor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvestorNotFound
		}
		return nil, err
	}
	return &investor, nil
}

// GetByEmail looks an investor up by the email business key.
func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.Investor, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !validation.IsValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	var investor domain.Investor
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&investor).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrInvestorNotFound
		}
		return nil, err
	}
	return &investor, nil
}

// List returns all investors ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Investor, error) {
	var investors []domain.Investor
	if err := s.DB.WithContext(ctx).Order("full_name").Find(&investors).Error; err != nil {
		return nil, err
	}
	return investors, nil
}
