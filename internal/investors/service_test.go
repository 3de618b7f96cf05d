package investors

import (
	"context"
	"testing"

	"wellcrest-backend/internal/domain"
	"wellcrest-backend/internal/pkg/constants"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupInvestorsTest(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Investor{}))
	return &Service{DB: db}, db
}

func validCreateInput() CreateInput {
	return CreateInput{
		FullName: "Maria Okafor",
		Email:    "Maria.Okafor@example.com",
		Phone:    "+1 432 555 0142",
		Password: "Secret#123",
	}
}

func TestCreateInvestor_ProvisionsPortalUser(t *testing.T) {
	s, db := setupInvestorsTest(t)
	investor, err := s.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, "maria.okafor@example.com", investor.Email)
	require.NotNil(t, investor.UserID)

	var user domain.User
	require.NoError(t, db.Where("user_id = ?", investor.UserID).First(&user).Error)
	assert.Equal(t, constants.Investor, user.Role)
	assert.Equal(t, investor.Email, user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Secret#123")))
}

func TestCreateInvestor_DuplicateEmail(t *testing.T) {
	s, _ := setupInvestorsTest(t)
	_, err := s.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	_, err = s.Create(context.Background(), validCreateInput())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateInvestor_EmailTakenByExistingUser(t *testing.T) {
	s, db := setupInvestorsTest(t)
	require.NoError(t, db.Create(&domain.User{
		Fullname: "Admin", Email: "maria.okafor@example.com",
		PasswordHash: "x", Role: constants.Admin,
	}).Error)

	_, err := s.Create(context.Background(), validCreateInput())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateInvestor_Validation(t *testing.T) {
	s, _ := setupInvestorsTest(t)
	ctx := context.Background()

	in := validCreateInput()
	in.FullName = "1234"
	_, err := s.Create(ctx, in)
	assert.ErrorIs(t, err, ErrNameRequired)

	in = validCreateInput()
	in.Email = "not-an-email"
	_, err = s.Create(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidEmail)

	in = validCreateInput()
	in.Password = "short"
	_, err = s.Create(ctx, in)
	assert.ErrorIs(t, err, ErrInvalidPassword)
}

func TestUpdateInvestor_Profile(t *testing.T) {
	s, _ := setupInvestorsTest(t)
	investor, err := s.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	name := "Maria Okafor-Hale"
	updated, err := s.Update(context.Background(), investor.InvestorID, UpdateInput{
		FullName: &name,
		BankingDetails: map[string]interface{}{
			"routing": "111000025", "account_last4": "4321",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.FullName)
	assert.NotEmpty(t, updated.BankingDetails)
	assert.Equal(t, investor.Email, updated.Email)
}

func TestUpdateInvestor_NotFound(t *testing.T) {
	s, _ := setupInvestorsTest(t)
	name := "Someone"
	_, err := s.Update(context.Background(), uuid.New(), UpdateInput{FullName: &name})
	assert.ErrorIs(t, err, ErrInvestorNotFound)
}

func TestGetByEmail_NormalizesCase(t *testing.T) {
	s, _ := setupInvestorsTest(t)
	created, err := s.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	found, err := s.GetByEmail(context.Background(), "MARIA.OKAFOR@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.InvestorID, found.InvestorID)
}

func TestGetByEmail_NotFound(t *testing.T) {
	s, _ := setupInvestorsTest(t)
	_, err := s.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrInvestorNotFound)
}
