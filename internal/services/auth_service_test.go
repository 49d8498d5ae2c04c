// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketbay/storefront-backend/internal/models"
)

func TestSignUpIssuesTokens(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), NewNotificationService(db))

	resp, err := svc.SignUp(&SignUpRequest{
		Email:    "alice@example.com",
		Password: "password123",
		FullName: "Alice",
	})
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleCustomer, resp.User.Role)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.NotEmpty(t, resp.User.PasswordHash)
	assert.NotEqual(t, "password123", resp.User.PasswordHash)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), NewNotificationService(db))

	req := &SignUpRequest{Email: "dup@example.com", Password: "password123", FullName: "Dup"}
	_, err := svc.SignUp(req)
	require.NoError(t, err)

	_, err = svc.SignUp(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignUpRejectsAdminRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), NewNotificationService(db))

	_, err := svc.SignUp(&SignUpRequest{
		Email:    "mallory@example.com",
		Password: "password123",
		FullName: "Mallory",
		Role:     models.UserRoleAdmin,
	})
	assert.Error(t, err)
}

func TestSellerSignUpNotifiesAdmins(t *testing.T) {
	db := newTestDB(t)
	admin := createTestUser(t, db, "admin@example.com", models.UserRoleAdmin)
	svc := NewAuthService(db, testConfig(), NewNotificationService(db))

	_, err := svc.SignUp(&SignUpRequest{
		Email:    "seller@example.com",
		Password: "password123",
		FullName: "Sally Seller",
		Role:     models.UserRoleSeller,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Notification{}).
		Where("user_id = ?", admin.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSignIn(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "bob@example.com", models.UserRoleCustomer)
	svc := NewAuthService(db, testConfig(), NewNotificationService(db))

	resp, err := svc.SignIn(&SignInRequest{Email: "bob@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.SignIn(&SignInRequest{Email: "bob@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(&SignInRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInBannedAccount(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "banned@example.com", models.UserRoleCustomer)
	require.NoError(t, db.Model(user).UpdateColumn("is_banned", true).Error)

	svc := NewAuthService(db, testConfig(), NewNotificationService(db))

	_, err := svc.SignIn(&SignInRequest{Email: "banned@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrAccountBanned)

	// Wrong password on a banned account still reads as bad credentials.
	_, err = svc.SignIn(&SignInRequest{Email: "banned@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), NewNotificationService(db))

	signUp, err := svc.SignUp(&SignUpRequest{
		Email:    "refresh@example.com",
		Password: "password123",
		FullName: "Refresher",
	})
	require.NoError(t, err)

	resp, err := svc.RefreshToken(signUp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, signUp.User.ID, resp.User.ID)

	_, err = svc.RefreshToken("not-a-token")
	assert.Error(t, err)
}
