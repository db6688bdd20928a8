package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svernekar/examportal/internal/auth"
	"github.com/svernekar/examportal/internal/dto"
	"github.com/svernekar/examportal/internal/repository"
)

func newAuthService(t *testing.T) AuthService {
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), newTestConfig())
}

func signupAnnLee(t *testing.T, svc AuthService) {
	t.Helper()
	err := svc.Signup(dto.SignupRequest{
		ID:         "F100",
		Name:       "Ann Lee",
		Password:   "pw123",
		Role:       "faculty",
		Department: "IT",
	})
	require.NoError(t, err)
}

func TestSignupSucceedsOnceThenConflicts(t *testing.T) {
	svc := newAuthService(t)

	signupAnnLee(t, svc)

	err := svc.Signup(dto.SignupRequest{
		ID:         "F100",
		Name:       "Ann Lee",
		Password:   "pw123",
		Role:       "faculty",
		Department: "IT",
	})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	svc := newAuthService(t)

	err := svc.Signup(dto.SignupRequest{
		ID:         "X1",
		Name:       "Nobody",
		Password:   "pw",
		Role:       "registrar",
		Department: "IT",
	})
	assert.Error(t, err)
}

func TestLoginReturnsTokenWithStoredClaims(t *testing.T) {
	svc := newAuthService(t)
	signupAnnLee(t, svc)

	user, token, err := svc.Login(dto.LoginRequest{ID: "F100", Password: "pw123"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "F100", user.ID)
	assert.Equal(t, "Ann Lee", user.Name)
	assert.Equal(t, "faculty", user.Role)
	assert.Equal(t, "IT", user.Department)

	claims, err := auth.Parse(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "F100", claims.ID)
	assert.Equal(t, "faculty", string(claims.Role))
	assert.Equal(t, "Ann Lee", claims.Name)
	assert.Equal(t, "IT", claims.Department)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	signupAnnLee(t, svc)

	_, _, err := svc.Login(dto.LoginRequest{ID: "F100", Password: "nope"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Login(dto.LoginRequest{ID: "ghost", Password: "pw"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfile(t *testing.T) {
	svc := newAuthService(t)
	signupAnnLee(t, svc)

	profile, err := svc.Profile("F100")
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", profile.Name)
	assert.Equal(t, "IT", profile.DeptName)

	_, err = svc.Profile("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
