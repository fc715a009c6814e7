package auth

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/pension-backend/apperror"
	"github.com/user/pension-backend/users"
)

// fakeDirectory is an in-memory UserDirectory for service tests.
type fakeDirectory struct {
	byUsername map[string]*users.User
	nextID     int
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{byUsername: map[string]*users.User{}}
}

func (d *fakeDirectory) GetByUsername(username string) (*users.User, error) {
	if u, ok := d.byUsername[username]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, apperror.NewNotFoundError("username not found", nil)
}

func (d *fakeDirectory) Create(u *users.User) (*users.User, error) {
	d.nextID++
	copied := *u
	copied.ID = fmt.Sprintf("id-%d", d.nextID)
	if copied.Score == 0 {
		copied.Score = 100
	}
	d.byUsername[copied.Username] = &copied
	return &copied, nil
}

func TestSignupThenLogin(t *testing.T) {
	service := NewService(newFakeDirectory())

	saved, err := service.Signup(SignupRequest{
		Fullname: "Ada Lovelace",
		Username: "ada",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NotEqual(t, "correct horse", saved.Password, "password must be stored hashed")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("correct horse")))

	miniUser, err := service.Login("ada", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, miniUser.ID)
	assert.Equal(t, "ada", miniUser.Username)
	assert.Equal(t, "Ada Lovelace", miniUser.Fullname)
	assert.Equal(t, float64(100), miniUser.Score)
}

func TestLoginWrongPassword(t *testing.T) {
	service := NewService(newFakeDirectory())
	_, err := service.Signup(SignupRequest{Fullname: "Ada", Username: "ada", Password: "right"})
	require.NoError(t, err)

	_, err = service.Login("ada", "wrong")
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestLoginUnknownUsername(t *testing.T) {
	service := NewService(newFakeDirectory())

	_, err := service.Login("nobody", "whatever")
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
	assert.Contains(t, err.Error(), "Invalid username or password")
}

func TestSignupMissingFields(t *testing.T) {
	service := NewService(newFakeDirectory())

	cases := []SignupRequest{
		{Username: "ada", Password: "pw"},
		{Fullname: "Ada", Password: "pw"},
		{Fullname: "Ada", Username: "ada"},
	}
	for _, req := range cases {
		_, err := service.Signup(req)
		require.Error(t, err)
		assert.True(t, apperror.IsValidationError(err))
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	service := NewService(newFakeDirectory())
	_, err := service.Signup(SignupRequest{Fullname: "Ada", Username: "ada", Password: "pw"})
	require.NoError(t, err)

	_, err = service.Signup(SignupRequest{Fullname: "Other Ada", Username: "ada", Password: "pw2"})
	require.Error(t, err)

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.StatusCode())
}
