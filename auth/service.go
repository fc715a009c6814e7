package auth

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/pension-backend/apperror"
	"github.com/user/pension-backend/users"
)

// UserDirectory is the slice of the user store the credential verifier needs.
// *users.FileStore satisfies it; tests substitute fakes.
type UserDirectory interface {
	GetByUsername(username string) (*users.User, error)
	Create(u *users.User) (*users.User, error)
}

// Service verifies credentials against the user directory and produces the
// mini-user projection handed to the token codec.
type Service struct {
	directory UserDirectory
}

// NewService creates a new auth Service.
func NewService(directory UserDirectory) *Service {
	return &Service{directory: directory}
}

// Login authenticates a username/password pair and returns the mini-user on
// success. The username lookup is exact-match and case-sensitive; both an
// unknown username and a wrong password yield the same invalid-credentials
// error so the response does not reveal which half was wrong.
func (s *Service) Login(username, password string) (*MiniUser, error) {
	user, err := s.directory.GetByUsername(username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthError("Invalid username or password", nil)
		}
		log.Printf("auth: failed to look up user %q: %v", username, err)
		return nil, apperror.NewInternalError("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperror.NewAuthError("Invalid username or password", nil)
	}

	return &MiniUser{
		ID:       user.ID,
		Username: user.Username,
		Fullname: user.Fullname,
		Score:    user.Score,
		IsAdmin:  user.IsAdmin,
	}, nil
}

// Signup creates a new user with a bcrypt-hashed password and returns the
// stored record. Signup does not authenticate; the handler chains Login
// afterwards to mint a token.
func (s *Service) Signup(req SignupRequest) (*users.User, error) {
	if req.Username == "" || req.Password == "" || req.Fullname == "" {
		return nil, apperror.NewValidationError("Missing required signup fields", nil)
	}

	// Username uniqueness is enforced here, at signup time only; the store
	// itself carries no such constraint.
	if _, err := s.directory.GetByUsername(req.Username); err == nil {
		return nil, apperror.NewBadRequestError("Username already exists", nil)
	} else if !apperror.IsNotFound(err) {
		return nil, apperror.NewInternalError("failed to check username", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	saved, err := s.directory.Create(&users.User{
		Fullname: req.Fullname,
		Username: req.Username,
		Password: string(hash),
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("auth: signed up user %s (%s)", saved.Username, saved.ID)
	return saved, nil
}
