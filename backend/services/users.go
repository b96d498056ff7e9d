package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skillshub/backend/models"
	"skillshub/backend/store"
)

// UserService manages registered accounts.
type UserService struct {
	store store.UserStore
	now   func() time.Time
}

func NewUserService(st store.UserStore) *UserService {
	return &UserService{store: st, now: time.Now}
}

// SignUp creates an account with a bcrypt-hashed password. Emails are
// compared case-insensitively and stored lowercased.
func (s *UserService) SignUp(fullName, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	user := models.User{
		ID:              newUserID(now),
		FullName:        fullName,
		Email:           email,
		PasswordHash:    string(hash),
		CreatedAt:       now,
		EnrolledCourses: []int{},
	}

	if err := s.store.AppendUser(user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate checks the credentials and returns the account. Wrong email
// and wrong password both come back as ErrInvalidCredentials.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// FindByEmail returns the account for the email, or nil if none exists.
func (s *UserService) FindByEmail(email string) (*models.User, error) {
	users, err := s.store.AllUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			user := users[i]
			return &user, nil
		}
	}
	return nil, nil
}

// FindByID returns the account for the id, or nil if none exists.
func (s *UserService) FindByID(id string) (*models.User, error) {
	users, err := s.store.AllUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			user := users[i]
			return &user, nil
		}
	}
	return nil, nil
}

// All returns every account in registration order.
func (s *UserService) All() ([]models.User, error) {
	return s.store.AllUsers()
}

func newUserID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("user_%d_%s", now.UnixMilli(), suffix[:7])
}
