package services

import (
	"fmt"
	"strings"

	"ticketo/internal/logger"
	"ticketo/internal/models"
	"ticketo/internal/storage"
)

type AuthService struct {
	writer *storage.SingleWriter
	log    *logger.Logger
}

func NewAuthService(writer *storage.SingleWriter, log *logger.Logger) *AuthService {
	return &AuthService{writer: writer, log: log}
}

// Login matches the email case-insensitively and the opaque password
// verbatim. The returned user never carries the password field.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, ErrMissingFields
	}

	normalized := strings.ToLower(strings.TrimSpace(email))

	var user *models.User
	err := s.writer.View(func(doc *models.Document) error {
		for _, u := range doc.Users {
			if strings.ToLower(strings.TrimSpace(u.Email)) == normalized && u.Password == password {
				safe := u.Public()
				user = &safe
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if user == nil {
		s.log.LogSecurity("LOGIN_FAILED", "Rejected login for "+normalized)
		return nil, ErrInvalidCredentials
	}

	s.log.LogSecurity("LOGIN", fmt.Sprintf("User %s (%s) logged in", user.ID, user.Role))
	return user, nil
}
