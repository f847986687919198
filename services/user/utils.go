package user

import (
	"regexp"
	"strings"
	"time"

	"seminarly/models"
	"seminarly/utils"
)

var (
	upperRe  = regexp.MustCompile(`[A-Z]`)
	lowerRe  = regexp.MustCompile(`[a-z]`)
	numberRe = regexp.MustCompile(`[0-9]`)
	symbolRe = regexp.MustCompile(`[\W_]`)
)

// VerifyPasswordComplexity checks that the password meets complexity requirements.
func VerifyPasswordComplexity(pw string) error {
	if len(pw) < 8 {
		return ValidationError{"password must be at least 8 characters long"}
	}
	if !upperRe.MatchString(pw) {
		return ValidationError{"password must include at least one uppercase letter"}
	}
	if !lowerRe.MatchString(pw) {
		return ValidationError{"password must include at least one lowercase letter"}
	}
	if !numberRe.MatchString(pw) {
		return ValidationError{"password must include at least one number"}
	}
	if !symbolRe.MatchString(pw) {
		return ValidationError{"password must include at least one symbol"}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *DefaultUserService) issueToken(u *models.User) (*AuthResponse, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = utils.DefaultTokenTTL
	}
	token, err := utils.GenerateToken(u.ID, u.Email, u.Role, ttl)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		ID:          u.ID,
		Token:       token,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
	}, nil
}

func stamp() time.Time {
	return time.Now()
}
