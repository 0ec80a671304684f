package user

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/modules/emailconfig"
	"github.com/folio-space/core/internal/pkg/jwt"
	"github.com/folio-space/core/internal/pkg/mail"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	bcryptCost    = 12
	tokenTTL      = 7 * 24 * time.Hour
	resetTokenTTL = time.Hour
)

// Service handles accounts: first-run setup, sign in, password lifecycle.
type Service struct {
	db       *gorm.DB
	emailCfg *emailconfig.Service

	// publicURL is the site origin used to build reset links.
	publicURL string
}

func NewService(db *gorm.DB, emailCfg *emailconfig.Service, publicURL string) *Service {
	return &Service{db: db, emailCfg: emailCfg, publicURL: publicURL}
}

// SetupDone reports whether at least one account exists.
func (s *Service) SetupDone() (bool, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Setup creates the first admin account. Once any account exists the
// endpoint is permanently closed.
func (s *Service) Setup(dto *CreateAccountDTO) (*models.UserModel, error) {
	done, err := s.SetupDone()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, errSetupDone
	}
	return s.createAccount(dto, models.RoleAdmin)
}

// Register creates an additional account.
func (s *Service) Register(dto *CreateAccountDTO) (*models.UserModel, error) {
	return s.createAccount(dto, models.RoleAdmin)
}

func (s *Service) createAccount(dto *CreateAccountDTO, role models.UserRole) (*models.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var count int64
	if err := s.db.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	u := models.UserModel{
		Name:     strings.TrimSpace(dto.Name),
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
	if err := s.db.Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// SignIn verifies credentials and issues a session token. A missing account
// and a wrong password report the same error.
func (s *Service) SignIn(dto *SignInDTO) (string, *models.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var u models.UserModel
	if err := s.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errBadCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)) != nil {
		return "", nil, errBadCredentials
	}

	token, err := jwt.Sign(u.ID, u.Email, tokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, &u, nil
}

// ChangePassword rotates the password after verifying the current one.
func (s *Service) ChangePassword(userID string, dto *ChangePasswordDTO) error {
	if len(dto.NewPassword) < minPasswordLen {
		return errPasswordTooShort
	}

	var u models.UserModel
	if err := s.db.First(&u, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errUserNotFound
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.CurrentPassword)) != nil {
		return errWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcryptCost)
	if err != nil {
		return err
	}
	return s.db.Model(&u).Update("password", string(hash)).Error
}

// ForgotPassword issues a single-use reset token and emails the reset link.
// Only the SHA-256 digest of the token is stored. Returns
// mail.ErrNotConfigured when no relay credentials exist.
func (s *Service) ForgotPassword(dto *ForgotPasswordDTO) error {
	email := strings.ToLower(strings.TrimSpace(dto.Email))

	var u models.UserModel
	if err := s.db.First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errUserNotFound
		}
		return err
	}

	sender, err := s.emailCfg.Sender()
	if err != nil {
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)
	expiry := time.Now().Add(resetTokenTTL)

	err = s.db.Model(&u).Updates(map[string]interface{}{
		"reset_token":        hashToken(token),
		"reset_token_expiry": expiry,
	}).Error
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/admin/reset-password?token=%s", s.publicURL, token)
	html, err := mail.RenderResetPassword(mail.ResetPasswordData{Name: u.Name, ResetURL: resetURL})
	if err != nil {
		return err
	}
	return sender.Send(mail.Message{
		To:      []string{u.Email},
		Subject: "Reset your password",
		HTML:    html,
	})
}

// ResetPassword consumes a reset token and sets the new password. The token
// is cleared on success so it cannot be replayed.
func (s *Service) ResetPassword(dto *ResetPasswordDTO) error {
	if len(dto.NewPassword) < minPasswordLen {
		return errPasswordTooShort
	}

	var u models.UserModel
	err := s.db.First(&u, "reset_token = ?", hashToken(dto.Token)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errBadResetToken
		}
		return err
	}
	if u.ResetTokenExpiry == nil || time.Now().After(*u.ResetTokenExpiry) {
		return errBadResetToken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcryptCost)
	if err != nil {
		return err
	}
	return s.db.Model(&u).Updates(map[string]interface{}{
		"password":           string(hash),
		"reset_token":        "",
		"reset_token_expiry": nil,
	}).Error
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
