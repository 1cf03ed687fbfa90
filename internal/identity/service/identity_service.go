package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/avayezaryab/backend/config"
	apperr "github.com/avayezaryab/backend/internal/errors"
	"github.com/avayezaryab/backend/internal/identity/domain"
	"github.com/avayezaryab/backend/internal/identity/dto"
	"github.com/avayezaryab/backend/internal/mailer"
)

// IdentityService orchestrates registration, email verification, login and
// password reset. It is the only component with business logic; persistence
// lives behind the repositories and the code ledger.
type IdentityService struct {
	users  domain.UserRepository
	ledger *CodeLedger
	tokens TokenIssuer
	mail   mailer.Mailer
	admin  config.AdminConfig
	log    *zap.SugaredLogger
}

func NewIdentityService(
	users domain.UserRepository,
	ledger *CodeLedger,
	tokens TokenIssuer,
	mail mailer.Mailer,
	admin config.AdminConfig,
	log *zap.SugaredLogger,
) *IdentityService {
	return &IdentityService{
		users:  users,
		ledger: ledger,
		tokens: tokens,
		mail:   mail,
		admin:  admin,
		log:    log,
	}
}

// Register creates an unverified user and issues a verification code. The
// code email is best effort: a delivery failure is logged and never fails the
// registration, since the user and code rows are already committed.
func (s *IdentityService) Register(ctx context.Context, input dto.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if username == "" || email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, fmt.Errorf("%w: all fields are required", apperr.ErrValidation)
	}
	if input.Password != input.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", apperr.ErrValidation)
	}

	user := &domain.User{
		Username:       username,
		Email:          email,
		PasswordDigest: HashPassword(input.Password),
		EmailVerified:  false,
		CreatedAt:      time.Now().UTC(),
	}

	user, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	code, err := s.ledger.Issue(ctx, domain.PurposeEmailVerification, user.Email)
	if err != nil {
		return nil, err
	}

	body := fmt.Sprintf("Your email verification code:\n\n%s\n\nThis code is valid for %d minutes.",
		code.Code, int(s.ledger.TTL().Minutes()))
	s.sendMail(ctx, user.Email, "Email verification code", body)

	return user, nil
}

// VerifyEmail consumes a verification code and marks the user verified. A
// code already consumed once fails here, which is what makes the
// unverified→verified transition at-most-once.
func (s *IdentityService) VerifyEmail(ctx context.Context, input dto.VerifyEmailInput) (*dto.AuthOutput, error) {
	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.ErrUserNotFound
	}

	if err := s.ledger.Consume(ctx, domain.PurposeEmailVerification, input.Email, input.Code); err != nil {
		return nil, err
	}

	if err := s.users.MarkEmailVerified(ctx, user.ID); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue()
	if err != nil {
		return nil, err
	}

	return &dto.AuthOutput{Token: token, User: dto.NewUserOutput(user)}, nil
}

// Login is a pure predicate: unknown identifier and wrong password both map
// to ErrInvalidCredentials so the caller cannot tell which one failed.
func (s *IdentityService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)
	if identifier == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: identifier and password are required", apperr.ErrValidation)
	}

	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if user == nil || !VerifyPassword(input.Password, user.PasswordDigest) {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue()
	if err != nil {
		return nil, err
	}

	return &dto.AuthOutput{Token: token, User: dto.NewUserOutput(user)}, nil
}

// ForgotPassword issues a reset code only when the email exists, but reports
// nothing either way; the caller always receives the same generic response.
func (s *IdentityService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", apperr.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	code, err := s.ledger.Issue(ctx, domain.PurposePasswordReset, user.Email)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Your password recovery code:\n\n%s\n\nThis code is valid for %d minutes.",
		code.Code, int(s.ledger.TTL().Minutes()))
	s.sendMail(ctx, user.Email, "Password recovery code", body)

	return nil
}

func (s *IdentityService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) error {
	if input.NewPassword == "" || input.NewPassword != input.ConfirmPassword {
		return fmt.Errorf("%w: passwords do not match", apperr.ErrValidation)
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.ErrUserNotFound
	}

	if err := s.ledger.Consume(ctx, domain.PurposePasswordReset, input.Email, input.Code); err != nil {
		return err
	}

	return s.users.UpdatePasswordDigest(ctx, user.ID, HashPassword(input.NewPassword))
}

// AdminLogin checks the configured admin credentials and hands back the
// static admin token used by the X-Admin-Token gate.
func (s *IdentityService) AdminLogin(_ context.Context, input dto.AdminLoginInput) (string, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(input.Email), []byte(s.admin.Email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(input.Password), []byte(s.admin.Password)) == 1
	if s.admin.Email == "" || !emailOK || !passOK {
		return "", apperr.ErrInvalidCredentials
	}
	return s.admin.Token, nil
}

func (s *IdentityService) sendMail(ctx context.Context, to, subject, body string) {
	if err := s.mail.Send(ctx, to, subject, body); err != nil {
		s.log.Warnw("mail delivery failed", "to", to, "subject", subject, "error", err)
	}
}
