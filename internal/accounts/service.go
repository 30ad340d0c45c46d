package accounts

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	passwordvalidator "github.com/wagslane/go-password-validator"
	"golang.org/x/crypto/bcrypt"

	"kirieshka/infrastructure"
	"kirieshka/internal/email"
	"kirieshka/internal/sessions"
	"kirieshka/internal/verification"
)

const PasswordMinEntropyBits = 30

// UseCase is the account directory's business logic.
type UseCase interface {
	Register(ctx context.Context, name, emailAddr, password string) error
	VerifyEmail(ctx context.Context, emailAddr, code string) error
	Login(ctx context.Context, emailAddr, password string) (*Profile, string, error)
	RequestPasswordReset(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, emailAddr, code, newPassword string) error
}

type accountsUseCase struct {
	users      Storage
	ledger     *verification.Ledger
	registry   *sessions.Registry
	dispatcher *email.Dispatcher
}

func NewUseCase(
	users Storage,
	ledger *verification.Ledger,
	registry *sessions.Registry,
	dispatcher *email.Dispatcher,
) UseCase {
	return &accountsUseCase{
		users:      users,
		ledger:     ledger,
		registry:   registry,
		dispatcher: dispatcher,
	}
}

func validEmail(address string) bool {
	addr, err := mail.ParseAddress(address)
	return err == nil && addr.Address == address
}

func checkCredentials(emailAddr, password string) error {
	if !validEmail(emailAddr) {
		return infrastructure.ErrInvalidEmail
	}
	if err := passwordvalidator.Validate(password, PasswordMinEntropyBits); err != nil {
		return fmt.Errorf("%w: %v", infrastructure.ErrWeakPassword, err)
	}
	return nil
}

// Register creates an unverified user, issues a registration code and hands
// the verification email to the dispatcher. The email outcome never affects
// the result.
func (u *accountsUseCase) Register(ctx context.Context, name, emailAddr, password string) error {
	if name == "" || emailAddr == "" || password == "" {
		return infrastructure.ErrInvalidInput
	}
	if err := checkCredentials(emailAddr, password); err != nil {
		return err
	}

	existing, err := u.users.UserByEmail(emailAddr)
	if err != nil {
		return err
	}
	if existing != nil {
		return infrastructure.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	err = u.users.SaveUser(&User{
		ID:           uuid.New(),
		Name:         name,
		Email:        emailAddr,
		PasswordHash: hash,
		IsVerified:   false,
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return err
	}

	code, err := u.ledger.Issue(emailAddr, verification.PurposeRegistration)
	if err != nil {
		return err
	}

	u.dispatcher.Enqueue(email.VerificationMessage(emailAddr, name, code))
	return nil
}

// VerifyEmail consumes the registration code and marks the user verified.
// The code is single-use: a second attempt reports no pending code.
func (u *accountsUseCase) VerifyEmail(ctx context.Context, emailAddr, code string) error {
	if emailAddr == "" || code == "" {
		return infrastructure.ErrInvalidInput
	}

	user, err := u.users.UserByEmail(emailAddr)
	if err != nil {
		return err
	}
	if user == nil {
		return infrastructure.ErrUserNotFound
	}

	err = u.ledger.Consume(emailAddr, verification.PurposeRegistration, code)
	if err != nil {
		return err
	}

	user.IsVerified = true
	return u.users.UpdateUser(user)
}

// Login checks not-found, not-verified and bad-password in that order, then
// returns the public profile and a fresh session token.
func (u *accountsUseCase) Login(ctx context.Context, emailAddr, password string) (*Profile, string, error) {
	if emailAddr == "" || password == "" {
		return nil, "", infrastructure.ErrInvalidInput
	}

	user, err := u.users.UserByEmail(emailAddr)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", infrastructure.ErrUserNotFound
	}
	if !user.IsVerified {
		return nil, "", infrastructure.ErrNotVerified
	}
	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, "", infrastructure.ErrInvalidPassword
	}

	token, err := u.registry.Create(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user.Profile(), token, nil
}

// RequestPasswordReset issues a reset code for a known user and enqueues the
// email.
func (u *accountsUseCase) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	if emailAddr == "" {
		return infrastructure.ErrInvalidInput
	}

	user, err := u.users.UserByEmail(emailAddr)
	if err != nil {
		return err
	}
	if user == nil {
		return infrastructure.ErrUserNotFound
	}

	code, err := u.ledger.Issue(emailAddr, verification.PurposeReset)
	if err != nil {
		return err
	}

	u.dispatcher.Enqueue(email.PasswordResetMessage(emailAddr, user.Name, code))
	return nil
}

// ResetPassword replaces the stored hash once the reset code checks out. Any
// failure leaves the prior password usable.
func (u *accountsUseCase) ResetPassword(ctx context.Context, emailAddr, code, newPassword string) error {
	if emailAddr == "" || code == "" || newPassword == "" {
		return infrastructure.ErrInvalidInput
	}
	if err := passwordvalidator.Validate(newPassword, PasswordMinEntropyBits); err != nil {
		return fmt.Errorf("%w: %v", infrastructure.ErrWeakPassword, err)
	}

	user, err := u.users.UserByEmail(emailAddr)
	if err != nil {
		return err
	}
	if user == nil {
		return infrastructure.ErrUserNotFound
	}

	err = u.ledger.Consume(emailAddr, verification.PurposeReset, code)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return u.users.UpdateUser(user)
}
