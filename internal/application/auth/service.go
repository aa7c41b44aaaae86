package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/abmacros/server/internal/domain"
	"github.com/abmacros/server/internal/pkg/phone"
)

// Test account constants. The reserved identity gets a fixed well-known code
// so automated tests and demos can log in without a live SMS provider.
const (
	TestPhone = "123"
	TestCode  = "123456"
)

// codeTTL is the validity window of an issued verification code.
const codeTTL = 600 * time.Second

// VerificationStore persists pending one-time codes keyed by normalized phone.
type VerificationStore interface {
	Put(ctx context.Context, v *domain.VerificationRecord) error
	Get(ctx context.Context, phone string) (*domain.VerificationRecord, error)
	Delete(ctx context.Context, phone string) error
}

// SMSSender dispatches a message to a phone number via the external provider.
type SMSSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

// TokenSigner mints a signed bearer credential for a verified identity.
type TokenSigner interface {
	Sign(identity string) (string, error)
}

// Service implements the verification-code lifecycle: issuance, verification
// and token minting.
type Service interface {
	// SendCode issues a 6-digit code for the phone number and dispatches it.
	SendCode(ctx context.Context, rawPhone string) error
	// VerifyCode checks a presented code. A false result is a normal negative
	// outcome (wrong code, expired code, or no pending verification), not an error.
	VerifyCode(ctx context.Context, rawPhone, code string) (bool, error)
	// IssueToken mints a signed bearer token for the normalized identity.
	IssueToken(rawPhone string) (string, error)
}

// ServiceDeps bundles the collaborators of the auth service.
type ServiceDeps struct {
	Verifications VerificationStore
	SMSSender     SMSSender
	Signer        TokenSigner
	DevMode       bool // skip SMS dispatch, log the code instead
}

type service struct {
	verifications VerificationStore
	smsSender     SMSSender
	signer        TokenSigner
	devMode       bool
	now           func() time.Time
}

func NewService(deps ServiceDeps) Service {
	return &service{
		verifications: deps.Verifications,
		smsSender:     deps.SMSSender,
		signer:        deps.Signer,
		devMode:       deps.DevMode,
		now:           time.Now,
	}
}

func (s *service) SendCode(ctx context.Context, rawPhone string) error {
	// The test account is matched on raw input and stores its fixed code
	// without ever dispatching a message.
	if rawPhone == TestPhone {
		slog.Info("test account code requested, skipping SMS")
		return s.store(ctx, phone.Normalize(rawPhone), TestCode)
	}

	normalized := phone.Normalize(rawPhone)
	code, err := generateCode()
	if err != nil {
		return err
	}
	if err := s.store(ctx, normalized, code); err != nil {
		return err
	}

	if s.devMode {
		slog.Info("dev mode: skipping SMS", "phone", normalized, "code", code)
		return nil
	}

	msg := "Your AB Macros verification code: " + code
	if err := s.smsSender.SendSMS(ctx, normalized, msg); err != nil {
		// The code stays stored; the caller must request a new one.
		return fmt.Errorf("send sms to %s: %w", normalized, domain.ErrDelivery)
	}
	return nil
}

func (s *service) VerifyCode(ctx context.Context, rawPhone, code string) (bool, error) {
	// Test pair short-circuits before any store access.
	if rawPhone == TestPhone && code == TestCode {
		slog.Info("test account verification accepted")
		return true, nil
	}

	normalized := phone.Normalize(rawPhone)
	v, err := s.verifications.Get(ctx, normalized)
	if err != nil {
		if isNotFound(err) {
			// No pending verification is a normal negative outcome.
			return false, nil
		}
		return false, fmt.Errorf("load verification: %w", err)
	}

	// A wrong code and an expired code are deliberately indistinguishable
	// to the caller; the record stays in place so a correct, unexpired
	// retry can still succeed.
	if v.Code != code || s.now().Unix() >= v.ExpiresAt {
		return false, nil
	}

	// Single use: the record is gone before the caller sees success.
	if err := s.verifications.Delete(ctx, normalized); err != nil {
		return false, fmt.Errorf("consume verification: %w", err)
	}
	return true, nil
}

func (s *service) IssueToken(rawPhone string) (string, error) {
	return s.signer.Sign(phone.Normalize(rawPhone))
}

func (s *service) store(ctx context.Context, normalized, code string) error {
	v := &domain.VerificationRecord{
		Phone:     normalized,
		Code:      code,
		ExpiresAt: s.now().Add(codeTTL).Unix(),
	}
	if err := s.verifications.Put(ctx, v); err != nil {
		return fmt.Errorf("store verification: %w", err)
	}
	return nil
}

// generateCode draws a 6-digit code uniformly from [0, 1_000_000).
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
