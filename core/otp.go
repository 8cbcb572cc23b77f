package core

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const keyEmailOTP = "bgaze:otp:email:"

// otpRecord is the pending state for one e-mail. At most one record is live
// per address; reissuing overwrites it, and the store's TTL expires it.
type otpRecord struct {
	Code     string    `json:"code"`
	IssuedAt time.Time `json:"issued_at"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// generateOTP returns a 6-digit code drawn uniformly from [100000, 999999].
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// IssueEmailOTP generates a fresh code for the address, stores it with the
// configured TTL (overwriting any prior pending code), and mails it. If the
// mail send fails the stored code is rolled back so an undeliverable code
// can never block a later issue.
func (s *Service) IssueEmailOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return fmt.Errorf("%w: email", ErrValidation)
	}
	code, err := generateOTP()
	if err != nil {
		return err
	}
	rec := otpRecord{Code: code, IssuedAt: time.Now().UTC()}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := s.ephemeral.Set(ctx, keyEmailOTP+email, b, s.opts.OTPTTL); err != nil {
		return err
	}
	if err := s.email.SendOTP(ctx, email, code, s.opts.OTPTTL); err != nil {
		_ = s.ephemeral.Del(ctx, keyEmailOTP+email)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// VerifyEmailOTP consumes the pending code for the address. A match deletes
// the record (single use) and returns a freshly minted session token with
// verified=true. A missing, expired, or mismatched code is a soft failure:
// verified=false and a nil error.
func (s *Service) VerifyEmailOTP(ctx context.Context, email, code string) (token string, verified bool, err error) {
	email = normalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return "", false, fmt.Errorf("%w: email, otp", ErrValidation)
	}
	b, ok, err := s.ephemeral.Get(ctx, keyEmailOTP+email)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}
	var rec otpRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return "", false, err
	}
	if subtle.ConstantTimeCompare([]byte(rec.Code), []byte(code)) != 1 {
		return "", false, nil
	}
	if err := s.ephemeral.Del(ctx, keyEmailOTP+email); err != nil {
		return "", false, err
	}
	token, err = s.IssueSessionToken(email)
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}
