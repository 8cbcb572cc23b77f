package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	memorystore "github.com/bgaze-labs/bgaze/storage/memory"
)

type captureSender struct {
	mu    sync.Mutex
	sent  []string // codes, in send order
	fail  bool
	to    []string
}

func (s *captureSender) SendOTP(ctx context.Context, to, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("smtp: 550 relay refused")
	}
	s.sent = append(s.sent, code)
	s.to = append(s.to, to)
	return nil
}

func (s *captureSender) lastCode(t *testing.T) string {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.sent)
	return s.sent[len(s.sent)-1]
}

func newOTPTestService(sender *captureSender, otpTTL time.Duration) *Service {
	return NewService(Options{
		SessionSecret: []byte("test-secret"),
		OTPTTL:        otpTTL,
	}).
		WithEphemeralStore(memorystore.NewKV()).
		WithEmailSender(sender)
}

func TestIssueAndVerifyEmailOTP_SingleUse(t *testing.T) {
	sender := &captureSender{}
	svc := newOTPTestService(sender, 0)
	ctx := context.Background()

	require.NoError(t, svc.IssueEmailOTP(ctx, "a@b.com"))
	code := sender.lastCode(t)
	require.Len(t, code, 6)

	// Wrong code is a soft failure, not an error.
	token, verified, err := svc.VerifyEmailOTP(ctx, "a@b.com", "000000")
	require.NoError(t, err)
	require.False(t, verified)
	require.Empty(t, token)

	// A wrong attempt does not consume the code.
	token, verified, err = svc.VerifyEmailOTP(ctx, "a@b.com", code)
	require.NoError(t, err)
	require.True(t, verified)
	require.NotEmpty(t, token)

	// Single use: the same code is rejected the second time.
	_, verified, err = svc.VerifyEmailOTP(ctx, "a@b.com", code)
	require.NoError(t, err)
	require.False(t, verified)
}

func TestIssueEmailOTP_OverwritesPriorCode(t *testing.T) {
	sender := &captureSender{}
	svc := newOTPTestService(sender, 0)
	ctx := context.Background()

	require.NoError(t, svc.IssueEmailOTP(ctx, "a@b.com"))
	first := sender.lastCode(t)
	require.NoError(t, svc.IssueEmailOTP(ctx, "a@b.com"))
	second := sender.lastCode(t)

	if first != second {
		_, verified, err := svc.VerifyEmailOTP(ctx, "a@b.com", first)
		require.NoError(t, err)
		require.False(t, verified, "overwritten code must not verify")
	}
	_, verified, err := svc.VerifyEmailOTP(ctx, "a@b.com", second)
	require.NoError(t, err)
	require.True(t, verified)
}

func TestVerifyEmailOTP_Expired(t *testing.T) {
	sender := &captureSender{}
	svc := newOTPTestService(sender, 25*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, svc.IssueEmailOTP(ctx, "a@b.com"))
	code := sender.lastCode(t)
	time.Sleep(60 * time.Millisecond)

	// Correct code after expiry is not a match.
	_, verified, err := svc.VerifyEmailOTP(ctx, "a@b.com", code)
	require.NoError(t, err)
	require.False(t, verified)
}

func TestIssueEmailOTP_DeliveryFailureRollsBack(t *testing.T) {
	sender := &captureSender{fail: true}
	svc := newOTPTestService(sender, 0)
	ctx := context.Background()

	err := svc.IssueEmailOTP(ctx, "a@b.com")
	require.ErrorIs(t, err, ErrDeliveryFailed)

	// The undelivered code must not linger: nothing verifies.
	kv := svc.ephemeral
	_, ok, err := kv.Get(ctx, keyEmailOTP+"a@b.com")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIssueEmailOTP_MissingEmail(t *testing.T) {
	svc := newOTPTestService(&captureSender{}, 0)
	require.ErrorIs(t, svc.IssueEmailOTP(context.Background(), "   "), ErrValidation)
}

func TestVerifyEmailOTP_NormalizesEmail(t *testing.T) {
	sender := &captureSender{}
	svc := newOTPTestService(sender, 0)
	ctx := context.Background()

	require.NoError(t, svc.IssueEmailOTP(ctx, " A@B.com "))
	_, verified, err := svc.VerifyEmailOTP(ctx, "a@b.com", sender.lastCode(t))
	require.NoError(t, err)
	require.True(t, verified)
}

func TestGenerateOTP_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.GreaterOrEqual(t, code, "100000")
		require.LessOrEqual(t, code, "999999")
	}
}
