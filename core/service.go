package core

import (
	"context"
	"io"
	"time"
)

// ProfileStore persists survey profiles. Implementations must enforce idName
// uniqueness and translate their duplicate-key/not-found conditions into
// ErrDuplicateKey and ErrNotFound.
type ProfileStore interface {
	Create(ctx context.Context, p UserProfile) error
	All(ctx context.Context) ([]UserProfile, error)
	ByIDName(ctx context.Context, idName string) (*UserProfile, error)
	ByEmail(ctx context.Context, email string) ([]UserProfile, error)
	// ExistsByEmail answers presence without fetching document bodies.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByEmail(ctx context.Context, email string) (int64, error)
	// Search matches idName or email by case-insensitive substring.
	Search(ctx context.Context, q string) ([]UserProfile, error)
	// Rename applies the update as a single conditional write so a concurrent
	// claim of the target idName surfaces as ErrDuplicateKey, not a lost write.
	Rename(ctx context.Context, idName string, upd ProfileUpdate) error
	Delete(ctx context.Context, idName string) error
}

// ObjectStore is the cloud bucket surface: direct uploads, listing, deletes,
// and time-limited presigned URLs.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	List(ctx context.Context) ([]ObjectInfo, error)
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
	PresignPut(ctx context.Context, key string, expires time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// EphemeralStore is a minimal key-value interface used for short-lived OTP
// state. Implementations should honor TTL on Set and treat missing keys as
// (found=false, err=nil).
type EphemeralStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// EmailSender delivers OTP codes.
type EmailSender interface {
	SendOTP(ctx context.Context, to, code string, ttl time.Duration) error
}

// Options configures issued tokens and OTP lifetimes.
type Options struct {
	Issuer        string
	SessionSecret []byte
	SessionTTL    time.Duration // default 7 days
	OTPTTL        time.Duration // default 5 minutes
	// MaxUploadBytes caps direct uploads routed through the server.
	// Larger files go through presigned PUT URLs. Default 5 MB.
	MaxUploadBytes int64
}

// Service is the application core used by the HTTP adapters.
type Service struct {
	opts      Options
	profiles  ProfileStore
	objects   ObjectStore
	ephemeral EphemeralStore
	email     EmailSender
}

func NewService(opts Options) *Service {
	if opts.Issuer == "" {
		opts.Issuer = "bgaze"
	}
	if opts.SessionTTL == 0 {
		opts.SessionTTL = 7 * 24 * time.Hour
	}
	if opts.OTPTTL == 0 {
		opts.OTPTTL = 5 * time.Minute
	}
	if opts.MaxUploadBytes == 0 {
		opts.MaxUploadBytes = 5 << 20
	}
	return &Service{opts: opts}
}

func (s *Service) WithProfileStore(store ProfileStore) *Service { s.profiles = store; return s }
func (s *Service) WithObjectStore(store ObjectStore) *Service   { s.objects = store; return s }
func (s *Service) WithEphemeralStore(store EphemeralStore) *Service {
	s.ephemeral = store
	return s
}
func (s *Service) WithEmailSender(sender EmailSender) *Service { s.email = sender; return s }

func (s *Service) Options() Options { return s.opts }

// MaxUploadBytes is exposed so the HTTP layer can cap request bodies before
// buffering them.
func (s *Service) MaxUploadBytes() int64 { return s.opts.MaxUploadBytes }
