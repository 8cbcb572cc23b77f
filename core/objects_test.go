package core

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	mu       sync.Mutex
	uploaded map[string][]byte
	presigns []struct {
		key     string
		expires time.Duration
		put     bool
	}
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{uploaded: make(map[string][]byte)}
}

func (f *fakeObjectStore) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	b, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploaded[key] = b
	return nil
}

func (f *fakeObjectStore) List(ctx context.Context) ([]ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []ObjectInfo{}
	for k, v := range f.uploaded {
		out = append(out, ObjectInfo{Key: k, Size: int64(len(v))})
	}
	return out, nil
}

func (f *fakeObjectStore) presign(key string, expires time.Duration, put bool) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presigns = append(f.presigns, struct {
		key     string
		expires time.Duration
		put     bool
	}{key, expires, put})
	return "https://bucket.example/" + key + "?signed"
}

func (f *fakeObjectStore) PresignGet(ctx context.Context, key string, expires time.Duration) (string, error) {
	return f.presign(key, expires, false), nil
}

func (f *fakeObjectStore) PresignPut(ctx context.Context, key string, expires time.Duration) (string, error) {
	return f.presign(key, expires, true), nil
}

func (f *fakeObjectStore) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.uploaded, key)
	return nil
}

func newObjectTestService() (*Service, *fakeObjectStore) {
	store := newFakeObjectStore()
	svc := NewService(Options{SessionSecret: []byte("test-secret")}).WithObjectStore(store)
	return svc, store
}

func TestUploadObject_KeyFromTimestampAndFilename(t *testing.T) {
	svc, store := newObjectTestService()

	key, err := svc.UploadObject(context.Background(), "my report.csv", "text/csv", bytes.NewReader([]byte("a,b")), 3)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(key, "-my_report.csv"), "key %q should end with the sanitized filename", key)
	require.Contains(t, store.uploaded, key)

	// The timestamp prefix parses back.
	prefix := strings.SplitN(key, "-", 2)[0]
	_, err = time.Parse("20060102T150405", prefix)
	require.NoError(t, err)
}

func TestUploadObject_SizeCap(t *testing.T) {
	svc, _ := newObjectTestService()
	_, err := svc.UploadObject(context.Background(), "big.bin", "", bytes.NewReader(nil), (5<<20)+1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestUploadObject_RequiresFilename(t *testing.T) {
	svc, _ := newObjectTestService()
	_, err := svc.UploadObject(context.Background(), " ", "", bytes.NewReader(nil), 1)
	require.ErrorIs(t, err, ErrValidation)
}

func TestDownloadURL_OneHourExpiry(t *testing.T) {
	svc, store := newObjectTestService()

	url, err := svc.DownloadURL(context.Background(), "some-key")
	require.NoError(t, err)
	require.NotEmpty(t, url)
	require.Len(t, store.presigns, 1)
	require.Equal(t, time.Hour, store.presigns[0].expires)
	require.False(t, store.presigns[0].put)
}

func TestPresignUpload_TenMinuteExpiryAndUniqueKeys(t *testing.T) {
	svc, store := newObjectTestService()
	ctx := context.Background()

	url, key1, err := svc.PresignUpload(ctx, "video.mp4")
	require.NoError(t, err)
	require.NotEmpty(t, url)
	_, key2, err := svc.PresignUpload(ctx, "video.mp4")
	require.NoError(t, err)

	require.NotEqual(t, key1, key2, "same filename presigned twice must not collide")
	require.True(t, strings.HasSuffix(key1, "-video.mp4"))
	require.Equal(t, UploadURLTTL, store.presigns[0].expires)
	require.True(t, store.presigns[0].put)
}

func TestDeleteObject_RequiresKey(t *testing.T) {
	svc, _ := newObjectTestService()
	require.ErrorIs(t, svc.DeleteObject(context.Background(), ""), ErrValidation)
}

func TestSanitizeFilename(t *testing.T) {
	require.Equal(t, "report.csv", sanitizeFilename("../../report.csv"))
	require.Equal(t, "report.csv", sanitizeFilename(`C:\docs\report.csv`))
	require.Equal(t, "my_report.csv", sanitizeFilename("my report.csv"))
}
