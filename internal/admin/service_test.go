package admin_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scripta/internal/admin"
	"github.com/taibuivan/scripta/internal/audit"
	"github.com/taibuivan/scripta/internal/harvest"
	"github.com/taibuivan/scripta/internal/platform/sec"
)

// writeKeyPair generates a throwaway RSA key pair on disk for the token
// service under test.
func writeKeyPair(t *testing.T) (privatePath, publicPath string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()
	privatePath = filepath.Join(dir, "private.pem")
	publicPath = filepath.Join(dir, "public.pem")

	privatePEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	require.NoError(t, os.WriteFile(privatePath, privatePEM, 0o600))

	publicBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicBytes})
	require.NoError(t, os.WriteFile(publicPath, publicPEM, 0o600))

	return privatePath, publicPath
}

type fakeAuditRepo struct {
	contentTypes map[string]*audit.ContentType
	entries      []*audit.Entry
}

func (repo *fakeAuditRepo) ContentType(_ context.Context, appLabel, model string) (*audit.ContentType, error) {
	return repo.contentTypes[appLabel+"."+model], nil
}

func (repo *fakeAuditRepo) LatestAction(context.Context, []audit.Ref) (*time.Time, error) {
	return nil, nil
}

func (repo *fakeAuditRepo) EntriesFor(_ context.Context, ref audit.Ref, limit int) ([]*audit.Entry, error) {
	var out []*audit.Entry
	for _, entry := range repo.entries {
		if entry.ContentTypeID == ref.ContentTypeID && entry.ObjectID == ref.ObjectID {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ActionTime.After(out[j].ActionTime) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func newService(t *testing.T, keyHash string, auditRepo *fakeAuditRepo) *admin.Service {
	t.Helper()

	privatePath, publicPath := writeKeyPair(t)
	tokens, err := sec.NewTokenService(privatePath, publicPath, "scripta.app")
	require.NoError(t, err)

	if auditRepo == nil {
		auditRepo = &fakeAuditRepo{contentTypes: map[string]*audit.ContentType{}}
	}
	return admin.NewService(tokens, keyHash, harvest.NopModifiedCache{}, auditRepo)
}

/*
TestIssueToken verifies the key exchange: a matching key yields a
verifiable admin JWT, a wrong key or disabled surface does not.
*/
func TestIssueToken(t *testing.T) {
	keyHash, err := sec.HashKey("correct horse battery staple")
	require.NoError(t, err)

	t.Run("valid key", func(t *testing.T) {
		service := newService(t, keyHash, nil)

		token, ttl, err := service.IssueToken("correct horse battery staple")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Positive(t, ttl)
	})

	t.Run("wrong key", func(t *testing.T) {
		service := newService(t, keyHash, nil)

		_, _, err := service.IssueToken("guess")
		assert.Error(t, err)
	})

	t.Run("disabled surface", func(t *testing.T) {
		service := newService(t, "", nil)

		_, _, err := service.IssueToken("correct horse battery staple")
		assert.Error(t, err)
	})
}

/*
TestAuditTrail verifies family resolution and newest-first retrieval.
*/
func TestAuditTrail(t *testing.T) {
	auditRepo := &fakeAuditRepo{
		contentTypes: map[string]*audit.ContentType{
			"publications.thesis": {ID: 9, AppLabel: "publications", Model: "thesis"},
		},
		entries: []*audit.Entry{
			{ID: 1, ContentTypeID: 9, ObjectID: "7", ActionTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 2, ContentTypeID: 9, ObjectID: "7", ActionTime: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: 3, ContentTypeID: 9, ObjectID: "8", ActionTime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	service := newService(t, "", auditRepo)

	t.Run("registered family", func(t *testing.T) {
		entries, err := service.AuditTrail(context.Background(), "publications_thesis", "7", 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, int64(2), entries[0].ID, "newest entry first")
	})

	t.Run("unregistered family", func(t *testing.T) {
		_, err := service.AuditTrail(context.Background(), "publications_podcast", "7", 10)
		assert.Error(t, err)
	})
}
