// Package admin implements the operator surface: token issuance for the
// configured API key, feed-cache maintenance, and audit-trail
// inspection. Nothing here touches the catalog write path; the surface
// exists for feed operators, not content editors.
package admin

import (
	"context"
	"time"

	"github.com/taibuivan/scripta/internal/audit"
	"github.com/taibuivan/scripta/internal/harvest"
	"github.com/taibuivan/scripta/internal/platform/apperr"
	"github.com/taibuivan/scripta/internal/platform/constants"
	"github.com/taibuivan/scripta/internal/platform/sec"
)

// # Service Layer

// Service orchestrates the operator workflows. KeyHash is the bcrypt
// hash of the single shared operator key; an empty hash disables token
// issuance entirely.
type Service struct {
	tokens    *sec.TokenService
	keyHash   string
	cache     harvest.ModifiedCache
	auditRepo audit.Repository
}

// NewService constructs an admin [Service].
func NewService(tokens *sec.TokenService, keyHash string, cache harvest.ModifiedCache, auditRepo audit.Repository) *Service {
	return &Service{
		tokens:    tokens,
		keyHash:   keyHash,
		cache:     cache,
		auditRepo: auditRepo,
	}
}

/*
IssueToken exchanges the operator API key for a short-lived admin JWT.

Description: The plain key is compared against the configured bcrypt
hash; on success an RS256 access token with the admin role is signed.
When no key hash is configured the surface is disabled and every
exchange fails.

Parameters:
  - apiKey: string (The plain operator key)

Returns:
  - string: Signed JWT
  - time.Duration: Token lifetime
  - error: apperr.Unauthorized on mismatch or a disabled surface
*/
func (service *Service) IssueToken(apiKey string) (string, time.Duration, error) {
	if service.keyHash == "" || !sec.CheckKeyHash(apiKey, service.keyHash) {
		return "", 0, apperr.Unauthorized("Invalid operator key")
	}

	token, err := service.tokens.GenerateAccessToken("operator", "operator", string(sec.RoleAdmin), constants.AdminTokenTTL)
	if err != nil {
		return "", 0, apperr.Internal(err)
	}
	return token, constants.AdminTokenTTL, nil
}

/*
FlushCache clears every cached modification instant.

Description: Meant for use after bulk CMS imports, when cached instants
may lag the audit log by up to the configured TTL.

Parameters:
  - context: context.Context

Returns:
  - error: Cache backend failures
*/
func (service *Service) FlushCache(context context.Context) error {
	return service.cache.Flush(context)
}

/*
AuditTrail retrieves recent audit entries for one entity.

Description: The family is a CMS table name ("publications_thesis");
it resolves through the content-type registry the same way the
modification tracker resolves it.

Parameters:
  - context: context.Context
  - family: string (CMS table name)
  - objectID: string
  - limit: int (Newest-first entry cap)

Returns:
  - []*audit.Entry: Matching entries, newest first
  - error: apperr.NotFound for an unregistered family
*/
func (service *Service) AuditTrail(context context.Context, family, objectID string, limit int) ([]*audit.Entry, error) {
	appLabel, model := audit.SplitFamily(family)

	contentType, err := service.auditRepo.ContentType(context, appLabel, model)
	if err != nil {
		return nil, err
	}
	if contentType == nil {
		return nil, apperr.NotFound("Entity family")
	}

	return service.auditRepo.EntriesFor(context, audit.Ref{
		ContentTypeID: contentType.ID,
		ObjectID:      objectID,
	}, limit)
}
