package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/txproof/txproof-api/internal/db"
	"github.com/txproof/txproof-api/internal/guard"
)

// ErrInvalidAPIKey is returned when the provided API key does not resolve
// to a credential.
var ErrInvalidAPIKey = errors.New("invalid API key")

// ContextKeyCredential is the gin context key the authenticated credential
// is stored under.
const ContextKeyCredential = "credential"

// validateAPIKey resolves an API key to its credential. The key prefix is
// used for the database lookup; the bcrypt comparison against the stored
// hash is what actually authenticates.
func validateAPIKey(c *gin.Context, queries db.Querier, apiKey string) (db.Credential, error) {
	keyPrefix, ok := guard.KeyPrefixOf(apiKey)
	if !ok {
		return db.Credential{}, ErrInvalidAPIKey
	}

	credential, err := queries.GetCredentialByKeyPrefix(c.Request.Context(), keyPrefix)
	if err != nil {
		return db.Credential{}, ErrInvalidAPIKey
	}

	if err := guard.CompareAPIKeyHash(apiKey, credential.KeyHash); err != nil {
		return db.Credential{}, ErrInvalidAPIKey
	}

	return credential, nil
}

// EnsureValidAPIKey is a middleware that requires a valid API key in the
// X-API-Key header and stores the resolved credential on the context.
func EnsureValidAPIKey(queries db.Querier) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No API key provided"})
			c.Abort()
			return
		}

		credential, err := validateAPIKey(c, queries, apiKey)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(ContextKeyCredential, credential)
		c.Next()
	}
}

// CredentialFromContext returns the credential set by EnsureValidAPIKey.
func CredentialFromContext(c *gin.Context) (db.Credential, bool) {
	value, exists := c.Get(ContextKeyCredential)
	if !exists {
		return db.Credential{}, false
	}
	credential, ok := value.(db.Credential)
	return credential, ok
}
