package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/txproof/txproof-api/internal/auth"
	"github.com/txproof/txproof-api/internal/db"
	"github.com/txproof/txproof-api/internal/guard"
	"github.com/txproof/txproof-api/internal/logger"
	"github.com/txproof/txproof-api/internal/mocks"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

func setupRouter(querier db.Querier) *gin.Engine {
	router := gin.New()
	router.Use(auth.EnsureValidAPIKey(querier))
	router.GET("/protected", func(c *gin.Context) {
		credential, ok := auth.CredentialFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "credential missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": credential.Name})
	})
	return router
}

func request(router *gin.Engine, apiKey string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestEnsureValidAPIKey(t *testing.T) {
	fullKey, keyPrefix, err := guard.GenerateAPIKey()
	require.NoError(t, err)
	keyHash, err := guard.HashAPIKey(fullKey)
	require.NoError(t, err)

	credential := db.Credential{
		ID:        uuid.New(),
		Name:      "acme",
		KeyPrefix: keyPrefix,
		KeyHash:   keyHash,
	}

	t.Run("valid key passes and sets credential", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().
			GetCredentialByKeyPrefix(gomock.Any(), keyPrefix).
			Return(credential, nil)

		w := request(setupRouter(mockQuerier), fullKey)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "acme")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		w := request(setupRouter(mockQuerier), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown prefix is rejected", func(t *testing.T) {
		otherKey, otherPrefix, err := guard.GenerateAPIKey()
		require.NoError(t, err)

		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().
			GetCredentialByKeyPrefix(gomock.Any(), otherPrefix).
			Return(db.Credential{}, pgx.ErrNoRows)

		w := request(setupRouter(mockQuerier), otherKey)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("matching prefix with wrong secret is rejected", func(t *testing.T) {
		// An attacker who learned the prefix still fails the hash compare.
		forged := keyPrefix + "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().
			GetCredentialByKeyPrefix(gomock.Any(), keyPrefix).
			Return(credential, nil)

		w := request(setupRouter(mockQuerier), forged)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed key is rejected without a lookup", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		w := request(setupRouter(mockQuerier), "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
