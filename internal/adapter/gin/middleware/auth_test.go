package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	domain "notes-service/internal/domain/user"
	"notes-service/pkg/token"
)

// stubUserRepo is a fixed-content auth.Repository.
type stubUserRepo struct {
	users map[int64]*domain.User
}

func (r *stubUserRepo) Create(ctx context.Context, u *domain.User) (int64, error) {
	return 0, nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.users[id], nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, nil
}

func setupGate(t *testing.T) (*gin.Engine, *token.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tm := token.NewManager("test-secret", time.Hour)
	repo := &stubUserRepo{users: map[int64]*domain.User{
		7: {ID: 7, Name: "Ann", Email: "ann@x.com"},
	}}

	r := gin.New()
	r.GET("/protected", RequireAuth(tm, repo, zaptest.NewLogger(t)), func(c *gin.Context) {
		id, ok := Identity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return r, tm
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth_ValidToken(t *testing.T) {
	r, tm := setupGate(t)

	tok, err := tm.Generate(7)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	r, _ := setupGate(t)

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthenticated")
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	r, tm := setupGate(t)

	tok, err := tm.Generate(7)
	require.NoError(t, err)

	for _, header := range []string{"Basic abc", tok, "Bearer"} {
		w := doGet(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequireAuth_BadToken(t *testing.T) {
	r, _ := setupGate(t)

	other := token.NewManager("other-secret", time.Hour)
	forged, err := other.Generate(7)
	require.NoError(t, err)

	for _, tok := range []string{"garbage", forged} {
		w := doGet(r, "Bearer "+tok)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	r, _ := setupGate(t)

	expired := token.NewManager("test-secret", -time.Minute)
	tok, err := expired.Generate(7)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_DeletedUser(t *testing.T) {
	r, tm := setupGate(t)

	// Valid token whose subject no longer resolves to a stored user
	tok, err := tm.Generate(99)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
