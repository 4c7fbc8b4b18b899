package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"notes-service/internal/adapter/cache"
	"notes-service/internal/adapter/db/postgres"
	ginhandler "notes-service/internal/adapter/gin/handler"
	ginrouter "notes-service/internal/adapter/gin/router"
	"notes-service/internal/adapter/repository/cached"
	"notes-service/internal/usecase/auth"
	"notes-service/internal/usecase/note"
	"notes-service/pkg/token"
)

// NotesAPIIntegrationTestSuite exercises the full HTTP surface against a real
// router, an in-memory SQLite database, and a miniredis-backed user cache.
// Only the network and Postgres are substituted.
type NotesAPIIntegrationTestSuite struct {
	suite.Suite
	server *httptest.Server
	db     *gorm.DB
	redis  *miniredis.Miniredis
}

func (s *NotesAPIIntegrationTestSuite) SetupTest() {
	logger := zaptest.NewLogger(s.T())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	s.Require().NoError(err)

	// Every pooled connection gets its own in-memory database
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(db.AutoMigrate(&postgres.UserSchema{}, &postgres.NoteSchema{}))
	s.db = db

	s.redis = miniredis.RunT(s.T())
	redisClient := goredis.NewClient(&goredis.Options{Addr: s.redis.Addr()})

	userCache := cache.NewRedisUserCache(redisClient, 5*time.Minute, logger)
	userRepo := cached.NewCachedUserRepository(postgres.NewUserRepoPG(db, logger), userCache, logger)
	noteRepo := postgres.NewNoteRepoPG(db, logger)

	tokens := token.NewManager("integration-test-secret", time.Hour)

	authUC := auth.New(userRepo, tokens, logger)
	noteUC := note.New(noteRepo, logger)

	router := ginrouter.SetupRouter(
		ginhandler.NewAuthHandler(authUC, logger),
		ginhandler.NewNoteHandler(noteUC, logger),
		tokens,
		userRepo,
		logger,
	)

	s.server = httptest.NewServer(router)
}

func (s *NotesAPIIntegrationTestSuite) TearDownTest() {
	s.server.Close()
}

// do issues a JSON request against the test server and returns the status
// code and decoded body.
func (s *NotesAPIIntegrationTestSuite) do(method, path, bearer string, body any) (int, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, s.server.URL+path, &buf)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		s.Require().NoError(json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func (s *NotesAPIIntegrationTestSuite) doList(bearer string) (int, []map[string]any) {
	req, err := http.NewRequest(http.MethodGet, s.server.URL+"/api/notes", nil)
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var decoded []map[string]any
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

// signup registers an account and returns its bearer token.
func (s *NotesAPIIntegrationTestSuite) signup(name, email string) string {
	code, body := s.do(http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	s.Require().Equal(http.StatusCreated, code)
	tok, _ := body["token"].(string)
	s.Require().NotEmpty(tok)
	return tok
}

func (s *NotesAPIIntegrationTestSuite) createNote(bearer, title, content string) int64 {
	code, body := s.do(http.MethodPost, "/api/notes", bearer, map[string]string{
		"title":   title,
		"content": content,
	})
	s.Require().Equal(http.StatusCreated, code)
	id, ok := body["id"].(float64)
	s.Require().True(ok)
	return int64(id)
}

func (s *NotesAPIIntegrationTestSuite) TestSignupLoginProfile() {
	tok := s.signup("Alice", "alice@example.com")

	code, body := s.do(http.MethodGet, "/api/auth/profile", tok, nil)
	s.Equal(http.StatusOK, code)
	s.Equal("alice@example.com", body["email"])
	s.NotContains(body, "password")

	code, body = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	})
	s.Equal(http.StatusOK, code)
	s.NotEmpty(body["token"])

	code, body = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	s.Equal(http.StatusUnauthorized, code)
	s.Equal("invalid email or password", body["message"])

	// Unknown email gets the same message as a wrong password
	code, body = s.do(http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	s.Equal(http.StatusUnauthorized, code)
	s.Equal("invalid email or password", body["message"])
}

func (s *NotesAPIIntegrationTestSuite) TestDuplicateSignup() {
	s.signup("Alice", "alice@example.com")

	code, body := s.do(http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Impostor",
		"email":    "alice@example.com",
		"password": "secret456",
	})
	s.Equal(http.StatusBadRequest, code)
	s.Equal("already_exists", body["error"])
}

func (s *NotesAPIIntegrationTestSuite) TestSignupValidation() {
	code, body := s.do(http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Alice",
		"email":    "not-an-email",
		"password": "secret123",
	})
	s.Equal(http.StatusBadRequest, code)
	s.Equal("validation_error", body["error"])

	code, _ = s.do(http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "short",
	})
	s.Equal(http.StatusBadRequest, code)
}

// TestNoteOwnershipLifecycle walks a note through creation, a foreign access
// attempt, deletion by its owner, and a read after deletion.
func (s *NotesAPIIntegrationTestSuite) TestNoteOwnershipLifecycle() {
	alice := s.signup("Alice", "alice@example.com")
	bob := s.signup("Bob", "bob@example.com")

	noteID := s.createNote(alice, "private", "alice's note")
	path := fmt.Sprintf("/api/notes/%d", noteID)

	// Bob can see the note exists but never its content
	code, body := s.do(http.MethodGet, path, bob, nil)
	s.Equal(http.StatusUnauthorized, code)
	s.Equal("not_authorized", body["error"])

	code, _ = s.do(http.MethodDelete, path, bob, nil)
	s.Equal(http.StatusUnauthorized, code)

	code, body = s.do(http.MethodDelete, path, alice, nil)
	s.Equal(http.StatusOK, code)
	s.Equal("note removed", body["message"])

	code, body = s.do(http.MethodGet, path, alice, nil)
	s.Equal(http.StatusNotFound, code)
	s.Equal("not_found", body["error"])
}

func (s *NotesAPIIntegrationTestSuite) TestListIsOwnerScopedAndOrdered() {
	alice := s.signup("Alice", "alice@example.com")
	bob := s.signup("Bob", "bob@example.com")

	first := s.createNote(alice, "first", "a")
	second := s.createNote(alice, "second", "b")
	s.createNote(bob, "bob's", "c")

	code, notes := s.doList(alice)
	s.Equal(http.StatusOK, code)
	s.Require().Len(notes, 2)

	// Newest creation first
	s.Equal(float64(second), notes[0]["id"])
	s.Equal(float64(first), notes[1]["id"])

	code, notes = s.doList(bob)
	s.Equal(http.StatusOK, code)
	s.Require().Len(notes, 1)
	s.Equal("bob's", notes[0]["title"])
}

func (s *NotesAPIIntegrationTestSuite) TestPartialUpdate() {
	alice := s.signup("Alice", "alice@example.com")
	noteID := s.createNote(alice, "original title", "original content")
	path := fmt.Sprintf("/api/notes/%d", noteID)

	code, body := s.do(http.MethodPut, path, alice, map[string]string{
		"title": "renamed",
	})
	s.Equal(http.StatusOK, code)
	s.Equal("renamed", body["title"])
	s.Equal("original content", body["content"])

	// Empty strings leave fields untouched
	code, body = s.do(http.MethodPut, path, alice, map[string]string{
		"title":   "",
		"content": "new content",
	})
	s.Equal(http.StatusOK, code)
	s.Equal("renamed", body["title"])
	s.Equal("new content", body["content"])

	// A body-less PUT changes nothing
	code, body = s.do(http.MethodPut, path, alice, nil)
	s.Equal(http.StatusOK, code)
	s.Equal("renamed", body["title"])
	s.Equal("new content", body["content"])
}

func (s *NotesAPIIntegrationTestSuite) TestMalformedNoteID() {
	alice := s.signup("Alice", "alice@example.com")

	code, body := s.do(http.MethodGet, "/api/notes/abc", alice, nil)
	s.Equal(http.StatusNotFound, code)
	s.Equal("not_found", body["error"])
}

func (s *NotesAPIIntegrationTestSuite) TestUnauthenticatedAccess() {
	code, body := s.do(http.MethodGet, "/api/notes", "", nil)
	s.Equal(http.StatusUnauthorized, code)
	s.Equal("unauthenticated", body["error"])

	code, _ = s.do(http.MethodGet, "/api/notes", "garbage.token.here", nil)
	s.Equal(http.StatusUnauthorized, code)

	code, _ = s.do(http.MethodGet, "/api/auth/profile", "", nil)
	s.Equal(http.StatusUnauthorized, code)
}

func (s *NotesAPIIntegrationTestSuite) TestHealthAndUnknownRoute() {
	resp, err := s.server.Client().Get(s.server.URL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusOK, resp.StatusCode)

	code, body := s.do(http.MethodGet, "/api/unknown", "", nil)
	s.Equal(http.StatusNotFound, code)
	s.Equal("not_found", body["error"])
}

func TestNotesAPIIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotesAPIIntegrationTestSuite))
}
