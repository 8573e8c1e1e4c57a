package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"learntrack_backend/internal/config"
	"learntrack_backend/internal/model"
	"learntrack_backend/pkg/logger"
)

func init() {
	logger.Log = zap.NewNop()
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Topic{},
		&model.Resource{},
		&model.CommunityNote{},
		&model.NoteVote{},
		&model.UserProgress{},
		&model.UserStreak{},
		&model.PomodoroSession{},
		&model.Task{},
		&model.Quiz{},
		&model.QuizQuestion{},
		&model.UserQuizAttempt{},
		&model.UserQuizAnswer{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.UserPoints{},
	))

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.JWT.Secret = "router-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	cfg.Storage.Type = "local"
	cfg.Storage.LocalPath = t.TempDir()

	a := &App{Config: cfg, DB: db}
	repos := a.initRepositories(db)
	services, err := a.initServices(repos, cfg, nil)
	require.NoError(t, err)
	controllers := a.initControllers(services, db, nil)

	router := gin.New()
	a.registerRoutes(router, controllers, cfg)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// registerAndLogin creates an account through the public auth endpoints and
// returns the user's id and a bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine, name, email string) (uint, string) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var user model.User
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &user))

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": email, "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &session))
	require.NotEmpty(t, session.Token)
	return user.ID, session.Token
}

func TestAuthRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Duplicate email is a validation failure, not a conflict.
	w = doJSON(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Ada Again", "email": "ada@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ada@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserProfileRoutes(t *testing.T) {
	router, _ := newTestRouter(t)
	adaID, adaToken := registerAndLogin(t, router, "Ada", "ada@example.com")
	graceID, _ := registerAndLogin(t, router, "Grace", "grace@example.com")

	// Any authenticated user can read another user's profile.
	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/users/%d", graceID), adaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var profile model.User
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &profile))
	assert.Equal(t, "Grace", profile.Name)

	// Updates are owner-only.
	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/users/%d", graceID), adaToken, gin.H{"bio": "hijacked"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/users/%d", adaID), adaToken, gin.H{"bio": "polymath"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &profile))
	assert.Equal(t, "polymath", profile.Bio)
}

func TestPerUserRoutesRejectOtherUsers(t *testing.T) {
	router, _ := newTestRouter(t)
	adaID, adaToken := registerAndLogin(t, router, "Ada", "ada@example.com")
	graceID, _ := registerAndLogin(t, router, "Grace", "grace@example.com")

	w := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/users/%d/streak", adaID), adaToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	for _, path := range []string{
		fmt.Sprintf("/api/users/%d/streak", graceID),
		fmt.Sprintf("/api/users/%d/completed-topics", graceID),
		fmt.Sprintf("/api/users/%d/in-progress-courses", graceID),
		fmt.Sprintf("/api/users/%d/quiz-attempts", graceID),
		fmt.Sprintf("/api/users/%d/achievements", graceID),
		fmt.Sprintf("/api/users/%d/points", graceID),
		fmt.Sprintf("/api/users/%d/tasks", graceID),
		fmt.Sprintf("/api/users/%d/pomodoro-sessions", graceID),
	} {
		w := doJSON(t, router, http.MethodGet, path, adaToken, nil)
		assert.Equal(t, http.StatusForbidden, w.Code, path)
	}

	// Missing token fails before the ownership check.
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/users/%d/streak", adaID), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProgressRoutes(t *testing.T) {
	router, db := newTestRouter(t)
	adaID, adaToken := registerAndLogin(t, router, "Ada", "ada@example.com")

	course := &model.Course{Title: "Go"}
	require.NoError(t, db.Create(course).Error)
	topic := &model.Topic{CourseID: course.ID, Title: "Basics", Order: 1}
	require.NoError(t, db.Create(topic).Error)

	w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/users/%d/progress", adaID), adaToken, gin.H{
		"topicId": topic.ID, "isCompleted": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/users/%d/progress/%d", adaID, topic.ID), adaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var progress model.UserProgress
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &progress))
	assert.True(t, progress.IsCompleted)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/users/%d/in-progress-courses", adaID), adaToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskRoutes(t *testing.T) {
	router, _ := newTestRouter(t)
	adaID, adaToken := registerAndLogin(t, router, "Ada", "ada@example.com")

	// Importance outside 1..3 is rejected at the boundary.
	w := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/users/%d/tasks", adaID), adaToken, gin.H{
		"title": "Review notes", "importance": 7,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/users/%d/tasks", adaID), adaToken, gin.H{
		"title": "Review notes", "importance": 2,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var task model.Task
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &task))
	assert.Equal(t, 2, task.Importance)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/users/%d/tasks", adaID), adaToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []model.Task
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &tasks))
	assert.Len(t, tasks, 1)

	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/tasks/%d", task.ID), adaToken, gin.H{"isCompleted": true})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), adaToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
