package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/SketchShifter/tag_backend/internal/config"
	"github.com/SketchShifter/tag_backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router *gin.Engine
	mock   sqlmock.Sqlmock
	redis  *miniredis.Miniredis
}

func setup(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: gin.TestMode, CORSOrigin: "*"},
		Auth:   config.AuthConfig{JWTSecret: "test-secret", TokenExpiry: time.Hour},
		Redis:  config.RedisConfig{Addr: mr.Addr(), CacheTTL: time.Minute},
	}

	router := SetupRouter(Dependencies{Config: cfg, DB: db, Redis: client, Logger: zap.NewNop()})
	return &testEnv{router: router, mock: mock, redis: mr}
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestRouter_ListTagsIsCached(t *testing.T) {
	env := setup(t)

	env.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `tags` ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tag"}).
			AddRow(1, "angularjs").
			AddRow(2, "reactjs"))

	for i := 0; i < 2; i++ {
		w := env.do(http.MethodGet, "/api/v1/tags", "", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"tag":"angularjs"},{"id":2,"tag":"reactjs"}]`, w.Body.String())
	}

	assert.True(t, env.redis.Exists(repository.TagListCacheKey(0)))
	require.NoError(t, env.mock.ExpectationsWereMet())
}

func TestRouter_WritesRequireAuth(t *testing.T) {
	env := setup(t)

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodPost, "/api/v1/tags", "", map[string]string{"tag": "vuejs"}).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodPut, "/api/v1/tags/1", "", map[string]string{"tag": "vuejs"}).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodDelete, "/api/v1/tags/1", "garbage", nil).Code)
	require.NoError(t, env.mock.ExpectationsWereMet())
}

func TestRouter_RegisterThenCreateTag(t *testing.T) {
	env := setup(t)
	userColumns := []string{"id", "email", "password", "username", "created_at", "updated_at"}

	// 登録
	env.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE email = ?")).
		WillReturnRows(sqlmock.NewRows(userColumns))
	env.mock.ExpectBegin()
	env.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `users`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	env.mock.ExpectCommit()

	w := env.do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email": "john@example.com", "password": "password", "username": "john",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	require.NotEmpty(t, auth.Token)

	
	// タグ作成
	now := time.Now()
	env.mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `users` WHERE `users`.`id` = ?")).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, "john@example.com", "hash", "john", now, now))
	env.mock.ExpectBegin()
	env.mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `tags` (`tag`) VALUES (?)")).
		WithArgs("vuejs").
		WillReturnResult(sqlmock.NewResult(3, 1))
	env.mock.ExpectCommit()

	w = env.do(http.MethodPost, "/api/v1/tags", auth.Token, map[string]string{"tag": " vuejs "})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":3,"tag":"vuejs"}`, w.Body.String())

	version, err := env.redis.Get(repository.TagListVersionKey)
	require.NoError(t, err)
	assert.Equal(t, "1", version)
	require.NoError(t, env.mock.ExpectationsWereMet())
}

func TestRouter_Health(t *testing.T) {
	env := setup(t)

	w := env.do(http.MethodGet, "/api/v1/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
