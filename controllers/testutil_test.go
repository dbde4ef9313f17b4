package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kamarini09/ctf-app/database"
	"github.com/kamarini09/ctf-app/models"
	"github.com/kamarini09/ctf-app/routes"
	"github.com/kamarini09/ctf-app/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires the handlers to a fresh in-memory SQLite database.
// A single pooled connection keeps the :memory: database alive for the
// whole test and serializes writes the way a real server's storage
// backend would.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{}, &models.Team{}, &models.Challenge{}, &models.Submission{},
	))

	database.DB = db
	database.RDB = nil

	return routes.SetupRouter()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func seedChallenge(t *testing.T, id, title string, points uint, active bool, flag string) {
	t.Helper()
	require.NoError(t, database.DB.Create(&models.Challenge{
		ID:       id,
		Title:    title,
		Points:   points,
		IsActive: active,
		FlagHash: utils.HashFlag(flag),
	}).Error)
}

func seedTeam(t *testing.T, id, name, code string) {
	t.Helper()
	require.NoError(t, database.DB.Create(&models.Team{
		ID:        id,
		Name:      name,
		Code:      code,
		CreatedBy: "seed",
	}).Error)
}

func seedProfile(t *testing.T, id, displayName string, teamID *string) {
	t.Helper()
	require.NoError(t, database.DB.Create(&models.Profile{
		ID:          id,
		DisplayName: displayName,
		TeamID:      teamID,
	}).Error)
}

func submissionCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, database.DB.Model(&models.Submission{}).Count(&n).Error)
	return n
}

func strPtr(s string) *string { return &s }
