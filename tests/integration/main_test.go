package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/odroffice/odr-go/config"
	"github.com/odroffice/odr-go/db"
	"github.com/odroffice/odr-go/internal/testutils"
	"github.com/odroffice/odr-go/middleware"
	"github.com/odroffice/odr-go/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var (
	router     *gin.Engine
	adminToken string
	userToken  string
)

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		TranslateError: true,
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}

	seed(gormDB)

	router = testutils.SetupRouter(testutils.FakeFileStore{})

	adminToken, err = middleware.GenerateToken("admin1@example.com", "admin", time.Hour)
	if err != nil {
		log.Fatal(err)
	}
	userToken, err = middleware.GenerateToken("requester-7", "user", time.Hour)
	if err != nil {
		log.Fatal(err)
	}

	code := m.Run()
	os.Exit(code)
}

func seed(gormDB *gorm.DB) {
	admins := []models.Admin{
		{Email: "admin1@example.com", Role: "admin"},
		{Email: "admin2@example.com", Role: "admin"},
	}
	for i := range admins {
		if err := gormDB.Create(&admins[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	docs := []models.Document{
		{DocID: "doc-cert", DocName: "Certification", Cost: 50},
		{DocID: "doc-transcript", DocName: "Transcript of Records", Cost: 120},
	}
	for i := range docs {
		if err := gormDB.Create(&docs[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	reqs := []models.Requirement{
		{ReqID: "req-id-photo", RequirementName: "ID photo"},
		{ReqID: "req-clearance", RequirementName: "Clearance form"},
	}
	for i := range reqs {
		if err := gormDB.Create(&reqs[i]).Error; err != nil {
			log.Fatal(err)
		}
	}
}

func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}
	return w
}

func doUpload(t *testing.T, path, token, filename string, content []byte, expectStatus int) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
