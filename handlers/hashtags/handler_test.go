package hashtags

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/luiszamoranom/moviles-hashtagram-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func createRequest(tag string) *http.Request {
	raw, _ := json.Marshal(map[string]string{"etiqueta": tag})
	req, _ := http.NewRequest(http.MethodPost, "/hashtag", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateHashtag_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "hashtags" WHERE tag = \$1(.+)LIMIT 1`).
		WithArgs("verano").
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "hashtags" (.+) RETURNING "id"`).
		WithArgs("verano").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/hashtag", CreateHashtag)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, createRequest("verano"))

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Hashtag creado exitosamente", respBody["mensaje"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateHashtag_Duplicate(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "hashtags" WHERE tag = \$1(.+)LIMIT 1`).
		WithArgs("verano").
		WillReturnRows(sqlmock.NewRows([]string{"id", "tag"}).
			AddRow(1, "verano"))

	r := testutils.SetupTestRouter()
	r.POST("/hashtag", CreateHashtag)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, createRequest("verano"))

	assert.Equal(t, http.StatusConflict, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Ya existe un hashtag con esa etiqueta", respBody["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// La etiqueta debe ser alfanumérica de 3 a 10 caracteres
func TestCreateHashtag_InvalidTag(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/hashtag", CreateHashtag)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, createRequest("no válido!"))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetHashtagByID_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "hashtags" WHERE id = \$1(.+)LIMIT 1`).
		WithArgs("999").
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/hashtag/:id", GetHashtagByID)

	req, _ := http.NewRequest(http.MethodGet, "/hashtag/999", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllHashtags(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "hashtags" ORDER BY tag ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tag"}).
			AddRow(2, "playa").
			AddRow(1, "verano"))

	r := testutils.SetupTestRouter()
	r.GET("/hashtag", GetAllHashtags)

	req, _ := http.NewRequest(http.MethodGet, "/hashtag", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var hashtags []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &hashtags)
	assert.Len(t, hashtags, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteHashtag_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "hashtags" WHERE id = \$1(.+)LIMIT 1`).
		WithArgs("999").
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.DELETE("/hashtag/:id", DeleteHashtag)

	req, _ := http.NewRequest(http.MethodDelete, "/hashtag/999", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPhotosByTag_UnknownTag(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "hashtags" WHERE tag = \$1(.+)LIMIT 1`).
		WithArgs("inexistente").
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/hashtag/obtener-fotos/:etiqueta", GetPhotosByTag)

	req, _ := http.NewRequest(http.MethodGet, "/hashtag/obtener-fotos/inexistente", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "No se encontraron fotos con ese hashtag", respBody["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
