package auth

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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func jsonRequest(method, url string, body interface{}) *http.Request {
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegister_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE username = \$1 OR email = \$2(.+)LIMIT 1`).
		WithArgs("ana", "ana@example.com").
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/usuario/registrar", Register)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, jsonRequest(http.MethodPost, "/usuario/registrar", map[string]string{
		"email":           "ana@example.com",
		"nombre_completo": "Ana Pérez",
		"nombre_usuario":  "ana",
		"contrasena":      "secreta1",
	}))

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Usuario creado exitosamente", respBody["mensaje"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_DuplicateUsernameOrEmail(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE username = \$1 OR email = \$2(.+)LIMIT 1`).
		WithArgs("ana", "ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email"}).
			AddRow(1, "ana", "ana@example.com"))

	r := testutils.SetupTestRouter()
	r.POST("/usuario/registrar", Register)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, jsonRequest(http.MethodPost, "/usuario/registrar", map[string]string{
		"email":           "ana@example.com",
		"nombre_completo": "Ana Pérez",
		"nombre_usuario":  "ana",
		"contrasena":      "secreta1",
	}))

	assert.Equal(t, http.StatusConflict, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Ya existe un usuario con ese nickname o email", respBody["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_InvalidEmail(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/usuario/registrar", Register)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, jsonRequest(http.MethodPost, "/usuario/registrar", map[string]string{
		"email":           "no-es-un-email",
		"nombre_completo": "Ana Pérez",
		"nombre_usuario":  "ana",
		"contrasena":      "secreta1",
	}))

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestLogin_Success(t *testing.T) {
	t.Setenv("JWT_SECRET", "clave-de-prueba")

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secreta1"), 10)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE username = \$1(.+)LIMIT 1`).
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "username", "password", "role", "enabled"}).
			AddRow(1, "Ana Pérez", "ana", string(hash), "USER", true))

	r := testutils.SetupTestRouter()
	r.POST("/identidad/login", Login)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, jsonRequest(http.MethodPost, "/identidad/login", map[string]string{
		"nombre_usuario": "ana",
		"contrasena":     "secreta1",
	}))

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "ana", respBody["nombreUsuario"])
	assert.NotEmpty(t, respBody["accessToken"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_UnknownUser(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE username = \$1(.+)LIMIT 1`).
		WithArgs("fantasma").
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.POST("/identidad/login", Login)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, jsonRequest(http.MethodPost, "/identidad/login", map[string]string{
		"nombre_usuario": "fantasma",
		"contrasena":     "secreta1",
	}))

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_DisabledUser(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("secreta1"), 10)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE username = \$1(.+)LIMIT 1`).
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "enabled"}).
			AddRow(1, "ana", string(hash), false))

	r := testutils.SetupTestRouter()
	r.POST("/identidad/login", Login)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, jsonRequest(http.MethodPost, "/identidad/login", map[string]string{
		"nombre_usuario": "ana",
		"contrasena":     "secreta1",
	}))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin_WrongPassword(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("otra-clave"), 10)

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE username = \$1(.+)LIMIT 1`).
		WithArgs("ana").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "enabled"}).
			AddRow(1, "ana", string(hash), true))

	r := testutils.SetupTestRouter()
	r.POST("/identidad/login", Login)

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, jsonRequest(http.MethodPost, "/identidad/login", map[string]string{
		"nombre_usuario": "ana",
		"contrasena":     "secreta1",
	}))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
