package auth

import (
	"errors"
	"net/http"

	"github.com/luiszamoranom/moviles-hashtagram-backend/db"
	"github.com/luiszamoranom/moviles-hashtagram-backend/models"
	"github.com/luiszamoranom/moviles-hashtagram-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

// @Summary Registrar un usuario
// @Description Crea un usuario con nombre de usuario y email únicos
// @Tags usuario
// @Accept json
// @Produce json
// @Param usuario body models.UserRegister true "Datos del usuario"
// @Success 201 {object} map[string]string "mensaje: Usuario creado exitosamente"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 409 {object} map[string]string "error: Ya existe un usuario con ese nickname o email"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /usuario/registrar [post]
func Register(c *gin.Context) {
	var input models.UserRegister
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var existing models.User
	err := db.DB.Where("username = ? OR email = ?", input.Username, input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Ya existe un usuario con ese nickname o email"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error al hashear la contraseña"})
		return
	}

	user := models.User{
		FullName:         input.FullName,
		Username:         input.Username,
		Email:            input.Email,
		Password:         passwordHash,
		ProfilePicture:   input.ProfilePicture,
		PictureExtension: input.PictureExtension,
		Role:             models.UserRole,
		Enabled:          true,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		utils.LogError(err, "Error al registrar el usuario")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "Usuario creado exitosamente")
	c.JSON(http.StatusCreated, gin.H{"mensaje": "Usuario creado exitosamente"})
}

type loginRequest struct {
	Username string `json:"nombre_usuario" binding:"required"`
	Password string `json:"contrasena" binding:"required"`
}

// @Summary Login de usuario
// @Description Autentica con nombre de usuario y contraseña, retorna un JWT
// @Tags identidad
// @Accept json
// @Produce json
// @Param credenciales body loginRequest true "Credenciales"
// @Success 200 {object} map[string]interface{} "perfil del usuario y accessToken"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Usuario deshabilitado o contraseña incorrecta"
// @Failure 404 {object} map[string]string "error: Usuario no existe"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /identidad/login [post]
func Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	err := db.DB.Where("username = ?", input.Username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no existe"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	if !user.Enabled {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario deshabilitado"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Contraseña incorrecta"})
		return
	}

	accessToken, err := utils.GenerateJWT(user, 1)
	if err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error al generar el JWT")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error al generar el token"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "Usuario autenticado")
	c.JSON(http.StatusOK, gin.H{
		"usuarioId":      user.ID,
		"nombreCompleto": user.FullName,
		"nombreUsuario":  user.Username,
		"usuarioRol":     user.Role,
		"fotoPerfil":     user.ProfilePicture,
		"fotoExtension":  user.PictureExtension,
		"accessToken":    accessToken,
	})
}
