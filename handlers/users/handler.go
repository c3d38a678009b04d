package users

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

// @Summary Listar usuarios
// @Description Retorna todos los usuarios registrados
// @Tags usuario
// @Produce json
// @Success 200 {array} models.User
// @Success 204 "No hay usuarios registrados"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /usuario [get]
func GetAllUsers(c *gin.Context) {
	var users []models.User

	if err := db.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	if len(users) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, users)
}

// @Summary Obtener un usuario
// @Description Usuario por su ID
// @Tags usuario
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string "error: Usuario no encontrado"
// @Router /usuario/{id} [get]
func GetUserByID(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// @Summary Actualizar un usuario
// @Description Actualiza el perfil; el nombre de usuario debe seguir siendo único
// @Tags usuario
// @Accept json
// @Produce json
// @Param id path int true "ID del usuario"
// @Param usuario body models.UserUpdate true "Campos a actualizar"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "mensaje: Usuario actualizado exitosamente, usuario"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Usuario no encontrado"
// @Failure 409 {object} map[string]string "error: El nombre de usuario ya está en uso"
// @Router /usuario/{id} [put]
func UpdateUser(c *gin.Context) {
	userID := c.Param("id")

	var input models.UserUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	if input.Username != "" && input.Username != user.Username {
		var taken models.User
		if err := db.DB.First(&taken, "username = ?", input.Username).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "El nombre de usuario ya está en uso por otro usuario"})
			return
		}
		user.Username = input.Username
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Description != "" {
		user.Description = input.Description
	}
	if input.ProfilePicture != "" {
		user.ProfilePicture = input.ProfilePicture
	}
	if input.PictureExtension != "" {
		user.PictureExtension = input.PictureExtension
	}
	if input.Enabled != nil {
		user.Enabled = *input.Enabled
	}

	if err := db.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Usuario actualizado exitosamente",
		"usuario": user,
	})
}

// @Summary Actualizar contraseña
// @Description Cambia la contraseña verificando la anterior
// @Tags usuario
// @Accept json
// @Produce json
// @Param id path int true "ID del usuario"
// @Param contrasenas body models.PasswordUpdate true "Contraseña anterior y nueva"
// @Security BearerAuth
// @Success 200 {object} map[string]string "mensaje: Se actualizó la contraseña del usuario"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Contraseña actual incorrecta"
// @Failure 404 {object} map[string]string "error: Usuario no encontrado"
// @Router /usuario/{id} [patch]
func UpdatePassword(c *gin.Context) {
	userID := c.Param("id")

	var input models.PasswordUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Contraseña actual incorrecta"})
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), 10)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error al hashear la contraseña"})
		return
	}

	if err := db.DB.Model(&user).UpdateColumn("password", string(newHash)).Error; err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error al actualizar la contraseña")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error del servidor al actualizar la contraseña del usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Se actualizó la contraseña del usuario"})
}

// @Summary Usuario con sus fotos
// @Description Perfil del usuario con sus fotos y los hashtags de cada una
// @Tags usuario
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string "error: Usuario no encontrado"
// @Router /usuario/informacion-con-fotos/{id} [get]
func GetUserWithPhotos(c *gin.Context) {
	userID := c.Param("id")

	var user models.User
	err := db.DB.
		Preload("Photos").
		Preload("Photos.Hashtags").
		First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el usuario"})
		return
	}

	c.JSON(http.StatusOK, user)
}
