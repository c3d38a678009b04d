package photoviews

import (
	"errors"
	"net/http"

	"github.com/luiszamoranom/moviles-hashtagram-backend/db"
	"github.com/luiszamoranom/moviles-hashtagram-backend/models"
	"github.com/luiszamoranom/moviles-hashtagram-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Ocultar una foto para un usuario
// @Description Marca la asociación usuario-foto como oculta; la foto deja de aparecer en su feed
// @Tags usuarioviofoto
// @Accept json
// @Produce json
// @Param asociacion body models.HidePhotoRequest true "Par usuario-foto"
// @Success 200 {object} map[string]string "message: Se ocultará la foto para el usuario"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: No existe dicha asociación de usuario con foto para ocultarla"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /usuarioviofoto/ocultar-foto [post]
func HidePhoto(c *gin.Context) {
	var input models.HidePhotoRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// Ocultar exige una asociación existente: el fan-out de la subida es el
	// único lugar donde se crean filas de visibilidad
	var view models.PhotoView
	err := db.DB.Where("viewer_id = ? AND photo_id = ?", input.ViewerID, input.PhotoID).First(&view).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No existe dicha asociación de usuario con foto para ocultarla"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al ocultar la foto"})
		return
	}

	if err := db.DB.Model(&view).UpdateColumn("hidden", true).Error; err != nil {
		utils.LogErrorWithUser(input.ViewerID, err, "Error al ocultar la foto")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al ocultar la foto"})
		return
	}

	utils.LogSuccessWithUser(input.ViewerID, "Foto ocultada para el usuario")
	c.JSON(http.StatusOK, gin.H{"message": "Se ocultará la foto para el usuario"})
}
