package photos

import (
	"errors"
	"net/http"

	"github.com/luiszamoranom/moviles-hashtagram-backend/db"
	"github.com/luiszamoranom/moviles-hashtagram-backend/models"
	"github.com/luiszamoranom/moviles-hashtagram-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Subir una foto
// @Description Sube una foto con hashtags y crea el estado de visibilidad para todos los usuarios
// @Tags foto
// @Accept json
// @Produce json
// @Param foto body models.PhotoUpload true "Foto a subir"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "mensaje: Foto subida exitosamente, foto"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /foto/subir [post]
func UploadPhoto(c *gin.Context) {
	var input models.PhotoUpload
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	photo := models.Photo{
		OwnerID:     input.OwnerID,
		Description: input.Description,
		Location:    input.Location,
		Payload:     input.Payload,
	}

	// Foto, hashtags y fan-out de visibilidad en una sola transacción:
	// o se crean todas las filas de visibilidad o la subida completa se
	// revierte
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		hashtags := make([]models.Hashtag, 0, len(input.Hashtags))
		for _, tag := range input.Hashtags {
			var hashtag models.Hashtag
			if err := tx.Where("tag = ?", tag).FirstOrCreate(&hashtag, models.Hashtag{Tag: tag}).Error; err != nil {
				return err
			}
			hashtags = append(hashtags, hashtag)
		}
		photo.Hashtags = hashtags

		if err := tx.Create(&photo).Error; err != nil {
			return err
		}

		var users []models.User
		if err := tx.Find(&users).Error; err != nil {
			return err
		}

		if len(users) == 0 {
			return nil
		}

		// Una fila de visibilidad por usuario existente, el que sube incluido
		views := make([]models.PhotoView, 0, len(users))
		for _, user := range users {
			views = append(views, models.PhotoView{
				ViewerID: user.ID,
				PhotoID:  photo.ID,
			})
		}

		return tx.Create(&views).Error
	})

	if err != nil {
		utils.LogErrorWithUser(input.OwnerID, err, "Error al subir la foto")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al subir la foto"})
		return
	}

	utils.LogSuccessWithUser(input.OwnerID, "Foto subida exitosamente")
	c.JSON(http.StatusCreated, gin.H{
		"mensaje": "Foto subida exitosamente",
		"foto":    photo,
	})
}

// @Summary Fotos no ocultadas de un usuario
// @Description Feed del usuario: fotos cuya asociación de visibilidad no está oculta, de la más reciente a la más antigua
// @Tags foto
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {array} models.PhotoView
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /foto/no-ocultadas/{id} [get]
func GetFeed(c *gin.Context) {
	viewerID := c.Param("id")

	var views []models.PhotoView
	err := db.DB.
		Where("viewer_id = ? AND hidden = ?", viewerID, false).
		Order("created_at DESC").
		Preload("Photo").
		Preload("Photo.Owner").
		Preload("Photo.Hashtags").
		Find(&views).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las fotos: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Listar todas las fotos
// @Description Todas las fotos con propietario y hashtags, de la más reciente a la más antigua
// @Tags foto
// @Produce json
// @Success 200 {array} models.Photo
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /foto [get]
func GetAllPhotos(c *gin.Context) {
	var photos []models.Photo
	err := db.DB.
		Order("created_at DESC").
		Preload("Owner").
		Preload("Hashtags").
		Find(&photos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las fotos: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, photos)
}

// @Summary Obtener una foto
// @Description Foto por su ID con propietario y hashtags
// @Tags foto
// @Produce json
// @Param id path int true "ID de la foto"
// @Success 200 {object} models.Photo
// @Failure 404 {object} map[string]string "error: Foto no encontrada"
// @Router /foto/{id} [get]
func GetPhotoByID(c *gin.Context) {
	photoID := c.Param("id")

	var photo models.Photo
	err := db.DB.
		Preload("Owner").
		Preload("Hashtags").
		First(&photo, "id = ?", photoID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Foto no encontrada"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la foto: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, photo)
}
