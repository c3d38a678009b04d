package hashtags

import (
	"errors"
	"net/http"
	"strings"

	"github.com/luiszamoranom/moviles-hashtagram-backend/db"
	"github.com/luiszamoranom/moviles-hashtagram-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// @Summary Listar hashtags
// @Description Retorna todos los hashtags
// @Tags hashtag
// @Produce json
// @Success 200 {array} models.Hashtag
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /hashtag [get]
func GetAllHashtags(c *gin.Context) {
	var hashtags []models.Hashtag

	result := db.DB.Order("tag ASC").Find(&hashtags)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, hashtags)
}

// @Summary Obtener un hashtag
// @Description Hashtag por su ID
// @Tags hashtag
// @Produce json
// @Param id path int true "ID del hashtag"
// @Success 200 {object} models.Hashtag
// @Failure 404 {object} map[string]string "error: Hashtag no encontrado"
// @Router /hashtag/{id} [get]
func GetHashtagByID(c *gin.Context) {
	hashtagID := c.Param("id")

	var hashtag models.Hashtag
	if err := db.DB.First(&hashtag, "id = ?", hashtagID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hashtag no encontrado"})
		return
	}

	c.JSON(http.StatusOK, hashtag)
}

// @Summary Crear un hashtag
// @Description Crea un hashtag con etiqueta única
// @Tags hashtag
// @Accept json
// @Produce json
// @Param hashtag body models.HashtagCreate true "Etiqueta"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "mensaje: Hashtag creado exitosamente, hashtag"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 409 {object} map[string]string "error: Ya existe un hashtag con esa etiqueta"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /hashtag [post]
func CreateHashtag(c *gin.Context) {
	var input models.HashtagCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var existing models.Hashtag
	if err := db.DB.First(&existing, "tag = ?", input.Tag).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Ya existe un hashtag con esa etiqueta"})
		return
	}

	hashtag := models.Hashtag{Tag: input.Tag}

	if err := db.DB.Create(&hashtag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el hashtag: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"mensaje": "Hashtag creado exitosamente",
		"hashtag": hashtag,
	})
}

// @Summary Actualizar un hashtag
// @Description Cambia la etiqueta de un hashtag existente
// @Tags hashtag
// @Accept json
// @Produce json
// @Param id path int true "ID del hashtag"
// @Param hashtag body models.HashtagUpdate true "Nueva etiqueta"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "mensaje: Hashtag actualizado exitosamente, hashtag"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Hashtag no encontrado"
// @Failure 409 {object} map[string]string "error: Ya existe un hashtag con esa etiqueta"
// @Router /hashtag/{id} [put]
func UpdateHashtag(c *gin.Context) {
	hashtagID := c.Param("id")

	var input models.HashtagUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var hashtag models.Hashtag
	if err := db.DB.First(&hashtag, "id = ?", hashtagID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hashtag no encontrado"})
		return
	}

	var existing models.Hashtag
	if err := db.DB.First(&existing, "tag = ?", input.Tag).Error; err == nil && existing.ID != hashtag.ID {
		c.JSON(http.StatusConflict, gin.H{"error": "Ya existe un hashtag con esa etiqueta"})
		return
	}

	hashtag.Tag = input.Tag
	if err := db.DB.Save(&hashtag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el hashtag: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Hashtag actualizado exitosamente",
		"hashtag": hashtag,
	})
}

// @Summary Eliminar un hashtag
// @Description Elimina un hashtag por su ID
// @Tags hashtag
// @Produce json
// @Param id path int true "ID del hashtag"
// @Security BearerAuth
// @Success 200 {object} map[string]string "mensaje: Hashtag eliminado exitosamente"
// @Failure 404 {object} map[string]string "error: Hashtag no encontrado"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /hashtag/{id} [delete]
func DeleteHashtag(c *gin.Context) {
	hashtagID := c.Param("id")

	var hashtag models.Hashtag
	if err := db.DB.First(&hashtag, "id = ?", hashtagID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hashtag no encontrado"})
		return
	}

	if err := db.DB.Delete(&hashtag).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el hashtag: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Hashtag eliminado exitosamente"})
}

// @Summary Fotos de un hashtag
// @Description Fotos asociadas a una etiqueta
// @Tags hashtag
// @Produce json
// @Param etiqueta path string true "Etiqueta"
// @Success 200 {array} models.Photo
// @Failure 404 {object} map[string]string "error: No se encontraron fotos con ese hashtag"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /hashtag/obtener-fotos/{etiqueta} [get]
func GetPhotosByTag(c *gin.Context) {
	tag := c.Param("etiqueta")

	var hashtag models.Hashtag
	if err := db.DB.First(&hashtag, "tag = ?", tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No se encontraron fotos con ese hashtag"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las fotos: " + err.Error()})
		return
	}

	var photos []models.Photo
	err := db.DB.
		Joins("JOIN photo_hashtags ON photo_hashtags.photo_id = photos.id").
		Where("photo_hashtags.hashtag_id = ?", hashtag.ID).
		Preload("Owner").
		Find(&photos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las fotos: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, photos)
}

// @Summary Fotos por varios hashtags
// @Description Fotos asociadas a cualquiera de las etiquetas separadas por coma
// @Tags hashtag
// @Produce json
// @Param etiquetas path string true "Etiquetas separadas por coma"
// @Success 200 {array} models.Photo
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /hashtag/obtener-fotos-por-mas-de-un-hashtag/{etiquetas} [get]
func GetPhotosByTags(c *gin.Context) {
	tags := strings.Split(c.Param("etiquetas"), ",")

	var photos []models.Photo
	err := db.DB.
		Distinct("photos.*").
		Joins("JOIN photo_hashtags ON photo_hashtags.photo_id = photos.id").
		Joins("JOIN hashtags ON hashtags.id = photo_hashtags.hashtag_id").
		Where("hashtags.tag IN ?", tags).
		Preload("Owner").
		Preload("Hashtags").
		Find(&photos).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las fotos: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, photos)
}
