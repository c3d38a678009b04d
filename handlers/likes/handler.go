package likes

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/luiszamoranom/moviles-hashtagram-backend/db"
	"github.com/luiszamoranom/moviles-hashtagram-backend/models"
	"github.com/luiszamoranom/moviles-hashtagram-backend/relay"
	"github.com/luiszamoranom/moviles-hashtagram-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var notifier relay.Notifier = relay.Noop{}

// SetNotifier inyecta el relay de notificaciones. Los tests lo sustituyen
// por un recorder.
func SetNotifier(n relay.Notifier) {
	notifier = n
}

func isDuplicateKey(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}

// parsePairQuery lee interactuadorId y fotoId desde la query string.
func parsePairQuery(c *gin.Context) (uint, uint, bool) {
	interactorID, err := strconv.ParseUint(c.Query("interactuadorId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "interactuadorId inválido"})
		return 0, 0, false
	}

	photoID, err := strconv.ParseUint(c.Query("fotoId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fotoId inválido"})
		return 0, 0, false
	}

	return uint(interactorID), uint(photoID), true
}

// @Summary Registrar un me gusta
// @Description Registra un me gusta de un usuario sobre una foto e incrementa su contador
// @Tags me-gusta
// @Accept json
// @Produce json
// @Param like body models.LikeRequest true "Par usuario-foto"
// @Success 200 {object} map[string]string "message: Me gusta registrado"
// @Failure 400 {object} map[string]string "error: Existe dicha asociación de me gusta ya"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /me-gusta/registrar [post]
func RegisterLike(c *gin.Context) {
	var input models.LikeRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var existing models.Like
	err := db.DB.Where("interactor_id = ? AND photo_id = ?", input.InteractorID, input.PhotoID).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Existe dicha asociación de me gusta ya"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al dar me gusta a la foto"})
		return
	}

	// La fila del ledger y el contador se escriben en una sola transacción:
	// el contador nunca queda desfasado respecto de las filas de me gusta.
	var ownerID uint
	photoExists := false

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		like := models.Like{
			InteractorID: input.InteractorID,
			PhotoID:      input.PhotoID,
		}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}

		var photo models.Photo
		if err := tx.First(&photo, "id = ?", input.PhotoID).Error; err != nil {
			// Sin foto se conserva el me gusta pero se omite el contador
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		photoExists = true
		ownerID = photo.OwnerID

		return tx.Model(&models.Photo{}).
			Where("id = ?", photo.ID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
	})

	if err != nil {
		// Una carrera entre dos registros del mismo par la resuelve el
		// índice único, no el chequeo previo
		if isDuplicateKey(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Existe dicha asociación de me gusta ya"})
			return
		}
		utils.LogErrorWithUser(input.InteractorID, err, "Error al registrar el me gusta")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al dar me gusta a la foto"})
		return
	}

	if photoExists {
		notifier.Notify(strconv.FormatUint(uint64(ownerID), 10))
	}

	utils.LogSuccessWithUser(input.InteractorID, "Me gusta registrado")
	c.JSON(http.StatusOK, gin.H{"message": "Me gusta registrado"})
}

// @Summary Eliminar un me gusta
// @Description Elimina el me gusta del par usuario-foto y decrementa el contador
// @Tags me-gusta
// @Produce json
// @Param interactuadorId query int true "ID del usuario que dio el me gusta"
// @Param fotoId query int true "ID de la foto"
// @Success 200 {object} map[string]string "message: Me gusta eliminado"
// @Failure 400 {object} map[string]string "error: Error al eliminar me gusta"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /me-gusta/eliminar [delete]
func RemoveLike(c *gin.Context) {
	interactorID, photoID, ok := parsePairQuery(c)
	if !ok {
		return
	}

	var like models.Like
	err := db.DB.Where("interactor_id = ? AND photo_id = ?", interactorID, photoID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Error al eliminar me gusta"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al dar me gusta a la foto"})
		return
	}

	var ownerID uint
	photoExists := false

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&like).Error; err != nil {
			return err
		}

		var photo models.Photo
		if err := tx.First(&photo, "id = ?", photoID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		photoExists = true
		ownerID = photo.OwnerID

		// El contador no baja de cero aunque la lectura haya quedado vieja
		return tx.Model(&models.Photo{}).
			Where("id = ?", photo.ID).
			UpdateColumn("like_count", gorm.Expr("GREATEST(like_count - ?, 0)", 1)).Error
	})

	if err != nil {
		utils.LogErrorWithUser(interactorID, err, "Error al eliminar el me gusta")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al dar me gusta a la foto"})
		return
	}

	if photoExists {
		notifier.Notify(strconv.FormatUint(uint64(ownerID), 10))
	}

	utils.LogSuccessWithUser(interactorID, "Me gusta eliminado")
	c.JSON(http.StatusOK, gin.H{"message": "Me gusta eliminado"})
}

// @Summary Me gusta recibidos
// @Description Lista los me gusta no ocultos sobre las fotos de un usuario, del más reciente al más antiguo
// @Tags me-gusta
// @Produce json
// @Param id path int true "ID del usuario propietario"
// @Success 200 {array} models.Like
// @Failure 404 {object} map[string]string "error: Sin me gustas"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /me-gusta/me-gusta-que-me-han-dado/{id} [get]
func GetLikesReceived(c *gin.Context) {
	ownerID := c.Param("id")

	var received []models.Like
	err := db.DB.
		Joins("JOIN photos ON photos.id = likes.photo_id").
		Where("photos.owner_id = ? AND likes.hidden = ?", ownerID, false).
		Order("likes.created_at DESC").
		Preload("Interactor").
		Preload("Photo").
		Find(&received).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los me gusta: " + err.Error()})
		return
	}

	if len(received) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sin me gustas"})
		return
	}

	c.JSON(http.StatusOK, received)
}

// @Summary Cantidad de me gusta no ocultos
// @Description Cuenta los me gusta no ocultos sobre las fotos de un usuario
// @Tags me-gusta
// @Produce json
// @Param id path int true "ID del usuario propietario"
// @Success 200 {object} map[string]int "cantidadMeGusta"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /me-gusta/cantidad-de-me-gusta-no-ocultos/{id} [get]
func CountVisibleLikes(c *gin.Context) {
	ownerID := c.Param("id")

	var count int64
	err := db.DB.Model(&models.Like{}).
		Joins("JOIN photos ON photos.id = likes.photo_id").
		Where("photos.owner_id = ? AND likes.hidden = ?", ownerID, false).
		Count(&count).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los me gusta: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cantidadMeGusta": count})
}

// @Summary Ocultar un me gusta
// @Description Marca un me gusta como oculto para el feed del propietario
// @Tags me-gusta
// @Produce json
// @Param id path int true "ID del me gusta"
// @Success 200 {object} map[string]string "message: Me gusta ocultado"
// @Failure 404 {object} map[string]string "error: Me gusta no encontrado"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /me-gusta/ocultar-me-gusta/{id} [patch]
func HideLike(c *gin.Context) {
	likeID := c.Param("id")

	var like models.Like
	if err := db.DB.First(&like, "id = ?", likeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Me gusta no encontrado"})
		return
	}

	if err := db.DB.Model(&like).UpdateColumn("hidden", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al ocultar el me gusta: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Me gusta ocultado"})
}

// @Summary Saber si un usuario dio me gusta a una foto
// @Description Consulta de existencia pura sobre el par usuario-foto
// @Tags me-gusta
// @Produce json
// @Param interactuadorId query int true "ID del usuario"
// @Param fotoId query int true "ID de la foto"
// @Success 200 {object} map[string]bool "dioLike"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /me-gusta/saber-si-usuario-dio-like-a-una-foto [get]
func HasUserLiked(c *gin.Context) {
	interactorID, photoID, ok := parsePairQuery(c)
	if !ok {
		return
	}

	var like models.Like
	err := db.DB.Where("interactor_id = ? AND photo_id = ?", interactorID, photoID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"dioLike": false})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al consultar el me gusta: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dioLike": true})
}
