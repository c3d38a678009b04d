package routes

import (
	"github.com/luiszamoranom/moviles-hashtagram-backend/handlers/photos"
	"github.com/luiszamoranom/moviles-hashtagram-backend/middleware"

	"github.com/gin-gonic/gin"
)

func PhotosRoutes(r *gin.Engine) {
	// Rutas públicas
	r.GET("/foto", photos.GetAllPhotos)
	r.GET("/foto/:id", photos.GetPhotoByID)
	r.GET("/foto/no-ocultadas/:id", photos.GetFeed)

	// Rutas protegidas
	photoRoutes := r.Group("/foto")
	photoRoutes.Use(middleware.JWTAuth())
	{
		photoRoutes.POST("/subir", photos.UploadPhoto)
	}
}
