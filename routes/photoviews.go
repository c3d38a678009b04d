package routes

import (
	"github.com/luiszamoranom/moviles-hashtagram-backend/handlers/photoviews"

	"github.com/gin-gonic/gin"
)

func PhotoViewsRoutes(r *gin.Engine) {
	r.POST("/usuarioviofoto/ocultar-foto", photoviews.HidePhoto)
}
