package routes

import (
	"github.com/luiszamoranom/moviles-hashtagram-backend/handlers/hashtags"
	"github.com/luiszamoranom/moviles-hashtagram-backend/middleware"

	"github.com/gin-gonic/gin"
)

func HashtagsRoutes(r *gin.Engine) {
	// Rutas públicas
	r.GET("/hashtag", hashtags.GetAllHashtags)
	r.GET("/hashtag/:id", hashtags.GetHashtagByID)
	r.GET("/hashtag/obtener-fotos/:etiqueta", hashtags.GetPhotosByTag)
	r.GET("/hashtag/obtener-fotos-por-mas-de-un-hashtag/:etiquetas", hashtags.GetPhotosByTags)

	// Rutas protegidas
	hashtagRoutes := r.Group("/hashtag")
	hashtagRoutes.Use(middleware.JWTAuth())
	{
		hashtagRoutes.POST("", hashtags.CreateHashtag)
		hashtagRoutes.PUT("/:id", hashtags.UpdateHashtag)
	}

	// Solo un administrador puede eliminar hashtags
	adminRoutes := r.Group("/hashtag")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.DELETE("/:id", hashtags.DeleteHashtag)
	}
}
