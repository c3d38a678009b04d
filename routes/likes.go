package routes

import (
	"github.com/luiszamoranom/moviles-hashtagram-backend/handlers/likes"

	"github.com/gin-gonic/gin"
)

func LikesRoutes(r *gin.Engine) {
	r.POST("/me-gusta/registrar", likes.RegisterLike)
	r.DELETE("/me-gusta/eliminar", likes.RemoveLike)
	r.GET("/me-gusta/me-gusta-que-me-han-dado/:id", likes.GetLikesReceived)
	r.GET("/me-gusta/cantidad-de-me-gusta-no-ocultos/:id", likes.CountVisibleLikes)
	r.PATCH("/me-gusta/ocultar-me-gusta/:id", likes.HideLike)
	r.GET("/me-gusta/saber-si-usuario-dio-like-a-una-foto", likes.HasUserLiked)
}
