package routes

import (
	"github.com/luiszamoranom/moviles-hashtagram-backend/handlers/auth"

	"github.com/gin-gonic/gin"
)

func IdentityRoutes(r *gin.Engine) {
	r.POST("/identidad/login", auth.Login)
}
