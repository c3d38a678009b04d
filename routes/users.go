package routes

import (
	"github.com/luiszamoranom/moviles-hashtagram-backend/handlers/auth"
	"github.com/luiszamoranom/moviles-hashtagram-backend/handlers/users"
	"github.com/luiszamoranom/moviles-hashtagram-backend/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	// Rutas públicas
	r.POST("/usuario/registrar", auth.Register)
	r.GET("/usuario", users.GetAllUsers)
	r.GET("/usuario/:id", users.GetUserByID)
	r.GET("/usuario/informacion-con-fotos/:id", users.GetUserWithPhotos)

	// Rutas protegidas
	usersRoutes := r.Group("/usuario")
	usersRoutes.Use(middleware.JWTAuth())
	{
		usersRoutes.PUT("/:id", users.UpdateUser)
		usersRoutes.PATCH("/:id", users.UpdatePassword)
	}
}
