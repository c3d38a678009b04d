package routes

import (
	"time"

	"github.com/luiszamoranom/moviles-hashtagram-backend/handlers/ping"
	"github.com/luiszamoranom/moviles-hashtagram-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter() *gin.Engine {

	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/ping", ping.New().HandlePing)

	UsersRoutes(r)
	IdentityRoutes(r)
	HashtagsRoutes(r)
	PhotosRoutes(r)
	PhotoViewsRoutes(r)
	LikesRoutes(r)

	return r
}
