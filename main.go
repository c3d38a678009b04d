package main

import (
	"log"
	"os"

	"github.com/luiszamoranom/moviles-hashtagram-backend/db"
	_ "github.com/luiszamoranom/moviles-hashtagram-backend/docs"
	"github.com/luiszamoranom/moviles-hashtagram-backend/handlers/likes"
	"github.com/luiszamoranom/moviles-hashtagram-backend/relay"
	"github.com/luiszamoranom/moviles-hashtagram-backend/routes"
	"github.com/luiszamoranom/moviles-hashtagram-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title API Hashtagram Backend
// @version 1.0
// @description API del backend de Hashtagram
// @host localhost:9999
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Ingrese el JWT con el prefijo Bearer: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	// La conexión al relay es opcional: sin RELAY_URL las notificaciones
	// de me gusta simplemente se descartan.
	if relayURL := os.Getenv("RELAY_URL"); relayURL != "" {
		ws := relay.Dial(relayURL)
		defer ws.Close()
		likes.SetNotifier(ws)
	} else {
		utils.LogInfo("RELAY_URL no definida, notificaciones en tiempo real deshabilitadas")
	}

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "9999"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Error al iniciar el servidor:", err)
	}
}
