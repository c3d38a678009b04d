package ping

import (
	"github.com/luiszamoranom/moviles-hashtagram-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// HandlePing responde pong para verificar que el servidor está arriba
// @Summary Ping test
// @Description Endpoint de prueba que responde pong
// @Tags test
// @Produce json
// @Success 200 {object} utils.Response
// @Router /ping [get]
func (h *Handler) HandlePing(c *gin.Context) {
	utils.SendSuccess(c, 200, "Ping successful", gin.H{
		"data": "pong",
	})
}
