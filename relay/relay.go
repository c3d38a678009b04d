package relay

import (
	"sync"
	"time"

	"github.com/luiszamoranom/moviles-hashtagram-backend/utils"

	"github.com/gorilla/websocket"
)

// Cota superior de un envío: un relay que no lee no debe retener el
// request que originó la notificación.
var writeTimeout = 5 * time.Second

// Notifier entrega una señal liviana al canal de eventos en tiempo real.
// El envío es best-effort: nunca retorna error ni bloquea al caller.
type Notifier interface {
	Notify(payload string)
}

// Noop descarta todas las notificaciones. Se usa cuando no hay relay
// configurado y en los tests.
type Noop struct{}

func (Noop) Notify(string) {}

// WebSocket mantiene una única conexión de larga vida hacia el relay.
// Dos estados: conectado o desconectado. Un error de transporte la deja
// desconectada; no hay reconexión automática.
type WebSocket struct {
	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
}

// Dial intenta el handshake una sola vez. Si falla, retorna igualmente un
// relay utilizable cuyos envíos se descartan con log.
func Dial(url string) *WebSocket {
	ws := &WebSocket{}

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		utils.LogError(err, "Error en la conexión WebSocket con el relay")
		return ws
	}

	ws.conn = conn
	ws.connected = true
	utils.LogSuccess("Conexión WebSocket con el relay establecida")
	return ws
}

// Notify envía el payload si la conexión está abierta. Si no lo está, o el
// write falla, se registra y se descarta: el resultado de la operación que
// originó la notificación no depende del relay. El write lleva deadline;
// un deadline vencido es un error de transporte como cualquier otro.
func (w *WebSocket) Notify(payload string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.connected {
		utils.LogError(nil, "No se pudo enviar el mensaje, la conexión WebSocket no está abierta")
		return
	}

	w.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := w.conn.WriteMessage(websocket.TextMessage, []byte(payload)); err != nil {
		w.conn.Close()
		w.connected = false
		utils.LogError(err, "Error al enviar mensaje por WebSocket, conexión marcada como cerrada")
	}
}

// Connected informa el estado actual de la conexión.
func (w *WebSocket) Connected() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.connected
}

func (w *WebSocket) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.connected {
		w.conn.Close()
		w.connected = false
	}
}
