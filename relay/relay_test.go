package relay

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func newRelayServer(t *testing.T, received chan<- string) *httptest.Server {
	upgrader := websocket.Upgrader{}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("error en el upgrade del websocket: %s", err)
			return
		}
		defer conn.Close()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			received <- string(msg)
		}
	}))
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestDialAndNotify(t *testing.T) {
	received := make(chan string, 1)
	srv := newRelayServer(t, received)
	defer srv.Close()

	ws := Dial(wsURL(srv))
	defer ws.Close()

	assert.True(t, ws.Connected())

	ws.Notify("42")

	select {
	case msg := <-received:
		assert.Equal(t, "42", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("el relay no recibió la notificación")
	}
}

// Un relay conectado pero que no lee debe agotar el deadline del write,
// no retener los envíos: una vez lleno el buffer del socket, el write
// falla por timeout, la conexión queda marcada como cerrada y el resto
// de los envíos se descartan de inmediato.
func TestNotifyStalledRelayDoesNotBlock(t *testing.T) {
	prev := writeTimeout
	writeTimeout = 100 * time.Millisecond
	defer func() { writeTimeout = prev }()

	upgrader := websocket.Upgrader{}
	stop := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		<-stop
	}))
	defer srv.Close()
	defer close(stop)

	ws := Dial(wsURL(srv))
	defer ws.Close()

	assert.True(t, ws.Connected())

	payload := strings.Repeat("x", 1<<20)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 64; i++ {
			ws.Notify(payload)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Notify quedó retenido por un relay que no lee")
	}

	assert.False(t, ws.Connected())
}

func TestDialFailureIsNotFatal(t *testing.T) {
	ws := Dial("ws://127.0.0.1:1/relay")

	assert.False(t, ws.Connected())

	// Sin conexión el envío se descarta sin error
	ws.Notify("42")
	ws.Close()
}

func TestNoopNotifier(t *testing.T) {
	var n Notifier = Noop{}
	n.Notify("42")
}
