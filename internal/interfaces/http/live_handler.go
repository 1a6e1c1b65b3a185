package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-pisos/internal/infrastructure/push"
)

// LiveUpgrade deja pasar solo peticiones con handshake websocket.
func LiveUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// LiveHandler suscribe la conexión al hub y reenvía cada publicación
// al socket. Best-effort: sin replay de mensajes perdidos ni acks.
func LiveHandler(hub *push.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		id, ch := hub.Subscribe()
		defer hub.Unsubscribe(id)

		// Lector solo para detectar el cierre del lado del cliente
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	})
}
