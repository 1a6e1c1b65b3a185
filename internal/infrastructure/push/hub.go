// Package push implementa el canal de actualizaciones en vivo: un hub de
// suscriptores en proceso al que el libro de stock publica la foto del
// producto tras cada movimiento confirmado.
package push

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-pisos/internal/application/dto"
	"github.com/tu-usuario/stock-pisos/internal/application/stock"
	"github.com/tu-usuario/stock-pisos/internal/domain/entity"
	"github.com/tu-usuario/stock-pisos/pkg/logger"
)

// Ensure Hub implements stock.Notifier.
var _ stock.Notifier = (*Hub)(nil)

// Tamaño del buffer por suscriptor. Un suscriptor con el buffer lleno
// pierde el mensaje: el fan-out es best-effort, sin replay ni acks.
const subscriberBuffer = 16

// event sobre el canal en vivo.
type event struct {
	Event   string         `json:"event"`
	Product dto.ProductDTO `json:"product"`
}

// Hub registro de suscriptores con fan-out no bloqueante.
type Hub struct {
	log *logger.Logger

	mu     sync.RWMutex
	subs   map[string]chan []byte
	closed bool
}

// NewHub construye el hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{log: log, subs: make(map[string]chan []byte)}
}

// Subscribe registra un suscriptor y devuelve su ID y el canal de mensajes.
// El canal se cierra en Unsubscribe o en Close.
func (h *Hub) Subscribe() (string, <-chan []byte) {
	id := uuid.New().String()
	ch := make(chan []byte, subscriberBuffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return id, ch
	}
	h.subs[id] = ch
	return id, ch
}

// Unsubscribe da de baja al suscriptor y cierra su canal.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.subs[id]; ok {
		delete(h.subs, id)
		close(ch)
	}
}

// Notify publica la foto del producto a todos los suscriptores conectados.
// Nunca bloquea: si el buffer de un suscriptor está lleno, su mensaje se
// descarta y el movimiento que originó la publicación no se entera.
func (h *Hub) Notify(product *entity.Product) {
	payload, err := json.Marshal(event{Event: "stock-update", Product: dto.ProductFromEntity(product)})
	if err != nil {
		h.log.Error().Err(err).Msg("push: serializar evento")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, ch := range h.subs {
		select {
		case ch <- payload:
		default:
			h.log.Debug().Str("subscriber", id).Msg("push: buffer lleno, mensaje descartado")
		}
	}
}

// Count devuelve el número de suscriptores conectados.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close cierra todos los canales y rechaza suscripciones futuras.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for id, ch := range h.subs {
		delete(h.subs, id)
		close(ch)
	}
}
