package ingest

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"

	"github.com/nerrad567/gray-logic-units/internal/infrastructure/influxdb"
	"github.com/nerrad567/gray-logic-units/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-units/internal/units"
)

// qosAtLeastOnce is the QoS used for the state subscription.
const qosAtLeastOnce byte = 1

// Message is the wire form of a reading published by a bridge.
type Message struct {
	Category string   `json:"category"`
	Unit     string   `json:"unit"`
	Value    *float64 `json:"value"`

	// Timestamp is optional; the write time is used when absent.
	Timestamp time.Time `json:"timestamp"`
}

// Writer stores accepted readings. *influxdb.Client satisfies it.
type Writer interface {
	WriteReading(r influxdb.Reading)
}

// Subscriber is the MQTT capability needed to receive readings.
// *mqtt.Client satisfies it.
type Subscriber interface {
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
}

// Logger is the subset of logging.Logger used by the Handler.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}

// Stats holds ingest counters.
type Stats struct {
	Accepted     uint64     `json:"accepted"`
	Rejected     uint64     `json:"rejected"`
	LastAccepted *time.Time `json:"last_accepted,omitempty"`
}

// Handler validates readings and forwards them to a Writer.
//
// Thread Safety:
//   - HandleMessage may be called concurrently from MQTT callbacks.
type Handler struct {
	writer Writer
	logger Logger

	onAccepted func(r influxdb.Reading)
	mu         sync.RWMutex

	accepted     atomic.Uint64
	rejected     atomic.Uint64
	lastAccepted atomic.Int64 // Unix nanoseconds, 0 if none
}

// NewHandler creates a Handler. A nil writer validates and counts readings
// without storing them; a nil logger discards log output.
func NewHandler(w Writer, logger Logger) *Handler {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Handler{writer: w, logger: logger}
}

// SetOnAccepted sets a callback run after each accepted reading is written.
func (h *Handler) SetOnAccepted(cb func(r influxdb.Reading)) {
	h.mu.Lock()
	h.onAccepted = cb
	h.mu.Unlock()
}

// Subscribe registers the handler for topic on sub.
func (h *Handler) Subscribe(sub Subscriber, topic string) error {
	if err := sub.Subscribe(topic, qosAtLeastOnce, h.HandleMessage); err != nil {
		return fmt.Errorf("subscribing to %s: %w", topic, err)
	}
	return nil
}

// HandleMessage processes one state message. Rejected readings are logged
// and counted here, so it never returns an error to the MQTT layer.
func (h *Handler) HandleMessage(topic string, payload []byte) error {
	r, err := ParseReading(topic, payload)
	if err != nil {
		h.rejected.Add(1)
		h.logger.Warn("reading rejected", "topic", topic, "error", err)
		return nil
	}

	if h.writer != nil {
		h.writer.WriteReading(r)
	}
	h.accepted.Add(1)
	h.lastAccepted.Store(time.Now().UnixNano())

	h.mu.RLock()
	cb := h.onAccepted
	h.mu.RUnlock()
	if cb != nil {
		cb(r)
	}

	h.logger.Debug("reading accepted",
		"device_id", r.DeviceID,
		"category", r.Unit.Category,
		"unit", r.Unit.Symbol,
		"value", r.Value,
	)
	return nil
}

// Stats returns current counters.
func (h *Handler) Stats() Stats {
	s := Stats{
		Accepted: h.accepted.Load(),
		Rejected: h.rejected.Load(),
	}
	if ns := h.lastAccepted.Load(); ns != 0 {
		t := time.Unix(0, ns).UTC()
		s.LastAccepted = &t
	}
	return s
}

// ParseReading decodes and validates a state message.
//
// Parameters:
//   - topic: graylogic/state/<protocol>/<device_id>
//   - payload: JSON Message
//
// Returns:
//   - influxdb.Reading: Reading with a validated unit
//   - error: ErrInvalidTopic, ErrInvalidPayload or ErrInvalidUnit
func ParseReading(topic string, payload []byte) (influxdb.Reading, error) {
	protocol, deviceID, ok := mqtt.Topics{}.ParseState(topic)
	if !ok {
		return influxdb.Reading{}, fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}

	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return influxdb.Reading{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if msg.Value == nil {
		return influxdb.Reading{}, fmt.Errorf("%w: missing value", ErrInvalidPayload)
	}

	unit, err := resolveUnit(msg.Category, msg.Unit)
	if err != nil {
		return influxdb.Reading{}, err
	}

	return influxdb.Reading{
		DeviceID: deviceID,
		Protocol: protocol,
		Unit:     unit,
		Value:    *msg.Value,
		Time:     msg.Timestamp,
	}, nil
}

// resolveUnit validates symbol against category, or against the reverse
// index when category is empty.
func resolveUnit(category, symbol string) (units.Unit, error) {
	if category == "" {
		refs := units.Lookup(symbol)
		switch len(refs) {
		case 0:
			return units.Unit{}, fmt.Errorf("%w: %w: %q", ErrInvalidUnit, units.ErrUnknownSymbol, symbol)
		case 1:
			return units.Unit{Category: refs[0].Category, Symbol: refs[0].Symbol}, nil
		default:
			return units.Unit{}, fmt.Errorf("%w: %w: %q needs a category", ErrInvalidUnit, units.ErrAmbiguousSymbol, symbol)
		}
	}

	c, err := units.ParseCategory(category)
	if err != nil {
		return units.Unit{}, fmt.Errorf("%w: %w", ErrInvalidUnit, err)
	}
	u, err := units.NewUnit(c, symbol)
	if err != nil {
		return units.Unit{}, fmt.Errorf("%w: %w", ErrInvalidUnit, err)
	}
	return u, nil
}
