package discovery

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/nerrad567/gray-logic-units/internal/infrastructure/mqtt"
	"github.com/nerrad567/gray-logic-units/internal/units"
)

// qosAtLeastOnce is the QoS for discovery and catalog messages.
const qosAtLeastOnce byte = 1

// MessagePublisher is the MQTT capability the Publisher needs.
// *mqtt.Client satisfies it.
type MessagePublisher interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
}

// Logger is the subset of logging.Logger used by the Publisher.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...any) {}
func (noopLogger) Warn(string, ...any) {}

// Topic returns a Home Assistant discovery config topic.
//
// Format: <prefix>/<component>/[<node_id>/]<object_id>/config
func Topic(prefix, component, nodeID, objectID string) string {
	return mqtt.Topics{}.DiscoveryConfig(prefix, component, nodeID, objectID)
}

// Publisher publishes discovery configs and the unit catalog.
//
// Thread Safety:
//   - Safe for concurrent use if the underlying MessagePublisher is.
type Publisher struct {
	client MessagePublisher
	prefix string
	origin *Origin
	logger Logger
}

// NewPublisher creates a Publisher writing under the given discovery prefix.
// A nil logger discards log output.
func NewPublisher(client MessagePublisher, prefix string, logger Logger) *Publisher {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Publisher{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

// SetOrigin attaches origin info ("o") to every sensor config published
// afterwards.
func (p *Publisher) SetOrigin(o Origin) {
	p.origin = &o
}

// PublishSensor validates s and publishes its config, retained at QoS 1.
//
// Returns:
//   - error: A Validate error, ctx.Err(), or the MQTT publish error
func (p *Publisher) PublishSensor(ctx context.Context, s Sensor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	s.Platform = ComponentSensor
	if s.Origin == nil {
		s.Origin = p.origin
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding sensor %q: %w", s.UniqueID, err)
	}

	topic := s.Topic(p.prefix)
	if err := p.client.Publish(topic, payload, qosAtLeastOnce, true); err != nil {
		return fmt.Errorf("publishing sensor %q: %w", s.UniqueID, err)
	}

	p.logger.Info("sensor announced",
		"topic", topic,
		"unique_id", s.UniqueID,
		"unit", s.Unit.Symbol,
	)
	return nil
}

// PublishSensors publishes each sensor, continuing past failures. It
// returns the number published and the first error.
func (p *Publisher) PublishSensors(ctx context.Context, sensors []Sensor) (int, error) {
	var firstErr error
	published := 0

	for _, s := range sensors {
		if err := p.PublishSensor(ctx, s); err != nil {
			p.logger.Warn("sensor announcement failed", "unique_id", s.UniqueID, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			if ctx.Err() != nil {
				break
			}
			continue
		}
		published++
	}

	return published, firstErr
}

// RemoveSensor clears a retained config, which makes Home Assistant delete
// the entity.
func (p *Publisher) RemoveSensor(ctx context.Context, s Sensor) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := p.client.Publish(s.Topic(p.prefix), nil, qosAtLeastOnce, true); err != nil {
		return fmt.Errorf("removing sensor %q: %w", s.UniqueID, err)
	}
	return nil
}

// PublishCatalog publishes the category index on graylogic/units and each
// category's members on graylogic/units/<category>, all retained.
//
// Example payloads:
//
//	graylogic/units                   ["UnitOfApparentPower","UnitOfPower",...]
//	graylogic/units/UnitOfTemperature [{"name":"CELSIUS","symbol":"°C"},...]
func (p *Publisher) PublishCatalog(ctx context.Context) error {
	topics := mqtt.Topics{}
	categories := units.Categories()

	index, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("encoding category index: %w", err)
	}
	if err := p.client.Publish(topics.UnitsIndex(), index, qosAtLeastOnce, true); err != nil {
		return fmt.Errorf("publishing category index: %w", err)
	}

	for _, c := range categories {
		if err := ctx.Err(); err != nil {
			return err
		}

		members, err := units.MembersOf(c)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(members)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", c, err)
		}
		if err := p.client.Publish(topics.UnitsCatalog(string(c)), payload, qosAtLeastOnce, true); err != nil {
			return fmt.Errorf("publishing %s: %w", c, err)
		}
	}

	p.logger.Info("unit catalog published", "categories", len(categories))
	return nil
}
