package discovery

import (
	"context"
	"errors"
	"sync"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/nerrad567/gray-logic-units/internal/units"
)

type published struct {
	topic    string
	payload  []byte
	qos      byte
	retained bool
}

// fakeClient records publishes and optionally fails for one topic.
type fakeClient struct {
	mu       sync.Mutex
	messages []published
	failOn   string
}

func (f *fakeClient) Publish(topic string, payload []byte, qos byte, retained bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != "" && topic == f.failOn {
		return errors.New("broker unavailable")
	}
	f.messages = append(f.messages, published{topic, payload, qos, retained})
	return nil
}

func (f *fakeClient) byTopic(topic string) (published, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.messages {
		if m.topic == topic {
			return m, true
		}
	}
	return published{}, false
}

func TestPublisher_PublishSensor(t *testing.T) {
	client := &fakeClient{}
	pub := NewPublisher(client, "homeassistant", nil)
	pub.SetOrigin(Origin{Name: "graylogic-units", SWVersion: "1.0.0"})

	if err := pub.PublishSensor(context.Background(), validSensor()); err != nil {
		t.Fatalf("PublishSensor() error = %v", err)
	}

	msg, ok := client.byTopic("homeassistant/sensor/weather_outdoor_temp/config")
	if !ok {
		t.Fatalf("no message on config topic; got %+v", client.messages)
	}
	if msg.qos != 1 || !msg.retained {
		t.Errorf("qos/retained = %d/%v, want 1/true", msg.qos, msg.retained)
	}

	var payload map[string]any
	if err := json.Unmarshal(msg.payload, &payload); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if payload["platform"] != "sensor" {
		t.Errorf("platform = %v, want sensor", payload["platform"])
	}
	if payload["unit_of_meas"] != "°C" {
		t.Errorf("unit_of_meas = %v, want °C", payload["unit_of_meas"])
	}
	origin, ok := payload["o"].(map[string]any)
	if !ok || origin["name"] != "graylogic-units" {
		t.Errorf("o = %v, want origin", payload["o"])
	}
}

func TestPublisher_PublishSensor_Errors(t *testing.T) {
	t.Run("invalid sensor is not published", func(t *testing.T) {
		client := &fakeClient{}
		pub := NewPublisher(client, "homeassistant", nil)

		s := validSensor()
		s.Unit = units.Unit{Category: units.CategoryPower, Symbol: "°C"}
		if err := pub.PublishSensor(context.Background(), s); !errors.Is(err, ErrInvalidUnit) {
			t.Errorf("PublishSensor() error = %v, want ErrInvalidUnit", err)
		}
		if len(client.messages) != 0 {
			t.Errorf("published %d messages, want 0", len(client.messages))
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		pub := NewPublisher(&fakeClient{}, "homeassistant", nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if err := pub.PublishSensor(ctx, validSensor()); !errors.Is(err, context.Canceled) {
			t.Errorf("PublishSensor() error = %v, want context.Canceled", err)
		}
	})

	t.Run("broker error", func(t *testing.T) {
		client := &fakeClient{failOn: "homeassistant/sensor/weather_outdoor_temp/config"}
		pub := NewPublisher(client, "homeassistant", nil)
		if err := pub.PublishSensor(context.Background(), validSensor()); err == nil {
			t.Error("PublishSensor() error = nil, want broker error")
		}
	})
}

func TestPublisher_PublishSensors(t *testing.T) {
	client := &fakeClient{}
	pub := NewPublisher(client, "homeassistant", nil)

	bad := validSensor()
	bad.UniqueID = "bad id"
	second := validSensor()
	second.UniqueID = "grid_power"
	second.Unit = units.From(units.PowerKiloWatt)

	n, err := pub.PublishSensors(context.Background(), []Sensor{validSensor(), bad, second})
	if n != 2 {
		t.Errorf("PublishSensors() published = %d, want 2", n)
	}
	if !errors.Is(err, ErrInvalidID) {
		t.Errorf("PublishSensors() error = %v, want ErrInvalidID", err)
	}
	if _, ok := client.byTopic("homeassistant/sensor/grid_power/config"); !ok {
		t.Error("sensor after the failure was not published")
	}
}

func TestPublisher_RemoveSensor(t *testing.T) {
	client := &fakeClient{}
	pub := NewPublisher(client, "homeassistant", nil)

	if err := pub.RemoveSensor(context.Background(), validSensor()); err != nil {
		t.Fatalf("RemoveSensor() error = %v", err)
	}
	msg, ok := client.byTopic("homeassistant/sensor/weather_outdoor_temp/config")
	if !ok || len(msg.payload) != 0 || !msg.retained {
		t.Errorf("RemoveSensor() message = %+v, want empty retained payload", msg)
	}
}

func TestPublisher_PublishCatalog(t *testing.T) {
	client := &fakeClient{}
	pub := NewPublisher(client, "homeassistant", nil)

	if err := pub.PublishCatalog(context.Background()); err != nil {
		t.Fatalf("PublishCatalog() error = %v", err)
	}

	categories := units.Categories()
	if len(client.messages) != len(categories)+1 {
		t.Errorf("published %d messages, want %d", len(client.messages), len(categories)+1)
	}
	for _, m := range client.messages {
		if !m.retained || m.qos != 1 {
			t.Errorf("%s: qos/retained = %d/%v, want 1/true", m.topic, m.qos, m.retained)
		}
	}

	index, ok := client.byTopic("graylogic/units")
	if !ok {
		t.Fatal("no message on graylogic/units")
	}
	var names []string
	if err := json.Unmarshal(index.payload, &names); err != nil {
		t.Fatalf("Unmarshal(index) error = %v", err)
	}
	if len(names) != len(categories) || names[0] != string(categories[0]) {
		t.Errorf("index = %v, want %v", names, categories)
	}

	temp, ok := client.byTopic("graylogic/units/UnitOfTemperature")
	if !ok {
		t.Fatal("no message on graylogic/units/UnitOfTemperature")
	}
	var members []units.Member
	if err := json.Unmarshal(temp.payload, &members); err != nil {
		t.Fatalf("Unmarshal(members) error = %v", err)
	}
	want, _ := units.MembersOf(units.CategoryTemperature)
	if len(members) != len(want) {
		t.Fatalf("members = %v, want %v", members, want)
	}
	for i := range want {
		if members[i] != want[i] {
			t.Errorf("members[%d] = %+v, want %+v", i, members[i], want[i])
		}
	}
}

func TestPublisher_PublishCatalog_IndexFailure(t *testing.T) {
	client := &fakeClient{failOn: "graylogic/units"}
	pub := NewPublisher(client, "homeassistant", nil)

	if err := pub.PublishCatalog(context.Background()); err == nil {
		t.Error("PublishCatalog() error = nil, want failure")
	}
	if len(client.messages) != 0 {
		t.Errorf("published %d category messages after index failure, want 0", len(client.messages))
	}
}
