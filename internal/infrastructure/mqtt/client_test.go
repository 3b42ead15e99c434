package mqtt

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/nerrad567/gray-logic-units/internal/infrastructure/config"
)

// testConfig returns an MQTT configuration pointing at a local broker.
// Tests in this file never dial it.
func testConfig() config.MQTTConfig {
	return config.MQTTConfig{
		Enabled: true,
		Broker: config.MQTTBrokerConfig{
			Host:     "127.0.0.1",
			Port:     1883,
			ClientID: "graylogic-units-test",
		},
		QoS: 1,
		Reconnect: config.MQTTReconnectConfig{
			InitialDelay: 1,
			MaxDelay:     5,
		},
	}
}

// mockLogger implements Logger for testing.
type mockLogger struct {
	mu     sync.Mutex
	errors []string
	warns  []string
}

func (l *mockLogger) Error(msg string, _ ...any) {
	l.mu.Lock()
	l.errors = append(l.errors, msg)
	l.mu.Unlock()
}

func (l *mockLogger) Warn(msg string, _ ...any) {
	l.mu.Lock()
	l.warns = append(l.warns, msg)
	l.mu.Unlock()
}

// fakeMessage implements pahomqtt.Message.
type fakeMessage struct {
	topic   string
	payload []byte
}

func (m fakeMessage) Duplicate() bool   { return false }
func (m fakeMessage) Qos() byte         { return 1 }
func (m fakeMessage) Retained() bool    { return false }
func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) MessageID() uint16 { return 1 }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) Ack()              {}

// =============================================================================
// Options
// =============================================================================

func TestBuildClientOptions(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = config.MQTTAuthConfig{Username: "units", Password: "secret"}

	opts := buildClientOptions(cfg)

	if len(opts.Servers) != 1 || opts.Servers[0].String() != "tcp://127.0.0.1:1883" {
		t.Errorf("Servers = %v, want [tcp://127.0.0.1:1883]", opts.Servers)
	}
	if opts.ClientID != "graylogic-units-test" {
		t.Errorf("ClientID = %q, want graylogic-units-test", opts.ClientID)
	}
	if opts.Username != "units" || opts.Password != "secret" {
		t.Errorf("credentials = %q/%q, want units/secret", opts.Username, opts.Password)
	}
	if !opts.CleanSession {
		t.Error("CleanSession = false, want true")
	}
	if !opts.AutoReconnect {
		t.Error("AutoReconnect = false, want true")
	}
	if opts.TLSConfig != nil {
		t.Error("TLSConfig set without broker.tls")
	}
}

func TestBuildClientOptions_TLS(t *testing.T) {
	cfg := testConfig()
	cfg.Broker.TLS = true
	cfg.Broker.Port = 8883

	opts := buildClientOptions(cfg)

	if got := opts.Servers[0].String(); got != "ssl://127.0.0.1:8883" {
		t.Errorf("Servers[0] = %q, want ssl://127.0.0.1:8883", got)
	}
	if opts.TLSConfig == nil || opts.TLSConfig.MinVersion != tlsMinVersion {
		t.Error("TLSConfig missing or below TLS 1.2")
	}
}

func TestConfigureLWT(t *testing.T) {
	opts := buildClientOptions(testConfig())
	configureLWT(opts, "graylogic-units-test")

	if !opts.WillEnabled {
		t.Fatal("WillEnabled = false, want true")
	}
	if opts.WillTopic != "graylogic/system/status" {
		t.Errorf("WillTopic = %q, want graylogic/system/status", opts.WillTopic)
	}
	if !opts.WillRetained || opts.WillQos != 1 {
		t.Errorf("Will retained=%v qos=%d, want retained qos 1", opts.WillRetained, opts.WillQos)
	}
	if !strings.Contains(string(opts.WillPayload), `"reason":"unexpected_disconnect"`) {
		t.Errorf("WillPayload = %s, want unexpected_disconnect reason", opts.WillPayload)
	}
}

func TestStatusPayloads(t *testing.T) {
	online := buildOnlinePayload("units")
	if !strings.Contains(online, `"status":"online"`) || strings.Contains(online, "reason") {
		t.Errorf("buildOnlinePayload() = %s", online)
	}

	offline := buildOfflinePayload("units")
	if !strings.Contains(offline, `"status":"offline"`) || !strings.Contains(offline, `"reason":"graceful_shutdown"`) {
		t.Errorf("buildOfflinePayload() = %s", offline)
	}
}

// =============================================================================
// Disconnected client
// =============================================================================

func TestClient_NotConnected(t *testing.T) {
	c := newClient(testConfig())
	handler := func(string, []byte) error { return nil }

	if c.IsConnected() {
		t.Fatal("IsConnected() = true before Connect")
	}

	if err := c.Publish("graylogic/units", []byte("[]"), 1, true); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Publish() error = %v, want ErrNotConnected", err)
	}
	if err := c.PublishRetained("graylogic/units", []byte("[]")); !errors.Is(err, ErrNotConnected) {
		t.Errorf("PublishRetained() error = %v, want ErrNotConnected", err)
	}
	if err := c.Subscribe(Topics{}.AllStates(), 1, handler); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Subscribe() error = %v, want ErrNotConnected", err)
	}
	if c.HasSubscription(Topics{}.AllStates()) {
		t.Error("failed Subscribe left a tracked subscription")
	}
	if err := c.Unsubscribe(Topics{}.AllStates()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("Unsubscribe() error = %v, want ErrNotConnected", err)
	}
	if err := c.HealthCheck(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestClient_InputValidation(t *testing.T) {
	c := newClient(testConfig())
	handler := func(string, []byte) error { return nil }

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "publish empty topic", err: c.Publish("", []byte("x"), 1, false), want: ErrInvalidTopic},
		{name: "publish qos 3", err: c.Publish("t", []byte("x"), 3, false), want: ErrInvalidQoS},
		{name: "publish oversize", err: c.Publish("t", make([]byte, maxPayloadSize+1), 1, false), want: ErrPublishFailed},
		{name: "subscribe empty topic", err: c.Subscribe("", 1, handler), want: ErrInvalidTopic},
		{name: "subscribe qos 3", err: c.Subscribe("t", 3, handler), want: ErrInvalidQoS},
		{name: "subscribe nil handler", err: c.Subscribe("t", 1, nil), want: ErrSubscribeFailed},
		{name: "unsubscribe empty topic", err: c.Unsubscribe(""), want: ErrInvalidTopic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("error = %v, want %v", tt.err, tt.want)
			}
		})
	}
}

func TestClient_HealthCheckCancelled(t *testing.T) {
	c := newClient(testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.HealthCheck(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("HealthCheck() error = %v, want context.Canceled", err)
	}
}

func TestCloseNil(t *testing.T) {
	var c *Client
	if err := c.Close(); err != nil {
		t.Errorf("Close() on nil client error = %v", err)
	}
}

// =============================================================================
// Handler wrapping
// =============================================================================

func TestWrapHandler_LogsErrors(t *testing.T) {
	c := newClient(testConfig())
	logger := &mockLogger{}
	c.SetLogger(logger)

	wrapped := c.wrapHandler(func(string, []byte) error {
		return errors.New("bad reading")
	})
	wrapped(nil, fakeMessage{topic: "graylogic/state/knx/x", payload: []byte("{}")})

	if len(logger.warns) != 1 {
		t.Errorf("warns = %v, want one entry", logger.warns)
	}
}

func TestWrapHandler_RecoversPanic(t *testing.T) {
	c := newClient(testConfig())
	logger := &mockLogger{}
	c.SetLogger(logger)

	wrapped := c.wrapHandler(func(string, []byte) error {
		panic("boom")
	})
	wrapped(nil, fakeMessage{topic: "graylogic/state/knx/x"})

	if len(logger.errors) != 1 {
		t.Errorf("errors = %v, want one recovered panic", logger.errors)
	}
}

func TestWrapHandler_PassesTopicAndPayload(t *testing.T) {
	c := newClient(testConfig())

	var gotTopic, gotPayload string
	wrapped := c.wrapHandler(func(topic string, payload []byte) error {
		gotTopic, gotPayload = topic, string(payload)
		return nil
	})
	wrapped(nil, fakeMessage{topic: "graylogic/state/zigbee/t1", payload: []byte(`{"value":1}`)})

	if gotTopic != "graylogic/state/zigbee/t1" || gotPayload != `{"value":1}` {
		t.Errorf("handler got %q %q", gotTopic, gotPayload)
	}
}

func TestHandleDisconnect_InvokesCallback(t *testing.T) {
	c := newClient(testConfig())
	c.setConnected(true)

	var got error
	c.SetOnDisconnect(func(err error) { got = err })
	c.handleDisconnect(errors.New("network down"))

	if got == nil || got.Error() != "network down" {
		t.Errorf("onDisconnect got %v", got)
	}
	c.connMu.RLock()
	connected := c.connected
	c.connMu.RUnlock()
	if connected {
		t.Error("connected flag still set after disconnect")
	}
}

// =============================================================================
// Topics
// =============================================================================

func TestTopicBuilders(t *testing.T) {
	topics := Topics{}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "State", got: topics.State("knx", "weather-outdoor"), want: "graylogic/state/knx/weather-outdoor"},
		{name: "AllStates", got: topics.AllStates(), want: "graylogic/state/+/+"},
		{name: "SystemStatus", got: topics.SystemStatus(), want: "graylogic/system/status"},
		{name: "UnitsIndex", got: topics.UnitsIndex(), want: "graylogic/units"},
		{name: "UnitsCatalog", got: topics.UnitsCatalog("UnitOfTemperature"), want: "graylogic/units/UnitOfTemperature"},
		{
			name: "DiscoveryConfig with node",
			got:  topics.DiscoveryConfig("homeassistant", "sensor", "weather", "outdoor_temp"),
			want: "homeassistant/sensor/weather/outdoor_temp/config",
		},
		{
			name: "DiscoveryConfig without node",
			got:  topics.DiscoveryConfig("homeassistant", "sensor", "", "outdoor_temp"),
			want: "homeassistant/sensor/outdoor_temp/config",
		},
		{
			name: "DiscoveryConfig trailing slash",
			got:  topics.DiscoveryConfig("ha/", "sensor", "", "t1"),
			want: "ha/sensor/t1/config",
		},
		{
			name: "DiscoveryConfig empty prefix",
			got:  topics.DiscoveryConfig("", "sensor", "", "t1"),
			want: "homeassistant/sensor/t1/config",
		},
		{name: "AllDiscoveryConfigs", got: topics.AllDiscoveryConfigs("homeassistant/", "sensor"), want: "homeassistant/sensor/#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestTopics_ParseState(t *testing.T) {
	tests := []struct {
		topic        string
		wantProtocol string
		wantDevice   string
		wantOK       bool
	}{
		{topic: "graylogic/state/knx/weather-outdoor", wantProtocol: "knx", wantDevice: "weather-outdoor", wantOK: true},
		{topic: "graylogic/state/knx", wantOK: false},
		{topic: "graylogic/command/knx/x", wantOK: false},
		{topic: "other/state/knx/x", wantOK: false},
		{topic: "graylogic/state//x", wantOK: false},
		{topic: "graylogic/state/knx/x/extra", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.topic, func(t *testing.T) {
			p, d, ok := Topics{}.ParseState(tt.topic)
			if ok != tt.wantOK || p != tt.wantProtocol || d != tt.wantDevice {
				t.Errorf("ParseState(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.topic, p, d, ok, tt.wantProtocol, tt.wantDevice, tt.wantOK)
			}
		})
	}
}
