package mqtt

import (
	"fmt"
	"strings"
)

// Topic prefixes used by the units service.
const (
	// TopicPrefix is the base for all Gray Logic topics.
	TopicPrefix = "graylogic"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "graylogic/system"

	// TopicPrefixUnits is the base for the published unit catalog.
	TopicPrefixUnits = "graylogic/units"

	// DefaultDiscoveryPrefix is Home Assistant's default discovery prefix.
	DefaultDiscoveryPrefix = "homeassistant"
)

// Topics provides builders for the MQTT topics the units service uses.
//
//	topics := mqtt.Topics{}
//	topics.UnitsCatalog("UnitOfTemperature")
//	// Returns: "graylogic/units/UnitOfTemperature"
type Topics struct{}

// State returns the topic a bridge publishes a device reading on.
//
// Example: graylogic/state/knx/weather-outdoor
func (Topics) State(protocol, deviceID string) string {
	return fmt.Sprintf("%s/state/%s/%s", TopicPrefix, protocol, deviceID)
}

// AllStates returns a pattern matching every bridge reading.
//
// Pattern: graylogic/state/+/+
func (Topics) AllStates() string {
	return fmt.Sprintf("%s/state/+/+", TopicPrefix)
}

// ParseState splits a state topic into its protocol and device ID.
// It returns ok=false for anything that is not graylogic/state/<p>/<d>.
func (Topics) ParseState(topic string) (protocol, deviceID string, ok bool) {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 || parts[0] != TopicPrefix || parts[1] != "state" {
		return "", "", false
	}
	if parts[2] == "" || parts[3] == "" {
		return "", "", false
	}
	return parts[2], parts[3], true
}

// SystemStatus returns the service status topic (LWT and online/offline).
//
// Example: graylogic/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}

// UnitsIndex returns the topic carrying the list of category identifiers.
//
// Example: graylogic/units
func (Topics) UnitsIndex() string {
	return TopicPrefixUnits
}

// UnitsCatalog returns the topic carrying one category's members.
//
// Example: graylogic/units/UnitOfTemperature
func (Topics) UnitsCatalog(category string) string {
	return fmt.Sprintf("%s/%s", TopicPrefixUnits, category)
}

// DiscoveryConfig returns a Home Assistant discovery config topic.
//
// Format: <prefix>/<component>/[<node_id>/]<object_id>/config
//
// A trailing slash on prefix is ignored and an empty nodeID is omitted.
// An empty prefix falls back to DefaultDiscoveryPrefix.
//
// Example: homeassistant/sensor/weather/outdoor_temp/config
func (Topics) DiscoveryConfig(prefix, component, nodeID, objectID string) string {
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		prefix = DefaultDiscoveryPrefix
	}
	if nodeID == "" {
		return fmt.Sprintf("%s/%s/%s/config", prefix, component, objectID)
	}
	return fmt.Sprintf("%s/%s/%s/%s/config", prefix, component, nodeID, objectID)
}

// AllDiscoveryConfigs returns a pattern matching every config for a component.
//
// Pattern: homeassistant/sensor/#
func (Topics) AllDiscoveryConfigs(prefix, component string) string {
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		prefix = DefaultDiscoveryPrefix
	}
	return fmt.Sprintf("%s/%s/#", prefix, component)
}
