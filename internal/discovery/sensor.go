package discovery

import (
	"fmt"
	"regexp"

	"github.com/nerrad567/gray-logic-units/internal/units"
)

// ComponentSensor is the Home Assistant component for sensor entities.
const ComponentSensor = "sensor"

// validID matches the character class Home Assistant allows in node and
// object ids.
var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Device groups entities under one device in Home Assistant.
type Device struct {
	Identifiers  []string `json:"ids,omitempty"`
	Name         string   `json:"name,omitempty"`
	Manufacturer string   `json:"mf,omitempty"`
	Model        string   `json:"mdl,omitempty"`
	SWVersion    string   `json:"sw,omitempty"`
}

// Origin identifies the application that published a discovery config.
type Origin struct {
	Name      string `json:"name"`
	SWVersion string `json:"sw,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Sensor is a Home Assistant MQTT sensor discovery config.
//
// JSON keys use Home Assistant's abbreviated forms, as sent on the wire:
//
//	{"name":"Outdoor Temperature","uniq_id":"weather_outdoor_temp",
//	 "stat_t":"graylogic/core/device/weather/state","unit_of_meas":"°C", ...}
type Sensor struct {
	Name              string     `json:"name"`
	UniqueID          string     `json:"uniq_id"`
	StateTopic        string     `json:"stat_t"`
	DeviceClass       string     `json:"dev_cla,omitempty"`
	StateClass        string     `json:"stat_cla,omitempty"`
	Unit              units.Unit `json:"unit_of_meas"`
	DisplayPrecision  *int       `json:"sug_dsp_prc,omitempty"`
	ValueTemplate     string     `json:"val_tpl,omitempty"`
	AvailabilityTopic string     `json:"avty_t,omitempty"`
	ExpireAfter       int        `json:"exp_aft,omitempty"`
	Device            *Device    `json:"dev,omitempty"`
	Origin            *Origin    `json:"o,omitempty"`
	Platform          string     `json:"platform,omitempty"`

	// NodeID is an optional topic level; it is not part of the payload.
	NodeID string `json:"-"`
}

// Validate checks the sensor before it is published.
//
// Returns:
//   - error: ErrMissingField, ErrInvalidID, ErrInvalidUnit or ErrInvalidField
func (s Sensor) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name", ErrMissingField)
	}
	if s.StateTopic == "" {
		return fmt.Errorf("%w: state_topic for %q", ErrMissingField, s.Name)
	}
	if s.UniqueID == "" {
		return fmt.Errorf("%w: unique_id for %q", ErrMissingField, s.Name)
	}
	if !validID.MatchString(s.UniqueID) {
		return fmt.Errorf("%w: unique_id %q", ErrInvalidID, s.UniqueID)
	}
	if s.NodeID != "" && !validID.MatchString(s.NodeID) {
		return fmt.Errorf("%w: node_id %q", ErrInvalidID, s.NodeID)
	}
	if !s.Unit.Valid() {
		return fmt.Errorf("%w: %q is not a %s unit", ErrInvalidUnit, s.Unit.Symbol, s.Unit.Category)
	}
	if s.DisplayPrecision != nil && *s.DisplayPrecision < 0 {
		return fmt.Errorf("%w: suggested_display_precision %d", ErrInvalidField, *s.DisplayPrecision)
	}
	return nil
}

// Topic returns the discovery config topic for this sensor. The unique id
// is used as the object id.
func (s Sensor) Topic(prefix string) string {
	return Topic(prefix, ComponentSensor, s.NodeID, s.UniqueID)
}
