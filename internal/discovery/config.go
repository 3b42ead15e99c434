package discovery

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nerrad567/gray-logic-units/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-units/internal/units"
)

// idNamespace scopes derived unique ids to this service.
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://graylogic.uk/units/discovery"))

// DeriveUniqueID returns a stable unique id for a sensor without one in
// config. The same name always yields the same id, so retained configs are
// overwritten rather than duplicated across restarts.
func DeriveUniqueID(name string) string {
	return uuid.NewSHA1(idNamespace, []byte(name)).String()
}

// SensorFromConfig builds a validated Sensor from a discovery.sensors entry.
//
// The unit is resolved within the declared category; a symbol from another
// category (or a typo) is an error, never substituted.
//
// Parameters:
//   - sc: One entry of discovery.sensors
//   - dev: The discovery.device section shared by all sensors
//
// Returns:
//   - Sensor: Ready to publish
//   - error: ErrInvalidUnit wrapping the registry error, or a Validate error
func SensorFromConfig(sc config.SensorConfig, dev config.DiscoveryDeviceConfig) (Sensor, error) {
	category, err := units.ParseCategory(sc.UnitCategory)
	if err != nil {
		return Sensor{}, fmt.Errorf("%w: sensor %q: %w", ErrInvalidUnit, sc.Name, err)
	}
	unit, err := units.NewUnit(category, sc.Unit)
	if err != nil {
		return Sensor{}, fmt.Errorf("%w: sensor %q: %w", ErrInvalidUnit, sc.Name, err)
	}

	s := Sensor{
		Name:             sc.Name,
		UniqueID:         sc.UniqueID,
		NodeID:           sc.NodeID,
		StateTopic:       sc.StateTopic,
		DeviceClass:      sc.DeviceClass,
		StateClass:       sc.StateClass,
		Unit:             unit,
		DisplayPrecision: sc.DisplayPrecision,
		ValueTemplate:    sc.ValueTemplate,
		ExpireAfter:      sc.ExpireAfter,
	}
	if s.UniqueID == "" && s.Name != "" {
		s.UniqueID = DeriveUniqueID(s.Name)
	}
	if len(dev.Identifiers) > 0 || dev.Name != "" {
		s.Device = &Device{
			Identifiers:  dev.Identifiers,
			Name:         dev.Name,
			Manufacturer: dev.Manufacturer,
			Model:        dev.Model,
		}
	}

	if err := s.Validate(); err != nil {
		return Sensor{}, err
	}
	return s, nil
}

// SensorsFromConfig converts every configured sensor, stopping at the first
// invalid one.
func SensorsFromConfig(cfg config.DiscoveryConfig) ([]Sensor, error) {
	sensors := make([]Sensor, 0, len(cfg.Sensors))
	seen := make(map[string]string, len(cfg.Sensors))

	for _, sc := range cfg.Sensors {
		s, err := SensorFromConfig(sc, cfg.Device)
		if err != nil {
			return nil, err
		}
		if other, dup := seen[s.UniqueID]; dup {
			return nil, fmt.Errorf("%w: unique_id %q used by %q and %q", ErrInvalidID, s.UniqueID, other, s.Name)
		}
		seen[s.UniqueID] = s.Name
		sensors = append(sensors, s)
	}

	return sensors, nil
}
