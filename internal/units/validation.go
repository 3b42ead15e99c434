package units

import "fmt"

// ParseCategory converts a category name (e.g. "UnitOfPower") to a Category.
// Returns ErrUnknownCategory if the name is not registered.
func ParseCategory(name string) (Category, error) {
	c := Category(name)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}

// Valid reports whether the category is registered.
func (c Category) Valid() bool {
	_, ok := index[c]
	return ok
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// Category returns CategoryApparentPower.
func (ApparentPower) Category() Category { return CategoryApparentPower }

// Valid reports whether the value is a registered apparent power unit.
func (a ApparentPower) Valid() bool { return IsValidSymbol(CategoryApparentPower, string(a)) }

// Category returns CategoryPower.
func (Power) Category() Category { return CategoryPower }

// Valid reports whether the value is a registered power unit.
func (p Power) Valid() bool { return IsValidSymbol(CategoryPower, string(p)) }

// Category returns CategoryReactivePower.
func (ReactivePower) Category() Category { return CategoryReactivePower }

// Valid reports whether the value is a registered reactive power unit.
func (r ReactivePower) Valid() bool { return IsValidSymbol(CategoryReactivePower, string(r)) }

// Category returns CategoryEnergy.
func (Energy) Category() Category { return CategoryEnergy }

// Valid reports whether the value is a registered energy unit.
func (e Energy) Valid() bool { return IsValidSymbol(CategoryEnergy, string(e)) }

// Category returns CategoryEnergyDistance.
func (EnergyDistance) Category() Category { return CategoryEnergyDistance }

// Valid reports whether the value is a registered energy distance unit.
func (e EnergyDistance) Valid() bool { return IsValidSymbol(CategoryEnergyDistance, string(e)) }

// Category returns CategoryElectricCurrent.
func (ElectricCurrent) Category() Category { return CategoryElectricCurrent }

// Valid reports whether the value is a registered electric current unit.
func (e ElectricCurrent) Valid() bool { return IsValidSymbol(CategoryElectricCurrent, string(e)) }

// Category returns CategoryElectricPotential.
func (ElectricPotential) Category() Category { return CategoryElectricPotential }

// Valid reports whether the value is a registered electric potential unit.
func (e ElectricPotential) Valid() bool { return IsValidSymbol(CategoryElectricPotential, string(e)) }

// Category returns CategoryTemperature.
func (Temperature) Category() Category { return CategoryTemperature }

// Valid reports whether the value is a registered temperature unit.
func (t Temperature) Valid() bool { return IsValidSymbol(CategoryTemperature, string(t)) }

// Category returns CategoryTime.
func (Time) Category() Category { return CategoryTime }

// Valid reports whether the value is a registered time unit.
func (t Time) Valid() bool { return IsValidSymbol(CategoryTime, string(t)) }

// Category returns CategoryLength.
func (Length) Category() Category { return CategoryLength }

// Valid reports whether the value is a registered length unit.
func (l Length) Valid() bool { return IsValidSymbol(CategoryLength, string(l)) }

// Category returns CategoryFrequency.
func (Frequency) Category() Category { return CategoryFrequency }

// Valid reports whether the value is a registered frequency unit.
func (f Frequency) Valid() bool { return IsValidSymbol(CategoryFrequency, string(f)) }

// Category returns CategoryPressure.
func (Pressure) Category() Category { return CategoryPressure }

// Valid reports whether the value is a registered pressure unit.
func (p Pressure) Valid() bool { return IsValidSymbol(CategoryPressure, string(p)) }

// Category returns CategorySoundPressure.
func (SoundPressure) Category() Category { return CategorySoundPressure }

// Valid reports whether the value is a registered sound pressure unit.
func (s SoundPressure) Valid() bool { return IsValidSymbol(CategorySoundPressure, string(s)) }

// Category returns CategoryVolume.
func (Volume) Category() Category { return CategoryVolume }

// Valid reports whether the value is a registered volume unit.
func (v Volume) Valid() bool { return IsValidSymbol(CategoryVolume, string(v)) }

// Category returns CategoryVolumeFlowRate.
func (VolumeFlowRate) Category() Category { return CategoryVolumeFlowRate }

// Valid reports whether the value is a registered volume flow rate unit.
func (v VolumeFlowRate) Valid() bool { return IsValidSymbol(CategoryVolumeFlowRate, string(v)) }

// Category returns CategoryMass.
func (Mass) Category() Category { return CategoryMass }

// Valid reports whether the value is a registered mass unit.
func (m Mass) Valid() bool { return IsValidSymbol(CategoryMass, string(m)) }

// Category returns CategoryIrradiance.
func (Irradiance) Category() Category { return CategoryIrradiance }

// Valid reports whether the value is a registered irradiance unit.
func (i Irradiance) Valid() bool { return IsValidSymbol(CategoryIrradiance, string(i)) }

// Category returns CategoryPrecipitationDepth.
func (PrecipitationDepth) Category() Category { return CategoryPrecipitationDepth }

// Valid reports whether the value is a registered precipitation depth unit.
func (p PrecipitationDepth) Valid() bool { return IsValidSymbol(CategoryPrecipitationDepth, string(p)) }

// Category returns CategoryBloodGlucoseConcentration.
func (BloodGlucoseConcentration) Category() Category { return CategoryBloodGlucoseConcentration }

// Valid reports whether the value is a registered blood glucose concentration unit.
func (b BloodGlucoseConcentration) Valid() bool {
	return IsValidSymbol(CategoryBloodGlucoseConcentration, string(b))
}

// Category returns CategorySpeed.
func (Speed) Category() Category { return CategorySpeed }

// Valid reports whether the value is a registered speed unit.
func (s Speed) Valid() bool { return IsValidSymbol(CategorySpeed, string(s)) }

// Category returns CategoryInformation.
func (Information) Category() Category { return CategoryInformation }

// Valid reports whether the value is a registered information unit.
func (i Information) Valid() bool { return IsValidSymbol(CategoryInformation, string(i)) }

// Category returns CategoryDataRate.
func (DataRate) Category() Category { return CategoryDataRate }

// Valid reports whether the value is a registered data rate unit.
func (d DataRate) Valid() bool { return IsValidSymbol(CategoryDataRate, string(d)) }

// Category returns CategoryArea.
func (Area) Category() Category { return CategoryArea }

// Valid reports whether the value is a registered area unit.
func (a Area) Valid() bool { return IsValidSymbol(CategoryArea, string(a)) }

// Category returns CategoryConductivity.
func (Conductivity) Category() Category { return CategoryConductivity }

// Valid reports whether the value is a registered conductivity unit.
func (c Conductivity) Valid() bool { return IsValidSymbol(CategoryConductivity, string(c)) }

// Category returns CategoryIlluminance.
func (Illuminance) Category() Category { return CategoryIlluminance }

// Valid reports whether the value is a registered illuminance unit.
func (i Illuminance) Valid() bool { return IsValidSymbol(CategoryIlluminance, string(i)) }

// Category returns CategoryConcentration.
func (Concentration) Category() Category { return CategoryConcentration }

// Valid reports whether the value is a registered concentration unit.
func (c Concentration) Valid() bool { return IsValidSymbol(CategoryConcentration, string(c)) }

// Category returns CategorySignalStrength.
func (SignalStrength) Category() Category { return CategorySignalStrength }

// Valid reports whether the value is a registered signal strength unit.
func (s SignalStrength) Valid() bool { return IsValidSymbol(CategorySignalStrength, string(s)) }

// Category returns CategoryPercentage.
func (Percentage) Category() Category { return CategoryPercentage }

// Valid reports whether the value is a registered percentage unit.
func (p Percentage) Valid() bool { return IsValidSymbol(CategoryPercentage, string(p)) }

// Category returns CategoryAngle.
func (Angle) Category() Category { return CategoryAngle }

// Valid reports whether the value is a registered angle unit.
func (a Angle) Valid() bool { return IsValidSymbol(CategoryAngle, string(a)) }

// Category returns CategoryUVIndex.
func (UVIndex) Category() Category { return CategoryUVIndex }

// Valid reports whether the value is a registered UV index unit.
func (u UVIndex) Valid() bool { return IsValidSymbol(CategoryUVIndex, string(u)) }

// Category returns CategoryPrecipitationIntensity.
func (PrecipitationIntensity) Category() Category { return CategoryPrecipitationIntensity }

// Valid reports whether the value is a registered precipitation intensity unit.
func (p PrecipitationIntensity) Valid() bool {
	return IsValidSymbol(CategoryPrecipitationIntensity, string(p))
}

// Category returns CategoryCurrency.
func (Currency) Category() Category { return CategoryCurrency }

// Valid reports whether the value is a registered currency unit.
func (c Currency) Valid() bool { return IsValidSymbol(CategoryCurrency, string(c)) }
