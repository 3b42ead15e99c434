package units

// Category identifies a physical quantity in the registry.
//
// The string value is the category name used in configuration, MQTT payloads
// and the catalog snapshot (e.g. "UnitOfPower").
type Category string

// Registered categories.
const (
	CategoryApparentPower             Category = "UnitOfApparentPower"
	CategoryPower                     Category = "UnitOfPower"
	CategoryReactivePower             Category = "UnitOfReactivePower"
	CategoryEnergy                    Category = "UnitOfEnergy"
	CategoryEnergyDistance            Category = "UnitOfEnergyDistance"
	CategoryElectricCurrent           Category = "UnitOfElectricCurrent"
	CategoryElectricPotential         Category = "UnitOfElectricPotential"
	CategoryTemperature               Category = "UnitOfTemperature"
	CategoryTime                      Category = "UnitOfTime"
	CategoryLength                    Category = "UnitOfLength"
	CategoryFrequency                 Category = "UnitOfFrequency"
	CategoryPressure                  Category = "UnitOfPressure"
	CategorySoundPressure             Category = "UnitOfSoundPressure"
	CategoryVolume                    Category = "UnitOfVolume"
	CategoryVolumeFlowRate            Category = "UnitOfVolumeFlowRate"
	CategoryMass                      Category = "UnitOfMass"
	CategoryIrradiance                Category = "UnitOfIrradiance"
	CategoryPrecipitationDepth        Category = "UnitOfPrecipitationDepth"
	CategoryBloodGlucoseConcentration Category = "UnitOfBloodGlucoseConcentration"
	CategorySpeed                     Category = "UnitOfSpeed"
	CategoryInformation               Category = "UnitOfInformation"
	CategoryDataRate                  Category = "UnitOfDataRate"

	// Sensor categories carried over from the MQTT discovery unit set.
	CategoryArea                   Category = "UnitOfArea"
	CategoryConductivity           Category = "UnitOfConductivity"
	CategoryIlluminance            Category = "UnitOfIlluminance"
	CategoryConcentration          Category = "UnitOfConcentration"
	CategorySignalStrength         Category = "UnitOfSignalStrength"
	CategoryPercentage             Category = "UnitOfPercentage"
	CategoryAngle                  Category = "UnitOfAngle"
	CategoryUVIndex                Category = "UnitOfUVIndex"
	CategoryPrecipitationIntensity Category = "UnitOfPrecipitationIntensity"
	CategoryCurrency               Category = "UnitOfCurrency"
)

// ApparentPower represents an apparent power unit.
type ApparentPower string

// ApparentPower unit.
const ApparentPowerVoltAmpere ApparentPower = "VA"

// Power represents a power unit.
type Power string

// Power units.
const (
	PowerMilliwatt  Power = "mW"
	PowerWatt       Power = "W"
	PowerKiloWatt   Power = "kW"
	PowerMegaWatt   Power = "MW"
	PowerGigaWatt   Power = "GW"
	PowerTeraWatt   Power = "TW"
	PowerBTUPerHour Power = "BTU/h"
)

// ReactivePower represents a reactive power unit.
type ReactivePower string

// Reactive power units.
const (
	ReactivePowerVoltAmpereReactive     ReactivePower = "var"
	ReactivePowerKiloVoltAmpereReactive ReactivePower = "kvar"
)

// Energy represents an energy unit.
type Energy string

// Energy units.
const (
	EnergyJoule         Energy = "J"
	EnergyKiloJoule     Energy = "kJ"
	EnergyMegaJoule     Energy = "MJ"
	EnergyGigaJoule     Energy = "GJ"
	EnergyMilliwattHour Energy = "mWh"
	EnergyWattHour      Energy = "Wh"
	EnergyKiloWattHour  Energy = "kWh"
	EnergyMegaWattHour  Energy = "MWh"
	EnergyGigaWattHour  Energy = "GWh"
	EnergyTeraWattHour  Energy = "TWh"
	EnergyCalorie       Energy = "cal"
	EnergyKiloCalorie   Energy = "kcal"
	EnergyMegaCalorie   Energy = "Mcal"
	EnergyGigaCalorie   Energy = "Gcal"
)

// EnergyDistance represents an energy distance unit.
type EnergyDistance string

// Energy distance units.
const (
	EnergyDistanceKiloWattHourPer100KM EnergyDistance = "kWh/100km"
	EnergyDistanceMilesPerKiloWattHour EnergyDistance = "mi/kWh"
	EnergyDistanceKMPerKiloWattHour    EnergyDistance = "km/kWh"
)

// ElectricCurrent represents an electric current unit.
type ElectricCurrent string

// Electric current units.
const (
	ElectricCurrentMilliampere ElectricCurrent = "mA"
	ElectricCurrentAmpere      ElectricCurrent = "A"
)

// ElectricPotential represents an electric potential unit.
type ElectricPotential string

// Electric potential units.
const (
	ElectricPotentialMicrovolt ElectricPotential = "µV"
	ElectricPotentialMillivolt ElectricPotential = "mV"
	ElectricPotentialVolt      ElectricPotential = "V"
	ElectricPotentialKilovolt  ElectricPotential = "kV"
	ElectricPotentialMegavolt  ElectricPotential = "MV"
)

// Temperature represents a temperature unit.
type Temperature string

// Temperature units.
const (
	TemperatureCelsius    Temperature = "°C"
	TemperatureFahrenheit Temperature = "°F"
	TemperatureKelvin     Temperature = "K"
)

// Time represents a time unit.
type Time string

// Time units.
const (
	TimeMicroseconds Time = "μs"
	TimeMilliseconds Time = "ms"
	TimeSeconds      Time = "s"
	TimeMinutes      Time = "min"
	TimeHours        Time = "h"
	TimeDays         Time = "d"
	TimeWeeks        Time = "w"
	// TimeMonths shares its symbol with LengthMeters; the category disambiguates.
	TimeMonths Time = "m"
	TimeYears  Time = "y"
)

// Length represents a length unit.
type Length string

// Length units.
const (
	LengthMillimeters   Length = "mm"
	LengthCentimeters   Length = "cm"
	LengthMeters        Length = "m"
	LengthKilometers    Length = "km"
	LengthInches        Length = "in"
	LengthFeet          Length = "ft"
	LengthYards         Length = "yd"
	LengthMiles         Length = "mi"
	LengthNauticalMiles Length = "nmi"
)

// Frequency represents a frequency unit.
type Frequency string

// Frequency units.
const (
	FrequencyHertz     Frequency = "Hz"
	FrequencyKilohertz Frequency = "kHz"
	FrequencyMegahertz Frequency = "MHz"
	FrequencyGigahertz Frequency = "GHz"
)

// Pressure represents a pressure unit.
type Pressure string

// Pressure units.
const (
	PressurePa   Pressure = "Pa"
	PressureHPa  Pressure = "hPa"
	PressureKPa  Pressure = "kPa"
	PressureBar  Pressure = "bar"
	PressureCBar Pressure = "cbar"
	PressureMBar Pressure = "mbar"
	PressureMmHg Pressure = "mmHg"
	PressureInHg Pressure = "inHg"
	PressurePSI  Pressure = "psi"
)

// SoundPressure represents a sound pressure unit.
type SoundPressure string

// Sound pressure units.
const (
	SoundPressureDecibel          SoundPressure = "dB"
	SoundPressureWeightedDecibelA SoundPressure = "dBA"
)

// Volume represents a volume unit.
//
// Imperial units are US customary; conversion code must not assume otherwise.
type Volume string

// Volume units.
const (
	VolumeCubicFeet       Volume = "ft³"
	VolumeCentumCubicFeet Volume = "CCF"
	VolumeCubicMeters     Volume = "m³"
	VolumeLiters          Volume = "L"
	VolumeMilliliters     Volume = "mL"
	// VolumeGallons is assumed to be US gallons. Imperial gallons are not supported.
	VolumeGallons Volume = "gal"
	// VolumeFluidOunces is assumed to be US fluid ounces. Imperial fluid ounces are not supported.
	VolumeFluidOunces Volume = "fl. oz."
)

// VolumeFlowRate represents a volume flow rate unit.
type VolumeFlowRate string

// Volume flow rate units.
const (
	VolumeFlowRateCubicMetersPerHour   VolumeFlowRate = "m³/h"
	VolumeFlowRateCubicMetersPerSecond VolumeFlowRate = "m³/s"
	VolumeFlowRateCubicFeetPerMinute   VolumeFlowRate = "ft³/min"
	VolumeFlowRateLitersPerHour        VolumeFlowRate = "L/h"
	VolumeFlowRateLitersPerMinute      VolumeFlowRate = "L/min"
	VolumeFlowRateLitersPerSecond      VolumeFlowRate = "L/s"
	VolumeFlowRateGallonsPerMinute     VolumeFlowRate = "gal/min"
	VolumeFlowRateMillilitersPerSecond VolumeFlowRate = "mL/s"
)

// Mass represents a mass unit.
type Mass string

// Mass units.
const (
	MassGrams      Mass = "g"
	MassKilograms  Mass = "kg"
	MassMilligrams Mass = "mg"
	MassMicrograms Mass = "µg"
	MassOunces     Mass = "oz"
	MassPounds     Mass = "lb"
	MassStones     Mass = "st"
)

// Irradiance represents an irradiance unit.
type Irradiance string

// Irradiance units.
const (
	IrradianceWattsPerSquareMeter   Irradiance = "W/m²"
	IrradianceBTUsPerHourSquareFoot Irradiance = "BTU/(h⋅ft²)"
)

// PrecipitationDepth represents a precipitation depth unit.
//
// Depths derive from a volume of rain collected in a container with a
// constant cross section, so the symbols match those of Length.
type PrecipitationDepth string

// Precipitation depth units.
const (
	// Derived from in³/in².
	PrecipitationDepthInches PrecipitationDepth = "in"
	// Derived from mm³/mm².
	PrecipitationDepthMillimeters PrecipitationDepth = "mm"
	// Derived from cm³/cm².
	PrecipitationDepthCentimeters PrecipitationDepth = "cm"
)

// BloodGlucoseConcentration represents a blood glucose concentration unit.
type BloodGlucoseConcentration string

// Blood glucose concentration units.
const (
	BloodGlucoseConcentrationMilligramsPerDeciliter BloodGlucoseConcentration = "mg/dL"
	BloodGlucoseConcentrationMillimolePerLiter      BloodGlucoseConcentration = "mmol/L"
)

// Speed represents a speed unit. Beaufort is a wind force scale rather than
// a true speed but is reported by weather stations in the same slot.
type Speed string

// Speed units.
const (
	SpeedBeaufort             Speed = "Beaufort"
	SpeedFeetPerSecond        Speed = "ft/s"
	SpeedInchesPerSecond      Speed = "in/s"
	SpeedMetersPerSecond      Speed = "m/s"
	SpeedKilometersPerHour    Speed = "km/h"
	SpeedKnots                Speed = "kn"
	SpeedMilesPerHour         Speed = "mph"
	SpeedMillimetersPerSecond Speed = "mm/s"
)

// Information represents an information unit.
type Information string

// Information units.
const (
	InformationBits       Information = "bit"
	InformationKilobits   Information = "kbit"
	InformationMegabits   Information = "Mbit"
	InformationGigabits   Information = "Gbit"
	InformationBytes      Information = "B"
	InformationKilobytes  Information = "kB"
	InformationMegabytes  Information = "MB"
	InformationGigabytes  Information = "GB"
	InformationTerabytes  Information = "TB"
	InformationPetabytes  Information = "PB"
	InformationExabytes   Information = "EB"
	InformationZettabytes Information = "ZB"
	InformationYottabytes Information = "YB"
	InformationKibibytes  Information = "KiB"
	InformationMebibytes  Information = "MiB"
	InformationGibibytes  Information = "GiB"
	InformationTebibytes  Information = "TiB"
	InformationPebibytes  Information = "PiB"
	InformationExbibytes  Information = "EiB"
	InformationZebibytes  Information = "ZiB"
	InformationYobibytes  Information = "YiB"
)

// DataRate represents a data rate unit.
type DataRate string

// Data rate units.
const (
	DataRateBitsPerSecond      DataRate = "bit/s"
	DataRateKilobitsPerSecond  DataRate = "kbit/s"
	DataRateMegabitsPerSecond  DataRate = "Mbit/s"
	DataRateGigabitsPerSecond  DataRate = "Gbit/s"
	DataRateBytesPerSecond     DataRate = "B/s"
	DataRateKilobytesPerSecond DataRate = "kB/s"
	DataRateMegabytesPerSecond DataRate = "MB/s"
	DataRateGigabytesPerSecond DataRate = "GB/s"
	DataRateKibibytesPerSecond DataRate = "KiB/s"
	DataRateMebibytesPerSecond DataRate = "MiB/s"
	DataRateGibibytesPerSecond DataRate = "GiB/s"
)

// Area represents an area unit.
type Area string

// Area unit.
const AreaSquareMeters Area = "m²"

// Conductivity represents a conductivity unit.
type Conductivity string

// Conductivity unit.
const ConductivityMicrosiemensPerCM Conductivity = "µS/cm"

// Illuminance represents an illuminance unit.
type Illuminance string

// Illuminance unit.
const IlluminanceLux Illuminance = "lx"

// Concentration represents a concentration unit.
type Concentration string

// Concentration units.
const (
	ConcentrationMicrogramsPerCubicMeter Concentration = "µg/m³"
	ConcentrationMilligramsPerCubicMeter Concentration = "mg/m³"
	ConcentrationPartsPerCubicMeter      Concentration = "p/m³"
	ConcentrationPartsPerMillion         Concentration = "ppm"
	ConcentrationPartsPerBillion         Concentration = "ppb"
)

// SignalStrength represents a signal strength unit.
type SignalStrength string

// Signal strength units.
const (
	SignalStrengthDecibels          SignalStrength = "dB"
	SignalStrengthDecibelsMilliwatt SignalStrength = "dBm"
)

// Percentage represents a percentage unit.
type Percentage string

// Percentage unit.
const PercentagePercent Percentage = "%"

// Angle represents an angle unit.
type Angle string

// Angle unit.
const AngleDegree Angle = "°"

// UVIndex represents an UV index unit.
type UVIndex string

// UVIndex unit.
const UVIndexIndex UVIndex = "UV index"

// PrecipitationIntensity represents a rain rate unit.
type PrecipitationIntensity string

// Precipitation intensity units.
const (
	PrecipitationIntensityMillimetersPerHour PrecipitationIntensity = "mm/h"
	PrecipitationIntensityMillimetersPerDay  PrecipitationIntensity = "mm/d"
	PrecipitationIntensityInchesPerDay       PrecipitationIntensity = "in/d"
	PrecipitationIntensityInchesPerHour      PrecipitationIntensity = "in/h"
)

// Currency represents a monetary unit, used by price and cost sensors.
type Currency string

// Currency units.
const (
	CurrencyEuro   Currency = "€"
	CurrencyDollar Currency = "$"
	CurrencyCent   Currency = "¢"
)

// AllApparentPowerUnits returns all valid apparent power unit values.
func AllApparentPowerUnits() []ApparentPower {
	return []ApparentPower{ApparentPowerVoltAmpere}
}

// AllPowerUnits returns all valid power unit values.
func AllPowerUnits() []Power {
	return []Power{
		PowerMilliwatt, PowerWatt, PowerKiloWatt, PowerMegaWatt, PowerGigaWatt, PowerTeraWatt,
		PowerBTUPerHour,
	}
}

// AllReactivePowerUnits returns all valid reactive power unit values.
func AllReactivePowerUnits() []ReactivePower {
	return []ReactivePower{ReactivePowerVoltAmpereReactive, ReactivePowerKiloVoltAmpereReactive}
}

// AllEnergyUnits returns all valid energy unit values.
func AllEnergyUnits() []Energy {
	return []Energy{
		EnergyJoule, EnergyKiloJoule, EnergyMegaJoule, EnergyGigaJoule, EnergyMilliwattHour,
		EnergyWattHour, EnergyKiloWattHour, EnergyMegaWattHour, EnergyGigaWattHour,
		EnergyTeraWattHour, EnergyCalorie, EnergyKiloCalorie, EnergyMegaCalorie, EnergyGigaCalorie,
	}
}

// AllEnergyDistanceUnits returns all valid energy distance unit values.
func AllEnergyDistanceUnits() []EnergyDistance {
	return []EnergyDistance{
		EnergyDistanceKiloWattHourPer100KM, EnergyDistanceMilesPerKiloWattHour,
		EnergyDistanceKMPerKiloWattHour,
	}
}

// AllElectricCurrentUnits returns all valid electric current unit values.
func AllElectricCurrentUnits() []ElectricCurrent {
	return []ElectricCurrent{ElectricCurrentMilliampere, ElectricCurrentAmpere}
}

// AllElectricPotentialUnits returns all valid electric potential unit values.
func AllElectricPotentialUnits() []ElectricPotential {
	return []ElectricPotential{
		ElectricPotentialMicrovolt, ElectricPotentialMillivolt, ElectricPotentialVolt,
		ElectricPotentialKilovolt, ElectricPotentialMegavolt,
	}
}

// AllTemperatureUnits returns all valid temperature unit values.
func AllTemperatureUnits() []Temperature {
	return []Temperature{TemperatureCelsius, TemperatureFahrenheit, TemperatureKelvin}
}

// AllTimeUnits returns all valid time unit values.
func AllTimeUnits() []Time {
	return []Time{
		TimeMicroseconds, TimeMilliseconds, TimeSeconds, TimeMinutes, TimeHours, TimeDays, TimeWeeks,
		TimeMonths, TimeYears,
	}
}

// AllLengthUnits returns all valid length unit values.
func AllLengthUnits() []Length {
	return []Length{
		LengthMillimeters, LengthCentimeters, LengthMeters, LengthKilometers, LengthInches,
		LengthFeet, LengthYards, LengthMiles, LengthNauticalMiles,
	}
}

// AllFrequencyUnits returns all valid frequency unit values.
func AllFrequencyUnits() []Frequency {
	return []Frequency{FrequencyHertz, FrequencyKilohertz, FrequencyMegahertz, FrequencyGigahertz}
}

// AllPressureUnits returns all valid pressure unit values.
func AllPressureUnits() []Pressure {
	return []Pressure{
		PressurePa, PressureHPa, PressureKPa, PressureBar, PressureCBar, PressureMBar, PressureMmHg,
		PressureInHg, PressurePSI,
	}
}

// AllSoundPressureUnits returns all valid sound pressure unit values.
func AllSoundPressureUnits() []SoundPressure {
	return []SoundPressure{SoundPressureDecibel, SoundPressureWeightedDecibelA}
}

// AllVolumeUnits returns all valid volume unit values.
func AllVolumeUnits() []Volume {
	return []Volume{
		VolumeCubicFeet, VolumeCentumCubicFeet, VolumeCubicMeters, VolumeLiters, VolumeMilliliters,
		VolumeGallons, VolumeFluidOunces,
	}
}

// AllVolumeFlowRateUnits returns all valid volume flow rate unit values.
func AllVolumeFlowRateUnits() []VolumeFlowRate {
	return []VolumeFlowRate{
		VolumeFlowRateCubicMetersPerHour, VolumeFlowRateCubicMetersPerSecond,
		VolumeFlowRateCubicFeetPerMinute, VolumeFlowRateLitersPerHour, VolumeFlowRateLitersPerMinute,
		VolumeFlowRateLitersPerSecond, VolumeFlowRateGallonsPerMinute,
		VolumeFlowRateMillilitersPerSecond,
	}
}

// AllMassUnits returns all valid mass unit values.
func AllMassUnits() []Mass {
	return []Mass{
		MassGrams, MassKilograms, MassMilligrams, MassMicrograms, MassOunces, MassPounds, MassStones,
	}
}

// AllIrradianceUnits returns all valid irradiance unit values.
func AllIrradianceUnits() []Irradiance {
	return []Irradiance{IrradianceWattsPerSquareMeter, IrradianceBTUsPerHourSquareFoot}
}

// AllPrecipitationDepthUnits returns all valid precipitation depth unit values.
func AllPrecipitationDepthUnits() []PrecipitationDepth {
	return []PrecipitationDepth{
		PrecipitationDepthInches, PrecipitationDepthMillimeters, PrecipitationDepthCentimeters,
	}
}

// AllBloodGlucoseConcentrationUnits returns all valid blood glucose concentration unit values.
func AllBloodGlucoseConcentrationUnits() []BloodGlucoseConcentration {
	return []BloodGlucoseConcentration{
		BloodGlucoseConcentrationMilligramsPerDeciliter, BloodGlucoseConcentrationMillimolePerLiter,
	}
}

// AllSpeedUnits returns all valid speed unit values.
func AllSpeedUnits() []Speed {
	return []Speed{
		SpeedBeaufort, SpeedFeetPerSecond, SpeedInchesPerSecond, SpeedMetersPerSecond,
		SpeedKilometersPerHour, SpeedKnots, SpeedMilesPerHour, SpeedMillimetersPerSecond,
	}
}

// AllInformationUnits returns all valid information unit values.
func AllInformationUnits() []Information {
	return []Information{
		InformationBits, InformationKilobits, InformationMegabits, InformationGigabits,
		InformationBytes, InformationKilobytes, InformationMegabytes, InformationGigabytes,
		InformationTerabytes, InformationPetabytes, InformationExabytes, InformationZettabytes,
		InformationYottabytes, InformationKibibytes, InformationMebibytes, InformationGibibytes,
		InformationTebibytes, InformationPebibytes, InformationExbibytes, InformationZebibytes,
		InformationYobibytes,
	}
}

// AllDataRateUnits returns all valid data rate unit values.
func AllDataRateUnits() []DataRate {
	return []DataRate{
		DataRateBitsPerSecond, DataRateKilobitsPerSecond, DataRateMegabitsPerSecond,
		DataRateGigabitsPerSecond, DataRateBytesPerSecond, DataRateKilobytesPerSecond,
		DataRateMegabytesPerSecond, DataRateGigabytesPerSecond, DataRateKibibytesPerSecond,
		DataRateMebibytesPerSecond, DataRateGibibytesPerSecond,
	}
}

// AllAreaUnits returns all valid area unit values.
func AllAreaUnits() []Area {
	return []Area{AreaSquareMeters}
}

// AllConductivityUnits returns all valid conductivity unit values.
func AllConductivityUnits() []Conductivity {
	return []Conductivity{ConductivityMicrosiemensPerCM}
}

// AllIlluminanceUnits returns all valid illuminance unit values.
func AllIlluminanceUnits() []Illuminance {
	return []Illuminance{IlluminanceLux}
}

// AllConcentrationUnits returns all valid concentration unit values.
func AllConcentrationUnits() []Concentration {
	return []Concentration{
		ConcentrationMicrogramsPerCubicMeter, ConcentrationMilligramsPerCubicMeter,
		ConcentrationPartsPerCubicMeter, ConcentrationPartsPerMillion, ConcentrationPartsPerBillion,
	}
}

// AllSignalStrengthUnits returns all valid signal strength unit values.
func AllSignalStrengthUnits() []SignalStrength {
	return []SignalStrength{SignalStrengthDecibels, SignalStrengthDecibelsMilliwatt}
}

// AllPercentageUnits returns all valid percentage unit values.
func AllPercentageUnits() []Percentage {
	return []Percentage{PercentagePercent}
}

// AllAngleUnits returns all valid angle unit values.
func AllAngleUnits() []Angle {
	return []Angle{AngleDegree}
}

// AllUVIndexUnits returns all valid UV index unit values.
func AllUVIndexUnits() []UVIndex {
	return []UVIndex{UVIndexIndex}
}

// AllPrecipitationIntensityUnits returns all valid precipitation intensity unit values.
func AllPrecipitationIntensityUnits() []PrecipitationIntensity {
	return []PrecipitationIntensity{
		PrecipitationIntensityMillimetersPerHour, PrecipitationIntensityMillimetersPerDay,
		PrecipitationIntensityInchesPerDay, PrecipitationIntensityInchesPerHour,
	}
}

// AllCurrencyUnits returns all valid currency unit values.
func AllCurrencyUnits() []Currency {
	return []Currency{CurrencyEuro, CurrencyDollar, CurrencyCent}
}
