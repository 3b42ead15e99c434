package units

import "fmt"

// Member is one unit within a category.
//
// Name is the symbolic name (e.g. "KILO_WATT"), Symbol the display string
// (e.g. "kW"). Symbols are the wire representation and must never change
// without a compatibility review.
type Member struct {
	Name   string `json:"name" yaml:"name"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// Ref identifies a member together with the category it belongs to.
type Ref struct {
	Category Category `json:"category" yaml:"category"`
	Name     string   `json:"name" yaml:"name"`
	Symbol   string   `json:"symbol" yaml:"symbol"`
}

// categoryEntry is one row of the static catalog.
type categoryEntry struct {
	category Category
	members  []Member
}

// categoryIndex holds the lookup tables derived for a single category.
type categoryIndex struct {
	members  []Member
	byName   map[string]int
	bySymbol map[string]int
}

// catalog is the authoritative unit table, in definition order.
// Member order within a category is part of the public contract.
var catalog = []categoryEntry{
	{CategoryApparentPower, []Member{
		{"VOLT_AMPERE", string(ApparentPowerVoltAmpere)},
	}},
	{CategoryPower, []Member{
		{"MILLIWATT", string(PowerMilliwatt)},
		{"WATT", string(PowerWatt)},
		{"KILO_WATT", string(PowerKiloWatt)},
		{"MEGA_WATT", string(PowerMegaWatt)},
		{"GIGA_WATT", string(PowerGigaWatt)},
		{"TERA_WATT", string(PowerTeraWatt)},
		{"BTU_PER_HOUR", string(PowerBTUPerHour)},
	}},
	{CategoryReactivePower, []Member{
		{"VOLT_AMPERE_REACTIVE", string(ReactivePowerVoltAmpereReactive)},
		{"KILO_VOLT_AMPERE_REACTIVE", string(ReactivePowerKiloVoltAmpereReactive)},
	}},
	{CategoryEnergy, []Member{
		{"JOULE", string(EnergyJoule)},
		{"KILO_JOULE", string(EnergyKiloJoule)},
		{"MEGA_JOULE", string(EnergyMegaJoule)},
		{"GIGA_JOULE", string(EnergyGigaJoule)},
		{"MILLIWATT_HOUR", string(EnergyMilliwattHour)},
		{"WATT_HOUR", string(EnergyWattHour)},
		{"KILO_WATT_HOUR", string(EnergyKiloWattHour)},
		{"MEGA_WATT_HOUR", string(EnergyMegaWattHour)},
		{"GIGA_WATT_HOUR", string(EnergyGigaWattHour)},
		{"TERA_WATT_HOUR", string(EnergyTeraWattHour)},
		{"CALORIE", string(EnergyCalorie)},
		{"KILO_CALORIE", string(EnergyKiloCalorie)},
		{"MEGA_CALORIE", string(EnergyMegaCalorie)},
		{"GIGA_CALORIE", string(EnergyGigaCalorie)},
	}},
	{CategoryEnergyDistance, []Member{
		{"KILO_WATT_HOUR_PER_100_KM", string(EnergyDistanceKiloWattHourPer100KM)},
		{"MILES_PER_KILO_WATT_HOUR", string(EnergyDistanceMilesPerKiloWattHour)},
		{"KM_PER_KILO_WATT_HOUR", string(EnergyDistanceKMPerKiloWattHour)},
	}},
	{CategoryElectricCurrent, []Member{
		{"MILLIAMPERE", string(ElectricCurrentMilliampere)},
		{"AMPERE", string(ElectricCurrentAmpere)},
	}},
	{CategoryElectricPotential, []Member{
		{"MICROVOLT", string(ElectricPotentialMicrovolt)},
		{"MILLIVOLT", string(ElectricPotentialMillivolt)},
		{"VOLT", string(ElectricPotentialVolt)},
		{"KILOVOLT", string(ElectricPotentialKilovolt)},
		{"MEGAVOLT", string(ElectricPotentialMegavolt)},
	}},
	{CategoryTemperature, []Member{
		{"CELSIUS", string(TemperatureCelsius)},
		{"FAHRENHEIT", string(TemperatureFahrenheit)},
		{"KELVIN", string(TemperatureKelvin)},
	}},
	{CategoryTime, []Member{
		{"MICROSECONDS", string(TimeMicroseconds)},
		{"MILLISECONDS", string(TimeMilliseconds)},
		{"SECONDS", string(TimeSeconds)},
		{"MINUTES", string(TimeMinutes)},
		{"HOURS", string(TimeHours)},
		{"DAYS", string(TimeDays)},
		{"WEEKS", string(TimeWeeks)},
		{"MONTHS", string(TimeMonths)},
		{"YEARS", string(TimeYears)},
	}},
	{CategoryLength, []Member{
		{"MILLIMETERS", string(LengthMillimeters)},
		{"CENTIMETERS", string(LengthCentimeters)},
		{"METERS", string(LengthMeters)},
		{"KILOMETERS", string(LengthKilometers)},
		{"INCHES", string(LengthInches)},
		{"FEET", string(LengthFeet)},
		{"YARDS", string(LengthYards)},
		{"MILES", string(LengthMiles)},
		{"NAUTICAL_MILES", string(LengthNauticalMiles)},
	}},
	{CategoryFrequency, []Member{
		{"HERTZ", string(FrequencyHertz)},
		{"KILOHERTZ", string(FrequencyKilohertz)},
		{"MEGAHERTZ", string(FrequencyMegahertz)},
		{"GIGAHERTZ", string(FrequencyGigahertz)},
	}},
	{CategoryPressure, []Member{
		{"PA", string(PressurePa)},
		{"HPA", string(PressureHPa)},
		{"KPA", string(PressureKPa)},
		{"BAR", string(PressureBar)},
		{"CBAR", string(PressureCBar)},
		{"MBAR", string(PressureMBar)},
		{"MMHG", string(PressureMmHg)},
		{"INHG", string(PressureInHg)},
		{"PSI", string(PressurePSI)},
	}},
	{CategorySoundPressure, []Member{
		{"DECIBEL", string(SoundPressureDecibel)},
		{"WEIGHTED_DECIBEL_A", string(SoundPressureWeightedDecibelA)},
	}},
	{CategoryVolume, []Member{
		{"CUBIC_FEET", string(VolumeCubicFeet)},
		{"CENTUM_CUBIC_FEET", string(VolumeCentumCubicFeet)},
		{"CUBIC_METERS", string(VolumeCubicMeters)},
		{"LITERS", string(VolumeLiters)},
		{"MILLILITERS", string(VolumeMilliliters)},
		{"GALLONS", string(VolumeGallons)},
		{"FLUID_OUNCES", string(VolumeFluidOunces)},
	}},
	{CategoryVolumeFlowRate, []Member{
		{"CUBIC_METERS_PER_HOUR", string(VolumeFlowRateCubicMetersPerHour)},
		{"CUBIC_METERS_PER_SECOND", string(VolumeFlowRateCubicMetersPerSecond)},
		{"CUBIC_FEET_PER_MINUTE", string(VolumeFlowRateCubicFeetPerMinute)},
		{"LITERS_PER_HOUR", string(VolumeFlowRateLitersPerHour)},
		{"LITERS_PER_MINUTE", string(VolumeFlowRateLitersPerMinute)},
		{"LITERS_PER_SECOND", string(VolumeFlowRateLitersPerSecond)},
		{"GALLONS_PER_MINUTE", string(VolumeFlowRateGallonsPerMinute)},
		{"MILLILITERS_PER_SECOND", string(VolumeFlowRateMillilitersPerSecond)},
	}},
	{CategoryMass, []Member{
		{"GRAMS", string(MassGrams)},
		{"KILOGRAMS", string(MassKilograms)},
		{"MILLIGRAMS", string(MassMilligrams)},
		{"MICROGRAMS", string(MassMicrograms)},
		{"OUNCES", string(MassOunces)},
		{"POUNDS", string(MassPounds)},
		{"STONES", string(MassStones)},
	}},
	{CategoryIrradiance, []Member{
		{"WATTS_PER_SQUARE_METER", string(IrradianceWattsPerSquareMeter)},
		{"BTUS_PER_HOUR_SQUARE_FOOT", string(IrradianceBTUsPerHourSquareFoot)},
	}},
	{CategoryPrecipitationDepth, []Member{
		{"INCHES", string(PrecipitationDepthInches)},
		{"MILLIMETERS", string(PrecipitationDepthMillimeters)},
		{"CENTIMETERS", string(PrecipitationDepthCentimeters)},
	}},
	{CategoryBloodGlucoseConcentration, []Member{
		{"MILLIGRAMS_PER_DECILITER", string(BloodGlucoseConcentrationMilligramsPerDeciliter)},
		{"MILLIMOLE_PER_LITER", string(BloodGlucoseConcentrationMillimolePerLiter)},
	}},
	{CategorySpeed, []Member{
		{"BEAUFORT", string(SpeedBeaufort)},
		{"FEET_PER_SECOND", string(SpeedFeetPerSecond)},
		{"INCHES_PER_SECOND", string(SpeedInchesPerSecond)},
		{"METERS_PER_SECOND", string(SpeedMetersPerSecond)},
		{"KILOMETERS_PER_HOUR", string(SpeedKilometersPerHour)},
		{"KNOTS", string(SpeedKnots)},
		{"MILES_PER_HOUR", string(SpeedMilesPerHour)},
		{"MILLIMETERS_PER_SECOND", string(SpeedMillimetersPerSecond)},
	}},
	{CategoryInformation, []Member{
		{"BITS", string(InformationBits)},
		{"KILOBITS", string(InformationKilobits)},
		{"MEGABITS", string(InformationMegabits)},
		{"GIGABITS", string(InformationGigabits)},
		{"BYTES", string(InformationBytes)},
		{"KILOBYTES", string(InformationKilobytes)},
		{"MEGABYTES", string(InformationMegabytes)},
		{"GIGABYTES", string(InformationGigabytes)},
		{"TERABYTES", string(InformationTerabytes)},
		{"PETABYTES", string(InformationPetabytes)},
		{"EXABYTES", string(InformationExabytes)},
		{"ZETTABYTES", string(InformationZettabytes)},
		{"YOTTABYTES", string(InformationYottabytes)},
		{"KIBIBYTES", string(InformationKibibytes)},
		{"MEBIBYTES", string(InformationMebibytes)},
		{"GIBIBYTES", string(InformationGibibytes)},
		{"TEBIBYTES", string(InformationTebibytes)},
		{"PEBIBYTES", string(InformationPebibytes)},
		{"EXBIBYTES", string(InformationExbibytes)},
		{"ZEBIBYTES", string(InformationZebibytes)},
		{"YOBIBYTES", string(InformationYobibytes)},
	}},
	{CategoryDataRate, []Member{
		{"BITS_PER_SECOND", string(DataRateBitsPerSecond)},
		{"KILOBITS_PER_SECOND", string(DataRateKilobitsPerSecond)},
		{"MEGABITS_PER_SECOND", string(DataRateMegabitsPerSecond)},
		{"GIGABITS_PER_SECOND", string(DataRateGigabitsPerSecond)},
		{"BYTES_PER_SECOND", string(DataRateBytesPerSecond)},
		{"KILOBYTES_PER_SECOND", string(DataRateKilobytesPerSecond)},
		{"MEGABYTES_PER_SECOND", string(DataRateMegabytesPerSecond)},
		{"GIGABYTES_PER_SECOND", string(DataRateGigabytesPerSecond)},
		{"KIBIBYTES_PER_SECOND", string(DataRateKibibytesPerSecond)},
		{"MEBIBYTES_PER_SECOND", string(DataRateMebibytesPerSecond)},
		{"GIBIBYTES_PER_SECOND", string(DataRateGibibytesPerSecond)},
	}},
	{CategoryArea, []Member{
		{"SQUARE_METERS", string(AreaSquareMeters)},
	}},
	{CategoryConductivity, []Member{
		{"MICROSIEMENS_PER_CM", string(ConductivityMicrosiemensPerCM)},
	}},
	{CategoryIlluminance, []Member{
		{"LUX", string(IlluminanceLux)},
	}},
	{CategoryConcentration, []Member{
		{"MICROGRAMS_PER_CUBIC_METER", string(ConcentrationMicrogramsPerCubicMeter)},
		{"MILLIGRAMS_PER_CUBIC_METER", string(ConcentrationMilligramsPerCubicMeter)},
		{"PARTS_PER_CUBIC_METER", string(ConcentrationPartsPerCubicMeter)},
		{"PARTS_PER_MILLION", string(ConcentrationPartsPerMillion)},
		{"PARTS_PER_BILLION", string(ConcentrationPartsPerBillion)},
	}},
	{CategorySignalStrength, []Member{
		{"DECIBELS", string(SignalStrengthDecibels)},
		{"DECIBELS_MILLIWATT", string(SignalStrengthDecibelsMilliwatt)},
	}},
	{CategoryPercentage, []Member{
		{"PERCENTAGE", string(PercentagePercent)},
	}},
	{CategoryAngle, []Member{
		{"DEGREE", string(AngleDegree)},
	}},
	{CategoryUVIndex, []Member{
		{"UV_INDEX", string(UVIndexIndex)},
	}},
	{CategoryPrecipitationIntensity, []Member{
		{"MILLIMETERS_PER_HOUR", string(PrecipitationIntensityMillimetersPerHour)},
		{"MILLIMETERS_PER_DAY", string(PrecipitationIntensityMillimetersPerDay)},
		{"INCHES_PER_DAY", string(PrecipitationIntensityInchesPerDay)},
		{"INCHES_PER_HOUR", string(PrecipitationIntensityInchesPerHour)},
	}},
	{CategoryCurrency, []Member{
		{"EURO", string(CurrencyEuro)},
		{"DOLLAR", string(CurrencyDollar)},
		{"CENT", string(CurrencyCent)},
	}},
}

// Lookup tables built once in init and never modified afterwards.
var (
	index   map[Category]*categoryIndex
	reverse map[string][]Ref
	order   []Category
)

func init() {
	index = make(map[Category]*categoryIndex, len(catalog))
	reverse = make(map[string][]Ref)
	order = make([]Category, 0, len(catalog))

	for _, entry := range catalog {
		if _, dup := index[entry.category]; dup {
			panic(fmt.Sprintf("units: duplicate category %q", entry.category))
		}

		idx := &categoryIndex{
			members:  entry.members,
			byName:   make(map[string]int, len(entry.members)),
			bySymbol: make(map[string]int, len(entry.members)),
		}
		for i, m := range entry.members {
			if m.Name == "" || m.Symbol == "" {
				panic(fmt.Sprintf("units: empty member in %q at position %d", entry.category, i))
			}
			if _, dup := idx.byName[m.Name]; dup {
				panic(fmt.Sprintf("units: duplicate member %q in %q", m.Name, entry.category))
			}
			idx.byName[m.Name] = i
			// First definition wins if a symbol repeats within a category.
			if _, seen := idx.bySymbol[m.Symbol]; !seen {
				idx.bySymbol[m.Symbol] = i
			}
			reverse[m.Symbol] = append(reverse[m.Symbol], Ref{
				Category: entry.category,
				Name:     m.Name,
				Symbol:   m.Symbol,
			})
		}

		index[entry.category] = idx
		order = append(order, entry.category)
	}
}

// Categories returns all registered categories in definition order.
// The returned slice is a copy; callers can safely modify it.
func Categories() []Category {
	out := make([]Category, len(order))
	copy(out, order)
	return out
}

// MembersOf returns the ordered members of a category.
//
// Parameters:
//   - category: Category identifier (e.g. CategoryPower)
//
// Returns:
//   - []Member: Copy of the category's members in definition order
//   - error: ErrUnknownCategory if the category is not registered
func MembersOf(category Category) ([]Member, error) {
	idx, ok := index[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	out := make([]Member, len(idx.members))
	copy(out, idx.members)
	return out, nil
}

// SymbolOf returns the display string of a member.
//
// Parameters:
//   - category: Category identifier (e.g. CategoryPower)
//   - name: Symbolic member name (e.g. "KILO_WATT")
//
// Returns:
//   - string: Display string (e.g. "kW")
//   - error: ErrUnknownCategory or ErrUnknownMember
//
// Example:
//
//	symbol, err := units.SymbolOf(units.CategoryInformation, "KIBIBYTES")
//	// symbol == "KiB"
func SymbolOf(category Category, name string) (string, error) {
	idx, ok := index[category]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	i, ok := idx.byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q in %s", ErrUnknownMember, name, category)
	}
	return idx.members[i].Symbol, nil
}

// MemberBySymbol returns the member of a category that carries the given
// display string. Matching is exact and case-sensitive.
//
// Returns ErrUnknownCategory or ErrUnknownSymbol.
func MemberBySymbol(category Category, symbol string) (Member, error) {
	idx, ok := index[category]
	if !ok {
		return Member{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	i, ok := idx.bySymbol[symbol]
	if !ok {
		return Member{}, fmt.Errorf("%w: %q in %s", ErrUnknownSymbol, symbol, category)
	}
	return idx.members[i], nil
}

// IsValidSymbol reports whether symbol is a display string of the category.
// Unknown categories report false.
func IsValidSymbol(category Category, symbol string) bool {
	idx, ok := index[category]
	if !ok {
		return false
	}
	_, ok = idx.bySymbol[symbol]
	return ok
}

// Lookup returns every member, across all categories, whose display string
// equals symbol exactly. Results are in catalog order; nil if none match.
//
// A symbol may belong to several categories ("in" is both a length and a
// precipitation depth), so callers that know the category should prefer
// MemberBySymbol.
func Lookup(symbol string) []Ref {
	refs := reverse[symbol]
	if len(refs) == 0 {
		return nil
	}
	out := make([]Ref, len(refs))
	copy(out, refs)
	return out
}

// All returns every member of every category, flattened in catalog order.
func All() []Ref {
	var out []Ref
	for _, c := range order {
		for _, m := range index[c].members {
			out = append(out, Ref{Category: c, Name: m.Name, Symbol: m.Symbol})
		}
	}
	return out
}
