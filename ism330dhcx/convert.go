package ism330dhcx

// Datasheet sensitivity conversions from raw LSB counts to physical units.

// FromFS2gToMg converts a ±2 g sample to milli-g.
func FromFS2gToMg(lsb int16) float64 { return float64(lsb) * 0.061 }

// FromFS4gToMg converts a ±4 g sample to milli-g.
func FromFS4gToMg(lsb int16) float64 { return float64(lsb) * 0.122 }

// FromFS8gToMg converts a ±8 g sample to milli-g.
func FromFS8gToMg(lsb int16) float64 { return float64(lsb) * 0.244 }

// FromFS16gToMg converts a ±16 g sample to milli-g.
func FromFS16gToMg(lsb int16) float64 { return float64(lsb) * 0.488 }

// FromFS125dpsToMdps converts a ±125 dps sample to milli-degrees/s.
func FromFS125dpsToMdps(lsb int16) float64 { return float64(lsb) * 4.375 }

// FromFS250dpsToMdps converts a ±250 dps sample to milli-degrees/s.
func FromFS250dpsToMdps(lsb int16) float64 { return float64(lsb) * 8.75 }

// FromFS500dpsToMdps converts a ±500 dps sample to milli-degrees/s.
func FromFS500dpsToMdps(lsb int16) float64 { return float64(lsb) * 17.5 }

// FromFS1000dpsToMdps converts a ±1000 dps sample to milli-degrees/s.
func FromFS1000dpsToMdps(lsb int16) float64 { return float64(lsb) * 35.0 }

// FromFS2000dpsToMdps converts a ±2000 dps sample to milli-degrees/s.
func FromFS2000dpsToMdps(lsb int16) float64 { return float64(lsb) * 70.0 }

// FromFS4000dpsToMdps converts a ±4000 dps sample to milli-degrees/s.
func FromFS4000dpsToMdps(lsb int16) float64 { return float64(lsb) * 140.0 }

// FromLSBToCelsius converts a raw temperature sample to °C.
func FromLSBToCelsius(lsb int16) float64 { return float64(lsb)/256.0 + 25.0 }

// FromLSBToNanoseconds converts a timestamp count (25 µs LSB) to ns.
func FromLSBToNanoseconds(ts uint32) uint64 { return uint64(ts) * 25000 }

// AccelToMg scales a raw sample using the given full scale.
func AccelToMg(lsb int16, fs AccelFS) float64 {
	switch fs {
	case AccelFS4G:
		return FromFS4gToMg(lsb)
	case AccelFS8G:
		return FromFS8gToMg(lsb)
	case AccelFS16G:
		return FromFS16gToMg(lsb)
	default:
		return FromFS2gToMg(lsb)
	}
}

// GyroToMdps scales a raw sample using the given full scale.
func GyroToMdps(lsb int16, fs GyroFS) float64 {
	switch fs {
	case GyroFS125DPS:
		return FromFS125dpsToMdps(lsb)
	case GyroFS500DPS:
		return FromFS500dpsToMdps(lsb)
	case GyroFS1000DPS:
		return FromFS1000dpsToMdps(lsb)
	case GyroFS2000DPS:
		return FromFS2000dpsToMdps(lsb)
	case GyroFS4000DPS:
		return FromFS4000dpsToMdps(lsb)
	default:
		return FromFS250dpsToMdps(lsb)
	}
}
