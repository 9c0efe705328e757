package solar

import (
	"math"
	"time"
)

// maxSyntheticWM2 caps the synthetic clear-sky model at 1.2x the reference
// irradiance, mirroring strong-sun hours at favorable latitudes.
const maxSyntheticWM2 = 1.2 * ReferenceIrradianceWM2

// Synthesize produces a deterministic hourly irradiance profile from solar
// geometry (declination, equation of time, hour angle) modulated by a set of
// pseudo-cloudiness harmonics. It is the offline fallback when NASA POWER is
// unreachable: plausible in shape, reproducible bit for bit, and a pure
// function of (latitude, longitude, year).
func Synthesize(latitude, longitude float64, year int) *Profile {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	timezoneOffset := math.Round(longitude / 15)
	latRad := radians(latitude)

	values := make([]float64, HoursPerYear)
	for h := 0; h < HoursPerYear; h++ {
		localDT := start.Add(time.Duration(h) * time.Hour).
			Add(time.Duration(timezoneOffset) * time.Hour)
		dayOfYear := float64(localDT.YearDay())
		localHour := float64(localDT.Hour()) + float64(localDT.Minute())/60

		decl := declination(dayOfYear)
		eot := equationOfTime(dayOfYear)
		solarTime := localHour + (eot+4*(longitude-timezoneOffset*15))/60
		hourAngle := radians(15 * (solarTime - 12))

		sinAlt := math.Sin(latRad)*math.Sin(decl) + math.Cos(latRad)*math.Cos(decl)*math.Cos(hourAngle)
		if sinAlt < 0 {
			sinAlt = 0
		}
		clearSky := math.Pow(sinAlt, 1.25) * 1.1
		irr := clearSky * cloudiness(dayOfYear, localHour, latitude, longitude) * ReferenceIrradianceWM2
		values[h] = math.Min(maxSyntheticWM2, irr)
	}

	return &Profile{
		Latitude:   latitude,
		Longitude:  longitude,
		Year:       year,
		Irradiance: values,
		Source:     "synthetic",
	}
}

func declination(dayOfYear float64) float64 {
	return radians(23.44) * math.Sin(2*math.Pi*(dayOfYear-81)/365)
}

func equationOfTime(dayOfYear float64) float64 {
	b := 2 * math.Pi * (dayOfYear - 81) / 364
	return 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}

// cloudiness blends seasonal, diurnal, and slow planetary waves into a
// [0.35, 1.05] attenuation factor. The harmonics are arbitrary but fixed;
// changing them changes every cached synthetic profile.
func cloudiness(dayOfYear, hour, latitude, longitude float64) float64 {
	seasonal := 0.55 + 0.35*math.Sin(2*math.Pi*(dayOfYear-1)/365+radians(latitude/2))
	diurnal := 0.08 * math.Sin(2*math.Pi*hour/24+radians(longitude))
	planetary := 0.07 * math.Sin(radians(latitude+longitude))
	wave := 0.05 * math.Sin(2*math.Pi*(dayOfYear*0.13)+radians(longitude*3))
	value := seasonal + diurnal + planetary + wave
	return math.Min(1.05, math.Max(0.35, value))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
