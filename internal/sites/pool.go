package sites

import (
	"math/rand"

	"baseload-study/internal/geo"
)

// Site is one candidate (or selected) study location.
type Site struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point returns the site's coordinate for distance math.
func (s Site) Point() geo.Point {
	return geo.Point{Latitude: s.Latitude, Longitude: s.Longitude}
}

// candidateCoordinates is the curated list of land-based load centers the
// study draws from. Order matters: it is the tie-break order when the pool is
// not shuffled.
var candidateCoordinates = []Site{
	{Name: "Anchorage, USA", Latitude: 61.2181, Longitude: -149.9003},
	{Name: "Honolulu, USA", Latitude: 21.3069, Longitude: -157.8583},
	{Name: "San Francisco, USA", Latitude: 37.7749, Longitude: -122.4194},
	{Name: "Los Angeles, USA", Latitude: 34.0522, Longitude: -118.2437},
	{Name: "Mexico City, Mexico", Latitude: 19.4326, Longitude: -99.1332},
	{Name: "Bogotá, Colombia", Latitude: 4.7110, Longitude: -74.0721},
	{Name: "Lima, Peru", Latitude: -12.0464, Longitude: -77.0428},
	{Name: "Santiago, Chile", Latitude: -33.4489, Longitude: -70.6693},
	{Name: "Buenos Aires, Argentina", Latitude: -34.6037, Longitude: -58.3816},
	{Name: "São Paulo, Brazil", Latitude: -23.5505, Longitude: -46.6333},
	{Name: "Recife, Brazil", Latitude: -8.0476, Longitude: -34.8770},
	{Name: "New York, USA", Latitude: 40.7128, Longitude: -74.0060},
	{Name: "Miami, USA", Latitude: 25.7617, Longitude: -80.1918},
	{Name: "Reykjavík, Iceland", Latitude: 64.1466, Longitude: -21.9426},
	{Name: "Dublin, Ireland", Latitude: 53.3498, Longitude: -6.2603},
	{Name: "London, United Kingdom", Latitude: 51.5074, Longitude: -0.1278},
	{Name: "Madrid, Spain", Latitude: 40.4168, Longitude: -3.7038},
	{Name: "Paris, France", Latitude: 48.8566, Longitude: 2.3522},
	{Name: "Berlin, Germany", Latitude: 52.5200, Longitude: 13.4050},
	{Name: "Rome, Italy", Latitude: 41.9028, Longitude: 12.4964},
	{Name: "Athens, Greece", Latitude: 37.9838, Longitude: 23.7275},
	{Name: "Helsinki, Finland", Latitude: 60.1699, Longitude: 24.9384},
	{Name: "Moscow, Russia", Latitude: 55.7558, Longitude: 37.6173},
	{Name: "Cairo, Egypt", Latitude: 30.0444, Longitude: 31.2357},
	{Name: "Casablanca, Morocco", Latitude: 33.5731, Longitude: -7.5898},
	{Name: "Lagos, Nigeria", Latitude: 6.5244, Longitude: 3.3792},
	{Name: "Accra, Ghana", Latitude: 5.6037, Longitude: -0.1870},
	{Name: "Nairobi, Kenya", Latitude: -1.2921, Longitude: 36.8219},
	{Name: "Addis Ababa, Ethiopia", Latitude: 8.9806, Longitude: 38.7578},
	{Name: "Johannesburg, South Africa", Latitude: -26.2041, Longitude: 28.0473},
	{Name: "Cape Town, South Africa", Latitude: -33.9249, Longitude: 18.4241},
	{Name: "Riyadh, Saudi Arabia", Latitude: 24.7136, Longitude: 46.6753},
	{Name: "Dubai, UAE", Latitude: 25.2048, Longitude: 55.2708},
	{Name: "Tehran, Iran", Latitude: 35.6892, Longitude: 51.3890},
	{Name: "Karachi, Pakistan", Latitude: 24.8607, Longitude: 67.0011},
	{Name: "Delhi, India", Latitude: 28.7041, Longitude: 77.1025},
	{Name: "Mumbai, India", Latitude: 19.0760, Longitude: 72.8777},
	{Name: "Bengaluru, India", Latitude: 12.9716, Longitude: 77.5946},
	{Name: "Bangkok, Thailand", Latitude: 13.7563, Longitude: 100.5018},
	{Name: "Hanoi, Vietnam", Latitude: 21.0278, Longitude: 105.8342},
	{Name: "Singapore", Latitude: 1.3521, Longitude: 103.8198},
	{Name: "Jakarta, Indonesia", Latitude: -6.2088, Longitude: 106.8456},
	{Name: "Manila, Philippines", Latitude: 14.5995, Longitude: 120.9842},
	{Name: "Beijing, China", Latitude: 39.9042, Longitude: 116.4074},
	{Name: "Shanghai, China", Latitude: 31.2304, Longitude: 121.4737},
	{Name: "Seoul, South Korea", Latitude: 37.5665, Longitude: 126.9780},
	{Name: "Tokyo, Japan", Latitude: 35.6762, Longitude: 139.6503},
	{Name: "Osaka, Japan", Latitude: 34.6937, Longitude: 135.5023},
	{Name: "Sydney, Australia", Latitude: -33.8688, Longitude: 151.2093},
	{Name: "Melbourne, Australia", Latitude: -37.8136, Longitude: 144.9631},
	{Name: "Perth, Australia", Latitude: -31.9505, Longitude: 115.8605},
	{Name: "Darwin, Australia", Latitude: -12.4634, Longitude: 130.8456},
	{Name: "Auckland, New Zealand", Latitude: -36.8485, Longitude: 174.7633},
	{Name: "Christchurch, New Zealand", Latitude: -43.5321, Longitude: 172.6362},
}

// Pool returns a copy of the curated candidate pool. A seed >= 0 shuffles the
// copy with a deterministic PRNG; a negative seed preserves curated order.
// Selection always starts at index 0, so the seed controls which candidate
// anchors the spread.
func Pool(seed int64) []Site {
	out := make([]Site, len(candidateCoordinates))
	copy(out, candidateCoordinates)
	if seed >= 0 {
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}
	return out
}

// PoolSize reports how many curated candidates exist.
func PoolSize() int {
	return len(candidateCoordinates)
}
