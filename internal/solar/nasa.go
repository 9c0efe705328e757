package solar

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"
)

const (
	defaultNASABaseURL = "https://power.larc.nasa.gov"
	nasaEndpointPath   = "/api/temporal/hourly/point"
	nasaParameter      = "ALLSKY_SFC_SW_DWN"
	nasaTimeLayout     = "2006010215"
	userAgent          = "baseload-study/1.0"
)

// FetchError represents a failure talking to the NASA POWER API.
type FetchError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *FetchError) Error() string {
	return e.Message
}

// NASAClient fetches hourly all-sky surface shortwave irradiance from the
// NASA POWER temporal API.
type NASAClient struct {
	BaseURL string
	Client  *http.Client
}

// NewNASAClient creates a NASA POWER client. If baseURL is empty, the public
// endpoint is used.
func NewNASAClient(baseURL string) *NASAClient {
	if baseURL == "" {
		baseURL = defaultNASABaseURL
	}
	return &NASAClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type nasaResponse struct {
	Properties struct {
		Parameter map[string]map[string]*float64 `json:"parameter"`
	} `json:"properties"`
}

// FetchIrradiance downloads one calendar year of hourly irradiance for a
// point. Hours NASA reports as null are skipped; if the year comes back with
// gaps (or as a leap year), values are re-indexed onto a fixed 8,760-hour
// grid with zeros for missing hours.
func (c *NASAClient) FetchIrradiance(latitude, longitude float64, year int) (*Profile, error) {
	q := url.Values{}
	q.Set("parameters", nasaParameter)
	q.Set("community", "RE")
	q.Set("latitude", fmt.Sprintf("%v", latitude))
	q.Set("longitude", fmt.Sprintf("%v", longitude))
	q.Set("start", fmt.Sprintf("%d", year))
	q.Set("end", fmt.Sprintf("%d", year))
	q.Set("format", "JSON")

	reqURL := c.BaseURL + nasaEndpointPath + "?" + q.Encode()
	req, err := http.NewRequest(http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build NASA POWER request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, &FetchError{
			Code:    "REQUEST_FAILED",
			Message: fmt.Sprintf("NASA POWER request failed: %v", err),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Code:       "READ_FAILED",
			Message:    fmt.Sprintf("reading NASA POWER response: %v", err),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Code:       "BAD_STATUS",
			Message:    fmt.Sprintf("NASA POWER returned status %d", resp.StatusCode),
		}
	}

	var payload nasaResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Code:       "BAD_PAYLOAD",
			Message:    fmt.Sprintf("parsing NASA POWER response: %v", err),
		}
	}
	raw, ok := payload.Properties.Parameter[nasaParameter]
	if !ok {
		return nil, &FetchError{
			StatusCode: resp.StatusCode,
			Code:       "BAD_PAYLOAD",
			Message:    fmt.Sprintf("NASA POWER payload missing parameter %s", nasaParameter),
		}
	}

	values, err := regridHourly(raw, year)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Latitude:   latitude,
		Longitude:  longitude,
		Year:       year,
		Irradiance: values,
		Source:     "nasa",
	}, nil
}

type hourValue struct {
	at    time.Time
	value float64
}

func regridHourly(raw map[string]*float64, year int) ([]float64, error) {
	items := make([]hourValue, 0, len(raw))
	for ts, v := range raw {
		if v == nil {
			continue
		}
		at, err := time.Parse(nasaTimeLayout, ts)
		if err != nil {
			return nil, &FetchError{
				Code:    "BAD_PAYLOAD",
				Message: fmt.Sprintf("unparseable NASA POWER timestamp %q", ts),
			}
		}
		items = append(items, hourValue{at: at, value: *v})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].at.Before(items[j].at) })

	if len(items) == HoursPerYear {
		out := make([]float64, HoursPerYear)
		for i, it := range items {
			out[i] = it.value
		}
		return out, nil
	}

	// Sparse or leap-year payload: align onto the fixed hourly grid.
	byHour := make(map[time.Time]float64, len(items))
	for _, it := range items {
		byHour[it.at] = it.value
	}
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	out := make([]float64, HoursPerYear)
	for h := 0; h < HoursPerYear; h++ {
		out[h] = byHour[start.Add(time.Duration(h)*time.Hour)]
	}
	return out, nil
}
