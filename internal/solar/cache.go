package solar

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DiskCache stores fetched irradiance profiles as CSV files so repeated runs
// never re-download a site-year. Profiles are immutable once written; there
// is no expiry.
type DiskCache struct {
	Dir string
}

// NewDiskCache creates a cache rooted at dir. The directory is created on
// first write.
func NewDiskCache(dir string) *DiskCache {
	return &DiskCache{Dir: dir}
}

// Path returns the cache file for a site-year.
func (c *DiskCache) Path(latitude, longitude float64, year int) string {
	name := fmt.Sprintf("lat%+.2f_lon%+.2f_%d.csv", latitude, longitude, year)
	return filepath.Join(c.Dir, name)
}

// Load reads a cached profile. The second return is false when the site-year
// has not been cached.
func (c *DiskCache) Load(latitude, longitude float64, year int) (*Profile, bool, error) {
	path := c.Path(latitude, longitude, year)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open solar cache %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, false, fmt.Errorf("read solar cache %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, false, fmt.Errorf("solar cache %s is empty", path)
	}

	values := make([]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != 2 {
			return nil, false, fmt.Errorf("solar cache %s row %d: want 2 columns, got %d", path, i+1, len(row))
		}
		v, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, false, fmt.Errorf("solar cache %s row %d: %w", path, i+1, err)
		}
		values = append(values, v)
	}
	if len(values) != HoursPerYear {
		return nil, false, fmt.Errorf("solar cache %s: %w: got %d hours", path, ErrLengthMismatch, len(values))
	}
	return &Profile{
		Latitude:   latitude,
		Longitude:  longitude,
		Year:       year,
		Irradiance: values,
		Source:     "cache",
	}, true, nil
}

// Save writes a profile to the cache, creating the directory as needed.
func (c *DiskCache) Save(p *Profile) error {
	if len(p.Irradiance) != HoursPerYear {
		return fmt.Errorf("%w: refusing to cache %d hours", ErrLengthMismatch, len(p.Irradiance))
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("create solar cache dir: %w", err)
	}
	path := c.Path(p.Latitude, p.Longitude, p.Year)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create solar cache %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"hour", "irradiance_wm2"}); err != nil {
		return err
	}
	for h, v := range p.Irradiance {
		row := []string{
			strconv.Itoa(h),
			strconv.FormatFloat(v, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
