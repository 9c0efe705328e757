package solar

import (
	"go.uber.org/zap"
)

// Fetcher is the network half of a Provider. *NASAClient satisfies it.
type Fetcher interface {
	FetchIrradiance(latitude, longitude float64, year int) (*Profile, error)
}

// Provider resolves a site-year to an irradiance profile: cache first, then
// the network, then the deterministic synthetic fallback. Provenance is
// logged here and recorded on the profile; consumers treat every profile the
// same regardless of where it came from.
type Provider struct {
	cache   *DiskCache
	fetcher Fetcher
	logger  *zap.Logger
	// Offline skips the network entirely and synthesizes on cache miss.
	Offline bool
}

// NewProvider wires a cache and fetcher together. fetcher may be nil, which
// forces offline behavior.
func NewProvider(cache *DiskCache, fetcher Fetcher, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{cache: cache, fetcher: fetcher, logger: logger}
}

// Profile returns the irradiance profile for a site-year.
func (p *Provider) Profile(latitude, longitude float64, year int) (*Profile, error) {
	if p.cache != nil {
		cached, ok, err := p.cache.Load(latitude, longitude, year)
		if err != nil {
			return nil, err
		}
		if ok {
			p.logger.Debug("solar profile from cache",
				zap.Float64("latitude", latitude),
				zap.Float64("longitude", longitude),
				zap.Int("year", year),
			)
			return cached, nil
		}
	}

	if !p.Offline && p.fetcher != nil {
		profile, err := p.fetcher.FetchIrradiance(latitude, longitude, year)
		if err == nil {
			if p.cache != nil {
				if saveErr := p.cache.Save(profile); saveErr != nil {
					p.logger.Warn("failed to cache solar profile", zap.Error(saveErr))
				}
			}
			p.logger.Info("solar profile downloaded",
				zap.Float64("latitude", latitude),
				zap.Float64("longitude", longitude),
				zap.Int("year", year),
			)
			return profile, nil
		}
		p.logger.Warn("NASA POWER fetch failed, falling back to synthetic profile",
			zap.Float64("latitude", latitude),
			zap.Float64("longitude", longitude),
			zap.Int("year", year),
			zap.Error(err),
		)
	}

	// Synthetic profiles are never cached: the cache holds real data only, so
	// a later online run can still replace the fallback.
	profile := Synthesize(latitude, longitude, year)
	p.logger.Info("solar profile synthesized",
		zap.Float64("latitude", latitude),
		zap.Float64("longitude", longitude),
		zap.Int("year", year),
	)
	return profile, nil
}
