package geo

import (
	"net"

	"github.com/oschwald/maxminddb-golang"
	"go.uber.org/zap"
)

type countryRecord struct {
	Country struct {
		ISOCode string `maxminddb:"iso_code"`
	} `maxminddb:"country"`
}

// MaxMindResolver resolves donor IP addresses to country codes using a
// GeoLite2 database file. A nil resolver is valid and resolves nothing, so
// the service runs without the database present.
type MaxMindResolver struct {
	reader *maxminddb.Reader
	logger *zap.Logger
}

// NewMaxMindResolver opens the database at path. An empty path returns a nil
// resolver.
func NewMaxMindResolver(path string, logger *zap.Logger) (*MaxMindResolver, error) {
	if path == "" {
		return nil, nil
	}

	reader, err := maxminddb.Open(path)
	if err != nil {
		return nil, err
	}

	return &MaxMindResolver{reader: reader, logger: logger}, nil
}

func (r *MaxMindResolver) CountryCode(ip string) string {
	if r == nil || r.reader == nil {
		return ""
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return ""
	}

	var record countryRecord
	if err := r.reader.Lookup(parsed, &record); err != nil {
		r.logger.Debug("GeoIP lookup failed",
			zap.String("ip", ip),
			zap.Error(err))
		return ""
	}

	return record.Country.ISOCode
}

// Close releases the database reader.
func (r *MaxMindResolver) Close() error {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.reader.Close()
}
