package config

import (
	"fmt"
	"strings"

	"github.com/abgdnv/filecommerce/pkg/config"
	"github.com/abgdnv/filecommerce/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	HTTPServer config.HTTPConfig      `koanf:"server"`
	Storage    config.StorageConfig   `koanf:"storage"`
	Log        config.LogConfig       `koanf:"log"`
	PProf      config.PProfConfig     `koanf:"pprof"`
	Shutdown   config.ShutdownConfig  `koanf:"shutdown"`
	Nats       config.NATSConfig      `koanf:"nats"`
	Telemetry  config.TelemetryConfig `koanf:"telemetry"`
	Probes     config.ProbesConfig    `koanf:"probes"`
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.HTTPServer.String())
	b.WriteString(c.Storage.String())
	b.WriteString(c.Log.String())
	b.WriteString(c.PProf.String())
	b.WriteString(c.Shutdown.String())

	// the NATS url may carry credentials
	nats := c.Nats
	nats.Url = maskURL(nats.Url)
	b.WriteString(nats.String())

	b.WriteString(c.Telemetry.String())
	b.WriteString(c.Probes.String())
	return b.String()
}

func maskURL(url string) string {
	if url == "" {
		return "<not configured>"
	}
	// Mask the URL by replacing the username and password with "****"
	scheme, rest, found := strings.Cut(url, "://")
	if !found {
		rest, scheme = url, ""
	}
	parts := strings.Split(rest, "@")
	if len(parts) != 2 {
		return url
	}
	if scheme != "" {
		return scheme + "://****@" + parts[1]
	}
	return "****@" + parts[1]
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	validators := []interface{ Validate() error }{
		&c.HTTPServer,
		&c.Storage,
		&c.Log,
		&c.PProf,
		&c.Shutdown,
		&c.Nats,
		&c.Telemetry,
		&c.Probes,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}
	return nil
}
