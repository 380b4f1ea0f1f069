package config

import (
	"errors"
	"time"
)

const (
	defaultHTTPAddress    = ":8000"
	defaultTokenDuration  = time.Hour
	defaultRequestTimeout = 30 * time.Second
)

// applyDefaults fills unset fields that have sensible defaults. Secrets never
// get defaults; their absence is a validation error instead.
func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
}

// validate checks that the merged configuration is complete enough to start
// the server. All problems are reported at once via errors.Join.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.App.TokenSignKey == "" {
		errs = append(errs, errTokenSignKeyMissing)
	}

	if c.App.CipherKey == "" {
		errs = append(errs, errCipherKeyMissing)
	} else if key, err := c.App.DecodeCipherKey(); err != nil || len(key) != 32 {
		errs = append(errs, errCipherKeyInvalid)
	}

	if c.Storage.DB.DSN == "" {
		errs = append(errs, errDatabaseDSNMissing)
	}

	return errors.Join(errs...)
}
