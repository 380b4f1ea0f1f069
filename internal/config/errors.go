package config

import "errors"

var (
	errTokenSignKeyMissing = errors.New("token sign key is not set")
	errCipherKeyMissing    = errors.New("cipher key is not set")
	errCipherKeyInvalid    = errors.New("cipher key must be base64 of 32 bytes")
	errDatabaseDSNMissing  = errors.New("database DSN is not set")
)
