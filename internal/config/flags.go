package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-token-sign-key token signing key
//	-token-duration token duration (e.g., "1h", "30m")
//	-cipher-key base64-encoded 32-byte RRN cipher key
//	-admin-password bootstrap administrator password
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-s3-endpoint / -s3-region / -s3-bucket / -s3-access-key / -s3-secret-key
//	object store settings
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var tokenSignKey string
	var tokenDuration time.Duration
	var cipherKey string
	var adminPassword string
	var requestTimeout time.Duration
	var s3Endpoint, s3Region, s3Bucket, s3AccessKey, s3SecretKey string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.StringVar(&cipherKey, "cipher-key", "", "Base64-encoded 32-byte RRN cipher key")
	flag.StringVar(&adminPassword, "admin-password", "", "Bootstrap administrator password")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&s3Endpoint, "s3-endpoint", "", "Object store endpoint URL")
	flag.StringVar(&s3Region, "s3-region", "", "Object store region")
	flag.StringVar(&s3Bucket, "s3-bucket", "", "Object store bucket name")
	flag.StringVar(&s3AccessKey, "s3-access-key", "", "Object store access key id")
	flag.StringVar(&s3SecretKey, "s3-secret-key", "", "Object store secret access key")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenDuration: tokenDuration,
			CipherKey:     cipherKey,
			AdminPassword: adminPassword,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			S3: S3{
				Endpoint:  s3Endpoint,
				Region:    s3Region,
				Bucket:    s3Bucket,
				AccessKey: s3AccessKey,
				SecretKey: s3SecretKey,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
