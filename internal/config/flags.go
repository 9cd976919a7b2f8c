package config

import (
	"flag"
	"net"
	"strconv"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/secret"
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
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-session-timeout session lifetime (e.g., "30m"; negative = sessions never expire)
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-crypt-algorithm secret hashing algorithm ("sha256" or "sha512")
//	-crypt-method secret hashing method ("pbkdf2" or "digest")
//	-crypt-length derived key length in bytes
//	-crypt-rounds pbkdf2 iteration count
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var sessionTimeout time.Duration
	var requestTimeout time.Duration
	var cryptAlgorithm string
	var cryptMethod string
	var cryptLength int
	var cryptRounds int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	flag.DurationVar(&sessionTimeout, "session-timeout", 0, "Session lifetime (e.g., 30m; negative disables expiry)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&cryptAlgorithm, "crypt-algorithm", "", "Secret hashing algorithm (sha256 or sha512)")
	flag.StringVar(&cryptMethod, "crypt-method", "", "Secret hashing method (pbkdf2 or digest)")
	flag.IntVar(&cryptLength, "crypt-length", 0, "Derived key length in bytes")
	flag.IntVar(&cryptRounds, "crypt-rounds", 0, "PBKDF2 iteration count")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			SessionTimeout: sessionTimeout,
		},
		Crypt: secret.Options{
			Algorithm: cryptAlgorithm,
			Method:    cryptMethod,
			Length:    cryptLength,
			Rounds:    cryptRounds,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
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

// Set parses a "host:port" flag value into the NetAddress.
func (a *NetAddress) Set(value string) error {
	host, portString, err := net.SplitHostPort(value)
	if err != nil {
		return err
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}

	a.Host = host
	a.Port = port

	return nil
}
