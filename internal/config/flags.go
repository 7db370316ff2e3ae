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
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration session token duration (e.g., "24h")
//	-reset-token-duration reset token duration (e.g., "30m")
//	-reset-token-hash-key reset token HMAC key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-mail-host/-mail-port/-mail-user/-mail-password/-mail-from/-mail-timeout SMTP settings
//	-frontend-url frontend base URL for reset links
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var resetTokenDuration time.Duration
	var resetTokenHashKey string
	var requestTimeout time.Duration
	var mailHost string
	var mailPort int
	var mailUser string
	var mailPassword string
	var mailFrom string
	var mailTimeout time.Duration
	var frontendURL string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 24h)")
	flag.DurationVar(&resetTokenDuration, "reset-token-duration", 0, "Reset token duration (e.g., 30m)")
	flag.StringVar(&resetTokenHashKey, "reset-token-hash-key", "", "Reset token HMAC key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&mailHost, "mail-host", "", "SMTP host")
	flag.IntVar(&mailPort, "mail-port", 0, "SMTP port")
	flag.StringVar(&mailUser, "mail-user", "", "SMTP user")
	flag.StringVar(&mailPassword, "mail-password", "", "SMTP password")
	flag.StringVar(&mailFrom, "mail-from", "", "Mail sender address")
	flag.DurationVar(&mailTimeout, "mail-timeout", 0, "SMTP delivery timeout (e.g., 10s)")
	flag.StringVar(&frontendURL, "frontend-url", "", "Frontend base URL for reset links")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			TokenDuration:      tokenDuration,
			ResetTokenDuration: resetTokenDuration,
			ResetTokenHashKey:  resetTokenHashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Mail: Mail{
			Host:     mailHost,
			Port:     mailPort,
			Username: mailUser,
			Password: mailPassword,
			From:     mailFrom,
			Timeout:  mailTimeout,
		},
		Frontend: Frontend{
			BaseURL: frontendURL,
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port

	return nil
}
