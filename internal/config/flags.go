package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host:port pair and implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command line into a partial [StructuredConfig].
//
// Flags:
//
//	-a                 REST listen address host:port (server)
//	-grpc-address      gRPC health listen address host:port (server)
//	-d                 database DSN (server)
//	-c / -config       JSON config file path
//	-container         container identifier
//	-token-sign-key    token signing key (server)
//	-token-issuer      token issuer (server)
//	-token-duration    token lifetime, e.g. 24h (server)
//	-hash-key          change token HMAC key (server)
//	-page-size         records per changeset (server)
//	-request-timeout   request timeout, e.g. 30s
//	-server            record-store base URL (client)
//	-login / -password principal credentials (client)
//	-register          register the principal before login (client)
//	-sync-interval     background refresh period (client)
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("zone-keeper", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var (
		databaseDSN    string
		jsonConfigPath string
		containerID    string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		hashKey        string
		pageSize       int
		requestTimeout time.Duration
		adapterAddress string
		login          string
		password       string
		register       bool
		syncInterval   time.Duration
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&containerID, "container", "", "Container identifier")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.StringVar(&hashKey, "hash-key", "", "Change token hash key")
	fs.IntVar(&pageSize, "page-size", 0, "Records per changeset")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server", "", "Record store address")
	fs.StringVar(&login, "login", "", "Principal login")
	fs.StringVar(&password, "password", "", "Principal password")
	fs.BoolVar(&register, "register", false, "Register the principal before login")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background refresh interval (e.g., 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ContainerID:     containerID,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			HashKey:         hashKey,
			ChangesPageSize: pageSize,
			Login:           login,
			Password:        password,
			Register:        register,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
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

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
