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

// ParseFlags parses all configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a backend gRPC address in format [host]:[port]
//	-m media base URL for avatar downloads
//	-data-dir local data directory
//	-d sqlite DSN
//	-c/-config json file path with configs
//	-device-secret passphrase unlocking the local keyring
//	-request-timeout request timeout (e.g., "10s", "1m")
//	-sync-interval profile sync interval (e.g., "5m")
//	-pool-size background I/O pool size
func ParseFlags(args []string) (*StructuredConfig, error) {
	var grpcAddress NetAddress
	var mediaURL string
	var dataDir string
	var databaseDSN string
	var jsonConfigPath string
	var deviceSecret string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var poolSize int

	fs := flag.NewFlagSet("go-test-prep", flag.ContinueOnError)
	fs.Var(&grpcAddress, "a", "Backend gRPC address host:port")
	fs.StringVar(&mediaURL, "m", "", "Media base URL")
	fs.StringVar(&dataDir, "data-dir", "", "Local data directory")
	fs.StringVar(&databaseDSN, "d", "", "SQLite DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&deviceSecret, "device-secret", "", "Device secret for the local keyring")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Profile sync interval (e.g., 5m)")
	fs.IntVar(&poolSize, "pool-size", 0, "Background I/O pool size")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			DeviceSecret: deviceSecret,
		},
		Storage: Storage{
			DataDir: dataDir,
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			GRPCAddress:    grpcAddress.String(),
			MediaBaseURL:   mediaURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SyncInterval: syncInterval,
			PoolSize:     poolSize,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host must be "localhost", an IP address or a DNS name; the port must
// be in 1..65535.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is a positive integer up to 65535")
	}

	if !isValidHost(host) {
		return errors.New("incorrect host provided")
	}

	a.Host = host
	a.Port = port
	return nil
}

func isValidHost(host string) bool {
	if host == "" {
		return false
	}
	if host == "localhost" || net.ParseIP(host) != nil {
		return true
	}

	for _, label := range strings.Split(host, ".") {
		if label == "" || len(label) > 63 || label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, r := range label {
			if !(r == '-' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
				return false
			}
		}
	}

	// purely numeric dotted names that failed ParseIP are malformed IPs
	return strings.Trim(host, "0123456789.") != ""
}
