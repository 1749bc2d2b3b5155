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
//	-a dev server address in format [host]:[port]
//	-mode runtime mode selecting the env-file layer
//	-env-dir directory holding .env files
//	-static directory served for unmatched requests
//	-watch reload proxy rules when env files change
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-probe-timeout upstream probe timeout
//	-skip-probe disable the startup upstream probe
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var mode, envDir, staticDir string
	var jsonConfigPath string
	var watchEnv, skipProbe bool
	var requestTimeout, shutdownTimeout, probeTimeout time.Duration

	fs := flag.NewFlagSet("devproxy", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&mode, "mode", "", "Runtime mode (e.g., development, production)")
	fs.StringVar(&envDir, "env-dir", "", "Directory holding .env files")
	fs.StringVar(&staticDir, "static", "", "Static files directory")
	fs.BoolVar(&watchEnv, "watch", false, "Reload proxy rules on env file changes")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.DurationVar(&probeTimeout, "probe-timeout", 0, "Upstream probe timeout")
	fs.BoolVar(&skipProbe, "skip-probe", false, "Disable the startup upstream probe")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Mode:     mode,
			EnvDir:   envDir,
			WatchEnv: watchEnv,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
			StaticDir:       staticDir,
		},
		Adapter: Adapter{
			ProbeTimeout: probeTimeout,
			SkipProbe:    skipProbe,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so the
// default address applies.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are invalid.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
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
