// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// parseFlags parses the server command line.
//
// Flags:
//
//	-a                server address in format [host]:[port]
//	-backend          storage backend: sqlite or postgres
//	-d                postgres DSN
//	-f                sqlite database file
//	-c/-config        json file path with configs
//	-bucket-size      nonce bucket size (e.g. "1h")
//	-window-buckets   number of fresh nonce buckets
//	-sweep-interval   nonce ledger sweep cadence (e.g. "30m")
//	-token-sign-key   session token signing key
//	-token-issuer     session token issuer name
//	-token-duration   session token duration (e.g. "15m")
//	-request-timeout  request timeout (e.g. "30s")
//	-log-level        log level
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("key-keeper-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var backend, databaseDSN, embeddedPath, jsonConfigPath string
	var tokenSignKey, tokenIssuer, logLevel string
	var bucketSize, sweepInterval, tokenDuration, requestTimeout time.Duration
	var windowBuckets int64

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&backend, "backend", "", "Storage backend: sqlite or postgres")
	fs.StringVar(&databaseDSN, "d", "", "Postgres DSN")
	fs.StringVar(&embeddedPath, "f", "", "SQLite database file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&bucketSize, "bucket-size", 0, "Nonce bucket size (e.g., 1h)")
	fs.Int64Var(&windowBuckets, "window-buckets", 0, "Number of fresh nonce buckets")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Nonce ledger sweep interval (e.g., 30m)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 15m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			Backend: backend,
			DB: DB{
				DSN: databaseDSN,
			},
			Embedded: Embedded{
				Path: embeddedPath,
			},
		},
		Nonce: Nonce{
			BucketSize:    bucketSize,
			WindowBuckets: windowBuckets,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SweepInterval: sweepInterval,
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

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
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
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
