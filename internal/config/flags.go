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

// ParseFlags parses configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver SQL driver (postgres|sqlite)
//	-c/-config json file path with configs
//	-secret-key token signing secret
//	-token-algorithm token algorithm (HS256|HS384|HS512)
//	-token-expire-minutes token lifetime in minutes
//	-token-issuer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-allowed-origins comma separated CORS origins
//	-firebase-project Firestore project id
//	-firebase-credentials service account JSON path
//	-debug enable debug logging
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var secretKey, tokenAlgorithm, tokenIssuer string
	var tokenExpireMinutes int
	var requestTimeout time.Duration
	var allowedOrigins string
	var firebaseProject, firebaseCredentials string
	var debug bool

	fs := flag.NewFlagSet("healthtrack", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "SQL driver (postgres|sqlite)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&secretKey, "secret-key", "", "Token signing secret")
	fs.StringVar(&tokenAlgorithm, "token-algorithm", "", "Token algorithm (HS256|HS384|HS512)")
	fs.IntVar(&tokenExpireMinutes, "token-expire-minutes", 0, "Token lifetime in minutes")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated CORS origins")
	fs.StringVar(&firebaseProject, "firebase-project", "", "Firestore project id")
	fs.StringVar(&firebaseCredentials, "firebase-credentials", "", "Service account JSON path")
	fs.BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Debug:                    debug,
			SecretKey:                secretKey,
			TokenAlgorithm:           tokenAlgorithm,
			AccessTokenExpireMinutes: tokenExpireMinutes,
			TokenIssuer:              tokenIssuer,
		},
		Storage: Storage{
			Firebase: Firebase{
				ProjectID:       firebaseProject,
				CredentialsPath: firebaseCredentials,
			},
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: splitList(allowedOrigins),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// splitList splits a comma separated list, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when the address was never set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces. Otherwise the host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
