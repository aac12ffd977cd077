// config.go - Haupt-Konfigurationsfunktionen fuer etagger
//
// Dieses Modul enthaelt:
// - Host: Gibt Scheme und Host zurueck (ETAGGER_HOST)
// - AllowedOrigins: Gibt erlaubte Origins zurueck (ETAGGER_ORIGINS)
// - Models: Gibt Model-Verzeichnis zurueck (ETAGGER_MODELS)
// - RequestTimeout: Timeout fuer einen Tag-Request (ETAGGER_REQUEST_TIMEOUT)
// - LogLevel: Gibt Log-Level zurueck (ETAGGER_DEBUG)
//
// Weitere Konfigurationen sind ausgelagert:
// - config_features.go: Modell- und Parallelitaets-Variablen
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"fmt"
	"log/slog"
	"math"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Host gibt Scheme und Host zurueck
// Konfigurierbar via ETAGGER_HOST
// Default: http://127.0.0.1:8987
func Host() *url.URL {
	defaultPort := "8987"

	s := strings.TrimSpace(Var("ETAGGER_HOST"))
	scheme, hostport, ok := strings.Cut(s, "://")
	switch {
	case !ok:
		scheme, hostport = "http", s
	case scheme == "http":
		defaultPort = "80"
	case scheme == "https":
		defaultPort = "443"
	}

	hostport, path, _ := strings.Cut(hostport, "/")
	host, port, err := net.SplitHostPort(hostport)
	if err != nil {
		host, port = "127.0.0.1", defaultPort
		if ip := net.ParseIP(strings.Trim(hostport, "[]")); ip != nil {
			host = ip.String()
		} else if hostport != "" {
			host = hostport
		}
	}

	if n, err := strconv.ParseInt(port, 10, 32); err != nil || n > 65535 || n < 0 {
		slog.Warn("invalid port, using default", "port", port, "default", defaultPort)
		port = defaultPort
	}

	return &url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, port),
		Path:   path,
	}
}

// AllowedOrigins gibt erlaubte Origins zurueck
// Konfigurierbar via ETAGGER_ORIGINS (komma-separiert)
// Enthaelt Standard-Origins fuer localhost
func AllowedOrigins() (origins []string) {
	if s := Var("ETAGGER_ORIGINS"); s != "" {
		origins = strings.Split(s, ",")
	}

	for _, origin := range []string{"localhost", "127.0.0.1", "0.0.0.0"} {
		origins = append(origins,
			fmt.Sprintf("http://%s", origin),
			fmt.Sprintf("https://%s", origin),
			fmt.Sprintf("http://%s", net.JoinHostPort(origin, "*")),
			fmt.Sprintf("https://%s", net.JoinHostPort(origin, "*")),
		)
	}

	return origins
}

// Models gibt das Model-Verzeichnis zurueck
// Konfigurierbar via ETAGGER_MODELS
// Default: $HOME/.etagger/models
func Models() string {
	if s := Var("ETAGGER_MODELS"); s != "" {
		return s
	}

	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	return filepath.Join(home, ".etagger", "models")
}

// RequestTimeout gibt das Timeout fuer einen Tag-Request zurueck
// Konfigurierbar via ETAGGER_REQUEST_TIMEOUT (Dauer oder Sekunden)
// 0 oder negative Werte = unendlich
// Default: 30 Sekunden
func RequestTimeout() (timeout time.Duration) {
	timeout = 30 * time.Second
	if s := Var("ETAGGER_REQUEST_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			timeout = d
		} else if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			timeout = time.Duration(n) * time.Second
		}
	}

	if timeout <= 0 {
		return time.Duration(math.MaxInt64)
	}

	return timeout
}

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via ETAGGER_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("ETAGGER_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
