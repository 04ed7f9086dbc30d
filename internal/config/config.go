// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the relay. It is
// populated by merging environment variables, command-line flags and an
// optional JSON file, with defaults filling whatever is left unset.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds listen address, timeouts and inbound body limits.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the outbound side: OCR service and conversion service
	// endpoints, per-call timeout and the fixed OCR feature settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Port is the bare port number hosting platforms export as PORT.
	// It is only used when Server.HTTPAddress is empty.
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by GET /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network, timeout and size settings for the inbound side.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format (e.g. "0.0.0.0:3000" or ":3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of one inbound request, including
	// every outbound call it makes.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodySize is the largest accepted request body in bytes.
	// Env: SERVER_MAX_BODY_SIZE
	MaxBodySize int64 `env:"MAX_BODY_SIZE"`

	// MaxMultipartMemory is the largest document accepted by
	// POST /api/processPDF. Uploads are held in memory only, never spilled
	// to temporary files.
	// Env: SERVER_MAX_MULTIPART_MEMORY
	MaxMultipartMemory int64 `env:"MAX_MULTIPART_MEMORY"`
}

// Adapter holds configuration for the external services the relay calls.
type Adapter struct {
	// MineruBaseURL is the OCR service API root.
	// Env: ADAPTER_MINERU_BASE_URL
	MineruBaseURL string `env:"MINERU_BASE_URL"`

	// ConverterBaseURL is the markdown conversion service root; documents
	// are posted to <ConverterBaseURL>/convert.
	// Env: ADAPTER_CONVERTER_BASE_URL
	ConverterBaseURL string `env:"CONVERTER_BASE_URL"`

	// RequestTimeout is applied to every single outbound call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// LayoutModel is the OCR layout model requested for every batch.
	// Env: ADAPTER_LAYOUT_MODEL
	LayoutModel string `env:"LAYOUT_MODEL"`

	// Language is the document language requested for every batch.
	// Env: ADAPTER_LANGUAGE
	Language string `env:"LANGUAGE"`

	// UploadSetContentType makes document uploads carry the file's declared
	// media type. Off by default: presigned storage URLs usually reject
	// headers they were not signed with.
	// Env: ADAPTER_UPLOAD_SET_CONTENT_TYPE
	UploadSetContentType bool `env:"UPLOAD_SET_CONTENT_TYPE"`
}

// GetStructuredConfig loads, merges, and validates the relay configuration
// from all available sources in the following priority order (earlier
// sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
