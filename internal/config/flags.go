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

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout inbound request timeout (e.g., "3m")
//	-max-body-size inbound body limit in bytes
//	-mineru-url OCR service API root
//	-converter-url markdown conversion service root
//	-adapter-timeout per-call outbound timeout (e.g., "60s")
//	-layout-model OCR layout model
//	-language OCR document language
//	-upload-content-type send the file's media type with uploads
//	-version application version
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout, adapterTimeout time.Duration
	var maxBodySize int64
	var mineruURL, converterURL string
	var layoutModel, language string
	var uploadContentType bool
	var version string

	fs := flag.NewFlagSet("go-pdf-relay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 3m)")
	fs.Int64Var(&maxBodySize, "max-body-size", 0, "Inbound body limit in bytes")
	fs.StringVar(&mineruURL, "mineru-url", "", "OCR service API root")
	fs.StringVar(&converterURL, "converter-url", "", "Markdown conversion service root")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound call timeout (e.g., 60s)")
	fs.StringVar(&layoutModel, "layout-model", "", "OCR layout model")
	fs.StringVar(&language, "language", "", "OCR document language")
	fs.BoolVar(&uploadContentType, "upload-content-type", false, "Send the file media type with uploads")
	fs.StringVar(&version, "version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MaxBodySize:    maxBodySize,
		},
		Adapter: Adapter{
			MineruBaseURL:        mineruURL,
			ConverterBaseURL:     converterURL,
			RequestTimeout:       adapterTimeout,
			LayoutModel:          layoutModel,
			Language:             language,
			UploadSetContentType: uploadContentType,
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

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces; any other host must be
// "localhost" or an IP address.
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

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
