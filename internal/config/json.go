package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress        string   `json:"http_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		MaxBodySize        int64    `json:"max_body_size"`
		MaxMultipartMemory int64    `json:"max_multipart_memory"`
	} `json:"server,omitempty"`

	Adapter struct {
		MineruBaseURL        string   `json:"mineru_base_url"`
		ConverterBaseURL     string   `json:"converter_base_url"`
		RequestTimeout       Duration `json:"request_timeout"`
		LayoutModel          string   `json:"layout_model"`
		Language             string   `json:"language"`
		UploadSetContentType bool     `json:"upload_set_content_type"`
	} `json:"adapter,omitempty"`

	Port string `json:"port,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Server: Server{
			HTTPAddress:        jsonCfg.Server.HTTPAddress,
			RequestTimeout:     time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodySize:        jsonCfg.Server.MaxBodySize,
			MaxMultipartMemory: jsonCfg.Server.MaxMultipartMemory,
		},
		Adapter: Adapter{
			MineruBaseURL:        jsonCfg.Adapter.MineruBaseURL,
			ConverterBaseURL:     jsonCfg.Adapter.ConverterBaseURL,
			RequestTimeout:       time.Duration(jsonCfg.Adapter.RequestTimeout),
			LayoutModel:          jsonCfg.Adapter.LayoutModel,
			Language:             jsonCfg.Adapter.Language,
			UploadSetContentType: jsonCfg.Adapter.UploadSetContentType,
		},
		Port: jsonCfg.Port,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
