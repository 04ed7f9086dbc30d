package config

import "time"

// Defaults applied to every field left empty by the other sources.
const (
	DefaultPort               = "3000"
	DefaultMineruBaseURL      = "https://mineru.net/api/v4"
	DefaultConverterBaseURL   = "http://localhost:3030"
	DefaultLayoutModel        = "doclayout_yolo"
	DefaultLanguage           = "vi"
	DefaultAdapterTimeout     = 60 * time.Second
	DefaultServerTimeout      = 3 * time.Minute
	DefaultMaxBodySize        = 50 << 20
	DefaultMaxMultipartMemory = 32 << 20
	DefaultVersion            = "dev"
	DefaultLogLevel           = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  DefaultVersion,
			LogLevel: DefaultLogLevel,
		},
		Server: Server{
			RequestTimeout:     DefaultServerTimeout,
			MaxBodySize:        DefaultMaxBodySize,
			MaxMultipartMemory: DefaultMaxMultipartMemory,
		},
		Adapter: Adapter{
			MineruBaseURL:    DefaultMineruBaseURL,
			ConverterBaseURL: DefaultConverterBaseURL,
			RequestTimeout:   DefaultAdapterTimeout,
			LayoutModel:      DefaultLayoutModel,
			Language:         DefaultLanguage,
		},
		Port: DefaultPort,
	}
}
