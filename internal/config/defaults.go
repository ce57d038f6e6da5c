package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/botbuilder/sdk-go/internal/api"
)

// Default values for every key.
const (
	DefaultBaseURL        = api.DefaultBaseURL
	DefaultTimeoutSeconds = int(api.DefaultTimeout / time.Second)
	DefaultLogLevel       = "warn"
	DefaultOutput         = OutputJSON
)

// ApplyDefaults registers the defaults on v. Every key must have a default
// so that AutomaticEnv can resolve it during Unmarshal.
func ApplyDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeoutSeconds)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("output", DefaultOutput)
}
