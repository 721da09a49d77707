package config

import "os"

const (
	EnvEndpoint = "LAUNCHBOARD_ENDPOINT"
	EnvOutDir   = "LAUNCHBOARD_OUT_DIR"
	EnvTimezone = "LAUNCHBOARD_TIMEZONE"
	EnvDev      = "LAUNCHBOARD_DEV"
)

// ApplyEnv overrides file values with LAUNCHBOARD_* variables. Empty
// variables are ignored. LAUNCHBOARD_DEV=1 switches to development logging.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvEndpoint); ok && v != "" {
		c.Endpoint = v
	}
	if v, ok := lookup(EnvOutDir); ok && v != "" {
		c.OutDir = v
	}
	if v, ok := lookup(EnvTimezone); ok && v != "" {
		c.Timezone = v
	}
	if v, ok := lookup(EnvDev); ok && v == "1" {
		c.Log.Development = true
	}
}
