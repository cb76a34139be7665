package api

import envutil "github.com/projectdiscovery/utils/env"

var (
	// APIServer is the base URL of the read-only server directory API.
	APIServer = envutil.GetEnvOrDefault("NORDPICK_API_SERVER", "https://api.nordvpn.com/v1")
)
