package config

import (
	"encoding/json"
	"log"
	"os"
	"strings"
)

// runtimeConfig mirrors the deployment-time config file shipped next to the
// binary. Only the base URL is consumed; unknown keys are ignored.
type runtimeConfig struct {
	BasicURL string `json:"BASIC_URL"`
}

// ResolveBaseURL reads the API base URL from the runtime config file.
// Absence of the file or of the value is a configuration error, logged but
// non-fatal: an empty string is returned and the transport rejects calls
// until a base URL is supplied.
func ResolveBaseURL(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("config: runtime config %s unreadable: %v", path, err)
		return ""
	}

	var rc runtimeConfig
	if err := json.Unmarshal(data, &rc); err != nil {
		log.Printf("config: runtime config %s malformed: %v", path, err)
		return ""
	}
	if rc.BasicURL == "" {
		log.Printf("config: runtime config %s has no BASIC_URL", path)
		return ""
	}

	url := rc.BasicURL
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return url
}
