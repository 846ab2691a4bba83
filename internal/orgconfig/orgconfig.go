// Package orgconfig loads and resolves organization branding configuration
// for certificate sessions.
package orgconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Organization holds the branding record for a single organization.
// Only the name is required; the other fields customize the page chrome.
type Organization struct {
	OrganizationName string `json:"organizationName"`
	LogoPath         string `json:"logoPath,omitempty"`
	FaviconPath      string `json:"faviconPath,omitempty"`
	WebsiteURL       string `json:"websiteUrl,omitempty"`
}

// Mapping maps an organization id to its configuration record. It is loaded
// once at startup and treated as immutable afterwards.
type Mapping map[string]Organization

// IDs returns the sorted set of organization ids in the mapping.
// A nil mapping yields an empty slice.
func (m Mapping) IDs() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ParseMapping validates raw JSON against the organization schema and
// decodes it into a Mapping.
func ParseMapping(data []byte) (Mapping, error) {
	if err := validateMappingJSON(data); err != nil {
		return nil, err
	}

	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse organization mapping: %w", err)
	}
	return m, nil
}

// LoadMapping reads and parses the organization mapping from a JSON file.
func LoadMapping(path string) (Mapping, error) {
	if path == "" {
		return nil, fmt.Errorf("organization mapping path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read organization mapping %s: %w", path, err)
	}

	return ParseMapping(data)
}
