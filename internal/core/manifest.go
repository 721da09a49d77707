package core

import (
	"encoding/json"
	"time"
)

type ManifestRoute struct {
	HTML string `json:"html"`
	Data string `json:"data,omitempty"`
	CSS  string `json:"css,omitempty"`
}

type Manifest struct {
	BuildID     string                   `json:"buildId"`
	GeneratedAt time.Time                `json:"generatedAt"`
	LaunchCount int                      `json:"launchCount"`
	Routes      map[string]ManifestRoute `json:"routes"`
	Assets      []string                 `json:"assets,omitempty"`
}

func NewManifest(buildID string, generatedAt time.Time) *Manifest {
	return &Manifest{
		BuildID:     buildID,
		GeneratedAt: generatedAt.UTC(),
		Routes:      make(map[string]ManifestRoute),
	}
}

func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m.Routes == nil {
		m.Routes = make(map[string]ManifestRoute)
	}
	return &m, nil
}

func (m *Manifest) Marshal() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func (m *Manifest) AddRoute(path string, route ManifestRoute) {
	m.Routes[NormalizePath(path)] = route
}
