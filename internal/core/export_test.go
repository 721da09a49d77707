package core

import "time"

func NewManifestForTest() *Manifest {
	m := NewManifest("test-build", time.Date(2020, 5, 30, 19, 22, 0, 0, time.UTC))
	m.AddRoute("/", ManifestRoute{HTML: "index.html", Data: "_data/index.json"})
	return m
}
