package core

import "testing"

func TestDecideServeAction(t *testing.T) {
	manifest := NewManifestForTest()

	tests := []struct {
		name       string
		req        ServeRequest
		manifest   *Manifest
		wantAction ServeAction
		wantFile   string
	}{
		{
			name:       "root serves index route",
			req:        ServeRequest{RequestPath: "/"},
			manifest:   manifest,
			wantAction: ActionServeRouteFile,
			wantFile:   "index.html",
		},
		{
			name:       "root without manifest is not found",
			req:        ServeRequest{RequestPath: "/", AssetExists: true},
			manifest:   nil,
			wantAction: ActionNotFound,
		},
		{
			name:       "existing asset",
			req:        ServeRequest{RequestPath: "/vercel.svg", AssetExists: true},
			manifest:   manifest,
			wantAction: ActionServeAsset,
			wantFile:   "vercel.svg",
		},
		{
			name:       "nested asset",
			req:        ServeRequest{RequestPath: "/assets/home.1.css", AssetExists: true},
			manifest:   manifest,
			wantAction: ActionServeAsset,
			wantFile:   "assets/home.1.css",
		},
		{
			name:       "missing asset",
			req:        ServeRequest{RequestPath: "/missing.png"},
			manifest:   manifest,
			wantAction: ActionNotFound,
		},
		{
			name:       "parent traversal rejected",
			req:        ServeRequest{RequestPath: "/../etc/passwd", AssetExists: true},
			manifest:   manifest,
			wantAction: ActionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecideServeAction(tt.req, tt.manifest)
			if got.Action != tt.wantAction {
				t.Errorf("Action = %v, want %v", got.Action, tt.wantAction)
			}
			if got.File != tt.wantFile {
				t.Errorf("File = %q, want %q", got.File, tt.wantFile)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := map[string]string{
		"":        "/",
		"/":       "/",
		"index":   "/index",
		"/about/": "/about",
	}
	for in, want := range tests {
		if got := NormalizePath(in); got != want {
			t.Errorf("NormalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHashedName(t *testing.T) {
	content := []byte("body { margin: 0; }")
	name := HashedName("home.css", content)
	want := "home." + HashContent(content) + ".css"
	if name != want {
		t.Errorf("HashedName = %q, want %q", name, want)
	}
	if HashContent(content) == HashContent([]byte("body { margin: 1px; }")) {
		t.Error("Expected different content to hash differently")
	}
}

func TestManifestRoundTrip(t *testing.T) {
	m := NewManifestForTest()
	data, err := m.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	parsed, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	if parsed.Routes["/"].HTML != "index.html" {
		t.Errorf("Expected index route to survive, got %+v", parsed.Routes)
	}
	if parsed.BuildID != m.BuildID {
		t.Errorf("Expected build id %q, got %q", m.BuildID, parsed.BuildID)
	}
}
