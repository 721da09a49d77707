package core

type ServeAction int

const (
	ActionServeRouteFile ServeAction = iota
	ActionServeAsset
	ActionNotFound
)

type ServeRequest struct {
	RequestPath string
	AssetExists bool
}

type ServeDecision struct {
	Action ServeAction
	File   string
}

// DecideServeAction resolves a request against the build manifest. Routes
// win over files; anything else must exist on disk.
func DecideServeAction(req ServeRequest, manifest *Manifest) ServeDecision {
	if err := ValidateRequestPath(req.RequestPath); err != nil {
		return ServeDecision{Action: ActionNotFound}
	}

	normalized := NormalizePath(req.RequestPath)

	if manifest != nil {
		if route, ok := manifest.Routes[normalized]; ok && route.HTML != "" {
			return ServeDecision{Action: ActionServeRouteFile, File: route.HTML}
		}
	}

	if normalized == "/" {
		return ServeDecision{Action: ActionNotFound}
	}

	if req.AssetExists {
		return ServeDecision{Action: ActionServeAsset, File: OutputFile(normalized)}
	}

	return ServeDecision{Action: ActionNotFound}
}
