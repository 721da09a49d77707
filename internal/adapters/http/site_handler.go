package http

import (
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/3-lines-studio/launchboard/internal/adapters/fs"
	"github.com/3-lines-studio/launchboard/internal/core"
)

const ManifestFile = "manifest.json"

// SiteHandler serves a built output directory. The manifest is re-read on
// every request so a rebuild shows up without restarting the server.
type SiteHandler struct {
	root   string
	fs     fs.FileSystem
	logger *zap.Logger
}

func NewSiteHandler(root string, fsys fs.FileSystem, logger *zap.Logger) *SiteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SiteHandler{
		root:   root,
		fs:     fsys,
		logger: logger,
	}
}

func (h *SiteHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	requestPath := req.URL.Path

	assetExists := false
	if core.ValidateRequestPath(requestPath) == nil {
		assetExists = h.isFile(core.OutputFile(requestPath))
	}

	decision := core.DecideServeAction(core.ServeRequest{
		RequestPath: requestPath,
		AssetExists: assetExists,
	}, h.loadManifest())

	switch decision.Action {
	case core.ActionServeRouteFile, core.ActionServeAsset:
		h.serveFile(w, req, decision.File)
	default:
		http.NotFound(w, req)
	}
}

func (h *SiteHandler) loadManifest() *core.Manifest {
	data, err := h.fs.ReadFile(filepath.Join(h.root, ManifestFile))
	if err != nil {
		return nil
	}

	manifest, err := core.ParseManifest(data)
	if err != nil {
		h.logger.Warn("ignoring unreadable manifest", zap.Error(err))
		return nil
	}
	return manifest
}

func (h *SiteHandler) isFile(rel string) bool {
	// dotfiles include in-flight temp files from a concurrent build
	if rel == "" || strings.HasPrefix(path.Base(rel), ".") {
		return false
	}
	full := filepath.Join(h.root, filepath.FromSlash(rel))
	if !h.fs.FileExists(full) {
		return false
	}
	// directories have no bytes to serve
	_, err := h.fs.ReadDir(full)
	return err != nil
}

func (h *SiteHandler) serveFile(w http.ResponseWriter, req *http.Request, rel string) {
	full := filepath.Join(h.root, filepath.FromSlash(path.Clean("/" + rel)))

	data, err := h.fs.ReadFile(full)
	if err != nil {
		h.logger.Debug("file vanished before serving", zap.String("file", rel), zap.Error(err))
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(rel))
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}
