package media

import (
	"strings"

	"github.com/tars-society/tars-club-api/pkg/config"
)

// Resolver maps stored image/file references onto absolute blob-storage URLs.
// References that already point at the storage service pass through unchanged;
// bare references have the legacy local prefix stripped and are joined onto the
// configured base URL. Every presentation path resolves through this one type
// so the two historical serialization variants cannot drift apart.
type Resolver struct {
	baseURL     string
	localPrefix string
}

// NewResolver constructs a resolver from media configuration.
func NewResolver(cfg config.MediaConfig) *Resolver {
	base := cfg.BaseURL
	if base != "" && !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return &Resolver{baseURL: base, localPrefix: cfg.LocalPrefix}
}

// URL resolves a stored reference. An empty reference resolves to nil, never
// an error. The returned pointer serializes as JSON null when absent.
func (r *Resolver) URL(ref string) *string {
	if ref == "" {
		return nil
	}

	if strings.Contains(ref, "cloudinary.com") || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return &ref
	}

	publicID := ref
	if r.localPrefix != "" && strings.HasPrefix(publicID, r.localPrefix) {
		publicID = publicID[len(r.localPrefix):]
	}

	if r.baseURL == "" {
		return &publicID
	}

	resolved := r.baseURL + publicID
	return &resolved
}

// OptionalURL resolves a nullable stored reference.
func (r *Resolver) OptionalURL(ref *string) *string {
	if ref == nil {
		return nil
	}
	return r.URL(*ref)
}
