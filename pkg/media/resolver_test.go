package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tars-society/tars-club-api/pkg/config"
)

func newTestResolver() *Resolver {
	return NewResolver(config.MediaConfig{
		BaseURL:     "https://res.cloudinary.com/tars-club/image/upload/",
		LocalPrefix: "media/",
	})
}

func TestResolverEmptyReference(t *testing.T) {
	r := newTestResolver()
	assert.Nil(t, r.URL(""))
	assert.Nil(t, r.OptionalURL(nil))
}

func TestResolverPassesThroughStorageURLs(t *testing.T) {
	r := newTestResolver()
	ref := "https://res.cloudinary.com/tars-club/image/upload/v12/sponsors/acme.png"
	got := r.URL(ref)
	require.NotNil(t, got)
	assert.Equal(t, ref, *got)
}

func TestResolverStripsLocalPrefix(t *testing.T) {
	r := newTestResolver()
	got := r.URL("media/sponsors/acme.png")
	require.NotNil(t, got)
	assert.Equal(t, "https://res.cloudinary.com/tars-club/image/upload/sponsors/acme.png", *got)
}

func TestResolverBareReference(t *testing.T) {
	r := newTestResolver()
	got := r.URL("club/logo.png")
	require.NotNil(t, got)
	assert.Equal(t, "https://res.cloudinary.com/tars-club/image/upload/club/logo.png", *got)
}

func TestResolverAppendsBaseSlash(t *testing.T) {
	r := NewResolver(config.MediaConfig{BaseURL: "https://cdn.example.com/blobs", LocalPrefix: "media/"})
	got := r.URL("hero/bg.jpg")
	require.NotNil(t, got)
	assert.Equal(t, "https://cdn.example.com/blobs/hero/bg.jpg", *got)
}
