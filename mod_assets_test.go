package universe

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gekko3d/universe/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResolver hands out a fixed texture or error once gate is closed.
type stubResolver struct {
	gate    chan struct{}
	texture *scene.Texture
	err     error
	calls   atomic.Int32
}

func newStubResolver(tex *scene.Texture, err error) *stubResolver {
	return &stubResolver{gate: make(chan struct{}), texture: tex, err: err}
}

func (r *stubResolver) Resolve(ctx context.Context, ref string) (*scene.Texture, error) {
	r.calls.Add(1)
	select {
	case <-r.gate:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return r.texture, r.err
}

func (r *stubResolver) release() {
	close(r.gate)
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func waitHandle(t *testing.T, h *TextureHandle) (*scene.Texture, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return h.Wait(ctx)
}

func TestDefaultResolver_File(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.png"), encodePNG(t, 40, 20), 0o644))

	tex, err := DefaultResolver{BaseDir: dir}.Resolve(context.Background(), "photo.png")
	require.NoError(t, err)
	assert.Equal(t, 40, tex.Width)
	assert.Equal(t, 20, tex.Height)
	assert.Equal(t, "photo.png", tex.Ref)
	assert.NotEmpty(t, tex.ID)
	assert.NotNil(t, tex.Image)
}

func TestDefaultResolver_HTTP(t *testing.T) {
	data := encodePNG(t, 16, 32)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Header().Set("Content-Type", "image/png")
			w.Write(data)
		case "/garbage.png":
			w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	r := DefaultResolver{Client: srv.Client()}

	tex, err := r.Resolve(context.Background(), srv.URL+"/ok.png")
	require.NoError(t, err)
	assert.Equal(t, 16, tex.Width)
	assert.Equal(t, 32, tex.Height)

	_, err = r.Resolve(context.Background(), srv.URL+"/missing.png")
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.Contains(t, err.Error(), "404")

	_, err = r.Resolve(context.Background(), srv.URL+"/garbage.png")
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.Contains(t, err.Error(), "decoding")
}

func TestDefaultResolver_Missing(t *testing.T) {
	_, err := DefaultResolver{}.Resolve(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = DefaultResolver{}.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestAssetServer_OneLoadPerRef(t *testing.T) {
	tex := &scene.Texture{Ref: "a", Width: 2, Height: 1}
	resolver := newStubResolver(tex, nil)
	server := NewAssetServer(resolver)
	defer server.Close()

	h1 := server.RequestTexture("a")
	h2 := server.RequestTexture("a")
	assert.Same(t, h1, h2)

	status, got, err := h1.Poll()
	assert.Equal(t, TexturePending, status)
	assert.Nil(t, got)
	assert.NoError(t, err)

	resolver.release()
	got, err = waitHandle(t, h1)
	require.NoError(t, err)
	assert.Same(t, tex, got)

	status, _, _ = h2.Poll()
	assert.Equal(t, TextureReady, status)
	assert.Equal(t, int32(1), resolver.calls.Load())
}

func TestAssetServer_FailureIsWrapped(t *testing.T) {
	resolver := newStubResolver(nil, errors.New("boom"))
	resolver.release()
	server := NewAssetServer(resolver)
	defer server.Close()

	_, err := waitHandle(t, server.RequestTexture("x"))
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.Contains(t, err.Error(), "boom")

	status, _, _ := server.RequestTexture("x").Poll()
	assert.Equal(t, TextureFailed, status)
}

func TestAssetServer_NilTexture(t *testing.T) {
	resolver := newStubResolver(nil, nil)
	resolver.release()
	server := NewAssetServer(resolver)
	defer server.Close()

	_, err := waitHandle(t, server.RequestTexture("x"))
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestAssetServer_Close(t *testing.T) {
	server := NewAssetServer(newStubResolver(nil, nil))
	h := server.RequestTexture("slow")
	server.Close()

	_, err := waitHandle(t, h)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAssetServer_WaitTimeout(t *testing.T) {
	server := NewAssetServer(newStubResolver(nil, nil))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := server.RequestTexture("slow").Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
