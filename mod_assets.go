package universe

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gekko3d/universe/scene"
	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type AssetId string

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// ErrResourceUnavailable wraps every failure to turn an image reference
// into a texture.
var ErrResourceUnavailable = errors.New("resource unavailable")

// TextureResolver turns an image reference (URL or local path) into a
// decoded texture.
type TextureResolver interface {
	Resolve(ctx context.Context, ref string) (*scene.Texture, error)
}

// DefaultResolver fetches http(s) references with Client and opens
// anything else as a file relative to BaseDir.
type DefaultResolver struct {
	Client  *http.Client
	BaseDir string
}

func (r DefaultResolver) Resolve(ctx context.Context, ref string) (*scene.Texture, error) {
	if ref == "" {
		return nil, fmt.Errorf("%w: empty image reference", ErrResourceUnavailable)
	}

	var (
		body io.ReadCloser
		err  error
	)
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		body, err = r.fetch(ctx, ref)
	} else {
		body, err = r.open(ref)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrResourceUnavailable, ref, err)
	}
	defer body.Close()

	return decodeTexture(ref, body)
}

func (r DefaultResolver) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

func (r DefaultResolver) open(path string) (io.ReadCloser, error) {
	if r.BaseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(r.BaseDir, path)
	}
	return os.Open(path)
}

func decodeTexture(ref string, body io.Reader) (*scene.Texture, error) {
	img, _, err := image.Decode(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: decoding: %w", ErrResourceUnavailable, ref, err)
	}
	bounds := img.Bounds()
	return &scene.Texture{
		ID:     string(makeAssetId()),
		Ref:    ref,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Image:  img,
	}, nil
}

type TextureStatus int

const (
	TexturePending TextureStatus = iota
	TextureReady
	TextureFailed
)

func (s TextureStatus) String() string {
	switch s {
	case TexturePending:
		return "pending"
	case TextureReady:
		return "ready"
	case TextureFailed:
		return "failed"
	}
	return "unknown"
}

// TextureHandle tracks one in-flight or finished load.
type TextureHandle struct {
	Ref string

	mu      sync.Mutex
	status  TextureStatus
	texture *scene.Texture
	err     error
	done    chan struct{}
}

// Poll reports the load state without blocking.
func (h *TextureHandle) Poll() (TextureStatus, *scene.Texture, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status, h.texture, h.err
}

// Wait blocks until the load finishes or ctx is done.
func (h *TextureHandle) Wait(ctx context.Context) (*scene.Texture, error) {
	select {
	case <-h.done:
		_, tex, err := h.Poll()
		return tex, err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *TextureHandle) finish(tex *scene.Texture, err error) {
	h.mu.Lock()
	if err != nil {
		h.status = TextureFailed
		h.err = err
	} else {
		h.status = TextureReady
		h.texture = tex
	}
	h.mu.Unlock()
	close(h.done)
}

// AssetServer loads textures in the background, one load per reference.
// Failed loads are not retried.
type AssetServer struct {
	resolver TextureResolver
	ctx      context.Context
	cancel   context.CancelFunc

	mu       sync.Mutex
	textures map[string]*TextureHandle
}

func NewAssetServer(resolver TextureResolver) *AssetServer {
	if resolver == nil {
		resolver = DefaultResolver{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &AssetServer{
		resolver: resolver,
		ctx:      ctx,
		cancel:   cancel,
		textures: make(map[string]*TextureHandle),
	}
}

// RequestTexture returns the handle for ref, starting the load on first
// request.
func (server *AssetServer) RequestTexture(ref string) *TextureHandle {
	server.mu.Lock()
	defer server.mu.Unlock()

	if h, ok := server.textures[ref]; ok {
		return h
	}
	h := &TextureHandle{Ref: ref, done: make(chan struct{})}
	server.textures[ref] = h

	go func() {
		tex, err := server.resolver.Resolve(server.ctx, ref)
		if err == nil && tex == nil {
			err = errors.New("resolver returned no texture")
		}
		if err != nil && !errors.Is(err, ErrResourceUnavailable) {
			err = fmt.Errorf("%w: %s: %w", ErrResourceUnavailable, ref, err)
		}
		h.finish(tex, err)
	}()
	return h
}

// Close cancels loads still in flight.
func (server *AssetServer) Close() {
	server.cancel()
}

type AssetServerModule struct {
	Resolver TextureResolver
}

func (m AssetServerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewAssetServer(m.Resolver))
}
