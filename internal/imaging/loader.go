package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp" // Register BMP format decoder

	"github.com/ironsheep/maze-wizard/internal/maze"
)

// ImageCache provides thread-safe caching of loaded images to avoid redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once an image
// is loaded, subsequent Load() calls for the same path return the cached copy without
// disk I/O.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
// Maze images are usually small, but a long-running server solving many different
// files should evict what it no longer needs.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// Supported formats are BMP, PNG, JPEG and GIF. The image is cached using the
// exact path string provided, so a relative and an absolute path to the same
// file produce separate entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// MazeCache keeps the analysed maze of each image path so that repeated
// requests reuse both the decoded image and the computed solution.
//
// MazeCache is safe for concurrent use. Entries are keyed by path alone: a
// cache must be used with a single palette.
type MazeCache struct {
	images  *ImageCache
	palette maze.Palette

	mu    sync.Mutex
	mazes map[string]*maze.Maze
}

// NewMazeCache returns an empty cache that classifies images with palette.
func NewMazeCache(images *ImageCache, palette maze.Palette) *MazeCache {
	return &MazeCache{
		images:  images,
		palette: palette,
		mazes:   make(map[string]*maze.Maze),
	}
}

// Load returns the maze for the image at path, analysing it on first use.
// The returned image is the decoded source.
func (c *MazeCache) Load(path string) (*maze.Maze, image.Image, error) {
	img, err := c.images.Load(path)
	if err != nil {
		return nil, nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok := c.mazes[path]; ok {
		return m, img, nil
	}

	m, err := AnalyzeImage(img, c.palette)
	if err != nil {
		return nil, nil, err
	}
	c.mazes[path] = m
	return m, img, nil
}

// Evict drops the maze and image cached for path.
func (c *MazeCache) Evict(path string) {
	c.mu.Lock()
	delete(c.mazes, path)
	c.mu.Unlock()
	c.images.Evict(path)
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "bmp", "png", "jpeg", "gif" or "unknown".
	// Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// HasAlpha indicates whether the decoded image has an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through cache and returns its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        FormatOf(path),
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// FormatOf names the image format implied by the extension of path:
// "bmp", "png", "jpeg", "gif" or "unknown".
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return "bmp"
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	}
	return "unknown"
}
