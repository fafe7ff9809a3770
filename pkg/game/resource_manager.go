package game

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrAssetMissing is returned when a requested image key cannot be resolved.
// Callers check it with errors.Is.
var ErrAssetMissing = errors.New("asset missing")

// ResourceManager is responsible for centralized management of card images.
// It provides loading and caching so each key is decoded only once and the
// resulting handle is shared by every face that uses it (all 52 backs share
// one image).
//
// Keys are slash-separated paths relative to the asset file system root,
// e.g. "cards/cardHearts2.png".
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The cache is a plain Go map and the
// game loop is single-threaded, so no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(os.DirFS("assets"))
//	img, err := rm.LoadImage("cards/cardBack_blue2.png")
//	if errors.Is(err, ErrAssetMissing) {
//	    log.Printf("Failed to load image: %v", err)
//	}
type ResourceManager struct {
	assets     fs.FS                    // Asset file system (usually os.DirFS(base_path))
	imageCache map[string]*ebiten.Image // Cache for loaded images: key -> Image
}

// NewResourceManager creates a ResourceManager reading from the given file system.
// A nil file system is allowed: every load then fails with ErrAssetMissing.
func NewResourceManager(assets fs.FS) *ResourceManager {
	return &ResourceManager{
		assets:     assets,
		imageCache: make(map[string]*ebiten.Image),
	}
}

// LoadImage loads the image stored under key and caches it for future use.
// If the image has already been loaded, it returns the cached version.
//
// Error handling:
//   - Returns an error wrapping ErrAssetMissing if the key does not exist or
//     cannot be decoded.
//   - Does not panic - all errors are returned to the caller for handling.
func (rm *ResourceManager) LoadImage(key string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[key]; exists {
		return cachedImage, nil
	}

	if rm.assets == nil {
		return nil, fmt.Errorf("%w: %s (no asset file system)", ErrAssetMissing, key)
	}

	file, err := rm.assets.Open(path.Clean(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAssetMissing, key, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image %s: %v", ErrAssetMissing, key, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[key] = ebitenImg
	log.Printf("[ResourceManager] Loaded image %s (%dx%d)", key, img.Bounds().Dx(), img.Bounds().Dy())

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(key string) *ebiten.Image {
	return rm.imageCache[key]
}

// Exists reports whether key resolves to a file without decoding it.
func (rm *ResourceManager) Exists(key string) bool {
	if rm.assets == nil {
		return false
	}
	_, err := fs.Stat(rm.assets, path.Clean(key))
	return err == nil
}

// Placeholder returns the handle used for faces whose image is missing.
// The handle is nil; the renderer draws a flat rectangle for it.
func (rm *ResourceManager) Placeholder() *ebiten.Image {
	return nil
}

// CachedCount returns the number of decoded images held in the cache.
func (rm *ResourceManager) CachedCount() int {
	return len(rm.imageCache)
}
