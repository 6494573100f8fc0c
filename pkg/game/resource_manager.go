package game

import (
	"bytes"
	"fmt"

	"github.com/decker502/lightroom/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontName 内置字体的名称（Go Regular）
const DefaultFontName = "goregular"

// ResourceManager is responsible for centralized management of game resources.
// It caches font faces and the audio players of synthesized sounds,
// so that every resource is created only once and reused by all systems.
//
// The room ships no asset files: the default font comes from
// golang.org/x/image/font/gofont and sounds are synthesized at startup.
// Fonts from other files can still be loaded through LoadFont.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. It is only used from the game loop.
type ResourceManager struct {
	audioContext    *audio.Context                    // Global audio context, nil when audio is unavailable
	audioCache      map[string]*audio.Player          // Cache for sound players: resource ID -> Player
	fontSourceCache map[string]*text.GoTextFaceSource // Cache for parsed font files: name -> source
	fontFaceCache   map[string]*text.GoTextFace       // Cache for text faces: name:size -> face
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context, or nil to run without sound (tests, terminal).
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioContext:    audioContext,
		audioCache:      make(map[string]*audio.Player),
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
	}
}

// RegisterSound creates an audio player from raw PCM data and caches it under soundID.
// The data must be 16-bit little-endian stereo at the audio context's sample rate.
//
// Returns:
//   - An error if there is no audio context.
func (rm *ResourceManager) RegisterSound(soundID string, pcm []byte) error {
	if rm.audioContext == nil {
		return fmt.Errorf("cannot register sound %s: no audio context", soundID)
	}

	rm.audioCache[soundID] = rm.audioContext.NewPlayerFromBytes(pcm)
	return nil
}

// GetAudioPlayer retrieves a previously registered audio player.
// Returns nil if the sound has not been registered.
func (rm *ResourceManager) GetAudioPlayer(soundID string) *audio.Player {
	return rm.audioCache[soundID]
}

// LoadDefaultFont returns the built-in Go Regular face with the given size.
func (rm *ResourceManager) LoadDefaultFont(size float64) (*text.GoTextFace, error) {
	return rm.loadFontFace(DefaultFontName, size, func() ([]byte, error) {
		return goregular.TTF, nil
	})
}

// LoadFont loads a TrueType/OpenType font and creates a text face with the given size.
// Paths starting with "data/" are read from the embedded file system.
// The face is cached with a key combining path and size.
//
// Returns:
//   - An error if the file cannot be read or parsed.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	return rm.loadFontFace(path, size, func() ([]byte, error) {
		return embedded.ReadFile(path)
	})
}

// GetFont retrieves a previously loaded font face from the cache.
// Returns nil if the font has not been loaded yet.
func (rm *ResourceManager) GetFont(name string, size float64) *text.GoTextFace {
	return rm.fontFaceCache[fontCacheKey(name, size)]
}

func (rm *ResourceManager) loadFontFace(name string, size float64, read func() ([]byte, error)) (*text.GoTextFace, error) {
	cacheKey := fontCacheKey(name, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	// 同一字体文件的不同字号共用一个 source
	source, exists := rm.fontSourceCache[name]
	if !exists {
		fontData, err := read()
		if err != nil {
			return nil, fmt.Errorf("failed to read font %s: %w", name, err)
		}

		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", name, err)
		}
		rm.fontSourceCache[name] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face

	return face, nil
}

func fontCacheKey(name string, size float64) string {
	return fmt.Sprintf("%s:%.1f", name, size)
}
