// Package texture provides image decoding and GPU texture management.
package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/halverson/glint/internal/logger"
)

// Cache owns every texture handle the engine creates, including the shared
// 1x1 white fallback. Load never fails: a texture that cannot be decoded
// resolves to the fallback so the frame loop keeps running.
type Cache struct {
	defaultTex uint32
	byPath     map[string]uint32
	cubemaps   []uint32
}

// NewCache creates the texture cache and the default white texture.
// Requires a current OpenGL context.
func NewCache() *Cache {
	c := &Cache{
		byPath: make(map[string]uint32),
	}

	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.Pix[0], white.Pix[1], white.Pix[2], white.Pix[3] = 255, 255, 255, 255
	c.defaultTex = upload2D(white)

	return c
}

// Default returns the 1x1 white fallback texture.
func (c *Cache) Default() uint32 {
	return c.defaultTex
}

// Load decodes an image file and uploads it as a mipmapped 2D texture.
// On any failure it logs a warning and returns the default texture.
func (c *Cache) Load(path string) uint32 {
	if tex, ok := c.byPath[path]; ok {
		return tex
	}

	img, err := decodeFile(path)
	if err != nil {
		logger.Warn("texture load failed, using default",
			zap.String("path", path),
			zap.Error(err),
		)
		c.byPath[path] = c.defaultTex
		return c.defaultTex
	}

	tex := upload2D(ImageToRGBA(img))
	c.byPath[path] = tex

	logger.Debug("texture loaded", zap.String("path", path), zap.Uint32("id", tex))
	return tex
}

// LoadCubemap uploads six face images as a seamless cubemap.
// Face order is +X, -X, +Y, -Y, +Z, -Z.
func (c *Cache) LoadCubemap(faces [6]string) (uint32, error) {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)

	for i, path := range faces {
		img, err := decodeFile(path)
		if err != nil {
			gl.DeleteTextures(1, &tex)
			return 0, fmt.Errorf("cubemap face %q: %w", path, err)
		}
		rgba := ImageToRGBA(img)
		w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0, gl.RGBA, int32(w), int32(h), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&rgba.Pix[0]),
		)
	}

	gl.GenerateMipmap(gl.TEXTURE_CUBE_MAP)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	c.cubemaps = append(c.cubemaps, tex)
	return tex, nil
}

// Close releases every texture the cache created.
func (c *Cache) Close() {
	for _, tex := range c.byPath {
		if tex != 0 && tex != c.defaultTex {
			gl.DeleteTextures(1, &tex)
		}
	}
	c.byPath = map[string]uint32{}

	for _, tex := range c.cubemaps {
		gl.DeleteTextures(1, &tex)
	}
	c.cubemaps = nil

	if c.defaultTex != 0 {
		gl.DeleteTextures(1, &c.defaultTex)
		c.defaultTex = 0
	}
}

// decodeFile reads and decodes an image file (PNG, JPEG or TGA).
func decodeFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(strings.ToLower(path), ".tga") {
		return DecodeTGA(data)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// upload2D uploads an RGBA image as a mipmapped, repeating 2D texture.
func upload2D(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}
