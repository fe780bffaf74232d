package texture

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// pixels returns a pointer to the first pixel of img for upload. Empty
// images have nothing to point at and are rejected.
func pixels(img *image.RGBA) (unsafe.Pointer, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 || len(img.Pix) == 0 {
		return nil, fmt.Errorf("%w: empty %dx%d image", ErrCorrupt, b.Dx(), b.Dy())
	}
	return unsafe.Pointer(&img.Pix[0]), nil
}

// Upload2D creates a mipmapped, repeating 2D texture from img.
func Upload2D(img *image.RGBA) (uint32, error) {
	data, err := pixels(img)
	if err != nil {
		return 0, err
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, data)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return id, nil
}

// Load2D decodes path, flips it for OpenGL and uploads it.
func Load2D(path string) (uint32, error) {
	img, err := DecodeFile(path)
	if err != nil {
		return 0, err
	}
	FlipVertical(img)
	return Upload2D(img)
}

// UploadCubeMap creates a cube map from six faces ordered
// +X, -X, +Y, -Y, +Z, -Z.
func UploadCubeMap(faces []*image.RGBA) (uint32, error) {
	if len(faces) != CubeFaces {
		return 0, fmt.Errorf("cube map needs %d faces, got %d", CubeFaces, len(faces))
	}

	data := make([]unsafe.Pointer, len(faces))
	for i, img := range faces {
		p, err := pixels(img)
		if err != nil {
			return 0, fmt.Errorf("cube face %d: %w", i, err)
		}
		data[i] = p
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)
	for i, img := range faces {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA,
			int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, data[i])
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return id, nil
}

// LoadCubeMap decodes six face files and uploads them as a cube map.
func LoadCubeMap(paths []string) (uint32, error) {
	if len(paths) != CubeFaces {
		return 0, fmt.Errorf("cube map needs %d faces, got %d", CubeFaces, len(paths))
	}
	faces := make([]*image.RGBA, len(paths))
	for i, p := range paths {
		img, err := DecodeFile(p)
		if err != nil {
			return 0, err
		}
		faces[i] = img
	}
	return UploadCubeMap(faces)
}

// Delete releases a texture created by this package.
func Delete(id uint32) {
	if id != 0 {
		gl.DeleteTextures(1, &id)
	}
}
