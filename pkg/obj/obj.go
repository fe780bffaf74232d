// Package obj imports Wavefront OBJ models.
//
// Only the geometry subset is understood: positions (v), texture
// coordinates (vt), normals (vn) and faces (f). Everything else is
// skipped. Parsing is permissive: malformed numbers become 0 and face
// indices that are absent or out of range resolve to zero vectors, so
// hand-edited files still load.
package obj

import "errors"

var (
	// ErrIO is returned when the model source cannot be opened or read.
	ErrIO = errors.New("obj: read failed")
	// ErrIndexOutOfRange is returned by Flatten in strict mode for a face
	// index that points past the end of its table.
	ErrIndexOutOfRange = errors.New("obj: index out of range")
)

// MaxFaceCorners is the number of corners read from a single face line.
// Further corners on the line are dropped.
const MaxFaceCorners = 4

// Vec2 is a texture coordinate.
type Vec2 [2]float32

// Vec3 is a position or normal.
type Vec3 [3]float32

// Corner references one face vertex. Indices are 1-based as in the file;
// a value below 1 means the attribute was not given.
type Corner struct {
	Vertex   int
	TexCoord int
	Normal   int
}

// Face is one polygon from an "f" line.
type Face struct {
	Corners []Corner
}

// Stats counts what the parser saw.
type Stats struct {
	Lines     int // total lines read
	Ignored   int // lines with an unhandled prefix (comments, groups, materials, blanks)
	Malformed int // numeric tokens that were missing or failed to parse
	Truncated int // face lines with more than MaxFaceCorners corners
}

// Document holds the raw attribute tables of a parsed file.
type Document struct {
	Positions []Vec3
	TexCoords []Vec2
	Normals   []Vec3
	Faces     []Face
	Stats     Stats
}

// Mesh is a flattened, non-indexed triangle list. The three attribute
// slices always have the same length and Indices is the identity
// sequence over them.
type Mesh struct {
	Positions []Vec3
	TexCoords []Vec2
	Normals   []Vec3
	Indices   []uint32
}

// VertexCount returns the number of emitted vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of emitted triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Positions) / 3
}
