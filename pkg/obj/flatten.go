package obj

import "fmt"

// FlattenOptions controls how face references are resolved.
type FlattenOptions struct {
	// Strict fails on any given index (>= 1) that is past the end of its
	// table instead of substituting a zero vector. Absent indices are
	// still allowed.
	Strict bool
	// InferMissing reuses the vertex index for an absent texcoord or
	// normal index when the corresponding table is at least that long.
	// Some exporters write "f 1 2 3" with parallel v/vt/vn tables.
	InferMissing bool
}

// Load parses the file at path and flattens it.
func Load(path string, opts FlattenOptions) (*Mesh, error) {
	doc, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return Flatten(doc, opts)
}

// Flatten expands the faces of doc into a non-indexed triangle list.
// Polygons are fan-triangulated from their first corner as
// (0, i, i+1); faces with fewer than three corners are skipped.
// Without Strict the returned error is always nil.
func Flatten(doc *Document, opts FlattenOptions) (*Mesh, error) {
	triangles := 0
	for _, face := range doc.Faces {
		if n := len(face.Corners); n >= 3 {
			triangles += n - 2
		}
	}

	count := triangles * 3
	m := &Mesh{
		Positions: make([]Vec3, 0, count),
		TexCoords: make([]Vec2, 0, count),
		Normals:   make([]Vec3, 0, count),
		Indices:   make([]uint32, 0, count),
	}

	for fi, face := range doc.Faces {
		corners := face.Corners
		for i := 1; i+1 < len(corners); i++ {
			for _, c := range [3]Corner{corners[0], corners[i], corners[i+1]} {
				if opts.InferMissing {
					c = doc.infer(c)
				}
				if opts.Strict {
					if err := doc.check(c); err != nil {
						return nil, fmt.Errorf("face %d: %w", fi+1, err)
					}
				}
				m.emit(doc, c)
			}
		}
	}

	return m, nil
}

func (m *Mesh) emit(doc *Document, c Corner) {
	pos, _ := lookup(doc.Positions, c.Vertex)
	uv, _ := lookup(doc.TexCoords, c.TexCoord)
	nrm, _ := lookup(doc.Normals, c.Normal)

	m.Indices = append(m.Indices, uint32(len(m.Positions)))
	m.Positions = append(m.Positions, pos)
	m.TexCoords = append(m.TexCoords, uv)
	m.Normals = append(m.Normals, nrm)
}

// lookup resolves a 1-based index. It reports false, with the zero
// value, when the index is absent or past the end of table.
func lookup[T any](table []T, index int) (T, bool) {
	var zero T
	if index < 1 || index > len(table) {
		return zero, false
	}
	return table[index-1], true
}

func (doc *Document) infer(c Corner) Corner {
	if c.TexCoord < 1 && c.Vertex <= len(doc.TexCoords) {
		c.TexCoord = c.Vertex
	}
	if c.Normal < 1 && c.Vertex <= len(doc.Normals) {
		c.Normal = c.Vertex
	}
	return c
}

func (doc *Document) check(c Corner) error {
	if c.Vertex > len(doc.Positions) {
		return fmt.Errorf("%w: vertex %d of %d", ErrIndexOutOfRange, c.Vertex, len(doc.Positions))
	}
	if c.TexCoord > len(doc.TexCoords) {
		return fmt.Errorf("%w: texcoord %d of %d", ErrIndexOutOfRange, c.TexCoord, len(doc.TexCoords))
	}
	if c.Normal > len(doc.Normals) {
		return fmt.Errorf("%w: normal %d of %d", ErrIndexOutOfRange, c.Normal, len(doc.Normals))
	}
	return nil
}
