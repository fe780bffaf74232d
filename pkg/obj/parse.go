package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseFile opens and parses the OBJ file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads OBJ text from r until EOF. Only read errors are returned;
// content problems are absorbed and counted in Document.Stats.
func Parse(r io.Reader) (*Document, error) {
	p := &parser{doc: &Document{}}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			p.parseLine(strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			return p.doc, nil
		}
		if err != nil {
			n := p.doc.Stats.Lines
			if line == "" {
				n++
			}
			return nil, fmt.Errorf("%w: line %d: %w", ErrIO, n, err)
		}
	}
}

type parser struct {
	doc *Document
}

func (p *parser) parseLine(line string) {
	p.doc.Stats.Lines++
	line = strings.TrimSuffix(line, "\r")

	if len(line) < 2 {
		p.doc.Stats.Ignored++
		return
	}

	switch line[:2] {
	case "v ":
		var v Vec3
		p.floats(line[2:], v[:])
		p.doc.Positions = append(p.doc.Positions, v)
	case "vt":
		var t Vec2
		p.floats(line[2:], t[:])
		p.doc.TexCoords = append(p.doc.TexCoords, t)
	case "vn":
		var n Vec3
		p.floats(line[2:], n[:])
		p.doc.Normals = append(p.doc.Normals, n)
	case "f ":
		p.face(line[2:])
	default:
		p.doc.Stats.Ignored++
	}
}

// floats fills dst from the leading whitespace-separated tokens of s.
// Missing or unparsable tokens leave 0 in place.
func (p *parser) floats(s string, dst []float32) {
	fields := strings.Fields(s)
	for i := range dst {
		if i >= len(fields) {
			p.doc.Stats.Malformed++
			continue
		}
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			p.doc.Stats.Malformed++
			continue
		}
		dst[i] = float32(f)
	}
}

func (p *parser) face(s string) {
	fields := strings.Fields(s)
	if len(fields) > MaxFaceCorners {
		p.doc.Stats.Truncated++
		fields = fields[:MaxFaceCorners]
	}

	face := Face{Corners: make([]Corner, 0, len(fields))}
	for _, tok := range fields {
		face.Corners = append(face.Corners, p.corner(tok))
	}
	p.doc.Faces = append(p.doc.Faces, face)
}

// corner parses "V", "V/T", "V/T/N" or "V//N". An empty field is simply
// absent; a non-numeric one is absent and counted as malformed.
func (p *parser) corner(tok string) Corner {
	var idx [3]int
	for i, field := range strings.SplitN(tok, "/", 3) {
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			p.doc.Stats.Malformed++
			continue
		}
		idx[i] = n
	}
	return Corner{Vertex: idx[0], TexCoord: idx[1], Normal: idx[2]}
}
