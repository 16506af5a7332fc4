package viz

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// stlHeader fills the 80-byte binary STL header. Viewers ignore it,
// but a recognizable tag helps when sorting through dump files.
const stlHeader = "furnish debug mesh"

// WriteSTL writes the mesh as binary STL: an 80-byte header, a uint32
// triangle count, then per triangle a normal, three vertices and a
// zero attribute word, all little-endian.
func WriteSTL(w io.Writer, m *Mesh) error {
	var header [80]byte
	copy(header[:], stlHeader)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("stl header: %w", err)
	}

	count := uint32(m.TriangleCount())
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return fmt.Errorf("stl triangle count: %w", err)
	}

	var record [12]float32
	for t := 0; t < int(count); t++ {
		// Normal of the triangle's first vertex; all three share it.
		n := m.Indices[t*3] * 3
		record[0] = m.Normals[n]
		record[1] = m.Normals[n+1]
		record[2] = m.Normals[n+2]

		for j := 0; j < 3; j++ {
			v := m.Indices[t*3+j] * 3
			record[3+j*3] = m.Vertices[v]
			record[3+j*3+1] = m.Vertices[v+1]
			record[3+j*3+2] = m.Vertices[v+2]
		}

		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("stl triangle %d: %w", t, err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("stl attribute %d: %w", t, err)
		}
	}
	return nil
}

// SaveSTL writes the mesh to a file.
func SaveSTL(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteSTL(f, m); err != nil {
		return err
	}
	return f.Close()
}
