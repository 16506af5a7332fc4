package viz

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func oneTriangleMesh() *Mesh {
	return &Mesh{
		Vertices: []float32{0, 0, 0, 100, 0, 0, 0, 100, 0},
		Normals:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:  []uint32{0, 1, 2},
	}
}

func TestWriteSTLLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, oneTriangleMesh()); err != nil {
		t.Fatal(err)
	}

	// 80-byte header + count + one 50-byte triangle record.
	if buf.Len() != 80+4+50 {
		t.Fatalf("stl length = %d, want %d", buf.Len(), 80+4+50)
	}

	data := buf.Bytes()
	count := binary.LittleEndian.Uint32(data[80:84])
	if count != 1 {
		t.Fatalf("triangle count = %d, want 1", count)
	}

	// First float after the count is the normal's X component.
	var normal [3]float32
	if err := binary.Read(bytes.NewReader(data[84:96]), binary.LittleEndian, &normal); err != nil {
		t.Fatal(err)
	}
	if normal != [3]float32{0, 0, 1} {
		t.Fatalf("normal = %v", normal)
	}
}

func TestWriteSTLEmptyMesh(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSTL(&buf, &Mesh{}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 84 {
		t.Fatalf("empty stl length = %d, want 84", buf.Len())
	}
}
