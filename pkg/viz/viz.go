// Package viz turns scenes into renderable meshes for debugging: each
// part becomes an SDF box solid, solids are meshed with marching
// cubes, and meshes can be written out as binary STL for inspection
// in any external viewer.
package viz

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/ollestrom/furnish/pkg/scene"
)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// PartSolid builds the SDF solid for one part: a box of the part's
// dimensions, rotated and placed at its world center. The rotation
// matrices compose so a point sees Z, then Y, then X, matching the
// Euler convention used everywhere else.
func PartSolid(p scene.Part) (sdf.SDF3, error) {
	box, err := sdf.Box3D(v3.Vec{X: p.Size.X(), Y: p.Size.Y(), Z: p.Size.Z()}, 0)
	if err != nil {
		return nil, fmt.Errorf("part %s: %w", p.ID, err)
	}

	m := sdf.Translate3d(v3.Vec{X: p.Position.X(), Y: p.Position.Y(), Z: p.Position.Z()})
	if !p.Rotation.IsZero() {
		r := sdf.RotateX(p.Rotation.X).Mul(sdf.RotateY(p.Rotation.Y)).Mul(sdf.RotateZ(p.Rotation.Z))
		m = m.Mul(r)
	}
	return sdf.Transform3D(box, m), nil
}

// SceneSolid unions the solids of all visible parts. A scene with no
// visible parts returns nil.
func SceneSolid(s *scene.Scene) (sdf.SDF3, error) {
	var solid sdf.SDF3
	for _, p := range s.Parts {
		if s.Hidden[p.ID] {
			continue
		}
		ps, err := PartSolid(p)
		if err != nil {
			return nil, err
		}
		if solid == nil {
			solid = ps
		} else {
			solid = sdf.Union3D(solid, ps)
		}
	}
	return solid, nil
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
// cells controls the tessellation resolution; 0 uses the default.
func ToMesh(solid sdf.SDF3, cells int) *Mesh {
	if cells <= 0 {
		cells = defaultMeshCells
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(solid, renderer)

	numVerts := len(triangles) * 3
	mesh := &Mesh{
		Vertices: make([]float32, 0, numVerts*3),
		Normals:  make([]float32, 0, numVerts*3),
		Indices:  make([]uint32, 0, numVerts),
	}

	for i, tri := range triangles {
		n := tri.Normal()
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			mesh.Vertices = append(mesh.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			mesh.Normals = append(mesh.Normals, nx, ny, nz)
			mesh.Indices = append(mesh.Indices, uint32(i*3+j))
		}
	}
	return mesh
}

// MeshPart builds and meshes a single part.
func MeshPart(p scene.Part, cells int) (*Mesh, error) {
	solid, err := PartSolid(p)
	if err != nil {
		return nil, err
	}
	mesh := ToMesh(solid, cells)
	mesh.PartName = string(p.ID)
	return mesh, nil
}

// MeshScene builds and meshes all visible parts as one solid.
func MeshScene(s *scene.Scene, cells int) (*Mesh, error) {
	solid, err := SceneSolid(s)
	if err != nil {
		return nil, err
	}
	if solid == nil {
		return &Mesh{}, nil
	}
	return ToMesh(solid, cells), nil
}
