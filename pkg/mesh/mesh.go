// Package mesh defines the triangle mesh produced by surface
// extraction. Ownership of a mesh passes to whatever renderer consumes
// it; nothing in this module mutates a mesh after it is built.
package mesh

// VertexStride is the number of floats per interleaved vertex record:
// position (x, y, z) followed by a unit normal (nx, ny, nz).
const VertexStride = 6

// Mesh is a triangle mesh suitable for rendering. Vertices is
// interleaved with VertexStride floats per vertex; Indices holds 3
// uint32s per counter-clockwise, front-facing triangle.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Indices  []uint32  `json:"indices"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Bounds returns the axis-aligned bounding box of the vertex positions.
// ok is false for an empty mesh.
func (m *Mesh) Bounds() (min, max [3]float32, ok bool) {
	if m.IsEmpty() {
		return min, max, false
	}
	min = [3]float32{m.Vertices[0], m.Vertices[1], m.Vertices[2]}
	max = min
	for i := VertexStride; i < len(m.Vertices); i += VertexStride {
		for a := 0; a < 3; a++ {
			v := m.Vertices[i+a]
			if v < min[a] {
				min[a] = v
			}
			if v > max[a] {
				max[a] = v
			}
		}
	}
	return min, max, true
}

// SignedVolume returns the volume enclosed by the mesh via the
// divergence theorem: the sum over triangles of dot(v0, cross(v1, v2))/6.
// Positive for a closed mesh with outward-facing winding.
func (m *Mesh) SignedVolume() float64 {
	var sum float64
	for i := 0; i+2 < len(m.Indices); i += 3 {
		v0 := m.position(m.Indices[i])
		v1 := m.position(m.Indices[i+1])
		v2 := m.position(m.Indices[i+2])

		cx := v1[1]*v2[2] - v1[2]*v2[1]
		cy := v1[2]*v2[0] - v1[0]*v2[2]
		cz := v1[0]*v2[1] - v1[1]*v2[0]
		sum += v0[0]*cx + v0[1]*cy + v0[2]*cz
	}
	return sum / 6
}

func (m *Mesh) position(i uint32) [3]float64 {
	base := int(i) * VertexStride
	return [3]float64{
		float64(m.Vertices[base]),
		float64(m.Vertices[base+1]),
		float64(m.Vertices[base+2]),
	}
}
