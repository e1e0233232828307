// Package surfacenets extracts a triangle mesh approximating the
// zero-level surface of a sampled signed-distance field, using a
// surface-nets style dual-contouring sweep. One vertex is placed per
// surface-crossing grid cell; quads are emitted around each crossing
// edge and split into two triangles with outward-facing winding.
package surfacenets

import (
	"github.com/chewxy/math32"

	"github.com/maku693/3d-sdf-surface-nets/pkg/field"
	"github.com/maku693/3d-sdf-surface-nets/pkg/mesh"
)

// Extract sweeps the dual grid of f, one cell per cube of 8 samples,
// and produces the surface mesh. The sweep is a single forward pass:
// each cell's faces only reference vertices of lower-indexed cells.
func Extract(f *field.Field) *mesh.Mesh {
	m := &mesh.Mesh{}
	gw, gh, gd := f.Width-1, f.Height-1, f.Depth-1
	if gw <= 0 || gh <= 0 || gd <= 0 {
		return m
	}

	// Dual vertex index per cell, -1 while absent. Keyed by the cell's
	// linear index so face construction can tell a missing neighbor
	// apart from vertex 0.
	cellVertex := make([]int32, gw*gh*gd)
	for i := range cellVertex {
		cellVertex[i] = -1
	}

	var samples [8]float32
	for z := 0; z < gd; z++ {
		for y := 0; y < gh; y++ {
			for x := 0; x < gw; x++ {
				cell := x + y*gw + z*gw*gh

				// Classify the cube: corner bit j is set when the
				// sample there is outside (> 0).
				cornerMask := 0
				for j := 0; j < 8; j++ {
					s := f.At(x+(j&1), y+((j>>1)&1), z+((j>>2)&1))
					samples[j] = s
					if s > 0 {
						cornerMask |= 1 << uint(j)
					}
				}
				if cornerMask == 0 || cornerMask == 0xff {
					continue
				}

				edges := edgeTable[cornerMask]

				// Average the zero crossings of every crossing edge
				// into a single offset inside the cube.
				var dx, dy, dz float32
				crossings := 0
				for j, e := range cubeEdges {
					if edges&(1<<uint(j)) == 0 {
						continue
					}
					c0, c1 := e[0], e[1]
					d0, d1 := samples[c0], samples[c1]
					t := d0 / (d0 - d1)

					x0, y0, z0 := corner(c0)
					x1, y1, z1 := corner(c1)
					dx += x0 + t*(x1-x0)
					dy += y0 + t*(y1-y0)
					dz += z0 + t*(z1-z0)
					crossings++
				}
				if crossings == 0 {
					continue
				}
				inv := 1 / float32(crossings)
				// The reference renderer adds the half-voxel center
				// shift on top of the averaged crossing offset, which
				// can push the vertex past the averaged crossing point.
				// Kept as-is for output compatibility.
				px := float32(x) + 0.5 + dx*inv
				py := float32(y) + 0.5 + dy*inv
				pz := float32(z) + 0.5 + dz*inv

				nx, ny, nz := cubeNormal(&samples)

				cellVertex[cell] = int32(m.VertexCount())
				m.Vertices = append(m.Vertices, px, py, pz, nx, ny, nz)

				emitFaces(m, cellVertex, edges, cornerMask, cell, x, y, z, gw, gh)
			}
		}
	}
	return m
}

// corner returns the local 0/1 coordinates of cube corner j.
func corner(j int) (x, y, z float32) {
	return float32(j & 1), float32((j >> 1) & 1), float32((j >> 2) & 1)
}

// cubeNormal estimates the field gradient across the cube's corners by
// averaging the sample differences along each axis, then normalizes it.
// The gradient points from inside (<= 0) to outside (> 0), so it is the
// outward surface normal.
func cubeNormal(s *[8]float32) (nx, ny, nz float32) {
	nx = (s[1] - s[0] + s[3] - s[2] + s[5] - s[4] + s[7] - s[6]) / 4
	ny = (s[2] - s[0] + s[3] - s[1] + s[6] - s[4] + s[7] - s[5]) / 4
	nz = (s[4] - s[0] + s[5] - s[1] + s[6] - s[2] + s[7] - s[3]) / 4

	len2 := nx*nx + ny*ny + nz*nz
	if len2 == 0 || math32.IsNaN(len2) || math32.IsInf(len2, 0) {
		// A degenerate gradient has no direction; fall back to +z so
		// the output stays unit length.
		return 0, 0, 1
	}
	inv := 1 / math32.Sqrt(len2)
	return nx * inv, ny * inv, nz * inv
}

// emitFaces emits one quad per crossing edge incident to the cube's
// minimum corner: bit 0 (x-aligned), bit 1 (y-aligned), bit 4
// (z-aligned). Each such edge is shared by four dual cells; the quad
// connects their vertices, split along the diagonal from the current
// cell to the opposite one. Faces whose neighbor cells fall outside the
// grid or never produced a vertex are dropped.
func emitFaces(m *mesh.Mesh, cellVertex []int32, edges uint16, cornerMask, cell, x, y, z, gw, gh int) {
	quads := [3]struct {
		bit    uint16
		du, dv int // strides along the two axes perpendicular to the edge
		u, v   int // cell coordinates along those axes
	}{
		{1 << 0, gw, gw * gh, y, z}, // x edge: perpendicular y, z
		{1 << 1, gw * gh, 1, z, x},  // y edge: perpendicular z, x
		{1 << 4, 1, gw, x, y},       // z edge: perpendicular x, y
	}

	for _, q := range quads {
		if edges&q.bit == 0 {
			continue
		}
		// Neighbors on the low side do not exist at the grid boundary.
		if q.u == 0 || q.v == 0 {
			continue
		}
		v0 := cellVertex[cell]
		v1 := cellVertex[cell-q.du]
		v2 := cellVertex[cell-q.dv]
		v3 := cellVertex[cell-q.du-q.dv]
		if v1 < 0 || v2 < 0 || v3 < 0 {
			continue
		}

		// Corner 0 outside vs. inside decides the winding so that
		// triangles face away from the solid.
		if cornerMask&1 != 0 {
			m.Indices = append(m.Indices,
				uint32(v0), uint32(v3), uint32(v1),
				uint32(v0), uint32(v2), uint32(v3))
		} else {
			m.Indices = append(m.Indices,
				uint32(v0), uint32(v1), uint32(v3),
				uint32(v0), uint32(v3), uint32(v2))
		}
	}
}
