package scene

// Vertex layouts, in float32 components per vertex
const (
	CubeStride  = 6 // position, normal
	PlaneStride = 8 // position, normal, uv
)

// CubeVertices returns a unit cube centered at the origin, four vertices per
// face so each face carries its own normal. Faces wind counter-clockwise
// seen from outside.
func CubeVertices() []float32 {
	return []float32{
		// back (-Z)
		-0.5, -0.5, -0.5, 0, 0, -1,
		-0.5, 0.5, -0.5, 0, 0, -1,
		0.5, 0.5, -0.5, 0, 0, -1,
		0.5, -0.5, -0.5, 0, 0, -1,
		// front (+Z)
		-0.5, -0.5, 0.5, 0, 0, 1,
		0.5, -0.5, 0.5, 0, 0, 1,
		0.5, 0.5, 0.5, 0, 0, 1,
		-0.5, 0.5, 0.5, 0, 0, 1,
		// left (-X)
		-0.5, 0.5, 0.5, -1, 0, 0,
		-0.5, 0.5, -0.5, -1, 0, 0,
		-0.5, -0.5, -0.5, -1, 0, 0,
		-0.5, -0.5, 0.5, -1, 0, 0,
		// right (+X)
		0.5, 0.5, 0.5, 1, 0, 0,
		0.5, -0.5, 0.5, 1, 0, 0,
		0.5, -0.5, -0.5, 1, 0, 0,
		0.5, 0.5, -0.5, 1, 0, 0,
		// bottom (-Y)
		-0.5, -0.5, -0.5, 0, -1, 0,
		0.5, -0.5, -0.5, 0, -1, 0,
		0.5, -0.5, 0.5, 0, -1, 0,
		-0.5, -0.5, 0.5, 0, -1, 0,
		// top (+Y)
		-0.5, 0.5, -0.5, 0, 1, 0,
		-0.5, 0.5, 0.5, 0, 1, 0,
		0.5, 0.5, 0.5, 0, 1, 0,
		0.5, 0.5, -0.5, 0, 1, 0,
	}
}

// CubeIndices returns two triangles per face
func CubeIndices() []uint32 {
	indices := make([]uint32, 0, 36)
	for face := uint32(0); face < 6; face++ {
		base := face * 4
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}
	return indices
}

// PlaneVertices returns a unit quad facing +Y, slightly above y=0
func PlaneVertices() []float32 {
	return []float32{
		-0.5, 0.25, -0.5, 0, 1, 0, 0, 0,
		0.5, 0.25, -0.5, 0, 1, 0, 1, 0,
		0.5, 0.25, 0.5, 0, 1, 0, 1, 1,
		-0.5, 0.25, 0.5, 0, 1, 0, 0, 1,
	}
}

func PlaneIndices() []uint32 {
	return []uint32{
		0, 1, 2,
		2, 3, 0,
	}
}
