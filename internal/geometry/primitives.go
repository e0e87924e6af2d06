package geometry

import "github.com/go-gl/mathgl/mgl32"

// Triangle is a vertex-colored triangle in normalized device coordinates.
// With textured set the vertices also carry texture coordinates.
func Triangle(textured bool) Mesh {
	if !textured {
		return Mesh{
			Kind:   KindTriangle,
			Layout: PosColor,
			Vertices: []float32{
				// position       // color
				-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom left
				0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom right
				0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top
			},
		}
	}
	return Mesh{
		Kind:   KindTriangle,
		Layout: PosColorTex,
		Vertices: []float32{
			-0.5, -0.5, 0.0, 1.0, 0.0, 0.0, 0.0, 0.0,
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0,
			0.0, 0.5, 0.0, 0.0, 0.0, 1.0, 0.5, 1.0,
		},
	}
}

// QuadIndices draws the quad as two triangles sharing the 1-3 diagonal.
var QuadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

func Quad() Mesh {
	return Mesh{
		Kind:   KindQuad,
		Layout: PosColorTex,
		Vertices: []float32{
			// position       // color       // texcoord
			0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
			0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
			-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
			-0.5, 0.5, 0.0, 1.0, 1.0, 1.0, 0.0, 1.0, // top left
		},
		Indices: append([]uint32(nil), QuadIndices...),
	}
}

const (
	cubeFaces       = 6
	verticesPerFace = 4
)

// Cube builds a box centered on the origin. Each face has its own four
// vertices so it can carry a flat normal; faces are ordered +Z, -Z, +X, -X,
// +Y, -Y and wound 0-1-3 / 1-2-3 within the face.
func Cube(size mgl32.Vec3) Mesh {
	w, h, d := size.X()/2, size.Y()/2, size.Z()/2

	vertices := []float32{
		// front (+Z)
		// position      // normal    // texcoord
		w, h, d, 0, 0, 1, 1, 1,
		w, -h, d, 0, 0, 1, 1, 0,
		-w, -h, d, 0, 0, 1, 0, 0,
		-w, h, d, 0, 0, 1, 0, 1,

		// back (-Z)
		w, h, -d, 0, 0, -1, 0, 1,
		w, -h, -d, 0, 0, -1, 0, 0,
		-w, -h, -d, 0, 0, -1, 1, 0,
		-w, h, -d, 0, 0, -1, 1, 1,

		// right (+X)
		w, h, -d, 1, 0, 0, 1, 1,
		w, -h, -d, 1, 0, 0, 1, 0,
		w, -h, d, 1, 0, 0, 0, 0,
		w, h, d, 1, 0, 0, 0, 1,

		// left (-X)
		-w, h, d, -1, 0, 0, 1, 1,
		-w, -h, d, -1, 0, 0, 1, 0,
		-w, -h, -d, -1, 0, 0, 0, 0,
		-w, h, -d, -1, 0, 0, 0, 1,

		// top (+Y)
		w, h, -d, 0, 1, 0, 1, 0,
		-w, h, -d, 0, 1, 0, 0, 0,
		-w, h, d, 0, 1, 0, 0, 1,
		w, h, d, 0, 1, 0, 1, 1,

		// bottom (-Y)
		w, -h, d, 0, -1, 0, 1, 0,
		-w, -h, d, 0, -1, 0, 0, 0,
		-w, -h, -d, 0, -1, 0, 0, 1,
		w, -h, -d, 0, -1, 0, 1, 1,
	}

	indices := make([]uint32, 0, cubeFaces*len(QuadIndices))
	for face := range cubeFaces {
		base := uint32(face * verticesPerFace)
		for _, i := range QuadIndices {
			indices = append(indices, base+i)
		}
	}

	return Mesh{
		Kind:     KindCube,
		Layout:   PosNormalTex,
		Vertices: vertices,
		Indices:  indices,
	}
}
