package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutStride(t *testing.T) {
	cases := []struct {
		name    string
		layout  Layout
		floats  int
		stride  int32
		offsets []int
	}{
		{"pos+color", PosColor, 6, 24, []int{0, 12}},
		{"pos+color+tex", PosColorTex, 8, 32, []int{0, 12, 24}},
		{"pos+normal+tex", PosNormalTex, 8, 32, []int{0, 12, 24}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.floats, c.layout.FloatsPerVertex())
			assert.Equal(t, c.stride, c.layout.Stride())
			for i, want := range c.offsets {
				assert.Equal(t, want, c.layout.Offset(i))
			}
		})
	}

	assert.True(t, PosNormalTex.Has(AttrNormal))
	assert.False(t, PosColorTex.Has(AttrNormal))
	assert.Equal(t, -1, PosColor.Index(AttrTexCoord))
}

func TestTriangle(t *testing.T) {
	for _, textured := range []bool{false, true} {
		m := Triangle(textured)
		require.NoError(t, m.Validate())
		assert.Equal(t, 3, m.VertexCount())
		assert.False(t, m.Indexed())
		assert.Equal(t, int32(3), m.DrawCount())
		assert.Equal(t, textured, m.Layout.Has(AttrTexCoord))
	}
}

func TestQuadIndices(t *testing.T) {
	m := Quad()
	require.NoError(t, m.Validate())
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, int32(6), m.DrawCount())
	assert.Equal(t, []uint32{0, 1, 3, 1, 2, 3}, m.Indices)

	seen := map[uint32]bool{}
	for _, i := range m.Indices {
		assert.LessOrEqual(t, i, uint32(3))
		seen[i] = true
	}
	assert.Len(t, seen, 4)

	// the two triangles share exactly the 1-3 edge
	first := map[uint32]bool{m.Indices[0]: true, m.Indices[1]: true, m.Indices[2]: true}
	var shared []uint32
	for _, i := range m.Indices[3:] {
		if first[i] {
			shared = append(shared, i)
		}
	}
	assert.ElementsMatch(t, []uint32{1, 3}, shared)
}

func TestQuadDoesNotAliasIndices(t *testing.T) {
	m := Quad()
	m.Indices[0] = 99
	assert.Equal(t, uint32(0), QuadIndices[0])
}

func TestCubeTopology(t *testing.T) {
	sizes := []mgl32.Vec3{{1, 1, 1}, {2, 0.5, 3}, {0.2, 0.2, 0.2}, {10, 10, 10}}
	axes := []mgl32.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}

	for _, size := range sizes {
		m := Cube(size)
		require.NoError(t, m.Validate())
		assert.Equal(t, 24, m.VertexCount())
		assert.Len(t, m.Indices, 36)
		assert.Equal(t, Cube(mgl32.Vec3{1, 1, 1}).Indices, m.Indices)

		for v := 0; v < m.VertexCount(); v++ {
			n := m.Attribute(v, AttrNormal)
			require.Len(t, n, 3)
			normal := mgl32.Vec3{n[0], n[1], n[2]}
			assert.Contains(t, axes, normal)

			p := m.Attribute(v, AttrPosition)
			assert.InDelta(t, size.X()/2, abs(p[0]), 1e-6)
			assert.InDelta(t, size.Y()/2, abs(p[1]), 1e-6)
			assert.InDelta(t, size.Z()/2, abs(p[2]), 1e-6)
		}
	}
}

func TestCubeFacesShareNormal(t *testing.T) {
	m := Cube(mgl32.Vec3{1, 1, 1})
	faceNormals := make([]mgl32.Vec3, 0, 6)
	for face := 0; face < 6; face++ {
		first := m.Attribute(face*4, AttrNormal)
		for v := face * 4; v < face*4+4; v++ {
			assert.Equal(t, first, m.Attribute(v, AttrNormal))
		}
		faceNormals = append(faceNormals, mgl32.Vec3{first[0], first[1], first[2]})

		// each face only indexes its own four vertices
		for _, i := range m.Indices[face*6 : face*6+6] {
			assert.GreaterOrEqual(t, int(i), face*4)
			assert.Less(t, int(i), face*4+4)
		}
	}
	assert.Equal(t, []mgl32.Vec3{{0, 0, 1}, {0, 0, -1}, {1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}}, faceNormals)
}

func TestValidate(t *testing.T) {
	m := Quad()
	m.Vertices = m.Vertices[:len(m.Vertices)-1]
	assert.ErrorIs(t, m.Validate(), ErrRaggedVertices)

	m = Quad()
	m.Indices = []uint32{0, 1, 4, 1, 2, 3}
	assert.ErrorIs(t, m.Validate(), ErrIndexRange)

	m = Triangle(false)
	m.Indices = []uint32{0, 1, 2}
	assert.ErrorIs(t, m.Validate(), ErrTopology)

	assert.ErrorIs(t, Mesh{Kind: KindCube}.Validate(), ErrEmptyLayout)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "cube", KindCube.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestTransform(t *testing.T) {
	origin := mgl32.Vec4{0, 0, 0, 1}
	m := Transform(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(90))
	assert.True(t, m.Mul4x1(origin).ApproxEqualThreshold(mgl32.Vec4{1, 2, 3, 1}, 1e-6))

	// rotation is applied before translation: +X rotates to -Z, then moves
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	assert.True(t, got.ApproxEqualThreshold(mgl32.Vec4{1, 2, 2, 1}, 1e-5), "%v", got)

	assert.Equal(t, mgl32.Translate3D(1, 0, 0), Transform(mgl32.Vec3{1, 0, 0}, mgl32.Vec3{}, 1))
	assert.Equal(t, mgl32.Ident4(), Transform(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, 0))

	s := Scaled(mgl32.Translate3D(1, 0, 0), 0.2)
	got = s.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	assert.True(t, got.ApproxEqualThreshold(mgl32.Vec4{1.2, 0.2, 0.2, 1}, 1e-6), "%v", got)
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
