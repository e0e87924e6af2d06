package geometry

const floatSize = 4

// Attribute is one interleaved per-vertex input, bound to a shader
// layout location.
type Attribute struct {
	Name     string
	Location uint32
	Size     int32
}

// Layout describes how a vertex buffer interleaves its attributes. The mesh
// builders write data in this order and shapes declare GPU attributes from it.
type Layout struct {
	Attributes []Attribute
}

const (
	AttrPosition = "position"
	AttrColor    = "color"
	AttrNormal   = "normal"
	AttrTexCoord = "texcoord"
)

var (
	PosColor = Layout{Attributes: []Attribute{
		{Name: AttrPosition, Location: 0, Size: 3},
		{Name: AttrColor, Location: 1, Size: 3},
	}}
	PosColorTex = Layout{Attributes: []Attribute{
		{Name: AttrPosition, Location: 0, Size: 3},
		{Name: AttrColor, Location: 1, Size: 3},
		{Name: AttrTexCoord, Location: 2, Size: 2},
	}}
	PosNormalTex = Layout{Attributes: []Attribute{
		{Name: AttrPosition, Location: 0, Size: 3},
		{Name: AttrNormal, Location: 1, Size: 3},
		{Name: AttrTexCoord, Location: 2, Size: 2},
	}}
)

func (l Layout) FloatsPerVertex() int {
	n := 0
	for _, a := range l.Attributes {
		n += int(a.Size)
	}
	return n
}

// Stride is the size of one vertex in bytes.
func (l Layout) Stride() int32 {
	return int32(l.FloatsPerVertex() * floatSize)
}

// Offset is the byte offset of the i-th attribute within a vertex.
func (l Layout) Offset(i int) int {
	n := 0
	for _, a := range l.Attributes[:i] {
		n += int(a.Size)
	}
	return n * floatSize
}

func (l Layout) Index(name string) int {
	for i, a := range l.Attributes {
		if a.Name == name {
			return i
		}
	}
	return -1
}

func (l Layout) Has(name string) bool {
	return l.Index(name) >= 0
}
