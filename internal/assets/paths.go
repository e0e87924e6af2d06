package assets

import "path/filepath"

const (
	ShaderDir  = "shaders"
	TextureDir = "textures"

	VertexExt   = ".vert"
	FragmentExt = ".frag"
	TextureExt  = ".png"
)

// Resolver maps asset names to files under Root.
type Resolver struct {
	Root string
}

func NewResolver(root string) Resolver {
	if root == "" {
		root = "assets"
	}
	return Resolver{Root: root}
}

// ShaderPaths returns <root>/shaders/<name>.vert and <root>/shaders/<name>.frag.
func (r Resolver) ShaderPaths(name string) (vertex, fragment string) {
	base := filepath.Join(r.Root, ShaderDir, name)
	return base + VertexExt, base + FragmentExt
}

func (r Resolver) TexturePath(name string) string {
	return filepath.Join(r.Root, TextureDir, name+TextureExt)
}

func (r Resolver) ShaderRoot() string {
	return filepath.Join(r.Root, ShaderDir)
}
