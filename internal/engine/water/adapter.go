package water

import (
	"fmt"

	"github.com/calmsea/wavetank/pkg/wave"
)

// Adapter bundles everything the render loop needs from the water
// surface: the mesh buffers with their strip layout, and the normal and
// caustic textures. All resources are allocated here and released
// together by Destroy.
type Adapter struct {
	mesh      *Mesh
	normalMap *Texture
	caustic   *Texture
}

// NewAdapter builds the surface geometry at t=0, uploads it, and
// synthesizes both textures. Any allocation failure tears down whatever
// was already created.
func NewAdapter(set *wave.Set, patch wave.Patch, caustics wave.CausticOptions) (*Adapter, error) {
	geo, err := wave.NewGeometry(set, patch)
	if err != nil {
		return nil, err
	}

	a := &Adapter{}

	a.mesh, err = NewMesh(geo)
	if err != nil {
		return nil, fmt.Errorf("surface mesh: %w", err)
	}

	a.normalMap, err = UploadRGB(wave.NormalMap(set, patch), patch.NX, patch.NZ)
	if err != nil {
		a.Destroy()
		return nil, fmt.Errorf("normal map: %w", err)
	}

	a.caustic, err = UploadRGB(wave.CausticMap(set, patch, caustics), patch.NX, patch.NZ)
	if err != nil {
		a.Destroy()
		return nil, fmt.Errorf("caustic map: %w", err)
	}

	return a, nil
}

// Update rewrites the vertex buffer for simulation time t.
func (a *Adapter) Update(t float32) {
	a.mesh.Update(t)
}

// Mesh returns the surface mesh.
func (a *Adapter) Mesh() *Mesh {
	return a.mesh
}

// Patch returns the meshed patch.
func (a *Adapter) Patch() wave.Patch {
	return a.mesh.Geometry().Patch()
}

// NormalMap returns the packed-normal texture.
func (a *Adapter) NormalMap() *Texture {
	return a.normalMap
}

// Caustic returns the caustic intensity texture.
func (a *Adapter) Caustic() *Texture {
	return a.caustic
}

// Destroy releases the mesh and both textures.
func (a *Adapter) Destroy() {
	if a.mesh != nil {
		a.mesh.Destroy()
	}
	if a.normalMap != nil {
		a.normalMap.Destroy()
	}
	if a.caustic != nil {
		a.caustic.Destroy()
	}
}
