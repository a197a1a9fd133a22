package gltfexport

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"emd-renderer/internal/emd"
)

// BuildDocument converts decoded EMD objects into a glTF 2.0 document,
// one mesh and node per object. Objects without both vertices and faces
// are skipped: glTF primitives need geometry on both sides.
func BuildDocument(m *emd.Model) *gltf.Document {
	doc := &gltf.Document{
		Asset: gltf.Asset{
			Version:   "2.0",
			Generator: "emd-renderer",
		},
		Scenes:  []*gltf.Scene{{Name: "emd"}},
		Buffers: []*gltf.Buffer{{}},
	}
	doc.Scene = gltf.Index(0)

	for i, obj := range m.Objects {
		if len(obj.Verts) == 0 || len(obj.Faces) == 0 {
			continue
		}

		indices := make([]uint32, 0, len(obj.Faces)*3)
		for _, f := range obj.Faces {
			indices = append(indices, f[0], f[1], f[2])
		}

		pos := modeler.WritePosition(doc, obj.Verts)
		idx := modeler.WriteIndices(doc, indices)

		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: fmt.Sprintf("object_%d", i),
			Primitives: []*gltf.Primitive{{
				Indices:    gltf.Index(idx),
				Attributes: map[string]uint32{gltf.POSITION: pos},
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: fmt.Sprintf("object_%d", i),
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}

	return doc
}

// Save writes the model as glTF. A .glb extension selects the binary
// container, anything else the JSON form.
func Save(m *emd.Model, path string) error {
	doc := BuildDocument(m)
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		if err := gltf.SaveBinary(doc, path); err != nil {
			return fmt.Errorf("gltfexport: save %s: %w", path, err)
		}
		return nil
	}
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("gltfexport: save %s: %w", path, err)
	}
	return nil
}
