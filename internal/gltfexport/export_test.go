package gltfexport

import (
	"testing"

	"github.com/qmuntal/gltf"

	"emd-renderer/internal/emd"
)

func TestBuildDocument(t *testing.T) {
	m := &emd.Model{Objects: []emd.Object{
		{
			Verts: [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			Faces: [][3]uint32{{0, 1, 2}},
		},
		{}, // no geometry, must be skipped
	}}

	doc := BuildDocument(m)
	if len(doc.Meshes) != 1 {
		t.Fatalf("got %d meshes, want 1", len(doc.Meshes))
	}
	if len(doc.Nodes) != 1 || len(doc.Scenes[0].Nodes) != 1 {
		t.Errorf("nodes = %d, scene nodes = %d, want 1/1",
			len(doc.Nodes), len(doc.Scenes[0].Nodes))
	}
	// One position accessor and one index accessor
	if len(doc.Accessors) != 2 {
		t.Errorf("got %d accessors, want 2", len(doc.Accessors))
	}

	prim := doc.Meshes[0].Primitives[0]
	if prim.Indices == nil {
		t.Fatal("primitive has no indices accessor")
	}
	if _, ok := prim.Attributes[gltf.POSITION]; !ok {
		t.Error("primitive has no POSITION attribute")
	}
}

func TestBuildDocumentEmptyModel(t *testing.T) {
	doc := BuildDocument(&emd.Model{})
	if len(doc.Meshes) != 0 || len(doc.Nodes) != 0 {
		t.Errorf("got %d meshes %d nodes, want none", len(doc.Meshes), len(doc.Nodes))
	}
	if doc.Scene == nil || len(doc.Scenes) != 1 {
		t.Error("document must still carry a default scene")
	}
}
