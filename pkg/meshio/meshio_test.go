package meshio

import (
	"bytes"
	"encoding/json"
	"image"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/densitymesh/pkg/densitymesh"
)

func squareMesh() *densitymesh.Mesh {
	return &densitymesh.Mesh{
		Points: []densitymesh.Coord{
			densitymesh.C(0, 0),
			densitymesh.C(1, 0),
			densitymesh.C(1, 1),
			densitymesh.C(0, 1),
		},
		Triangles: []densitymesh.Triangle{
			{A: 0, B: 1, C: 2},
			{A: 0, B: 2, C: 3},
		},
	}
}

func TestEncodeOBJ(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeOBJ(&buf, squareMesh()); err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	want := `v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`
	if got := buf.String(); got != want {
		t.Errorf("unexpected OBJ output:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeJSON(t *testing.T) {
	mesh := squareMesh()
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, mesh); err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	var decoded densitymesh.Mesh
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !reflect.DeepEqual(&decoded, mesh) {
		t.Errorf("decoded mesh differs: %+v", decoded)
	}

	if !bytes.Contains(buf.Bytes(), []byte(`"points"`)) {
		t.Error("expected points key in JSON output")
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"triangles"`)) {
		t.Error("expected triangles key in JSON output")
	}
}

func TestEncodeJSONIndent(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeJSONIndent(&buf, squareMesh()); err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("\n  ")) {
		t.Error("expected indented JSON output")
	}
}

func TestEncodeYAML(t *testing.T) {
	mesh := squareMesh()
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, mesh); err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	var decoded densitymesh.Mesh
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !reflect.DeepEqual(&decoded, mesh) {
		t.Errorf("decoded mesh differs: %+v", decoded)
	}
}

func TestRenderPNG(t *testing.T) {
	background := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	img := RenderPNG(squareMesh(), background)

	bounds := img.Bounds()
	if bounds.Dx() != 16 || bounds.Dy() != 16 {
		t.Errorf("expected 16x16 composite, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}
