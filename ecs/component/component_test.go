package component

import "testing"

func TestVertices(t *testing.T) {
	cases := []struct {
		name  string
		kind  ShapeKind
		count int
	}{
		{"triangle", ShapeTriangle, 3},
		{"rectangle", ShapeRectangle, 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			verts := Vertices(c.kind, 10, 4)
			if len(verts) != c.count {
				t.Fatalf("expected %d vertices, got %d", c.count, len(verts))
			}
			for _, v := range verts {
				if v[0] != -5 && v[0] != 5 || v[1] != -2 && v[1] != 2 {
					t.Fatalf("vertex %v outside half extents", v)
				}
			}
		})
	}
}

func TestParseShapeKind(t *testing.T) {
	for _, name := range []string{"triangle", "rectangle", "box"} {
		k, ok := ParseShapeKind(name)
		if !ok {
			t.Fatalf("expected %q to parse", name)
		}
		if name != "box" && k.String() != name {
			t.Fatalf("round trip %q -> %q", name, k.String())
		}
	}
	if _, ok := ParseShapeKind("hexagon"); ok {
		t.Fatalf("unknown kinds must not parse")
	}
}

func TestHandlesAreDistinct(t *testing.T) {
	ids := map[ComponentID]bool{}
	for _, id := range []ComponentID{
		ShapeComponent.ID(),
		PhysicsBodyComponent.ID(),
		MeshComponent.ID(),
		TransformComponent.ID(),
		WallComponent.ID(),
		SpawnedComponent.ID(),
	} {
		if id == 0 || ids[id] {
			t.Fatalf("component id %d reused or zero", id)
		}
		ids[id] = true
	}
}
