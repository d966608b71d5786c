package universe

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gekko3d/universe/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// NodeData is the serialized form of one scene node.
type NodeData struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Kind     string     `json:"kind"`
	ParentID string     `json:"parent_id,omitempty"`
	Position mgl32.Vec3 `json:"position"`
	Rotation mgl32.Quat `json:"rotation"`
	Scale    mgl32.Vec3 `json:"scale"`
	Visible  bool       `json:"visible"`
	Geometry string     `json:"geometry,omitempty"`
	Material string     `json:"material,omitempty"`
	Texture  string     `json:"texture,omitempty"`
	Points   int        `json:"points,omitempty"`
}

type SnapshotData struct {
	Screen string     `json:"screen"`
	Nodes  []NodeData `json:"nodes"`
}

// Snapshot flattens the tree under root, parents before children.
func Snapshot(screen Screen, root *scene.Node) SnapshotData {
	data := SnapshotData{Screen: screen.String()}
	root.Walk(func(n *scene.Node) bool {
		nd := NodeData{
			ID:       n.ID,
			Name:     n.Name,
			Kind:     n.Kind.String(),
			Position: n.Transform.Position,
			Rotation: n.Transform.Rotation,
			Scale:    n.Transform.Scale,
			Visible:  n.Visible,
			Points:   len(n.Points),
		}
		if p := n.Parent(); p != nil {
			nd.ParentID = p.ID
		}
		if n.Geometry != nil {
			nd.Geometry = n.Geometry.GeometryName()
		}
		if n.Drawable() {
			nd.Material = n.Material.Kind.String()
		}
		if n.Material.Map != nil {
			nd.Texture = n.Material.Map.Ref
		}
		data.Nodes = append(data.Nodes, nd)
		return true
	})
	return data
}

func WriteSnapshot(w io.Writer, screen Screen, root *scene.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Snapshot(screen, root)); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// SaveSnapshot writes the app's current scene graph to filename as JSON.
func SaveSnapshot(app *App, filename string) error {
	graph, ok := Resource[scene.Graph](app)
	if !ok {
		return fmt.Errorf("no scene graph installed")
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteSnapshot(f, app.Screen(), graph.Root); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
