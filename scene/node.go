package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
)

type NodeKind uint8

const (
	KindGroup NodeKind = iota
	KindMesh
	KindBillboard
	KindLight
	KindPoints
)

func (k NodeKind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindMesh:
		return "mesh"
	case KindBillboard:
		return "billboard"
	case KindLight:
		return "light"
	case KindPoints:
		return "points"
	}
	return "unknown"
}

type LightKind uint8

const (
	LightAmbient LightKind = iota
	LightDirectional
	LightPoint
)

type Light struct {
	Kind      LightKind
	Color     colorful.Color
	Intensity float32
}

// Node is one element of the scene tree. Animators mutate Transform in
// place; the draw pass composes world matrices from the root down.
type Node struct {
	ID        string
	Name      string
	Kind      NodeKind
	Transform Transform
	Visible   bool

	Geometry Geometry
	Material Material
	Light    *Light
	Points   []mgl32.Vec3

	parent   *Node
	children []*Node
}

func newNode(name string, kind NodeKind) *Node {
	return &Node{
		ID:        uuid.NewString(),
		Name:      name,
		Kind:      kind,
		Transform: NewTransform(),
		Visible:   true,
	}
}

func NewGroup(name string) *Node {
	return newNode(name, KindGroup)
}

func NewMesh(name string, geometry Geometry, material Material) *Node {
	n := newNode(name, KindMesh)
	n.Geometry = geometry
	n.Material = material
	return n
}

// NewBillboard creates a unit quad showing tex. Its scale is left at one
// until something sizes it to the image aspect.
func NewBillboard(name string, tex *Texture) *Node {
	n := newNode(name, KindBillboard)
	n.Geometry = PlaneGeometry{Width: 1, Height: 1}
	n.Material = TextureMaterial(tex)
	return n
}

func NewLight(name string, light Light) *Node {
	n := newNode(name, KindLight)
	n.Light = &light
	return n
}

func NewPoints(name string, points []mgl32.Vec3, material Material) *Node {
	n := newNode(name, KindPoints)
	n.Points = points
	n.Material = material
	return n
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Add appends children, detaching each from its previous parent first.
func (n *Node) Add(children ...*Node) *Node {
	for _, child := range children {
		if child == nil || child == n {
			continue
		}
		child.Detach()
		child.parent = n
		n.children = append(n.children, child)
	}
	return n
}

func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

func (n *Node) Detach() {
	if n.parent != nil {
		n.parent.Remove(n)
	}
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Name == name {
			found = c
			return false
		}
		return true
	})
	return found
}

// Count returns the number of nodes of kind in the subtree rooted at n.
func (n *Node) Count(kind NodeKind) int {
	count := 0
	n.Walk(func(c *Node) bool {
		if c.Kind == kind {
			count++
		}
		return true
	})
	return count
}

func (n *Node) SetYaw(angle float32) {
	n.Transform.Rotation = Yaw(angle)
}

func (n *Node) Drawable() bool {
	switch n.Kind {
	case KindMesh, KindBillboard, KindPoints:
		return true
	}
	return false
}
