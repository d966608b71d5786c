package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

type Fog struct {
	Color colorful.Color
	Near  float32
	Far   float32
}

type Environment struct {
	Background colorful.Color
	Fog        Fog
}

type DrawItem struct {
	Node  *Node
	World mgl32.Mat4
}

// Renderer receives one frame of draw items from Graph.Draw.
type Renderer interface {
	BeginFrame(env Environment, camera *OrbitControls)
	Draw(item DrawItem)
	EndFrame()
}

// Graph owns the node tree for a mounted scene.
type Graph struct {
	Root        *Node
	Environment Environment
	Camera      *OrbitControls
}

func NewGraph() *Graph {
	return &Graph{Root: NewGroup("root")}
}

// Draw composes world matrices top-down and hands every visible drawable
// node to r. Invisible nodes hide their whole subtree. It returns the
// number of items drawn.
func (g *Graph) Draw(r Renderer) int {
	r.BeginFrame(g.Environment, g.Camera)
	drawn := drawNode(r, g.Root, mgl32.Ident4())
	r.EndFrame()
	return drawn
}

func drawNode(r Renderer, n *Node, parentWorld mgl32.Mat4) int {
	if !n.Visible {
		return 0
	}
	world := parentWorld.Mul4(n.Transform.ObjectToWorld())

	drawn := 0
	if n.Drawable() {
		r.Draw(DrawItem{Node: n, World: world})
		drawn++
	}
	for _, c := range n.children {
		drawn += drawNode(r, c, world)
	}
	return drawn
}

// WorldPosition returns the node's origin in world space.
func WorldPosition(n *Node) mgl32.Vec3 {
	m := mgl32.Ident4()
	for p := n; p != nil; p = p.parent {
		m = p.Transform.ObjectToWorld().Mul4(m)
	}
	return m.Col(3).Vec3()
}

// Recorder is a headless Renderer that keeps the last frame's draw items.
type Recorder struct {
	Frames      int
	Environment Environment
	Items       []DrawItem
	counts      map[NodeKind]int
}

func NewRecorder() *Recorder {
	return &Recorder{counts: make(map[NodeKind]int)}
}

func (r *Recorder) BeginFrame(env Environment, camera *OrbitControls) {
	r.Environment = env
	r.Items = r.Items[:0]
	if r.counts == nil {
		r.counts = make(map[NodeKind]int)
	}
	clear(r.counts)
}

func (r *Recorder) Draw(item DrawItem) {
	r.Items = append(r.Items, item)
	r.counts[item.Node.Kind]++
}

func (r *Recorder) EndFrame() {
	r.Frames++
}

// Count reports how many nodes of kind were drawn in the last frame.
func (r *Recorder) Count(kind NodeKind) int {
	return r.counts[kind]
}
