package scene

type Geometry interface {
	GeometryName() string
}

type SphereGeometry struct {
	Radius         float32
	WidthSegments  int
	HeightSegments int
}

func (SphereGeometry) GeometryName() string { return "sphere" }

type TorusGeometry struct {
	Radius          float32
	Tube            float32
	RadialSegments  int
	TubularSegments int
}

func (TorusGeometry) GeometryName() string { return "torus" }

// PlaneGeometry is a unit quad by default; billboards scale it to the
// image aspect instead of changing its size.
type PlaneGeometry struct {
	Width  float32
	Height float32
}

func (PlaneGeometry) GeometryName() string { return "plane" }
