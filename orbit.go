package universe

import (
	"math"

	"github.com/gekko3d/universe/scene"
)

const (
	PlanetAngularVelocity = 0.2
	RingAngularVelocity   = 0.4
	BeltAngularVelocity   = -0.12
)

type RotationState struct {
	Angle float32
}

// Advance returns the angle after turning at angularVelocity rad/s for
// deltaTime seconds, wrapped into [0, 2π).
func Advance(state RotationState, deltaTime, angularVelocity float32) float32 {
	a := math.Mod(float64(state.Angle)+float64(deltaTime)*float64(angularVelocity), 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return float32(a)
}

// OrbitAnimator spins one group about +Y. It only touches its own
// target's rotation, so animators can run in any order.
type OrbitAnimator struct {
	State           RotationState
	AngularVelocity float32
	Target          *scene.Node
}

func NewOrbitAnimator(target *scene.Node, angularVelocity float32) *OrbitAnimator {
	return &OrbitAnimator{Target: target, AngularVelocity: angularVelocity}
}

func (a *OrbitAnimator) Tick(deltaTime float32) {
	if deltaTime <= 0 {
		return
	}
	a.State.Angle = Advance(a.State, deltaTime, a.AngularVelocity)
	if a.Target != nil {
		a.Target.SetYaw(a.State.Angle)
	}
}

func (a *OrbitAnimator) Reset() {
	a.State = RotationState{}
	if a.Target != nil {
		a.Target.SetYaw(0)
	}
}
