package hyper4d

// Animator owns the rotation state that crosses frame boundaries.
// Each Tick with AutoRotate on advances XW and ZW by their steps, wrapped into [0, 2π).
type Animator struct {
	Rot        Rot4
	AutoRotate bool
	StepXW     Real
	StepZW     Real
	Orbit      Real // preview camera angle around the 3D Y axis
	OrbitStep  Real
	frame      int
}

func NewAnimator(start Rot4, autoRotate bool) *Animator {
	return &Animator{
		Rot:        start,
		AutoRotate: autoRotate,
		StepXW:     AutoStepXW,
		StepZW:     AutoStepZW,
		OrbitStep:  OrbitStepY,
	}
}

// Tick advances one frame and returns the rotation to draw it with.
func (a *Animator) Tick() Rot4 {
	if a.AutoRotate {
		a.Rot.XW = WrapAngle(a.Rot.XW + a.StepXW)
		a.Rot.ZW = WrapAngle(a.Rot.ZW + a.StepZW)
	}
	a.Orbit = WrapAngle(a.Orbit + a.OrbitStep)
	a.frame++
	return a.Rot
}

// Frame returns the number of ticks so far.
func (a *Animator) Frame() int { return a.frame }

// Reset zeroes all plane angles and the orbit, keeping the step sizes.
func (a *Animator) Reset() {
	a.Rot = Rot4{}
	a.Orbit = 0
	a.frame = 0
}
