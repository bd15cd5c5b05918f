package hyper4d

// Real is the scalar type used throughout the engine.
type Real = float64

const (
	// Projection: 4D camera sits at w = Distance looking towards w = -inf.
	DefaultDistance = 3.0
	ProjectionEps   = 0.01 // |d - w| below this is treated as hitting the camera
	ProjectionClamp = 100  // scale used when the point is at the camera
	// Color mapping: w is normalized from [WRangeMin, WRangeMax] into [0,1].
	WRangeMin    = -2.0
	WRangeMax    = 2.0
	DepthMaxGray = 200 // farthest point in depth mode
	// Auto-rotation step sizes (radians per frame).
	AutoStepXW    = 0.005
	AutoStepZW    = 0.003
	OrbitStepY    = 0.002 // preview camera orbit around the 3D Y axis
	DefaultFrames = 240
	// Render settings defaults.
	DefaultOpacity    = 0.8
	DefaultVertexSize = 0.08
	DefaultLineWidth  = 2.0
	EdgeOpacityFactor = 0.8
	// Preview rasterizer.
	PreviewWidth  = 512
	PreviewHeight = 512
	PreviewFOVDeg = 50
	PreviewEyeZ   = 5
	GIFOut        = "hyper4d.gif"
	GIFDelay      = 4 // 100ths of a second per frame
	// Frame cache.
	FrameCacheSize = 1024
	// Parametric surface resolutions.
	CliffordSteps    = 24
	HyperbolicSteps  = 14
	HyperbolicRange  = 1.5
	HyperbolicScale  = 0.6
	adjacencyEpsilon = 0.01
)
