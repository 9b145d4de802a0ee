package voxeltrace

// Defaults mirror the original interactive application.
const (
	ResolutionX      = 1080
	ResolutionY      = 1080
	MaxSteps         = 50
	SunIntensity     = 1.0
	AmbientOcclusion = 20
	Zoom             = 1.0
	PNGOut           = "frame.png"
	GIFOut           = "orbit.gif"
	RAWOut           = "frame.raw.zst"
	GIFFrames        = 36
	GIFDelay         = 5 // 100ths of a second per frame
	OrbitStepDeg     = 10
	CoverageProbes   = 4096

	// render-space box half-extent of a single voxel; grid step is twice this
	VoxelSize = 0.16
	// distance below which a sample counts as a surface hit
	HitEpsilon = 0.001
	// loop guard: marching stops once travelled distance decays below this
	NearEpsilon = 0.01
	// hard far limit on travelled distance
	MaxDistance = 1000.0
	// central-difference step for normal estimation
	NormalEpsilon = 0.001
	// focal plane sits at zoom minus this offset in front of the camera
	FocalOffset = 0.1
	// sun intensity is scaled down by this before being added as ambient
	SunDivisor = 10.0
	// squared length below which a vector is treated as zero
	epsLen2 = 1e-24
)
