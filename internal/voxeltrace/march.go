package voxeltrace

import "github.com/go-gl/mathgl/mgl32"

// MarchState is the state of a single ray's sphere trace.
type MarchState uint8

const (
	Marching        MarchState = iota // still stepping
	Hit                               // surface found and shaded
	MissMaxSteps                      // step budget exhausted
	MissMaxDistance                   // travelled past MaxDistance
	MissNearField                     // travelled distance decayed below NearEpsilon
)

func (s MarchState) String() string {
	switch s {
	case Marching:
		return "marching"
	case Hit:
		return "hit"
	case MissMaxSteps:
		return "miss_max_steps"
	case MissMaxDistance:
		return "miss_max_distance"
	case MissNearField:
		return "miss_near_field"
	default:
		return "unknown"
	}
}

// MarchStats instruments one CastRay call.
type MarchStats struct {
	State       MarchState
	Steps       int     // loop iterations executed
	Evaluations int     // distance field evaluations, normal samples included
	Travelled   float32 // distance along the unit direction at termination
}

// Tracer renders one frame's worth of inputs. Its fields are read-only
// while a frame is in flight.
type Tracer struct {
	Uniforms Uniforms
	Camera   Camera
	Grid     *VoxelGrid

	// cached
	voxels []Voxel
}

// NewTracer validates the frame inputs and binds them to a tracer.
func NewTracer(u Uniforms, cam Camera, grid *VoxelGrid) (*Tracer, error) {
	if err := u.Validate(grid, cam); err != nil {
		return nil, err
	}
	t := &Tracer{
		Uniforms: u,
		Camera:   cam,
		Grid:     grid,
		voxels:   grid.Active(u.VoxelAmount),
	}
	DebugLog("Created tracer: %dx%d, steps=%d, voxels=%d/%d, camera=%+v", u.Resolution[0], u.Resolution[1], u.MaxSteps, u.VoxelAmount, grid.Len(), cam)
	return t, nil
}

// CastRay sphere-traces ray against the voxel field and returns the
// resolved hit. On a hit the colour is shaded; on any miss it is the
// background colour. The step budget doubles as the initial best distance.
// Steps are taken along the normalized ray direction, so
// MarchStats.Travelled is a distance along the unit direction, not a
// multiple of ray.Direction.
func (t *Tracer) CastRay(ray Ray) (RayHit, MarchStats) {
	u := &t.Uniforms
	stats := MarchStats{State: Marching}
	dir := safeNorm(ray.Direction, mgl32.Vec3{})

	hit := RayHit{Distance: float32(u.MaxSteps), Color: u.BackgroundColor}
	hit = Map(ray.Origin, hit, t.voxels, u.VoxelAmount)
	stats.Evaluations++
	travelled := hit.Distance
	hit.Color = u.BackgroundColor

	for stats.Steps < int(u.MaxSteps) {
		if !(travelled > NearEpsilon) {
			stats.State = MissNearField
			break
		}
		stats.Steps++
		p := ray.Origin.Add(dir.Mul(travelled))
		hit = Map(p, hit, t.voxels, u.VoxelAmount)
		stats.Evaluations++
		if hit.Distance < HitEpsilon {
			n := estimateNormal(hit, t.voxels, u.VoxelAmount)
			stats.Evaluations += 6
			hit.Color = shade(hit, n, u)
			stats.State = Hit
			stats.Travelled = travelled
			if Debug {
				logMarch(ray, hit, stats)
			}
			return hit, stats
		}
		if travelled > MaxDistance {
			stats.State = MissMaxDistance
			break
		}
		travelled += hit.Distance
	}
	if stats.State == Marching {
		stats.State = MissMaxSteps
	}
	stats.Travelled = travelled
	hit.Color = missColor(u)
	if Debug {
		logMarch(ray, hit, stats)
	}
	return hit, stats
}

// Pixel resolves the colour of pixel (x, y). It depends only on the
// tracer's inputs and the coordinates.
func (t *Tracer) Pixel(x, y int) mgl32.Vec4 {
	uv := PixelUV(x, y, t.Uniforms.Width(), t.Uniforms.Height())
	hit, _ := t.CastRay(t.Camera.Ray(uv))
	return hit.Color
}
