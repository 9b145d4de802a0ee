package voxeltrace

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

type MarchLog struct {
	State     MarchState
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
	Point     mgl32.Vec3 // last improving sample
	Steps     int
	Distance  float32 // distance travelled
}

type MarchLogCache struct {
	mu   sync.Mutex
	logs map[string][]MarchLog // keyed by state name
}

var marchCache = &MarchLogCache{
	logs: make(map[string][]MarchLog),
}

func logMarch(ray Ray, hit RayHit, stats MarchStats) {
	marchCache.mu.Lock()
	defer marchCache.mu.Unlock()
	name := stats.State.String()
	marchCache.logs[name] = append(marchCache.logs[name], MarchLog{
		State:     stats.State,
		Origin:    ray.Origin,
		Direction: ray.Direction,
		Point:     hit.Position,
		Steps:     stats.Steps,
		Distance:  stats.Travelled,
	})
}

// marchCounts returns the number of logged rays per terminal state.
func marchCounts() map[string]int {
	marchCache.mu.Lock()
	defer marchCache.mu.Unlock()
	out := make(map[string]int, len(marchCache.logs))
	for k, v := range marchCache.logs {
		out[k] = len(v)
	}
	return out
}

func resetMarchLog() {
	marchCache.mu.Lock()
	marchCache.logs = make(map[string][]MarchLog)
	marchCache.mu.Unlock()
}

func marchStats() {
	counts := marchCounts()
	names := make([]string, 0, len(counts))
	for k := range counts {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		fmt.Printf("March state %s: %d rays\n", k, counts[k])
	}
}
