package hybridastar

import (
	"fmt"
	"math"

	"github.com/pdrpinto/hybridastar/internal"
)

// Pose is the continuous state of the vehicle. Heading is in radians,
// normalized to (-pi, pi].
type Pose struct {
	X       float64
	Y       float64
	Heading float64
}

// NewPose builds a Pose with a normalized heading.
func NewPose(x, y, heading float64) Pose {
	return Pose{X: x, Y: y, Heading: NormalizeHeading(heading)}
}

// NormalizeHeading maps any finite angle into (-pi, pi].
func NormalizeHeading(heading float64) float64 {
	return internal.NormalizeAngle(heading)
}

// DistanceTo returns the planar Euclidean distance between two poses.
func (p Pose) DistanceTo(other Pose) float64 {
	return math.Hypot(other.X-p.X, other.Y-p.Y)
}

// Advance turns by delta and then drives the given distance along the new
// heading. The receiver is not modified.
func (p Pose) Advance(delta, distance float64) Pose {
	heading := NormalizeHeading(p.Heading + delta)
	return Pose{
		X:       p.X + distance*math.Cos(heading),
		Y:       p.Y + distance*math.Sin(heading),
		Heading: heading,
	}
}

func (p Pose) String() string {
	return fmt.Sprintf("%f %f %f", p.X, p.Y, p.Heading)
}

// DiscretizationKey is the grid cell and heading bucket a Pose falls into.
// Poses sharing a key are treated as the same visited state.
type DiscretizationKey struct {
	CellX         int
	CellY         int
	HeadingBucket int
}

// Discretizer quantizes poses for closed-set bookkeeping.
// A zero HeadingBucketWidth keys on position only.
type Discretizer struct {
	CellSize           float64
	HeadingBucketWidth float64
}

// Discretize returns the key of p. It depends only on p and the receiver.
func (d Discretizer) Discretize(p Pose) DiscretizationKey {
	cellSize := d.CellSize
	if cellSize <= 0 {
		cellSize = 1
	}
	key := DiscretizationKey{
		CellX: internal.RoundToInt(p.X / cellSize),
		CellY: internal.RoundToInt(p.Y / cellSize),
	}
	if d.HeadingBucketWidth > 0 {
		buckets := internal.RoundToInt(2 * math.Pi / d.HeadingBucketWidth)
		bucket := internal.RoundToInt(NormalizeHeading(p.Heading) / d.HeadingBucketWidth)
		key.HeadingBucket = internal.FloorMod(bucket, buckets)
	}
	return key
}
