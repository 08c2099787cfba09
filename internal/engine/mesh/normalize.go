package mesh

// TargetFootprint is the canonical horizontal extent imported assets
// are scaled to.
const TargetFootprint = 20.0

// FootprintScale returns the uniform scale factor that fits the mesh's
// horizontal footprint to TargetFootprint. The vertical extent is
// deliberately excluded so tall or short assets are not squashed or
// stretched by height. Recomputing on an unchanged mesh yields the same
// factor.
func FootprintScale(b Bounds) float32 {
	size := b.Size()

	maxDim := size.X
	if size.Z > maxDim {
		maxDim = size.Z
	}
	if maxDim <= 0 {
		return 1
	}

	return TargetFootprint / maxDim
}
