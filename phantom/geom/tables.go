package geom

// Standard phantom parameter tables. All are package-level and treated as
// read-only; callers must not modify them.

// SheppLogan is the classic head model of Shepp & Logan (1974): ten ellipses
// approximating a skull, brain matter, ventricles and small tumors. The
// original intensities give very low contrast between soft-tissue features.
var SheppLogan = []Ellipse{
	{2, [2]float64{0.69, 0.92}, [2]float64{0, 0}, 0},
	{-0.98, [2]float64{0.6624, 0.8740}, [2]float64{0, -0.0184}, 0},
	{-0.02, [2]float64{0.1100, 0.3100}, [2]float64{0.22, 0}, -18 * deg},
	{-0.02, [2]float64{0.1600, 0.4100}, [2]float64{-0.22, 0}, 18 * deg},
	{0.01, [2]float64{0.2100, 0.2500}, [2]float64{0, 0.35}, 0},
	{0.01, [2]float64{0.0460, 0.0460}, [2]float64{0, 0.1}, 0},
	{0.01, [2]float64{0.0460, 0.0460}, [2]float64{0, -0.1}, 0},
	{0.01, [2]float64{0.0460, 0.0230}, [2]float64{-0.08, -0.605}, 0},
	{0.01, [2]float64{0.0230, 0.0230}, [2]float64{0, -0.606}, 0},
	{0.01, [2]float64{0.0230, 0.0460}, [2]float64{0.06, -0.605}, 0},
}

// SheppLoganMod is the same geometry with the commonly used high-contrast
// intensities (Toft). This is the default head model.
var SheppLoganMod = []Ellipse{
	{1, [2]float64{0.69, 0.92}, [2]float64{0, 0}, 0},
	{-0.8, [2]float64{0.6624, 0.8740}, [2]float64{0, -0.0184}, 0},
	{-0.2, [2]float64{0.1100, 0.3100}, [2]float64{0.22, 0}, -18 * deg},
	{-0.2, [2]float64{0.1600, 0.4100}, [2]float64{-0.22, 0}, 18 * deg},
	{0.1, [2]float64{0.2100, 0.2500}, [2]float64{0, 0.35}, 0},
	{0.1, [2]float64{0.0460, 0.0460}, [2]float64{0, 0.1}, 0},
	{0.1, [2]float64{0.0460, 0.0460}, [2]float64{0, -0.1}, 0},
	{0.1, [2]float64{0.0460, 0.0230}, [2]float64{-0.08, -0.605}, 0},
	{0.1, [2]float64{0.0230, 0.0230}, [2]float64{0, -0.606}, 0},
	{0.1, [2]float64{0.0230, 0.0460}, [2]float64{0.06, -0.605}, 0},
}

// Disc is a single unit disc filling the field of view.
var Disc = []Ellipse{
	{1, [2]float64{1, 1}, [2]float64{0, 0}, 0},
}

// Rings is a four-band bullseye: concentric discs with alternating sign
// leave two bright rings separated by dark gaps.
var Rings = []Ellipse{
	{1, [2]float64{0.75, 0.75}, [2]float64{0, 0}, 0},
	{-1, [2]float64{0.50, 0.50}, [2]float64{0, 0}, 0},
	{1, [2]float64{0.25, 0.25}, [2]float64{0, 0}, 0},
	{-1, [2]float64{0.10, 0.10}, [2]float64{0, 0}, 0},
}
