// Package phantom renders analytic MRI phantoms: given a requested output
// geometry it produces image-domain or k-space data for standard test
// objects, optionally replicated across up to eight simulated receive coils
// with realistic sensitivity weighting.
//
// # Reading Guide
//
// Start with these three files to understand the sampling engine:
//   - kernel.go: coordinate normalizers and the three sensitivity
//     combination strategies (direct, image-domain product, k-space
//     convolution)
//   - sample.go: grid and trajectory sampling drivers and precondition
//     checks
//   - presets.go: the public entry points (Head, Disc, Rings,
//     Sensitivities, Custom and their non-Cartesian variants)
//
// # Architecture
//
// The package composes three collaborators:
//   - phantom/geom: ellipse primitives with exact evaluations in both
//     domains, plus the standard parameter tables
//   - nd: dimension vectors, column-major strides and the parallel
//     per-index sampling driver
//   - traj: the trajectory type consumed by the non-Cartesian entry points
//
// Everything is pure: a sample value is a function of its own index, the
// immutable geometry tables and the immutable coil coefficient table, so
// outputs are bit-for-bit reproducible and sampling parallelizes freely.
//
// # Axis Convention
//
// Dimension vectors follow a fixed convention: axis 0 is reserved, axes 1
// and 2 are the spatial (read/phase) axes, axis 3 (CoilAxis) counts receive
// channels. A coil extent of 1 bypasses the sensitivity model entirely;
// extents 2..8 enable it. Additional trailing axes replicate the result.
package phantom
