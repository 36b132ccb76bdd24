// Package rawvol reads and writes headerless binary volumes: raster-ordered
// fixed-size samples, optionally wrapped in a gzip, zstd or lz4 stream.
//
// The geometry and sample layout live outside the file (a Header, usually
// loaded from a job description), so a raw volume is exactly
// NX·NY·NZ samples, or 3·NX·NY·NZ components for a vector field.
//
// Errors:
//
//   - ErrUnknownSampleType, ErrUnknownCompression: parsing a Header field.
//   - ErrTypeMismatch: the Go element type does not match Header.Type.
//   - ErrShortData: the stream ended before every sample was read.
package rawvol
