// Package floatvec provides float64 kernels over vector.Vector values.
// Element-wise products and complex magnitudes run through algo-vecmath's
// SIMD-dispatched block routines; Spectrum uses algo-fft.
package floatvec
