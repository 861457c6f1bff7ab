// Package imaging provides the pixel-level primitives used by the plate
// detection pipeline: grayscale conversion, binarization, region-of-interest
// extraction, inversion, and bounding-box annotation.
//
// All operations work with standard Go image types and use a coordinate system
// where (0,0) is at the top-left corner, X increases rightward, and Y increases
// downward. Binary images are represented as *image.Gray holding only the
// values 0 (background) and 255 (foreground).
//
// # Grayscale Conversion
//
// Multi-channel input is reduced to a single channel with fixed ITU-R BT.601
// luminance weights (0.299*R + 0.587*G + 0.114*B). The formula never varies by
// platform, so binarization results are reproducible everywhere.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other operations are
// stateless: they never mutate their input image and can be called concurrently
// on different images.
//
// # Error Handling
//
// Functions return ErrInvalidInput (wrapped with context) for caller misuse:
// nil or zero-sized images, multi-channel input where a single channel is
// required, and regions outside the source bounds. These errors are raised
// immediately and are never retried.
package imaging
