// Package thumb synthesizes placeholder video-cover thumbnails.
//
// A thumbnail is composited from a flat accent-color fill, a translucent
// play-glyph overlay, the word-wrapped title with a drop shadow, a
// rounded-corner alpha mask, and a blurred drop-shadow halo. Rendering
// happens at 2x supersampling and is downscaled to the requested size, so
// the output bitmap always matches the target dimensions exactly.
//
// Results are memoized in a Cache keyed by (title, color, size); repeated
// requests return the identical bitmap instance. Brightness-shifted variants
// of an accent color provide the frames for hover animation.
package thumb
