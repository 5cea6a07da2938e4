// Package curve provides the typing speed curves.
//
// A curve maps string progress (how far into the current string the
// animation is, in [0,1)) to a speed multiplier in [0,1]:
//
//   - [Linear]: no modulation, every character takes the base delay
//   - [Bezier]: cubic ease-in-out, slow at both ends of a string
//   - [Exponential]: cubic ease-in, slow start accelerating to full speed
//   - [Sine]: sinusoidal ease-in-out, the default
//
// The effective per-character delay is typeSpeed * (3 - 2*multiplier),
// ranging from typeSpeed at full speed to three times that at the slow
// end of a curve. [Delay] applies this formula; Linear bypasses it.
package curve
