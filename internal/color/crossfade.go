package color

// MaxStep is the last step index of a crossfade; step 0 is the start color.
const MaxStep = 255

// MapValue re-maps x from [inMin, inMax] onto [outMin, outMax] with integer
// math. Division truncates toward zero and the result is not clamped, so x
// outside the input range maps outside the output range.
func MapValue(x, inMin, inMax, outMin, outMax int) int {
	if inMax == inMin {
		return outMin
	}
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// StepValue is the value of one channel at step (0..MaxStep) of a fade from
// start to end.
func StepValue(step, start, end uint8) uint8 {
	return uint8(MapValue(int(step), 0, MaxStep, int(start), int(end)))
}

// Blend returns the color at step (0..MaxStep) of a fade from one color to another.
func Blend(from, to Color, step uint8) Color {
	return Color{
		Red:   StepValue(step, from.Red, to.Red),
		Green: StepValue(step, from.Green, to.Green),
		Blue:  StepValue(step, from.Blue, to.Blue),
		White: StepValue(step, from.White, to.White),
	}
}

// Crossfade samples a fade at steps evenly spaced points. The first color is
// from and the last is to. Fewer than two steps jump straight to the target.
func Crossfade(from, to Color, steps int) []Color {
	if steps < 2 {
		return []Color{to}
	}

	out := make([]Color, steps)
	for i := range steps {
		step := MapValue(i, 0, steps-1, 0, MaxStep)
		out[i] = Blend(from, to, uint8(step))
	}
	return out
}
