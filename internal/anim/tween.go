package anim

import "time"

// Durations of the stock effects.
const (
	FadeDuration   = 300 * time.Millisecond
	BounceDuration = 300 * time.Millisecond
	FlipDuration   = 500 * time.Millisecond
)

// Bounce-in endpoints.
const (
	BounceStartScale = 1.5
	ShadowStartAlpha = 0.5
)

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	t := float64(elapsed) / float64(total)
	if t > 1 {
		t = 1
	}
	return t
}

// Tween moves one value from From to To over Duration.
type Tween struct {
	Duration time.Duration
	Ease     Easing
	From, To float64
	Apply    func(v float64)

	elapsed time.Duration
}

// NewFade returns a linear alpha fade over FadeDuration.
func NewFade(from, to float64, apply func(float64)) *Tween {
	return &Tween{Duration: FadeDuration, Ease: EaseLinear, From: from, To: to, Apply: apply}
}

func (tw *Tween) Begin() { tw.Apply(tw.From) }

func (tw *Tween) Step(dt time.Duration) bool {
	tw.elapsed += dt
	t := progress(tw.elapsed, tw.Duration)
	if t >= 1 {
		tw.Apply(tw.To)
		return true
	}
	tw.Apply(Lerp(tw.From, tw.To, tw.Ease.Apply(t)))
	return false
}

// Bounce scales a chip in from BounceStartScale with cubic ease-in while its
// alpha rises with cubic ease-out. A drop shadow fades out on the scale curve
// and is removed when the bounce ends or is cancelled.
type Bounce struct {
	Scale  func(factor float64)
	Alpha  func(alpha float64)
	Shadow func(alpha float64, visible bool)

	elapsed time.Duration
}

func (b *Bounce) Begin() {
	b.Scale(BounceStartScale)
	b.Alpha(0)
	b.Shadow(ShadowStartAlpha, true)
}

func (b *Bounce) Step(dt time.Duration) bool {
	b.elapsed += dt
	t := progress(b.elapsed, BounceDuration)
	if t >= 1 {
		b.Scale(1)
		b.Alpha(1)
		b.Shadow(0, false)
		return true
	}
	in := EaseInCubic.Apply(t)
	b.Scale(Lerp(BounceStartScale, 1, in))
	b.Alpha(Lerp(0, 1, EaseOutCubic.Apply(t)))
	b.Shadow(Lerp(ShadowStartAlpha, 0, in), true)
	return false
}

func (b *Bounce) Stop() { b.Shadow(0, false) }

// Flip squeezes a tile horizontally to zero, swaps its face at the midpoint
// and opens it back up.
type Flip struct {
	Duration time.Duration
	ScaleX   func(sx float64)
	Swap     func()

	elapsed time.Duration
	swapped bool
}

// NewFlip returns a flip over FlipDuration.
func NewFlip(scaleX func(float64), swap func()) *Flip {
	return &Flip{Duration: FlipDuration, ScaleX: scaleX, Swap: swap}
}

func (f *Flip) Step(dt time.Duration) bool {
	f.elapsed += dt
	half := f.Duration / 2
	if f.elapsed < half {
		f.ScaleX(1 - progress(f.elapsed, half))
		return false
	}
	if !f.swapped {
		f.swapped = true
		f.Swap()
	}
	t := progress(f.elapsed-half, f.Duration-half)
	f.ScaleX(t)
	return t >= 1
}

// Timer fires once after Duration.
type Timer struct {
	Duration time.Duration
	Fire     func()

	elapsed time.Duration
}

// After returns a Timer calling fn after d.
func After(d time.Duration, fn func()) *Timer {
	return &Timer{Duration: d, Fire: fn}
}

func (t *Timer) Step(dt time.Duration) bool {
	t.elapsed += dt
	if t.elapsed < t.Duration {
		return false
	}
	t.Fire()
	return true
}

// Remaining is the time left before the timer fires.
func (t *Timer) Remaining() time.Duration {
	if t.elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.elapsed
}
