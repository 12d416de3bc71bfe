// Package anim provides the fixed-step sprite animation driver.
//
// A StepAnimation divides Runtime into Steps equal periods and notifies its
// owner each time a period boundary is crossed. Callbacks receive the
// animation by pointer so they can reset or stop it without capturing it.
package anim

// StepFunc is invoked once per crossed period with the step index before it is incremented.
type StepFunc func(a *StepAnimation, step int)

// FrameFunc is invoked on every Animate call with the current step, before advancing.
type FrameFunc func(a *StepAnimation, step int, dt float64)

// CompleteFunc is invoked when Step reaches Steps.
type CompleteFunc func(a *StepAnimation)

// StepAnimation is a fixed-period, fixed-step-count animator.
type StepAnimation struct {
	Runtime float64
	Steps   int

	Elapsed float64
	Step    int
	Playing bool

	OnStep     StepFunc
	OnFrame    FrameFunc
	OnComplete CompleteFunc
}

// New returns a playing animation.
func New(runtime float64, steps int, onStep StepFunc) *StepAnimation {
	return &StepAnimation{
		Runtime: runtime,
		Steps:   steps,
		Playing: true,
		OnStep:  onStep,
	}
}

// NewLoop returns a playing animation that restarts from step 0 when it completes.
func NewLoop(runtime float64, steps int, onStep StepFunc) *StepAnimation {
	a := New(runtime, steps, onStep)
	a.OnComplete = Restart
	return a
}

// Restart is a CompleteFunc that rewinds the step counter, making the animation loop.
func Restart(a *StepAnimation) {
	a.Step = 0
}

// Period is the duration of one step.
func (a *StepAnimation) Period() float64 {
	return a.Runtime / float64(a.Steps)
}

// Done reports whether the animation has stopped playing.
func (a *StepAnimation) Done() bool {
	return !a.Playing
}

// Stop halts the animation; further Animate calls are no-ops.
func (a *StepAnimation) Stop() {
	a.Playing = false
}

// Animate advances the animation by dt seconds.
//
// Every period boundary crossed during dt is dispatched, so a single long
// frame may fire several steps. The overshoot past a boundary is kept.
// When the completion callback leaves Step at Steps (or there is none),
// the animation stops playing.
func (a *StepAnimation) Animate(dt float64) {
	if !a.Playing {
		return
	}

	if a.OnFrame != nil {
		a.OnFrame(a, a.Step, dt)
	}

	period := a.Period()
	if period <= 0 {
		a.Step = a.Steps
		a.complete()
		return
	}

	a.Elapsed += dt
	for a.Playing && a.Elapsed >= period {
		a.Elapsed -= period

		if a.OnStep != nil {
			a.OnStep(a, a.Step)
		}
		a.Step++

		if a.Step >= a.Steps {
			a.complete()
		}
	}
}

func (a *StepAnimation) complete() {
	if a.OnComplete != nil {
		a.OnComplete(a)
	}
	if a.Step >= a.Steps {
		a.Playing = false
	}
}
