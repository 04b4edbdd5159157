package compositor

import (
	"image/color"

	"github.com/skygrel/panther/pkg/panther/render"
)

// RecordingProvider is a SurfaceProvider that keeps draw lists instead of
// pixels. Each target is a render.Recorder.
type RecordingProvider struct {
	Width, Height int

	// Frames counts successful presents.
	Frames int
	// Composited lists every circle blended since the last BeginFrame.
	Composited []Circle
	// Live counts targets created and not yet destroyed.
	Live int
	// Created counts every target ever created.
	Created int

	// Errors injected into the next calls, if set.
	TargetErr  error
	PresentErr error
}

// NewRecordingProvider creates a RecordingProvider of the given size.
func NewRecordingProvider(width, height int) *RecordingProvider {
	return &RecordingProvider{Width: width, Height: height}
}

func (p *RecordingProvider) Size() (int, int) {
	return p.Width, p.Height
}

func (p *RecordingProvider) NewTarget(width, height int) (RenderTarget, error) {
	if p.TargetErr != nil {
		return nil, p.TargetErr
	}
	p.Live++
	p.Created++
	return &RecordingTarget{Recorder: render.NewRecorder(width, height), provider: p}, nil
}

func (p *RecordingProvider) BeginFrame() error {
	p.Composited = p.Composited[:0]
	return nil
}

func (p *RecordingProvider) Present() error {
	if p.PresentErr != nil {
		return p.PresentErr
	}
	p.Frames++
	return nil
}

// RecordingTarget is the target type RecordingProvider hands out.
type RecordingTarget struct {
	*render.Recorder
	provider  *RecordingProvider
	destroyed bool
}

func (t *RecordingTarget) Clear(color.NRGBA) error {
	t.Reset()
	return nil
}

func (t *RecordingTarget) Composite(c Circle) error {
	t.provider.Composited = append(t.provider.Composited, c)
	return nil
}

func (t *RecordingTarget) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.provider.Live--
}
