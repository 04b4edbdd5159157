// Package compositor turns the screen stack into one frame.
//
// Each screen draws into its own offscreen RenderTarget, created lazily at
// the current output size the first time the screen is rendered. Targets
// are then blended into the shared framebuffer bottom to top, each one
// visible only inside the circle its CircleTransition has grown to. Once
// the circle covers the whole surface the screen is opaque, which is what
// lets the router prune everything underneath it.
//
// The actual pixels come from a SurfaceProvider: the SDL window on device,
// a software surface in headless runs, or a fake in tests.
package compositor
