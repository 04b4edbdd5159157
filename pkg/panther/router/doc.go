// Package router provides the screen stack that drives navigation.
//
// Every screen answers input and lifecycle calls with an explicit Command
// instead of mutating navigation state on the side. The Router applies each
// command synchronously before the next event is processed, which keeps
// every transition traceable and testable without a GPU.
//
// # Basic Usage
//
//	// Screens embed router.Base for the default behaviour
//	type ListScreen struct {
//	    router.Base
//	}
//
//	func (s *ListScreen) Press(p geom.Point) router.Command {
//	    if p.Y < 0.25 {
//	        return router.Push(NewDetailScreen())
//	    }
//	    return router.None()
//	}
//
//	r := router.New(NewListScreen(),
//	    router.WithRenderer(comp),
//	    router.WithExitFunc(func() { running = false }),
//	)
//
//	// Input goes to the top screen only
//	r.Press(geom.Pt(0.5, 0.1))
//
//	// Once per frame: update and draw bottom-to-top, then prune
//	if err := r.FrameTick(); err != nil {
//	    return err
//	}
//
// # Expansion and pruning
//
// A screen that reports IsExpanded after being drawn fully covers
// everything beneath it. The Router then destroys every screen below it and
// continues the frame on the shorter stack, so fully occluded screens never
// linger waiting for a reveal that cannot happen.
//
// # Exit
//
// Popping the last screen leaves the stack empty, which is the designed
// termination signal: the exit hook runs exactly once.
package router
