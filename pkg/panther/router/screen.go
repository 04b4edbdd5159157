package router

import (
	"time"

	"github.com/google/uuid"
	"github.com/skygrel/panther/pkg/panther/geom"
	"github.com/skygrel/panther/pkg/panther/render"
)

// Screen is one full-screen navigable view.
//
// Only the top screen of the stack receives input. Every screen on the
// stack is updated and drawn once per frame, bottom to top.
type Screen interface {
	render.Drawable

	// ID is unique per screen instance.
	ID() string
	// Name identifies the kind of screen in logs.
	Name() string
	// CreatedAt is when the screen was constructed. Transitions are timed from it.
	CreatedAt() time.Time

	// StartScroll is called when a contact goes down. Returning false means
	// moves of this contact are not forwarded to Scroll.
	StartScroll(p geom.Point) bool
	Scroll(delta geom.Vec)
	Press(p geom.Point) Command
	Back() Command

	// Update runs once per frame before Draw.
	Update() Command
	// IsExpanded reports that the screen now fully and permanently covers
	// every screen below it.
	IsExpanded() bool

	// Destroy releases the screen's resources. Called once, when the stack
	// drops the screen.
	Destroy()
}

// Base provides the default behaviour for every optional Screen method.
// Embed it and call InitBase from the constructor.
type Base struct {
	id        string
	name      string
	createdAt time.Time
}

// InitBase stamps the screen with a fresh ID and its creation time.
func (b *Base) InitBase(name string, now time.Time) {
	b.id = uuid.NewString()
	b.name = name
	b.createdAt = now
}

func (b *Base) ID() string           { return b.id }
func (b *Base) Name() string         { return b.name }
func (b *Base) CreatedAt() time.Time { return b.createdAt }

func (b *Base) StartScroll(geom.Point) bool { return false }
func (b *Base) Scroll(geom.Vec)             {}
func (b *Base) Press(geom.Point) Command    { return None() }

// Back pops the screen unless overridden.
func (b *Base) Back() Command { return Pop() }

func (b *Base) Update() Command  { return None() }
func (b *Base) IsExpanded() bool { return false }
func (b *Base) Destroy()         {}
