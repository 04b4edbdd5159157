package render

import (
	"fmt"
	"image/color"

	"github.com/skygrel/panther/pkg/panther/constants"
	"github.com/skygrel/panther/pkg/panther/geom"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  string // "rect", "text" or "image"
	Rect  geom.Rect
	Text  string
	Key   string
	Color color.NRGBA
}

func (o Op) String() string {
	switch o.Kind {
	case "text":
		return fmt.Sprintf("text %q", o.Text)
	case "image":
		return fmt.Sprintf("image %s", o.Key)
	default:
		return fmt.Sprintf("rect %v", o.Rect)
	}
}

// Recorder is a Canvas that remembers what was drawn instead of drawing it.
// Useful for tests and for dumping a screen's draw list while debugging.
type Recorder struct {
	Width, Height int
	Ops           []Op
}

// NewRecorder creates a Recorder reporting the given pixel size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

func (r *Recorder) FillRect(rect geom.Rect, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: "rect", Rect: rect, Color: c})
}

func (r *Recorder) DrawText(text string, box geom.Rect, _ constants.TextAlign, c color.NRGBA) {
	r.Ops = append(r.Ops, Op{Kind: "text", Rect: box, Text: text, Color: c})
}

func (r *Recorder) DrawImage(key string, rect geom.Rect) {
	r.Ops = append(r.Ops, Op{Kind: "image", Rect: rect, Key: key})
}

// Texts returns every string drawn so far, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset forgets all recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
