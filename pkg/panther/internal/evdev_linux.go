//go:build linux

package internal

import (
	"fmt"
	"strings"
	"sync"

	"github.com/holoplot/go-evdev"
	"github.com/skygrel/panther/pkg/panther/geom"
	"github.com/skygrel/panther/pkg/panther/gesture"
	"go.uber.org/atomic"
)

// InputReaders owns the evdev reader goroutines. Events reach the owner
// thread only through Events.
type InputReaders struct {
	events  chan Event
	running *atomic.Bool
	devices []*evdev.InputDevice
	wg      sync.WaitGroup
}

// StartInput opens the configured devices and starts one reader per device.
func StartInput(cfg InputConfig) (*InputReaders, error) {
	r := &InputReaders{
		events:  make(chan Event, inputBuffer),
		running: atomic.NewBool(true),
	}

	if cfg.TouchDevice != "" {
		path := cfg.TouchDevice
		if path == AutoDetect {
			found, err := findTouchDevice()
			if err != nil {
				return nil, err
			}
			path = found
		}
		dev, err := evdev.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open touch device %s: %w", path, err)
		}
		dec, err := newTouchDecoder(dev)
		if err != nil {
			dev.Close()
			return nil, fmt.Errorf("read axes of %s: %w", path, err)
		}
		r.start(dev, path, dec.feed)
	}

	if cfg.KeyDevice != "" {
		dev, err := evdev.Open(cfg.KeyDevice)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("open key device %s: %w", cfg.KeyDevice, err)
		}
		r.start(dev, cfg.KeyDevice, decodeKey)
	}

	return r, nil
}

func (r *InputReaders) start(dev *evdev.InputDevice, path string, decode func(*evdev.InputEvent) []Event) {
	r.devices = append(r.devices, dev)
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		name, _ := dev.Name()
		GetInternalLogger().Debug("Input reader started", "path", path, "name", name)

		for r.running.Load() {
			ev, err := dev.ReadOne()
			if err != nil {
				if r.running.Load() {
					GetInternalLogger().Warn("Input device read failed", "path", path, "error", err)
				}
				return
			}
			for _, e := range decode(ev) {
				select {
				case r.events <- e:
				default:
					GetInternalLogger().Warn("Input buffer full, dropping event", "path", path)
				}
			}
		}
	}()
}

// Events returns the channel readers deliver to.
func (r *InputReaders) Events() <-chan Event {
	if r == nil {
		return nil
	}
	return r.events
}

// Close stops every reader and waits for them to exit.
func (r *InputReaders) Close() error {
	if r == nil || !r.running.CompareAndSwap(true, false) {
		return nil
	}
	for _, dev := range r.devices {
		dev.Close()
	}
	r.wg.Wait()
	return nil
}

func findTouchDevice() (string, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", fmt.Errorf("list input devices: %w", err)
	}
	for _, p := range paths {
		name := strings.ToLower(p.Name)
		for _, hint := range []string{"touch", "goodix", "gt911", "ft5x06"} {
			if strings.Contains(name, hint) {
				return p.Path, nil
			}
		}
	}
	return "", fmt.Errorf("no touchscreen among %d input devices", len(paths))
}

func decodeKey(ev *evdev.InputEvent) []Event {
	if ev.Type != evdev.EV_KEY || ev.Value != 1 {
		return nil
	}
	switch ev.Code {
	case evdev.KEY_BACK, evdev.KEY_ESC:
		return []Event{{Kind: EventBack}}
	}
	return nil
}

type touchSlot struct {
	id        int32
	x, y      int32
	active    bool
	wasActive bool
	moved     bool

	// State as of the last SYN_REPORT.
	prevID       int32
	prevX, prevY int32
}

// touchDecoder turns the multitouch protocol (type B, with a single-touch
// fallback) into per-contact touch events, one batch per SYN_REPORT.
type touchDecoder struct {
	slots   []touchSlot
	current int
	// Single-touch devices report ABS_X/ABS_Y and BTN_TOUCH only.
	single bool

	xMin, xMax int32
	yMin, yMax int32
}

const maxTouchSlots = 10

func newTouchDecoder(dev *evdev.InputDevice) (*touchDecoder, error) {
	infos, err := dev.AbsInfos()
	if err != nil {
		return nil, err
	}
	d := &touchDecoder{}
	if x, ok := infos[evdev.ABS_MT_POSITION_X]; ok {
		y := infos[evdev.ABS_MT_POSITION_Y]
		d.setRange(x.Minimum, x.Maximum, y.Minimum, y.Maximum)
	} else {
		x, y := infos[evdev.ABS_X], infos[evdev.ABS_Y]
		d.single = true
		d.setRange(x.Minimum, x.Maximum, y.Minimum, y.Maximum)
	}
	return d, nil
}

func (d *touchDecoder) setRange(xMin, xMax, yMin, yMax int32) {
	d.xMin, d.xMax, d.yMin, d.yMax = xMin, xMax, yMin, yMax
	d.slots = make([]touchSlot, maxTouchSlots)
}

func (d *touchDecoder) slot() *touchSlot {
	return &d.slots[d.current]
}

func (d *touchDecoder) feed(ev *evdev.InputEvent) []Event {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_MT_SLOT:
			if ev.Value >= 0 && int(ev.Value) < len(d.slots) {
				d.current = int(ev.Value)
			}
		case evdev.ABS_MT_TRACKING_ID:
			s := d.slot()
			if ev.Value >= 0 {
				s.id = ev.Value
				s.active = true
			} else {
				s.active = false
			}
		case evdev.ABS_MT_POSITION_X:
			d.slot().x = ev.Value
			d.slot().moved = true
		case evdev.ABS_MT_POSITION_Y:
			d.slot().y = ev.Value
			d.slot().moved = true
		case evdev.ABS_X:
			// Multitouch drivers repeat the oldest contact here.
			if d.single {
				d.slots[0].x = ev.Value
				d.slots[0].moved = true
			}
		case evdev.ABS_Y:
			if d.single {
				d.slots[0].y = ev.Value
				d.slots[0].moved = true
			}
		}
	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH && d.single {
			d.slots[0].active = ev.Value != 0
		}
	case evdev.EV_SYN:
		switch ev.Code {
		case evdev.SYN_REPORT:
			return d.report()
		case evdev.SYN_DROPPED:
			return d.cancelAll()
		}
	}
	return nil
}

func (d *touchDecoder) point(s *touchSlot) geom.Point {
	return d.at(s.x, s.y)
}

func (d *touchDecoder) at(x, y int32) geom.Point {
	// Device Y grows downwards.
	return geom.Pt(NormalizeAxis(x, d.xMin, d.xMax), 1-NormalizeAxis(y, d.yMin, d.yMax))
}

func (d *touchDecoder) report() []Event {
	var out []Event
	for i := range d.slots {
		s := &d.slots[i]
		id := gesture.TouchID(uint32(s.id))
		prev := gesture.TouchID(uint32(s.prevID))
		switch {
		case s.active && s.wasActive && s.id != s.prevID:
			// The slot was released and reused within one frame.
			out = append(out,
				TouchEvent(gesture.TouchEvent{ID: prev, Phase: gesture.TouchUp, Pos: d.at(s.prevX, s.prevY)}),
				TouchEvent(gesture.TouchEvent{ID: id, Phase: gesture.TouchDown, Pos: d.point(s)}))
		case s.active && !s.wasActive:
			out = append(out, TouchEvent(gesture.TouchEvent{ID: id, Phase: gesture.TouchDown, Pos: d.point(s)}))
		case s.active && s.moved:
			out = append(out, TouchEvent(gesture.TouchEvent{ID: id, Phase: gesture.TouchMove, Pos: d.point(s)}))
		case !s.active && s.wasActive:
			out = append(out, TouchEvent(gesture.TouchEvent{ID: prev, Phase: gesture.TouchUp, Pos: d.point(s)}))
		}
		s.wasActive = s.active
		s.moved = false
		s.prevID = s.id
		s.prevX, s.prevY = s.x, s.y
	}
	return out
}

// cancelAll drops every contact after the kernel reported lost events.
func (d *touchDecoder) cancelAll() []Event {
	var out []Event
	for i := range d.slots {
		s := &d.slots[i]
		if s.wasActive {
			out = append(out, TouchEvent(gesture.TouchEvent{ID: gesture.TouchID(uint32(s.prevID)), Phase: gesture.TouchCancel}))
		}
		*s = touchSlot{}
	}
	return out
}
