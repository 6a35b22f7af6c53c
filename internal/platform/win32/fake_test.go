package win32

import (
	"errors"

	"zzz/internal/platform"
	"zzz/internal/render"
	"zzz/pkg/zzz"
)

// fakeOS scripts the thread message queue, key state and window geometry.
type fakeOS struct {
	pending   []Msg
	current   Msg
	keys      map[uint32]uint16
	vsc       map[uint32]uint32
	width     int
	height    int
	drops     map[uintptr][]string
	proc      WindowProc
	next      Handle
	createErr error

	quitPosted int
	translated int
	visible    map[Handle]bool
	titles     map[Handle]string
	destroyed  []Handle
	tracked    int
	presented  int
}

func newFakeOS() *fakeOS {
	return &fakeOS{
		keys:    map[uint32]uint16{},
		vsc:     map[uint32]uint32{},
		drops:   map[uintptr][]string{},
		visible: map[Handle]bool{},
		titles:  map[Handle]string{},
		width:   800,
		height:  600,
		next:    0x100,
	}
}

func (f *fakeOS) post(msgs ...Msg) { f.pending = append(f.pending, msgs...) }

func (f *fakeOS) PeekMessage(remove bool) (Msg, bool) {
	if len(f.pending) == 0 {
		return Msg{}, false
	}
	m := f.pending[0]
	if remove {
		f.pending = f.pending[1:]
	}
	return m, true
}

func (f *fakeOS) MessageTime() uint32 { return f.current.Time }

func (f *fakeOS) TranslateMessage(*Msg) { f.translated++ }

func (f *fakeOS) DispatchMessage(m *Msg) {
	prev := f.current
	f.current = *m
	if f.proc != nil {
		f.proc(m.Hwnd, m.Message, m.WParam, m.LParam)
	}
	f.current = prev
}

func (f *fakeOS) PostQuitMessage(int) {
	f.quitPosted++
	f.pending = append(f.pending, Msg{Message: WM_QUIT})
}

func (f *fakeOS) KeyState(vk uint32) uint16 { return f.keys[vk] }

func (f *fakeOS) MapVirtualKey(vk uint32) uint32 { return f.vsc[vk] }

func (f *fakeOS) ClientSize(Handle) (int, int) { return f.width, f.height }

func (f *fakeOS) DroppedFiles(hdrop uintptr) []string { return f.drops[hdrop] }

func (f *fakeOS) CreateWindow(_ platform.WindowConfig, proc WindowProc) (Handle, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.proc = proc
	f.next++
	return f.next, nil
}

func (f *fakeOS) ShowWindow(h Handle, visible bool) { f.visible[h] = visible }

func (f *fakeOS) SetTitle(h Handle, title string) { f.titles[h] = title }

func (f *fakeOS) DestroyWindow(h Handle) {
	f.destroyed = append(f.destroyed, h)
	if f.proc != nil {
		f.proc(h, WM_DESTROY, 0, 0)
	}
}

func (f *fakeOS) TrackMouseLeave(Handle) { f.tracked++ }

func (f *fakeOS) Present(Handle, *render.FrameBuffer) error {
	f.presented++
	return nil
}

var errCreate = errors.New("boom")

func makeLParam(lo, hi uint16) uintptr {
	return uintptr(lo) | uintptr(hi)<<16
}

type keyOpts struct {
	extended bool
	up       bool
	repeat   bool
	time     uint32
}

// keyMsg builds a keyboard message the way Windows packs it.
func keyMsg(hwnd Handle, vk, scancode uint32, o keyOpts) Msg {
	msg := uint32(WM_KEYDOWN)
	flags := uint16(scancode & 0xff)
	if o.extended {
		flags |= KF_EXTENDED
	}
	if o.repeat {
		flags |= KF_REPEAT
	}
	if o.up {
		flags |= KF_UP
		msg = WM_KEYUP
	}
	return Msg{
		Hwnd:    hwnd,
		Message: msg,
		WParam:  uintptr(vk),
		LParam:  makeLParam(1, flags),
		Time:    o.time,
	}
}

// setup returns a backend on a fake OS with one window feeding q.
func setup(capacity int) (*fakeOS, *Backend, platform.Window, *zzz.Queue, Handle) {
	f := newFakeOS()
	b := New(f)
	q := zzz.NewQueue(capacity)
	w, err := b.CreateWindow(platform.WindowConfig{Title: "test", WidthPx: 800, HeightPx: 600}, q)
	if err != nil {
		panic(err)
	}
	return f, b, w, q, f.next
}

func drain(q *zzz.Queue) []zzz.Event {
	var out []zzz.Event
	for {
		ev, ok := q.Next()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

// pumpAll pumps until the fake message queue is empty.
func pumpAll(w platform.Window, f *fakeOS) {
	for i := 0; len(f.pending) > 0 && i < 256; i++ {
		w.Pump()
	}
}
