package backend

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/engine/render"
)

// init registers the noop backend on package import.
func init() {
	Register(BackendNoop, func() Backend {
		return &NoopBackend{}
	})
}

// NoopBackend is a headless backend whose devices record commands instead
// of executing them. It backs tests, CI runs, and server-side use where no
// GPU is present.
type NoopBackend struct {
	initialized bool
}

// NewNoopBackend creates a new headless backend.
func NewNoopBackend() *NoopBackend {
	return &NoopBackend{}
}

// Name returns the backend identifier.
func (b *NoopBackend) Name() string {
	return BackendNoop
}

// Init initializes the backend.
func (b *NoopBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *NoopBackend) Close() {
	b.initialized = false
}

// CreateDevice opens a new recording device.
func (b *NoopBackend) CreateDevice() (render.Device, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	return NewNoopDevice(), nil
}

// NoopDevice is a render.Device that records every submitted command as a
// readable string. Tests inspect the log with Commands to assert ordering
// and resize behavior; failure injection simulates creation errors and
// device loss.
type NoopDevice struct {
	mu       sync.Mutex
	commands []string
	submits  int

	removed    error
	createFail error
	caps       *render.DeviceCapabilities
}

// NewNoopDevice creates a recording device without going through the
// registry. Tests use this directly.
func NewNoopDevice() *NoopDevice {
	return &NoopDevice{}
}

// Compile-time interface check.
var _ render.Device = (*NoopDevice)(nil)

// noopTexture implements render.Texture.
type noopTexture struct {
	dev       *NoopDevice
	desc      render.TextureDescriptor
	destroyed bool
}

func (t *noopTexture) Width() uint32                  { return t.desc.Width }
func (t *noopTexture) Height() uint32                 { return t.desc.Height }
func (t *noopTexture) Format() gputypes.TextureFormat { return t.desc.Format }

func (t *noopTexture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.dev.record(fmt.Sprintf("destroy-texture %dx%d", t.desc.Width, t.desc.Height))
}

// noopView implements render.TextureView.
type noopView struct {
	tex       *noopTexture
	destroyed bool
}

func (v *noopView) Texture() render.Texture { return v.tex }

func (v *noopView) Destroy() {
	v.destroyed = true
}

// NoopRecorder implements render.Recorder, buffering ops until Submit.
type NoopRecorder struct {
	dev   *NoopDevice
	label string
	ops   []string
	done  bool
}

// Note records an arbitrary marker into the command stream. Test systems
// use it to tag their draw-phase work.
func (r *NoopRecorder) Note(s string) {
	r.ops = append(r.ops, s)
}

// BeginPass records the pass start with the color target's dimensions.
func (r *NoopRecorder) BeginPass(color, depth render.TextureView, clearColor gputypes.Color) error {
	tex := color.Texture()
	r.ops = append(r.ops, fmt.Sprintf("begin-pass %dx%d", tex.Width(), tex.Height()))
	return nil
}

func (r *NoopRecorder) SetViewport(vp render.Viewport) {
	r.ops = append(r.ops, fmt.Sprintf("viewport %gx%g", vp.W, vp.H))
}

func (r *NoopRecorder) SetScissor(sc render.ScissorRect) {
	r.ops = append(r.ops, fmt.Sprintf("scissor %dx%d", sc.W, sc.H))
}

func (r *NoopRecorder) EndPass() {
	r.ops = append(r.ops, "end-pass")
}

func (r *NoopRecorder) Finish() (render.CommandList, error) {
	r.done = true
	return &noopCommandList{label: r.label, ops: r.ops}, nil
}

func (r *NoopRecorder) Discard() {
	r.done = true
	r.ops = nil
}

// noopCommandList implements render.CommandList.
type noopCommandList struct {
	label string
	ops   []string
}

func (c *noopCommandList) Label() string { return c.label }

// CreateTexture creates a texture from the descriptor.
func (d *NoopDevice) CreateTexture(desc *render.TextureDescriptor) (render.Texture, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.removed != nil {
		return nil, d.removed
	}
	if d.createFail != nil {
		err := d.createFail
		d.createFail = nil
		return nil, err
	}
	d.commands = append(d.commands, fmt.Sprintf("create-texture %dx%d layers=%d", desc.Width, desc.Height, desc.ArrayLayers))
	return &noopTexture{dev: d, desc: *desc}, nil
}

// CreateView creates a view covering the whole texture.
func (d *NoopDevice) CreateView(tex render.Texture) (render.TextureView, error) {
	nt, ok := tex.(*noopTexture)
	if !ok {
		return nil, fmt.Errorf("backend: foreign texture %T", tex)
	}
	return &noopView{tex: nt}, nil
}

// NewRecorder creates a command recorder with a debug label.
func (d *NoopDevice) NewRecorder(label string) (render.Recorder, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.removed != nil {
		return nil, d.removed
	}
	return &NoopRecorder{dev: d, label: label}, nil
}

// Submit appends the recorded ops to the device command log in one
// critical section, so one submission's ops are always contiguous.
func (d *NoopDevice) Submit(cmds render.CommandList, wait bool) error {
	nc, ok := cmds.(*noopCommandList)
	if !ok {
		return fmt.Errorf("backend: foreign command list %T", cmds)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.removed != nil {
		return d.removed
	}
	d.commands = append(d.commands, nc.ops...)
	d.submits++
	return nil
}

// WriteTexture records an upload.
func (d *NoopDevice) WriteTexture(tex render.Texture, data []byte, bytesPerRow uint32) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.removed != nil {
		return d.removed
	}
	d.commands = append(d.commands, fmt.Sprintf("write-texture %dx%d", tex.Width(), tex.Height()))
	return nil
}

// Capabilities reports generous headless capabilities, or the override
// set via SetCapabilities.
func (d *NoopDevice) Capabilities() render.DeviceCapabilities {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.caps != nil {
		return *d.caps
	}
	return render.DeviceCapabilities{
		MaxTextureSize: 16384,
		MaxArrayLayers: 256,
		VendorName:     "engine",
		DeviceName:     "noop",
	}
}

// SetCapabilities overrides the reported capabilities. Tests use this to
// simulate devices without stereo support.
func (d *NoopDevice) SetCapabilities(c render.DeviceCapabilities) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.caps = &c
}

// Removed returns the injected removal error, if any.
func (d *NoopDevice) Removed() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.removed
}

// Destroy releases the device.
func (d *NoopDevice) Destroy() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.commands = append(d.commands, "destroy-device")
}

func (d *NoopDevice) record(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.commands = append(d.commands, s)
}

// Commands returns a copy of the recorded command log.
func (d *NoopDevice) Commands() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.commands))
	copy(out, d.commands)
	return out
}

// Submits returns the number of completed submissions.
func (d *NoopDevice) Submits() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.submits
}

// ClearLog discards the recorded command log.
func (d *NoopDevice) ClearLog() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.commands = d.commands[:0]
}

// FailNextCreate makes the next CreateTexture call fail with err.
func (d *NoopDevice) FailNextCreate(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.createFail = err
}

// SetRemoved marks the device as removed. All subsequent operations fail
// with err until the device is recreated.
func (d *NoopDevice) SetRemoved(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.removed = err
}
