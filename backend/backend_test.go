package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/engine/render"
)

func TestNoopBackendName(t *testing.T) {
	b := NewNoopBackend()
	if b.Name() != "noop" {
		t.Errorf("Name() = %q, want %q", b.Name(), "noop")
	}
}

func TestNoopBackendInit(t *testing.T) {
	b := NewNoopBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	b.Close()
}

func TestNoopBackendCreateDeviceBeforeInit(t *testing.T) {
	b := NewNoopBackend()
	if _, err := b.CreateDevice(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("CreateDevice() before Init error = %v, want ErrNotInitialized", err)
	}
}

func TestNoopDeviceCreateTexture(t *testing.T) {
	d := NewNoopDevice()

	desc := render.DefaultTextureDescriptor(800, 600, gputypes.TextureFormatBGRA8Unorm)
	tex, err := d.CreateTexture(&desc)
	if err != nil {
		t.Fatalf("CreateTexture() error = %v", err)
	}
	if tex.Width() != 800 || tex.Height() != 600 {
		t.Errorf("texture = %dx%d, want 800x600", tex.Width(), tex.Height())
	}
	if tex.Format() != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("format = %v, want BGRA8Unorm", tex.Format())
	}
}

func TestNoopDeviceFailNextCreate(t *testing.T) {
	d := NewNoopDevice()
	injected := errors.New("out of memory")
	d.FailNextCreate(injected)

	desc := render.DefaultTextureDescriptor(64, 64, gputypes.TextureFormatRGBA8Unorm)
	if _, err := d.CreateTexture(&desc); !errors.Is(err, injected) {
		t.Fatalf("CreateTexture() error = %v, want injected error", err)
	}

	// The injection is one-shot.
	if _, err := d.CreateTexture(&desc); err != nil {
		t.Fatalf("second CreateTexture() error = %v", err)
	}
}

func TestNoopDeviceRemoved(t *testing.T) {
	d := NewNoopDevice()
	removal := errors.New("device removed")
	d.SetRemoved(removal)

	if err := d.Removed(); !errors.Is(err, removal) {
		t.Fatalf("Removed() = %v, want removal error", err)
	}

	desc := render.DefaultTextureDescriptor(64, 64, gputypes.TextureFormatRGBA8Unorm)
	if _, err := d.CreateTexture(&desc); !errors.Is(err, removal) {
		t.Errorf("CreateTexture() on removed device error = %v", err)
	}
	if _, err := d.NewRecorder("x"); !errors.Is(err, removal) {
		t.Errorf("NewRecorder() on removed device error = %v", err)
	}
}

func TestNoopDeviceSubmitContiguity(t *testing.T) {
	d := NewNoopDevice()

	rec1, err := d.NewRecorder("a")
	if err != nil {
		t.Fatalf("NewRecorder() error = %v", err)
	}
	rec2, err := d.NewRecorder("b")
	if err != nil {
		t.Fatalf("NewRecorder() error = %v", err)
	}

	rec1.(*NoopRecorder).Note("a1")
	rec1.(*NoopRecorder).Note("a2")
	rec2.(*NoopRecorder).Note("b1")
	rec2.(*NoopRecorder).Note("b2")

	cmds1, _ := rec1.Finish()
	cmds2, _ := rec2.Finish()
	if err := d.Submit(cmds2, false); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if err := d.Submit(cmds1, true); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	got := d.Commands()
	want := []string{"b1", "b2", "a1", "a2"}
	if len(got) != len(want) {
		t.Fatalf("Commands() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Commands()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if d.Submits() != 2 {
		t.Errorf("Submits() = %d, want 2", d.Submits())
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// Noop backend is auto-registered via init()
	if !IsRegistered("noop") {
		t.Error("noop backend should be auto-registered")
	}

	b := Get("noop")
	if b == nil {
		t.Fatal("Get(noop) returned nil")
	}
	if b.Name() != "noop" {
		t.Errorf("Get(noop).Name() = %q, want %q", b.Name(), "noop")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	b := Get("nonexistent")
	if b != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	available := Available()
	found := false
	for _, name := range available {
		if name == "noop" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Available() should include 'noop'")
	}
}

func TestRegistryDefault(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
}

func TestRegistryMustDefault(t *testing.T) {
	// Should not panic when the noop backend is available
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	b := MustDefault()
	if b == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestRegistryInitDefault(t *testing.T) {
	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	if b == nil {
		t.Fatal("InitDefault() returned nil backend")
	}
	defer b.Close()

	dev, err := b.CreateDevice()
	if err != nil {
		t.Fatalf("CreateDevice() error = %v", err)
	}
	dev.Destroy()
}

func TestRegistryUnregister(t *testing.T) {
	testFactory := func() Backend {
		return &NoopBackend{}
	}
	Register("test-backend", testFactory)

	if !IsRegistered("test-backend") {
		t.Error("test-backend should be registered")
	}

	Unregister("test-backend")

	if IsRegistered("test-backend") {
		t.Error("test-backend should be unregistered")
	}
}

func TestRegistryIsRegistered(t *testing.T) {
	if !IsRegistered("noop") {
		t.Error("noop should be registered")
	}
	if IsRegistered("nonexistent") {
		t.Error("nonexistent should not be registered")
	}
}
