package chrome

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Interceptor is the native message-interception capability: on install
// it swaps the window's message handler for a dispatcher that resolves
// the owning Context through LookupContext, and on uninstall it restores
// the previous handler verbatim. Uninstall must be idempotent.
type Interceptor interface {
	Install(h NativeHandle) error
	Uninstall(h NativeHandle) error
}

// registry maps native handles to their chrome contexts so the native
// dispatcher can find the right context without closures or globals
// captured per window. Entries are weak lookups, never ownership: a
// Context is owned by the window object that initialized it.
//
// The subsystem runs on the single message-pump thread by design; the
// mutex is the concession that makes the lookup safe if a multi-threaded
// host pokes at it anyway.
var (
	registryMu sync.Mutex
	registry   = make(map[NativeHandle]*Context)
)

// LookupContext resolves the context intercepting a native handle, or
// nil when the handle is not under chrome management.
func LookupContext(h NativeHandle) *Context {
	registryMu.Lock()
	defer registryMu.Unlock()
	return registry[h]
}

const defaultRefreshDelay = 50 * time.Millisecond

// SerialPost returns a Post function for hosts without a toolkit main
// loop: work runs on the calling goroutine, one piece at a time.
func SerialPost() func(func()) {
	var mu sync.Mutex
	return func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		fn()
	}
}

// Options configures a chrome context.
type Options struct {
	// Metrics are the chrome dimensions; zero value means DefaultMetrics.
	Metrics Metrics

	// Interceptor, when set, is installed on the native window during
	// Initialize. Leave nil on platforms without a message pipeline.
	Interceptor Interceptor

	// Post marshals deferred work onto the thread that owns the window.
	// When nil, work runs on the timer goroutine behind a per-context
	// mutex so refreshes never overlap; hosts with a real message pump
	// should marshal onto it instead.
	Post func(func())

	// RefreshDelay is how long after a state transition the compositor
	// attributes are re-applied.
	RefreshDelay time.Duration

	// RenderCaption, when set, is invoked after each composition refresh
	// with the rectangle [0,0,width,captionHeight) to redraw the caption
	// content. The chrome layer draws nothing itself.
	RenderCaption func(width, height int)

	Logger zerolog.Logger
}

// Context owns the frameless chrome of one native window: its state
// store, drag controller, refresh scheduler and, where supported, the
// installed message interceptor. Exactly one context exists per native
// handle while intercepted.
type Context struct {
	handle      NativeHandle
	backend     Backend
	interceptor Interceptor

	// metricsMu guards metrics: config reloads write from the watcher
	// goroutine while deferred refreshes read from the post callback.
	metricsMu sync.Mutex
	metrics   Metrics

	state      *WindowState
	controller *Controller
	bridge     *Bridge
	scheduler  *Scheduler

	refreshDelay  time.Duration
	renderCaption func(width, height int)

	// pressedNC is the non-client caption button armed by a native
	// button-down, consumed on the matching button-up.
	pressedNC uintptr

	installed bool
	done      bool
	log       zerolog.Logger
}

// Initialize creates the chrome context for a native window and, when an
// interceptor is configured, installs it. On failure the window is left
// untouched and the caller falls back to native decorations.
func Initialize(handle NativeHandle, backend Backend, opts Options) (*Context, error) {
	if handle == 0 {
		return nil, fmt.Errorf("nil native handle: %w", ErrInstallFailed)
	}
	if backend == nil {
		return nil, fmt.Errorf("no platform backend: %w", ErrUnsupportedPlatform)
	}

	metrics := opts.Metrics
	if metrics.CaptionHeight <= 0 {
		metrics = DefaultMetrics()
	}
	post := opts.Post
	if post == nil {
		post = SerialPost()
	}
	delay := opts.RefreshDelay
	if delay <= 0 {
		delay = defaultRefreshDelay
	}

	registryMu.Lock()
	if _, exists := registry[handle]; exists {
		registryMu.Unlock()
		return nil, fmt.Errorf("handle %#x: %w", uintptr(handle), ErrAlreadyInstalled)
	}
	registryMu.Unlock()

	log := opts.Logger.With().Str("component", "chrome").Uint64("handle", uint64(handle)).Logger()

	c := &Context{
		handle:        handle,
		backend:       backend,
		interceptor:   opts.Interceptor,
		metrics:       metrics,
		state:         NewWindowState(),
		refreshDelay:  delay,
		renderCaption: opts.RenderCaption,
		log:           log,
	}
	c.controller = NewController(handle, backend, c.state, metrics, log)
	c.bridge = NewBridge(c.controller, backend, handle)
	c.scheduler = NewScheduler(post, c.applyRefresh, log)
	c.controller.SetTransitionHook(func() { c.scheduler.Request(handle, c.refreshDelay) })

	if b, err := backend.Bounds(handle); err == nil {
		c.state.SaveNormalBounds(b)
	}

	if c.interceptor != nil {
		if err := c.interceptor.Install(handle); err != nil {
			return nil, fmt.Errorf("install interceptor: %w", err)
		}
		c.installed = true
	}

	registryMu.Lock()
	registry[handle] = c
	registryMu.Unlock()

	// First transitions after creation (show, activate) are applied by
	// the compositor asynchronously; queue the initial re-application
	// instead of polling for readiness.
	c.scheduler.Request(handle, delay)

	log.Debug().Bool("intercepted", c.installed).Msg("chrome context initialized")
	return c, nil
}

// applyRefresh re-applies the non-client styling and redraws the caption.
// Attribute failures degrade visuals only; they are logged, never raised.
func (c *Context) applyRefresh(h NativeHandle) {
	m := c.Metrics()
	if err := c.backend.ApplyChrome(h, m); err != nil {
		c.log.Warn().Err(err).Msg("composition refresh degraded")
	}
	if c.renderCaption != nil {
		if b, err := c.backend.Bounds(h); err == nil {
			c.renderCaption(b.Width, m.CaptionHeight)
		}
	}
}

// Shutdown uninstalls the interceptor, cancels pending refreshes and
// releases the registry entry. Safe to call more than once; the second
// call is a no-op because teardown can race with OS destroy messages.
func (c *Context) Shutdown() {
	if c.done {
		return
	}
	c.done = true

	c.scheduler.Destroy()

	// Restore the previous handler before the context becomes
	// unreachable so no message is ever delivered to a freed context.
	if c.installed {
		if err := c.interceptor.Uninstall(c.handle); err != nil {
			c.log.Warn().Err(err).Msg("interceptor uninstall failed")
		}
		c.installed = false
	}

	registryMu.Lock()
	delete(registry, c.handle)
	registryMu.Unlock()

	c.log.Debug().Msg("chrome context shut down")
}

// Handle returns the native handle this context intercepts.
func (c *Context) Handle() NativeHandle {
	return c.handle
}

// IsMaximized reports the tracked maximize state.
func (c *Context) IsMaximized() bool {
	return c.state.IsMaximized()
}

// Minimize requests a native minimize. The maximize flag is untouched.
func (c *Context) Minimize() error {
	return c.controller.Minimize()
}

// ToggleMaximize flips between normal and maximized presentation.
func (c *Context) ToggleMaximize() error {
	return c.controller.ToggleMaximize()
}

// Close requests a native close.
func (c *Context) Close() error {
	return c.controller.Close()
}

// SetCaptionHeight resizes the draggable title strip and queues a
// composition refresh so hit-testing and visuals change together.
func (c *Context) SetCaptionHeight(px int) {
	if px <= 0 {
		return
	}
	c.metricsMu.Lock()
	c.metrics.CaptionHeight = px
	m := c.metrics
	c.metricsMu.Unlock()
	c.controller.SetMetrics(m)
	c.scheduler.Request(c.handle, c.refreshDelay)
}

// SetAeroSnapEnabled selects between the OS-native move primitive and
// manual window translation for caption drags.
func (c *Context) SetAeroSnapEnabled(enabled bool) {
	c.metricsMu.Lock()
	c.metrics.AeroSnapEnabled = enabled
	m := c.metrics
	c.metricsMu.Unlock()
	c.controller.SetMetrics(m)
}

// SetMetrics replaces all chrome dimensions at once (config reload).
func (c *Context) SetMetrics(m Metrics) {
	if m.CaptionHeight <= 0 || m.BorderWidth < 0 {
		return
	}
	c.metricsMu.Lock()
	c.metrics = m
	c.metricsMu.Unlock()
	c.controller.SetMetrics(m)
	c.scheduler.Request(c.handle, c.refreshDelay)
}

// Metrics returns the active chrome dimensions.
func (c *Context) Metrics() Metrics {
	c.metricsMu.Lock()
	defer c.metricsMu.Unlock()
	return c.metrics
}

// NormalBounds exposes the tracked restore geometry, e.g. for placement
// persistence at shutdown.
func (c *Context) NormalBounds() Bounds {
	if c.state.IsMaximized() {
		return c.state.NormalBounds()
	}
	if b, err := c.backend.Bounds(c.handle); err == nil && !b.Empty() {
		return b
	}
	return c.state.NormalBounds()
}

// SeedNormalBounds pre-loads the restore geometry (placement restore at
// startup). Zero-area bounds are ignored.
func (c *Context) SeedNormalBounds(b Bounds) {
	c.state.SaveNormalBounds(b)
}

// HandlePlatformEvent feeds a toolkit event through the bridge. Show
// and focus transitions also queue a composition refresh here, because
// the compositor applies attribute changes around them asynchronously.
func (c *Context) HandlePlatformEvent(ev any) bool {
	var kind WindowEventKind = -1
	switch e := ev.(type) {
	case WindowEvent:
		kind = e.Kind
	case *WindowEvent:
		kind = e.Kind
	}
	if kind == WindowShown || kind == WindowFocused {
		c.scheduler.Request(c.handle, c.refreshDelay)
	}
	return c.bridge.HandlePlatformEvent(ev)
}
