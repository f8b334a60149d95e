package cli

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/chromeless/internal/chrome"
	"github.com/bnema/chromeless/internal/config"
	"github.com/bnema/chromeless/internal/logging"
	"github.com/bnema/chromeless/internal/placement"
	"github.com/bnema/chromeless/internal/winchrome"
	"github.com/bnema/chromeless/internal/x11chrome"
)

func newAttachCmd() *cobra.Command {
	var role string

	attachCmd := &cobra.Command{
		Use:   "attach <handle>",
		Short: "Attach frameless chrome to an existing native window",
		Long: `Attach installs the chrome layer on a native window given its handle
(HWND on Windows, X11 window id elsewhere; decimal or 0x-prefixed hex).
The window loses its native title bar and borders and gains the
application-drawn caption behavior until the process is interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAttach(cmd, args[0], role)
		},
	}

	attachCmd.Flags().StringVar(&role, "role", "main", "Placement role used to persist window geometry")
	return attachCmd
}

func runAttach(cmd *cobra.Command, handleArg, role string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := a.Config.Get()

	handle, err := parseHandle(handleArg)
	if err != nil {
		return err
	}

	logCtx := logging.WithComponent(cmd.Context(), "attach")
	logCtx = logging.WithWindow(logCtx, uint64(handle))
	logCtx = logging.With(logCtx, map[string]any{"role": role})
	log := logging.FromContext(logCtx)

	backend, interceptor, err := pickBackend(a)
	if err != nil {
		return err
	}

	opts := chrome.Options{
		Metrics:      metricsFromConfig(cfg),
		Interceptor:  interceptor,
		RefreshDelay: time.Duration(cfg.Chrome.RefreshDelayMs) * time.Millisecond,
		// The CLI has no toolkit main loop, so deferred refreshes run
		// serialized on the timer goroutine.
		Post:   chrome.SerialPost(),
		Logger: a.Log,
	}

	winCtx, err := chrome.Initialize(handle, backend, opts)
	if err != nil {
		return fmt.Errorf("failed to attach chrome to %#x: %w", uintptr(handle), err)
	}
	defer winCtx.Shutdown()

	var store *placement.Store
	if cfg.Placement.Enabled {
		store, err = placement.Open(cfg.Placement.Path)
		if err != nil {
			log.Warn().Err(err).Msg("placement persistence disabled")
		} else {
			defer store.Close()
			restorePlacement(logCtx, winCtx, backend, store, role)
		}
	}

	// Live config reload pushes new chrome dimensions into the window.
	a.Config.OnConfigChange(func(next *config.Config) {
		winCtx.SetMetrics(metricsFromConfig(next))
		log.Info().Int("caption_height", next.Chrome.CaptionHeight).Msg("chrome metrics reloaded")
	})
	if err := a.Config.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	log.Info().Msg("chrome attached, press Ctrl-C to detach")

	ctx, stop := signal.NotifyContext(logCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	if store != nil {
		savePlacement(logCtx, winCtx, store, role)
	}
	log.Info().Msg("detaching chrome")
	return nil
}

func parseHandle(arg string) (chrome.NativeHandle, error) {
	base := 10
	digits := arg
	if strings.HasPrefix(arg, "0x") || strings.HasPrefix(arg, "0X") {
		base = 16
		digits = arg[2:]
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid window handle %q", arg)
	}
	return chrome.NativeHandle(v), nil
}

// pickBackend selects the first usable platform backend. The Win32
// backend comes with a message interceptor; on X11 the window manager
// already routes pointer events, so no interceptor is installed.
func pickBackend(a *App) (chrome.Backend, chrome.Interceptor, error) {
	if winchrome.Available() {
		backend, err := winchrome.NewBackend(a.Log)
		if err != nil {
			return nil, nil, err
		}
		return backend, winchrome.NewInterceptor(a.Log), nil
	}
	if x11chrome.Available() {
		backend, err := x11chrome.NewBackend(a.Log)
		if err != nil {
			return nil, nil, err
		}
		return backend, nil, nil
	}
	return nil, nil, fmt.Errorf("no usable platform backend: %w", chrome.ErrUnsupportedPlatform)
}

func metricsFromConfig(cfg *config.Config) chrome.Metrics {
	return chrome.Metrics{
		CaptionHeight:   cfg.Chrome.CaptionHeight,
		BorderWidth:     cfg.Chrome.BorderWidth,
		ButtonWidth:     cfg.Chrome.ButtonWidth,
		AeroSnapEnabled: cfg.Chrome.AeroSnap,
	}
}

// restorePlacement applies the stored geometry for a role before the
// window is shown to the user.
func restorePlacement(ctx context.Context, winCtx *chrome.Context, backend chrome.Backend, store *placement.Store, role string) {
	log := logging.FromContext(ctx)
	rec, err := store.Load(ctx, role)
	if errors.Is(err, placement.ErrNotFound) {
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("placement restore failed")
		return
	}

	winCtx.SeedNormalBounds(rec.Bounds)
	if err := backend.SetBounds(winCtx.Handle(), rec.Bounds); err != nil {
		log.Warn().Err(err).Msg("could not apply stored bounds")
	}
	if rec.Maximized {
		if err := winCtx.ToggleMaximize(); err != nil {
			log.Warn().Err(err).Msg("could not re-maximize window")
		}
	}
	log.Debug().Msg("placement restored")
}

func savePlacement(ctx context.Context, winCtx *chrome.Context, store *placement.Store, role string) {
	log := logging.FromContext(ctx)
	rec := placement.Record{
		Role:      role,
		Bounds:    winCtx.NormalBounds(),
		Maximized: winCtx.IsMaximized(),
	}
	if err := store.Save(ctx, rec); err != nil {
		log.Warn().Err(err).Msg("placement save failed")
	}
}
