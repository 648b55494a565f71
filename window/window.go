// Package window wraps SDL2 into the windowing surface provider the
// bootstrap consumes: it creates a fixed-size Vulkan-capable window, loads
// the Vulkan entry point through SDL, binds a presentable surface and polls
// the event loop.
package window

import (
	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
)

// Window is a fixed-size, non-resizable SDL2 window able to back a Vulkan
// surface.
type Window struct {
	win *sdl.Window
}

// New initializes SDL video and creates the window. The window is created
// non-resizable; resize handling would require rebuilding the whole
// swapchain-dependent object chain and is out of scope for the bootstrap.
func New(title string, width, height int) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.Wrap(err, "initialize SDL")
	}

	win, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}

	return &Window{win: win}, nil
}

// Driver loads the Vulkan loader through SDL and returns the global driver
// used for all pre-instance calls.
func (w *Window) Driver() (core1_0.GlobalDriver, error) {
	driver, err := core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return nil, errors.Wrap(err, "load Vulkan driver")
	}
	return driver, nil
}

// InstanceExtensions lists the instance extensions SDL needs to present to
// this window.
func (w *Window) InstanceExtensions() []string {
	return w.win.VulkanGetInstanceExtensions()
}

// CreateSurface binds a presentable Vulkan surface to the window.
func (w *Window) CreateSurface(instance core1_0.Instance, surfaceDriver khr_surface.ExtensionDriver) (khr_surface.Surface, error) {
	surface, err := vkng_sdl2.CreateSurface(instance, surfaceDriver, w.win)
	if err != nil {
		return khr_surface.Surface{}, errors.Wrap(err, "create window surface")
	}
	return surface, nil
}

// DrawableSize reports the window's current framebuffer size in pixels,
// which can differ from the logical window size on high-DPI displays.
func (w *Window) DrawableSize() (width, height int) {
	drawableWidth, drawableHeight := w.win.VulkanGetDrawableSize()
	return int(drawableWidth), int(drawableHeight)
}

// PollUntilClosed blocks on the event loop until the window is closed or
// Escape is pressed. Nothing renders per iteration, so the loop waits on
// events instead of polling.
func (w *Window) PollUntilClosed() {
	for {
		event := sdl.WaitEvent()
		if event == nil {
			return
		}

		switch e := event.(type) {
		case *sdl.QuitEvent:
			return
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
				return
			}
		}
	}
}

// Destroy tears down the window and shuts SDL down. Call only after every
// Vulkan object referencing the window's surface is gone.
func (w *Window) Destroy() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	sdl.Quit()
}
