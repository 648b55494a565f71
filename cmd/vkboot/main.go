// Command vkboot opens a window, bootstraps a Vulkan rendering context
// against it and idles on the event loop until the window is closed. It
// draws nothing; its job is proving the initialization chain works on the
// host it runs on.
package main

import (
	"runtime"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gfxkit/vkboot/render"
	"github.com/gfxkit/vkboot/window"
)

const (
	windowTitle  = "vkboot"
	windowWidth  = 800
	windowHeight = 600
)

func init() {
	// SDL event handling must stay on the thread that initialized it.
	runtime.LockOSThread()
}

func main() {
	log := logrus.StandardLogger()
	log.SetLevel(logrus.DebugLevel)
	sessionLog := log.WithField("session", uuid.NewString())

	win, err := window.New(windowTitle, windowWidth, windowHeight)
	if err != nil {
		sessionLog.WithError(err).Fatal("window creation failed")
	}
	defer win.Destroy()

	driver, err := win.Driver()
	if err != nil {
		sessionLog.WithError(err).Fatal("Vulkan driver load failed")
	}

	cfg := render.DefaultConfig()
	cfg.AppName = windowTitle
	cfg.Log = sessionLog

	ctx, err := render.Bootstrap(driver, win, cfg)
	if err != nil {
		sessionLog.WithError(err).Fatal("bootstrap failed")
	}
	defer ctx.Destroy()

	sessionLog.WithField("framebuffers", len(ctx.Framebuffers())).
		Info("context up, waiting for window close")
	win.PollUntilClosed()
}
