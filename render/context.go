// Package render bootstraps a Vulkan rendering context: it negotiates
// capabilities with the driver and the window surface and builds the fixed
// chain of objects needed before a frame can ever be drawn — instance,
// device, queues, swapchain, image views, render pass, pipeline and
// framebuffers. It stops there: no command buffers are recorded and no
// GPU/CPU synchronization primitives are created.
package render

import (
	"time"

	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// SurfaceProvider is the windowing side of the bootstrap: it knows which
// instance extensions presentation needs, can bind a surface to its window,
// and reports the window's pixel size for extent negotiation.
type SurfaceProvider interface {
	InstanceExtensions() []string
	CreateSurface(instance core1_0.Instance, surfaceDriver khr_surface.ExtensionDriver) (khr_surface.Surface, error)
	DrawableSize() (width, height int)
}

// Context owns every Vulkan object the bootstrap creates. Build one with
// Bootstrap and release it with Destroy; the handles inside are valid in
// between and are never mutated after their creation stage.
type Context struct {
	cfg Config

	globalDriver   core1_0.GlobalDriver
	instanceDriver core1_0.CoreInstanceDriver
	deviceDriver   core1_0.CoreDeviceDriver

	debugExtension ext_debug_utils.ExtensionDriver
	debugMessenger ext_debug_utils.DebugUtilsMessenger

	surfaceExtension khr_surface.ExtensionDriver
	surface          khr_surface.Surface

	physicalDevice core1_0.PhysicalDevice
	queueIndices   QueueFamilyIndices
	graphicsQueue  core1_0.Queue
	presentQueue   core1_0.Queue

	swapchainExtension  khr_swapchain.ExtensionDriver
	swapchain           khr_swapchain.Swapchain
	swapchainImages     []core1_0.Image
	swapchainFormat     core1_0.Format
	swapchainExtent     core1_0.Extent2D
	swapchainImageViews []core1_0.ImageView

	renderPass     core1_0.RenderPass
	pipelineLayout core1_0.PipelineLayout
	pipeline       core1_0.Pipeline
	framebuffers   []core1_0.Framebuffer
}

// Bootstrap runs the full initialization chain against the given driver and
// window. Every stage blocks until its driver call returns and any failure
// aborts the whole sequence; the returned error carries the failing stage.
// On failure the partially built context has already been destroyed.
func Bootstrap(globalDriver core1_0.GlobalDriver, window SurfaceProvider, cfg Config) (*Context, error) {
	c := &Context{
		cfg:          cfg,
		globalDriver: globalDriver,
	}

	drawableWidth, drawableHeight := window.DrawableSize()

	stages := []struct {
		name string
		run  func() error
	}{
		{"instance", func() error { return c.createInstance(window.InstanceExtensions()) }},
		{"debug messenger", c.setupDebugMessenger},
		{"surface", func() error {
			surface, err := window.CreateSurface(c.instanceDriver.Instance(), c.surfaceExtension)
			c.surface = surface
			return err
		}},
		{"physical device", c.pickPhysicalDevice},
		{"logical device", c.createLogicalDevice},
		{"swapchain", func() error { return c.createSwapchain(drawableWidth, drawableHeight) }},
		{"image views", c.createImageViews},
		{"render pass", c.createRenderPass},
		{"graphics pipeline", c.createGraphicsPipeline},
		{"framebuffers", c.createFramebuffers},
	}

	start := hrtime.Now()
	for _, stage := range stages {
		stageStart := hrtime.Now()
		if err := stage.run(); err != nil {
			c.Destroy()
			return nil, err
		}
		c.log().WithFields(logrus.Fields{
			"stage":   stage.name,
			"elapsed": (hrtime.Now() - stageStart).Round(time.Microsecond),
		}).Debug("bootstrap stage complete")
	}

	c.log().WithField("elapsed", (hrtime.Now() - start).Round(time.Microsecond)).
		Info("render context ready")
	return c, nil
}

func (c *Context) log() logrus.FieldLogger {
	if c.cfg.Log != nil {
		return c.cfg.Log
	}
	return logrus.StandardLogger()
}

// GraphicsQueue returns the queue graphics work will be submitted on.
func (c *Context) GraphicsQueue() core1_0.Queue { return c.graphicsQueue }

// PresentQueue returns the queue presentation happens on. It aliases
// GraphicsQueue when one family serves both roles.
func (c *Context) PresentQueue() core1_0.Queue { return c.presentQueue }

// RenderPass returns the single color pass all framebuffers bind to.
func (c *Context) RenderPass() core1_0.RenderPass { return c.renderPass }

// Pipeline returns the fixed-function graphics pipeline.
func (c *Context) Pipeline() core1_0.Pipeline { return c.pipeline }

// Framebuffers returns one framebuffer per swapchain image view.
func (c *Context) Framebuffers() []core1_0.Framebuffer { return c.framebuffers }

// SwapchainExtent returns the negotiated image size in pixels.
func (c *Context) SwapchainExtent() core1_0.Extent2D { return c.swapchainExtent }

// Destroy releases every handle in the strict reverse of creation order.
// It is safe on a partially constructed context; unset handles are skipped.
func (c *Context) Destroy() {
	if c.deviceDriver != nil {
		for _, framebuffer := range c.framebuffers {
			c.deviceDriver.DestroyFramebuffer(framebuffer, nil)
		}
		c.framebuffers = nil

		if c.pipeline.Initialized() {
			c.deviceDriver.DestroyPipeline(c.pipeline, nil)
			c.pipeline = core1_0.Pipeline{}
		}

		if c.pipelineLayout.Initialized() {
			c.deviceDriver.DestroyPipelineLayout(c.pipelineLayout, nil)
			c.pipelineLayout = core1_0.PipelineLayout{}
		}

		if c.renderPass.Initialized() {
			c.deviceDriver.DestroyRenderPass(c.renderPass, nil)
			c.renderPass = core1_0.RenderPass{}
		}

		for _, imageView := range c.swapchainImageViews {
			c.deviceDriver.DestroyImageView(imageView, nil)
		}
		c.swapchainImageViews = nil

		if c.swapchain.Initialized() {
			c.swapchainExtension.DestroySwapchain(c.swapchain, nil)
			c.swapchain = khr_swapchain.Swapchain{}
		}

		c.deviceDriver.DestroyDevice(nil)
		c.deviceDriver = nil
	}

	if c.instanceDriver != nil {
		if c.debugMessenger.Initialized() {
			c.debugExtension.DestroyDebugUtilsMessenger(c.debugMessenger, nil)
			c.debugMessenger = ext_debug_utils.DebugUtilsMessenger{}
		}

		if c.surface.Initialized() {
			c.surfaceExtension.DestroySurface(c.surface, nil)
			c.surface = khr_surface.Surface{}
		}

		c.instanceDriver.DestroyInstance(nil)
		c.instanceDriver = nil
	}
}
