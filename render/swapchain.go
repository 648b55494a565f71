package render

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// undefinedExtent is the surface-capabilities sentinel (0xFFFFFFFF in the C
// API, -1 through vkngwrapper's signed types) meaning the surface lets the
// swapchain decide its own extent.
const undefinedExtent = -1

// chooseSurfaceFormat prefers 8-bit BGRA with the standard sRGB nonlinear
// color space and otherwise takes whatever the driver lists first.
func chooseSurfaceFormat(availableFormats []khr_surface.SurfaceFormat) khr_surface.SurfaceFormat {
	for _, format := range availableFormats {
		if format.Format == core1_0.FormatB8G8R8A8SRGB && format.ColorSpace == khr_surface.ColorSpaceSRGBNonlinear {
			return format
		}
	}
	return availableFormats[0]
}

// choosePresentMode prefers the low-latency mailbox mode and falls back to
// FIFO, which every conformant driver supports.
func choosePresentMode(availableModes []khr_surface.PresentMode) khr_surface.PresentMode {
	for _, mode := range availableModes {
		if mode == khr_surface.PresentModeMailbox {
			return mode
		}
	}
	return khr_surface.PresentModeFIFO
}

// chooseExtent takes the surface's current extent verbatim unless the
// surface reports the undefined sentinel, in which case the drawable pixel
// size is clamped componentwise into the supported range.
func chooseExtent(capabilities *khr_surface.SurfaceCapabilities, drawableWidth, drawableHeight int) core1_0.Extent2D {
	if capabilities.CurrentExtent.Width != undefinedExtent {
		return capabilities.CurrentExtent
	}

	extent := core1_0.Extent2D{Width: drawableWidth, Height: drawableHeight}

	if extent.Width < capabilities.MinImageExtent.Width {
		extent.Width = capabilities.MinImageExtent.Width
	}
	if extent.Width > capabilities.MaxImageExtent.Width {
		extent.Width = capabilities.MaxImageExtent.Width
	}
	if extent.Height < capabilities.MinImageExtent.Height {
		extent.Height = capabilities.MinImageExtent.Height
	}
	if extent.Height > capabilities.MaxImageExtent.Height {
		extent.Height = capabilities.MaxImageExtent.Height
	}

	return extent
}

// chooseImageCount requests one image beyond the driver minimum so
// acquisition never waits on the driver, clamped to the maximum when the
// surface bounds it. A maximum of 0 means unbounded.
func chooseImageCount(capabilities *khr_surface.SurfaceCapabilities) int {
	imageCount := capabilities.MinImageCount + 1
	if capabilities.MaxImageCount > 0 && imageCount > capabilities.MaxImageCount {
		imageCount = capabilities.MaxImageCount
	}
	return imageCount
}

// imageSharingPolicy returns concurrent sharing across both families when
// graphics and present resolve to different queue families, exclusive
// ownership otherwise.
func imageSharingPolicy(indices QueueFamilyIndices) (core1_0.SharingMode, []int) {
	if *indices.GraphicsFamily != *indices.PresentFamily {
		return core1_0.SharingModeConcurrent, []int{*indices.GraphicsFamily, *indices.PresentFamily}
	}
	return core1_0.SharingModeExclusive, nil
}

func (c *Context) createSwapchain(drawableWidth, drawableHeight int) error {
	c.swapchainExtension = khr_swapchain.CreateExtensionDriverFromCoreDriver(c.deviceDriver)

	support, err := c.querySwapchainSupport(c.physicalDevice)
	if err != nil {
		return err
	}

	surfaceFormat := chooseSurfaceFormat(support.Formats)
	presentMode := choosePresentMode(support.PresentModes)
	extent := chooseExtent(support.Capabilities, drawableWidth, drawableHeight)
	imageCount := chooseImageCount(support.Capabilities)
	sharingMode, queueFamilyIndices := imageSharingPolicy(c.queueIndices)

	c.swapchain, _, err = c.swapchainExtension.CreateSwapchain(nil, khr_swapchain.SwapchainCreateInfo{
		Surface: c.surface,

		MinImageCount:    imageCount,
		ImageFormat:      surfaceFormat.Format,
		ImageColorSpace:  surfaceFormat.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: queueFamilyIndices,

		PreTransform:   support.Capabilities.CurrentTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    presentMode,
		Clipped:        true,
	})
	if err != nil {
		return errors.Wrap(err, "create swapchain")
	}

	c.swapchainFormat = surfaceFormat.Format
	c.swapchainExtent = extent

	c.log().WithFields(logrus.Fields{
		"format":  surfaceFormat.Format,
		"mode":    presentMode,
		"extent":  extent,
		"images":  imageCount,
		"sharing": sharingMode,
	}).Debug("negotiated swapchain")
	return nil
}

func (c *Context) createImageViews() error {
	// The driver may hand back more images than requested; the actual list
	// is authoritative from here on.
	images, _, err := c.swapchainExtension.GetSwapchainImages(c.swapchain)
	if err != nil {
		return errors.Wrap(err, "get swapchain images")
	}
	c.swapchainImages = images

	for _, image := range images {
		view, _, err := c.deviceDriver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
			Image:    image,
			ViewType: core1_0.ImageViewType2D,
			Format:   c.swapchainFormat,
			Components: core1_0.ComponentMapping{
				R: core1_0.ComponentSwizzleIdentity,
				G: core1_0.ComponentSwizzleIdentity,
				B: core1_0.ComponentSwizzleIdentity,
				A: core1_0.ComponentSwizzleIdentity,
			},
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask:     core1_0.ImageAspectColor,
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		})
		if err != nil {
			return errors.Wrap(err, "create swapchain image view")
		}
		c.swapchainImageViews = append(c.swapchainImageViews, view)
	}

	return nil
}
