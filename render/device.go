package render

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// SwapchainSupportDetails is everything the negotiator needs to know about
// a device/surface pair. A device is only viable when both Formats and
// PresentModes are non-empty.
type SwapchainSupportDetails struct {
	Capabilities *khr_surface.SurfaceCapabilities
	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

// selectDevice returns the first candidate, in enumeration order, for which
// the suitability predicate holds. An empty candidate list fails before the
// predicate is ever consulted.
func selectDevice(devices []core1_0.PhysicalDevice, suitable func(core1_0.PhysicalDevice) (bool, error)) (core1_0.PhysicalDevice, int, error) {
	if len(devices) == 0 {
		return core1_0.PhysicalDevice{}, -1, errors.New("failed to find GPUs with Vulkan support")
	}

	for deviceIdx, device := range devices {
		ok, err := suitable(device)
		if err != nil {
			return core1_0.PhysicalDevice{}, -1, err
		}
		if ok {
			return device, deviceIdx, nil
		}
	}

	return core1_0.PhysicalDevice{}, -1, errors.New("failed to find a suitable GPU")
}

func (c *Context) pickPhysicalDevice() error {
	devices, _, err := c.instanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return errors.Wrap(err, "enumerate physical devices")
	}

	device, deviceIdx, err := selectDevice(devices, c.isDeviceSuitable)
	if err != nil {
		return err
	}

	c.physicalDevice = device
	c.log().WithField("device", deviceIdx).Debug("selected physical device")
	return nil
}

// isDeviceSuitable evaluates the three-part suitability predicate from the
// selection policy: complete queue families, required device extensions and
// a usable swapchain. Rejection is not an error; it moves the selector on to
// the next candidate.
func (c *Context) isDeviceSuitable(device core1_0.PhysicalDevice) (bool, error) {
	indices, err := c.findQueueFamilies(device)
	if err != nil {
		return false, err
	}
	if !indices.IsComplete() {
		return false, nil
	}

	available, _, err := c.instanceDriver.EnumerateDeviceExtensionProperties(device)
	if err != nil {
		return false, errors.Wrap(err, "enumerate device extensions")
	}
	if len(missingNames(available, c.cfg.DeviceExtensions)) > 0 {
		return false, nil
	}

	support, err := c.querySwapchainSupport(device)
	if err != nil {
		return false, err
	}
	return len(support.Formats) > 0 && len(support.PresentModes) > 0, nil
}

func (c *Context) querySwapchainSupport(device core1_0.PhysicalDevice) (SwapchainSupportDetails, error) {
	var details SwapchainSupportDetails
	var err error

	details.Capabilities, _, err = c.surfaceExtension.GetPhysicalDeviceSurfaceCapabilities(c.surface, device)
	if err != nil {
		return details, errors.Wrap(err, "query surface capabilities")
	}

	details.Formats, _, err = c.surfaceExtension.GetPhysicalDeviceSurfaceFormats(c.surface, device)
	if err != nil {
		return details, errors.Wrap(err, "query surface formats")
	}

	details.PresentModes, _, err = c.surfaceExtension.GetPhysicalDeviceSurfacePresentModes(c.surface, device)
	if err != nil {
		return details, errors.Wrap(err, "query surface present modes")
	}
	return details, nil
}
