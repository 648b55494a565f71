package render

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_subset"
)

// QueueFamilyIndices holds the queue-family indices a device must provide
// before it can drive the swapchain: one family that executes graphics work
// and one that can present to the surface. The same family may fill both
// roles.
type QueueFamilyIndices struct {
	GraphicsFamily *int
	PresentFamily  *int
}

// IsComplete reports whether both families have been resolved.
func (i QueueFamilyIndices) IsComplete() bool {
	return i.GraphicsFamily != nil && i.PresentFamily != nil
}

// resolveQueueFamilies scans the queue-family list of a single candidate
// device and records the first index advertising graphics and the first
// index for which canPresent holds. The scan stops as soon as both are
// found. Each call starts from an empty result so nothing resolved for one
// candidate can leak into the evaluation of the next.
func resolveQueueFamilies(families []core1_0.QueueFamilyProperties, canPresent func(index int) (bool, error)) (QueueFamilyIndices, error) {
	var indices QueueFamilyIndices

	for familyIdx, family := range families {
		if indices.GraphicsFamily == nil && (family.QueueFlags&core1_0.QueueGraphics) != 0 {
			idx := familyIdx
			indices.GraphicsFamily = &idx
		}

		if indices.PresentFamily == nil {
			supported, err := canPresent(familyIdx)
			if err != nil {
				return QueueFamilyIndices{}, err
			}
			if supported {
				idx := familyIdx
				indices.PresentFamily = &idx
			}
		}

		if indices.IsComplete() {
			break
		}
	}

	return indices, nil
}

func (c *Context) findQueueFamilies(device core1_0.PhysicalDevice) (QueueFamilyIndices, error) {
	familyPtrs := c.instanceDriver.GetPhysicalDeviceQueueFamilyProperties(device)
	families := make([]core1_0.QueueFamilyProperties, len(familyPtrs))
	for i, family := range familyPtrs {
		families[i] = *family
	}

	return resolveQueueFamilies(families, func(index int) (bool, error) {
		supported, _, err := c.surfaceExtension.GetPhysicalDeviceSurfaceSupport(c.surface, device, index)
		if err != nil {
			return false, errors.Wrapf(err, "query present support for queue family %d", index)
		}
		return supported, nil
	})
}

// uniqueQueueFamilies collapses the resolved indices into the distinct set
// of families that need a queue created. Order is graphics first, then
// present when it differs.
func uniqueQueueFamilies(indices QueueFamilyIndices) []int {
	families := []int{*indices.GraphicsFamily}
	if *indices.PresentFamily != *indices.GraphicsFamily {
		families = append(families, *indices.PresentFamily)
	}
	return families
}

func (c *Context) createLogicalDevice() error {
	indices, err := c.findQueueFamilies(c.physicalDevice)
	if err != nil {
		return err
	}
	c.queueIndices = indices

	var queueInfos []core1_0.DeviceQueueCreateInfo
	for _, family := range uniqueQueueFamilies(indices) {
		queueInfos = append(queueInfos, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  []float32{1.0},
		})
	}

	extensionNames := append([]string{}, c.cfg.DeviceExtensions...)

	// Devices behind the portability layer (MoltenVK) must have the subset
	// extension enabled whenever they advertise it.
	available, _, err := c.instanceDriver.EnumerateDeviceExtensionProperties(c.physicalDevice)
	if err != nil {
		return errors.Wrap(err, "enumerate device extensions")
	}
	if _, supported := available[khr_portability_subset.ExtensionName]; supported {
		extensionNames = append(extensionNames, khr_portability_subset.ExtensionName)
	}

	// Modern drivers ignore device-level layers, but mirroring the instance
	// layer set keeps older loaders happy.
	var layerNames []string
	if c.cfg.EnableValidation {
		layerNames = append(layerNames, c.cfg.ValidationLayers...)
	}
	// core/v3 dropped DeviceCreateInfo.EnabledLayerNames and always passes nil
	// device layers to the driver, so the mirrored set cannot be forwarded.
	_ = layerNames

	c.deviceDriver, _, err = c.instanceDriver.CreateDevice(c.physicalDevice, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueInfos,
		EnabledFeatures:       &core1_0.PhysicalDeviceFeatures{},
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return errors.Wrap(err, "create logical device")
	}

	c.graphicsQueue = c.deviceDriver.GetQueue(*indices.GraphicsFamily, 0)
	c.presentQueue = c.deviceDriver.GetQueue(*indices.PresentFamily, 0)
	return nil
}
