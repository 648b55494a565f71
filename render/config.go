package render

import (
	"github.com/sirupsen/logrus"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// ValidationLayerName is the standard Khronos validation layer requested
// when Config.EnableValidation is set.
const ValidationLayerName = "VK_LAYER_KHRONOS_validation"

// Config carries the compile-time tunables of the bootstrap. There are no
// flags and no configuration files; callers build a Config in code.
type Config struct {
	AppName string

	// EnableValidation requests ValidationLayers at instance and device
	// creation and installs a debug-utils messenger. A requested layer
	// that the driver does not expose is a fatal error, not a fallback.
	EnableValidation bool
	ValidationLayers []string

	// DeviceExtensions every suitable physical device must support.
	DeviceExtensions []string

	// Relative paths to the SPIR-V binaries produced by the offline
	// shader compile step.
	VertexShaderPath   string
	FragmentShaderPath string

	Log logrus.FieldLogger
}

// DefaultConfig enables validation with the Khronos layer, requires the
// swapchain device extension and points at the two compiled triangle
// shaders next to the binary.
func DefaultConfig() Config {
	return Config{
		AppName:            "vkboot",
		EnableValidation:   true,
		ValidationLayers:   []string{ValidationLayerName},
		DeviceExtensions:   []string{khr_swapchain.ExtensionName},
		VertexShaderPath:   "shaders/vert.spv",
		FragmentShaderPath: "shaders/frag.spv",
		Log:                logrus.StandardLogger(),
	}
}
