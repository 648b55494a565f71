package render

import (
	"testing"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

func TestChooseSurfaceFormatPrefersBGRASRGB(t *testing.T) {
	formats := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatR8G8B8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		{Format: core1_0.FormatB8G8R8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	}

	chosen := chooseSurfaceFormat(formats)
	if chosen.Format != core1_0.FormatB8G8R8A8SRGB {
		t.Errorf("expected FormatB8G8R8A8SRGB, got %v", chosen.Format)
	}
	if chosen.ColorSpace != khr_surface.ColorSpaceSRGBNonlinear {
		t.Errorf("expected ColorSpaceSRGBNonlinear, got %v", chosen.ColorSpace)
	}
}

func TestChooseSurfaceFormatFallsBackToFirst(t *testing.T) {
	formats := []khr_surface.SurfaceFormat{
		{Format: core1_0.FormatR8G8B8A8UnsignedNormalized, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
		{Format: core1_0.FormatR8G8B8A8SRGB, ColorSpace: khr_surface.ColorSpaceSRGBNonlinear},
	}

	chosen := chooseSurfaceFormat(formats)
	if chosen != formats[0] {
		t.Errorf("expected first listed format %v, got %v", formats[0], chosen)
	}
}

func TestChoosePresentModePrefersMailbox(t *testing.T) {
	modes := []khr_surface.PresentMode{
		khr_surface.PresentModeFIFO,
		khr_surface.PresentModeMailbox,
		khr_surface.PresentModeImmediate,
	}

	if mode := choosePresentMode(modes); mode != khr_surface.PresentModeMailbox {
		t.Errorf("expected mailbox, got %v", mode)
	}
}

func TestChoosePresentModeFallsBackToFIFO(t *testing.T) {
	modes := []khr_surface.PresentMode{
		khr_surface.PresentModeImmediate,
	}

	if mode := choosePresentMode(modes); mode != khr_surface.PresentModeFIFO {
		t.Errorf("expected FIFO fallback, got %v", mode)
	}
}

func TestChooseExtentTakesCurrentExtentVerbatim(t *testing.T) {
	capabilities := &khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: 800, Height: 600},
		MinImageExtent: core1_0.Extent2D{Width: 1, Height: 1},
		MaxImageExtent: core1_0.Extent2D{Width: 4096, Height: 4096},
	}

	// The drawable size must be ignored when the surface pins the extent.
	extent := chooseExtent(capabilities, 1024, 768)
	if extent.Width != 800 || extent.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", extent.Width, extent.Height)
	}
}

func TestChooseExtentClampsDrawableSizeOnSentinel(t *testing.T) {
	capabilities := &khr_surface.SurfaceCapabilities{
		CurrentExtent:  core1_0.Extent2D{Width: undefinedExtent, Height: undefinedExtent},
		MinImageExtent: core1_0.Extent2D{Width: 200, Height: 200},
		MaxImageExtent: core1_0.Extent2D{Width: 900, Height: 900},
	}

	extent := chooseExtent(capabilities, 1024, 768)
	if extent.Width != 900 {
		t.Errorf("expected width clamped to 900, got %d", extent.Width)
	}
	if extent.Height != 768 {
		t.Errorf("expected height passed through as 768, got %d", extent.Height)
	}

	extent = chooseExtent(capabilities, 100, 8000)
	if extent.Width != 200 {
		t.Errorf("expected width raised to 200, got %d", extent.Width)
	}
	if extent.Height != 900 {
		t.Errorf("expected height clamped to 900, got %d", extent.Height)
	}
}

func TestChooseImageCountRequestsOneAboveMinimum(t *testing.T) {
	capabilities := &khr_surface.SurfaceCapabilities{
		MinImageCount: 2,
		MaxImageCount: 8,
	}

	if count := chooseImageCount(capabilities); count != 3 {
		t.Errorf("expected 3 images, got %d", count)
	}
}

func TestChooseImageCountClampsToMaximum(t *testing.T) {
	capabilities := &khr_surface.SurfaceCapabilities{
		MinImageCount: 3,
		MaxImageCount: 3,
	}

	if count := chooseImageCount(capabilities); count != 3 {
		t.Errorf("expected clamp to 3 images, got %d", count)
	}
}

func TestChooseImageCountIgnoresUnboundedMaximum(t *testing.T) {
	capabilities := &khr_surface.SurfaceCapabilities{
		MinImageCount: 4,
		MaxImageCount: 0,
	}

	if count := chooseImageCount(capabilities); count != 5 {
		t.Errorf("expected 5 images under unbounded maximum, got %d", count)
	}
}

func TestImageSharingPolicy(t *testing.T) {
	graphics, present := 0, 1
	mode, families := imageSharingPolicy(QueueFamilyIndices{GraphicsFamily: &graphics, PresentFamily: &present})
	if mode != core1_0.SharingModeConcurrent {
		t.Errorf("expected concurrent sharing across distinct families, got %v", mode)
	}
	if len(families) != 2 || families[0] != 0 || families[1] != 1 {
		t.Errorf("expected families [0 1], got %v", families)
	}

	same := 2
	mode, families = imageSharingPolicy(QueueFamilyIndices{GraphicsFamily: &same, PresentFamily: &same})
	if mode != core1_0.SharingModeExclusive {
		t.Errorf("expected exclusive sharing for a shared family, got %v", mode)
	}
	if families != nil {
		t.Errorf("expected no family list for exclusive sharing, got %v", families)
	}
}
