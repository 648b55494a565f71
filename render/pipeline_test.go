package render

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vkngwrapper/core/v3/core1_0"
)

func TestBytesToBytecode(t *testing.T) {
	// SPIR-V words are little-endian; the first word of any valid binary is
	// the magic number 0x07230203.
	raw := []byte{0x03, 0x02, 0x23, 0x07, 0xff, 0x00, 0x00, 0x00}

	words := bytesToBytecode(raw)
	want := []uint32{0x07230203, 0x000000ff}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("bytesToBytecode = %#x, want %#x", words, want)
	}
}

func TestLoadShaderCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vert.spv")
	if err := os.WriteFile(path, []byte{0x03, 0x02, 0x23, 0x07}, 0o644); err != nil {
		t.Fatal(err)
	}

	words, err := loadShaderCode(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 1 || words[0] != 0x07230203 {
		t.Errorf("expected the SPIR-V magic word, got %#x", words)
	}
}

func TestLoadShaderCodeMissingFile(t *testing.T) {
	_, err := loadShaderCode(filepath.Join(t.TempDir(), "nope.spv"))
	if err == nil {
		t.Fatal("expected an error for a missing shader binary")
	}
}

func TestLoadShaderCodeRejectsTruncatedBinary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frag.spv")
	if err := os.WriteFile(path, []byte{0x03, 0x02, 0x23}, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := loadShaderCode(path)
	if err == nil {
		t.Fatal("expected an error for a binary not a multiple of four bytes")
	}
	if !strings.Contains(err.Error(), "SPIR-V") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestLoadShaderCodeRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.spv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadShaderCode(path); err == nil {
		t.Fatal("expected an error for an empty shader binary")
	}
}

func TestGraphicsPipelineCreateInfoShape(t *testing.T) {
	var vertShader, fragShader core1_0.ShaderModule
	var layout core1_0.PipelineLayout
	var renderPass core1_0.RenderPass
	extent := core1_0.Extent2D{Width: 800, Height: 600}

	info := graphicsPipelineCreateInfo(vertShader, fragShader, layout, renderPass, extent)

	if len(info.Stages) != 2 {
		t.Fatalf("expected vertex and fragment stages, got %d stages", len(info.Stages))
	}
	if info.Stages[0].Stage != core1_0.StageVertex || info.Stages[1].Stage != core1_0.StageFragment {
		t.Error("expected the vertex stage first and the fragment stage second")
	}
	for _, stage := range info.Stages {
		if stage.Name != "main" {
			t.Errorf("expected entry point \"main\", got %q", stage.Name)
		}
	}

	if len(info.VertexInputState.VertexBindingDescriptions) != 0 ||
		len(info.VertexInputState.VertexAttributeDescriptions) != 0 {
		t.Error("expected empty vertex input, vertices are generated in the shader")
	}

	if info.InputAssemblyState.Topology != core1_0.PrimitiveTopologyTriangleList {
		t.Errorf("expected triangle-list topology, got %v", info.InputAssemblyState.Topology)
	}
	if info.InputAssemblyState.PrimitiveRestartEnable {
		t.Error("primitive restart must be disabled")
	}

	if len(info.ViewportState.Viewports) != 1 || len(info.ViewportState.Scissors) != 1 {
		t.Fatal("expected a single static viewport and scissor")
	}
	viewport := info.ViewportState.Viewports[0]
	if viewport.Width != 800 || viewport.Height != 600 {
		t.Errorf("expected the viewport to cover 800x600, got %.0fx%.0f", viewport.Width, viewport.Height)
	}
	if info.ViewportState.Scissors[0].Extent != extent {
		t.Errorf("expected the scissor to cover the full extent, got %v", info.ViewportState.Scissors[0].Extent)
	}

	raster := info.RasterizationState
	if raster.PolygonMode != core1_0.PolygonModeFill {
		t.Errorf("expected fill polygon mode, got %v", raster.PolygonMode)
	}
	if raster.CullMode != core1_0.CullModeBack || raster.FrontFace != core1_0.FrontFaceClockwise {
		t.Error("expected back-face culling with clockwise front faces")
	}
	if raster.LineWidth != 1.0 {
		t.Errorf("expected line width 1.0, got %v", raster.LineWidth)
	}

	if info.MultisampleState.RasterizationSamples != core1_0.Samples1 {
		t.Errorf("expected single-sample rasterization, got %v", info.MultisampleState.RasterizationSamples)
	}

	blend := info.ColorBlendState
	if len(blend.Attachments) != 1 {
		t.Fatalf("expected one blend attachment, got %d", len(blend.Attachments))
	}
	if blend.Attachments[0].BlendEnabled {
		t.Error("blending must be disabled")
	}
	wantMask := core1_0.ColorComponentRed | core1_0.ColorComponentGreen | core1_0.ColorComponentBlue | core1_0.ColorComponentAlpha
	if blend.Attachments[0].ColorWriteMask != wantMask {
		t.Errorf("expected all color components writable, got %v", blend.Attachments[0].ColorWriteMask)
	}

	if info.Subpass != 0 {
		t.Errorf("expected subpass 0, got %d", info.Subpass)
	}
	if info.BasePipelineIndex != -1 {
		t.Errorf("expected no base pipeline, got index %d", info.BasePipelineIndex)
	}
}
