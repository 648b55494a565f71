package render

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// bytesToBytecode reinterprets a SPIR-V binary as the little-endian word
// stream the driver expects.
func bytesToBytecode(b []byte) []uint32 {
	byteCode := make([]uint32, len(b)/4)
	for i := 0; i < len(byteCode); i++ {
		byteIndex := i * 4
		byteCode[i] = 0
		byteCode[i] |= uint32(b[byteIndex])
		byteCode[i] |= uint32(b[byteIndex+1]) << 8
		byteCode[i] |= uint32(b[byteIndex+2]) << 16
		byteCode[i] |= uint32(b[byteIndex+3]) << 24
	}

	return byteCode
}

// loadShaderCode reads a compiled SPIR-V binary produced by the offline
// shader compile step. The file is addressed relative to the working
// directory; a missing or truncated binary aborts the bootstrap.
func loadShaderCode(path string) ([]uint32, error) {
	shaderBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read shader binary %q", path)
	}
	if len(shaderBytes) == 0 || len(shaderBytes)%4 != 0 {
		return nil, errors.Newf("shader binary %q is not valid SPIR-V: %d bytes", path, len(shaderBytes))
	}
	return bytesToBytecode(shaderBytes), nil
}

// graphicsPipelineCreateInfo assembles the fixed-function state for the one
// pipeline this bootstrap produces: no vertex input (vertices are generated
// in the vertex shader), triangle-list assembly, a static viewport and
// scissor covering the full swapchain extent, filled back-culled clockwise
// rasterization, a single sample and no blending.
func graphicsPipelineCreateInfo(vertShader, fragShader core1_0.ShaderModule, layout core1_0.PipelineLayout, renderPass core1_0.RenderPass, extent core1_0.Extent2D) core1_0.GraphicsPipelineCreateInfo {
	return core1_0.GraphicsPipelineCreateInfo{
		Stages: []core1_0.PipelineShaderStageCreateInfo{
			{
				Stage:  core1_0.StageVertex,
				Module: vertShader,
				Name:   "main",
			},
			{
				Stage:  core1_0.StageFragment,
				Module: fragShader,
				Name:   "main",
			},
		},
		VertexInputState: &core1_0.PipelineVertexInputStateCreateInfo{},
		InputAssemblyState: &core1_0.PipelineInputAssemblyStateCreateInfo{
			Topology:               core1_0.PrimitiveTopologyTriangleList,
			PrimitiveRestartEnable: false,
		},
		ViewportState: &core1_0.PipelineViewportStateCreateInfo{
			Viewports: []core1_0.Viewport{
				{
					X:        0,
					Y:        0,
					Width:    float32(extent.Width),
					Height:   float32(extent.Height),
					MinDepth: 0,
					MaxDepth: 1,
				},
			},
			Scissors: []core1_0.Rect2D{
				{
					Offset: core1_0.Offset2D{X: 0, Y: 0},
					Extent: extent,
				},
			},
		},
		RasterizationState: &core1_0.PipelineRasterizationStateCreateInfo{
			DepthClampEnable:        false,
			RasterizerDiscardEnable: false,

			PolygonMode: core1_0.PolygonModeFill,
			CullMode:    core1_0.CullModeBack,
			FrontFace:   core1_0.FrontFaceClockwise,

			DepthBiasEnable: false,

			LineWidth: 1.0,
		},
		MultisampleState: &core1_0.PipelineMultisampleStateCreateInfo{
			SampleShadingEnable:  false,
			RasterizationSamples: core1_0.Samples1,
			MinSampleShading:     1.0,
		},
		ColorBlendState: &core1_0.PipelineColorBlendStateCreateInfo{
			LogicOpEnabled: false,
			LogicOp:        core1_0.LogicOpCopy,

			BlendConstants: [4]float32{0, 0, 0, 0},
			Attachments: []core1_0.PipelineColorBlendAttachmentState{
				{
					BlendEnabled:   false,
					ColorWriteMask: core1_0.ColorComponentRed | core1_0.ColorComponentGreen | core1_0.ColorComponentBlue | core1_0.ColorComponentAlpha,
				},
			},
		},
		Layout:            layout,
		RenderPass:        renderPass,
		Subpass:           0,
		BasePipelineIndex: -1,
	}
}

func (c *Context) createGraphicsPipeline() error {
	vertCode, err := loadShaderCode(c.cfg.VertexShaderPath)
	if err != nil {
		return err
	}

	vertShader, _, err := c.deviceDriver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: vertCode,
	})
	if err != nil {
		return errors.Wrap(err, "create vertex shader module")
	}
	// Shader modules only feed pipeline compilation; they are not retained.
	defer c.deviceDriver.DestroyShaderModule(vertShader, nil)

	fragCode, err := loadShaderCode(c.cfg.FragmentShaderPath)
	if err != nil {
		return err
	}

	fragShader, _, err := c.deviceDriver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: fragCode,
	})
	if err != nil {
		return errors.Wrap(err, "create fragment shader module")
	}
	defer c.deviceDriver.DestroyShaderModule(fragShader, nil)

	c.pipelineLayout, _, err = c.deviceDriver.CreatePipelineLayout(nil, core1_0.PipelineLayoutCreateInfo{})
	if err != nil {
		return errors.Wrap(err, "create pipeline layout")
	}

	pipelines, _, err := c.deviceDriver.CreateGraphicsPipelines(nil, nil,
		graphicsPipelineCreateInfo(vertShader, fragShader, c.pipelineLayout, c.renderPass, c.swapchainExtent),
	)
	if err != nil {
		return errors.Wrap(err, "create graphics pipeline")
	}
	c.pipeline = pipelines[0]

	return nil
}
