package render

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// framebufferCreateInfos produces one create info per swapchain image view,
// each binding exactly that view to the render pass at the swapchain extent.
func framebufferCreateInfos(renderPass core1_0.RenderPass, views []core1_0.ImageView, extent core1_0.Extent2D) []core1_0.FramebufferCreateInfo {
	infos := make([]core1_0.FramebufferCreateInfo, 0, len(views))
	for _, view := range views {
		infos = append(infos, core1_0.FramebufferCreateInfo{
			RenderPass:  renderPass,
			Attachments: []core1_0.ImageView{view},
			Width:       extent.Width,
			Height:      extent.Height,
			Layers:      1,
		})
	}
	return infos
}

func (c *Context) createFramebuffers() error {
	for viewIdx, info := range framebufferCreateInfos(c.renderPass, c.swapchainImageViews, c.swapchainExtent) {
		framebuffer, _, err := c.deviceDriver.CreateFramebuffer(nil, info)
		if err != nil {
			return errors.Wrapf(err, "create framebuffer for image view %d", viewIdx)
		}
		c.framebuffers = append(c.framebuffers, framebuffer)
	}
	return nil
}
