package render

import (
	"testing"

	"github.com/vkngwrapper/core/v3/core1_0"
)

func TestFramebufferCreateInfosOnePerView(t *testing.T) {
	var renderPass core1_0.RenderPass
	views := make([]core1_0.ImageView, 3)
	extent := core1_0.Extent2D{Width: 800, Height: 600}

	infos := framebufferCreateInfos(renderPass, views, extent)
	if len(infos) != len(views) {
		t.Fatalf("expected %d framebuffers, got %d", len(views), len(infos))
	}

	for infoIdx, info := range infos {
		if len(info.Attachments) != 1 {
			t.Errorf("framebuffer %d: expected a single attachment, got %d", infoIdx, len(info.Attachments))
		}
		if info.Width != 800 || info.Height != 600 {
			t.Errorf("framebuffer %d: expected 800x600, got %dx%d", infoIdx, info.Width, info.Height)
		}
		if info.Layers != 1 {
			t.Errorf("framebuffer %d: expected a single layer, got %d", infoIdx, info.Layers)
		}
	}
}

func TestFramebufferCreateInfosEmptyViews(t *testing.T) {
	var renderPass core1_0.RenderPass
	infos := framebufferCreateInfos(renderPass, nil, core1_0.Extent2D{Width: 1, Height: 1})
	if len(infos) != 0 {
		t.Errorf("expected no framebuffers without views, got %d", len(infos))
	}
}
