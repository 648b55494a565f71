package render

import (
	"testing"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

func TestRenderPassCreateInfoShape(t *testing.T) {
	info := renderPassCreateInfo(core1_0.FormatB8G8R8A8SRGB)

	if len(info.Attachments) != 1 {
		t.Fatalf("expected exactly one attachment, got %d", len(info.Attachments))
	}
	attachment := info.Attachments[0]
	if attachment.Format != core1_0.FormatB8G8R8A8SRGB {
		t.Errorf("attachment format %v does not match the swapchain format", attachment.Format)
	}
	if attachment.LoadOp != core1_0.AttachmentLoadOpClear || attachment.StoreOp != core1_0.AttachmentStoreOpStore {
		t.Errorf("expected clear-on-load/store-on-finish, got %v/%v", attachment.LoadOp, attachment.StoreOp)
	}
	if attachment.StencilLoadOp != core1_0.AttachmentLoadOpDontCare || attachment.StencilStoreOp != core1_0.AttachmentStoreOpDontCare {
		t.Error("stencil operations must be don't-care for a color-only pass")
	}
	if attachment.InitialLayout != core1_0.ImageLayoutUndefined {
		t.Errorf("expected undefined initial layout, got %v", attachment.InitialLayout)
	}
	if attachment.FinalLayout != khr_swapchain.ImageLayoutPresentSrc {
		t.Errorf("expected present-ready final layout, got %v", attachment.FinalLayout)
	}

	if len(info.Subpasses) != 1 {
		t.Fatalf("expected exactly one subpass, got %d", len(info.Subpasses))
	}
	subpass := info.Subpasses[0]
	if subpass.PipelineBindPoint != core1_0.PipelineBindPointGraphics {
		t.Errorf("expected a graphics subpass, got %v", subpass.PipelineBindPoint)
	}
	if len(subpass.ColorAttachments) != 1 {
		t.Fatalf("expected one color attachment reference, got %d", len(subpass.ColorAttachments))
	}
	ref := subpass.ColorAttachments[0]
	if ref.Attachment != 0 {
		t.Errorf("expected the reference to point at attachment 0, got %d", ref.Attachment)
	}
	if ref.Layout != core1_0.ImageLayoutColorAttachmentOptimal {
		t.Errorf("expected color-attachment-optimal layout, got %v", ref.Layout)
	}

	if len(info.SubpassDependencies) != 0 {
		t.Errorf("expected no subpass dependencies before any drawing exists, got %d", len(info.SubpassDependencies))
	}
}
