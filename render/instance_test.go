package render

import (
	"reflect"
	"testing"
)

func TestMissingNames(t *testing.T) {
	available := map[string]struct{}{
		"VK_KHR_surface":              {},
		"VK_LAYER_KHRONOS_validation": {},
	}

	tests := []struct {
		name      string
		requested []string
		want      []string
	}{
		{"all present", []string{"VK_KHR_surface"}, nil},
		{"none requested", nil, nil},
		{"one missing", []string{"VK_KHR_surface", "VK_KHR_xcb_surface"}, []string{"VK_KHR_xcb_surface"}},
		{"preserves request order", []string{"b_ext", "a_ext"}, []string{"b_ext", "a_ext"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := missingNames(available, tt.requested)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("missingNames(%v) = %v, want %v", tt.requested, got, tt.want)
			}
		})
	}
}

func TestMissingNamesExactMatchOnly(t *testing.T) {
	// Membership is exact string equality; prefixes and near-misses of an
	// available name must still be reported missing.
	available := map[string]struct{}{
		"VK_LAYER_KHRONOS_validation": {},
	}

	missing := missingNames(available, []string{"VK_LAYER_KHRONOS"})
	if len(missing) != 1 || missing[0] != "VK_LAYER_KHRONOS" {
		t.Errorf("expected the truncated layer name to be missing, got %v", missing)
	}
}
