package render

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

var errTest = errors.New("probe failed")

func TestSelectDeviceTakesFirstSuitable(t *testing.T) {
	devices := make([]core1_0.PhysicalDevice, 3)

	var evaluated []int
	_, chosen, err := selectDevice(devices, func(core1_0.PhysicalDevice) (bool, error) {
		evaluated = append(evaluated, len(evaluated))
		return len(evaluated) >= 2, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if chosen != 1 {
		t.Errorf("expected the second device, got index %d", chosen)
	}
	if len(evaluated) != 2 {
		t.Errorf("expected evaluation to stop at the first suitable device, saw %d evaluations", len(evaluated))
	}
}

func TestSelectDeviceFailsOnEmptyList(t *testing.T) {
	_, _, err := selectDevice(nil, func(core1_0.PhysicalDevice) (bool, error) {
		t.Fatal("suitability must not be consulted when no devices exist")
		return false, nil
	})
	if err == nil {
		t.Fatal("expected an error for an empty device list")
	}
	if !strings.Contains(err.Error(), "Vulkan support") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestSelectDeviceFailsWhenNoneSuitable(t *testing.T) {
	devices := make([]core1_0.PhysicalDevice, 2)

	_, _, err := selectDevice(devices, func(core1_0.PhysicalDevice) (bool, error) {
		return false, nil
	})
	if err == nil {
		t.Fatal("expected an error when every device is rejected")
	}
	if !strings.Contains(err.Error(), "suitable GPU") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestSelectDevicePropagatesPredicateError(t *testing.T) {
	devices := make([]core1_0.PhysicalDevice, 2)

	calls := 0
	_, _, err := selectDevice(devices, func(core1_0.PhysicalDevice) (bool, error) {
		calls++
		return false, errTest
	})
	if err != errTest {
		t.Errorf("expected the predicate error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected evaluation to abort on the first error, saw %d calls", calls)
	}
}
