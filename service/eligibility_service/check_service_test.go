package eligibility_service

import (
	"strings"
	"testing"
	"time"

	"github.com/BubsLB/airdropbreakdown/model"
)

func TestCheckService_Delay(t *testing.T) {
	resolver := singleResolver(t, model.AirdropDataset{
		addressOne: {Total: 500},
	})
	service := NewCheckService(resolver, 1200*time.Millisecond)

	var slept []time.Duration
	service.sleep = func(d time.Duration) { slept = append(slept, d) }

	if result := service.Check(addressOne); result.Kind != KindEligible {
		t.Errorf("Expected eligible, got %s", result.Kind)
	}
	if result := service.Check("0x" + strings.Repeat("0", 39) + "2"); result.Kind != KindNotEligible {
		t.Errorf("Expected not_eligible, got %s", result.Kind)
	}
	if len(slept) != 2 || slept[0] != 1200*time.Millisecond {
		t.Errorf("Expected two delays of 1.2s, got %v", slept)
	}

	slept = nil
	service.Check("")
	service.Check("not-an-address")
	if len(slept) != 0 {
		t.Errorf("Expected rejected input to skip the delay, got %v", slept)
	}
}

func TestCheckService_NoDelay(t *testing.T) {
	resolver := singleResolver(t, model.AirdropDataset{})
	service := NewCheckService(resolver, -time.Second)

	service.sleep = func(d time.Duration) { t.Errorf("Unexpected sleep of %s", d) }
	service.Check(addressOne)
}

func TestCheckService_Validate(t *testing.T) {
	resolver := aliasResolver(t)
	service := NewCheckService(resolver, 0)

	names := service.Validate("  " + algorandAddress)
	if len(names) != 1 || names[0] != SchemeAlgorand {
		t.Errorf("Expected [algorand], got %v", names)
	}
	if len(service.Schemes()) != 2 {
		t.Errorf("Expected 2 schemes, got %d", len(service.Schemes()))
	}
}
