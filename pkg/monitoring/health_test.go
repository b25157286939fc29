package monitoring

import (
	"testing"
)

func TestHealthChecker_AllHealthy(t *testing.T) {
	hc := NewHealthChecker("scoring", "v1")
	hc.AddCheck("a", func() CheckResult { return CheckResult{Status: StatusHealthy} })
	hc.AddCheck("b", func() CheckResult { return CheckResult{Status: StatusHealthy} })

	status := hc.CheckHealth()
	if status.Status != StatusHealthy {
		t.Fatalf("expected healthy, got %s", status.Status)
	}
	if len(status.Checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(status.Checks))
	}
}

func TestHealthChecker_DegradedWins(t *testing.T) {
	hc := NewHealthChecker("scoring", "v1")
	hc.AddCheck("a", func() CheckResult { return CheckResult{Status: StatusHealthy} })
	hc.AddCheck("b", func() CheckResult { return CheckResult{Status: StatusDegraded} })

	if got := hc.CheckHealth().Status; got != StatusDegraded {
		t.Fatalf("expected degraded, got %s", got)
	}
}

func TestHealthChecker_UnhealthyWins(t *testing.T) {
	hc := NewHealthChecker("scoring", "v1")
	hc.AddCheck("a", func() CheckResult { return CheckResult{Status: StatusDegraded} })
	hc.AddCheck("b", func() CheckResult { return CheckResult{Status: StatusUnhealthy} })

	if got := hc.CheckHealth().Status; got != StatusUnhealthy {
		t.Fatalf("expected unhealthy, got %s", got)
	}
}

func TestConfigurationHealthCheck(t *testing.T) {
	check := ConfigurationHealthCheck(map[string]string{"DATABASE_URL": "postgres://x"})
	if got := check().Status; got != StatusHealthy {
		t.Fatalf("expected healthy, got %s", got)
	}

	check = ConfigurationHealthCheck(map[string]string{"DATABASE_URL": ""})
	if got := check().Status; got != StatusUnhealthy {
		t.Fatalf("expected unhealthy, got %s", got)
	}
}
