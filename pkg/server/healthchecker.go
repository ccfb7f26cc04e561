package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// ProbeHealthChecker reports healthy while a probe function succeeds. The
// API wires it with a pipeline round-trip so /health exercises real code
// instead of returning a constant.
type ProbeHealthChecker struct {
	probe func() error
}

func NewProbeHealthChecker(probe func() error) *ProbeHealthChecker {
	return &ProbeHealthChecker{probe: probe}
}

func (hc *ProbeHealthChecker) Healthy(ctx context.Context) bool {
	return hc.probe() == nil
}
