package infrastructure

import (
	"context"

	"xisms.app/internal/ports"
)

// EmailProviderHealthChecker reports the configured delivery client without
// making an outbound call.
type EmailProviderHealthChecker struct {
	provider ports.EmailProvider
	config   ports.ConfigProvider
}

func NewEmailProviderHealthChecker(provider ports.EmailProvider, config ports.ConfigProvider) *EmailProviderHealthChecker {
	return &EmailProviderHealthChecker{provider: provider, config: config}
}

func (e *EmailProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "email",
		Status:    ports.HealthStatusHealthy,
		Details:   make(map[string]interface{}),
	}

	if e.provider == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "email provider is not configured"
		return status
	}

	status.Details["provider"] = e.provider.Name()
	if e.config != nil {
		cfg := e.config.GetEmailConfig()
		status.Details["from"] = cfg.From
		status.Details["sendTimeout"] = cfg.SendTimeout.String()
		if cfg.Region != "" && e.provider.Name() == "ses" {
			status.Details["region"] = cfg.Region
		}
	}
	return status
}

// pinger is implemented by code stores backed by a network service
type pinger interface {
	Ping(ctx context.Context) error
}

// sizer is implemented by in-process code stores
type sizer interface {
	Len() int
}

// CodeStoreHealthChecker checks the code store backend when it can be reached
type CodeStoreHealthChecker struct {
	store ports.CodeStore
	kind  string
}

func NewCodeStoreHealthChecker(store ports.CodeStore, kind string) *CodeStoreHealthChecker {
	return &CodeStoreHealthChecker{store: store, kind: kind}
}

func (c *CodeStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "codeStore",
		Status:    ports.HealthStatusHealthy,
		Details:   map[string]interface{}{"type": c.kind},
	}

	if c.store == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "code store is not configured"
		return status
	}

	if p, ok := c.store.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			status.Status = ports.HealthStatusUnhealthy
			status.Error = err.Error()
			return status
		}
	}
	if s, ok := c.store.(sizer); ok {
		status.Details["codes"] = s.Len()
	}
	return status
}
