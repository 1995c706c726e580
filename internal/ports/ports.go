package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Delivery
	EmailProvider EmailProvider

	// Verification
	CodeStore CodeStore

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsCollector
	Database       interface{}
}
