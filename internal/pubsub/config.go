package pubsub

// TracingSettings is the part of the application configuration the bus
// reads its tracing options from.
type TracingSettings interface {
	GetTracingEnabled() bool
	GetTracingServiceName() string
	GetTracingZipkinURL() string
}

// LoadTracingConfig builds a TracingConfig, keeping defaults for unset values.
func LoadTracingConfig(s TracingSettings) TracingConfig {
	config := DefaultTracingConfig()
	config.Enabled = s.GetTracingEnabled()

	if name := s.GetTracingServiceName(); name != "" {
		config.ServiceName = name
	}
	if url := s.GetTracingZipkinURL(); url != "" {
		config.ZipkinURL = url
	}
	return config
}
