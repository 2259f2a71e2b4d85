package config

// OtelConfig controls trace export. An empty endpoint installs a no-op
// provider.
type OtelConfig struct {
	ExporterEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName      string  `env:"OTEL_SERVICE_NAME" envDefault:"intellect-website"`
	SamplingRate     float64 `env:"OTEL_SAMPLING_RATE" envDefault:"1.0"`
}

// Enabled returns true when an OTLP endpoint is configured.
func (c OtelConfig) Enabled() bool {
	return c.ExporterEndpoint != ""
}
