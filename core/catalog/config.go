package catalog

const (
	SourceHTTP     = "http"
	SourceSnapshot = "snapshot"
)

// Config holds configuration for the catalog query facility.
type Config struct {
	// Source selects the backend: "http" (GraphQL upstream) or "snapshot" (object storage).
	Source string `mapstructure:"source" default:"http"`
	// Endpoint is the URL of the upstream GraphQL endpoint.
	Endpoint string `mapstructure:"endpoint" default:"http://localhost:4000/graphql"`
	// Token is sent as a bearer token when set.
	Token string `mapstructure:"token" default:""`
	// Locale is forwarded to the upstream as the X-Locale header when set.
	Locale string `mapstructure:"locale" default:""`
	// TimeoutSeconds bounds each upstream request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// SnapshotPrefix is the object prefix used by the snapshot source.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"catalog"`
}

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceHTTP, SourceSnapshot:
		return true
	default:
		return false
	}
}
