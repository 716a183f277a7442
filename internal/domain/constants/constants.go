package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Record store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverMemory   = "memory"
)

// Import defaults
const (
	DefaultImportBatchSize     = 500
	DefaultImportProgressEvery = 100
)
