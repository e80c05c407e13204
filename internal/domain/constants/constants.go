package constants

// Runtime environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Identity providers
const (
	AuthProviderJWT      = "jwt"
	AuthProviderFirebase = "firebase"
)

// Domain event sources
const (
	PubSubProviderPush   = "push"
	PubSubProviderGoogle = "google"
)
