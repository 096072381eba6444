package config

type InternalConfig struct {
	App            App
	CaseStore      CaseStore
	OfficeRegistry OfficeRegistry
	JWT            JWT
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	EndpointPrefix            string
	MaxRequests               int
	ShutdownTimeout           int
	MaxTimeRequestsPerSeconds int
	CorsAllowCredentials      bool
}

type CaseStore struct {
	BaseUrl                  string
	DocumentBaseUrl          string
	IntegrationID            string
	IntegrationPassword      string
	RequestTimeoutInSeconds  int
	DocumentCacheTTLInMinute int
}

type OfficeRegistry struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
	CacheTTLInMinute        int
}

type JWT struct {
	Secret string
}
