package config

type DriverConfig struct {
	Redis    Redis
	MongoDB  MongoDB
	RabbitMQ RabbitMQ
	Logger   Logger
}

type Redis struct {
	Host     string
	Port     string
	Password string
}

type MongoDB struct {
	Host     string
	Port     string
	DbName   string
	Username string
	Password string
}

type RabbitMQ struct {
	Host     string
	Port     string
	Username string
	Password string
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
}

type InternalConfig struct {
	App      App
	Upstream Upstream
	JWT      JWT
}

type App struct {
	Env                      string
	Port                     string
	ShutdownTimeoutInSeconds int
	MaxRequestsPerSecond     int
	LoginAttemptsPerMinute   int
	SessionExpiryTimeInHours int
	OpsAPIKeyHash            string
	AuditEnabled             bool
	EventsEnabled            bool
}

type Upstream struct {
	BaseURL                 string
	RequestTimeoutInSeconds int
	RetryMax                int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
