package config

type (
	DriverConfig struct {
		Postgres Postgres
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	// Postgres is optional. An empty Host disables the ledger, documents and brand configs.
	Postgres struct {
		Host     string
		Port     string
		Username string
		Password string
		DBName   string
		SSLMode  string
		MaxConns int
	}
	// Redis is optional. An empty Host keeps booking drafts in memory.
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	// RabbitMQ is optional. An empty Host disables scheduling events.
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	// Minio is optional. An empty Host disables the documents endpoints.
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
