package config

import "time"

type InternalConfig struct {
	App          App
	Scheduling   AppScheduling
	MedicalTerms AppMedicalTerms
	Bookings     AppBookings
	Documents    AppDocuments
	RabbitMQ     AppRabbitMQ
}

type App struct {
	Env                         string
	Port                        string
	Version                     string
	Timezone                    string
	EndpointPrefix              string
	MaxRequests                 int
	MaxBookingRequestsPerMinute int
	ShutdownTimeoutInSeconds    int
	RequestTimeoutInSeconds     int
	RequestBodyLimitInMegabyte  int
	AllowedOrigins              []string
}

// AppScheduling configures the upstream scheduling provider.
type AppScheduling struct {
	BaseUrl   string
	UserID    string
	ApiKey    string
	Timeout   time.Duration
	RateLimit float64
	RateBurst int
	// AllowSimulatedBookings lets CreateAppointment fabricate a booking when the provider is down.
	// Meant for demos and local development only.
	AllowSimulatedBookings bool
}

type AppMedicalTerms struct {
	BaseUrl       string
	Timeout       time.Duration
	CacheCapacity int
	CacheTTL      time.Duration
	MaxResults    int
}

type AppBookings struct {
	DraftTTL time.Duration
}

type AppDocuments struct {
	BucketName                string
	MaxUploadSizeInMegabyte   int64
	PresignedURLExpiryInHours int
}

type AppRabbitMQ struct {
	SchedulingEventsQueue string
}
