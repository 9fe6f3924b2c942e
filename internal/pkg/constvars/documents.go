package constvars

import "time"

const (
	DefaultPresignedURLExpiry = 1 * time.Hour
	MultipartFormMemoryLimit  = 8 << 20
)
