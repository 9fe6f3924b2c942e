package utils

import (
	"benefits-portal-service/internal/pkg/constvars"
	"fmt"
	"math/rand/v2"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GeneratePseudoAppointmentID returns an id in a range the provider does not hand out,
// so simulated appointments never collide with real ones.
func GeneratePseudoAppointmentID() int {
	return 900_000_000 + rand.IntN(99_999_999)
}

func GenerateDocumentObjectName(memberID, documentID, fileName string) string {
	extension := strings.ToLower(path.Ext(fileName))
	timestamp := time.Now().UTC().Format("20060102_150405")
	return fmt.Sprintf("members/%s/%s_%s%s", memberID, timestamp, documentID, extension)
}
