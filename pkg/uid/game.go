package uid

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateGameID gives a short random id used to tag every log line of one game
func GenerateGameID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:12]
}
