package services

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

const meetingDomain = "meet.jit.si"

var roomNameChars = regexp.MustCompile(`[^a-zA-Z0-9-_]`)

// GenerateMeetingURL derives the video room URL for a session. The URL is a
// pure function of the session id, so re-confirming a session always lands
// both participants in the same room.
func GenerateMeetingURL(sessionID uuid.UUID) string {
	room := "skillswap-" + roomNameChars.ReplaceAllString(sessionID.String(), "-")
	return fmt.Sprintf("https://%s/%s", meetingDomain, room)
}
