package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMeetingURL(t *testing.T) {
	id := uuid.New()

	url := GenerateMeetingURL(id)

	assert.True(t, strings.HasPrefix(url, "https://meet.jit.si/skillswap-"))
	assert.Equal(t, url, GenerateMeetingURL(id), "same session must always get the same room")
	assert.NotEqual(t, url, GenerateMeetingURL(uuid.New()))
}
