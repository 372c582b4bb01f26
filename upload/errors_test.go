package upload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadErrorKeepsRawBody(t *testing.T) {
	long := strings.Repeat("x", 2048)
	err := &UploadError{Step: stepCreate, Status: 503, Body: long}

	// the message is trimmed for logging, the field is not
	assert.Less(t, len(err.Error()), len(long))
	assert.Equal(t, long, err.Body)
	assert.Contains(t, err.Error(), "503")
}

func TestProtocolErrorMessages(t *testing.T) {
	missing := &ProtocolError{Step: stepCreate, Missing: "resource-id"}
	assert.Contains(t, missing.Error(), `"resource-id"`)

	undecodable := &ProtocolError{Step: stepJob, Err: assert.AnError}
	assert.Contains(t, undecodable.Error(), stepJob)
}
