package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByReference(t *testing.T) {
	assert.Equal(t, "WGS-84 (GPS)", ByReference("WGS84").Name)
	assert.Equal(t, "GRS-80", ByReference("GRS80").Name)

	// unknown identifiers fall back to the legacy metric
	assert.Equal(t, "LEGACY", ByReference("nope").Reference)
	assert.Equal(t, "LEGACY", ByReference("").Reference)
}
