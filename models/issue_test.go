package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "IN_PROGRESS", "RESOLVED", "REJECTED"} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("Pending"))
	assert.False(t, ValidStatus("DONE"))
}

func TestValidSeverity(t *testing.T) {
	for _, s := range []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"} {
		assert.True(t, ValidSeverity(s), s)
	}
	assert.False(t, ValidSeverity("low"))
	assert.False(t, ValidSeverity("URGENT"))
}
