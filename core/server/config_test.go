package server_test

import (
	"testing"

	"campus-sync/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_IsScheduled(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		want     bool
	}{
		{"Every 15 minutes", "*/15 * * * *", true},
		{"Hourly", "0 * * * *", true},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{SyncSchedule: tt.schedule}
			assert.Equal(t, tt.want, c.IsScheduled())
		})
	}
}
