package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobboard-be/internal/entity"
)

func TestFormatLocation(t *testing.T) {
	tests := []struct {
		name      string
		locations []entity.Location
		want      string
	}{
		{"no locations", nil, "TBD"},
		{"single", []entity.Location{{City: "Austin", State: "TX"}}, "Austin, TX"},
		{"two collapses to plus one", []entity.Location{
			{City: "New York", State: "NY"}, {City: "Boston", State: "MA"},
		}, "New York, NY +1"},
		{"three collapses to plus two", []entity.Location{
			{City: "New York", State: "NY"}, {City: "Boston", State: "MA"}, {City: "Austin", State: "TX"},
		}, "New York, NY +2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLocation(tt.locations))
		})
	}
}

func TestFormatRemotePolicy(t *testing.T) {
	three := 3

	assert.Equal(t, "Remote", FormatRemotePolicy(entity.RemotePolicyRemote, nil))
	assert.Equal(t, "On-Site", FormatRemotePolicy(entity.RemotePolicyInOffice, nil))
	assert.Equal(t, "Hybrid (3d/w)", FormatRemotePolicy(entity.RemotePolicyHybrid, &three))
	assert.Equal(t, "Hybrid", FormatRemotePolicy(entity.RemotePolicyHybrid, nil))
	assert.Equal(t, "something_else", FormatRemotePolicy("something_else", nil))
}
