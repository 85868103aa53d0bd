package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperation_ProviderContract(t *testing.T) {
	tests := []struct {
		op       Operation
		endpoint string
		encoding Encoding
		verb     string
	}{
		{OpFindBusiness, "/enc", EncodingForm, "enrich company"},
		{OpFindPerson, "/tep", EncodingForm, "enrich person"},
		{OpSearchBusinesses, "/cse", EncodingJSON, "search companies"},
		{OpSearchPersons, "/pse", EncodingJSON, "search persons"},
		{OpSearchLocalBusinesses, "/lbs", EncodingJSON, "search local businesses"},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			assert.True(t, tt.op.Known())
			assert.Equal(t, tt.endpoint, tt.op.Endpoint())
			assert.Equal(t, tt.encoding, tt.op.Encoding())
			assert.Equal(t, tt.verb, tt.op.FailureVerb())
			assert.NotEmpty(t, tt.op.Label())
		})
	}
}

func TestOperation_Unknown(t *testing.T) {
	op := Operation("does_not_exist")
	assert.False(t, op.Known())
	assert.Empty(t, op.Endpoint())
	assert.Equal(t, "does_not_exist", op.FailureVerb())
}

func TestOperations_StableOrder(t *testing.T) {
	assert.Equal(t, []Operation{
		OpFindBusiness,
		OpFindPerson,
		OpSearchBusinesses,
		OpSearchPersons,
		OpSearchLocalBusinesses,
	}, Operations())
}
