package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyEnrichParams_FormValues(t *testing.T) {
	values := CompanyEnrichParams{Query: "cufinder"}.FormValues()
	assert.Equal(t, "query=cufinder", values.Encode())
}

func TestPersonEnrichParams_FormValues(t *testing.T) {
	values := PersonEnrichParams{FullName: "Jane Doe", Company: "acme"}.FormValues()
	assert.Equal(t, "company=acme&full_name=Jane+Doe", values.Encode())
}

// Unset filters must vanish from the JSON body entirely; the provider treats
// present-but-empty and absent differently.
func TestCompanySearchParams_OmitsUnsetFilters(t *testing.T) {
	isSchool := false
	fundingMin := int64(1000000)
	params := CompanySearchParams{
		Country:          "germany",
		FundingAmountMin: &fundingMin,
		IsSchool:         &isSchool,
		Page:             2,
	}

	encoded, err := json.Marshal(params)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(encoded, &body))

	assert.Equal(t, map[string]any{
		"country":            "germany",
		"funding_amount_min": float64(1000000),
		"is_school":          false,
		"page":               float64(2),
	}, body)
}

func TestSearchParams_EmptyEncodesToEmptyObject(t *testing.T) {
	for name, params := range map[string]any{
		"company":        CompanySearchParams{},
		"person":         PersonSearchParams{},
		"local business": LocalBusinessSearchParams{},
	} {
		t.Run(name, func(t *testing.T) {
			encoded, err := json.Marshal(params)
			require.NoError(t, err)
			assert.JSONEq(t, "{}", string(encoded))
		})
	}
}
