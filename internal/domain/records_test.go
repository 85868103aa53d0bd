package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The provider spells the similar-companies key "suggesstions"; the decoder
// must key on that spelling or the field silently drops.
func TestEnrichedCompany_DecodesProviderSpelling(t *testing.T) {
	var company EnrichedCompany
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "CUFinder",
		"suggesstions": ["acme", "globex"]
	}`), &company))

	assert.Equal(t, []string{"acme", "globex"}, company.Suggestions)
}

// Every field is nullable on the wire. Explicit nulls must decode without
// error and read as absent.
func TestRecords_TolerateNulls(t *testing.T) {
	var company EnrichedCompany
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": null,
		"overview": null,
		"followers": null,
		"employees": null,
		"main_location": {"country": null, "city": "berlin"},
		"technologies": null,
		"funding": null
	}`), &company))
	assert.Empty(t, company.Name)
	assert.Zero(t, company.Followers)
	assert.Equal(t, "berlin", company.MainLocation.City)

	var business LocalBusiness
	require.NoError(t, json.Unmarshal([]byte(`{
		"name": "Beach Bar",
		"geo_location": {"rating": null, "reviews_count": null}
	}`), &business))
	assert.Nil(t, business.GeoLocation.Rating)
	assert.Nil(t, business.GeoLocation.ReviewsCount)
}
