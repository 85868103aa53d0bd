package tools

import (
	"strconv"

	"cufmcp/internal/domain"
)

func formatLocalBusiness(business domain.LocalBusiness) string {
	var b block
	b.add("Name", business.Name)
	b.add("Overview", business.Overview)
	b.add("Industry", business.Industry)
	b.add("Industry Category", business.IndustryDetails.Level1)
	b.add("Industry Top Category", business.IndustryDetails.Level2)
	b.add("Industry NAICS Code", business.IndustryDetails.NAICSCode)
	b.add("Industry SIC Code", business.IndustryDetails.SICCode)
	b.addLocation("Location",
		business.MainLocation.Country,
		business.MainLocation.State,
		business.MainLocation.City,
	)
	b.add("Address", business.MainLocation.Address)
	if business.GeoLocation.Rating != nil {
		b.add("Google Maps Rating", strconv.FormatFloat(*business.GeoLocation.Rating, 'f', -1, 64))
	}
	if business.GeoLocation.ReviewsCount != nil {
		b.addInt("Google Maps Reviews Count", *business.GeoLocation.ReviewsCount)
	}
	b.add("Website", business.Website)
	addSocial(&b, business.Social)
	b.addList("Emails", business.Connections.Emails, 0)
	b.addList("Phones", business.Connections.Phones, 0)
	return b.String()
}
