package tools

import (
	"fmt"

	"cufmcp/internal/domain"
)

func formatCompany(company domain.Company) string {
	var b block
	b.add("Name", company.Name)
	b.add("Overview", company.Overview)
	b.add("Type", company.Type)
	b.add("Industry", company.Industry)
	b.add("Employee Size", company.Employees.Range)
	b.addLocation("Location",
		company.MainLocation.Country,
		company.MainLocation.State,
		company.MainLocation.City,
	)
	b.add("Address", company.MainLocation.Address)
	b.add("Website", company.Website)
	b.add("Domain", company.Domain)
	addSocial(&b, company.Social)
	return b.String()
}

// formatEnrichedCompany renders the full /enc record. Field order: identity,
// overview, classification, size and scale, temporal, location, web, social,
// contact, collections.
func formatEnrichedCompany(company domain.EnrichedCompany) string {
	var b block
	// The enrichment record leads with the bare entity name.
	b.addRaw(company.Name)
	b.add("Overview", company.Overview)
	b.add("Industry", company.Industry)
	if company.IsSchool {
		b.add("School", "yes")
	}
	if company.IsInvestor {
		b.add("Investor", "yes")
	}
	if company.Employees.Range != "" {
		size := company.Employees.Range
		if company.Employees.Count > 0 {
			size = fmt.Sprintf("%s (%d employees)", size, company.Employees.Count)
		}
		b.add("Employee Size", size)
	}
	b.addInt("Followers Count", company.Followers)
	b.add("Annual Revenue", company.AnnualRevenue)
	addFunding(&b, company.Funding)
	b.add("Founded Date", company.FoundedDate)
	b.addLocation("Location",
		company.MainLocation.Country,
		company.MainLocation.State,
		company.MainLocation.City,
	)
	b.add("Address", company.MainLocation.Address)
	b.add("Website", company.Website)
	b.add("Domain", company.Domain)
	addSocial(&b, company.Social)
	b.addList("Emails", company.Connections.Emails, 0)
	b.addList("Phones", company.Connections.Phones, 0)
	b.addList("Technologies", technologyNames(company.Technologies), domain.TechnologiesPreview)
	b.addList("Specialties", company.Specialties, domain.SpecialtiesPreview)
	b.addList("Affiliated Pages", company.AffiliatedPages, domain.AffiliatedPagesPreview)
	b.addList("Similar Companies", company.Suggestions, domain.SuggestionsPreview)
	return b.String()
}

func addFunding(b *block, funding domain.Funding) {
	b.addInt("Funding Rounds", funding.NumberOfRounds)
	b.add("Last Funding Round", funding.LastRoundType)
	if funding.LastRoundRaisedAmount != "" {
		raised := funding.LastRoundRaisedAmount
		if funding.LastRoundCurrencyCode != "" {
			raised += " " + funding.LastRoundCurrencyCode
		}
		b.add("Last Round Raised", raised)
	}
}

func addSocial(b *block, social domain.SocialLinks) {
	b.add("LinkedIn", social.LinkedIn)
	b.add("X (twitter)", social.Twitter)
	b.add("Facebook", social.Facebook)
	b.add("Instagram", social.Instagram)
	b.add("Youtube", social.YouTube)
}

func technologyNames(technologies []domain.Technology) []string {
	names := make([]string, 0, len(technologies))
	for _, tech := range technologies {
		if tech.TechnologyName != "" {
			names = append(names, tech.TechnologyName)
		}
	}
	return names
}
