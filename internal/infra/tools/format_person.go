package tools

import "cufmcp/internal/domain"

func formatPerson(person domain.Person) string {
	var b block
	b.add("Name", person.FullName)
	b.add("Job Title", person.CurrentJob.Title)
	b.addLocation("Location",
		person.Location.Country,
		person.Location.State,
		person.Location.City,
	)
	b.add("LinkedIn", person.Social.LinkedIn)
	b.add("Company", person.Company.Name)
	b.add("Company Website", person.Company.Website)
	b.add("Company Industry", person.Company.Industry)
	b.addLocation("Company Location",
		person.Company.MainLocation.Country,
		person.Company.MainLocation.State,
		person.Company.MainLocation.City,
	)
	return b.String()
}

// formatEnrichedPerson renders the full /tep record, person fields first,
// then the flattened employer block.
func formatEnrichedPerson(person domain.EnrichedPerson) string {
	var b block
	b.addRaw(person.FullName)
	b.add("Summary", person.Summary)
	b.add("Job Title", person.JobTitle)
	b.addList("Job Title Categories", person.JobTitleCategories, 0)
	if person.FollowersCount != nil && *person.FollowersCount > 0 {
		b.addInt("Followers Count", *person.FollowersCount)
	}
	b.addLocation("Location", person.Country, person.State, person.City)
	b.add("LinkedIn", person.LinkedInURL)
	b.add("X (twitter)", person.Twitter)
	b.add("Facebook", person.Facebook)
	b.add("Email", person.Email)
	b.add("Phone", person.Phone)
	b.add("Company Name", person.CompanyName)
	b.add("Company Size", person.CompanySize)
	b.add("Company Industry", person.CompanyIndustry)
	b.add("Company Website", person.CompanyWebsite)
	b.add("Company LinkedIn", person.CompanyLinkedIn)
	b.add("Company X (twitter)", person.CompanyTwitter)
	b.add("Company Facebook", person.CompanyFacebook)
	b.addLocation("Company Location", person.CompanyCountry, person.CompanyState, person.CompanyCity)
	return b.String()
}
