package domain

import "net/url"

// Per-operation query parameters. These are the strict shapes decoded at the
// dispatch boundary; filter values themselves (industry names, enum strings,
// lowercase locations) are forwarded verbatim; conformance is advisory via
// the tool descriptions, enforced by the provider, not here.

// CompanyEnrichParams feeds /enc. Query is a company name or domain.
type CompanyEnrichParams struct {
	Query string `json:"query"`
}

func (p CompanyEnrichParams) FormValues() url.Values {
	return url.Values{"query": {p.Query}}
}

// PersonEnrichParams feeds /tep. Both fields are mandatory.
type PersonEnrichParams struct {
	FullName string `json:"full_name"`
	Company  string `json:"company"`
}

func (p PersonEnrichParams) FormValues() url.Values {
	return url.Values{
		"full_name": {p.FullName},
		"company":   {p.Company},
	}
}

// CompanySearchParams feeds /cse as a JSON body. No field is required; the
// provider recommends at least one filter.
type CompanySearchParams struct {
	Name              string   `json:"name,omitempty"`
	Country           string   `json:"country,omitempty"`
	State             string   `json:"state,omitempty"`
	City              string   `json:"city,omitempty"`
	Industry          string   `json:"industry,omitempty"`
	EmployeeSize      string   `json:"employee_size,omitempty"`
	FollowersCountMin *int     `json:"followers_count_min,omitempty"`
	FollowersCountMax *int     `json:"followers_count_max,omitempty"`
	FoundedAfterYear  *int     `json:"founded_after_year,omitempty"`
	FoundedBeforeYear *int     `json:"founded_before_year,omitempty"`
	FundingAmountMin  *int64   `json:"funding_amount_min,omitempty"`
	FundingAmountMax  *int64   `json:"funding_amount_max,omitempty"`
	AnnualRevenueMin  *int64   `json:"annual_revenue_min,omitempty"`
	AnnualRevenueMax  *int64   `json:"annual_revenue_max,omitempty"`
	ProductsServices  []string `json:"products_services,omitempty"`
	IsSchool          *bool    `json:"is_school,omitempty"`
	Page              int      `json:"page,omitempty"`
}

// PersonSearchParams feeds /pse as a JSON body. No field is required.
type PersonSearchParams struct {
	FullName                string   `json:"full_name,omitempty"`
	Country                 string   `json:"country,omitempty"`
	State                   string   `json:"state,omitempty"`
	City                    string   `json:"city,omitempty"`
	JobTitleRole            string   `json:"job_title_role,omitempty"`
	JobTitleLevel           string   `json:"job_title_level,omitempty"`
	CompanyName             string   `json:"company_name,omitempty"`
	CompanyLinkedInURL      string   `json:"company_linkedin_url,omitempty"`
	CompanyIndustry         string   `json:"company_industry,omitempty"`
	CompanyEmployeeSize     string   `json:"company_employee_size,omitempty"`
	CompanyCountry          string   `json:"company_country,omitempty"`
	CompanyState            string   `json:"company_state,omitempty"`
	CompanyCity             string   `json:"company_city,omitempty"`
	CompanyProductsServices []string `json:"company_products_services,omitempty"`
	CompanyAnnualRevenueMin *int64   `json:"company_annual_revenue_min,omitempty"`
	CompanyAnnualRevenueMax *int64   `json:"company_annual_revenue_max,omitempty"`
	Page                    int      `json:"page,omitempty"`
}

// LocalBusinessSearchParams feeds /lbs as a JSON body.
type LocalBusinessSearchParams struct {
	Name     string `json:"name,omitempty"`
	Country  string `json:"country,omitempty"`
	State    string `json:"state,omitempty"`
	City     string `json:"city,omitempty"`
	Industry string `json:"industry,omitempty"`
	Page     int    `json:"page,omitempty"`
}
