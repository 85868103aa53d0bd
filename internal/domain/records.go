package domain

// Provider response records. Every field is nullable on the wire; absence is
// a normal case, never an error. String fields decode null as "", numeric
// fields use pointers where zero and absent must stay distinct.

// StatusMatch and StatusNoMatch are the two well-formed provider statuses.
// A no-match response still carries an (empty-ish) record and is formatted,
// not rejected.
const (
	StatusMatch   = 1
	StatusNoMatch = -1
)

// ResponseMeta is the envelope every provider response shares under "data".
type ResponseMeta struct {
	Query           string  `json:"query"`
	CreditCount     int     `json:"credit_count"`
	ConfidenceLevel float64 `json:"confidence_level"`
}

type Location struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
	Address string `json:"address"`
}

type SocialLinks struct {
	LinkedIn  string `json:"linkedin"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
}

type EmployeeRange struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type Connections struct {
	Emails    []string `json:"emails"`
	Phones    []string `json:"phones"`
	PhoneType string   `json:"phone_type"`
}

// Company is a company search (/cse) record.
type Company struct {
	Name         string        `json:"name"`
	Website      string        `json:"website"`
	Domain       string        `json:"domain"`
	Overview     string        `json:"overview"`
	Type         string        `json:"type"`
	Industry     string        `json:"industry"`
	Employees    EmployeeRange `json:"employees"`
	MainLocation Location      `json:"main_location"`
	Social       SocialLinks   `json:"social"`
}

type Technology struct {
	Category          string `json:"category"`
	SuperCategory     string `json:"super_category"`
	TechnologyName    string `json:"technology_name"`
	TechnologyWebsite string `json:"technology_website"`
}

type Funding struct {
	Rounds                  string `json:"rounds"`
	Organization            string `json:"organization"`
	NumberOfRounds          int    `json:"number_of_rounds"`
	NumberOfOtherInvestors  int    `json:"number_of_other_investors"`
	LastRoundType           string `json:"last_round_type"`
	LastRoundCurrencyCode   string `json:"last_round_money_raised_amount_currency_code"`
	LastRoundRaisedAmount   string `json:"last_round_money_raised_amount"`
	LastRoundInvestors      string `json:"last_round_investors"`
	LastRoundFundingPageURL string `json:"last_round_founding_url"`
	UpdatedAt               string `json:"updated_at"`
}

// EnrichedCompany is the single detailed record returned by /enc.
type EnrichedCompany struct {
	Name          string        `json:"name"`
	Website       string        `json:"website"`
	Domain        string        `json:"domain"`
	Logo          string        `json:"logo"`
	Overview      string        `json:"overview"`
	FoundedDate   string        `json:"founded_date"`
	Industry      string        `json:"industry"`
	AnnualRevenue string        `json:"annual_revenue"`
	Followers     int           `json:"followers"`
	IsSchool      bool          `json:"is_school"`
	IsInvestor    bool          `json:"is_investor"`
	HasEmail      bool          `json:"has_email"`
	HasPhone      bool          `json:"has_phone"`
	Employees     EmployeeRange `json:"employees"`
	MainLocation  Location      `json:"main_location"`
	Technologies  []Technology  `json:"technologies"`
	Specialties   []string      `json:"specialties"`
	// Suggestions keys off the provider's spelling of the field.
	Suggestions     []string    `json:"suggesstions"`
	AffiliatedPages []string    `json:"affiliated_pages"`
	Funding         Funding     `json:"funding"`
	Social          SocialLinks `json:"social"`
	Connections     Connections `json:"connections"`
}

// Person is a person search (/pse) record.
type Person struct {
	FullName   string `json:"full_name"`
	CurrentJob struct {
		Title string `json:"title"`
	} `json:"current_job"`
	Company struct {
		Name         string      `json:"name"`
		LinkedIn     string      `json:"linkedin"`
		Website      string      `json:"website"`
		Industry     string      `json:"industry"`
		MainLocation Location    `json:"main_location"`
		Social       SocialLinks `json:"social"`
	} `json:"company"`
	Location Location    `json:"location"`
	Social   SocialLinks `json:"social"`
}

// EnrichedPerson is the single detailed record returned by /tep. The
// provider flattens the employer into company_* fields here, unlike the
// nested search shape.
type EnrichedPerson struct {
	FirstName          string   `json:"first_name"`
	LastName           string   `json:"last_name"`
	FullName           string   `json:"full_name"`
	LinkedInURL        string   `json:"linkedin_url"`
	Summary            string   `json:"summary"`
	FollowersCount     *int     `json:"followers_count"`
	Facebook           string   `json:"facebook"`
	Twitter            string   `json:"twitter"`
	Avatar             string   `json:"avatar"`
	Country            string   `json:"country"`
	State              string   `json:"state"`
	City               string   `json:"city"`
	JobTitle           string   `json:"job_title"`
	JobTitleCategories []string `json:"job_title_categories"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	CompanyName        string   `json:"company_name"`
	CompanyLinkedIn    string   `json:"company_linkedin"`
	CompanyWebsite     string   `json:"company_website"`
	CompanySize        string   `json:"company_size"`
	CompanyIndustry    string   `json:"company_industry"`
	CompanyFacebook    string   `json:"company_facebook"`
	CompanyTwitter     string   `json:"company_twitter"`
	CompanyCountry     string   `json:"company_country"`
	CompanyState       string   `json:"company_state"`
	CompanyCity        string   `json:"company_city"`
}

type IndustryDetails struct {
	Level1    string `json:"level_1"`
	Level2    string `json:"level_2"`
	NAICSCode string `json:"naics_code"`
	SICCode   string `json:"sic_code"`
}

type GeoLocation struct {
	GoogleMapsID string   `json:"google_maps_id"`
	Rating       *float64 `json:"rating"`
	ReviewsCount *int     `json:"reviews_count"`
}

// LocalBusiness is a local business search (/lbs) record.
type LocalBusiness struct {
	Name            string          `json:"name"`
	Website         string          `json:"website"`
	Overview        string          `json:"overview"`
	Industry        string          `json:"industry"`
	IndustryDetails IndustryDetails `json:"industry_details"`
	MainLocation    Location        `json:"main_location"`
	GeoLocation     GeoLocation     `json:"geo_location"`
	Social          SocialLinks     `json:"social"`
	Connections     Connections     `json:"connections"`
}

// Per-operation response envelopes. Meta fields sit alongside the payload
// inside "data", hence the embedding.

type CompanyEnrichData struct {
	ResponseMeta
	Company EnrichedCompany `json:"company"`
}

type CompanyEnrichResponse struct {
	Status int               `json:"status"`
	Data   CompanyEnrichData `json:"data"`
}

type PersonEnrichData struct {
	ResponseMeta
	Person EnrichedPerson `json:"person"`
}

type PersonEnrichResponse struct {
	Status int              `json:"status"`
	Data   PersonEnrichData `json:"data"`
}

type CompanySearchData struct {
	ResponseMeta
	Companies []Company `json:"companies"`
}

type CompanySearchResponse struct {
	Status int               `json:"status"`
	Data   CompanySearchData `json:"data"`
}

type PersonSearchData struct {
	ResponseMeta
	Peoples []Person `json:"peoples"`
}

type PersonSearchResponse struct {
	Status int              `json:"status"`
	Data   PersonSearchData `json:"data"`
}

type LocalBusinessSearchData struct {
	ResponseMeta
	Businesses []LocalBusiness `json:"businesses"`
}

type LocalBusinessSearchResponse struct {
	Status int                     `json:"status"`
	Data   LocalBusinessSearchData `json:"data"`
}
