package tools

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"cufmcp/internal/domain"
)

// Advisory value sets surfaced through tool descriptions. The handlers never
// validate these locally; the agent is trusted to send conforming values and
// the provider rejects the rest.
const (
	employeeSizeValues  = "1 employee, 2-10, 11-50, 51-200, 201-500, 501-1,000, 1,001-5,000, 5,001-10,000, 10,001+"
	jobTitleRoleValues  = "customer_service, design, education, engineering, finance, health, human_resources, legal, marketing, media, operations, public_relations, real_estate, sales, trades"
	jobTitleLevelValues = "cxo, owner, partner, vp, director, manager, senior, entry, training"
	locationHint        = "Lowercase string matching the provider's geographic reference data, e.g. \"germany\"."
)

// Catalog returns the tool definitions in stable discovery order. Each
// definition's input schema is exactly the shape the matching handler
// decodes; hosts rely on this to construct valid calls.
func Catalog() []mcp.Tool {
	return []mcp.Tool{
		findBusinessTool(),
		findPersonTool(),
		searchBusinessesTool(),
		searchPersonsTool(),
		searchLocalBusinessesTool(),
	}
}

func findBusinessTool() mcp.Tool {
	return mcp.Tool{
		Name: string(domain.OpFindBusiness),
		Description: "Enrich a single company using the CUFinder ENC API. " +
			"Provide a company name or domain as the query; returns one detailed record " +
			"(overview, size, revenue, funding, location, socials, technologies).",
		InputSchema: objectSchema([]string{"query"}, map[string]*jsonschema.Schema{
			"query": stringProp("Company name or domain to enrich, e.g. \"cufinder\" or \"cufinder.io\"."),
		}),
	}
}

func findPersonTool() mcp.Tool {
	return mcp.Tool{
		Name: string(domain.OpFindPerson),
		Description: "Enrich a single person using the CUFinder TEP API. " +
			"Requires the person's full name and their employer; returns one detailed record " +
			"including contact data and the employer profile.",
		InputSchema: objectSchema([]string{"full_name", "company"}, map[string]*jsonschema.Schema{
			"full_name": stringProp("Full name of the person, e.g. \"Jane Doe\"."),
			"company":   stringProp("Company the person works for (name or domain)."),
		}),
	}
}

func searchBusinessesTool() mcp.Tool {
	return mcp.Tool{
		Name: string(domain.OpSearchBusinesses),
		Description: "Search for companies using the CUFinder CSE API. " +
			"All filters are optional but at least one is recommended. Results are paginated via the page parameter.",
		InputSchema: objectSchema(nil, map[string]*jsonschema.Schema{
			"name":                stringProp("Company name to filter by."),
			"country":             stringProp("Country to filter by. " + locationHint),
			"state":               stringProp("State/Province to filter by. " + locationHint),
			"city":                stringProp("City to filter by. " + locationHint),
			"industry":            stringProp("Industry to filter by, from the provider's fixed industry list."),
			"employee_size":       stringProp("Employee size bucket. One of: " + employeeSizeValues + "."),
			"followers_count_min": intProp("Minimum LinkedIn follower count."),
			"followers_count_max": intProp("Maximum LinkedIn follower count."),
			"founded_after_year":  intProp("Only companies founded after this year."),
			"founded_before_year": intProp("Only companies founded before this year."),
			"funding_amount_min":  intProp("Minimum total funding in raw USD; values are >= 1,000,000."),
			"funding_amount_max":  intProp("Maximum total funding in raw USD; values are >= 1,000,000."),
			"annual_revenue_min":  intProp("Minimum annual revenue in raw USD."),
			"annual_revenue_max":  intProp("Maximum annual revenue in raw USD."),
			"products_services":   stringArrayProp("Free-text product/service keywords, e.g. [\"crm\", \"email marketing\"]."),
			"is_school":           boolProp("Restrict results to schools (true) or non-schools (false)."),
			"page":                intProp("1-based page number for pagination."),
		}),
	}
}

func searchPersonsTool() mcp.Tool {
	return mcp.Tool{
		Name: string(domain.OpSearchPersons),
		Description: "Search for people using the CUFinder PSE API. " +
			"All filters are optional; company_* filters constrain the employer. Results are paginated via the page parameter.",
		InputSchema: objectSchema(nil, map[string]*jsonschema.Schema{
			"full_name":                  stringProp("Full name to search for."),
			"country":                    stringProp("Country to filter by. " + locationHint),
			"state":                      stringProp("State/Province to filter by. " + locationHint),
			"city":                       stringProp("City to filter by. " + locationHint),
			"job_title_role":             stringProp("Job title role. One of: " + jobTitleRoleValues + "."),
			"job_title_level":            stringProp("Job title level. One of: " + jobTitleLevelValues + "."),
			"company_name":               stringProp("Employer name to filter by."),
			"company_linkedin_url":       stringProp("Employer LinkedIn URL to filter by."),
			"company_industry":           stringProp("Employer industry, from the provider's fixed industry list."),
			"company_employee_size":      stringProp("Employer size bucket. One of: " + employeeSizeValues + "."),
			"company_country":            stringProp("Employer country. " + locationHint),
			"company_state":              stringProp("Employer state/province. " + locationHint),
			"company_city":               stringProp("Employer city. " + locationHint),
			"company_products_services":  stringArrayProp("Employer product/service keywords."),
			"company_annual_revenue_min": intProp("Minimum employer annual revenue in raw USD."),
			"company_annual_revenue_max": intProp("Maximum employer annual revenue in raw USD."),
			"page":                       intProp("1-based page number for pagination."),
		}),
	}
}

func searchLocalBusinessesTool() mcp.Tool {
	return mcp.Tool{
		Name: string(domain.OpSearchLocalBusinesses),
		Description: "Search for local businesses using the CUFinder LBS API. " +
			"All filters are optional. Results are paginated via the page parameter.",
		InputSchema: objectSchema(nil, map[string]*jsonschema.Schema{
			"name":     stringProp("Business name to filter by."),
			"country":  stringProp("Country to filter by. " + locationHint),
			"state":    stringProp("State/Province to filter by. " + locationHint),
			"city":     stringProp("City to filter by. " + locationHint),
			"industry": stringProp("Local business industry, from the provider's fixed category list."),
			"page":     intProp("1-based page number for pagination."),
		}),
	}
}

func objectSchema(required []string, properties map[string]*jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:       "object",
		Required:   required,
		Properties: properties,
	}
}

func stringProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: description}
}

func intProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Description: description}
}

func boolProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "boolean", Description: description}
}

func stringArrayProp(description string) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "array",
		Description: description,
		Items:       &jsonschema.Schema{Type: "string"},
	}
}
