package tools

import (
	"context"
	"encoding/json"
	"strings"

	"cufmcp/internal/domain"
)

// One handler per operation. Each decodes its params, checks the fields its
// advertised schema marks required, calls the provider, and formats the
// response. A no-match response (status -1) is still formatted; the provider
// returns a well-formed, near-empty record in that case and interpretation
// is left to the caller.

func (d *Dispatcher) findBusiness(ctx context.Context, args json.RawMessage) (string, error) {
	var params domain.CompanyEnrichParams
	if err := decodeParams(args, &params); err != nil {
		return "", err
	}
	if strings.TrimSpace(params.Query) == "" {
		return "", domain.E(domain.CodeInvalidArgument, "", "query is required", nil)
	}

	resp, err := d.client.EnrichCompany(ctx, params)
	if err != nil {
		return "", err
	}
	d.metrics.ObserveCredits(string(domain.OpFindBusiness), resp.Data.CreditCount)

	record := formatEnrichedCompany(resp.Data.Company)
	return formatEnrichResult(domain.OpFindBusiness, resp.Data.ResponseMeta, record), nil
}

func (d *Dispatcher) findPerson(ctx context.Context, args json.RawMessage) (string, error) {
	var params domain.PersonEnrichParams
	if err := decodeParams(args, &params); err != nil {
		return "", err
	}
	if strings.TrimSpace(params.FullName) == "" {
		return "", domain.E(domain.CodeInvalidArgument, "", "full_name is required", nil)
	}
	if strings.TrimSpace(params.Company) == "" {
		return "", domain.E(domain.CodeInvalidArgument, "", "company is required", nil)
	}

	resp, err := d.client.EnrichPerson(ctx, params)
	if err != nil {
		return "", err
	}
	d.metrics.ObserveCredits(string(domain.OpFindPerson), resp.Data.CreditCount)

	record := formatEnrichedPerson(resp.Data.Person)
	return formatEnrichResult(domain.OpFindPerson, resp.Data.ResponseMeta, record), nil
}

func (d *Dispatcher) searchBusinesses(ctx context.Context, args json.RawMessage) (string, error) {
	var params domain.CompanySearchParams
	if err := decodeParams(args, &params); err != nil {
		return "", err
	}

	resp, err := d.client.SearchCompanies(ctx, params)
	if err != nil {
		return "", err
	}
	d.metrics.ObserveCredits(string(domain.OpSearchBusinesses), resp.Data.CreditCount)

	records := make([]string, 0, len(resp.Data.Companies))
	for _, company := range resp.Data.Companies {
		records = append(records, formatCompany(company))
	}
	return formatSearchResult(domain.OpSearchBusinesses, resp.Data.ResponseMeta, records), nil
}

func (d *Dispatcher) searchPersons(ctx context.Context, args json.RawMessage) (string, error) {
	var params domain.PersonSearchParams
	if err := decodeParams(args, &params); err != nil {
		return "", err
	}

	resp, err := d.client.SearchPersons(ctx, params)
	if err != nil {
		return "", err
	}
	d.metrics.ObserveCredits(string(domain.OpSearchPersons), resp.Data.CreditCount)

	records := make([]string, 0, len(resp.Data.Peoples))
	for _, person := range resp.Data.Peoples {
		records = append(records, formatPerson(person))
	}
	return formatSearchResult(domain.OpSearchPersons, resp.Data.ResponseMeta, records), nil
}

func (d *Dispatcher) searchLocalBusinesses(ctx context.Context, args json.RawMessage) (string, error) {
	var params domain.LocalBusinessSearchParams
	if err := decodeParams(args, &params); err != nil {
		return "", err
	}

	resp, err := d.client.SearchLocalBusinesses(ctx, params)
	if err != nil {
		return "", err
	}
	d.metrics.ObserveCredits(string(domain.OpSearchLocalBusinesses), resp.Data.CreditCount)

	records := make([]string, 0, len(resp.Data.Businesses))
	for _, business := range resp.Data.Businesses {
		records = append(records, formatLocalBusiness(business))
	}
	return formatSearchResult(domain.OpSearchLocalBusinesses, resp.Data.ResponseMeta, records), nil
}
