package tools

import (
	"fmt"
	"strconv"
	"strings"

	"cufmcp/internal/domain"
)

// Formatting rules shared by all entity formatters: a field contributes a
// line iff its value is present; absent fields are skipped silently, never
// rendered as placeholders or empty lines.

// block accumulates labeled lines for one record.
type block struct {
	lines []string
}

func (b *block) add(label, value string) {
	if value == "" {
		return
	}
	b.lines = append(b.lines, label+": "+value)
}

func (b *block) addRaw(line string) {
	if line == "" {
		return
	}
	b.lines = append(b.lines, line)
}

func (b *block) addInt(label string, value int) {
	if value == 0 {
		return
	}
	b.add(label, strconv.Itoa(value))
}

// addLocation joins the present components with ", "; a fully absent
// location contributes nothing.
func (b *block) addLocation(label string, parts ...string) {
	b.add(label, joinNonEmpty(parts))
}

// addList renders a capped preview of a collection: the first max entries
// plus a "... and K more" suffix when truncated.
func (b *block) addList(label string, items []string, max int) {
	items = dropEmpty(items)
	if len(items) == 0 {
		return
	}
	if max <= 0 || len(items) <= max {
		b.add(label, strings.Join(items, ", "))
		return
	}
	shown := strings.Join(items[:max], ", ")
	b.add(label, fmt.Sprintf("%s ... and %d more", shown, len(items)-max))
}

func (b *block) String() string {
	return strings.Join(b.lines, "\n")
}

func joinNonEmpty(parts []string) string {
	return strings.Join(dropEmpty(parts), ", ")
}

func dropEmpty(items []string) []string {
	kept := items[:0:0]
	for _, item := range items {
		if item != "" {
			kept = append(kept, item)
		}
	}
	return kept
}

// resultHeader is the block prepended to every formatted result: operation
// label, echoed query, and the provider-reported credit cost. Credits always
// come from the response, never a constant.
func resultHeader(op domain.Operation, meta domain.ResponseMeta) []string {
	lines := []string{
		op.Label(),
		"Query: " + meta.Query,
		"Credits Used: " + strconv.Itoa(meta.CreditCount),
	}
	return lines
}

// formatSearchResult assembles a search response: header, result count, then
// numbered records separated by blank lines. List truncation is the caller's
// concern via the page parameter; every returned record is rendered.
func formatSearchResult(op domain.Operation, meta domain.ResponseMeta, records []string) string {
	lines := resultHeader(op, meta)
	lines = append(lines, "Results Found: "+strconv.Itoa(len(records)))

	var sb strings.Builder
	sb.WriteString(strings.Join(lines, "\n"))
	for i, record := range records {
		sb.WriteString("\n\n")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(record)
	}
	return sb.String()
}

// formatEnrichResult assembles an enrichment response: header, optional
// confidence level, then the single record.
func formatEnrichResult(op domain.Operation, meta domain.ResponseMeta, record string) string {
	lines := resultHeader(op, meta)
	if meta.ConfidenceLevel > 0 {
		lines = append(lines, "Confidence Level: "+strconv.FormatFloat(meta.ConfidenceLevel, 'f', -1, 64))
	}
	var sb strings.Builder
	sb.WriteString(strings.Join(lines, "\n"))
	if record != "" {
		sb.WriteString("\n\n")
		sb.WriteString(record)
	}
	return sb.String()
}
