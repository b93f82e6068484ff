package extract

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/fnol-cli/internal/core/domain"
)

//go:embed patterns.toml
var patternsTOML []byte

// patternsFile mirrors the layout of patterns.toml.
type patternsFile struct {
	MissingTokens       []string               `toml:"missing_tokens"`
	PlaceholderPatterns []string               `toml:"placeholder_patterns"`
	StopLabels          []string               `toml:"stop_labels"`
	Grammar             grammarConfig          `toml:"grammar"`
	Noise               noiseConfig            `toml:"noise"`
	CombinedDateTime    combinedConfig         `toml:"combined_datetime"`
	Fields              map[string]fieldConfig `toml:"fields"`
}

type grammarConfig struct {
	Date string `toml:"date"`
	Time string `toml:"time"`
}

type noiseConfig struct {
	MaxLen    int `toml:"max_len"`
	LabelHits int `toml:"label_hits"`
}

type combinedConfig struct {
	Labels []string `toml:"labels"`
}

type fieldConfig struct {
	Capture         []string     `toml:"capture"`
	LineLabels      []string     `toml:"line_labels"`
	CityLabels      []string     `toml:"city_labels"`
	BlockLabels     []string     `toml:"block_labels"`
	KeywordFallback string       `toml:"keyword_fallback"`
	Reject          string       `toml:"reject"`
	Noise           *noiseConfig `toml:"noise"`
}

// tomlFieldKeys maps table keys in patterns.toml to field names.
var tomlFieldKeys = map[string]domain.FieldName{
	"policy_number":        domain.FieldPolicyNumber,
	"policyholder_name":    domain.FieldPolicyholderName,
	"incident_date":        domain.FieldIncidentDate,
	"incident_time":        domain.FieldIncidentTime,
	"incident_location":    domain.FieldIncidentLocation,
	"incident_description": domain.FieldIncidentDescription,
	"claim_type":           domain.FieldClaimType,
	"estimated_damage":     domain.FieldEstimatedDamage,
	"attachments":          domain.FieldAttachments,
	"initial_estimate":     domain.FieldInitialEstimate,
}

// fieldPatterns holds the compiled patterns and thresholds for one field.
type fieldPatterns struct {
	capture []*regexp.Regexp // full capture patterns over both views
	line    []*regexp.Regexp // labeled-line patterns
	city    []*regexp.Regexp // city/state/zip line patterns (location only)
	block   []*regexp.Regexp // labeled-block patterns bounded by stop labels
	keyword *regexp.Regexp   // flat-text keyword fallback (claim type only)
	reject  *regexp.Regexp   // field-specific rejection pattern
	maxLen  int
	hits    int
}

// patternTable is the compiled, immutable configuration shared by every
// extraction pass. Loaded once at package init; never mutated afterwards.
type patternTable struct {
	missingTokens map[string]struct{}
	placeholder   []*regexp.Regexp
	stopLabels    []*regexp.Regexp
	combined      *regexp.Regexp
	fields        map[domain.FieldName]*fieldPatterns
	blockLabels   map[domain.FieldName][]*regexp.Regexp // raw block labels for reuse
}

var table = mustLoadTable(patternsTOML)

func mustLoadTable(data []byte) *patternTable {
	t, err := loadTable(data)
	if err != nil {
		panic(fmt.Sprintf("extract: invalid patterns.toml: %v", err))
	}
	return t
}

func loadTable(data []byte) (*patternTable, error) {
	var pf patternsFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, err
	}

	t := &patternTable{
		missingTokens: make(map[string]struct{}, len(pf.MissingTokens)),
		fields:        make(map[domain.FieldName]*fieldPatterns, len(pf.Fields)),
	}
	for _, tok := range pf.MissingTokens {
		t.missingTokens[tok] = struct{}{}
	}

	for _, p := range pf.PlaceholderPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("placeholder pattern %q: %w", p, err)
		}
		t.placeholder = append(t.placeholder, re)
	}

	for _, p := range pf.StopLabels {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			return nil, fmt.Errorf("stop label %q: %w", p, err)
		}
		t.stopLabels = append(t.stopLabels, re)
	}
	stopAlt := strings.Join(pf.StopLabels, "|")

	expand := func(p string) string {
		p = strings.ReplaceAll(p, "{DATE}", pf.Grammar.Date)
		return strings.ReplaceAll(p, "{TIME}", pf.Grammar.Time)
	}

	if len(pf.CombinedDateTime.Labels) > 0 {
		p := "(?i)(?:" + strings.Join(pf.CombinedDateTime.Labels, "|") + ")" +
			`\s*[:\-]?\s*(` + pf.Grammar.Date + `)(?:\s+|,?\s*)(` + pf.Grammar.Time + `)?`
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("combined date/time pattern: %w", err)
		}
		t.combined = re
	}

	for key, fc := range pf.Fields {
		field, ok := tomlFieldKeys[key]
		if !ok {
			return nil, fmt.Errorf("unknown field table %q", key)
		}

		fp := &fieldPatterns{maxLen: pf.Noise.MaxLen, hits: pf.Noise.LabelHits}
		if fc.Noise != nil {
			fp.maxLen = fc.Noise.MaxLen
			fp.hits = fc.Noise.LabelHits
		}

		for _, p := range fc.Capture {
			re, err := regexp.Compile("(?im)" + expand(p))
			if err != nil {
				return nil, fmt.Errorf("%s capture pattern %q: %w", field, p, err)
			}
			fp.capture = append(fp.capture, re)
		}
		var err error
		if fp.line, err = compileLinePatterns(fc.LineLabels); err != nil {
			return nil, fmt.Errorf("%s line labels: %w", field, err)
		}
		if fp.city, err = compileLinePatterns(fc.CityLabels); err != nil {
			return nil, fmt.Errorf("%s city labels: %w", field, err)
		}
		if fp.block, err = compileBlockPatterns(fc.BlockLabels, stopAlt); err != nil {
			return nil, fmt.Errorf("%s block labels: %w", field, err)
		}
		if fc.KeywordFallback != "" {
			if fp.keyword, err = regexp.Compile("(?i)" + fc.KeywordFallback); err != nil {
				return nil, fmt.Errorf("%s keyword fallback: %w", field, err)
			}
		}
		if fc.Reject != "" {
			if fp.reject, err = regexp.Compile("(?i)" + fc.Reject); err != nil {
				return nil, fmt.Errorf("%s reject pattern: %w", field, err)
			}
		}
		t.fields[field] = fp
	}

	// Attachments and location reuse their line labels for block capture
	// when the line lookup comes up empty.
	t.blockLabels = map[domain.FieldName][]*regexp.Regexp{}
	for key, fc := range pf.Fields {
		field := tomlFieldKeys[key]
		if len(fc.LineLabels) == 0 {
			continue
		}
		blocks, err := compileBlockPatterns(fc.LineLabels, stopAlt)
		if err != nil {
			return nil, fmt.Errorf("%s line-label block fallback: %w", field, err)
		}
		t.blockLabels[field] = blocks
	}

	return t, nil
}

// compileLinePatterns anchors each label at the start of a line and
// captures the remainder of that line.
func compileLinePatterns(labels []string) ([]*regexp.Regexp, error) {
	var out []*regexp.Regexp
	for _, label := range labels {
		re, err := regexp.Compile(`(?im)^\s*` + label + `\s*[:\-]?\s*([^\n]+)`)
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", label, err)
		}
		out = append(out, re)
	}
	return out, nil
}

// compileBlockPatterns captures all text after a label up to the nearest
// stop label (the start of the next form field) or end of document.
// RE2 has no lookahead, so the stop boundary is consumed by a trailing
// non-capturing group instead.
func compileBlockPatterns(labels []string, stopAlt string) ([]*regexp.Regexp, error) {
	var out []*regexp.Regexp
	for _, label := range labels {
		re, err := regexp.Compile(`(?is)` + label + `\s*[:\-]?\s*(.+?)(?:\n\s*(?:` + stopAlt + `)\b|\z)`)
		if err != nil {
			return nil, fmt.Errorf("label %q: %w", label, err)
		}
		out = append(out, re)
	}
	return out, nil
}
