package csvimport

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pairshare/pairshare/internal/category"
	"github.com/pairshare/pairshare/internal/models"
	"github.com/pairshare/pairshare/internal/textnorm"
)

// Step is the pipeline's current state. Transitions only move forward;
// Reset returns to StepUpload from anywhere.
type Step int

const (
	StepUpload Step = iota
	StepMap
	StepPreview
	StepDone
)

// PreviewRenderLimit bounds how many preview rows a UI should render.
// Counts are always computed over all rows so the summary, the commit
// button and the rendered table can never disagree.
const PreviewRenderLimit = 250

// RowOverride carries the user's per-row edits for fields that are
// heuristically derived (payer, category).
type RowOverride struct {
	PaidBy   models.Party    `json:"paidBy,omitempty"`
	Category models.Category `json:"category,omitempty"`
}

// PreviewRow is one row's ingestion result, independent of whether it is
// ultimately committed. Draft is nil whenever Errors is non-empty.
type PreviewRow struct {
	RowNumber int               `json:"rowNumber"` // 1-based, excluding header
	Raw       map[string]string `json:"raw"`
	Draft     *models.Expense   `json:"draft,omitempty"`
	Errors    []string          `json:"errors,omitempty"`
}

// Preview is the validation result over all parsed rows.
type Preview struct {
	Rows    []PreviewRow `json:"rows"`
	Total   int          `json:"total"`
	Valid   int          `json:"valid"`
	Invalid int          `json:"invalid"`
}

// Head returns at most n preview rows for rendering.
func (p *Preview) Head(n int) []PreviewRow {
	if n >= len(p.Rows) {
		return p.Rows
	}
	return p.Rows[:n]
}

// Options configures a pipeline.
type Options struct {
	// PartnerAName and PartnerBName feed the paid-by text heuristic.
	PartnerAName string
	PartnerBName string

	// SkipInvalid allows committing while invalid rows exist; those rows
	// are skipped and counted. When false, any invalid row refuses the
	// whole commit before a single create call is made.
	SkipInvalid bool

	// Concurrency bounds in-flight create calls during commit. Zero or one
	// means strictly sequential, which is what keeps per-row outcomes
	// independently observable.
	Concurrency int
}

// Pipeline is one CSV ingestion session.
type Pipeline struct {
	opts Options

	step      Step
	parsed    *Parsed
	mapping   ColumnMapping
	overrides map[int]RowOverride
}

// NewPipeline returns a pipeline in StepUpload.
func NewPipeline(opts Options) *Pipeline {
	return &Pipeline{opts: opts, overrides: make(map[int]RowOverride)}
}

// Step returns the pipeline's current state.
func (p *Pipeline) Step() Step { return p.step }

// Reset discards all session state and returns to StepUpload.
func (p *Pipeline) Reset() {
	p.step = StepUpload
	p.parsed = nil
	p.mapping = ColumnMapping{}
	p.overrides = make(map[int]RowOverride)
}

// Upload parses the raw CSV text, guesses a column mapping and advances to
// StepMap. A parse failure (no header row) is fatal for the upload and
// leaves the pipeline in StepUpload.
func (p *Pipeline) Upload(text string) error {
	parsed, err := Parse(text)
	if err != nil {
		p.Reset()
		return err
	}
	p.parsed = parsed
	p.mapping = GuessMapping(parsed.Headers)
	p.step = StepMap
	return nil
}

// Headers returns the parsed header row.
func (p *Pipeline) Headers() []string {
	if p.parsed == nil {
		return nil
	}
	return p.parsed.Headers
}

// Mapping returns the current column mapping.
func (p *Pipeline) Mapping() ColumnMapping { return p.mapping }

// SetMapping replaces the guessed mapping with a user-confirmed one.
func (p *Pipeline) SetMapping(m ColumnMapping) { p.mapping = m }

// SetOverride records per-row edits, keyed by 0-based record index.
func (p *Pipeline) SetOverride(idx int, o RowOverride) { p.overrides[idx] = o }

// ConfirmMapping validates that every required field is mapped and advances
// to StepPreview. Missing fields are surfaced per-field.
func (p *Pipeline) ConfirmMapping() error {
	if p.step < StepMap {
		return fmt.Errorf("no CSV uploaded yet")
	}
	if missing := p.mapping.MissingRequired(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, f := range missing {
			names[i] = string(f)
		}
		return fmt.Errorf("required fields unmapped: %s", strings.Join(names, ", "))
	}
	p.step = StepPreview
	return nil
}

// Preview validates every parsed row against the current mapping. It is
// computed over all rows, not just the rendered prefix, so the counts here
// are the same ones Commit acts on.
func (p *Pipeline) Preview() *Preview {
	out := &Preview{}
	if p.parsed == nil {
		return out
	}
	out.Total = len(p.parsed.Records)
	for idx, rec := range p.parsed.Records {
		draft, errs := p.validateRecord(rec, p.overrides[idx])
		row := PreviewRow{RowNumber: idx + 1, Raw: rec, Draft: draft, Errors: errs}
		if len(errs) > 0 {
			out.Invalid++
		} else {
			out.Valid++
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

// Commit validates all rows once more, refuses entirely if invalid rows
// exist and SkipInvalid is off, and otherwise hands the valid drafts to a
// bounded-concurrency committer. Per-row create failures never abort the
// batch. Created + Failed + Skipped always equals the total parsed rows.
func (p *Pipeline) Commit(ctx context.Context, creator ExpenseCreator) (Result, error) {
	if p.step != StepPreview {
		return Result{}, fmt.Errorf("commit requires a previewed pipeline (current step %d)", p.step)
	}

	var drafts []Draft
	skipped := 0
	for idx, rec := range p.parsed.Records {
		draft, errs := p.validateRecord(rec, p.overrides[idx])
		if len(errs) > 0 || draft == nil {
			skipped++
			continue
		}
		drafts = append(drafts, Draft{RowNumber: idx + 1, Expense: draft})
	}

	if !p.opts.SkipInvalid && skipped > 0 {
		return Result{}, fmt.Errorf("%d invalid rows; enable skip-invalid or fix the CSV", skipped)
	}

	committer := &Committer{Creator: creator, Concurrency: p.opts.Concurrency}
	result := committer.Commit(ctx, drafts)
	result.Skipped = skipped
	p.step = StepDone
	return result, nil
}

func (p *Pipeline) cell(rec map[string]string, f Field) string {
	col := p.mapping.Column(f)
	if col == "" {
		return ""
	}
	return rec[col]
}

// validateRecord derives a draft expense from one record. All applicable
// errors are collected, not just the first, so the preview can show the
// complete reason a row was rejected.
func (p *Pipeline) validateRecord(rec map[string]string, override RowOverride) (*models.Expense, []string) {
	var errs []string

	description := strings.TrimSpace(p.cell(rec, FieldDescription))
	if description == "" {
		errs = append(errs, "missing description")
	}

	amountRaw := strings.TrimSpace(p.cell(rec, FieldAmount))
	amount, ok := textnorm.MoneyToMinorUnits(amountRaw)
	if !ok || amount <= 0 {
		errs = append(errs, "invalid amount")
	}

	dateRaw := strings.TrimSpace(p.cell(rec, FieldDate))
	date, ok := textnorm.DateToISO(dateRaw)
	if !ok {
		errs = append(errs, "invalid date")
	}

	cat := override.Category
	if cat == "" {
		if classified, ok := category.Classify(p.cell(rec, FieldCategory)); ok {
			cat = classified
		} else {
			cat = models.CategoryOther
		}
	}

	paidBy := override.PaidBy
	if paidBy == "" {
		paidBy = p.paidByFromText(p.cell(rec, FieldPaidBy))
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.Expense{
		Description: description,
		Amount:      amount,
		PaidBy:      paidBy,
		SplitType:   models.SplitEqual,
		PartyAShare: 50,
		PartyBShare: 50,
		Category:    cat,
		Date:        date,
		Note:        strings.TrimSpace(p.cell(rec, FieldNote)),
	}, nil
}

var (
	partyBWords = regexp.MustCompile(`(?i)(partner2|her|wife|girlfriend)`)
	partyAWords = regexp.MustCompile(`(?i)(partner1|him|husband|boyfriend)`)
)

// paidByFromText resolves free-form payer text to a party: explicit tokens
// first, then the configured partner names, then pronoun words as a last
// resort. Defaults to PartyA.
func (p *Pipeline) paidByFromText(raw string) models.Party {
	t := strings.TrimSpace(raw)
	if t == "" {
		return models.PartyA
	}

	n := normToken(t)
	switch n {
	case "partner2", "p2", "2":
		return models.PartyB
	case "partner1", "p1", "1":
		return models.PartyA
	}

	if bn := normToken(p.opts.PartnerBName); bn != "" && strings.Contains(n, bn) {
		return models.PartyB
	}
	if an := normToken(p.opts.PartnerAName); an != "" && strings.Contains(n, an) {
		return models.PartyA
	}

	if partyBWords.MatchString(t) {
		return models.PartyB
	}
	if partyAWords.MatchString(t) {
		return models.PartyA
	}
	return models.PartyA
}

// normToken lowercases and strips non-alphanumerics.
func normToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
