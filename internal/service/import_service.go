package service

import (
	"context"
	"log/slog"

	"github.com/pairshare/pairshare/internal/csvimport"
	"github.com/pairshare/pairshare/internal/models"
)

// ImportService runs the CSV ingestion pipeline against the store. Each
// request gets its own pipeline: there is no session state on the service.
type ImportService struct {
	creator      csvimport.ExpenseCreator
	partnerAName string
	partnerBName string
}

// NewImportService creates an ImportService writing through the given
// creator (normally the storage.Store).
func NewImportService(creator csvimport.ExpenseCreator, partnerAName, partnerBName string) *ImportService {
	return &ImportService{creator: creator, partnerAName: partnerAName, partnerBName: partnerBName}
}

// ImportPreview is a preview response: the guessed mapping, authoritative
// counts over all rows, and a bounded prefix of rows for rendering.
type ImportPreview struct {
	Headers []string                `json:"headers"`
	Mapping csvimport.ColumnMapping `json:"mapping"`
	Total   int                     `json:"total"`
	Valid   int                     `json:"valid"`
	Invalid int                     `json:"invalid"`
	Rows    []csvimport.PreviewRow  `json:"rows"`
}

func (s *ImportService) newPipeline(skipInvalid bool) *csvimport.Pipeline {
	return csvimport.NewPipeline(csvimport.Options{
		PartnerAName: s.partnerAName,
		PartnerBName: s.partnerBName,
		SkipInvalid:  skipInvalid,
	})
}

// Preview parses the CSV text and validates every row. When mapping is
// non-nil it replaces the guessed column mapping.
func (s *ImportService) Preview(csvText string, mapping *csvimport.ColumnMapping) (*ImportPreview, error) {
	p := s.newPipeline(true)
	if err := p.Upload(csvText); err != nil {
		return nil, err
	}
	if mapping != nil {
		p.SetMapping(*mapping)
	}
	if err := p.ConfirmMapping(); err != nil {
		return nil, err
	}

	preview := p.Preview()
	return &ImportPreview{
		Headers: p.Headers(),
		Mapping: p.Mapping(),
		Total:   preview.Total,
		Valid:   preview.Valid,
		Invalid: preview.Invalid,
		Rows:    preview.Head(csvimport.PreviewRenderLimit),
	}, nil
}

// Commit runs the full pipeline and commits valid drafts. Overrides are
// keyed by 0-based row index.
func (s *ImportService) Commit(ctx context.Context, csvText string, mapping *csvimport.ColumnMapping, overrides map[int]csvimport.RowOverride, skipInvalid bool) (csvimport.Result, error) {
	p := s.newPipeline(skipInvalid)
	if err := p.Upload(csvText); err != nil {
		return csvimport.Result{}, err
	}
	if mapping != nil {
		p.SetMapping(*mapping)
	}
	for idx, o := range overrides {
		p.SetOverride(idx, o)
	}
	if err := p.ConfirmMapping(); err != nil {
		return csvimport.Result{}, err
	}
	// Commit requires StepPreview; the validation pass it runs is the
	// same one Preview would have shown.
	result, err := p.Commit(ctx, s.creator)
	if err != nil {
		return csvimport.Result{}, err
	}

	slog.Info("csv import committed",
		"created", result.Created,
		"failed", result.Failed,
		"skipped", result.Skipped,
	)
	return result, nil
}

// Drafts exposes the valid drafts of a parsed CSV without committing, for
// callers (like the CLI) that want to inspect before writing.
func (s *ImportService) Drafts(csvText string, mapping *csvimport.ColumnMapping) ([]*models.Expense, *ImportPreview, error) {
	preview, err := s.Preview(csvText, mapping)
	if err != nil {
		return nil, nil, err
	}
	var drafts []*models.Expense
	for _, row := range preview.Rows {
		if row.Draft != nil {
			drafts = append(drafts, row.Draft)
		}
	}
	return drafts, preview, nil
}
