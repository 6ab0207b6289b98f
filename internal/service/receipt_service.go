package service

import (
	"encoding/json"
	"fmt"

	"github.com/pairshare/pairshare/internal/category"
	"github.com/pairshare/pairshare/internal/models"
	"github.com/pairshare/pairshare/internal/receipt"
)

// ReceiptService normalizes document-analysis results from the OCR
// collaborator into extractions the UI can apply.
type ReceiptService struct{}

// NewReceiptService creates a ReceiptService.
func NewReceiptService() *ReceiptService {
	return &ReceiptService{}
}

// ScanResult is an extraction plus derived hints for the caller.
type ScanResult struct {
	receipt.Extraction
	SuggestedCategory models.Category `json:"suggestedCategory,omitempty"`
	NeedsReview       bool            `json:"needsReview"`
}

// ExtractFromJSON decodes a raw AnalyzeExpense-shaped JSON document and
// extracts expense fields from it. Unknown fields in the document are
// ignored: the schema is not under our control.
func (s *ReceiptService) ExtractFromJSON(raw []byte) (*ScanResult, error) {
	var result receipt.AnalyzeExpenseResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("invalid document-analysis payload: %w", err)
	}
	return s.Extract(&result), nil
}

// Extract normalizes an analysis result and attaches a merchant-based
// category suggestion when one exists.
func (s *ReceiptService) Extract(result *receipt.AnalyzeExpenseResult) *ScanResult {
	extraction := receipt.Extract(result)
	scan := &ScanResult{
		Extraction:  extraction,
		NeedsReview: extraction.NeedsReview(),
	}
	if cat, ok := category.SuggestFromMerchant(extraction.MerchantName); ok {
		scan.SuggestedCategory = cat
	}
	return scan
}
