package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/quizbank/quizbank-backend/internal/clients/openai"
	"github.com/quizbank/quizbank-backend/internal/pkg/logger"
	"github.com/quizbank/quizbank-backend/internal/repos"
	"github.com/quizbank/quizbank-backend/internal/scan"
)

// ScanSummary reports one scanned page. A page with no recoverable
// questions is a valid empty result, not an error.
type ScanSummary struct {
	PageNo  string         `json:"page_no"`
	Import  *ImportSummary `json:"import,omitempty"`
	Scanned int            `json:"scanned"`
}

type ScanService interface {
	// ScanImage OCRs one photographed page through the vision model and
	// feeds the recovered questions into the import pipeline under
	// topicName (or merged into mergeTopicID when set).
	ScanImage(ctx context.Context, userID uuid.UUID, image []byte, mimeType, topicName string, mergeTopicID *uuid.UUID) (*ScanSummary, error)
}

type scanService struct {
	log      *logger.Logger
	ai       openai.Client
	keys     repos.APIKeyRepo
	importer ImportService
}

func NewScanService(log *logger.Logger, ai openai.Client, keys repos.APIKeyRepo, importer ImportService) ScanService {
	return &scanService{
		log:      log.With("service", "ScanService"),
		ai:       ai,
		keys:     keys,
		importer: importer,
	}
}

func (s *scanService) ScanImage(ctx context.Context, userID uuid.UUID, image []byte, mimeType, topicName string, mergeTopicID *uuid.UUID) (*ScanSummary, error) {
	client, err := s.clientForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	raw, err := client.GenerateTextWithImage(ctx,
		"You transcribe printed multiple-choice questions exactly as shown.",
		scan.VisionPrompt(),
		openai.DataURL(mimeType, image))
	if err != nil {
		return nil, fmt.Errorf("vision call: %w", err)
	}

	payload, err := scan.ExtractScan(raw)
	if err != nil {
		s.log.Warn("scan extraction failed", "error", err)
		return nil, err
	}
	scan.CleanPayload(payload)

	summary := &ScanSummary{PageNo: payload.PageNo, Scanned: len(payload.Questions)}
	if len(payload.Questions) == 0 {
		s.log.Info("page scanned, no questions recovered", "page_no", payload.PageNo)
		return summary, nil
	}

	rows := scan.Rows(payload, topicName)
	sourceName := topicName
	if sourceName == "" {
		sourceName = "Scanned Pages"
	}
	imported, err := s.importer.ImportRows(ctx, userID, sourceName, rows, mergeTopicID)
	if err != nil {
		return nil, err
	}
	summary.Import = imported
	return summary, nil
}

// clientForUser prefers the user's stored provider key and falls back to the
// server-level key when none is saved.
func (s *scanService) clientForUser(ctx context.Context, userID uuid.UUID) (openai.Client, error) {
	keys, err := s.keys.GetByUser(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if keys != nil && keys.OpenAIKey != "" {
		return s.ai.WithAPIKey(keys.OpenAIKey), nil
	}
	if !s.ai.HasKey() {
		return nil, ErrNoAPIKey
	}
	return s.ai, nil
}
