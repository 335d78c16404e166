package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tortadestroyer/ai-resume-scanner-1/internal/dto"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/model"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/repository"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/scoring"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/service"
	"github.com/tortadestroyer/ai-resume-scanner-1/internal/util"
)

// QualificationThreshold is the fixed match-score cutoff at and above
// which a candidate is classified as qualified.
const QualificationThreshold = 70

const (
	defaultName  = "Unknown"
	defaultEmail = "unknown@example.com"
)

type ScreeningUsecase struct {
	candidateRepo  repository.CandidateRepository
	extractor      service.TextExtractorInterface
	notifier       service.NotifierInterface
	scorer         *scoring.Engine
	logger         *zap.Logger
	extractTimeout time.Duration
}

func NewScreeningUsecase(
	candidateRepo repository.CandidateRepository,
	extractor service.TextExtractorInterface,
	notifier service.NotifierInterface,
	scorer *scoring.Engine,
	logger *zap.Logger,
	extractTimeout time.Duration,
) *ScreeningUsecase {
	return &ScreeningUsecase{
		candidateRepo:  candidateRepo,
		extractor:      extractor,
		notifier:       notifier,
		scorer:         scorer,
		logger:         logger,
		extractTimeout: extractTimeout,
	}
}

type SubmitInput struct {
	Document  []byte
	Filename  string
	JobTitle  string
	CompanyID string
	Name      string
	Email     string
}

// Submit runs the intake pipeline: validate, extract, score, classify,
// persist, notify. The returned summary carries only the id, score and
// status; the stored record is never echoed back.
func (uc *ScreeningUsecase) Submit(ctx context.Context, input SubmitInput) (dto.CandidateSummaryDTO, error) {
	if len(input.Document) == 0 || input.JobTitle == "" || input.CompanyID == "" {
		return dto.CandidateSummaryDTO{}, util.NewValidationError("Missing required fields")
	}

	extractCtx, cancel := context.WithTimeout(ctx, uc.extractTimeout)
	defer cancel()

	resumeText, err := uc.extractor.ExtractText(extractCtx, input.Document, input.Filename)
	if err != nil {
		return dto.CandidateSummaryDTO{}, util.NewExtractionError(err)
	}

	matchScore, err := uc.scorer.Score(resumeText, input.JobTitle)
	if err != nil {
		return dto.CandidateSummaryDTO{}, fmt.Errorf("score resume: %w", err)
	}

	status := model.StatusRejected
	if matchScore >= QualificationThreshold {
		status = model.StatusQualified
	}

	candidate := model.Candidate{
		ID:         uuid.New(),
		Name:       valueOrDefault(input.Name, defaultName),
		Email:      valueOrDefault(input.Email, defaultEmail),
		JobTitle:   input.JobTitle,
		CompanyID:  input.CompanyID,
		ResumeText: resumeText,
		MatchScore: matchScore,
		Status:     status,
		CreatedAt:  time.Now().UTC(),
	}

	if err := uc.candidateRepo.Create(&candidate); err != nil {
		return dto.CandidateSummaryDTO{}, fmt.Errorf("persist candidate: %w", err)
	}

	// Delivery is decoupled from the submission result: a failed dispatch
	// is logged, never surfaced to the caller.
	if err := uc.notifier.Notify(ctx, candidate); err != nil {
		uc.logger.Warn("notification dispatch failed",
			zap.String("candidate_id", candidate.ID.String()),
			zap.String("status", candidate.Status),
			zap.Error(err),
		)
	}

	uc.logger.Info("candidate screened",
		zap.String("candidate_id", candidate.ID.String()),
		zap.String("job_title", candidate.JobTitle),
		zap.Int("match_score", candidate.MatchScore),
		zap.String("status", candidate.Status),
	)

	return dto.NewCandidateSummaryDTO(candidate), nil
}

// List returns a snapshot of candidates passing the filter, projected for
// display (no resume text, no company id).
func (uc *ScreeningUsecase) List(filter repository.CandidateFilter) ([]dto.CandidateDTO, error) {
	candidates, err := uc.candidateRepo.Find(filter)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	result := make([]dto.CandidateDTO, 0, len(candidates))
	for _, c := range candidates {
		result = append(result, dto.NewCandidateDTO(c))
	}
	return result, nil
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
