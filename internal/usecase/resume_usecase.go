package usecase

import (
	"context"
	"errors"

	"go-careerpath-backend/internal/domain"
	"go-careerpath-backend/internal/extractor"
	"go-careerpath-backend/pkg/apperror"
	"go-careerpath-backend/pkg/docreader"
)

type resumeUsecase struct {
	extractor *extractor.Extractor
}

func NewResumeUsecase(ext *extractor.Extractor) domain.ResumeUsecase {
	return &resumeUsecase{extractor: ext}
}

// AnalyzeResume reads the uploaded document, scrubs contact details and
// extracts the canonical skills found in the remaining text.
func (u *resumeUsecase) AnalyzeResume(ctx context.Context, filename string, data []byte) (*domain.ResumeAnalysis, error) {
	if len(data) == 0 {
		return nil, apperror.BadRequest("Uploaded file is empty")
	}

	text, err := docreader.Read(filename, data)
	if err != nil {
		switch {
		case errors.Is(err, docreader.ErrUnsupportedFormat):
			return nil, apperror.UnsupportedFormat("Only PDF, DOCX and TXT resumes are supported")
		case errors.Is(err, docreader.ErrUnreadableDocument):
			return nil, apperror.UnreadableDocument("Could not extract text from the uploaded file", err)
		default:
			return nil, apperror.Internal(err)
		}
	}

	cleaned := u.extractor.CleanText(text)
	return &domain.ResumeAnalysis{
		ResumeText: cleaned,
		Skills:     u.extractor.ExtractSkills(cleaned),
	}, nil
}
