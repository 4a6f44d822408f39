package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"saaransh/internal/errors"
	"saaransh/internal/model"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Export is a rendered download.
type Export struct {
	ContentType string
	Filename    string
	Body        []byte
}

var csvHeader = []string{
	"id", "consultation_id", "consultation_title", "submitter", "stakeholder_type", "date",
	"stance", "quality_score", "language", "keywords", "summary", "original_text",
}

// ExportComments renders every comment as JSON (the default) or CSV.
func (s *analyticsService) ExportComments(ctx context.Context, format string) (*Export, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatCSV {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnsupportedFormat, format)
	}

	comments, err := s.repo.ListComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	if format == FormatJSON {
		body, err := json.MarshalIndent(comments, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return &Export{ContentType: "application/json", Filename: "saaransh-comments.json", Body: body}, nil
	}

	consultations, err := s.repo.ListConsultations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	body, err := encodeCommentsCSV(comments, consultations)
	if err != nil {
		return nil, err
	}
	return &Export{ContentType: "text/csv; charset=utf-8", Filename: "saaransh-comments.csv", Body: body}, nil
}

func encodeCommentsCSV(comments []model.Comment, consultations []model.Consultation) ([]byte, error) {
	titles := make(map[uint]string, len(consultations))
	for _, c := range consultations {
		titles[c.ID] = c.Title
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range comments {
		record := []string{
			strconv.FormatUint(uint64(c.ID), 10),
			strconv.FormatUint(uint64(c.ConsultationID), 10),
			titles[c.ConsultationID],
			c.Submitter,
			string(c.StakeholderType),
			c.Date,
			string(c.Stance),
			strconv.FormatFloat(c.QualityScore, 'f', 1, 64),
			c.Language,
			strings.Join(c.Keywords, "; "),
			c.Summary,
			c.OriginalText,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv record %d: %w", c.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
