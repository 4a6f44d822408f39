package repository

import (
	"context"
	"slices"

	"saaransh/internal/dataset"
	"saaransh/internal/errors"
	"saaransh/internal/model"
)

type staticCatalog struct {
	data dataset.Catalog
}

var _ CatalogRepository = (*staticCatalog)(nil)

// NewStaticCatalog serves a dataset held in memory. Results are copies.
func NewStaticCatalog(data dataset.Catalog) CatalogRepository {
	return &staticCatalog{data: data}
}

func (r *staticCatalog) ListConsultations(_ context.Context) ([]model.Consultation, error) {
	return slices.Clone(r.data.Consultations), nil
}

func (r *staticCatalog) FindConsultation(_ context.Context, id uint) (*model.Consultation, error) {
	for _, c := range r.data.Consultations {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, errors.ErrConsultationNotFound
}

func (r *staticCatalog) FindConsultationBySlug(_ context.Context, slug string) (*model.Consultation, error) {
	for _, c := range r.data.Consultations {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, errors.ErrConsultationNotFound
}

func (r *staticCatalog) ListComments(_ context.Context) ([]model.Comment, error) {
	return cloneComments(r.data.Comments), nil
}

func (r *staticCatalog) ListCommentsByConsultation(ctx context.Context, consultationID uint) ([]model.Comment, error) {
	if _, err := r.FindConsultation(ctx, consultationID); err != nil {
		return nil, err
	}
	var out []model.Comment
	for _, c := range r.data.Comments {
		if c.ConsultationID == consultationID {
			out = append(out, c)
		}
	}
	return cloneComments(out), nil
}

func (r *staticCatalog) WordCloud(ctx context.Context, consultationID uint, stance string) ([]model.WordCloudEntry, error) {
	if _, err := r.FindConsultation(ctx, consultationID); err != nil {
		return nil, err
	}
	var out []model.WordCloudEntry
	for _, e := range r.data.WordClouds {
		if e.ConsultationID == consultationID && e.Stance == stance {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *staticCatalog) Trends(_ context.Context) ([]model.TrendPoint, error) {
	return slices.Clone(r.data.Trends), nil
}

func (r *staticCatalog) AccessLogs(_ context.Context) ([]model.AccessLog, error) {
	return slices.Clone(r.data.AccessLogs), nil
}

func cloneComments(in []model.Comment) []model.Comment {
	out := make([]model.Comment, len(in))
	for i, c := range in {
		c.Keywords = slices.Clone(c.Keywords)
		out[i] = c
	}
	return out
}
