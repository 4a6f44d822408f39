package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"saaransh/internal/model"
)

// MockCatalogRepository is a mock implementation of repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListConsultations(ctx context.Context) ([]model.Consultation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Consultation), args.Error(1)
}

func (m *MockCatalogRepository) FindConsultation(ctx context.Context, id uint) (*model.Consultation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Consultation), args.Error(1)
}

func (m *MockCatalogRepository) FindConsultationBySlug(ctx context.Context, slug string) (*model.Consultation, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Consultation), args.Error(1)
}

func (m *MockCatalogRepository) ListComments(ctx context.Context) ([]model.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCatalogRepository) ListCommentsByConsultation(ctx context.Context, consultationID uint) ([]model.Comment, error) {
	args := m.Called(ctx, consultationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCatalogRepository) WordCloud(ctx context.Context, consultationID uint, stance string) ([]model.WordCloudEntry, error) {
	args := m.Called(ctx, consultationID, stance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.WordCloudEntry), args.Error(1)
}

func (m *MockCatalogRepository) Trends(ctx context.Context) ([]model.TrendPoint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TrendPoint), args.Error(1)
}

func (m *MockCatalogRepository) AccessLogs(ctx context.Context) ([]model.AccessLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AccessLog), args.Error(1)
}
