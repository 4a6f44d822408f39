package service

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"saaransh/internal/analytics"
	"saaransh/internal/cache"
	"saaransh/internal/dataset"
	"saaransh/internal/errors"
	"saaransh/internal/model"
	"saaransh/internal/repository"
)

func newStaticService(policy analytics.EmptyAverage) AnalyticsService {
	return NewAnalyticsService(repository.NewStaticCatalog(dataset.Load()), nil, policy, 0)
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	report, err := newStaticService(analytics.EmptyAverageZero).Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1345+782+2109, report.TotalSubmissions)
	assert.Equal(t, 1, report.ActiveConsultations)
	assert.Equal(t, 2, report.CompletedConsultations)
	assert.Len(t, report.Consultations, 3)

	require.Len(t, report.StanceDistribution, len(model.Stances))
	total := 0
	for i, slice := range report.StanceDistribution {
		assert.Equal(t, model.Stances[i], slice.Name)
		total += slice.Value
	}
	assert.Equal(t, 7, total)
	assert.Equal(t, 2, report.StanceDistribution[0].Value)

	require.Len(t, report.RecentComments, 5)
	assert.Equal(t, uint(101), report.RecentComments[0].ID)
	assert.Equal(t, uint(105), report.RecentComments[4].ID)
}

func TestAnalyticsService_ConsultationDetail(t *testing.T) {
	svc := newStaticService(analytics.EmptyAverageZero)

	for _, ref := range []string{"1", "draft-companies-amendment-bill-2025"} {
		t.Run(ref, func(t *testing.T) {
			report, err := svc.ConsultationDetail(context.Background(), ref)
			require.NoError(t, err)

			assert.Equal(t, uint(1), report.Consultation.ID)
			assert.Equal(t, 5, report.TotalComments)
			assert.Len(t, report.StanceDistribution, 5)
			assert.Equal(t, StanceCounts{Supportive: 1, Opposed: 1, Concerned: 1}, report.StanceCounts)
			assert.Equal(t, 4.2, report.AverageQuality)
			assert.Equal(t, string(model.StakeholderLawFirm), report.MostActiveStakeholder)

			require.Len(t, report.QualityBands, 3)
			assert.Equal(t, 4, report.QualityBands[0].Count)
			assert.Equal(t, 1, report.QualityBands[1].Count)
			assert.Equal(t, 0, report.QualityBands[2].Count)

			require.Len(t, report.WordCloud, 6)
			assert.Equal(t, analytics.CloudWord{Text: "Director Liability", Value: 95, Size: 5}, report.WordCloud[0])
			assert.Equal(t, analytics.CloudWord{Text: "Section 185", Value: 68, Size: 3}, report.WordCloud[5])
		})
	}
}

func TestAnalyticsService_ConsultationDetail_NotFound(t *testing.T) {
	_, err := newStaticService(analytics.EmptyAverageZero).ConsultationDetail(context.Background(), "404")
	assert.ErrorIs(t, err, errors.ErrConsultationNotFound)
}

func TestAnalyticsService_ConsultationDetail_NoComments(t *testing.T) {
	ctx := context.Background()
	consultation := &model.Consultation{ID: 9, Title: "Empty", Status: model.ConsultationStatusDraft}

	tests := []struct {
		name   string
		policy analytics.EmptyAverage
		want   any
	}{
		{"zero", analytics.EmptyAverageZero, 0.0},
		{"null", analytics.EmptyAverageNull, nil},
		{"no data", analytics.EmptyAverageNoData, analytics.NoDataMarker},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockCatalogRepository)
			repo.On("FindConsultation", ctx, uint(9)).Return(consultation, nil)
			repo.On("ListCommentsByConsultation", ctx, uint(9)).Return([]model.Comment{}, nil)
			repo.On("WordCloud", ctx, uint(9), model.WordCloudAll).Return(nil, nil)

			report, err := NewAnalyticsService(repo, nil, tt.policy, 0).ConsultationDetail(ctx, "9")
			require.NoError(t, err)
			assert.Equal(t, tt.want, report.AverageQuality)
			assert.Equal(t, NotAvailable, report.MostActiveStakeholder)
			assert.Empty(t, report.StanceDistribution)
			assert.Empty(t, report.WordCloud)
			repo.AssertExpectations(t)
		})
	}
}

func TestAnalyticsService_ConsultationComments(t *testing.T) {
	svc := newStaticService(analytics.EmptyAverageZero)

	tests := []struct {
		name      string
		stance    string
		query     string
		wantShown int
		wantErr   error
	}{
		{"everything", "", "", 5, nil},
		{"all keyword", "All", "", 5, nil},
		{"by stance", "Opposed", "", 1, nil},
		{"search keyword", "All", "section", 2, nil},
		{"search submitter case-insensitive", "", "PRIYA", 1, nil},
		{"stance and search", "Supportive", "section", 0, nil},
		{"unknown stance", "Angry", "", 0, errors.ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.ConsultationComments(context.Background(), "1", tt.stance, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantShown, page.Shown)
			assert.Len(t, page.Comments, tt.wantShown)
			assert.Equal(t, 5, page.Total)
		})
	}
}

func TestAnalyticsService_WordCloud(t *testing.T) {
	svc := newStaticService(analytics.EmptyAverageZero)
	ctx := context.Background()

	report, err := svc.WordCloud(ctx, "1", "Opposed")
	require.NoError(t, err)
	require.Len(t, report.Words, 3)
	assert.Equal(t, "Restrictive Conditions", report.Words[0].Text)
	assert.Equal(t, 5, report.Words[0].Size)

	report, err = svc.WordCloud(ctx, "2", "")
	require.NoError(t, err)
	assert.Equal(t, analytics.FilterAll, report.Stance)
	assert.Empty(t, report.Words)

	_, err = svc.WordCloud(ctx, "1", "Bogus")
	assert.ErrorIs(t, err, errors.ErrInvalidFilter)
}

func TestAnalyticsService_Analytics(t *testing.T) {
	report, err := newStaticService(analytics.EmptyAverageZero).Analytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 7, report.TotalComments)
	assert.Equal(t, 4.3, report.AverageQuality)
	assert.Equal(t, 5, report.StakeholderTypes)

	require.Len(t, report.TopStakeholders, 5)
	assert.Equal(t, StakeholderShare{Type: model.StakeholderNGO, Count: 2, Percent: 28.6}, report.TopStakeholders[0])
	assert.Equal(t, model.StakeholderIndustryBody, report.TopStakeholders[1].Type)
	assert.Equal(t, model.StakeholderLawFirm, report.TopStakeholders[2].Type)

	require.Len(t, report.QualityByType, 5)
	assert.Equal(t, QualityAverage{Type: model.StakeholderLawFirm, Count: 1, Average: 4.8}, report.QualityByType[0])
	assert.Equal(t, QualityAverage{Type: model.StakeholderIndustryBody, Count: 2, Average: 4.7}, report.QualityByType[1])
	assert.Equal(t, QualityAverage{Type: model.StakeholderNGO, Count: 2, Average: 4.2}, report.QualityByType[2])
	assert.Equal(t, model.StakeholderIndividual, report.QualityByType[4].Type)

	require.Len(t, report.Coverage, 3)
	assert.Equal(t, 5, report.Coverage[0].Analysed)
	assert.Equal(t, 0.4, report.Coverage[0].Percent)

	counts := make([]int, len(report.QualityDistribution))
	for i, b := range report.QualityDistribution {
		counts[i] = b.Count
	}
	assert.Equal(t, []int{3, 3, 1, 0}, counts)

	ids := make([]uint, len(report.TopComments))
	for i, c := range report.TopComments {
		ids[i] = c.ID
	}
	assert.Equal(t, []uint{301, 101, 104, 102, 201}, ids)
}

func TestAnalyticsService_Stakeholders(t *testing.T) {
	report, err := newStaticService(analytics.EmptyAverageZero).Stakeholders(context.Background())
	require.NoError(t, err)

	require.Len(t, report.Submitters, 7)
	assert.Equal(t, SubmitterStat{Name: "Apex Law Associates", Type: model.StakeholderLawFirm, Submissions: 1, AverageQuality: 4.8}, report.Submitters[0])

	var ngo *StanceMix
	for i := range report.StanceByType {
		if report.StanceByType[i].Type == model.StakeholderNGO {
			ngo = &report.StanceByType[i]
		}
	}
	require.NotNil(t, ngo)
	assert.Equal(t, 2, ngo.Total)
	assert.Equal(t, []analytics.Entry[model.Stance]{{Label: model.StanceSupportive, Count: 2}}, ngo.Stances)
}

func TestAnalyticsService_Trends(t *testing.T) {
	report, err := newStaticService(analytics.EmptyAverageZero).Trends(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"2021", "2022", "2023", "2024", "2025"}, report.Periods)
	require.Len(t, report.Series, 2)
	assert.Equal(t, dataset.TopicDataPrivacy, report.Series[0].Topic)
	assert.Equal(t, "2025", report.Series[0].PeakPeriod)
	assert.Equal(t, 450-230, report.Series[0].Change)
	assert.Equal(t, "2024", report.Series[1].PeakPeriod)
}

func TestAnalyticsService_Reports(t *testing.T) {
	svc := newStaticService(analytics.EmptyAverageZero)
	first, err := svc.Reports(context.Background())
	require.NoError(t, err)
	require.Len(t, first.Types, 4)
	assert.Equal(t, "Raw Data Export", first.Types[3].Title)

	first.Types[0].Formats[0] = "changed"
	second, err := svc.Reports(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "PDF", second.Types[0].Formats[0])
}

func TestAnalyticsService_RepositoryFailure(t *testing.T) {
	ctx := context.Background()
	boom := stderrors.New("connection refused")

	repo := new(MockCatalogRepository)
	repo.On("ListConsultations", mock.Anything).Return(nil, boom)

	_, err := NewAnalyticsService(repo, nil, analytics.EmptyAverageZero, 0).Dashboard(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestInvalidateReports_CacheUnavailable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()
	reports := cache.New(rdb, "test:")

	InvalidateReports(ctx, reports)
	InvalidateReports(ctx, nil)

	svc := NewAnalyticsService(repository.NewStaticCatalog(dataset.Load()), reports, analytics.EmptyAverageZero, 0)
	report, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, report.Consultations)
}
