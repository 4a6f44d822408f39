package service

import (
	"context"
	"fmt"
	"time"

	"saaransh/internal/analytics"
	"saaransh/internal/cache"
	"saaransh/internal/errors"
	"saaransh/internal/model"
	"saaransh/internal/repository"
)

const (
	defaultReportCacheTTL = 5 * time.Minute
	recentCommentLimit    = 5
	topCommentLimit       = 5
	topStakeholderLimit   = 5

	dashboardCacheKey = "report:dashboard"
	analyticsCacheKey = "report:analytics"
)

// AnalyticsService builds the page-level reports.
type AnalyticsService interface {
	Dashboard(ctx context.Context) (*DashboardReport, error)
	ListConsultations(ctx context.Context) ([]model.Consultation, error)
	ConsultationDetail(ctx context.Context, ref string) (*ConsultationReport, error)
	ConsultationComments(ctx context.Context, ref, stance, query string) (*CommentPage, error)
	WordCloud(ctx context.Context, ref, stance string) (*WordCloudReport, error)
	Analytics(ctx context.Context) (*AnalyticsReport, error)
	Stakeholders(ctx context.Context) (*StakeholderReport, error)
	Trends(ctx context.Context) (*TrendsReport, error)
	Reports(ctx context.Context) (*ReportCatalog, error)
	ExportComments(ctx context.Context, format string) (*Export, error)
	AccessLogs(ctx context.Context) ([]model.AccessLog, error)
}

type analyticsService struct {
	repo     repository.CatalogRepository
	cache    *cache.Client
	empty    analytics.EmptyAverage
	cacheTTL time.Duration
}

// NewAnalyticsService creates a new analytics service. A nil cache disables caching.
func NewAnalyticsService(repo repository.CatalogRepository, cache *cache.Client, empty analytics.EmptyAverage, cacheTTL time.Duration) AnalyticsService {
	if cacheTTL <= 0 {
		cacheTTL = defaultReportCacheTTL
	}
	return &analyticsService{
		repo:     repo,
		cache:    cache,
		empty:    empty,
		cacheTTL: cacheTTL,
	}
}

// Dashboard summarises every consultation.
func (s *analyticsService) Dashboard(ctx context.Context) (*DashboardReport, error) {
	var cached DashboardReport
	if s.cache.GetJSON(ctx, dashboardCacheKey, &cached) {
		return &cached, nil
	}

	consultations, err := s.repo.ListConsultations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	comments, err := s.repo.ListComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	report := &DashboardReport{
		StanceDistribution: analytics.StanceDistribution(comments, false),
		Consultations:      consultations,
		RecentComments:     comments[:min(recentCommentLimit, len(comments))],
	}
	for _, c := range consultations {
		report.TotalSubmissions += c.Submissions
		if c.Status == model.ConsultationStatusInProgress {
			report.ActiveConsultations++
		}
		if c.Status.Finished() {
			report.CompletedConsultations++
		}
	}

	s.cache.SetJSON(ctx, dashboardCacheKey, report, s.cacheTTL)
	return report, nil
}

// InvalidateReports drops the cached dashboard and analytics reports so the next read
// recomputes them from the catalog.
func InvalidateReports(ctx context.Context, c *cache.Client) {
	for _, key := range []string{dashboardCacheKey, analyticsCacheKey} {
		_ = c.Delete(ctx, key)
	}
}

// ListConsultations returns every consultation.
func (s *analyticsService) ListConsultations(ctx context.Context) ([]model.Consultation, error) {
	return s.repo.ListConsultations(ctx)
}

// ConsultationDetail summarises one consultation, addressed by id or slug.
func (s *analyticsService) ConsultationDetail(ctx context.Context, ref string) (*ConsultationReport, error) {
	consultation, comments, err := s.consultationComments(ctx, ref)
	if err != nil {
		return nil, err
	}
	cloud, err := s.repo.WordCloud(ctx, consultation.ID, model.WordCloudAll)
	if err != nil {
		return nil, fmt.Errorf("word cloud: %w", err)
	}

	stances := analytics.CountBy(comments, analytics.ByStance)
	report := &ConsultationReport{
		Consultation:       *consultation,
		TotalComments:      len(comments),
		StanceDistribution: analytics.StanceDistribution(comments, true),
		StanceCounts: StanceCounts{
			Supportive: stances.Count(model.StanceSupportive),
			Opposed:    stances.Count(model.StanceOpposed),
			Concerned:  stances.Count(model.StanceConcerned),
		},
		AverageQuality:        s.empty.Render(analytics.Mean(comments, analytics.Quality), len(comments)),
		StakeholderBreakdown:  stakeholderShares(comments),
		QualityBands:          analytics.CountBands(comments, analytics.DetailQualityBands, analytics.Quality),
		MostActiveStakeholder: NotAvailable,
		WordCloud:             analytics.SizeWordCloud(cloud),
	}
	if top, ok := analytics.CountBy(comments, analytics.ByStakeholder).Top(); ok {
		report.MostActiveStakeholder = string(top)
	}
	return report, nil
}

// ConsultationComments filters a consultation's comments by stance and search term.
func (s *analyticsService) ConsultationComments(ctx context.Context, ref, stance, query string) (*CommentPage, error) {
	stance, err := normalizeStance(stance)
	if err != nil {
		return nil, err
	}
	consultation, comments, err := s.consultationComments(ctx, ref)
	if err != nil {
		return nil, err
	}

	filtered := analytics.FilterComments(comments, stance, query)
	return &CommentPage{
		ConsultationID: consultation.ID,
		Stance:         stance,
		Query:          query,
		Shown:          len(filtered),
		Total:          len(comments),
		Comments:       filtered,
	}, nil
}

// WordCloud returns the sized word cloud of one stance bucket.
func (s *analyticsService) WordCloud(ctx context.Context, ref, stance string) (*WordCloudReport, error) {
	stance, err := normalizeStance(stance)
	if err != nil {
		return nil, err
	}
	consultation, err := repository.ResolveConsultation(ctx, s.repo, ref)
	if err != nil {
		return nil, err
	}
	entries, err := s.repo.WordCloud(ctx, consultation.ID, stance)
	if err != nil {
		return nil, fmt.Errorf("word cloud: %w", err)
	}
	return &WordCloudReport{
		ConsultationID: consultation.ID,
		Stance:         stance,
		Words:          analytics.SizeWordCloud(entries),
	}, nil
}

// Analytics builds the cross-consultation overview.
func (s *analyticsService) Analytics(ctx context.Context) (*AnalyticsReport, error) {
	var cached AnalyticsReport
	if s.cache.GetJSON(ctx, analyticsCacheKey, &cached) {
		return &cached, nil
	}

	consultations, err := s.repo.ListConsultations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list consultations: %w", err)
	}
	comments, err := s.repo.ListComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	shares := stakeholderShares(comments)
	report := &AnalyticsReport{
		TotalComments:       len(comments),
		AverageQuality:      s.empty.Render(analytics.Mean(comments, analytics.Quality), len(comments)),
		StakeholderTypes:    len(shares),
		TopStakeholders:     shares[:min(topStakeholderLimit, len(shares))],
		StanceByType:        stanceByType(comments),
		QualityByType:       s.qualityByType(comments),
		Coverage:            coverage(consultations, comments),
		QualityDistribution: analytics.CountBands(comments, analytics.OverviewQualityBands, analytics.Quality),
		TopComments:         analytics.TopN(comments, topCommentLimit, analytics.Quality),
	}

	s.cache.SetJSON(ctx, analyticsCacheKey, report, s.cacheTTL)
	return report, nil
}

// Stakeholders ranks submitters and stakeholder types.
func (s *analyticsService) Stakeholders(ctx context.Context) (*StakeholderReport, error) {
	comments, err := s.repo.ListComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	types := make(map[string]model.StakeholderType)
	for _, c := range comments {
		if _, ok := types[c.Submitter]; !ok {
			types[c.Submitter] = c.StakeholderType
		}
	}

	averages := analytics.AverageBy(comments, analytics.BySubmitter, analytics.Quality)
	ranked := analytics.Rank(averages, func(a analytics.Average[string]) float64 { return float64(a.Count) })
	submitters := make([]SubmitterStat, len(ranked))
	for i, a := range ranked {
		submitters[i] = SubmitterStat{
			Name:           a.Label,
			Type:           types[a.Label],
			Submissions:    a.Count,
			AverageQuality: s.empty.Render(a.Mean, a.Count),
		}
	}

	return &StakeholderReport{
		Shares:       stakeholderShares(comments),
		Submitters:   submitters,
		StanceByType: stanceByType(comments),
	}, nil
}

// Trends pivots trend observations into one series per topic.
func (s *analyticsService) Trends(ctx context.Context) (*TrendsReport, error) {
	points, err := s.repo.Trends(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trends: %w", err)
	}

	series := analytics.PivotTrends(points)
	report := &TrendsReport{Periods: []string{}, Series: series}
	seen := make(map[string]bool)
	for _, p := range points {
		if !seen[p.Period] {
			seen[p.Period] = true
			report.Periods = append(report.Periods, p.Period)
		}
	}
	return report, nil
}

// Reports lists the report types and recently generated reports.
func (s *analyticsService) Reports(_ context.Context) (*ReportCatalog, error) {
	out := ReportCatalog{
		Types:  make([]ReportType, len(reportCatalog.Types)),
		Recent: append([]GeneratedReport(nil), reportCatalog.Recent...),
	}
	for i, t := range reportCatalog.Types {
		t.Formats = append([]string(nil), t.Formats...)
		out.Types[i] = t
	}
	return &out, nil
}

// AccessLogs returns past sign-ins.
func (s *analyticsService) AccessLogs(ctx context.Context) ([]model.AccessLog, error) {
	return s.repo.AccessLogs(ctx)
}

func (s *analyticsService) consultationComments(ctx context.Context, ref string) (*model.Consultation, []model.Comment, error) {
	consultation, err := repository.ResolveConsultation(ctx, s.repo, ref)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.repo.ListCommentsByConsultation(ctx, consultation.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list comments: %w", err)
	}
	return consultation, comments, nil
}

func (s *analyticsService) qualityByType(comments []model.Comment) []QualityAverage {
	averages := analytics.AverageBy(comments, analytics.ByStakeholder, analytics.Quality)
	ranked := analytics.Rank(averages, func(a analytics.Average[model.StakeholderType]) float64 { return a.Mean })
	out := make([]QualityAverage, len(ranked))
	for i, a := range ranked {
		out[i] = QualityAverage{Type: a.Label, Count: a.Count, Average: s.empty.Render(a.Mean, a.Count)}
	}
	return out
}

// normalizeStance accepts "", "All" or a known stance and returns "All" for the first two.
func normalizeStance(stance string) (string, error) {
	if stance == "" || stance == analytics.FilterAll {
		return analytics.FilterAll, nil
	}
	if !model.Stance(stance).Valid() {
		return "", fmt.Errorf("%w: unknown stance %q", errors.ErrInvalidFilter, stance)
	}
	return stance, nil
}

func stakeholderShares(comments []model.Comment) []StakeholderShare {
	ranked := analytics.CountBy(comments, analytics.ByStakeholder).Ranked()
	out := make([]StakeholderShare, len(ranked))
	for i, e := range ranked {
		out[i] = StakeholderShare{Type: e.Label, Count: e.Count, Percent: analytics.Percent(e.Count, len(comments))}
	}
	return out
}

func stanceByType(comments []model.Comment) []StanceMix {
	groups := make(map[model.StakeholderType][]model.Comment)
	var order []model.StakeholderType
	for _, c := range comments {
		if _, ok := groups[c.StakeholderType]; !ok {
			order = append(order, c.StakeholderType)
		}
		groups[c.StakeholderType] = append(groups[c.StakeholderType], c)
	}

	out := make([]StanceMix, len(order))
	for i, t := range order {
		out[i] = StanceMix{
			Type:    t,
			Total:   len(groups[t]),
			Stances: analytics.CountBy(groups[t], analytics.ByStance).Entries(),
		}
	}
	return out
}

func coverage(consultations []model.Consultation, comments []model.Comment) []Coverage {
	perConsultation := analytics.CountBy(comments, func(c model.Comment) uint { return c.ConsultationID })
	out := make([]Coverage, len(consultations))
	for i, c := range consultations {
		analysed := perConsultation.Count(c.ID)
		out[i] = Coverage{
			ConsultationID: c.ID,
			Title:          c.Title,
			Analysed:       analysed,
			Submissions:    c.Submissions,
			Percent:        min(analytics.Percent(analysed, c.Submissions), 100),
			EndDate:        c.EndDate,
			Status:         c.Status,
		}
	}
	return out
}
