package repository

import (
	"context"
	stderrors "errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"saaransh/internal/dataset"
	"saaransh/internal/errors"
	"saaransh/internal/model"
)

// CatalogRepository defines read access to consultations and their feedback.
type CatalogRepository interface {
	ListConsultations(ctx context.Context) ([]model.Consultation, error)
	FindConsultation(ctx context.Context, id uint) (*model.Consultation, error)
	FindConsultationBySlug(ctx context.Context, slug string) (*model.Consultation, error)
	ListComments(ctx context.Context) ([]model.Comment, error)
	ListCommentsByConsultation(ctx context.Context, consultationID uint) ([]model.Comment, error)
	WordCloud(ctx context.Context, consultationID uint, stance string) ([]model.WordCloudEntry, error)
	Trends(ctx context.Context) ([]model.TrendPoint, error)
	AccessLogs(ctx context.Context) ([]model.AccessLog, error)
}

// ResolveConsultation looks a consultation up by numeric id, falling back to its slug.
func ResolveConsultation(ctx context.Context, repo CatalogRepository, ref string) (*model.Consultation, error) {
	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		return repo.FindConsultation(ctx, uint(id))
	}
	return repo.FindConsultationBySlug(ctx, ref)
}

// CatalogModels lists the tables of the catalog schema, parents first.
var CatalogModels = []interface{}{
	&model.Consultation{},
	&model.Comment{},
	&model.WordCloudEntry{},
	&model.TrendPoint{},
	&model.AccessLog{},
}

type catalogRepository struct {
	db *gorm.DB
}

var _ CatalogRepository = (*catalogRepository)(nil)

// NewCatalogRepository creates a catalog repository backed by a database.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// ListConsultations returns all consultations ordered by id.
func (r *catalogRepository) ListConsultations(ctx context.Context) ([]model.Consultation, error) {
	var out []model.Consultation
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindConsultation finds a consultation by ID.
func (r *catalogRepository) FindConsultation(ctx context.Context, id uint) (*model.Consultation, error) {
	var c model.Consultation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// FindConsultationBySlug finds a consultation by slug.
func (r *catalogRepository) FindConsultationBySlug(ctx context.Context, slug string) (*model.Consultation, error) {
	var c model.Consultation
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

// ListComments returns every comment ordered by id.
func (r *catalogRepository) ListComments(ctx context.Context) ([]model.Comment, error) {
	var out []model.Comment
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListCommentsByConsultation returns the comments of one consultation.
func (r *catalogRepository) ListCommentsByConsultation(ctx context.Context, consultationID uint) ([]model.Comment, error) {
	if _, err := r.FindConsultation(ctx, consultationID); err != nil {
		return nil, err
	}
	var out []model.Comment
	if err := r.db.WithContext(ctx).Where("consultation_id = ?", consultationID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// WordCloud returns the terms of one consultation's stance bucket in authoring order.
func (r *catalogRepository) WordCloud(ctx context.Context, consultationID uint, stance string) ([]model.WordCloudEntry, error) {
	if _, err := r.FindConsultation(ctx, consultationID); err != nil {
		return nil, err
	}
	var out []model.WordCloudEntry
	if err := r.db.WithContext(ctx).
		Where("consultation_id = ? AND stance = ?", consultationID, stance).
		Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Trends returns trend observations in insertion order.
func (r *catalogRepository) Trends(ctx context.Context) ([]model.TrendPoint, error) {
	var out []model.TrendPoint
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// AccessLogs returns the access log ordered by id.
func (r *catalogRepository) AccessLogs(ctx context.Context) ([]model.AccessLog, error) {
	var out []model.AccessLog
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func notFound(err error) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.ErrConsultationNotFound
	}
	return err
}

// SeedResult reports how many rows a seed wrote per table.
type SeedResult struct {
	Consultations int
	Comments      int
	WordClouds    int
	Trends        int
	AccessLogs    int
}

// MigrateCatalog creates or updates the catalog tables.
func MigrateCatalog(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(CatalogModels...); err != nil {
		return fmt.Errorf("auto-migrate catalog: %w", err)
	}
	return nil
}

// SeedCatalog writes data in one transaction. Rows with natural ids are upserted; word
// clouds and trends are replaced wholesale since they have no stable key.
func SeedCatalog(ctx context.Context, db *gorm.DB, data dataset.Catalog) (SeedResult, error) {
	var res SeedResult
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{UpdateAll: true}).Omit(clause.Associations).Session(&gorm.Session{})

		if len(data.Consultations) > 0 {
			if err := upsert.Create(&data.Consultations).Error; err != nil {
				return fmt.Errorf("seed consultations: %w", err)
			}
		}
		if len(data.Comments) > 0 {
			if err := upsert.Create(&data.Comments).Error; err != nil {
				return fmt.Errorf("seed comments: %w", err)
			}
		}
		if len(data.AccessLogs) > 0 {
			if err := upsert.Create(&data.AccessLogs).Error; err != nil {
				return fmt.Errorf("seed access logs: %w", err)
			}
		}

		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.WordCloudEntry{}).Error; err != nil {
			return fmt.Errorf("clear word clouds: %w", err)
		}
		if len(data.WordClouds) > 0 {
			if err := tx.Create(&data.WordClouds).Error; err != nil {
				return fmt.Errorf("seed word clouds: %w", err)
			}
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.TrendPoint{}).Error; err != nil {
			return fmt.Errorf("clear trends: %w", err)
		}
		if len(data.Trends) > 0 {
			if err := tx.Create(&data.Trends).Error; err != nil {
				return fmt.Errorf("seed trends: %w", err)
			}
		}

		res = SeedResult{
			Consultations: len(data.Consultations),
			Comments:      len(data.Comments),
			WordClouds:    len(data.WordClouds),
			Trends:        len(data.Trends),
			AccessLogs:    len(data.AccessLogs),
		}
		return nil
	})
	return res, err
}
