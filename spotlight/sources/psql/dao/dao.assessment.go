// spotlight/sources/psql/dao/dao.assessment.go
package dao

import (
	"context"
	"database/sql"
	"errors"
	"math"

	"spotlight/spotlight/sources/psql"
	"spotlight/spotlight/sources/psql/models"
	"spotlight/spotlight/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssessmentDAO struct {
	DB *psql.Database
}

func NewAssessmentDAO(db *psql.Database) *AssessmentDAO {
	return &AssessmentDAO{DB: db}
}

// ListAssessments returns assessments most recently completed first.
func (dao *AssessmentDAO) ListAssessments(ctx context.Context, filter types.AssessmentFilter) ([]models.Assessment, error) {
	conn, err := dao.DB.Conn(ctx)
	if err != nil {
		return nil, err
	}
	q := conn.Model(&models.Assessment{})
	if filter.Search != "" {
		q = nameContains(q, filter.Search)
	}
	assessments := []models.Assessment{}
	if err := q.Order("completed DESC").Order("id ASC").Find(&assessments).Error; err != nil {
		return nil, storeErr(err)
	}
	return assessments, nil
}

// GetAssessmentByID returns nil, nil when no assessment matches.
func (dao *AssessmentDAO) GetAssessmentByID(ctx context.Context, id uuid.UUID) (*models.Assessment, error) {
	conn, err := dao.DB.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var assessment models.Assessment
	err = conn.First(&assessment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return &assessment, nil
}

func (dao *AssessmentDAO) CountAssessments(ctx context.Context) (int64, error) {
	conn, err := dao.DB.Conn(ctx)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := conn.Model(&models.Assessment{}).Count(&n).Error; err != nil {
		return 0, storeErr(err)
	}
	return n, nil
}

// AverageTotalScore is rounded to one decimal and is 0 when there are no assessments.
func (dao *AssessmentDAO) AverageTotalScore(ctx context.Context) (float64, error) {
	conn, err := dao.DB.Conn(ctx)
	if err != nil {
		return 0, err
	}
	var avg sql.NullFloat64
	row := conn.Model(&models.Assessment{}).Select("AVG(CAST(total_score AS FLOAT))").Row()
	if err := row.Scan(&avg); err != nil {
		return 0, storeErr(err)
	}
	if !avg.Valid {
		return 0, nil
	}
	return math.Round(avg.Float64*10) / 10, nil
}

// HighestRated returns the top total score. Ties go to the earliest completed,
// then to the lowest id. Returns nil, nil when there are no assessments.
func (dao *AssessmentDAO) HighestRated(ctx context.Context) (*models.Assessment, error) {
	top, err := dao.ListTopAssessments(ctx, 1)
	if err != nil || len(top) == 0 {
		return nil, err
	}
	return &top[0], nil
}

// ListTopAssessments returns up to limit assessments by total score, using the HighestRated tie-break.
func (dao *AssessmentDAO) ListTopAssessments(ctx context.Context, limit int) ([]models.Assessment, error) {
	conn, err := dao.DB.Conn(ctx)
	if err != nil {
		return nil, err
	}
	assessments := []models.Assessment{}
	err = conn.Model(&models.Assessment{}).
		Order("total_score DESC").
		Order("completed ASC").
		Order("id ASC").
		Limit(limit).
		Find(&assessments).Error
	if err != nil {
		return nil, storeErr(err)
	}
	return assessments, nil
}
