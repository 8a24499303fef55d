package repository

import (
	"context"
	"database/sql"
	"fmt"

	"engelsiz-ankara-backend/internal/domain/model"
	"engelsiz-ankara-backend/internal/domain/repository"
	"engelsiz-ankara-backend/internal/infrastructure/database"
)

type PostgresComplaintRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresComplaintRepository(client *database.PostgreSQLClient) repository.ComplaintRepository {
	return &PostgresComplaintRepository{
		client: client,
	}
}

const complaintColumns = `id, category, description, lat, lon, urgency, photo, created_at, status, feedback, feedback_at, feedback_by, user_id`

// ComplaintResult veritabanı satırını taramak için kullanılan yapı
type ComplaintResult struct {
	ID          int
	Category    string
	Description string
	Lat         float64
	Lon         float64
	Urgency     string
	Photo       sql.NullString
	CreatedAt   string
	Status      string
	Feedback    sql.NullString
	FeedbackAt  sql.NullString
	FeedbackBy  sql.NullString
	UserID      sql.NullInt64
}

// ToComplaint ComplaintResult'ı model.Complaint'e çevirir
func (cr *ComplaintResult) ToComplaint() *model.Complaint {
	complaint := &model.Complaint{
		ID:          cr.ID,
		Category:    cr.Category,
		Description: cr.Description,
		Lat:         cr.Lat,
		Lon:         cr.Lon,
		Urgency:     cr.Urgency,
		CreatedAt:   cr.CreatedAt,
		Status:      cr.Status,
	}
	if cr.Photo.Valid {
		complaint.Photo = &cr.Photo.String
	}
	if cr.Feedback.Valid {
		complaint.Feedback = &cr.Feedback.String
	}
	if cr.FeedbackAt.Valid {
		complaint.FeedbackAt = &cr.FeedbackAt.String
	}
	if cr.FeedbackBy.Valid {
		complaint.FeedbackBy = &cr.FeedbackBy.String
	}
	if cr.UserID.Valid {
		userID := int(cr.UserID.Int64)
		complaint.UserID = &userID
	}
	complaint.Normalize()
	return complaint
}

func (r *PostgresComplaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	query := `INSERT INTO complaints (category, description, lat, lon, urgency, photo, created_at, status, feedback, feedback_at, feedback_by, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`

	err := r.client.DB.QueryRowContext(ctx, query,
		complaint.Category, complaint.Description, complaint.Lat, complaint.Lon,
		complaint.Urgency, complaint.Photo, complaint.CreatedAt, complaint.Status,
		complaint.Feedback, complaint.FeedbackAt, complaint.FeedbackBy, complaint.UserID,
	).Scan(&complaint.ID)
	if err != nil {
		return fmt.Errorf("şikayet kaydedilemedi: %w", err)
	}

	return nil
}

func (r *PostgresComplaintRepository) GetByID(ctx context.Context, id int) (*model.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE id = $1`

	row := r.client.DB.QueryRowContext(ctx, query, id)

	var result ComplaintResult
	err := row.Scan(&result.ID, &result.Category, &result.Description, &result.Lat, &result.Lon,
		&result.Urgency, &result.Photo, &result.CreatedAt, &result.Status,
		&result.Feedback, &result.FeedbackAt, &result.FeedbackBy, &result.UserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrComplaintNotFound
		}
		return nil, fmt.Errorf("şikayet verisi alınamadı: %w", err)
	}

	return result.ToComplaint(), nil
}

func (r *PostgresComplaintRepository) GetAll(ctx context.Context) ([]model.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints ORDER BY id`

	rows, err := r.client.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("şikayet listesi alınamadı: %w", err)
	}
	defer rows.Close()

	complaints := make([]model.Complaint, 0)
	for rows.Next() {
		var result ComplaintResult
		err := rows.Scan(&result.ID, &result.Category, &result.Description, &result.Lat, &result.Lon,
			&result.Urgency, &result.Photo, &result.CreatedAt, &result.Status,
			&result.Feedback, &result.FeedbackAt, &result.FeedbackBy, &result.UserID)
		if err != nil {
			return nil, fmt.Errorf("şikayet satırı taranamadı: %w", err)
		}
		complaints = append(complaints, *result.ToComplaint())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("şikayet satırları okunurken hata: %w", err)
	}

	return complaints, nil
}

func (r *PostgresComplaintRepository) GetByUserID(ctx context.Context, userID int) ([]model.Complaint, error) {
	query := `SELECT ` + complaintColumns + ` FROM complaints WHERE user_id = $1 ORDER BY id`

	rows, err := r.client.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("kullanıcı %d için şikayetler alınamadı: %w", userID, err)
	}
	defer rows.Close()

	complaints := make([]model.Complaint, 0)
	for rows.Next() {
		var result ComplaintResult
		err := rows.Scan(&result.ID, &result.Category, &result.Description, &result.Lat, &result.Lon,
			&result.Urgency, &result.Photo, &result.CreatedAt, &result.Status,
			&result.Feedback, &result.FeedbackAt, &result.FeedbackBy, &result.UserID)
		if err != nil {
			return nil, fmt.Errorf("şikayet satırı taranamadı: %w", err)
		}
		complaints = append(complaints, *result.ToComplaint())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("şikayet satırları okunurken hata: %w", err)
	}

	return complaints, nil
}

func (r *PostgresComplaintRepository) Update(ctx context.Context, complaint *model.Complaint) error {
	query := `UPDATE complaints
		SET category = $1, description = $2, lat = $3, lon = $4, urgency = $5, photo = $6,
			created_at = $7, status = $8, feedback = $9, feedback_at = $10, feedback_by = $11, user_id = $12
		WHERE id = $13`

	res, err := r.client.DB.ExecContext(ctx, query,
		complaint.Category, complaint.Description, complaint.Lat, complaint.Lon,
		complaint.Urgency, complaint.Photo, complaint.CreatedAt, complaint.Status,
		complaint.Feedback, complaint.FeedbackAt, complaint.FeedbackBy, complaint.UserID,
		complaint.ID)
	if err != nil {
		return fmt.Errorf("şikayet güncellenemedi: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("güncelleme sonucu okunamadı: %w", err)
	}
	if affected == 0 {
		return model.ErrComplaintNotFound
	}

	return nil
}
