package applications

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Sahil9505/JobFinder/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) Create(ctx context.Context, a models.Application) error {
	skills, _ := json.Marshal(a.Skills)
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO applications (
			id, user_id, job_id, full_name, email, phone, college, degree,
			current_year, skills, message, resume_url, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, a.ID, a.UserID, a.JobID, a.FullName, a.Email, a.Phone, a.College,
		a.Degree, a.CurrentYear, string(skills), a.Message, a.ResumeURL, a.Status)
	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}
	return nil
}

// GetByUserAndJob returns the latest application a user made for a job,
// regardless of status.
func (r *Repo) GetByUserAndJob(ctx context.Context, userID, jobID string) (*models.Application, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, job_id, full_name, email, status, applied_at
		FROM applications
		WHERE user_id = ? AND job_id = ?
		ORDER BY applied_at DESC
		LIMIT 1
	`, userID, jobID)

	var a models.Application
	if err := row.Scan(&a.ID, &a.UserID, &a.JobID, &a.FullName, &a.Email, &a.Status, &a.AppliedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &a, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, user_id, job_id, full_name, email, status, applied_at
		FROM applications
		WHERE id = ?
	`, id)

	var a models.Application
	if err := row.Scan(&a.ID, &a.UserID, &a.JobID, &a.FullName, &a.Email, &a.Status, &a.AppliedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &a, nil
}

// Reapply flips a previously cancelled application back to Applied with
// fresh form data, reusing the row instead of inserting a duplicate.
func (r *Repo) Reapply(ctx context.Context, a models.Application) error {
	skills, _ := json.Marshal(a.Skills)
	res, err := r.DB.ExecContext(ctx, `
		UPDATE applications
		SET full_name = ?, email = ?, phone = ?, college = ?, degree = ?,
		    current_year = ?, skills = ?, message = ?,
		    resume_url = COALESCE(NULLIF(?, ''), resume_url),
		    status = 'Applied', applied_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status = 'Cancelled'
	`, a.FullName, a.Email, a.Phone, a.College, a.Degree, a.CurrentYear,
		string(skills), a.Message, a.ResumeURL, a.ID)
	if err != nil {
		return fmt.Errorf("reapply: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("reapply: application not cancelled")
	}
	return nil
}

func (r *Repo) Cancel(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE applications
		SET status = 'Cancelled'
		WHERE id = ? AND status = 'Applied'
	`, id)
	if err != nil {
		return fmt.Errorf("cancel application: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("cancel application: not active")
	}
	return nil
}

// ListByUser returns a user's applications with the job summary joined
// in, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]models.Application, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT a.id, a.user_id, a.job_id, a.full_name, a.email,
		       COALESCE(a.phone, ''), COALESCE(a.college, ''), COALESCE(a.degree, ''),
		       COALESCE(a.current_year, ''), a.skills, COALESCE(a.message, ''),
		       COALESCE(a.resume_url, ''), a.status, a.applied_at,
		       j.title, j.company, j.location, j.type
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.user_id = ?
		ORDER BY a.applied_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var out []models.Application
	for rows.Next() {
		var (
			a      models.Application
			skills string
		)
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.JobID, &a.FullName, &a.Email, &a.Phone,
			&a.College, &a.Degree, &a.CurrentYear, &skills, &a.Message,
			&a.ResumeURL, &a.Status, &a.AppliedAt,
			&a.JobTitle, &a.JobCompany, &a.JobLocation, &a.JobTypeName,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		_ = json.Unmarshal([]byte(skills), &a.Skills)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}
