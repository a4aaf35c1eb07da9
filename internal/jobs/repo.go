package jobs

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

const jobColumns = `
	id, title, company, location, city, country, type, job_type, apply_type,
	apply_url, platform, is_verified, description, salary, stipend,
	skills, responsibilities, perks, eligibility, about_company, created_at
`

func (r *Repo) Create(ctx context.Context, j models.Job) error {
	skills, _ := json.Marshal(emptyIfNil(j.Skills))
	responsibilities, _ := json.Marshal(emptyIfNil(j.Responsibilities))
	perks, _ := json.Marshal(emptyIfNil(j.Perks))

	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO jobs (
			id, title, company, location, city, country, type, job_type, apply_type,
			apply_url, platform, is_verified, description, salary, stipend,
			skills, responsibilities, perks, eligibility, about_company
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		j.ID, j.Title, j.Company, j.Location, nullable(j.City), orIndia(j.Country),
		j.Type, orDefault(j.JobType, models.SourceInternal), orDefault(j.ApplyType, "internal"),
		nullable(j.ApplyURL), nullable(j.Platform), j.IsVerified, j.Description,
		nullable(j.Salary), nullable(j.Stipend),
		string(skills), string(responsibilities), string(perks),
		nullable(j.Eligibility), nullable(j.AboutCompany),
	)
	if err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	return nil
}

// ListAll returns every job, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]models.Job, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var out []models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE id = ?
	`, id)

	j, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &j, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete job: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(row rowScanner) (models.Job, error) {
	var (
		j                models.Job
		city             sql.NullString
		applyURL         sql.NullString
		platform         sql.NullString
		salary           sql.NullString
		stipend          sql.NullString
		eligibility      sql.NullString
		aboutCompany     sql.NullString
		skills           string
		responsibilities string
		perks            string
	)

	if err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &city, &j.Country, &j.Type,
		&j.JobType, &j.ApplyType, &applyURL, &platform, &j.IsVerified,
		&j.Description, &salary, &stipend, &skills, &responsibilities, &perks,
		&eligibility, &aboutCompany, &j.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return models.Job{}, err
		}
		return models.Job{}, fmt.Errorf("scan job: %w", err)
	}

	j.City = city.String
	j.ApplyURL = applyURL.String
	j.Platform = platform.String
	j.Salary = salary.String
	j.Stipend = stipend.String
	j.Eligibility = eligibility.String
	j.AboutCompany = aboutCompany.String

	_ = json.Unmarshal([]byte(skills), &j.Skills)
	_ = json.Unmarshal([]byte(responsibilities), &j.Responsibilities)
	_ = json.Unmarshal([]byte(perks), &j.Perks)

	return j, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orIndia(country string) string {
	return orDefault(country, "India")
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
