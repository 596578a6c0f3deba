package storage

import (
	"database/sql"
	"errors"

	"PortfolioSite/internal/models"
)

// GetProfile loads the first profile with its stats, education, skills and
// projects. Children are ordered by their order field; projects put
// featured entries first.
func GetProfile() (models.Profile, error) {
	var p models.Profile
	var createdAt, updatedAt string

	row := db.QueryRow(`
		SELECT id, name, role, subtitle, summary, email, github, linkedin, avatar, created_at, updated_at
		FROM profiles
		ORDER BY id ASC
		LIMIT 1`)
	if err := row.Scan(&p.ID, &p.Name, &p.Role, &p.Subtitle, &p.Summary, &p.Email, &p.Github, &p.Linkedin, &p.Avatar, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, ErrNotFound
		}
		return p, err
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)

	var err error
	if p.Stats, err = getStats(p.ID); err != nil {
		return p, err
	}
	if p.Education, err = getEducation(p.ID); err != nil {
		return p, err
	}
	if p.Skills, err = getSkills(p.ID); err != nil {
		return p, err
	}
	if p.Projects, err = getProjects(p.ID); err != nil {
		return p, err
	}
	return p, nil
}

// SaveProfile replaces the stored profile document with p. The first
// profile row is updated in place so its id stays stable; children sent
// back with their ids keep them, and projects keep their created_at.
func SaveProfile(p models.Profile) (models.Profile, error) {
	tx, err := db.Begin()
	if err != nil {
		return p, err
	}
	defer tx.Rollback()

	ts := now()
	var id int64
	err = tx.QueryRow("SELECT id FROM profiles ORDER BY id ASC LIMIT 1").Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := tx.Exec(`
			INSERT INTO profiles(name, role, subtitle, summary, email, github, linkedin, avatar, created_at, updated_at)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Name, p.Role, p.Subtitle, p.Summary, p.Email, p.Github, p.Linkedin, p.Avatar, ts, ts)
		if err != nil {
			return p, err
		}
		if id, err = res.LastInsertId(); err != nil {
			return p, err
		}
	case err != nil:
		return p, err
	default:
		if _, err := tx.Exec(`
			UPDATE profiles
			SET name = ?, role = ?, subtitle = ?, summary = ?, email = ?, github = ?, linkedin = ?, avatar = ?, updated_at = ?
			WHERE id = ?`,
			p.Name, p.Role, p.Subtitle, p.Summary, p.Email, p.Github, p.Linkedin, p.Avatar, ts, id); err != nil {
			return p, err
		}
	}

	for _, table := range []string{"stats", "education", "skill_categories", "projects"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE profile_id = ?", id); err != nil {
			return p, err
		}
	}

	for _, s := range p.Stats {
		if _, err := tx.Exec("INSERT INTO stats(id, profile_id, value, label, sort_order) VALUES(NULLIF(?, 0), ?, ?, ?, ?)",
			s.ID, id, s.Value, s.Label, s.Order); err != nil {
			return p, err
		}
	}
	for _, e := range p.Education {
		if _, err := tx.Exec(`
			INSERT INTO education(id, profile_id, degree, institution, year, gpa, details, sort_order)
			VALUES(NULLIF(?, 0), ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, id, e.Degree, e.Institution, e.Year, e.GPA, e.Details, e.Order); err != nil {
			return p, err
		}
	}
	for _, s := range p.Skills {
		if _, err := tx.Exec("INSERT INTO skill_categories(id, profile_id, name, description, photo, sort_order) VALUES(NULLIF(?, 0), ?, ?, ?, ?, ?)",
			s.ID, id, s.Name, s.Description, s.Photo, s.Order); err != nil {
			return p, err
		}
	}
	for _, pr := range p.Projects {
		// created_at은 최초 저장 시각 유지, 새 항목만 현재 시각
		createdAt := ts
		if !pr.CreatedAt.IsZero() {
			createdAt = pr.CreatedAt.UTC().Format(timeLayout)
		}
		if _, err := tx.Exec(`
			INSERT INTO projects(id, profile_id, title, description, technologies, github_url, live_url, image_url, sort_order, is_featured, created_at)
			VALUES(NULLIF(?, 0), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			pr.ID, id, pr.Title, pr.Description, pr.Technologies, pr.GithubURL, pr.LiveURL, pr.ImageURL, pr.Order, boolToInt(pr.IsFeatured), createdAt); err != nil {
			return p, err
		}
	}

	if err := tx.Commit(); err != nil {
		return p, err
	}
	return GetProfile()
}

func getStats(profileID int64) ([]models.Stat, error) {
	rows, err := db.Query("SELECT id, value, label, sort_order FROM stats WHERE profile_id = ? ORDER BY sort_order, id", profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []models.Stat{}
	for rows.Next() {
		var s models.Stat
		if err := rows.Scan(&s.ID, &s.Value, &s.Label, &s.Order); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func getEducation(profileID int64) ([]models.Education, error) {
	rows, err := db.Query(`
		SELECT id, degree, institution, year, gpa, details, sort_order
		FROM education
		WHERE profile_id = ?
		ORDER BY sort_order, id`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.Education{}
	for rows.Next() {
		var e models.Education
		if err := rows.Scan(&e.ID, &e.Degree, &e.Institution, &e.Year, &e.GPA, &e.Details, &e.Order); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func getSkills(profileID int64) ([]models.SkillCategory, error) {
	rows, err := db.Query(`
		SELECT id, name, description, photo, sort_order
		FROM skill_categories
		WHERE profile_id = ?
		ORDER BY sort_order, id`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []models.SkillCategory{}
	for rows.Next() {
		var s models.SkillCategory
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Photo, &s.Order); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func getProjects(profileID int64) ([]models.Project, error) {
	rows, err := db.Query(`
		SELECT id, title, description, technologies, github_url, live_url, image_url, sort_order, is_featured, created_at
		FROM projects
		WHERE profile_id = ?
		ORDER BY is_featured DESC, sort_order, id`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var pr models.Project
		var createdAt string
		if err := rows.Scan(&pr.ID, &pr.Title, &pr.Description, &pr.Technologies, &pr.GithubURL, &pr.LiveURL, &pr.ImageURL, &pr.Order, &pr.IsFeatured, &createdAt); err != nil {
			return nil, err
		}
		pr.CreatedAt = parseTime(createdAt)
		projects = append(projects, pr)
	}
	return projects, rows.Err()
}
