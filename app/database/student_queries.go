package database

import (
	"database/sql"

	"yano-school/app/models"
)

// GetActiveStudents returns every active, non-deleted student.
func GetActiveStudents(db *sql.DB) ([]*models.Student, error) {
	query := `SELECT id, student_no, first_name, last_name, COALESCE(gender, ''), class_level,
			  is_active, created_at, updated_at
			  FROM students
			  WHERE is_active = true AND deleted_at IS NULL
			  ORDER BY class_level, first_name, last_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		s := &models.Student{}
		err := rows.Scan(&s.ID, &s.StudentNo, &s.FirstName, &s.LastName, &s.Gender,
			&s.ClassLevel, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			continue
		}
		students = append(students, s)
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

// GetStudentByID returns one student or NotFoundError.
func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT id, student_no, first_name, last_name, COALESCE(gender, ''), class_level,
			  is_active, created_at, updated_at
			  FROM students
			  WHERE id = $1 AND deleted_at IS NULL`

	s := &models.Student{}
	err := db.QueryRow(query, id).Scan(&s.ID, &s.StudentNo, &s.FirstName, &s.LastName,
		&s.Gender, &s.ClassLevel, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Resource: "student", Key: id}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateStudent inserts a new student.
func CreateStudent(db *sql.DB, s *models.Student) error {
	query := `INSERT INTO students (student_no, first_name, last_name, gender, class_level, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, NULLIF($4, ''), $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, s.StudentNo, s.FirstName, s.LastName, string(s.Gender), s.ClassLevel).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

// UpdateStudent updates mutable roster fields.
func UpdateStudent(db *sql.DB, s *models.Student) error {
	query := `UPDATE students
			  SET first_name = $1, last_name = $2, gender = NULLIF($3, ''), class_level = $4,
			      is_active = $5, updated_at = NOW()
			  WHERE id = $6 AND deleted_at IS NULL`

	result, err := db.Exec(query, s.FirstName, s.LastName, string(s.Gender), s.ClassLevel, s.IsActive, s.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &models.NotFoundError{Resource: "student", Key: s.ID}
	}
	return nil
}
