package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"skillshub/backend/config"
	"skillshub/backend/models"
)

// EnrollmentRow is the relational shape of an enrollment record. Seq keeps
// insertion order; the unique index on (user_id, course_id) restores the
// one-enrollment-per-pair invariant at the database level, so even
// concurrent writers cannot produce duplicates.
type EnrollmentRow struct {
	Seq             uint   `gorm:"primaryKey;autoIncrement"`
	RecordID        string `gorm:"uniqueIndex"`
	UserID          string `gorm:"uniqueIndex:idx_user_course"`
	CourseID        int    `gorm:"uniqueIndex:idx_user_course"`
	EnrolledAt      string
	Progress        int
	CompletedVideos string // JSON-encoded list of video ids
	LastAccessed    string
}

type UserRow struct {
	Seq             uint   `gorm:"primaryKey;autoIncrement"`
	UserID          string `gorm:"uniqueIndex"`
	FullName        string
	Email           string `gorm:"uniqueIndex"`
	PasswordHash    string
	CreatedAt       string
	EnrolledCourses string
}

type FeedbackRow struct {
	Seq       uint `gorm:"primaryKey;autoIncrement"`
	Name      string
	Email     string
	Course    string
	Rating    int
	Feedback  string
	Timestamp string
}

// InitDB opens the PostgreSQL connection and runs migrations.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: connect postgres: %v", ErrStorage, err)
	}

	if err := db.AutoMigrate(&EnrollmentRow{}, &UserRow{}, &FeedbackRow{}); err != nil {
		return nil, fmt.Errorf("%w: migrate: %v", ErrStorage, err)
	}
	return db, nil
}

// GormStore is the relational Record Store backend.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ReadAll() ([]models.EnrollmentRecord, error) {
	var rows []EnrollmentRow
	if err := s.db.Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: read enrollments: %v", ErrStorage, err)
	}

	records := make([]models.EnrollmentRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteAll replaces the whole table in one transaction, matching the
// replace-the-set contract of the file backend.
func (s *GormStore) WriteAll(records []models.EnrollmentRecord) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&EnrollmentRow{}).Error; err != nil {
			return err
		}
		for _, rec := range records {
			row, err := rowFromRecord(rec)
			if err != nil {
				return err
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: write enrollments: %v", ErrStorage, err)
	}
	return nil
}

func (s *GormStore) AllUsers() ([]models.User, error) {
	var rows []UserRow
	if err := s.db.Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: read users: %v", ErrStorage, err)
	}

	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toUser())
	}
	return users, nil
}

func (s *GormStore) AppendUser(user models.User) error {
	row := rowFromUser(user)
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("%w: create user: %v", ErrStorage, err)
	}
	return nil
}

func (s *GormStore) AllFeedback() ([]models.Feedback, error) {
	var rows []FeedbackRow
	if err := s.db.Order("seq").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: read feedback: %v", ErrStorage, err)
	}

	entries := make([]models.Feedback, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toFeedback())
	}
	return entries, nil
}

func (s *GormStore) AppendFeedback(entry models.Feedback) error {
	row := FeedbackRow{
		Name:      entry.Name,
		Email:     entry.Email,
		Course:    entry.Course,
		Rating:    entry.Rating,
		Feedback:  entry.Feedback,
		Timestamp: entry.Timestamp.Format(timeLayout),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("%w: create feedback: %v", ErrStorage, err)
	}
	return nil
}
