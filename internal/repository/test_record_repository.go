package repository

import (
	"github.com/svernekar/examportal/internal/model"
	"gorm.io/gorm"
)

type TestRecordRepository interface {
	Create(record *model.TestRecord) error
	FindByID(id uint) (*model.TestRecord, error)
	Update(record *model.TestRecord) error
}

type testRecordRepository struct {
	db *gorm.DB
}

func NewTestRecordRepository(db *gorm.DB) TestRecordRepository {
	return &testRecordRepository{db: db}
}

func (r *testRecordRepository) Create(record *model.TestRecord) error {
	return r.db.Create(record).Error
}

func (r *testRecordRepository) FindByID(id uint) (*model.TestRecord, error) {
	var record model.TestRecord
	if err := r.db.First(&record, "record_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *testRecordRepository) Update(record *model.TestRecord) error {
	return r.db.Save(record).Error
}
