package repository

import (
	"github.com/svernekar/examportal/internal/model"
	"gorm.io/gorm"
)

type TestRepository interface {
	CreateWithQuestions(test *model.Test, questionIDs []uint) error
	FindByID(id uint) (*model.Test, error)
	FindByCreator(createdByID string) ([]model.Test, error)
	FindByDepartment(department string) ([]model.Test, error)
	FindByIDAndDepartment(id uint, department string) (*model.Test, error)
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

// CreateWithQuestions inserts the test row and one join row per question id
// in a single transaction, so a failure on any join row rolls everything back.
func (r *testRepository) CreateWithQuestions(test *model.Test, questionIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(test).Error; err != nil {
			return err
		}
		links := make([]model.TestQuestion, 0, len(questionIDs))
		for _, qid := range questionIDs {
			links = append(links, model.TestQuestion{
				TestID:     test.TestID,
				QuestionID: qid,
				Subject:    test.CourseName,
			})
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}
		return nil
	})
}

func (r *testRepository) FindByID(id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.First(&test, "test_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByCreator(createdByID string) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.
		Where("created_by_id = ?", createdByID).
		Order("created_at desc").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *testRepository) FindByDepartment(department string) ([]model.Test, error) {
	var tests []model.Test
	err := r.db.
		Where("department = ?", department).
		Order("created_at desc").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}
	return tests, nil
}

func (r *testRepository) FindByIDAndDepartment(id uint, department string) (*model.Test, error) {
	var test model.Test
	err := r.db.
		Where("test_id = ? AND department = ?", id, department).
		First(&test).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}
