package repository

import (
	"github.com/svernekar/examportal/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByDepartmentAndSubject(department, subject string) ([]model.Question, error)
	FindByIDs(ids []uint) ([]model.Question, error)
	FindByTestID(testID uint) ([]model.Question, error)
	FindByTestIDAndDepartment(testID uint, department string) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByDepartmentAndSubject(department, subject string) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Where("department = ? AND subject = ?", department, subject).
		Order("created_at desc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("question_id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByTestID(testID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Joins("JOIN test_questions tq ON tq.question_id = questions.question_id").
		Where("tq.test_id = ?", testID).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByTestIDAndDepartment(testID uint, department string) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Joins("JOIN test_questions tq ON tq.question_id = questions.question_id").
		Where("tq.test_id = ? AND questions.department = ?", testID, department).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
