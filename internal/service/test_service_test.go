package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/svernekar/examportal/internal/dto"
	"github.com/svernekar/examportal/internal/model"
	"github.com/svernekar/examportal/internal/repository"
	"gorm.io/gorm"
)

type testFixture struct {
	db          *gorm.DB
	questions   QuestionService
	tests       TestService
	questionIDs []uint
}

// seedQuestions creates n IT / Cloud Computing questions and returns a
// fixture wired with the real repositories.
func seedQuestions(t *testing.T, n int) *testFixture {
	t.Helper()
	db := newTestDB(t)

	questionRepo := repository.NewQuestionRepository(db)
	f := &testFixture{
		db:        db,
		questions: NewQuestionService(questionRepo),
		tests:     NewTestService(repository.NewTestRepository(db), questionRepo),
	}

	for i := 0; i < n; i++ {
		resp, err := f.questions.CreateQuestion(dto.CreateQuestionRequest{
			Department:    "IT",
			Subject:       "Cloud Computing",
			QuestionText:  fmt.Sprintf("What does layer %d do?", i+1),
			Option1:       "a",
			Option2:       "b",
			Option3:       "c",
			Option4:       "d",
			CorrectOption: "a",
			CreatedByID:   "F100",
		})
		require.NoError(t, err)
		f.questionIDs = append(f.questionIDs, resp.QuestionID)
	}
	return f
}

func TestListQuestionsExactMatch(t *testing.T) {
	f := seedQuestions(t, 3)

	questions, err := f.questions.ListQuestions("IT", "Cloud Computing")
	require.NoError(t, err)
	assert.Len(t, questions, 3)

	// No match is an empty result, not an error.
	questions, err = f.questions.ListQuestions("IT", "Networking")
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestCreateTestLinksExactlyTheGivenQuestions(t *testing.T) {
	f := seedQuestions(t, 3)

	testID, err := f.tests.CreateTest(dto.CreateTestRequest{
		Department:  "IT",
		CourseName:  "Cloud Computing",
		Duration:    30,
		CreatedByID: "F100",
		Questions:   f.questionIDs,
	})
	require.NoError(t, err)
	require.NotZero(t, testID)

	var linkCount int64
	require.NoError(t, f.db.Model(&model.TestQuestion{}).Where("test_id = ?", testID).Count(&linkCount).Error)
	assert.EqualValues(t, 3, linkCount)

	questions, err := f.tests.GetTestQuestions(testID)
	require.NoError(t, err)
	require.Len(t, questions, 3)

	got := make(map[uint]bool)
	for _, q := range questions {
		got[q.QuestionID] = true
	}
	for _, id := range f.questionIDs {
		assert.True(t, got[id], "question %d missing from test", id)
	}
}

func TestCreateTestUnknownQuestionRollsBackEverything(t *testing.T) {
	f := seedQuestions(t, 2)

	_, err := f.tests.CreateTest(dto.CreateTestRequest{
		Department:  "IT",
		CourseName:  "Cloud Computing",
		Duration:    30,
		CreatedByID: "F100",
		Questions:   append(f.questionIDs, 9999),
	})
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	var testCount, linkCount int64
	require.NoError(t, f.db.Model(&model.Test{}).Count(&testCount).Error)
	require.NoError(t, f.db.Model(&model.TestQuestion{}).Count(&linkCount).Error)
	assert.Zero(t, testCount, "no partial test row may survive")
	assert.Zero(t, linkCount, "no partial join rows may survive")
}

func TestTestLookups(t *testing.T) {
	f := seedQuestions(t, 2)

	testID, err := f.tests.CreateTest(dto.CreateTestRequest{
		Department:  "IT",
		CourseName:  "Cloud Computing",
		Duration:    45,
		CreatedByID: "F100",
		Questions:   f.questionIDs,
	})
	require.NoError(t, err)

	byCreator, err := f.tests.GetTestsByCreator("F100")
	require.NoError(t, err)
	assert.Len(t, byCreator, 1)

	byDept, err := f.tests.GetTestsByDepartment("IT")
	require.NoError(t, err)
	assert.Len(t, byDept, 1)
	assert.Equal(t, "Cloud Computing", byDept[0].CourseName)

	details, err := f.tests.GetTestDetails(testID)
	require.NoError(t, err)
	assert.Equal(t, 45, details.Duration)

	_, err = f.tests.GetTestDetails(9999)
	assert.ErrorIs(t, err, ErrTestNotFound)

	summaries, err := f.tests.ListAvailableTests("IT")
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, testID, summaries[0].TestID)
	assert.Equal(t, 45, summaries[0].Duration)
}

func TestGetTestDurationNotFoundNeverDefaults(t *testing.T) {
	f := seedQuestions(t, 1)

	testID, err := f.tests.CreateTest(dto.CreateTestRequest{
		Department:  "IT",
		CourseName:  "Cloud Computing",
		Duration:    30,
		CreatedByID: "F100",
		Questions:   f.questionIDs,
	})
	require.NoError(t, err)

	duration, err := f.tests.GetTestDuration(testID, "IT")
	require.NoError(t, err)
	assert.Equal(t, 30, duration)

	// Right test, wrong department: still not found.
	_, err = f.tests.GetTestDuration(testID, "Mechanical")
	assert.ErrorIs(t, err, ErrTestNotFound)

	_, err = f.tests.GetTestDuration(9999, "IT")
	assert.ErrorIs(t, err, ErrTestNotFound)
}

func TestStudentQuestionsFilteredByDepartment(t *testing.T) {
	f := seedQuestions(t, 2)

	// A question from another department linked into the same test must be
	// filtered out on the student path but visible on the review path.
	foreign, err := f.questions.CreateQuestion(dto.CreateQuestionRequest{
		Department:    "Mechanical",
		Subject:       "Cloud Computing",
		QuestionText:  "Out-of-department question",
		Option1:       "a",
		Option2:       "b",
		Option3:       "c",
		Option4:       "d",
		CorrectOption: "b",
		CreatedByID:   "F100",
	})
	require.NoError(t, err)

	testID, err := f.tests.CreateTest(dto.CreateTestRequest{
		Department:  "IT",
		CourseName:  "Cloud Computing",
		Duration:    30,
		CreatedByID: "F100",
		Questions:   append(f.questionIDs, foreign.QuestionID),
	})
	require.NoError(t, err)

	all, err := f.tests.GetTestQuestions(testID)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	student, err := f.tests.GetTestQuestionsForStudent(testID, "IT")
	require.NoError(t, err)
	assert.Len(t, student, 2)
}
