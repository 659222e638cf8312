package services

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/saokiritoni/HomePage-BE/dto"
	"github.com/saokiritoni/HomePage-BE/models"
	"github.com/saokiritoni/HomePage-BE/repositories"
	"github.com/saokiritoni/HomePage-BE/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
type applyServiceMocks struct {
	Tx       *mock_repositories.MockTxRepo
	Apply    *mock_repositories.MockApplyRepo
	Question *mock_repositories.MockQuestionRepo
	Answer   *mock_repositories.MockAnswerRepo
}

func setupApplyServiceMocks(t *testing.T) (*ApplyService, applyServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	m := applyServiceMocks{
		Tx:       mock_repositories.NewMockTxRepo(ctrl),
		Apply:    mock_repositories.NewMockApplyRepo(ctrl),
		Question: mock_repositories.NewMockQuestionRepo(ctrl),
		Answer:   mock_repositories.NewMockAnswerRepo(ctrl),
	}
	repos := &repositories.Repos{
		Tx:       m.Tx,
		Apply:    m.Apply,
		Question: m.Question,
		Answer:   m.Answer,
	}
	svc := NewApplyService(repos)
	return svc, m
}

// passthroughTx makes the mocked transaction simply run the callback.
func passthroughTx(m applyServiceMocks) {
	m.Tx.EXPECT().Transaction(gomock.Any()).DoAndReturn(func(fn func(*gorm.DB) error) error {
		return fn(nil)
	})
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hashed)
}

// --------------------- GetQuestions ---------------------
func TestGetQuestions_OrderedWithChoices(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	m.Question.EXPECT().ListOrdered().Return([]models.Question{
		{QuestionID: 1, Track: models.TrackGachon, Priority: 1, Content: "Why do you want to join?"},
		{QuestionID: 2, Track: models.TrackBackend, Priority: 1, Content: "Pick your stack", Choices: []models.Choice{
			{ChoiceID: 10, QuestionID: 2, Label: "Go"},
			{ChoiceID: 11, QuestionID: 2, Label: "Java"},
		}},
	}, nil)

	out, err := svc.GetQuestions()
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.False(t, out[0].IsChoice)
	assert.True(t, out[1].IsChoice)
	assert.Len(t, out[1].Choices, 2)
}

// --------------------- CreateApply ---------------------
func TestCreateApply_Success(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	m.Apply.EXPECT().FindAllByStudentNumber("202012345").Return(nil, nil)
	passthroughTx(m)
	m.Apply.EXPECT().Create(gomock.Nil(), gomock.Any()).DoAndReturn(func(_ *gorm.DB, apply *models.Apply) error {
		assert.Equal(t, "202012345", apply.StudentNumber)
		assert.Equal(t, models.ApplyStatusDraft, apply.Status)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(apply.Password), []byte("secret")))
		apply.ApplyID = 7
		return nil
	})

	resp, err := svc.CreateApply(dto.CreateApplyRequest{StudentNumber: "202012345", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), resp.ApplyID)
}

func TestCreateApply_SameCredentialRejected(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	existing := models.Apply{ApplyID: 1, StudentNumber: "202012345", Password: hashOf(t, "secret")}
	m.Apply.EXPECT().FindAllByStudentNumber("202012345").Return([]models.Apply{existing}, nil)

	_, err := svc.CreateApply(dto.CreateApplyRequest{StudentNumber: "202012345", Password: "secret"})
	assert.ErrorIs(t, err, ErrApplyAlreadyExist)
}

func TestCreateApply_SameStudentNumberDifferentPassword(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	existing := models.Apply{ApplyID: 1, StudentNumber: "202012345", Password: hashOf(t, "other")}
	m.Apply.EXPECT().FindAllByStudentNumber("202012345").Return([]models.Apply{existing}, nil)
	passthroughTx(m)
	m.Apply.EXPECT().Create(gomock.Nil(), gomock.Any()).DoAndReturn(func(_ *gorm.DB, apply *models.Apply) error {
		apply.ApplyID = 2
		return nil
	})

	resp, err := svc.CreateApply(dto.CreateApplyRequest{StudentNumber: "202012345", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), resp.ApplyID)
}

func TestCreateApply_LookupFails(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	m.Apply.EXPECT().FindAllByStudentNumber("202012345").Return(nil, errors.New("db down"))

	_, err := svc.CreateApply(dto.CreateApplyRequest{StudentNumber: "202012345", Password: "secret"})
	assert.EqualError(t, err, "db down")
}

// --------------------- SaveApply: first save ---------------------
func TestSaveApply_FirstSaveCreatesAnswers(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	passthroughTx(m)
	m.Apply.EXPECT().FindByID(gomock.Nil(), uint(7)).Return(models.Apply{
		ApplyID: 7, StudentNumber: "202012345", Status: models.ApplyStatusDraft,
	}, nil)
	m.Apply.EXPECT().SubmittedExists(gomock.Nil(), "202012345").Return(false, nil)

	m.Question.EXPECT().FindByID(gomock.Nil(), uint(1)).Return(models.Question{QuestionID: 1}, nil)
	m.Answer.EXPECT().Create(gomock.Nil(), gomock.Any()).DoAndReturn(func(_ *gorm.DB, answer *models.Answer) error {
		assert.Equal(t, uint(7), answer.ApplyID)
		assert.Equal(t, "I farm", *answer.Content)
		answer.AnswerID = 100
		return nil
	})

	m.Question.EXPECT().FindByID(gomock.Nil(), uint(2)).Return(models.Question{QuestionID: 2}, nil)
	m.Answer.EXPECT().Create(gomock.Nil(), gomock.Any()).DoAndReturn(func(_ *gorm.DB, answer *models.Answer) error {
		answer.AnswerID = 101
		return nil
	})
	m.Question.EXPECT().FindChoiceByID(gomock.Nil(), uint(10)).Return(models.Choice{ChoiceID: 10, QuestionID: 2}, nil)
	m.Answer.EXPECT().CreateChoice(gomock.Nil(), &models.AnswerChoice{AnswerID: 101, ChoiceID: 10}).Return(nil)

	m.Apply.EXPECT().Save(gomock.Nil(), gomock.Any()).DoAndReturn(func(_ *gorm.DB, apply *models.Apply) error {
		assert.Equal(t, models.ApplyStatusSaved, apply.Status)
		assert.Equal(t, "Kim", *apply.Name)
		return nil
	})

	resp, err := svc.SaveApply(dto.SaveApplyRequest{
		ApplyID: 7,
		Name:    ptrString("Kim"),
		Answers: []dto.AnswerDTO{
			{QuestionID: 1, Content: ptrString("I farm")},
			{QuestionID: 2, ChoiceID: []uint{10}},
		},
	}, false)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), resp.ApplyID)
}

func TestSaveApply_NotFound(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	passthroughTx(m)
	m.Apply.EXPECT().FindByID(gomock.Nil(), uint(99)).Return(models.Apply{}, gorm.ErrRecordNotFound)

	_, err := svc.SaveApply(dto.SaveApplyRequest{ApplyID: 99}, false)
	assert.ErrorIs(t, err, ErrApplyNotFound)
}

func TestSaveApply_AlreadySubmitted(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	passthroughTx(m)
	m.Apply.EXPECT().FindByID(gomock.Nil(), uint(7)).Return(models.Apply{
		ApplyID: 7, StudentNumber: "202012345", Status: models.ApplyStatusSaved,
	}, nil)
	m.Apply.EXPECT().SubmittedExists(gomock.Nil(), "202012345").Return(true, nil)

	_, err := svc.SaveApply(dto.SaveApplyRequest{ApplyID: 7}, false)
	assert.ErrorIs(t, err, ErrApplyAlreadySubmitted)
}

func TestSaveApply_UnknownQuestionAborts(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	passthroughTx(m)
	m.Apply.EXPECT().FindByID(gomock.Nil(), uint(7)).Return(models.Apply{
		ApplyID: 7, StudentNumber: "202012345", Status: models.ApplyStatusDraft,
	}, nil)
	m.Apply.EXPECT().SubmittedExists(gomock.Nil(), "202012345").Return(false, nil)
	m.Question.EXPECT().FindByID(gomock.Nil(), uint(404)).Return(models.Question{}, gorm.ErrRecordNotFound)

	_, err := svc.SaveApply(dto.SaveApplyRequest{
		ApplyID: 7,
		Name:    ptrString("Kim"),
		Answers: []dto.AnswerDTO{{QuestionID: 404}},
	}, false)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestSaveApply_UnknownChoiceAborts(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	passthroughTx(m)
	m.Apply.EXPECT().FindByID(gomock.Nil(), uint(7)).Return(models.Apply{
		ApplyID: 7, StudentNumber: "202012345", Status: models.ApplyStatusDraft,
	}, nil)
	m.Apply.EXPECT().SubmittedExists(gomock.Nil(), "202012345").Return(false, nil)
	m.Question.EXPECT().FindByID(gomock.Nil(), uint(2)).Return(models.Question{QuestionID: 2}, nil)
	m.Answer.EXPECT().Create(gomock.Nil(), gomock.Any()).DoAndReturn(func(_ *gorm.DB, answer *models.Answer) error {
		answer.AnswerID = 100
		return nil
	})
	m.Question.EXPECT().FindChoiceByID(gomock.Nil(), uint(404)).Return(models.Choice{}, gorm.ErrRecordNotFound)

	_, err := svc.SaveApply(dto.SaveApplyRequest{
		ApplyID: 7,
		Answers: []dto.AnswerDTO{{QuestionID: 2, ChoiceID: []uint{404}}},
	}, false)
	assert.ErrorIs(t, err, ErrChoiceNotFound)
}

func TestSaveApply_DuplicateChoicesCollapsed(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	passthroughTx(m)
	m.Apply.EXPECT().FindByID(gomock.Nil(), uint(7)).Return(models.Apply{
		ApplyID: 7, StudentNumber: "202012345", Status: models.ApplyStatusDraft,
	}, nil)
	m.Apply.EXPECT().SubmittedExists(gomock.Nil(), "202012345").Return(false, nil)
	m.Question.EXPECT().FindByID(gomock.Nil(), uint(2)).Return(models.Question{QuestionID: 2}, nil)
	m.Answer.EXPECT().Create(gomock.Nil(), gomock.Any()).DoAndReturn(func(_ *gorm.DB, answer *models.Answer) error {
		answer.AnswerID = 100
		return nil
	})
	// Validated and inserted once despite appearing three times.
	m.Question.EXPECT().FindChoiceByID(gomock.Nil(), uint(10)).Return(models.Choice{ChoiceID: 10}, nil).Times(1)
	m.Answer.EXPECT().CreateChoice(gomock.Nil(), &models.AnswerChoice{AnswerID: 100, ChoiceID: 10}).Return(nil).Times(1)
	m.Apply.EXPECT().Save(gomock.Nil(), gomock.Any()).Return(nil)

	_, err := svc.SaveApply(dto.SaveApplyRequest{
		ApplyID: 7,
		Answers: []dto.AnswerDTO{{QuestionID: 2, ChoiceID: []uint{10, 10, 10}}},
	}, false)
	assert.NoError(t, err)
}

// --------------------- SaveApply: resave ---------------------
func TestSaveApply_ResaveReplacesChoices(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	passthroughTx(m)
	m.Apply.EXPECT().FindByID(gomock.Nil(), uint(7)).Return(models.Apply{
		ApplyID: 7, StudentNumber: "202012345", Status: models.ApplyStatusSaved,
	}, nil)
	m.Apply.EXPECT().SubmittedExists(gomock.Nil(), "202012345").Return(false, nil)

	m.Answer.EXPECT().FindByApplyAndQuestion(gomock.Nil(), uint(7), uint(2)).Return(models.Answer{
		AnswerID: 100, ApplyID: 7, QuestionID: 2, Content: ptrString("old"),
	}, nil)
	m.Answer.EXPECT().Save(gomock.Nil(), gomock.Any()).DoAndReturn(func(_ *gorm.DB, answer *models.Answer) error {
		assert.Equal(t, "new", *answer.Content)
		return nil
	})
	m.Answer.EXPECT().DeleteChoicesByAnswerID(gomock.Nil(), uint(100)).Return(nil)
	m.Question.EXPECT().FindChoiceByID(gomock.Nil(), uint(11)).Return(models.Choice{ChoiceID: 11}, nil)
	m.Answer.EXPECT().CreateChoice(gomock.Nil(), &models.AnswerChoice{AnswerID: 100, ChoiceID: 11}).Return(nil)

	m.Apply.EXPECT().Save(gomock.Nil(), gomock.Any()).DoAndReturn(func(_ *gorm.DB, apply *models.Apply) error {
		assert.Equal(t, models.ApplyStatusSaved, apply.Status)
		return nil
	})

	_, err := svc.SaveApply(dto.SaveApplyRequest{
		ApplyID: 7,
		Answers: []dto.AnswerDTO{{QuestionID: 2, Content: ptrString("new"), ChoiceID: []uint{11}}},
	}, false)
	assert.NoError(t, err)
}

func TestSaveApply_ResaveLeavesOmittedAnswersAlone(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	passthroughTx(m)
	m.Apply.EXPECT().FindByID(gomock.Nil(), uint(7)).Return(models.Apply{
		ApplyID: 7, StudentNumber: "202012345", Status: models.ApplyStatusSaved,
	}, nil)
	m.Apply.EXPECT().SubmittedExists(gomock.Nil(), "202012345").Return(false, nil)
	// Only question 1 is in the request; no lookups for any other answer.
	m.Answer.EXPECT().FindByApplyAndQuestion(gomock.Nil(), uint(7), uint(1)).Return(models.Answer{
		AnswerID: 100, ApplyID: 7, QuestionID: 1,
	}, nil)
	m.Answer.EXPECT().Save(gomock.Nil(), gomock.Any()).Return(nil)
	m.Answer.EXPECT().DeleteChoicesByAnswerID(gomock.Nil(), uint(100)).Return(nil)
	m.Apply.EXPECT().Save(gomock.Nil(), gomock.Any()).Return(nil)

	_, err := svc.SaveApply(dto.SaveApplyRequest{
		ApplyID: 7,
		Answers: []dto.AnswerDTO{{QuestionID: 1, Content: ptrString("updated")}},
	}, false)
	assert.NoError(t, err)
}

func TestSaveApply_ResaveCreatesAnswerForNewQuestion(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	passthroughTx(m)
	m.Apply.EXPECT().FindByID(gomock.Nil(), uint(7)).Return(models.Apply{
		ApplyID: 7, StudentNumber: "202012345", Status: models.ApplyStatusSaved,
	}, nil)
	m.Apply.EXPECT().SubmittedExists(gomock.Nil(), "202012345").Return(false, nil)

	m.Answer.EXPECT().FindByApplyAndQuestion(gomock.Nil(), uint(7), uint(3)).Return(models.Answer{}, gorm.ErrRecordNotFound)
	m.Question.EXPECT().FindByID(gomock.Nil(), uint(3)).Return(models.Question{QuestionID: 3}, nil)
	m.Answer.EXPECT().Create(gomock.Nil(), gomock.Any()).DoAndReturn(func(_ *gorm.DB, answer *models.Answer) error {
		answer.AnswerID = 102
		return nil
	})
	m.Answer.EXPECT().DeleteChoicesByAnswerID(gomock.Nil(), uint(102)).Return(nil)
	m.Apply.EXPECT().Save(gomock.Nil(), gomock.Any()).Return(nil)

	_, err := svc.SaveApply(dto.SaveApplyRequest{
		ApplyID: 7,
		Answers: []dto.AnswerDTO{{QuestionID: 3, Content: ptrString("late addition")}},
	}, false)
	assert.NoError(t, err)
}

// --------------------- SaveApply: submit ---------------------
func TestSaveApply_SubmitWritesMarkerAndKeepsStatusSaved(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	passthroughTx(m)
	m.Apply.EXPECT().FindByID(gomock.Nil(), uint(7)).Return(models.Apply{
		ApplyID: 7, StudentNumber: "202012345", Status: models.ApplyStatusSaved,
	}, nil)
	m.Apply.EXPECT().SubmittedExists(gomock.Nil(), "202012345").Return(false, nil)
	m.Apply.EXPECT().CreateSubmitted(gomock.Nil(), &models.SubmittedApply{StudentNumber: "202012345"}).Return(nil)
	m.Apply.EXPECT().Save(gomock.Nil(), gomock.Any()).DoAndReturn(func(_ *gorm.DB, apply *models.Apply) error {
		assert.Equal(t, models.ApplyStatusSaved, apply.Status)
		return nil
	})

	_, err := svc.SaveApply(dto.SaveApplyRequest{ApplyID: 7}, true)
	assert.NoError(t, err)
}

func TestSaveApply_SubmitFromDraft(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	passthroughTx(m)
	m.Apply.EXPECT().FindByID(gomock.Nil(), uint(7)).Return(models.Apply{
		ApplyID: 7, StudentNumber: "202012345", Status: models.ApplyStatusDraft,
	}, nil)
	m.Apply.EXPECT().SubmittedExists(gomock.Nil(), "202012345").Return(false, nil)
	m.Apply.EXPECT().CreateSubmitted(gomock.Nil(), &models.SubmittedApply{StudentNumber: "202012345"}).Return(nil)
	m.Apply.EXPECT().Save(gomock.Nil(), gomock.Any()).DoAndReturn(func(_ *gorm.DB, apply *models.Apply) error {
		assert.Equal(t, models.ApplyStatusSaved, apply.Status)
		return nil
	})

	_, err := svc.SaveApply(dto.SaveApplyRequest{ApplyID: 7}, true)
	assert.NoError(t, err)
}

// --------------------- LoadApply ---------------------
func TestLoadApply_Success(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	apply := models.Apply{
		ApplyID:       7,
		StudentNumber: "202012345",
		Password:      hashOf(t, "secret"),
		Status:        models.ApplyStatusSaved,
		Answers: []models.Answer{
			{AnswerID: 100, ApplyID: 7, QuestionID: 2, Choices: []models.AnswerChoice{{AnswerID: 100, ChoiceID: 10}}},
		},
	}
	m.Apply.EXPECT().FindAllByStudentNumber("202012345").Return([]models.Apply{apply}, nil)

	resp, err := svc.LoadApply(dto.LoadApplyRequest{StudentNumber: "202012345", Password: "secret"})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), resp.ApplyID)
	assert.Equal(t, models.ApplyStatusSaved, resp.Status)
	assert.Len(t, resp.Answers, 1)
	assert.Equal(t, []uint{10}, resp.Answers[0].ChoiceID)
}

func TestLoadApply_PicksTheMatchingSibling(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	first := models.Apply{ApplyID: 1, StudentNumber: "202012345", Password: hashOf(t, "alpha")}
	second := models.Apply{ApplyID: 2, StudentNumber: "202012345", Password: hashOf(t, "beta")}
	m.Apply.EXPECT().FindAllByStudentNumber("202012345").Return([]models.Apply{first, second}, nil)

	resp, err := svc.LoadApply(dto.LoadApplyRequest{StudentNumber: "202012345", Password: "beta"})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), resp.ApplyID)
}

func TestLoadApply_WrongPassword(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	apply := models.Apply{ApplyID: 7, StudentNumber: "202012345", Password: hashOf(t, "secret")}
	m.Apply.EXPECT().FindAllByStudentNumber("202012345").Return([]models.Apply{apply}, nil)

	_, err := svc.LoadApply(dto.LoadApplyRequest{StudentNumber: "202012345", Password: "wrong"})
	assert.ErrorIs(t, err, ErrApplyInvalidPassword)
}

func TestLoadApply_UnknownStudentNumberSameError(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	m.Apply.EXPECT().FindAllByStudentNumber("999999999").Return(nil, nil)

	_, err := svc.LoadApply(dto.LoadApplyRequest{StudentNumber: "999999999", Password: "whatever"})
	assert.ErrorIs(t, err, ErrApplyInvalidPassword)
}

// --------------------- Admin views ---------------------
func TestListSubmitted_FilterByTrack(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	track := models.TrackBackend
	m.Apply.EXPECT().FindAllSubmitted(&track).Return([]models.Apply{
		{ApplyID: 7, StudentNumber: "202012345", Name: ptrString("Kim"), Track: &track},
	}, nil)

	out, err := svc.ListSubmitted(&track)
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, uint(7), out[0].ApplyID)
	assert.Equal(t, models.TrackBackend, *out[0].Track)
}

func TestListSubmitted_NoFilter(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	m.Apply.EXPECT().FindAllSubmitted(nil).Return([]models.Apply{}, nil)

	out, err := svc.ListSubmitted(nil)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestGetSubmitted_Success(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	track := models.TrackAI
	m.Apply.EXPECT().FindByIDWithAnswers(uint(7)).Return(models.Apply{
		ApplyID:       7,
		StudentNumber: "202012345",
		Name:          ptrString("Kim"),
		Track:         &track,
		Answers: []models.Answer{
			{AnswerID: 100, ApplyID: 7, QuestionID: 1, Content: ptrString("I farm")},
		},
	}, nil)

	resp, err := svc.GetSubmitted(7)
	assert.NoError(t, err)
	assert.Equal(t, "202012345", resp.StudentNumber)
	assert.Len(t, resp.Answers, 1)
}

func TestGetSubmitted_NotFound(t *testing.T) {
	svc, m := setupApplyServiceMocks(t)

	m.Apply.EXPECT().FindByIDWithAnswers(uint(404)).Return(models.Apply{}, gorm.ErrRecordNotFound)

	_, err := svc.GetSubmitted(404)
	assert.ErrorIs(t, err, ErrApplyNotFound)
}

// --------------------- Helper ---------------------
func ptrString(s string) *string { return &s }
