package services

import (
	"errors"

	"github.com/saokiritoni/HomePage-BE/dto"
	"github.com/saokiritoni/HomePage-BE/models"
	"github.com/saokiritoni/HomePage-BE/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrApplyNotFound         = errors.New("apply not found")
	ErrQuestionNotFound      = errors.New("question not found")
	ErrChoiceNotFound        = errors.New("choice not found")
	ErrApplyAlreadyExist     = errors.New("apply already exists for this credential")
	ErrApplyAlreadySubmitted = errors.New("apply already submitted")
	ErrApplyInvalidPassword  = errors.New("invalid student number or password")
	ErrPasswordHashFailure   = errors.New("failed to hash password")
)

// ApplyService owns the application lifecycle: anonymous creation keyed by
// (studentNumber, password), repeated draft saves, the terminal submit
// marker, and the admin views over submitted applications.
type ApplyService struct {
	Repos *repositories.Repos
}

func NewApplyService(repos *repositories.Repos) *ApplyService {
	return &ApplyService{Repos: repos}
}

func (s *ApplyService) GetQuestions() ([]dto.QuestionDTO, error) {
	questions, err := s.Repos.Question.ListOrdered()
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.QuestionFromModel(q))
	}
	return out, nil
}

// CreateApply starts a DRAFT application. A student number may own several
// applications as long as their passwords differ; creation is rejected only
// when an existing row's hash matches the supplied password.
func (s *ApplyService) CreateApply(req dto.CreateApplyRequest) (dto.CreateApplyResponse, error) {
	applies, err := s.Repos.Apply.FindAllByStudentNumber(req.StudentNumber)
	if err != nil {
		return dto.CreateApplyResponse{}, err
	}
	for _, existing := range applies {
		if bcrypt.CompareHashAndPassword([]byte(existing.Password), []byte(req.Password)) == nil {
			return dto.CreateApplyResponse{}, ErrApplyAlreadyExist
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.CreateApplyResponse{}, ErrPasswordHashFailure
	}

	apply := models.Apply{
		StudentNumber: req.StudentNumber,
		Password:      string(hashed),
		Status:        models.ApplyStatusDraft,
	}
	err = s.Repos.Tx.Transaction(func(tx *gorm.DB) error {
		return s.Repos.Apply.Create(tx, &apply)
	})
	if err != nil {
		return dto.CreateApplyResponse{}, err
	}
	return dto.CreateApplyResponse{ApplyID: apply.ApplyID}, nil
}

// SaveApply stores a draft (submit=false) or finalizes the application
// (submit=true). Everything runs in one transaction: a failing question or
// choice lookup rolls back the personal-field update as well.
func (s *ApplyService) SaveApply(req dto.SaveApplyRequest, submit bool) (dto.SaveApplyResponse, error) {
	err := s.Repos.Tx.Transaction(func(tx *gorm.DB) error {
		apply, err := s.Repos.Apply.FindByID(tx, req.ApplyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplyNotFound
			}
			return err
		}

		submitted, err := s.Repos.Apply.SubmittedExists(tx, apply.StudentNumber)
		if err != nil {
			return err
		}
		if submitted {
			return ErrApplyAlreadySubmitted
		}

		apply.Name = req.Name
		apply.Major = req.Major
		apply.PhoneNumber = req.PhoneNumber
		apply.Email = req.Email
		apply.Track = req.Track

		switch apply.Status {
		case models.ApplyStatusDraft:
			err = s.reconcileFirstSave(tx, &apply, req.Answers)
		case models.ApplyStatusSaved:
			err = s.reconcileResave(tx, &apply, req.Answers)
		}
		if err != nil {
			return err
		}

		if submit {
			marker := models.SubmittedApply{StudentNumber: apply.StudentNumber}
			if err := s.Repos.Apply.CreateSubmitted(tx, &marker); err != nil {
				return err
			}
		}
		// The status field never goes past SAVED; submission lives in the
		// marker table alone.
		if apply.Status == models.ApplyStatusDraft {
			apply.Status = models.ApplyStatusSaved
		}
		return s.Repos.Apply.Save(tx, &apply)
	})
	if err != nil {
		return dto.SaveApplyResponse{}, err
	}
	return dto.SaveApplyResponse{ApplyID: req.ApplyID}, nil
}

// reconcileFirstSave creates a fresh answer row (and its choice edges) for
// every answer in the request.
func (s *ApplyService) reconcileFirstSave(tx *gorm.DB, apply *models.Apply, answers []dto.AnswerDTO) error {
	for _, in := range answers {
		question, err := s.Repos.Question.FindByID(tx, in.QuestionID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuestionNotFound
			}
			return err
		}
		answer := models.Answer{
			ApplyID:    apply.ApplyID,
			QuestionID: question.QuestionID,
			Content:    in.Content,
		}
		if err := s.Repos.Answer.Create(tx, &answer); err != nil {
			return err
		}
		if err := s.insertAnswerChoices(tx, answer.AnswerID, in.ChoiceID); err != nil {
			return err
		}
	}
	return nil
}

// reconcileResave upserts each answer of the request by (applyId,
// questionId), rewrites its content, and replaces the whole choice set.
// Answers for questions not present in the request are left alone.
func (s *ApplyService) reconcileResave(tx *gorm.DB, apply *models.Apply, answers []dto.AnswerDTO) error {
	for _, in := range answers {
		answer, err := s.Repos.Answer.FindByApplyAndQuestion(tx, apply.ApplyID, in.QuestionID)
		switch {
		case err == nil:
			answer.Content = in.Content
			if err := s.Repos.Answer.Save(tx, &answer); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// A question added to the catalog after the first save.
			question, err := s.Repos.Question.FindByID(tx, in.QuestionID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrQuestionNotFound
				}
				return err
			}
			answer = models.Answer{
				ApplyID:    apply.ApplyID,
				QuestionID: question.QuestionID,
				Content:    in.Content,
			}
			if err := s.Repos.Answer.Create(tx, &answer); err != nil {
				return err
			}
		default:
			return err
		}

		if err := s.Repos.Answer.DeleteChoicesByAnswerID(tx, answer.AnswerID); err != nil {
			return err
		}
		if err := s.insertAnswerChoices(tx, answer.AnswerID, in.ChoiceID); err != nil {
			return err
		}
	}
	return nil
}

// insertAnswerChoices validates and inserts the choice edges for one
// answer. A nil list means "no choices". Duplicate ids within one request
// are collapsed so they do not trip the composite primary key.
func (s *ApplyService) insertAnswerChoices(tx *gorm.DB, answerID uint, choiceIDs []uint) error {
	seen := make(map[uint]struct{}, len(choiceIDs))
	for _, choiceID := range choiceIDs {
		if _, ok := seen[choiceID]; ok {
			continue
		}
		seen[choiceID] = struct{}{}

		choice, err := s.Repos.Question.FindChoiceByID(tx, choiceID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrChoiceNotFound
			}
			return err
		}
		edge := models.AnswerChoice{AnswerID: answerID, ChoiceID: choice.ChoiceID}
		if err := s.Repos.Answer.CreateChoice(tx, &edge); err != nil {
			return err
		}
	}
	return nil
}

// LoadApply authenticates by (studentNumber, password) and returns the
// matching application with its answers. The error code is the same
// whether the student number is unknown or the password is wrong.
func (s *ApplyService) LoadApply(req dto.LoadApplyRequest) (dto.LoadApplyResponse, error) {
	applies, err := s.Repos.Apply.FindAllByStudentNumber(req.StudentNumber)
	if err != nil {
		return dto.LoadApplyResponse{}, err
	}
	for _, apply := range applies {
		if bcrypt.CompareHashAndPassword([]byte(apply.Password), []byte(req.Password)) == nil {
			return dto.LoadApplyResponse{
				ApplyID:   apply.ApplyID,
				Status:    apply.Status,
				UpdatedAt: apply.UpdatedAt,
				Answers:   dto.AnswersFromModel(apply.Answers),
			}, nil
		}
	}
	return dto.LoadApplyResponse{}, ErrApplyInvalidPassword
}

// ListSubmitted enumerates applications that have a submitted marker,
// optionally filtered by track.
func (s *ApplyService) ListSubmitted(track *models.Track) ([]dto.ApplyListItem, error) {
	applies, err := s.Repos.Apply.FindAllSubmitted(track)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApplyListItem, 0, len(applies))
	for _, apply := range applies {
		out = append(out, dto.ApplyListItem{
			ApplyID:       apply.ApplyID,
			StudentNumber: apply.StudentNumber,
			Name:          apply.Name,
			Track:         apply.Track,
			UpdatedAt:     apply.UpdatedAt,
		})
	}
	return out, nil
}

// GetSubmitted returns the admin detail view of one application.
func (s *ApplyService) GetSubmitted(applyID uint) (dto.SubmittedApplyResponse, error) {
	apply, err := s.Repos.Apply.FindByIDWithAnswers(applyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SubmittedApplyResponse{}, ErrApplyNotFound
		}
		return dto.SubmittedApplyResponse{}, err
	}
	return dto.SubmittedApplyResponse{
		ApplyID:       apply.ApplyID,
		StudentNumber: apply.StudentNumber,
		Name:          apply.Name,
		Major:         apply.Major,
		PhoneNumber:   apply.PhoneNumber,
		Email:         apply.Email,
		Track:         apply.Track,
		UpdatedAt:     apply.UpdatedAt,
		Answers:       dto.AnswersFromModel(apply.Answers),
	}, nil
}
