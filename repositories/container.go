package repositories

type Repos struct {
	Tx         TxRepo
	Apply      ApplyRepo
	Question   QuestionRepo
	Answer     AnswerRepo
	Blog       BlogRepo
	User       UserRepo
	FarmingLog FarmingLogRepo
	Audit      AuditRepo
}

func New() *Repos {
	return &Repos{
		Tx:         &DBTxRepo{},
		Apply:      &DBApplyRepo{},
		Question:   &DBQuestionRepo{},
		Answer:     &DBAnswerRepo{},
		Blog:       &DBBlogRepo{},
		User:       &DBUserRepo{},
		FarmingLog: &DBFarmingLogRepo{},
		Audit:      &DBAuditRepo{},
	}
}
