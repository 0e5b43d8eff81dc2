package web

import (
	"net/http"

	"github.com/dmitrijs2005/shopfront/internal/server/recommend"
)

func (s *Server) handleQuizQuestions(w http.ResponseWriter, r *http.Request) {
	type questionView struct {
		Key  string `json:"key"`
		Text string `json:"text"`
	}

	views := make([]questionView, 0, len(recommend.Questions))
	for _, q := range recommend.Questions {
		views = append(views, questionView{Key: q.Key, Text: q.Text})
	}

	writeJSON(w, http.StatusOK, map[string]any{"questions": views})
}

// handleQuizAnswers merges the posted answers into the session, so the quiz
// can be taken one question at a time.
func (s *Server) handleQuizAnswers(w http.ResponseWriter, r *http.Request) {
	var answers map[string]string
	if err := decodeJSON(r, &answers); err != nil || len(answers) == 0 {
		writeError(w, http.StatusBadRequest, "answers are required")
		return
	}

	session := s.sessions.Load(r)
	if session.QuizAnswers == nil {
		session.QuizAnswers = make(map[string]string, len(answers))
	}
	for key, answer := range answers {
		session.QuizAnswers[key] = answer
	}

	if err := s.sessions.Save(w, session); err != nil {
		s.logger.Error(r.Context(), "saving session failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "saving answers failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleQuizRecommendations(w http.ResponseWriter, r *http.Request) {
	session := s.sessions.Load(r)

	answers := recommend.Answers{
		Department:       session.QuizAnswers["department"],
		RemoteWork:       session.QuizAnswers["remote_work"],
		NeedsTraining:    session.QuizAnswers["needs_training"],
		ExpenseHandling:  session.QuizAnswers["expense_handling"],
		DocumentHandling: session.QuizAnswers["document_handling"],
		SecurityConcern:  session.QuizAnswers["security_concern"],
		TeamSize:         session.QuizAnswers["team_size"],
	}

	writeJSON(w, http.StatusOK, map[string]any{"recommendations": s.recomm(answers)})
}
