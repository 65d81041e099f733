package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/qatth/careerscan/internal/extraction"
	"github.com/qatth/careerscan/internal/interview"
	"github.com/qatth/careerscan/internal/jobs"
	"github.com/qatth/careerscan/internal/storage"
	"github.com/qatth/careerscan/internal/types"
	"go.uber.org/zap"
)

// maxUploadBytes caps CV uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// handleScan accepts either a multipart "file" field or a JSON body with
// a "text" field, extracts the text, analyzes it, and caches the result
// for the chatbot, jobs and interview surfaces.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authHandler.Authorize(w, r); !ok {
		return
	}

	text, err := s.scanInput(r)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	result := s.engine.Analyze(text)
	if err := s.cacheScan(text, result); err != nil {
		s.logger.Error("failed to cache scan", zap.Error(err))
		http.Error(w, "Failed to persist scan", http.StatusInternalServerError)
		return
	}

	// Best effort: the external workflow gets a copy of every scanned CV
	// for its own analysis. Failures do not affect the response.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.webhook.SubmitCV(ctx, text); err != nil {
			s.logger.Warn("cv submission to workflow failed", zap.Error(err))
		}
	}()

	writeJSON(w, http.StatusOK, result)
}

// scanInput pulls the CV text out of the request, running file uploads
// through the extractor.
func (s *Server) scanInput(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")

	if r.Body != nil {
		r.Body = http.MaxBytesReader(nil, r.Body, maxUploadBytes)
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err == nil {
		file, header, err := r.FormFile("file")
		if err != nil {
			return "", &extraction.UnsupportedFileTypeError{Filename: "", ContentType: contentType}
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", &extraction.DocumentReadError{Filename: header.Filename, Cause: err}
		}

		// Overlapping uploads race on the shared text slot; the most
		// recently started extraction wins.
		claim := s.slot.Begin()
		text, err := extraction.ExtractText(data, header.Filename, header.Header.Get("Content-Type"))
		if err != nil {
			return "", err
		}
		if !claim.Publish(text) {
			return "", &extraction.DocumentReadError{Filename: header.Filename, Cause: errSuperseded}
		}
		return text, nil
	}

	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", &extraction.UnsupportedFileTypeError{Filename: "", ContentType: contentType}
	}
	claim := s.slot.Begin()
	claim.Publish(body.Text)
	return body.Text, nil
}

// cacheScan persists the text, skills and role ranking as separate blobs.
func (s *Server) cacheScan(text string, result *types.AnalysisResult) error {
	if err := s.storage.Set(storage.KeyCVText, []byte(text)); err != nil {
		return err
	}
	if err := storage.SetJSON(s.storage, storage.KeyCVSkills, result.Skills); err != nil {
		return err
	}
	return storage.SetJSON(s.storage, storage.KeyCVRoles, result.RoleMatches)
}

// handleFeature reports whether the current session's plan may use a
// feature. Unknown features deny rather than 404.
func (s *Server) handleFeature(w http.ResponseWriter, r *http.Request) {
	session, ok := s.authHandler.Authorize(w, r)
	if !ok {
		return
	}

	feature := r.PathValue("feature")
	writeJSON(w, http.StatusOK, map[string]any{
		"feature": feature,
		"plan":    session.Plan,
		"allowed": s.store.CanAccessFeature(feature, session.Plan),
	})
}

// handleRecharge tops up the current account. Only positive amounts are
// accepted at the API surface.
func (s *Server) handleRecharge(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authHandler.Authorize(w, r); !ok {
		return
	}

	var body struct {
		Amount int64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Amount <= 0 {
		http.Error(w, "amount must be a positive integer", http.StatusBadRequest)
		return
	}

	if err := s.store.UpdateBalance(body.Amount); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s.store.Session())
}

// handleUpgradePlan sets the current account's plan.
func (s *Server) handleUpgradePlan(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authHandler.Authorize(w, r); !ok {
		return
	}

	var body struct {
		Plan types.Plan `json:"plan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.store.UpgradePlan(body.Plan); err != nil {
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, s.store.Session())
}

// handleListJobs returns the catalog with match scores from the cached
// scan.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authHandler.Authorize(w, r); !ok {
		return
	}
	writeJSON(w, http.StatusOK, jobs.MatchCatalog(s.storage))
}

// handleGetJob returns one listing.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authHandler.Authorize(w, r); !ok {
		return
	}
	job, ok := jobs.ByID(r.PathValue("id"))
	if !ok {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	var skills []string
	_, _ = storage.GetJSON(s.storage, storage.KeyCVSkills, &skills)
	writeJSON(w, http.StatusOK, types.JobMatch{Job: job, MatchScore: jobs.MatchScore(job.Tags, skills)})
}

// handleChatbot returns the scripted reply for one message. Gated to
// plans with chatbot access.
func (s *Server) handleChatbot(w http.ResponseWriter, r *http.Request) {
	session, ok := s.authHandler.Authorize(w, r)
	if !ok {
		return
	}
	if !s.store.CanAccessFeature("chatbot", session.Plan) {
		http.Error(w, "chatbot requires the medium plan or higher", http.StatusForbidden)
		return
	}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": s.bot.Reply(body.Message)})
}

// handleInterviewQuestions returns the question bank chosen from the
// top cached role. Pro plan only.
func (s *Server) handleInterviewQuestions(w http.ResponseWriter, r *http.Request) {
	session, ok := s.authHandler.Authorize(w, r)
	if !ok {
		return
	}
	if !s.store.CanAccessFeature("interview", session.Plan) {
		http.Error(w, "the mock interview requires the pro plan", http.StatusForbidden)
		return
	}

	bank, questions := interview.SelectBank(s.storage)
	writeJSON(w, http.StatusOK, map[string]any{"bank": bank, "questions": questions})
}

// handleInterviewScore grades one transcript against a question from the
// selected bank.
func (s *Server) handleInterviewScore(w http.ResponseWriter, r *http.Request) {
	session, ok := s.authHandler.Authorize(w, r)
	if !ok {
		return
	}
	if !s.store.CanAccessFeature("interview", session.Plan) {
		http.Error(w, "the mock interview requires the pro plan", http.StatusForbidden)
		return
	}

	var body struct {
		Question int    `json:"question"`
		Answer   string `json:"answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	bank, questions := interview.SelectBank(s.storage)
	if body.Question < 0 || body.Question >= len(questions) {
		http.Error(w, "question index out of range", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"bank":  bank,
		"score": interview.ScoreAnswer(questions[body.Question], body.Answer),
	})
}

// handleQuiz proxies the cached CV text to the external quiz workflow.
func (s *Server) handleQuiz(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authHandler.Authorize(w, r); !ok {
		return
	}

	text, found, err := s.storage.Get(storage.KeyCVText)
	if err != nil || !found || len(text) == 0 {
		http.Error(w, "scan a CV before requesting a quiz", http.StatusPreconditionFailed)
		return
	}

	quiz, err := s.webhook.GenerateQuiz(r.Context(), string(text))
	if err != nil {
		s.logger.Warn("quiz workflow call failed", zap.Error(err))
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, quiz)
}

// handleQuizAnswers submits answers to the external review workflow.
func (s *Server) handleQuizAnswers(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authHandler.Authorize(w, r); !ok {
		return
	}

	var body struct {
		Answers []string `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	text, found, err := s.storage.Get(storage.KeyCVText)
	if err != nil || !found || len(text) == 0 {
		http.Error(w, "scan a CV before submitting answers", http.StatusPreconditionFailed)
		return
	}

	review, err := s.webhook.ReviewAnswers(r.Context(), string(text), body.Answers)
	if err != nil {
		s.logger.Warn("answer review workflow call failed", zap.Error(err))
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// handleHealth is the liveness endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
