package web

import (
	"encoding/json"
	goerrors "errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/process"

	"neuroview/backend"
	"neuroview/chatguard"
	"neuroview/domain"
	"neuroview/domain/event"
	"neuroview/errors"
	"neuroview/forms"
	"neuroview/present"
	"neuroview/upload"
)

type authPage struct {
	Error string
	Info  string
	Name  string
	Email string
}

func (s *Server) showLogin(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "login.html", authPage{})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	form := forms.LoginForm{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if err := forms.ValidateLogin(form); err != nil {
		s.render(w, http.StatusUnprocessableEntity, "login.html", authPage{Error: err.Error(), Email: form.Email})
		return
	}

	creds, err := s.backend.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		s.log.Warn("Login failed", "email", form.Email, "err", err)
		s.render(w, loginFailureStatus(err), "login.html", authPage{Error: userMessage(err), Email: form.Email})
		return
	}

	record, err := s.sessions.Create(form.Email, creds.AccessToken)
	if err != nil {
		s.log.Error("Session creation failed", "err", err)
		s.render(w, http.StatusInternalServerError, "login.html", authPage{Error: "something went wrong, please try again", Email: form.Email})
		return
	}
	if err = s.setCookie(w, record.ID); err != nil {
		s.log.Error("Cookie signing failed", "err", err)
		s.render(w, http.StatusInternalServerError, "login.html", authPage{Error: "something went wrong, please try again", Email: form.Email})
		return
	}
	http.Redirect(w, r, "/prediction", http.StatusSeeOther)
}

func (s *Server) showRegister(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "register.html", authPage{})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	form := forms.RegisterForm{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
	if err := forms.ValidateRegister(form); err != nil {
		s.render(w, http.StatusUnprocessableEntity, "register.html", authPage{Error: err.Error(), Name: form.Name, Email: form.Email})
		return
	}

	if err := s.backend.Register(r.Context(), form.Name, form.Email, form.Password); err != nil {
		s.log.Warn("Registration failed", "email", form.Email, "err", err)
		s.render(w, http.StatusBadGateway, "register.html", authPage{Error: userMessage(err), Name: form.Name, Email: form.Email})
		return
	}
	s.render(w, http.StatusOK, "login.html", authPage{Info: "Account created. Please sign in.", Email: form.Email})
}

func (s *Server) showForgotPassword(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "forgot_password.html", authPage{})
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	form := forms.ForgotPasswordForm{Email: r.FormValue("email")}
	if err := forms.ValidateForgotPassword(form); err != nil {
		s.render(w, http.StatusUnprocessableEntity, "forgot_password.html", authPage{Error: err.Error(), Email: form.Email})
		return
	}

	if err := s.backend.ForgotPassword(r.Context(), form.Email); err != nil {
		s.log.Warn("Forgot-password request failed", "err", err)
		s.render(w, http.StatusBadGateway, "forgot_password.html", authPage{Error: userMessage(err), Email: form.Email})
		return
	}
	s.render(w, http.StatusOK, "forgot_password.html", authPage{
		Info:  "If the address exists, a reset code has been sent.",
		Email: form.Email,
	})
}

func (s *Server) showResetPassword(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "reset_password.html", authPage{Email: r.URL.Query().Get("email")})
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	form := forms.ResetPasswordForm{
		Email:           r.FormValue("email"),
		OTPCode:         r.FormValue("otp_code"),
		NewPassword:     r.FormValue("new_password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}
	if err := forms.ValidateResetPassword(form); err != nil {
		s.render(w, http.StatusUnprocessableEntity, "reset_password.html", authPage{Error: err.Error(), Email: form.Email})
		return
	}

	if err := s.backend.ResetPassword(r.Context(), form.Email, form.OTPCode, form.NewPassword); err != nil {
		s.log.Warn("Password reset failed", "err", err)
		s.render(w, http.StatusBadGateway, "reset_password.html", authPage{Error: userMessage(err), Email: form.Email})
		return
	}
	s.render(w, http.StatusOK, "login.html", authPage{Info: "Password reset. Please sign in.", Email: form.Email})
}

type predictionPage struct {
	Email       string
	UploadError string
	MaxUploadMB int64
	View        present.View
}

func (s *Server) showPrediction(w http.ResponseWriter, r *http.Request) {
	s.renderPrediction(w, r, http.StatusOK, "")
}

func (s *Server) renderPrediction(w http.ResponseWriter, r *http.Request, status int, uploadError string) {
	record := currentSession(r)
	latest, err := s.results.Latest(record.ID)
	if err != nil {
		s.log.Error("Reading latest result failed", "session_id", record.ID, "err", err)
	}
	s.render(w, status, "prediction.html", predictionPage{
		Email:       record.Email,
		UploadError: uploadError,
		MaxUploadMB: s.maxUploadBytes / (1 << 20),
		View:        present.Present(latest),
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	record := currentSession(r)

	if !s.acquireUploadSlot(record.ID) {
		s.renderPrediction(w, r, http.StatusConflict, errors.ErrUploadInFlight.Error())
		return
	}
	defer s.releaseUploadSlot(record.ID)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.renderPrediction(w, r, http.StatusBadRequest, "choose a file to upload")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.maxUploadBytes+1))
	if err != nil {
		s.renderPrediction(w, r, http.StatusBadRequest, "reading the upload failed")
		return
	}

	screened, err := upload.Screen(header.Filename, data, s.maxUploadBytes)
	if err != nil {
		s.renderPrediction(w, r, screeningStatus(err), userMessage(err))
		return
	}

	s.hub.Publish(r.Context(), event.ImageUploaded{
		SessionID: record.ID.String(),
		Filename:  screened.Filename,
		Size:      screened.Size,
		At:        time.Now().UTC(),
	})

	up := backend.Upload{Filename: screened.Filename, Data: data}
	resp, err := s.backend.Predict(r.Context(), record.Token, up, func(percent int) {
		s.log.Debug("Upload progress", "session_id", record.ID, "percent", percent)
	})
	if err != nil {
		s.log.Error("Prediction request failed", "session_id", record.ID, "err", err)
		resp = &domain.PredictionResponse{Status: domain.StatusError, Error: userMessage(err)}
	}

	if err = s.results.Store(record.ID, resp); err != nil {
		s.log.Error("Storing result failed", "session_id", record.ID, "err", err)
		s.renderPrediction(w, r, http.StatusInternalServerError, "storing the result failed")
		return
	}

	s.hub.Publish(r.Context(), event.PredictionReceived{
		SessionID: record.ID.String(),
		Response:  resp,
		At:        time.Now().UTC(),
	})

	http.Redirect(w, r, "/prediction", http.StatusSeeOther)
}

func (s *Server) acquireUploadSlot(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[id]; busy {
		return false
	}
	s.inFlight[id] = struct{}{}
	return true
}

func (s *Server) releaseUploadSlot(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer r.Body.Close()

	language := s.guard.DetectLanguage(req.Message, req.Language)
	req.Language = language

	if reply, blocked := s.guard.Screen(req.Message, language); blocked {
		writeReply(w, reply)
		return
	}

	reply, err := s.backend.Chat(r.Context(), req)
	if err != nil {
		s.log.Warn("Chat request failed, serving fallback", "err", err)
		reply = chatguard.Fallback(language)
	}
	writeReply(w, reply)
}

func writeReply(w http.ResponseWriter, reply domain.ChatReply) {
	reply.Response = chatguard.Prefixed(reply)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(reply)
}

type libraryPage struct {
	Query string
	Hits  []libraryHit
}

type libraryHit struct {
	Title   string
	Snippet string
}

func (s *Server) showLibrary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page := libraryPage{Query: query}

	hits, err := s.library.Search(r.Context(), query, 10)
	if err != nil {
		s.log.Error("Library search failed", "query", query, "err", err)
	}
	for _, hit := range hits {
		page.Hits = append(page.Hits, libraryHit{Title: hit.Title, Snippet: hit.Snippet})
	}
	s.render(w, http.StatusOK, "library.html", page)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	record := currentSession(r)
	if err := s.results.Clear(record.ID); err != nil {
		s.log.Error("Clearing result failed", "session_id", record.ID, "err", err)
	}
	if err := s.sessions.Delete(record.ID); err != nil {
		s.log.Error("Deleting session failed", "session_id", record.ID, "err", err)
	}
	s.clearCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]any{"status": "ok"}

	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if cpu, err := p.CPUPercent(); err == nil {
			health["cpu_percent"] = cpu
		}
		if ram, err := p.MemoryPercent(); err == nil {
			health["memory_percent"] = ram
		}
		if created, err := p.CreateTime(); err == nil {
			health["uptime_seconds"] = time.Since(time.UnixMilli(created)).Seconds()
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(health)
}

func writeJSONError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

// userMessage strips wrapping detail so forms show the sentinel text only.
func userMessage(err error) string {
	for _, sentinel := range []error{
		errors.ErrInvalidCredentials,
		errors.ErrBackendUnreachable,
		errors.ErrNotAnImage,
		errors.ErrFileTooLarge,
		errors.ErrUploadInFlight,
	} {
		if goerrors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	if goerrors.Is(err, errors.ErrBackendRejected) {
		return err.Error()
	}
	return "something went wrong, please try again"
}

func loginFailureStatus(err error) int {
	if goerrors.Is(err, errors.ErrInvalidCredentials) {
		return http.StatusUnauthorized
	}
	return http.StatusBadGateway
}

func screeningStatus(err error) int {
	if goerrors.Is(err, errors.ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
