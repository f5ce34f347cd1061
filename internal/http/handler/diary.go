package handler

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"daybook/internal/core"
	"daybook/internal/http/handler/middleware"
	"daybook/internal/http/payload"
	"daybook/internal/session"
	"daybook/internal/upload"

	"go.uber.org/zap"
)

var (
	Index        = "GET /{$}"
	LoginPage    = "GET /login"
	Login        = "POST /login"
	Logout       = "POST /logout"
	NewEntry     = "GET /new"
	CreateEntry  = "POST /create"
	EntryDetail  = "GET /entry/{id}"
	EditEntry    = "GET /entry/{id}/edit"
	UpdateEntry  = "POST /entry/{id}/update"
	DeleteEntry  = "POST /entry/{id}/delete"
	UploadedFile = "GET /uploads/{filename}"
)

const csrfField = "csrf_token"
const maxUploadBytes = 4 << 20 // request body cap for multipart posts

const credentialsErr = "Invalid username or password."

type DiaryHandler struct {
	logs     *zap.SugaredLogger
	diary    DiaryService
	sessions SessionManager
	images   ImageStore
	renderer *Renderer
}

func NewDiaryHandler(logger *zap.SugaredLogger, diary DiaryService, sessions SessionManager, images ImageStore, renderer *Renderer) *DiaryHandler {
	return &DiaryHandler{
		logs:     logger,
		diary:    diary,
		sessions: sessions,
		images:   images,
		renderer: renderer,
	}
}

func (h *DiaryHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	page, err := h.diary.ListEntries(r.Context(), r.URL.Query().Get("q"), parsePage(r.URL.Query().Get("page")))
	if err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to list entries",
			"error", err,
			"handler", Index,
			"request_id", h.requestID(r))
		return
	}

	h.render(w, r, "index", http.StatusOK, sess, map[string]any{
		"Page": page,
	})
}

func (h *DiaryHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	h.render(w, r, "login", http.StatusOK, sess, map[string]any{
		"Next": safeNext(r.URL.Query().Get("next")),
	})
}

func (h *DiaryHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.validatedSession(w, r)
	if !ok {
		return
	}

	next := safeNext(r.FormValue("next"))

	form := payload.ParseLoginForm(r)
	if err := form.Validate(); err != nil {
		h.render(w, r, "login", http.StatusBadRequest, sess, map[string]any{
			"Errors": payload.FieldErrors(err),
			"Form":   form,
			"Next":   next,
		})
		return
	}

	user, err := h.diary.Authenticate(r.Context(), form.ToMessage())
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			// one message for both cases, nothing to enumerate usernames with
			h.render(w, r, "login", http.StatusBadRequest, sess, map[string]any{
				"Error": credentialsErr,
				"Form":  form,
				"Next":  next,
			})
			h.logs.Infow("login rejected",
				"handler", Login,
				"request_id", h.requestID(r))
			return
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", h.requestID(r))
		return
	}

	if _, err := h.sessions.Establish(w, &user); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to establish session",
			"error", err,
			"handler", Login,
			"request_id", h.requestID(r))
		return
	}

	setFlash(w, "Logged in.")
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *DiaryHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	_, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if !h.checkCSRF(w, r) {
		return
	}

	// replacing the cookie with an anonymous session clears the identity
	// and rotates the anti-forgery token
	if _, err := h.sessions.Establish(w, nil); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to clear session",
			"error", err,
			"handler", Logout,
			"request_id", h.requestID(r))
		return
	}

	setFlash(w, "Logged out.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *DiaryHandler) HandleNewEntry(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	h.render(w, r, "new", http.StatusOK, sess, map[string]any{
		"Form": payload.EntryForm{},
	})
}

func (h *DiaryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if !h.parseMultipart(w, r) {
		return
	}
	if !h.checkCSRF(w, r) {
		return
	}

	form := payload.ParseEntryForm(r)
	if err := form.Validate(); err != nil {
		h.render(w, r, "new", http.StatusBadRequest, sess, map[string]any{
			"Errors": payload.FieldErrors(err),
			"Form":   form,
		})
		return
	}

	imageName, ok := h.saveUpload(w, r, sess, "new", map[string]any{"Form": form})
	if !ok {
		return
	}

	draft := form.ToDraft()
	if imageName != "" {
		draft.ImageName = &imageName
	}

	entry, err := h.diary.CreateEntry(r.Context(), draft)
	if err != nil {
		if errors.Is(err, core.ErrInvalidEntry) {
			h.render(w, r, "new", http.StatusBadRequest, sess, map[string]any{
				"Error": err.Error(),
				"Form":  form,
			})
			return
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to create entry",
			"error", err,
			"handler", CreateEntry,
			"request_id", h.requestID(r))
		return
	}

	setFlash(w, "Entry created.")
	http.Redirect(w, r, fmt.Sprintf("/entry/%d", entry.ID), http.StatusSeeOther)
}

func (h *DiaryHandler) HandleEntryDetail(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)

	id, err := entryID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	entry, err := h.diary.GetEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrEntryNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to get entry",
			"error", err,
			"handler", EntryDetail,
			"request_id", h.requestID(r))
		return
	}

	h.render(w, r, "detail", http.StatusOK, sess, map[string]any{
		"Entry": entry,
	})
}

func (h *DiaryHandler) HandleEditEntry(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	id, err := entryID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	entry, err := h.diary.GetEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrEntryNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to get entry",
			"error", err,
			"handler", EditEntry,
			"request_id", h.requestID(r))
		return
	}

	h.render(w, r, "edit", http.StatusOK, sess, map[string]any{
		"Entry": entry,
		"Form":  payload.EntryForm{Title: entry.Title, Body: entry.Body},
	})
}

func (h *DiaryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if !h.parseMultipart(w, r) {
		return
	}
	if !h.checkCSRF(w, r) {
		return
	}

	id, err := entryID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	entry, err := h.diary.GetEntry(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrEntryNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to get entry",
			"error", err,
			"handler", UpdateEntry,
			"request_id", h.requestID(r))
		return
	}

	form := payload.ParseEntryForm(r)
	if err := form.Validate(); err != nil {
		h.render(w, r, "edit", http.StatusBadRequest, sess, map[string]any{
			"Errors": payload.FieldErrors(err),
			"Entry":  entry,
			"Form":   form,
		})
		return
	}

	imageName, ok := h.saveUpload(w, r, sess, "edit", map[string]any{"Entry": entry, "Form": form})
	if !ok {
		return
	}

	draft := form.ToDraft()
	if imageName != "" {
		// a freshly uploaded image replaces the stored reference; without
		// one the existing reference is preserved
		draft.ImageName = &imageName
	}

	updated, err := h.diary.UpdateEntry(r.Context(), id, draft)
	if err != nil {
		if errors.Is(err, core.ErrEntryNotFound) {
			http.NotFound(w, r)
			return
		}
		if errors.Is(err, core.ErrInvalidEntry) {
			h.render(w, r, "edit", http.StatusBadRequest, sess, map[string]any{
				"Error": err.Error(),
				"Entry": entry,
				"Form":  form,
			})
			return
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to update entry",
			"error", err,
			"handler", UpdateEntry,
			"request_id", h.requestID(r))
		return
	}

	setFlash(w, "Entry updated.")
	http.Redirect(w, r, fmt.Sprintf("/entry/%d", updated.ID), http.StatusSeeOther)
}

func (h *DiaryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	_, ok := h.requireUser(w, r)
	if !ok {
		return
	}
	if !h.checkCSRF(w, r) {
		return
	}

	id, err := entryID(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.diary.DeleteEntry(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrEntryNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to delete entry",
			"error", err,
			"handler", DeleteEntry,
			"request_id", h.requestID(r))
		return
	}

	setFlash(w, "Entry deleted.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *DiaryHandler) HandleUploadedFile(w http.ResponseWriter, r *http.Request) {
	path, err := h.images.Resolve(r.PathValue("filename"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, path)
}

// session resolves the current session, handing anonymous visitors a fresh
// cookie so every rendered form carries an anti-forgery token.
func (h *DiaryHandler) session(w http.ResponseWriter, r *http.Request) session.Session {
	sess, err := h.sessions.Resolve(r)
	if err == nil {
		return sess
	}

	sess, err = h.sessions.Establish(w, nil)
	if err != nil {
		h.logs.Errorw("failed to establish anonymous session",
			"error", err,
			"request_id", h.requestID(r))
		return session.Session{}
	}
	return sess
}

// requireUser gates a route on an authenticated session, redirecting
// anonymous requests to the login form with the original path as "next".
func (h *DiaryHandler) requireUser(w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	sess, err := h.sessions.Resolve(r)
	if err != nil || !sess.Authenticated() {
		http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
		return session.Session{}, false
	}
	return sess, true
}

// validatedSession is the POST-side counterpart of session: the request must
// already carry a valid cookie and a matching anti-forgery token.
func (h *DiaryHandler) validatedSession(w http.ResponseWriter, r *http.Request) (session.Session, bool) {
	sess, err := h.sessions.Resolve(r)
	if err != nil {
		http.Error(w, "invalid anti-forgery token", http.StatusBadRequest)
		return session.Session{}, false
	}
	if !h.checkCSRFToken(w, r, sess) {
		return session.Session{}, false
	}
	return sess, true
}

func (h *DiaryHandler) checkCSRF(w http.ResponseWriter, r *http.Request) bool {
	sess, err := h.sessions.Resolve(r)
	if err != nil {
		http.Error(w, "invalid anti-forgery token", http.StatusBadRequest)
		return false
	}
	return h.checkCSRFToken(w, r, sess)
}

func (h *DiaryHandler) checkCSRFToken(w http.ResponseWriter, r *http.Request, sess session.Session) bool {
	token := r.PostFormValue(csrfField)
	if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(sess.CSRFToken)) != 1 {
		http.Error(w, "invalid anti-forgery token", http.StatusBadRequest)
		h.logs.Infow("rejected request with bad anti-forgery token",
			"path", r.URL.Path,
			"request_id", h.requestID(r))
		return false
	}
	return true
}

// parseMultipart caps the request body at 4 MiB and parses the multipart
// form. Oversized uploads are rejected before any business logic runs.
func (h *DiaryHandler) parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "malformed form", http.StatusBadRequest)
		return false
	}
	return true
}

// saveUpload stores the optional image field. The bool result reports whether
// the caller may continue; a disallowed extension re-renders the given form.
func (h *DiaryHandler) saveUpload(w http.ResponseWriter, r *http.Request, sess session.Session, page string, data map[string]any) (string, bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", true
		}
		http.Error(w, "malformed form", http.StatusBadRequest)
		return "", false
	}
	defer file.Close()

	name, err := h.images.Save(header.Filename, file)
	if err != nil {
		if errors.Is(err, upload.ErrDisallowedExtension) {
			data["Errors"] = map[string][]string{"image": {err.Error()}}
			h.render(w, r, page, http.StatusBadRequest, sess, data)
			return "", false
		}
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to save upload",
			"error", err,
			"request_id", h.requestID(r))
		return "", false
	}

	return name, true
}

func (h *DiaryHandler) render(w http.ResponseWriter, r *http.Request, name string, status int, sess session.Session, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if sess.Authenticated() {
		data["User"] = sess.Username
	}
	data["CSRFToken"] = sess.CSRFToken
	if msg := popFlash(w, r); msg != "" {
		data["Flash"] = msg
	}

	if err := h.renderer.Render(w, name, status, data); err != nil {
		h.logs.Errorw("failed to render template",
			"error", err,
			"template", name,
			"request_id", h.requestID(r))
	}
}

func (h *DiaryHandler) requestID(r *http.Request) string {
	if v := r.Context().Value(middleware.RequestIDKey); v != nil {
		return v.(string)
	}
	return ""
}

func entryID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse entry id: %w", err)
	}
	return uint(id), nil
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// safeNext keeps post-login redirects on-site and out of redirect loops.
func safeNext(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/login") {
		return "/"
	}
	return raw
}
