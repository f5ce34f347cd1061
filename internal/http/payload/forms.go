package payload

import (
	"errors"
	"net/http"
	"strings"

	"daybook/internal/core"

	"github.com/jellydator/validation"
)

type LoginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func ParseLoginForm(r *http.Request) LoginForm {
	return LoginForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}
}

func (f LoginForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Username, validation.Required),
		validation.Field(&f.Password, validation.Required),
	)
}

func (f LoginForm) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: f.Username,
		Password: f.Password,
	}
}

type EntryForm struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func ParseEntryForm(r *http.Request) EntryForm {
	return EntryForm{
		Title: strings.TrimSpace(r.FormValue("title")),
		Body:  strings.TrimSpace(r.FormValue("body")),
	}
}

func (f EntryForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, validation.RuneLength(1, 120)),
		validation.Field(&f.Body, validation.Required),
	)
}

func (f EntryForm) ToDraft() core.EntryDraft {
	return core.EntryDraft{
		Title: f.Title,
		Body:  f.Body,
	}
}

// FieldErrors flattens a validation error into field name → messages, the
// shape both the create and update templates consume.
func FieldErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return map[string][]string{"form": {err.Error()}}
	}

	out := make(map[string][]string, len(verrs))
	for field, ferr := range verrs {
		if ferr == nil {
			continue
		}
		out[field] = append(out[field], ferr.Error())
	}
	return out
}
