package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SimoKiihamaki/marketprompt/internal/prompt"
)

type fieldResponse struct {
	Name         string `json:"name"`
	Label        string `json:"label"`
	HelperText   string `json:"helperText,omitempty"`
	DefaultValue string `json:"defaultValue"`
}

// composeRequest takes pointers so an explicit null is told apart from "".
type composeRequest struct {
	Values map[string]*string `json:"values"`
}

type composeResponse struct {
	Prompt   string        `json:"prompt"`
	Sections []string      `json:"sections"`
	Values   prompt.Values `json:"values"`
}

type bulletizeRequest struct {
	Text string `json:"text"`
}

type bulletizeResponse struct {
	Bullets string `json:"bullets"`
}

func listFieldsHandler(w http.ResponseWriter, _ *http.Request) {
	fields := prompt.Fields()
	out := make([]fieldResponse, 0, len(fields))
	for _, f := range fields {
		out = append(out, fieldResponse{
			Name:         f.Name,
			Label:        f.Label,
			HelperText:   f.HelperText,
			DefaultValue: f.DefaultValue,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func defaultsHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, prompt.DefaultValues())
}

// composeHandler overlays the posted values on the defaults, or on empty
// values when ?base=empty, and returns the composed prompt.
func composeHandler(w http.ResponseWriter, r *http.Request) {
	base, err := baseValues(r.URL.Query().Get("base"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req composeRequest
	if status, err := decodeBody(w, r, &req); err != nil {
		writeError(w, status, err.Error())
		return
	}

	overrides, err := req.overrides()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	values, err := prompt.ApplyMap(base, overrides)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	text := prompt.Compose(values)
	if wantsPlainText(r) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, text)
		return
	}

	writeJSON(w, http.StatusOK, composeResponse{
		Prompt:   text,
		Sections: prompt.Sections(values),
		Values:   values,
	})
}

func (req composeRequest) overrides() (map[string]string, error) {
	out := make(map[string]string, len(req.Values))
	for name, value := range req.Values {
		if value == nil {
			return nil, fmt.Errorf("field %q: null is not a string", name)
		}
		out[name] = *value
	}
	return out, nil
}

func bulletizeHandler(w http.ResponseWriter, r *http.Request) {
	var req bulletizeRequest
	if status, err := decodeBody(w, r, &req); err != nil {
		writeError(w, status, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, bulletizeResponse{Bullets: prompt.Bulletize(req.Text)})
}

func baseValues(name string) (prompt.Values, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "defaults":
		return prompt.DefaultValues(), nil
	case "empty":
		return prompt.EmptyValues(), nil
	default:
		return prompt.Values{}, fmt.Errorf("unknown base %q", name)
	}
}

// decodeBody reads exactly one JSON object from the request body. An empty
// body decodes as the zero value; anything after the object is rejected.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return http.StatusOK, nil
		}
		return decodeStatus(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return http.StatusBadRequest, errors.New("invalid JSON body: more than one value")
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return decodeStatus(err)
		}
		return http.StatusBadRequest, fmt.Errorf("invalid JSON body: trailing data: %w", err)
	}
	return http.StatusOK, nil
}

func decodeStatus(err error) (int, error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, errors.New("request body too large")
	}
	return http.StatusBadRequest, fmt.Errorf("invalid JSON body: %w", err)
}

func wantsPlainText(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/plain") && !strings.Contains(accept, "application/json")
}
