package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/inkwell/pkg/domain/model"
	"github.com/secmon-lab/inkwell/pkg/domain/model/auth"
	"github.com/secmon-lab/inkwell/pkg/domain/types"
	"github.com/secmon-lab/inkwell/pkg/usecase"
	"github.com/secmon-lab/inkwell/pkg/utils/errutil"
)

type imagePayload struct {
	Data     string `json:"data"`
	Name     string `json:"name,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// decode accepts raw base64 or a data URL. A data URL's media type wins over
// an explicit mimeType field.
func (p imagePayload) decode() (model.Image, error) {
	raw := p.Data
	mimeType := p.MimeType

	if rest, ok := strings.CutPrefix(raw, "data:"); ok {
		meta, b64, found := strings.Cut(rest, ",")
		if !found {
			return model.Image{}, goerr.New("malformed data URL", goerr.V("name", p.Name))
		}
		mimeType = strings.TrimSuffix(meta, ";base64")
		raw = b64
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return model.Image{}, goerr.Wrap(err, "failed to decode image data", goerr.V("name", p.Name))
	}

	return model.Image{
		Data:     data,
		MimeType: mimeType,
		Name:     p.Name,
	}, nil
}

func decodeImages(payloads []imagePayload) ([]model.Image, error) {
	images := make([]model.Image, 0, len(payloads))
	for _, p := range payloads {
		img, err := p.decode()
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func requestUser(w http.ResponseWriter, r *http.Request) (types.UserID, bool) {
	userID, ok := auth.UserFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Authentication required")
	}
	return userID, ok
}

// handleUseCaseError maps use case sentinels to HTTP statuses. Anything
// unmapped is a server fault and goes through errutil for logging and
// reporting.
func handleUseCaseError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, usecase.ErrNoteNotFound):
		respondError(w, http.StatusNotFound, "Note not found")
	case errors.Is(err, usecase.ErrEmptyNote),
		errors.Is(err, usecase.ErrEmptyMessage),
		errors.Is(err, usecase.ErrMissingNoteID):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrNotConfigured):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
	}
}

func createNoteHandler(uc *usecase.NoteUseCase) http.HandlerFunc {
	type request struct {
		Text    string         `json:"text,omitempty"`
		Image   *imagePayload  `json:"image,omitempty"`
		Images  []imagePayload `json:"images,omitempty"`
		Context string         `json:"context,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUser(w, r)
		if !ok {
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON body.")
			return
		}

		payloads := req.Images
		if req.Image != nil {
			payloads = append(payloads, *req.Image)
		}

		var note *model.Note
		var err error
		switch {
		case len(payloads) > 0:
			var images []model.Image
			if images, err = decodeImages(payloads); err != nil {
				respondError(w, http.StatusBadRequest, "Invalid image data.")
				return
			}
			note, err = uc.IngestImages(r.Context(), userID, images, req.Context)
		case req.Text != "":
			note, err = uc.CreateFromText(r.Context(), userID, req.Text)
		default:
			respondError(w, http.StatusBadRequest, "Note text or image is required.")
			return
		}
		if err != nil {
			handleUseCaseError(w, r, err)
			return
		}

		respondJSON(w, http.StatusCreated, note)
	}
}

func appendChunkHandler(uc *usecase.NoteUseCase) http.HandlerFunc {
	type request struct {
		Images     []imagePayload `json:"images"`
		PartIndex  int            `json:"partIndex"`
		TotalParts int            `json:"totalParts"`
		Context    string         `json:"context,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUser(w, r)
		if !ok {
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON body.")
			return
		}

		images, err := decodeImages(req.Images)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid image data.")
			return
		}

		note, err := uc.AppendChunk(r.Context(), userID, model.Chunk{
			Images:      images,
			PartIndex:   req.PartIndex,
			TotalParts:  req.TotalParts,
			NoteID:      types.NoteID(chi.URLParam(r, "noteID")),
			ContextHint: req.Context,
		})
		if err != nil {
			handleUseCaseError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, note)
	}
}

func listNotesHandler(uc *usecase.NoteUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUser(w, r)
		if !ok {
			return
		}

		notes, err := uc.List(r.Context(), userID)
		if err != nil {
			handleUseCaseError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, notes)
	}
}

func getNoteHandler(uc *usecase.NoteUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUser(w, r)
		if !ok {
			return
		}

		note, err := uc.Get(r.Context(), userID, types.NoteID(chi.URLParam(r, "noteID")))
		if err != nil {
			handleUseCaseError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, note)
	}
}

func editNoteHandler(uc *usecase.NoteUseCase) http.HandlerFunc {
	type request struct {
		Title      *string        `json:"title,omitempty"`
		Content    *string        `json:"content,omitempty"`
		Summary    *string        `json:"summary,omitempty"`
		Categories []string       `json:"categories,omitempty"`
		Images     []imagePayload `json:"images,omitempty"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUser(w, r)
		if !ok {
			return
		}

		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid JSON body.")
			return
		}

		images, err := decodeImages(req.Images)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid image data.")
			return
		}

		note, err := uc.Edit(r.Context(), userID, types.NoteID(chi.URLParam(r, "noteID")), usecase.EditInput{
			Title:      req.Title,
			Content:    req.Content,
			Summary:    req.Summary,
			Categories: req.Categories,
			Images:     images,
		})
		if err != nil {
			handleUseCaseError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, note)
	}
}

func deleteNoteHandler(uc *usecase.NoteUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUser(w, r)
		if !ok {
			return
		}

		id := types.NoteID(chi.URLParam(r, "noteID"))
		if err := uc.Delete(r.Context(), userID, id); err != nil {
			handleUseCaseError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
	}
}

func categoriesHandler(uc *usecase.NoteUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requestUser(w, r)
		if !ok {
			return
		}

		respondJSON(w, http.StatusOK, map[string][]string{
			"categories": uc.Categories(r.Context(), userID),
		})
	}
}
