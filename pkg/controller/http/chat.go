package http

import (
	"encoding/json"
	"net/http"

	"github.com/secmon-lab/inkwell/pkg/usecase"
)

func chatHandler(uc *usecase.ChatUseCase) http.HandlerFunc {
	type request struct {
		Message string `json:"message"`
	}
	type response struct {
		Reply string `json:"reply"`
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

		reply, err := uc.Ask(r.Context(), userID, req.Message)
		if err != nil {
			handleUseCaseError(w, r, err)
			return
		}

		respondJSON(w, http.StatusOK, response{Reply: reply})
	}
}
