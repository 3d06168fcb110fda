package http

import (
	"net/http"

	"flowfinance/service"
)

type NoteHandler struct {
	service *service.NoteService
}

func NewNoteHandler(service *service.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

func (h *NoteHandler) EvaluateNote(w http.ResponseWriter, r *http.Request) {
	calculate(w, r, h.service.EvaluateNote)
}
