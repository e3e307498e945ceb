package httpserver

import (
	"fmt"
	"io"
	"net/http"

	"github.com/orientwatch/backend/internal/domain"
	"github.com/orientwatch/backend/internal/usecase"
)

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	// Hard cap above the validator's limit so oversized bodies fail fast
	// instead of buffering unbounded.
	r.Body = http.MaxBytesReader(w, r.Body, usecase.MaxUploadSize+(1<<20))

	if err := r.ParseMultipartForm(usecase.MaxUploadSize); err != nil {
		writeError(w, fmt.Errorf("%w: multipart body too large or malformed", domain.ErrTooLarge))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, fmt.Errorf("%w: missing file field", domain.ErrInvalidInput))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.uploads.Store(r.Context(), header.Filename, data)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
