package bulkload

import (
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/storefront-labs/olist-api/pkg/handlers"
)

// UploadHandler builds an HTTP handler that feeds an uploaded CSV through
// the loader. The file arrives either as a multipart form field named
// "file" or as the raw request body; both are capped at maxBytes.
func UploadHandler[T any](loader *Loader[T], logger *slog.Logger, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		source, err := uploadSource(r)
		if err != nil {
			handlers.RespondError(w, logger, http.StatusBadRequest, err)
			return
		}
		defer source.Close()

		report, err := loader.Load(r.Context(), source)
		if err != nil {
			handlers.RespondError(w, logger, http.StatusInternalServerError, err)
			return
		}

		handlers.RespondJSON(w, http.StatusOK, report)
	}
}

func uploadSource(r *http.Request) (io.ReadCloser, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, nil
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	return file, nil
}
