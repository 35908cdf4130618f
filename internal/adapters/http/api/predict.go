package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/okian/footrisk/internal/adapters/predictor"
	"github.com/okian/footrisk/internal/domain/prediction"
)

const maxUploadBytes = 32 << 20

// Predictor submits prediction requests to the remote service.
type Predictor interface {
	Predict(ctx context.Context, req *prediction.Request) (*prediction.Response, error)
}

// predictHandler relays form uploads to the prediction service. The "request"
// field carries the JSON request and every "images" file is appended to
// foot_images as a data URI.
type predictHandler struct {
	client Predictor
}

// HandlePredict handles POST /predict.
func (h *predictHandler) HandlePredict(w http.ResponseWriter, r *http.Request) {
	const op = "predict"
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind(op, ErrMethod))
		return
	}
	if h.client == nil {
		writeError(w, http.StatusServiceUnavailable, "not_configured", NewKind(op, ErrNotImplemented))
		return
	}

	req, files, err := readPredictForm(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	images, err := predictor.ProcessImages(r.Context(), files)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_image", WrapKind(op, ErrBadRequest, err))
		return
	}
	req.FootImages = append(req.FootImages, images...)

	resp, err := h.client.Predict(r.Context(), req)
	if err != nil {
		var rfe *predictor.RequestFailedError
		if errors.As(err, &rfe) && rfe.StatusCode != 0 {
			writeJSON(w, http.StatusBadGateway, errorResponse{Code: "upstream_error", Message: rfe.Message})
			return
		}
		writeError(w, http.StatusBadGateway, "upstream_error", WrapKind(op, ErrUpstream, err))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// readPredictForm accepts either a JSON body or a multipart form.
func readPredictForm(r *http.Request) (*prediction.Request, []predictor.ImageFile, error) {
	req := &prediction.Request{}
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		if err := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes)).Decode(req); err != nil {
			return nil, nil, err
		}
		return req, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, nil, err
	}
	if raw := r.FormValue("request"); raw != "" {
		if err := json.Unmarshal([]byte(raw), req); err != nil {
			return nil, nil, err
		}
	}
	if id := r.FormValue("patient_id"); id != "" {
		req.PatientID = id
	}
	return req, uploadedImages(r.MultipartForm), nil
}

func uploadedImages(form *multipart.Form) []predictor.ImageFile {
	if form == nil {
		return nil
	}
	headers := form.File["images"]
	files := make([]predictor.ImageFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, predictor.UploadedFile(fh))
	}
	return files
}
