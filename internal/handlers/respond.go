package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gleamgallery/internal/services"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, code int, errorCode, message string) {
	respondWithJSON(w, code, map[string]string{
		"error":   errorCode,
		"message": message,
	})
}

// formFields collects the named values from a urlencoded or multipart
// form submission.
func formFields(r *http.Request, keys ...string) map[string]string {
	fields := make(map[string]string, len(keys))
	for _, key := range keys {
		fields[key] = r.FormValue(key)
	}
	return fields
}

// uploadedImageURL converts an optional "imageFile" upload into an
// embedded data URL. A submission without a file (or without a
// multipart body at all) returns "" with no error.
func uploadedImageURL(r *http.Request) (string, error) {
	file, header, err := r.FormFile("imageFile")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", services.ErrImageProcess
	}
	defer file.Close()

	return services.ProcessImageUpload(file, header)
}

// isJSONRequest reports whether the client submitted a JSON body rather
// than form fields.
func isJSONRequest(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}
