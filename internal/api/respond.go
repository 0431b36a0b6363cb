package api

import (
	"encoding/json"
	"net/http"

	bkerrors "github.com/edenso/boardkit/pkg/errors"
)

// errorBody is the JSON shape of all error responses.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// statusForCode maps an error code to an HTTP status.
func statusForCode(code bkerrors.Code) int {
	switch code {
	case bkerrors.ErrCodeInvalidInput, bkerrors.ErrCodeInvalidBoard,
		bkerrors.ErrCodeInvalidNode, bkerrors.ErrCodeInvalidMode:
		return http.StatusBadRequest
	case bkerrors.ErrCodeUnauthorized, bkerrors.ErrCodeSessionExpired:
		return http.StatusUnauthorized
	case bkerrors.ErrCodeForbidden:
		return http.StatusForbidden
	case bkerrors.ErrCodeNotFound, bkerrors.ErrCodeBoardNotFound,
		bkerrors.ErrCodeNodeNotFound:
		return http.StatusNotFound
	case bkerrors.ErrCodeStorage:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes err as a JSON error response. The status and code come
// from the error's code; the message is the user-facing message, never the
// wrapped cause.
func writeError(w http.ResponseWriter, err error) {
	var body errorBody
	body.Error.Code = string(bkerrors.GetCode(err))
	body.Error.Message = bkerrors.UserMessage(err)
	writeJSON(w, statusForCode(bkerrors.GetCode(err)), body)
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return bkerrors.Wrap(bkerrors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}
