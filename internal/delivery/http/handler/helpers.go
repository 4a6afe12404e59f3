package handler

import (
	"net/http"
	"strconv"

	"ehr-backend/internal/delivery/http/middleware"
	"ehr-backend/pkg/response"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}

// decodeQuery fills dst from the URL query string using its schema tags.
func decodeQuery(r *http.Request, dst interface{}) error {
	return queryDecoder.Decode(dst, r.URL.Query())
}

// currentDoctorID reads the doctor set by the auth middleware and writes a
// 401 when it is missing.
func currentDoctorID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	doctorID, ok := middleware.GetDoctorIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return 0, false
	}
	return doctorID, true
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
