package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/agroconnect/internal/api/middleware"
	"github.com/aaravmahajanofficial/agroconnect/internal/errors"
	"github.com/aaravmahajanofficial/agroconnect/internal/models"
)

// requireCaller returns the authenticated caller or an UnauthorizedError.
func requireCaller(r *http.Request) (*models.Caller, error) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		return nil, errors.UnauthorizedError("Authentication required")
	}

	return caller, nil
}

func versionETag(version int64) string {
	return `"` + strconv.FormatInt(version, 10) + `"`
}

// parseIfMatch reads the version a client observed from If-Match.
// An absent header or "*" means no precondition.
func parseIfMatch(r *http.Request) (*int64, error) {
	raw := strings.TrimSpace(r.Header.Get("If-Match"))
	if raw == "" || raw == "*" {
		return nil, nil
	}

	raw = strings.TrimPrefix(raw, "W/")

	version, err := strconv.ParseInt(strings.Trim(raw, `"`), 10, 64)
	if err != nil || version < 1 {
		return nil, errors.BadRequestError("Invalid If-Match header").WithDetail("expected the quoted commodity version")
	}

	return &version, nil
}

func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}

	return n
}
