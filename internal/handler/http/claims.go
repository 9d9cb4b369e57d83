package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/unolo/fieldtrack-backend-go/internal/domain/auth"
)

// callerID extracts the authenticated user's id from the verified token.
// Services never read claims themselves; identity crosses the service
// boundary as an explicit argument.
func callerID(r *http.Request) (string, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", auth.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}

	return userID, nil
}
