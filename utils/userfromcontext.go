package utils

import (
	"net/http"

	"stagelink/globals"
)

// GetUserIDFromRequest returns the authenticated user id, or "" when the
// request carried no valid identity.
func GetUserIDFromRequest(r *http.Request) string {
	userID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok {
		return ""
	}
	return userID
}
