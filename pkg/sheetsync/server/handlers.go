package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/hokuto3/sheetsync-go/pkg/sheetsync/models"
)

// Plain-text response bodies. Success responses are terse; failure
// responses deliberately do not leak backend error detail.
const (
	msgNoUpdate = "No update needed; data is already synchronized."
	msgComplete = "Completed"
	msgInternal = "Internal error"
)

// HandleSync runs one synchronization from a JSON request body.
func (s *Server) HandleSync(w http.ResponseWriter, r *http.Request) {
	var req models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad request: invalid JSON body", http.StatusBadRequest)
		return
	}

	res, err := s.syncer.Sync(r.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrMissingIdentifier) {
			http.Error(w, fmt.Sprintf("Bad request: %v", err), http.StatusBadRequest)
			return
		}
		s.log.Errorw("sync failed",
			"request_id", w.Header().Get("X-Request-Id"),
			"origin", req.OriginSpreadsheetID,
			"destination", req.DestinationSpreadsheetID,
			"error", err,
		)
		http.Error(w, msgInternal, http.StatusInternalServerError)
		return
	}

	if res.Strategy == models.StrategySkip {
		fmt.Fprint(w, msgNoUpdate)
		return
	}
	fmt.Fprint(w, msgComplete)
}
