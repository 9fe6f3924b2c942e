package middlewares

import (
	"benefits-portal-service/internal/app/services/core/bookings"
	"benefits-portal-service/internal/pkg/constvars"
	"benefits-portal-service/internal/pkg/utils"
	"bytes"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// bufferedResponse holds the handler output until the draft has been persisted, so a
// failed save can still be reported to the client.
type bufferedResponse struct {
	header     http.Header
	body       bytes.Buffer
	statusCode int
}

func newBufferedResponse() *bufferedResponse {
	return &bufferedResponse{header: make(http.Header), statusCode: http.StatusOK}
}

func (b *bufferedResponse) Header() http.Header {
	return b.header
}

func (b *bufferedResponse) Write(p []byte) (int, error) {
	return b.body.Write(p)
}

func (b *bufferedResponse) WriteHeader(code int) {
	b.statusCode = code
}

func (b *bufferedResponse) flushTo(w http.ResponseWriter) {
	for key, values := range b.header {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	w.WriteHeader(b.statusCode)
	w.Write(b.body.Bytes())
}

// BookingDraftScope loads the draft named in the URL into a booking state scoped to
// the request. Handlers mutate the state through bookings.FromContext and the
// snapshot is saved once the handler succeeds.
func (m *Middlewares) BookingDraftScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		draftID := chi.URLParam(r, constvars.URLParamDraftID)

		draft, err := m.BookingDraftUsecase.FindDraft(r.Context(), draftID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		state := bookings.NewStateFromSnapshot(draft.State)
		ctx := bookings.WithState(r.Context(), state)
		ctx = context.WithValue(ctx, constvars.CONTEXT_BOOKING_DRAFT_ID_KEY, draft.ID)

		buffered := newBufferedResponse()
		next.ServeHTTP(buffered, r.WithContext(ctx))

		if buffered.statusCode < 400 {
			err = m.BookingDraftUsecase.SaveDraft(ctx, draft.ID, state.Snapshot())
			if err != nil {
				m.Log.Error("BookingDraftScope error saving draft",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingDraftIDKey, draft.ID),
					zap.Error(err),
				)
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}
		}

		buffered.flushTo(w)
	})
}
