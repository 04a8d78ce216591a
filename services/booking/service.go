package booking

import (
	"context"

	"barberly/models"

	"go.uber.org/zap"
)

// SessionCreator is the collaborator that persists a session request.
// The API client satisfies it.
type SessionCreator interface {
	CreateSession(ctx context.Context, req *models.SessionRequest) (*models.SessionResponse, error)
}

// IntentService turns the booking form selections into a session request
// and submits it.
type IntentService interface {
	Submit(ctx context.Context, barber *models.Barber, user *models.User, draft *models.BookingDraft) (*models.SessionResponse, error)
}

// DefaultIntentService is the production IntentService.
type DefaultIntentService struct {
	API    SessionCreator
	Logger *zap.Logger
}

// Submit validates the draft, derives the session request, and sends it.
// Validation failures return before any network call. Transport failures
// leave the draft intact; there is no retry.
func (s *DefaultIntentService) Submit(ctx context.Context, barber *models.Barber, user *models.User, draft *models.BookingDraft) (*models.SessionResponse, error) {
	req, err := BuildSessionRequest(barber, user, draft)
	if err != nil {
		return nil, err
	}

	resp, err := s.API.CreateSession(ctx, req)
	if err != nil {
		s.Logger.Error("failed to create session",
			zap.String("barberID", barber.ID),
			zap.Error(err),
		)
		return nil, NewSubmissionError("error creating booking, please try again", err)
	}

	s.Logger.Info("session created",
		zap.String("sessionID", resp.SessionID),
		zap.String("barberID", barber.ID),
		zap.Int64("appointmentTime", req.Time),
	)
	return resp, nil
}
