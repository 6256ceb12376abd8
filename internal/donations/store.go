package donations

import (
	"context"
	"fmt"
	"time"

	"ecowaste_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
)

// Store is the append-only donation ledger.
type Store interface {
	Create(ctx context.Context, donation *models.Donation) error
	ListForUser(ctx context.Context, userID string) ([]models.Donation, error)
}

// ScyllaStore keeps donations in the orders keyspace:
//
//	CREATE TABLE donations (
//	    user_id     text,
//	    created_at  timestamp,
//	    donation_id text,
//	    amount      double,
//	    message     text,
//	    PRIMARY KEY ((user_id), created_at, donation_id)
//	) WITH CLUSTERING ORDER BY (created_at DESC, donation_id ASC);
type ScyllaStore struct {
	session *gocql.Session
}

func NewScyllaStore(session *gocql.Session) *ScyllaStore {
	return &ScyllaStore{session: session}
}

func (s *ScyllaStore) Create(ctx context.Context, donation *models.Donation) error {
	if donation.DonationID == "" {
		donation.DonationID = uuid.NewString()
	}
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = time.Now().UTC()
	}

	err := s.session.Query(`INSERT INTO donations (user_id, created_at, donation_id, amount, message)
	                        VALUES (?, ?, ?, ?, ?)`,
		donation.UserID, donation.CreatedAt, donation.DonationID, donation.Amount, donation.Message).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("insert donation: %w", err)
	}
	return nil
}

func (s *ScyllaStore) ListForUser(ctx context.Context, userID string) ([]models.Donation, error) {
	iter := s.session.Query(`SELECT created_at, donation_id, amount, message
	                         FROM donations WHERE user_id = ?`, userID).
		WithContext(ctx).Iter()

	var out []models.Donation
	var (
		createdAt time.Time
		id        string
		amount    float64
		message   string
	)
	for iter.Scan(&createdAt, &id, &amount, &message) {
		out = append(out, models.Donation{
			DonationID: id,
			UserID:     userID,
			Amount:     amount,
			Message:    message,
			CreatedAt:  createdAt,
		})
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return out, nil
}
