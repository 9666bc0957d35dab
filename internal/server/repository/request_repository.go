package repository

import (
	"context"
	"time"

	"github.com/gocql/gocql"

	"github.com/loopcard/loyalty-backend/internal/server/repository/queries"
	"github.com/loopcard/loyalty-backend/pkg/database"
	"github.com/loopcard/loyalty-backend/pkg/types"
)

type RequestRepository interface {
	CreateRequest(ctx context.Context, requestType string, userID gocql.UUID, amount int64) (*types.Request, error)
	GetByID(ctx context.Context, id gocql.UUID) (*types.Request, error)
	ListPendingByType(ctx context.Context, requestType string) ([]types.Request, error)
	CountPendingByType(ctx context.Context, requestType string) (int64, error)
	UpdateStatus(ctx context.Context, id gocql.UUID, status string) error
}

type requestRepository struct {
	db *database.Connection
}

func NewRequestRepository(db *database.Connection) RequestRepository {
	return &requestRepository{
		db: db,
	}
}

func (r *requestRepository) CreateRequest(ctx context.Context, requestType string, userID gocql.UUID, amount int64) (*types.Request, error) {
	request := &types.Request{
		RequestID: gocql.TimeUUID(),
		Type:      requestType,
		UserID:    userID,
		Amount:    amount,
		Status:    types.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	err := r.db.NewQuery(queries.CreateRequestQuery,
		request.RequestID, request.Type, request.UserID,
		request.Amount, request.Status, request.CreatedAt,
	).WithContext(ctx).Idempotent().Exec()
	if err != nil {
		return nil, err
	}
	return request, nil
}

func (r *requestRepository) GetByID(ctx context.Context, id gocql.UUID) (*types.Request, error) {
	var request types.Request
	err := r.db.NewQuery(queries.GetRequestByIDQuery, id).WithContext(ctx).Scan(
		&request.RequestID, &request.Type, &request.UserID,
		&request.Amount, &request.Status, &request.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) ListPendingByType(ctx context.Context, requestType string) ([]types.Request, error) {
	iter := r.db.NewQuery(queries.GetPendingRequestsByTypeQuery, types.StatusPending, requestType).
		WithContext(ctx).Iter()

	var requests []types.Request
	var request types.Request
	for iter.Scan(
		&request.RequestID, &request.Type, &request.UserID,
		&request.Amount, &request.Status, &request.CreatedAt,
	) {
		requests = append(requests, request)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) CountPendingByType(ctx context.Context, requestType string) (int64, error) {
	var count int64
	err := r.db.NewQuery(queries.CountPendingRequestsByTypeQuery, types.StatusPending, requestType).
		WithContext(ctx).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *requestRepository) UpdateStatus(ctx context.Context, id gocql.UUID, status string) error {
	return r.db.NewQuery(queries.UpdateRequestStatusQuery, status, id).
		WithContext(ctx).Idempotent().Exec()
}
