package invoice

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"biztime/internal/events"
	"biztime/internal/messaging/kafka"
	"biztime/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeRepo struct {
	listFn     func(ctx context.Context) ([]Invoice, error)
	findFn     func(ctx context.Context, id int64) (*Invoice, error)
	findJoinFn func(ctx context.Context, id int64) (*Invoice, error)
	createFn   func(ctx context.Context, inv *Invoice) error
	updateFn   func(ctx context.Context, inv *Invoice) error
	deleteFn   func(ctx context.Context, id int64) (int64, error)
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }
func (f *fakeRepo) List(ctx context.Context) ([]Invoice, error) {
	return f.listFn(ctx)
}
func (f *fakeRepo) FindByID(ctx context.Context, id int64) (*Invoice, error) {
	return f.findFn(ctx, id)
}
func (f *fakeRepo) FindByIDWithCompany(ctx context.Context, id int64) (*Invoice, error) {
	return f.findJoinFn(ctx, id)
}
func (f *fakeRepo) Create(ctx context.Context, inv *Invoice) error { return f.createFn(ctx, inv) }
func (f *fakeRepo) Update(ctx context.Context, inv *Invoice) error { return f.updateFn(ctx, inv) }
func (f *fakeRepo) Delete(ctx context.Context, id int64) (int64, error) {
	return f.deleteFn(ctx, id)
}

type fakeOutbox struct {
	staged []kafka.OutboxEvent
}

func (f *fakeOutbox) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutbox) Create(ctx context.Context, event *kafka.OutboxEvent) error {
	f.staged = append(f.staged, *event)
	return nil
}
func (f *fakeOutbox) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutbox) MarkSent(ctx context.Context, id string) error           { return nil }
func (f *fakeOutbox) MarkFailed(ctx context.Context, id, reason string) error { return nil }

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock
}

func amtPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool      { return &b }

func TestService_Create(t *testing.T) {
	gdb, mock := newTestDB(t)
	ctx := context.Background()

	var saved *Invoice
	repo := &fakeRepo{
		createFn: func(ctx context.Context, inv *Invoice) error {
			inv.ID = 7
			saved = inv
			return nil
		},
	}
	outbox := &fakeOutbox{}
	svc := NewServiceWithOutbox(gdb, repo, outbox)

	mock.ExpectBegin()
	mock.ExpectCommit()

	resp, err := svc.Create(ctx, CreateInvoiceRequest{CompCode: "apple", Amt: amtPtr(217)})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "apple", resp.CompCode)
	assert.False(t, resp.Paid)
	assert.Nil(t, resp.PaidDate)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), resp.AddDate)
	assert.False(t, saved.Paid)

	if assert.Len(t, outbox.staged, 1) {
		assert.Equal(t, "invoice.created", outbox.staged[0].EventType)
		assert.Equal(t, events.InvoiceCreatedTopic, outbox.staged[0].Topic)
		assert.Equal(t, "7", outbox.staged[0].AggregateID)

		var payload events.InvoiceCreatedEvent
		assert.NoError(t, json.Unmarshal(outbox.staged[0].Payload, &payload))
		assert.Equal(t, 217.0, payload.Amt)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Create_ZeroAmount(t *testing.T) {
	gdb, mock := newTestDB(t)
	ctx := context.Background()

	repo := &fakeRepo{
		createFn: func(ctx context.Context, inv *Invoice) error {
			inv.ID = 1
			return nil
		},
	}
	svc := NewService(gdb, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()

	// a zero amount is a legitimate invoice, not a missing field
	resp, err := svc.Create(ctx, CreateInvoiceRequest{CompCode: "apple", Amt: amtPtr(0)})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, resp.Amt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Update_PaidTransitions(t *testing.T) {
	gdb, mock := newTestDB(t)
	ctx := context.Background()

	stored := Invoice{
		ID: 5, CompCode: "apple", Amt: 100, Paid: false,
		AddDate: time.Now().UTC(),
	}
	repo := &fakeRepo{
		findFn: func(ctx context.Context, id int64) (*Invoice, error) {
			cp := stored
			return &cp, nil
		},
		updateFn: func(ctx context.Context, inv *Invoice) error {
			stored = *inv
			return nil
		},
	}
	outbox := &fakeOutbox{}
	svc := NewServiceWithOutbox(gdb, repo, outbox)

	// unpaid -> paid sets paid_date and stages the paid event
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err := svc.Update(ctx, 5, UpdateInvoiceRequest{Amt: amtPtr(150), Paid: boolPtr(true)})
	assert.NoError(t, err)
	assert.True(t, resp.Paid)
	assert.NotNil(t, resp.PaidDate)
	assert.True(t, stored.Paid)
	assert.NotNil(t, stored.PaidDate)
	if assert.Len(t, outbox.staged, 1) {
		assert.Equal(t, "invoice.paid", outbox.staged[0].EventType)
		assert.Equal(t, events.InvoicePaidTopic, outbox.staged[0].Topic)
	}

	// paid -> unpaid clears paid_date, no event
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err = svc.Update(ctx, 5, UpdateInvoiceRequest{Amt: amtPtr(150), Paid: boolPtr(false)})
	assert.NoError(t, err)
	assert.False(t, resp.Paid)
	assert.Nil(t, resp.PaidDate)
	assert.Nil(t, stored.PaidDate)
	assert.Len(t, outbox.staged, 1)

	// paid flag untouched leaves paid_date alone
	mock.ExpectBegin()
	mock.ExpectCommit()
	resp, err = svc.Update(ctx, 5, UpdateInvoiceRequest{Amt: amtPtr(99)})
	assert.NoError(t, err)
	assert.Equal(t, 99.0, resp.Amt)
	assert.False(t, resp.Paid)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Update_NotFound(t *testing.T) {
	gdb, mock := newTestDB(t)
	ctx := context.Background()

	repo := &fakeRepo{
		findFn: func(ctx context.Context, id int64) (*Invoice, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(gdb, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Update(ctx, 42, UpdateInvoiceRequest{Amt: amtPtr(10)})

	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_Get(t *testing.T) {
	gdb, _ := newTestDB(t)
	ctx := context.Background()

	t.Run("Joins the owning company", func(t *testing.T) {
		paidAt := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		repo := &fakeRepo{
			findJoinFn: func(ctx context.Context, id int64) (*Invoice, error) {
				inv := &Invoice{
					ID: 3, CompCode: "apple", Amt: 300, Paid: true,
					AddDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), PaidDate: &paidAt,
				}
				inv.Company.Code = "apple"
				inv.Company.Name = "Apple"
				inv.Company.Description = "Alphabet"
				return inv, nil
			},
		}
		svc := NewService(gdb, repo)

		detail, err := svc.Get(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, "2026-01-15", detail.AddDate)
		assert.Equal(t, "2026-02-01", *detail.PaidDate)
		assert.Equal(t, "Apple", detail.Company.Name)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := &fakeRepo{
			findJoinFn: func(ctx context.Context, id int64) (*Invoice, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		svc := NewService(gdb, repo)

		_, err := svc.Get(ctx, 0)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
		assert.Equal(t, "Can't find invoice with id: 0", appErr.Message)
	})
}

func TestService_Delete(t *testing.T) {
	gdb, _ := newTestDB(t)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := &fakeRepo{
			deleteFn: func(ctx context.Context, id int64) (int64, error) { return 1, nil },
		}
		assert.NoError(t, NewService(gdb, repo).Delete(ctx, 5))
	})

	t.Run("No rows means 404", func(t *testing.T) {
		repo := &fakeRepo{
			deleteFn: func(ctx context.Context, id int64) (int64, error) { return 0, nil },
		}
		err := NewService(gdb, repo).Delete(ctx, 42)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	})
}

func TestService_List(t *testing.T) {
	gdb, _ := newTestDB(t)
	ctx := context.Background()

	repo := &fakeRepo{
		listFn: func(ctx context.Context) ([]Invoice, error) {
			return []Invoice{
				{ID: 1, CompCode: "apple", Amt: 100, AddDate: time.Now().UTC()},
			}, nil
		},
	}
	svc := NewService(gdb, repo)

	rows, err := svc.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Nil(t, rows[0].PaidDate)
}
