package invoice

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"biztime/internal/events"
	invoiceerrors "biztime/internal/invoice/errors"
	"biztime/internal/messaging/kafka"
	"biztime/internal/shared/contextutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/invoice_service_mock.go -package=mock . Service
type Service interface {
	List(ctx context.Context) ([]InvoiceResponse, error)
	Get(ctx context.Context, id int64) (*InvoiceDetail, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error)
	Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (*InvoiceResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
}

func NewService(db *gorm.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

// NewServiceWithOutbox stages lifecycle events in the same transaction
// as the invoice write.
func NewServiceWithOutbox(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outbox: outbox}
}

func (s *service) List(ctx context.Context) ([]InvoiceResponse, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]InvoiceResponse, len(rows))
	for i, inv := range rows {
		res[i] = mapToResponse(inv)
	}
	return res, nil
}

func (s *service) Get(ctx context.Context, id int64) (*InvoiceDetail, error) {
	inv, err := s.repo.FindByIDWithCompany(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, invoiceerrors.NotFound(strconv.FormatInt(id, 10))
		}
		return nil, err
	}

	resp := mapToResponse(*inv)
	return &InvoiceDetail{
		ID:       resp.ID,
		CompCode: resp.CompCode,
		Amt:      resp.Amt,
		Paid:     resp.Paid,
		AddDate:  resp.AddDate,
		PaidDate: resp.PaidDate,
		Company: CompanySummary{
			Code:        inv.Company.Code,
			Name:        inv.Company.Name,
			Description: inv.Company.Description,
		},
	}, nil
}

func (s *service) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	inv := &Invoice{
		CompCode: req.CompCode,
		Amt:      *req.Amt,
		Paid:     false,
		AddDate:  time.Now().UTC(),
		PaidDate: nil,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		if err := qtx.Create(ctx, inv); err != nil {
			return err
		}
		return s.stageEvent(ctx, tx, "invoice.created", events.InvoiceCreatedTopic,
			inv.ID, events.InvoiceCreatedEvent{
				EventType:  "invoice.created",
				InvoiceID:  inv.ID,
				CompCode:   inv.CompCode,
				Amt:        inv.Amt,
				OccurredAt: time.Now().UTC(),
			})
	})
	if err != nil {
		return nil, err
	}

	resp := mapToResponse(*inv)
	return &resp, nil
}

// Update adjusts amt and, when paid flips, maintains paid_date inside
// the same transaction as the read so concurrent flips cannot interleave.
func (s *service) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	var inv *Invoice

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		inv, err = qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return invoiceerrors.NotFound(strconv.FormatInt(id, 10))
			}
			return err
		}

		inv.Amt = *req.Amt

		becamePaid := false
		if req.Paid != nil && *req.Paid != inv.Paid {
			if *req.Paid {
				now := time.Now().UTC()
				inv.PaidDate = &now
				becamePaid = true
			} else {
				inv.PaidDate = nil
			}
			inv.Paid = *req.Paid
		}

		if err := qtx.Update(ctx, inv); err != nil {
			return err
		}

		if becamePaid {
			return s.stageEvent(ctx, tx, "invoice.paid", events.InvoicePaidTopic,
				inv.ID, events.InvoicePaidEvent{
					EventType:  "invoice.paid",
					InvoiceID:  inv.ID,
					CompCode:   inv.CompCode,
					Amt:        inv.Amt,
					PaidAt:     *inv.PaidDate,
					OccurredAt: time.Now().UTC(),
				})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := mapToResponse(*inv)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return invoiceerrors.NotFound(strconv.FormatInt(id, 10))
	}
	return nil
}

func (s *service) stageEvent(
	ctx context.Context,
	tx *gorm.DB,
	eventType, topic string,
	invoiceID int64,
	payload any,
) error {
	if s.outbox == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, &kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "invoice",
		AggregateID:   strconv.FormatInt(invoiceID, 10),
		EventType:     eventType,
		Topic:         topic,
		Payload:       body,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(inv Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format("2006-01-02"),
	}
	if inv.PaidDate != nil {
		pd := inv.PaidDate.Format("2006-01-02")
		resp.PaidDate = &pd
	}
	return resp
}
