package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"savoria-api/internal/domain/catalog"
	"savoria-api/internal/domain/offer"
	"savoria-api/internal/domain/order"
	reqdto "savoria-api/internal/handler/dto/request"
	"savoria-api/internal/infra"
	"savoria-api/internal/infra/db"
	"savoria-api/internal/pkg/clock"
	"savoria-api/internal/pkg/errs"
	"savoria-api/internal/usecase/queries"
)

var (
	ErrEmptyCart               = errs.New("cart is empty")
	ErrMenuItemNotFound        = errs.New("menu item not found")
	ErrMenuItemUnavailable     = errs.New("menu item unavailable")
	ErrDuplicateOrder          = errs.New("duplicate order")
	ErrIdempotencyInProgress   = errs.New("idempotency in progress")
	ErrIdempotencyCheckFailed  = errs.New("idempotency check failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type PlaceOrderResult struct {
	Order      *queries.OrderView
	IsReplayed bool
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest, customerID uuid.UUID, idempotencyKey uuid.UUID) (*PlaceOrderResult, error)
}

// orderUseCaseImpl is the order-commit side of the trust boundary: totals
// are recomputed here from freshly loaded menu items and offers at a single
// captured instant. Client-submitted amounts are never read.
type orderUseCaseImpl struct {
	orderRepo       OrderRepository
	idempotencyRepo IdempotencyRepository
	notifRepo       NotificationRepository
	menuStore       queries.MenuReadStore
	offerStore      queries.OfferReadStore
	customerStore   queries.CustomerReadStore
	orderQueries    queries.OrderQueries
	db              TxBeginner
	clock           clock.Clock
}

func NewOrderCommands(
	orderRepo OrderRepository,
	idempotencyRepo IdempotencyRepository,
	notifRepo NotificationRepository,
	menuStore queries.MenuReadStore,
	offerStore queries.OfferReadStore,
	customerStore queries.CustomerReadStore,
	orderQueries queries.OrderQueries,
	db TxBeginner,
	clock clock.Clock,
) OrderCommands {
	return &orderUseCaseImpl{
		orderRepo:       orderRepo,
		idempotencyRepo: idempotencyRepo,
		notifRepo:       notifRepo,
		menuStore:       menuStore,
		offerStore:      offerStore,
		customerStore:   customerStore,
		orderQueries:    orderQueries,
		db:              db,
		clock:           clock,
	}
}

func (u *orderUseCaseImpl) PlaceOrder(
	ctx context.Context,
	req reqdto.PlaceOrderRequest,
	customerID uuid.UUID,
	idempotencyKey uuid.UUID,
) (*PlaceOrderResult, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	requestHash := u.calculateRequestHash(req)
	expiresAt := u.clock.Now().Add(24 * time.Hour)

	existing, err := u.handleIdempotency(ctx, idempotencyKey, customerID, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &PlaceOrderResult{Order: existing, IsReplayed: true}, nil
	}

	orderView, err := u.placeNewOrder(ctx, req, customerID, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &PlaceOrderResult{Order: orderView, IsReplayed: false}, nil
}

// handleIdempotency returns (nil, nil) when the key is ours to process,
// a stored order view on replay, and an error otherwise.
func (u *orderUseCaseImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey, customerID uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.OrderView, error) {
	inserted, err := u.idempotencyRepo.TryInsert(ctx, idempotencyKey, customerID, "POST /orders", requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := u.idempotencyRepo.Get(ctx, idempotencyKey, customerID)
	if err != nil {
		// The record expired or was cleaned up between the claim attempt
		// and the read; the key counts as never seen.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultOrderID != nil {
			return u.orderQueries.GetByID(ctx, *existing.ResultOrderID)
		}
		return nil, errs.New("completed request missing result order ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateOrder
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (u *orderUseCaseImpl) placeNewOrder(
	ctx context.Context,
	req reqdto.PlaceOrderRequest,
	customerID, idempotencyKey uuid.UUID,
) (*queries.OrderView, error) {
	lines, err := u.resolveLines(ctx, req)
	if err != nil {
		return nil, err
	}

	offers, err := u.offerStore.ListActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	profile, err := u.loadProfile(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// One captured instant for the whole evaluation; validity and discount
	// cannot disagree across a window edge within this order.
	placedAt := u.clock.Now()
	totals := order.PriceCart(lines, offers, placedAt, profile)

	return u.executeOrderTransaction(ctx, customerID, totals, placedAt, idempotencyKey)
}

func (u *orderUseCaseImpl) executeOrderTransaction(
	ctx context.Context,
	customerID uuid.UUID,
	totals order.Totals,
	placedAt time.Time,
	idempotencyKey uuid.UUID,
) (*queries.OrderView, error) {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	orderID, err := u.orderRepo.Create(ctx, tx, customerID, totals, placedAt)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if notifErr := u.createNotificationJob(ctx, tx, orderID, placedAt); notifErr != nil {
		return nil, errs.Mark(notifErr, ErrDatabaseOperationFailed)
	}

	responseHash := u.calculateIDHash(orderID)
	if err := u.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, customerID, responseHash, orderID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the stored view, not the in-memory totals.
	orderView, err := u.orderQueries.GetByID(ctx, orderID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return orderView, nil
}

func (u *orderUseCaseImpl) resolveLines(ctx context.Context, req reqdto.PlaceOrderRequest) ([]order.Line, error) {
	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.MenuItemID)
	}

	items, err := u.menuStore.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	byID := make(map[uuid.UUID]catalog.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	lines := make([]order.Line, 0, len(req.Items))
	for _, reqItem := range req.Items {
		item, ok := byID[reqItem.MenuItemID]
		if !ok {
			return nil, ErrMenuItemNotFound
		}
		if !item.Available {
			return nil, ErrMenuItemUnavailable
		}
		lines = append(lines, order.Line{Item: &item, Quantity: reqItem.Quantity})
	}
	return lines, nil
}

func (u *orderUseCaseImpl) loadProfile(ctx context.Context, customerID uuid.UUID) (*offer.Profile, error) {
	profile, err := u.customerStore.FindProfile(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func (u *orderUseCaseImpl) createNotificationJob(ctx context.Context, tx db.DBTX, orderID uuid.UUID, placedAt time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"order_id": orderID,
		"type":     "order_placed",
	})
	if err != nil {
		return err
	}
	return u.notifRepo.CreateJob(ctx, tx, "email", "order_placed", payload, placedAt)
}

func (u *orderUseCaseImpl) calculateRequestHash(req reqdto.PlaceOrderRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (u *orderUseCaseImpl) calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
