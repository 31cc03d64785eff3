package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "burgerqueen/internal/delivery/context"
	"burgerqueen/internal/domain/entity"
	domainerrors "burgerqueen/internal/domain/errors"
	"burgerqueen/internal/domain/repository"
	"burgerqueen/internal/domain/service"
	"burgerqueen/internal/errors"
	"burgerqueen/internal/usecase"
)

// orderService implements the OrderUsecase interface. It is the only place
// that creates orders, and it does so strictly after the payment gateway has
// confirmed the charge.
type orderService struct {
	orderRepo repository.OrderRepository
	foodRepo  repository.FoodRepository
	userRepo  repository.UserRepository
	gateway   service.PaymentGateway
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	FoodRepo  repository.FoodRepository
	UserRepo  repository.UserRepository
	Gateway   service.PaymentGateway `optional:"true"`
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		foodRepo:  params.FoodRepo,
		userRepo:  params.UserRepo,
		gateway:   params.Gateway,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places an order for user. The flow is: validate input, confirm the
// payment with the gateway, snapshot the line items, persist. Creation is
// idempotent on the payment intent: retrying a request whose intent was
// already turned into an order returns that order unchanged.
func (srv *orderService) Create(ctx context.Context, user *entity.User, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if input.Address == "" {
		return nil, domainerrors.ErrValidation.WithMessage("Delivery address is required")
	}
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidation.WithMessage("Order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, domainerrors.ErrValidation.WithMessage("Item quantity must be at least 1")
		}
	}

	details := entity.PaymentDetails{
		CardBrand: input.PaymentDetails.CardBrand,
		CardLast4: input.PaymentDetails.CardLast4,
		Receipt:   input.PaymentDetails.Receipt,
	}

	if srv.gateway != nil {
		if input.PaymentIntentID == "" {
			return nil, domainerrors.ErrPaymentFailed.WithMessage("Missing payment confirmation")
		}

		// Idempotency: an intent that already produced an order is a
		// client retry, not a new purchase. The retry must come from the
		// order's owner; anyone else replaying the intent ID is probing
		// for another user's order.
		existing, err := srv.orderRepo.FindByPaymentIntentID(ctx, input.PaymentIntentID)
		if err == nil {
			if existing.UserID != user.ID {
				srv.log(ctx).Warn("Payment intent replayed by a different user",
					slog.String("intentID", input.PaymentIntentID),
					slog.String("userID", user.ID))
				return nil, domainerrors.ErrPaymentFailed.WithMessage("Payment intent already used")
			}
			srv.log(ctx).Info("Order creation retried for processed intent",
				slog.String("orderID", existing.ID))
			existing.UserEmail = user.Email
			return existing, nil
		}
		if !errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(err, "failed to check payment intent")
		}

		confirmed, err := srv.gateway.RetrieveIntent(ctx, input.PaymentIntentID)
		if err != nil {
			srv.log(ctx).Warn("Payment intent lookup failed",
				slog.String("intentID", input.PaymentIntentID), slog.Any("error", err))
			return nil, domainerrors.ErrPaymentFailed
		}
		if !confirmed.Succeeded {
			return nil, domainerrors.ErrPaymentFailed
		}

		// The gateway's card summary is authoritative over whatever the
		// client reported.
		if confirmed.CardBrand != "" {
			details.CardBrand = confirmed.CardBrand
		}
		if confirmed.CardLast4 != "" {
			details.CardLast4 = confirmed.CardLast4
		}
		if confirmed.Receipt != "" {
			details.Receipt = confirmed.Receipt
		}
	}

	items := make([]entity.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		food, err := srv.foodRepo.FindByID(ctx, line.FoodID)
		if err != nil {
			if errors.Is(err, repository.ErrFoodNotFound) {
				return nil, domainerrors.ErrValidation.WithMessage("Order references an unknown food item")
			}
			return nil, errors.Wrap(err, "failed to resolve food item")
		}

		// Snapshot name, price and image so later catalog edits or
		// deletions never rewrite purchase history.
		items = append(items, entity.OrderItem{
			FoodID:   food.ID,
			Name:     food.Name,
			Price:    food.Price,
			Image:    food.Image,
			Quantity: line.Quantity,
		})
	}

	order := &entity.Order{
		UserID:          user.ID,
		Items:           items,
		Address:         input.Address,
		Payment:         input.Payment,
		PaymentStatus:   entity.PaymentPaid,
		PaymentDetails:  details,
		PaymentIntentID: input.PaymentIntentID,
		Status:          entity.StatusPreparing,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		// Two concurrent retries can both pass the lookup above; the
		// unique index lets exactly one insert win. Return the winner,
		// but only to its owner.
		if input.PaymentIntentID != "" {
			if existing, findErr := srv.orderRepo.FindByPaymentIntentID(ctx, input.PaymentIntentID); findErr == nil {
				if existing.UserID != user.ID {
					return nil, domainerrors.ErrPaymentFailed.WithMessage("Payment intent already used")
				}
				existing.UserEmail = user.Email
				return existing, nil
			}
		}
		return nil, errors.Wrap(err, "failed to persist order")
	}

	srv.log(ctx).Info("Created order",
		slog.String("orderID", order.ID),
		slog.String("userID", user.ID),
		slog.Int("items", len(order.Items)))

	order.UserEmail = user.Email

	return order, nil
}

// ListForUser returns the orders owned by user, newest first.
func (srv *orderService) ListForUser(ctx context.Context, user *entity.User) ([]entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user orders")
	}

	for i := range orders {
		orders[i].UserEmail = user.Email
	}

	return orders, nil
}

// ListAll returns every order, newest first, with each owner resolved to
// their email for the admin view.
func (srv *orderService) ListAll(ctx context.Context) ([]entity.Order, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	ids := make([]string, 0, len(orders))
	seen := make(map[string]struct{}, len(orders))
	for _, order := range orders {
		if _, ok := seen[order.UserID]; ok {
			continue
		}
		seen[order.UserID] = struct{}{}
		ids = append(ids, order.UserID)
	}

	owners, err := srv.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve order owners")
	}

	for i := range orders {
		if owner, ok := owners[orders[i].UserID]; ok {
			orders[i].UserEmail = owner.Email
		}
	}

	return orders, nil
}

// UpdateStatus advances an order's fulfillment status by exactly one step.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID string, status string) (*entity.Order, error) {
	next := entity.FulfillmentStatus(status)
	if !next.Valid() {
		return nil, domainerrors.ErrValidation.WithMessage("Unknown order status")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Order not found")
		}
		return nil, errors.Wrap(err, "failed to load order")
	}

	if !order.Status.CanAdvanceTo(next) {
		return nil, domainerrors.ErrValidation.WithMessage("Illegal order status transition")
	}

	// Conditional write: the filter carries the status we just validated
	// against, so a concurrent update can't push the order backward.
	updated, err := srv.orderRepo.UpdateStatus(ctx, orderID, order.Status, next)
	if err != nil {
		if errors.Is(err, repository.ErrStaleOrderStatus) {
			return nil, domainerrors.ErrValidation.WithMessage("Illegal order status transition")
		}
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrNotFound.WithMessage("Order not found")
		}
		return nil, errors.Wrap(err, "failed to update order status")
	}

	srv.log(ctx).Info("Advanced order status",
		slog.String("orderID", orderID),
		slog.String("from", string(order.Status)),
		slog.String("to", string(next)))

	return updated, nil
}
