package services

import (
	"context"
	"petshop_server/database"
	"petshop_server/lib"
	"petshop_server/structs"
	"petshop_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type CustomerService struct {
	logger      *gecho.Logger
	cfg         *structs.Config
	db          *database.DB
	authService *AuthService
}

func NewCustomerService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, authService *AuthService) *CustomerService {
	return &CustomerService{
		logger:      logger,
		cfg:         cfg,
		db:          db,
		authService: authService,
	}
}

func (cs *CustomerService) GetCustomerByUserId(ctx context.Context, userId uuid.UUID) (*tables.Customer, error) {
	customer, err := database.Query[tables.Customer](cs.db).
		Where("c.user_id", userId).
		With("User").
		With("LoyaltyCard").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if customer == nil {
		return nil, lib.ErrUnknownCustomer
	}
	return customer, nil
}

func (cs *CustomerService) GetCustomerByEmail(ctx context.Context, email string) (*tables.Customer, error) {
	customer, err := database.Query[tables.Customer](cs.db).
		WhereRaw("c.user_id = (SELECT id FROM users WHERE email = ?)", email).
		With("LoyaltyCard").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if customer == nil {
		return nil, lib.ErrUnknownCustomer
	}
	return customer, nil
}

func (cs *CustomerService) GetEmployeeByUserId(ctx context.Context, userId uuid.UUID) (*tables.Employee, error) {
	employee, err := database.Query[tables.Employee](cs.db).
		Where("e.user_id", userId).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if employee == nil {
		return nil, lib.ErrNotFound
	}
	return employee, nil
}

// DiscountFor derives the customer's current loyalty discount. No card
// means no discount.
func (cs *CustomerService) DiscountFor(customer *tables.Customer) int {
	if customer == nil || customer.LoyaltyCard == nil {
		return 0
	}
	return LoyaltyDiscount(customer.LoyaltyCard.IssuedAt, time.Now())
}

// Profile assembles the customer-facing view, loyalty discount included
func (cs *CustomerService) Profile(ctx context.Context, userId uuid.UUID) (*structs.CustomerProfile, error) {
	customer, err := cs.GetCustomerByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}

	profile := &structs.CustomerProfile{
		ID:          customer.Id,
		FirstName:   customer.FirstName,
		LastName:    customer.LastName,
		Phone:       customer.Phone,
		Street:      customer.Street,
		StreetNo:    customer.StreetNo,
		City:        customer.City,
		County:      customer.County,
		DiscountPct: cs.DiscountFor(customer),
	}
	if customer.User != nil {
		profile.Email = customer.User.Email
	}
	// Member since the loyalty card was issued or the first order was
	// placed, whichever came first.
	var memberSince *time.Time
	if customer.LoyaltyCard != nil {
		issued := customer.LoyaltyCard.IssuedAt
		memberSince = &issued
	}

	firstOrder, err := database.RawQueryOne[struct {
		OrderedAt time.Time `bun:"ordered_at"`
	}](cs.db.DB, ctx, `
		SELECT ordered_at FROM orders
		WHERE customer_id = ?
		ORDER BY ordered_at ASC
		LIMIT 1`, customer.Id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if firstOrder != nil && (memberSince == nil || firstOrder.OrderedAt.Before(*memberSince)) {
		memberSince = &firstOrder.OrderedAt
	}
	profile.MemberSince = memberSince

	return profile, nil
}

func (cs *CustomerService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *structs.ProfileUpdateRequest) error {
	customer, err := cs.GetCustomerByUserId(ctx, userId)
	if err != nil {
		return err
	}

	updates := map[string]any{
		"first_name": req.FirstName,
		"last_name":  req.LastName,
		"street":     req.Street,
		"street_no":  req.StreetNo,
		"city":       req.City,
		"county":     req.County,
	}

	if _, err := database.UpdateByID[tables.Customer](cs.db, ctx, customer.Id, updates); err != nil {
		return lib.MapPgError(err)
	}

	if req.Password != "" {
		if req.Password != req.PasswordConfirm {
			return lib.ErrInvalidCredentials
		}
		hash, err := cs.authService.HashPassword(req.Password, DefaultParams)
		if err != nil {
			return err
		}
		if _, err := database.UpdateByID[tables.User](cs.db, ctx, userId, map[string]any{"password_hash": hash}); err != nil {
			return lib.MapPgError(err)
		}
	}

	cs.logger.Info("Customer profile updated", gecho.Field("customer_id", customer.Id))
	return nil
}

// ListCustomers returns the back-office roster with per-customer order counts
func (cs *CustomerService) ListCustomers(ctx context.Context) ([]structs.CustomerListing, error) {
	rows, err := database.RawQuery[structs.CustomerListing](cs.db.DB, ctx, `
		SELECT c.id,
		       c.first_name || ' ' || c.last_name AS name,
		       u.email,
		       c.phone,
		       c.city,
		       lc.issued_at AS member_since,
		       COUNT(o.id) AS order_count
		FROM customers c
		JOIN users u ON u.id = c.user_id
		LEFT JOIN loyalty_cards lc ON lc.customer_id = c.id
		LEFT JOIN orders o ON o.customer_id = c.id
		GROUP BY c.id, c.first_name, c.last_name, u.email, c.phone, c.city, lc.issued_at
		ORDER BY name ASC`)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return rows, nil
}

// DeleteCustomer removes the customer, the loyalty card and the account.
// Orders are kept; history outlives the relationship.
func (cs *CustomerService) DeleteCustomer(ctx context.Context, customerId uuid.UUID) error {
	return database.Transaction(ctx, func(tx bun.Tx) error {
		customer, err := database.QueryTx[tables.Customer](tx).Where("c.id", customerId).First(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}
		if customer == nil {
			return lib.ErrUnknownCustomer
		}

		if _, err := tx.NewDelete().Model((*tables.LoyaltyCard)(nil)).Where("customer_id = ?", customerId).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if _, err := tx.NewDelete().Model((*tables.Customer)(nil)).Where("id = ?", customerId).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if _, err := tx.NewDelete().Model((*tables.User)(nil)).Where("id = ?", customer.UserId).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		cs.logger.Info("Customer deleted", gecho.Field("customer_id", customerId))
		return nil
	})
}

// IssueLoyaltyCard creates a card for a customer that has none
func (cs *CustomerService) IssueLoyaltyCard(ctx context.Context, customerId uuid.UUID) (*tables.LoyaltyCard, error) {
	card := &tables.LoyaltyCard{
		Id:         uuid.New(),
		CustomerId: customerId,
		IssuedAt:   time.Now(),
	}
	inserted, err := database.Create(cs.db, ctx, card)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.logger.Info("Loyalty card issued", gecho.Field("customer_id", customerId))
	return inserted, nil
}
