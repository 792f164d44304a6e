package services

import (
	"context"
	"fmt"
	"petshop_server/structs"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// CartService keeps shopping carts in a Redis hash per session, so carts
// survive restarts and guests keep theirs across visits.
type CartService struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	cacheService   *CacheService
	productService *ProductService
}

func NewCartService(
	logger *gecho.Logger,
	cfg *structs.Config,
	cacheService *CacheService,
	productService *ProductService,
) *CartService {
	return &CartService{
		logger:         logger,
		cfg:            cfg,
		cacheService:   cacheService,
		productService: productService,
	}
}

func cartKey(sessionKey string) string {
	return fmt.Sprintf("cart:%s", sessionKey)
}

// Load reads the cart hash for a session. Corrupt fields are skipped, not fatal.
func (cs *CartService) Load(ctx context.Context, sessionKey string) (structs.Cart, error) {
	fields, err := cs.cacheService.Client().HGetAll(ctx, cartKey(sessionKey)).Result()
	if err != nil {
		return nil, err
	}

	cart := structs.Cart{}
	for idStr, qtyStr := range fields {
		id, err := uuid.Parse(idStr)
		if err != nil {
			cs.logger.Warn("Dropping malformed cart entry", gecho.Field("field", idStr))
			continue
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil || qty <= 0 {
			cs.logger.Warn("Dropping malformed cart quantity", gecho.Field("field", idStr), gecho.Field("value", qtyStr))
			continue
		}
		cart[id] = qty
	}

	return cart, nil
}

func (cs *CartService) save(ctx context.Context, sessionKey string, cart structs.Cart) error {
	key := cartKey(sessionKey)
	client := cs.cacheService.Client()

	if cart.Count() == 0 {
		return client.Del(ctx, key).Err()
	}

	fields := make(map[string]any, len(cart))
	for id, qty := range cart {
		fields[id.String()] = qty
	}

	pipe := client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, cs.cfg.Cache.CartTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// AddItem puts qty units of a product in the cart, capped by current stock
func (cs *CartService) AddItem(ctx context.Context, sessionKey string, productId uuid.UUID, qty int) (structs.Cart, error) {
	product, err := cs.productService.GetProductById(ctx, productId)
	if err != nil {
		return nil, err
	}

	cart, err := cs.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if err := cart.Add(productId, qty, product.Stock); err != nil {
		return nil, err
	}

	if err := cs.save(ctx, sessionKey, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// IncrementItem bumps a line by one, capped by current stock
func (cs *CartService) IncrementItem(ctx context.Context, sessionKey string, productId uuid.UUID) (structs.Cart, error) {
	product, err := cs.productService.GetProductById(ctx, productId)
	if err != nil {
		return nil, err
	}

	cart, err := cs.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if err := cart.Increment(productId, product.Stock); err != nil {
		return nil, err
	}

	if err := cs.save(ctx, sessionKey, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// DecrementItem drops a line by one, removing it at zero
func (cs *CartService) DecrementItem(ctx context.Context, sessionKey string, productId uuid.UUID) (structs.Cart, error) {
	cart, err := cs.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	cart.Decrement(productId)

	if err := cs.save(ctx, sessionKey, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes a line outright
func (cs *CartService) RemoveItem(ctx context.Context, sessionKey string, productId uuid.UUID) (structs.Cart, error) {
	cart, err := cs.Load(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	cart.Remove(productId)

	if err := cs.save(ctx, sessionKey, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the whole cart
func (cs *CartService) Clear(ctx context.Context, sessionKey string) error {
	return cs.cacheService.Client().Del(ctx, cartKey(sessionKey)).Err()
}
