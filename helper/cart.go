package helper

import (
	"context"
	"encoding/json"
	"errors"
	"olympic_ticketing/model"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	cartCookieName = "cart_session"
	cartKeyPrefix  = "cart:"
	cartTTL        = 7 * 24 * time.Hour
)

// CartStore is the session store behind the shopping cart: one mutable cart
// per session key. Redis backs it in production.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (*model.Cart, error)
	Save(ctx context.Context, sessionID string, cart *model.Cart) error
	Clear(ctx context.Context, sessionID string) error
}

// Carts is set at startup (redis) and swapped for a memory store in tests.
var Carts CartStore

type RedisCartStore struct {
	Client *redis.Client
}

func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*model.Cart, error) {
	raw, err := s.Client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.NewCart(), nil
		}
		return nil, err
	}

	cart := model.NewCart()
	if err := json.Unmarshal(raw, cart); err != nil {
		return nil, err
	}
	if cart.Entries == nil {
		cart.Entries = map[string]model.CartEntry{}
	}
	return cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, cart *model.Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, cartKeyPrefix+sessionID, raw, cartTTL).Err()
}

func (s *RedisCartStore) Clear(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, cartKeyPrefix+sessionID).Err()
}

// MemoryCartStore keeps carts in process memory. Test use only.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]*model.Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: map[string]*model.Cart{}}
}

func (s *MemoryCartStore) Load(ctx context.Context, sessionID string) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[sessionID]
	if !ok {
		return model.NewCart(), nil
	}
	copied := model.NewCart()
	for k, v := range cart.Entries {
		copied.Entries[k] = v
	}
	return copied, nil
}

func (s *MemoryCartStore) Save(ctx context.Context, sessionID string, cart *model.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := model.NewCart()
	for k, v := range cart.Entries {
		copied.Entries[k] = v
	}
	s.carts[sessionID] = copied
	return nil
}

func (s *MemoryCartStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}

// CartSessionID returns the session key for the current request, minting the
// cookie on first use.
func CartSessionID(c *fiber.Ctx) string {
	sessionID := c.Cookies(cartCookieName)
	if sessionID == "" {
		sessionID = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     cartCookieName,
			Value:    sessionID,
			HTTPOnly: true,
			SameSite: "None",
			Path:     "/",
		})
	}
	return sessionID
}

// ResolveCartItems re-reads each cart entry against the live catalog. Offers
// that were deactivated or deleted since they were added drop out; they stay
// in the raw session map but count neither as items nor toward the total.
func ResolveCartItems(db *gorm.DB, cart *model.Cart) ([]model.CartItem, error) {
	if len(cart.Entries) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(cart.Entries))
	for key := range cart.Entries {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	var offers []model.Offer
	if err := db.Where("id IN ? AND is_active = ?", ids, true).Order("id").Find(&offers).Error; err != nil {
		return nil, err
	}

	items := make([]model.CartItem, 0, len(offers))
	for _, offer := range offers {
		entry := cart.Entries[strconv.FormatUint(uint64(offer.ID), 10)]
		unitPrice, err := decimal.NewFromString(entry.Price)
		if err != nil {
			return nil, err
		}
		quantity := decimal.NewFromInt(int64(entry.Quantity))
		items = append(items, model.CartItem{
			Offer:      offer,
			Quantity:   entry.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: unitPrice.Mul(quantity),
		})
	}
	return items, nil
}

// CartTotal sums price×quantity over resolved items.
func CartTotal(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TotalPrice)
	}
	return total
}
