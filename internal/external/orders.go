package external

import (
	"context"
	"sync"

	"agri-auction/internal/models"
	"agri-auction/utils"
)

// MemoryOrders records one order per settlement
type MemoryOrders struct {
	mu     sync.Mutex
	orders map[string]string // settlementID -> orderID
}

func NewMemoryOrders() *MemoryOrders {
	return &MemoryOrders{orders: make(map[string]string)}
}

// CreateOrder is idempotent per settlement
func (o *MemoryOrders) CreateOrder(ctx context.Context, settlement models.AuctionSettlement) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if id, ok := o.orders[settlement.SettlementID]; ok {
		return id, nil
	}
	id := utils.GenerateID()
	o.orders[settlement.SettlementID] = id
	return id, nil
}
