package queries

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const agentStatsCacheTTL = 30 * time.Second

// GetAgentStatsQueryHandler computes an agent's delivery counters from the
// orders table, with a short-lived redis cache in front. Cache failures are
// swallowed: a miss costs one aggregate query.
type GetAgentStatsQueryHandler struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewGetAgentStatsQueryHandler creates a handler for agent stats. cache may be
// nil when no redis is configured; every read then hits the database.
func NewGetAgentStatsQueryHandler(db *gorm.DB, cache *redis.Client) GetAgentStatsQueryHandler {
	return GetAgentStatsQueryHandler{db: db, cache: cache}
}

// Handle executes the query. An agent with no orders gets zero counters, not
// an error.
func (h GetAgentStatsQueryHandler) Handle(
	ctx context.Context,
	query GetAgentStatsQuery,
) (*GetAgentStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cacheKey := "agent_stats:" + query.AgentID().String()
	if cached := h.fromCache(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COUNT(*) FILTER (WHERE status IN (?, ?, ?, ?))
		FROM orders
		WHERE agent_id = ?
	`,
		order.Signed.String(),
		order.Assigned.String(), order.PickedUp.String(), order.InTransit.String(), order.Delivered.String(),
		query.AgentID().String(),
	).Row()

	resp := GetAgentStatsQueryResponse{AgentID: query.AgentID().String()}
	if err := row.Scan(&resp.Total, &resp.Completed, &resp.InProgress); err != nil {
		return nil, err
	}

	h.toCache(ctx, cacheKey, &resp)
	return &resp, nil
}

func (h GetAgentStatsQueryHandler) fromCache(ctx context.Context, key string) *GetAgentStatsQueryResponse {
	if h.cache == nil {
		return nil
	}

	payload, err := h.cache.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}

	var resp GetAgentStatsQueryResponse
	if err = json.Unmarshal(payload, &resp); err != nil {
		return nil
	}
	return &resp
}

func (h GetAgentStatsQueryHandler) toCache(ctx context.Context, key string, resp *GetAgentStatsQueryResponse) {
	if h.cache == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	h.cache.Set(ctx, key, payload, agentStatsCacheTTL)
}
