package auralis

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sandevgo/auralis/internal/core"
)

type MemoryQuery struct {
	Limit   int
	OrderBy string // "asc" or "desc"
}

func (q MemoryQuery) encode() string {
	v := url.Values{}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.OrderBy != "" {
		v.Set("order_by", q.OrderBy)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// GetIdentity returns nil when the service has no identity configured.
func (c *Client) GetIdentity(ctx context.Context) (*core.Identity, error) {
	var resp struct {
		Identity *identityWire `json:"identity"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/identity", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Identity == nil {
		return nil, nil
	}
	id := resp.Identity.toCore()
	return &id, nil
}

func (c *Client) GetValues(ctx context.Context) ([]core.Value, error) {
	var resp struct {
		Values []valueWire `json:"values"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/values", nil, &resp); err != nil {
		return nil, err
	}
	return convert(resp.Values, valueWire.toCore), nil
}

func (c *Client) GetMemories(ctx context.Context, q MemoryQuery) ([]core.Memory, error) {
	var resp struct {
		Memories []memoryWire `json:"memories"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/memories"+q.encode(), nil, &resp); err != nil {
		return nil, err
	}
	return convert(resp.Memories, memoryWire.toCore), nil
}

// AddMemory posts an episodic record. The service echoes the stored memory.
func (c *Client) AddMemory(ctx context.Context, payload core.MemoryPayload) (core.Memory, error) {
	var created memoryWire
	if err := c.doRequest(ctx, http.MethodPost, "/memories", payload, &created); err != nil {
		return core.Memory{}, err
	}
	return created.toCore(), nil
}

func (c *Client) GetMemorySegments(ctx context.Context) ([]core.MemorySegment, error) {
	var resp struct {
		Segments []segmentWire `json:"memory_segments"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/memory_segments", nil, &resp); err != nil {
		return nil, err
	}
	return convert(resp.Segments, segmentWire.toCore), nil
}

func (c *Client) GetDailyIdeas(ctx context.Context) ([]core.DailyIdea, error) {
	var resp struct {
		Ideas []dailyIdeaWire `json:"daily_ideas"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/daily_ideas", nil, &resp); err != nil {
		return nil, err
	}
	return convert(resp.Ideas, dailyIdeaWire.toCore), nil
}

// GetSelfConcept returns nil when none is recorded.
func (c *Client) GetSelfConcept(ctx context.Context) (*core.SelfConcept, error) {
	var resp struct {
		SelfConcept *selfConceptWire `json:"self_concept"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/self_concept", nil, &resp); err != nil {
		return nil, err
	}
	if resp.SelfConcept == nil {
		return nil, nil
	}
	return &core.SelfConcept{
		ID:          resp.SelfConcept.ID,
		Description: resp.SelfConcept.Description,
		Strength:    resp.SelfConcept.Strength,
	}, nil
}
