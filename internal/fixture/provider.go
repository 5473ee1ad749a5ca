package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/preston-bernstein/game-catalog-service/internal/remote"
)

// Provider serves the embedded dataset through the same surface as the
// backend client, for running without a catalog backend.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// ListGames returns the embedded catalog as backend records.
func (p *Provider) ListGames(ctx context.Context) ([]remote.GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	catalog := Catalog()
	records := make([]remote.GameRecord, len(catalog))
	for i, g := range catalog {
		records[i] = remote.GameRecord(g)
	}
	return records, nil
}

// GetGame returns one embedded catalog record.
func (p *Provider) GetGame(ctx context.Context, id int) (remote.GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return remote.GameRecord{}, err
	}
	for _, g := range Catalog() {
		if g.ID == id {
			return remote.GameRecord(g), nil
		}
	}
	return remote.GameRecord{}, notFound(remote.OpGetGame, id)
}

// GetGameDetail returns the mock detail for id encoded as the backend would.
func (p *Provider) GetGameDetail(ctx context.Context, id int) (remote.DetailPayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d, ok := Detail(id)
	if !ok {
		return nil, notFound(remote.OpGetGameDetail, id)
	}
	body, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("fixture: encode detail %d: %w", id, err)
	}
	return remote.DetailPayload(body), nil
}

func notFound(op string, id int) error {
	return &remote.TransportError{
		Op:         op,
		URL:        fmt.Sprintf("fixture://games/%d", id),
		StatusCode: http.StatusNotFound,
	}
}
