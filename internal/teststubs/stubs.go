package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/game-catalog-service/internal/remote"
)

// StubAPI is a test double for remote.API.
type StubAPI struct {
	Records []remote.GameRecord
	Details map[int]string // raw JSON bodies keyed by id
	Err     error
	// Gate, when set, blocks every call until it is closed.
	Gate   chan struct{}
	Notify chan struct{}

	ListCalls   atomic.Int32
	GameCalls   atomic.Int32
	DetailCalls atomic.Int32

	notifyOnce sync.Once
}

// ListGames returns configured records and error while tracking calls.
func (s *StubAPI) ListGames(ctx context.Context) ([]remote.GameRecord, error) {
	s.ListCalls.Add(1)
	s.wait(ctx)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Records, nil
}

// GetGame returns the configured record with a matching id.
func (s *StubAPI) GetGame(ctx context.Context, id int) (remote.GameRecord, error) {
	s.GameCalls.Add(1)
	s.wait(ctx)
	if s.Err != nil {
		return remote.GameRecord{}, s.Err
	}
	for _, r := range s.Records {
		if r.ID == id {
			return r, nil
		}
	}
	return remote.GameRecord{}, &remote.TransportError{Op: remote.OpGetGame, StatusCode: 404}
}

// GetGameDetail returns the configured raw body for id.
func (s *StubAPI) GetGameDetail(ctx context.Context, id int) (remote.DetailPayload, error) {
	s.DetailCalls.Add(1)
	s.wait(ctx)
	if s.Err != nil {
		return nil, s.Err
	}
	body, ok := s.Details[id]
	if !ok {
		return nil, &remote.TransportError{Op: remote.OpGetGameDetail, StatusCode: 404}
	}
	return remote.DetailPayload(body), nil
}

func (s *StubAPI) wait(ctx context.Context) {
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
		}
	}
}
