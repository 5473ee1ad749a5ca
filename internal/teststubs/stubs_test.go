package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/game-catalog-service/internal/remote"
)

func TestStubAPITracksCalls(t *testing.T) {
	err := errors.New("boom")
	s := &StubAPI{Records: []remote.GameRecord{{ID: 1}}, Err: err}
	if _, got := s.ListGames(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if s.ListCalls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", s.ListCalls.Load())
	}
}

func TestStubAPIServesRecordsAndDetails(t *testing.T) {
	s := &StubAPI{
		Records: []remote.GameRecord{{ID: 1, Title: "one"}},
		Details: map[int]string{1: `{"id":1}`},
	}
	ctx := context.Background()

	rec, err := s.GetGame(ctx, 1)
	if err != nil || rec.Title != "one" {
		t.Fatalf("expected record, got %+v err %v", rec, err)
	}
	if _, err := s.GetGame(ctx, 2); err == nil {
		t.Fatalf("expected not found for id 2")
	}

	body, err := s.GetGameDetail(ctx, 1)
	if err != nil || string(body) != `{"id":1}` {
		t.Fatalf("expected raw body, got %s err %v", body, err)
	}
	if _, err := s.GetGameDetail(ctx, 2); err == nil {
		t.Fatalf("expected not found detail")
	}
	if s.GameCalls.Load() != 2 || s.DetailCalls.Load() != 2 {
		t.Fatalf("unexpected call counts %d/%d", s.GameCalls.Load(), s.DetailCalls.Load())
	}
}

func TestStubAPIGateBlocksUntilClosed(t *testing.T) {
	gate := make(chan struct{})
	notify := make(chan struct{})
	s := &StubAPI{Gate: gate, Notify: notify}

	done := make(chan struct{})
	go func() {
		_, _ = s.ListGames(context.Background())
		close(done)
	}()

	<-notify
	select {
	case <-done:
		t.Fatalf("expected call to block on gate")
	default:
	}
	close(gate)
	<-done
}
