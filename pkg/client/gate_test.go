package client_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"go-scancollect-backend/internal/domain"
	"go-scancollect-backend/pkg/client"

	"github.com/stretchr/testify/assert"
)

type staticSessions struct {
	session *client.Session
}

func (s *staticSessions) CurrentSession(ctx context.Context) (*client.Session, error) {
	return s.session, nil
}

type countingBackend struct {
	authenticates atomic.Int32
	ensures       atomic.Int32
	release       chan struct{} // when set, EnsureUser blocks until closed
}

func (b *countingBackend) Authenticate(ctx context.Context) error {
	b.authenticates.Add(1)
	return nil
}

func (b *countingBackend) EnsureUser(ctx context.Context, username, avatarURL string) (*domain.User, error) {
	if b.release != nil {
		<-b.release
	}
	b.ensures.Add(1)
	return &domain.User{ID: "sub-1", Username: username}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionGateStates(t *testing.T) {
	session := &client.Session{AccessToken: "tok", UserID: "sub-1"}

	t.Run("Starts unchecked", func(t *testing.T) {
		gate := client.NewSessionGate(&staticSessions{}, &countingBackend{}, quietLogger())
		assert.Equal(t, client.StateUnchecked, gate.State())
	})

	t.Run("Check with a session lands on authenticated", func(t *testing.T) {
		gate := client.NewSessionGate(&staticSessions{session: session}, &countingBackend{}, quietLogger())
		state := gate.Check(context.Background())
		gate.Wait()
		assert.Equal(t, client.StateAuthenticated, state)
	})

	t.Run("Check without a session lands on unauthenticated", func(t *testing.T) {
		gate := client.NewSessionGate(&staticSessions{}, &countingBackend{}, quietLogger())
		state := gate.Check(context.Background())
		assert.Equal(t, client.StateUnauthenticated, state)
	})
}

func TestSessionGateProvisionsOnce(t *testing.T) {
	session := &client.Session{AccessToken: "tok", UserID: "sub-1", Username: "alice"}

	t.Run("Rapid duplicate events trigger one provisioning", func(t *testing.T) {
		backend := &countingBackend{release: make(chan struct{})}
		gate := client.NewSessionGate(&staticSessions{session: session}, backend, quietLogger())

		// Both events land before the first provisioning call resolves.
		gate.HandleSessionChange(context.Background(), session)
		gate.HandleSessionChange(context.Background(), session)
		close(backend.release)
		gate.Wait()

		assert.Equal(t, int32(1), backend.authenticates.Load())
		assert.Equal(t, int32(1), backend.ensures.Load())
	})

	t.Run("Concurrent events still provision once", func(t *testing.T) {
		backend := &countingBackend{}
		gate := client.NewSessionGate(&staticSessions{session: session}, backend, quietLogger())

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				gate.HandleSessionChange(context.Background(), session)
			}()
		}
		wg.Wait()
		gate.Wait()

		assert.Equal(t, int32(1), backend.ensures.Load())
	})

	t.Run("Sign-out then sign-in provisions again", func(t *testing.T) {
		backend := &countingBackend{}
		gate := client.NewSessionGate(&staticSessions{session: session}, backend, quietLogger())

		gate.HandleSessionChange(context.Background(), session)
		gate.Wait()
		state := gate.HandleSessionChange(context.Background(), nil)
		assert.Equal(t, client.StateUnauthenticated, state)

		gate.HandleSessionChange(context.Background(), session)
		gate.Wait()
		assert.Equal(t, int32(2), backend.ensures.Load())
	})
}
