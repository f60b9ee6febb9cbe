package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leave-backend-go/internal/domain/notification"
	"github.com/leavedesk/leave-backend-go/internal/pkg/sse"
)

type fakeNotificationRepo struct {
	mu            sync.Mutex
	stored        []*notification.Notification
	markedRead    []string
	markedAllRead []string
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = append(f.stored, n)
	return nil
}

func (f *fakeNotificationRepo) CreateBatch(ctx context.Context, ns []*notification.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = append(f.stored, ns...)
	return nil
}

func (f *fakeNotificationRepo) GetByID(ctx context.Context, id string) (*notification.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.stored {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, notification.ErrNotificationNotFound
}

func (f *fakeNotificationRepo) GetByUserID(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]*notification.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*notification.Notification
	for _, n := range f.stored {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeNotificationRepo) GetUnreadCount(ctx context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.stored {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkAsRead(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markedRead = append(f.markedRead, id)
	return nil
}

func (f *fakeNotificationRepo) MarkAllAsRead(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markedAllRead = append(f.markedAllRead, userID)
	return nil
}

func (f *fakeNotificationRepo) storedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.stored)
}

func validRequest(userID string) notification.CreateNotificationRequest {
	return notification.CreateNotificationRequest{
		UserID:  userID,
		Title:   "New leave request",
		Content: "Alice requested leave from 2025-12-20 to 2025-12-22 (3 days)",
		Type:    notification.TypeSubmitted,
	}
}

func TestQueueNotificationFlushesOnStop(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, sse.NewHub(), Config{
		WorkerCount:   1,
		FlushInterval: time.Hour, // only the stop path should flush
	})

	ctx := context.Background()
	require.NoError(t, svc.QueueNotification(ctx, validRequest("user-1")))
	require.NoError(t, svc.QueueNotification(ctx, validRequest("user-2")))

	svc.Stop()

	assert.Equal(t, 2, repo.storedCount())
}

func TestQueueNotificationRejectsInvalid(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, sse.NewHub(), Config{WorkerCount: 1})
	defer svc.Stop()

	err := svc.QueueNotification(context.Background(), notification.CreateNotificationRequest{
		UserID: "user-1",
		Type:   notification.NotificationType("bogus"),
	})
	assert.Error(t, err)
}

func TestQueueBulkNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, sse.NewHub(), Config{
		WorkerCount:   1,
		FlushInterval: time.Hour,
	})

	reqs := []notification.CreateNotificationRequest{
		validRequest("user-1"),
		validRequest("user-2"),
		validRequest("user-3"),
	}
	require.NoError(t, svc.QueueBulkNotification(context.Background(), reqs))

	svc.Stop()
	assert.Equal(t, 3, repo.storedCount())
}

func TestBatchFlushPublishesToSubscribers(t *testing.T) {
	repo := &fakeNotificationRepo{}
	hub := sse.NewHub()
	svc := NewNotificationService(repo, hub, Config{
		WorkerCount:   1,
		FlushInterval: 10 * time.Millisecond,
	})
	defer svc.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, cleanup := svc.Subscribe(ctx, "user-1")
	defer cleanup()

	require.NoError(t, svc.QueueNotification(ctx, validRequest("user-1")))

	select {
	case event := <-events:
		assert.Equal(t, "notification", event.Event)
		assert.Equal(t, "user-1", event.Data.UserID)
		assert.Equal(t, notification.TypeSubmitted, event.Data.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published event")
	}
}

func TestMarkAsReadRequiresOwnership(t *testing.T) {
	repo := &fakeNotificationRepo{
		stored: []*notification.Notification{
			{ID: "n-1", UserID: "user-1", Title: "t", Content: "c", Type: notification.TypeApproved},
		},
	}
	svc := NewNotificationService(repo, sse.NewHub(), Config{WorkerCount: 1})
	defer svc.Stop()

	ctx := context.Background()
	assert.ErrorIs(t, svc.MarkAsRead(ctx, "user-2", "n-1"), notification.ErrNotOwner)
	assert.ErrorIs(t, svc.MarkAsRead(ctx, "user-1", "missing"), notification.ErrNotificationNotFound)

	require.NoError(t, svc.MarkAsRead(ctx, "user-1", "n-1"))
	assert.Equal(t, []string{"n-1"}, repo.markedRead)
}

func TestGetNotificationsClampsPaging(t *testing.T) {
	repo := &fakeNotificationRepo{
		stored: []*notification.Notification{
			{ID: "n-1", UserID: "user-1", Type: notification.TypeApproved},
			{ID: "n-2", UserID: "user-1", Type: notification.TypeRejected, IsRead: true},
			{ID: "n-3", UserID: "user-2", Type: notification.TypeSubmitted},
		},
	}
	svc := NewNotificationService(repo, sse.NewHub(), Config{WorkerCount: 1})
	defer svc.Stop()

	resp, err := svc.GetNotifications(context.Background(), "user-1", 0, -5, false)
	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 2)
	assert.Equal(t, 1, resp.UnreadCount)

	unread, err := svc.GetNotifications(context.Background(), "user-1", 1, 20, true)
	require.NoError(t, err)
	assert.Len(t, unread.Notifications, 1)
	assert.Equal(t, "n-1", unread.Notifications[0].ID)
}
