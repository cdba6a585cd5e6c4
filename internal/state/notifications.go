package state

import (
	"github.com/versocommerce/storefront/internal/notification"
)

// defaultNotificationLimit caps how many items the slice retains. Oldest
// entries are dropped first.
const defaultNotificationLimit = 50

type notificationState struct {
	items []notification.Item
	limit int
}

// Notifications returns a snapshot of the notification slice, newest first.
func (s *Store) Notifications() []notification.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notification.Item, len(s.notifications.items))
	copy(out, s.notifications.items)
	return out
}

// PushNotification prepends an item, evicting the oldest entry past the
// retention cap.
func (s *Store) PushNotification(item notification.Item) {
	s.mu.Lock()
	s.notifications.items = append([]notification.Item{item}, s.notifications.items...)
	if limit := s.notifications.limit; limit > 0 && len(s.notifications.items) > limit {
		s.notifications.items = s.notifications.items[:limit]
	}
	s.mu.Unlock()

	s.notify(SliceNotifications)
}

// MarkNotificationRead flags one item as read. Unknown ids are ignored.
func (s *Store) MarkNotificationRead(id string) {
	s.mu.Lock()
	changed := false
	for i := range s.notifications.items {
		if s.notifications.items[i].ID == id && !s.notifications.items[i].Read {
			s.notifications.items[i].Read = true
			changed = true
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.notify(SliceNotifications)
	}
}

// UnreadNotifications reports how many items are unread, for the nav badge.
func (s *Store) UnreadNotifications() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.notifications.items {
		if !s.notifications.items[i].Read {
			n++
		}
	}
	return n
}
