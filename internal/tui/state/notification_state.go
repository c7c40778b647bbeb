package state

// NotificationLevel represents the severity of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single notification message with a severity level.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// maxNotifications bounds how many messages the status bar keeps
const maxNotifications = 3

// NotificationState holds the messages shown in the status bar. The newest
// message is last; older ones are dropped once the limit is reached.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add adds a new notification with the specified level and message.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
	if over := len(s.notifications) - maxNotifications; over > 0 {
		s.notifications = s.notifications[over:]
	}
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// Latest returns the newest notification, if any.
func (s *NotificationState) Latest() (Notification, bool) {
	if len(s.notifications) == 0 {
		return Notification{}, false
	}
	return s.notifications[len(s.notifications)-1], true
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
