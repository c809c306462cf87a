package booking

import (
	"sync"
	"time"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

// EventType тип уведомления для слоя представления
type EventType string

const (
	EventMonthChanged    EventType = "month_changed"
	EventDateSelected    EventType = "date_selected"
	EventTimeSelected    EventType = "time_selected"
	EventBusySlots       EventType = "busy_slots"
	EventPackageSelected EventType = "package_selected"
	EventSubmissionState EventType = "submission_state"
)

// Event уведомление об изменении состояния сессии
type Event struct {
	Type      EventType
	Year      int
	Month     time.Month
	Date      time.Time
	Time      string
	BusySlots []string
	Package   *domain.Package
	State     SubmitState
	LeadID    string
	Message   string
}

const defaultSubscriberBuffer = 16

// Notifier pub/sub без блокировок публикующего
// Медленный подписчик теряет события, которые не поместились в буфер
type Notifier struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]chan Event)}
}

// Subscribe возвращает канал событий и функцию отписки
func (n *Notifier) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	ch := make(chan Event, buffer)
	if n.closed {
		close(ch)
		return ch, func() {}
	}

	id := n.nextID
	n.nextID++
	n.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			if sub, ok := n.subs[id]; ok {
				delete(n.subs, id)
				close(sub)
			}
		})
	}
}

// Publish рассылает событие всем подписчикам
func (n *Notifier) Publish(e Event) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribers число активных подписок
func (n *Notifier) Subscribers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}

// Close закрывает все каналы подписчиков
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	n.closed = true
	for id, ch := range n.subs {
		close(ch)
		delete(n.subs, id)
	}
}
