package booking

import (
	"time"

	"github.com/m04kA/LessonBookingService/internal/domain"
)

// CalendarOptions настройки календаря
type CalendarOptions struct {
	TimeSlots    []string
	BlockedDays  []string // YYYY-MM-DD
	Location     *time.Location
	// FirstWeekday первый столбец сетки; нулевое значение - time.Sunday,
	// понедельник нужно задавать явно (config.BookingConfig.Weekday даёт его по умолчанию)
	FirstWeekday time.Weekday
}

// Calendar отображаемый месяц и выбранные дата/время
// Смена даты всегда сбрасывает выбранное время и занятые слоты.
// Не потокобезопасен, владелец (Session) сериализует доступ.
type Calendar struct {
	loc          *time.Location
	firstWeekday time.Weekday
	slots        []string
	slotSet      map[string]struct{}
	blocked      map[string]struct{}
	clock        TimeProvider

	viewYear  int
	viewMonth time.Month

	selectedDate *time.Time
	selectedTime string
	busy         map[string]struct{}
}

// DayCell день в сетке месяца
type DayCell struct {
	Day      int
	Date     string
	Past     bool
	Blocked  bool
	Today    bool
	Selected bool
}

// MonthView сетка месяца для отрисовки
type MonthView struct {
	Year         int
	Month        time.Month
	FirstWeekday time.Weekday
	Offset       int // пустые ячейки перед первым числом
	Days         []DayCell
}

// SlotView слот выбранного дня
type SlotView struct {
	Time     string
	Busy     bool
	Selected bool
}

// NewCalendar календарь, открытый на текущем месяце, без выбора
func NewCalendar(opts CalendarOptions, clock TimeProvider) *Calendar {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	slots := opts.TimeSlots
	if len(slots) == 0 {
		slots = domain.DefaultTimeSlots
	}

	c := &Calendar{
		loc:          loc,
		firstWeekday: opts.FirstWeekday,
		slots:        append([]string(nil), slots...),
		slotSet:      make(map[string]struct{}, len(slots)),
		blocked:      make(map[string]struct{}, len(opts.BlockedDays)),
		clock:        clock,
		busy:         make(map[string]struct{}),
	}
	for _, s := range slots {
		c.slotSet[s] = struct{}{}
	}
	for _, d := range opts.BlockedDays {
		c.blocked[d] = struct{}{}
	}

	now := clock.Now().In(loc)
	c.viewYear, c.viewMonth = now.Year(), now.Month()
	return c
}

// NavigateMonth сдвигает отображаемый месяц на delta с переходом через границу года
func (c *Calendar) NavigateMonth(delta int) {
	idx := c.viewYear*12 + int(c.viewMonth-1) + delta
	c.viewYear = floorDiv(idx, 12)
	c.viewMonth = time.Month(idx-c.viewYear*12) + 1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ViewMonth отображаемые год и месяц
func (c *Calendar) ViewMonth() (int, time.Month) {
	return c.viewYear, c.viewMonth
}

func (c *Calendar) today() time.Time {
	return domain.StartOfDay(c.clock.Now(), c.loc)
}

// SelectDate выбирает день; прошедшие и заблокированные дни отклоняются
func (c *Calendar) SelectDate(date time.Time) bool {
	day := domain.StartOfDay(date, c.loc)
	if day.Before(c.today()) {
		return false
	}
	if _, blocked := c.blocked[day.Format(domain.DateFormat)]; blocked {
		return false
	}

	c.selectedDate = &day
	c.selectedTime = ""
	c.busy = make(map[string]struct{})
	return true
}

// SelectTime выбирает слот; нужен выбранный день, слот из набора и не занятый
func (c *Calendar) SelectTime(token string) bool {
	if c.selectedDate == nil {
		return false
	}
	if _, ok := c.slotSet[token]; !ok {
		return false
	}
	if _, busy := c.busy[token]; busy {
		return false
	}
	c.selectedTime = token
	return true
}

// SetBusySlots применяет занятые слоты, если day всё ещё выбранный день
// Если выбранное время оказалось занятым, оно сбрасывается
func (c *Calendar) SetBusySlots(day string, slots []string) bool {
	if c.selectedDate == nil || c.selectedDate.Format(domain.DateFormat) != day {
		return false
	}
	c.busy = make(map[string]struct{}, len(slots))
	for _, s := range slots {
		c.busy[s] = struct{}{}
	}
	if _, busy := c.busy[c.selectedTime]; busy {
		c.selectedTime = ""
	}
	return true
}

// SelectedDate выбранный день (полночь в часовом поясе календаря)
func (c *Calendar) SelectedDate() (time.Time, bool) {
	if c.selectedDate == nil {
		return time.Time{}, false
	}
	return *c.selectedDate, true
}

// SelectedDay выбранный день как YYYY-MM-DD, пустая строка без выбора
func (c *Calendar) SelectedDay() string {
	if c.selectedDate == nil {
		return ""
	}
	return c.selectedDate.Format(domain.DateFormat)
}

// SelectedTime выбранный слот
func (c *Calendar) SelectedTime() (string, bool) {
	return c.selectedTime, c.selectedTime != ""
}

// TimeSlots набор слотов дня
func (c *Calendar) TimeSlots() []string {
	return append([]string(nil), c.slots...)
}

// Location часовой пояс календаря
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Slots слоты выбранного дня с отметками; пусто, если день не выбран
func (c *Calendar) Slots() []SlotView {
	if c.selectedDate == nil {
		return []SlotView{}
	}
	out := make([]SlotView, 0, len(c.slots))
	for _, s := range c.slots {
		_, busy := c.busy[s]
		out = append(out, SlotView{Time: s, Busy: busy, Selected: s == c.selectedTime})
	}
	return out
}

// Month сетка отображаемого месяца
func (c *Calendar) Month() MonthView {
	first := time.Date(c.viewYear, c.viewMonth, 1, 0, 0, 0, 0, c.loc)
	daysInMonth := time.Date(c.viewYear, c.viewMonth+1, 0, 0, 0, 0, 0, c.loc).Day()
	today := c.today()
	selected := c.SelectedDay()

	view := MonthView{
		Year:         c.viewYear,
		Month:        c.viewMonth,
		FirstWeekday: c.firstWeekday,
		Offset:       (int(first.Weekday()) - int(c.firstWeekday) + 7) % 7,
		Days:         make([]DayCell, 0, daysInMonth),
	}

	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(c.viewYear, c.viewMonth, d, 0, 0, 0, 0, c.loc)
		key := date.Format(domain.DateFormat)
		_, blocked := c.blocked[key]
		view.Days = append(view.Days, DayCell{
			Day:      d,
			Date:     key,
			Past:     date.Before(today),
			Blocked:  blocked,
			Today:    date.Equal(today),
			Selected: key == selected,
		})
	}
	return view
}
