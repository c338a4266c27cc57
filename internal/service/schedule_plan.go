package service

import (
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/google/uuid"
)

// monthBounds возвращает первый день месяца и первый день следующего
// месяца в указанном часовом поясе
func monthBounds(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

// isWorkday проверяет что день недели — будний (Пн-Пт)
func isWorkday(d time.Weekday) bool {
	return d >= time.Monday && d <= time.Friday
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ensureMonthFree решает судьбу запуска генерации по числу уже
// существующих богослужений месяца: хотя бы одно — и месяц считается
// сгенерированным, повторная генерация запрещена
func ensureMonthFree(existing int64) error {
	if existing > 0 {
		return ErrMonthAlreadyGenerated
	}
	return nil
}

// shiftStartBack сдвигает время начала на час назад. Часы оборачиваются
// через полночь без переноса даты: существующие календари общины
// опираются на это поведение.
func shiftStartBack(hour, minute int) (int, int) {
	hour--
	if hour < 0 {
		hour = 23
	}
	return hour, minute
}

// planMonth разворачивает недельные правила в богослужения на каждый день
// [from, to). Дни без правила пропускаются. Если дата — праздничный
// будний день и правило допускает сдвиг, начало переносится на час раньше
// и богослужение помечается как сдвинутое.
func planMonth(from, to time.Time, rules map[int]*model.WeeklyRule, workdayHolidays map[string]bool, generationID uuid.UUID) []*model.Service {
	var services []*model.Service

	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		rule, ok := rules[int(day.Weekday())]
		if !ok {
			continue
		}

		hour, minute := rule.StartHour, rule.StartMinute
		adjusted := false
		if rule.HolidayAdjustable && isWorkday(day.Weekday()) && workdayHolidays[dateKey(day)] {
			hour, minute = shiftStartBack(hour, minute)
			adjusted = true
		}

		gid := generationID
		services = append(services, &model.Service{
			GenerationID:    &gid,
			Date:            day,
			StartHour:       hour,
			StartMinute:     minute,
			ServiceTypeID:   rule.ServiceTypeID,
			HolidayAdjusted: adjusted,
		})
	}

	return services
}
