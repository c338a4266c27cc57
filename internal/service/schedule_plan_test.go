package service

import (
	"testing"
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestShiftStartBack(t *testing.T) {
	hour, minute := shiftStartBack(19, 0)
	require.Equal(t, 18, hour)
	require.Equal(t, 0, minute)

	// Перенос через полночь: дата не меняется, только часы
	hour, minute = shiftStartBack(0, 30)
	require.Equal(t, 23, hour)
	require.Equal(t, 30, minute)
}

func TestMonthBounds(t *testing.T) {
	loc := time.UTC

	from, to := monthBounds(2026, time.February, loc)
	require.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, loc), from)
	require.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, loc), to)

	// Декабрь переходит в январь следующего года
	from, to = monthBounds(2026, time.December, loc)
	require.Equal(t, time.Date(2026, time.December, 1, 0, 0, 0, 0, loc), from)
	require.Equal(t, time.Date(2027, time.January, 1, 0, 0, 0, 0, loc), to)
}

func TestPlanMonthExpandsRules(t *testing.T) {
	loc := time.UTC
	from, to := monthBounds(2026, time.January, loc)

	rules := map[int]*model.WeeklyRule{
		int(time.Wednesday): {ID: 1, Weekday: int(time.Wednesday), ServiceTypeID: 10, StartHour: 19, StartMinute: 30, HolidayAdjustable: true, IsActive: true},
		int(time.Sunday):    {ID: 2, Weekday: int(time.Sunday), ServiceTypeID: 20, StartHour: 10, StartMinute: 0, HolidayAdjustable: true, IsActive: true},
	}

	generationID := uuid.New()
	services := planMonth(from, to, rules, nil, generationID)

	// В январе 2026: 4 среды и 4 воскресенья
	require.Len(t, services, 8)

	for _, svc := range services {
		weekday := int(svc.Date.Weekday())
		require.Contains(t, []int{int(time.Wednesday), int(time.Sunday)}, weekday)
		require.NotNil(t, svc.GenerationID)
		require.Equal(t, generationID, *svc.GenerationID)
		require.False(t, svc.HolidayAdjusted)

		rule := rules[weekday]
		require.Equal(t, rule.ServiceTypeID, svc.ServiceTypeID)
		require.Equal(t, rule.StartHour, svc.StartHour)
		require.Equal(t, rule.StartMinute, svc.StartMinute)
	}
}

func TestPlanMonthHolidayShift(t *testing.T) {
	loc := time.UTC
	from, to := monthBounds(2026, time.June, loc)

	rules := map[int]*model.WeeklyRule{
		int(time.Friday): {ID: 1, Weekday: int(time.Friday), ServiceTypeID: 10, StartHour: 19, StartMinute: 0, HolidayAdjustable: true, IsActive: true},
	}

	// 12 июня 2026 — пятница
	holidays := map[string]bool{"2026-06-12": true}

	services := planMonth(from, to, rules, holidays, uuid.New())
	require.Len(t, services, 4)

	for _, svc := range services {
		if svc.Date.Day() == 12 {
			require.True(t, svc.HolidayAdjusted)
			require.Equal(t, 18, svc.StartHour)
			require.Equal(t, 0, svc.StartMinute)
		} else {
			require.False(t, svc.HolidayAdjusted)
			require.Equal(t, 19, svc.StartHour)
		}
	}
}

func TestPlanMonthWeekendHolidayNotShifted(t *testing.T) {
	loc := time.UTC
	from, to := monthBounds(2026, time.June, loc)

	rules := map[int]*model.WeeklyRule{
		int(time.Saturday): {ID: 1, Weekday: int(time.Saturday), ServiceTypeID: 10, StartHour: 17, StartMinute: 0, HolidayAdjustable: true, IsActive: true},
	}

	// 6 июня 2026 — суббота; праздник в выходной не сдвигает время
	holidays := map[string]bool{"2026-06-06": true}

	services := planMonth(from, to, rules, holidays, uuid.New())
	require.NotEmpty(t, services)

	for _, svc := range services {
		require.False(t, svc.HolidayAdjusted)
		require.Equal(t, 17, svc.StartHour)
	}
}

func TestPlanMonthRuleWithoutShift(t *testing.T) {
	loc := time.UTC
	from, to := monthBounds(2026, time.June, loc)

	rules := map[int]*model.WeeklyRule{
		int(time.Friday): {ID: 1, Weekday: int(time.Friday), ServiceTypeID: 10, StartHour: 19, StartMinute: 0, HolidayAdjustable: false, IsActive: true},
	}

	holidays := map[string]bool{"2026-06-12": true}

	services := planMonth(from, to, rules, holidays, uuid.New())
	for _, svc := range services {
		require.False(t, svc.HolidayAdjusted)
		require.Equal(t, 19, svc.StartHour)
	}
}

func TestPlanMonthMidnightWrapKeepsDate(t *testing.T) {
	loc := time.UTC
	from, to := monthBounds(2026, time.June, loc)

	rules := map[int]*model.WeeklyRule{
		int(time.Monday): {ID: 1, Weekday: int(time.Monday), ServiceTypeID: 10, StartHour: 0, StartMinute: 30, HolidayAdjustable: true, IsActive: true},
	}

	// 1 июня 2026 — понедельник
	holidays := map[string]bool{"2026-06-01": true}

	services := planMonth(from, to, rules, holidays, uuid.New())
	require.NotEmpty(t, services)

	first := services[0]
	require.Equal(t, 1, first.Date.Day())
	require.True(t, first.HolidayAdjusted)
	require.Equal(t, 23, first.StartHour)
	require.Equal(t, 30, first.StartMinute)
}

func TestGenerationGuardRejectsOccupiedMonth(t *testing.T) {
	// Пустой месяц генерировать можно
	require.NoError(t, ensureMonthFree(0))

	// Хотя бы одно богослужение в месяце — повторная генерация запрещена,
	// вставки не происходит
	require.ErrorIs(t, ensureMonthFree(1), ErrMonthAlreadyGenerated)
	require.ErrorIs(t, ensureMonthFree(8), ErrMonthAlreadyGenerated)
}

func TestPlanMonthNoRules(t *testing.T) {
	loc := time.UTC
	from, to := monthBounds(2026, time.June, loc)

	services := planMonth(from, to, map[int]*model.WeeklyRule{}, nil, uuid.New())
	require.Empty(t, services)
}
