package service

import "errors"

// Ошибки уровня сервисов. Вызывающий различает их через errors.Is;
// всё остальное — ошибки хранилища, завёрнутые через %w.
var (
	// ErrMonthAlreadyGenerated месяц уже сгенерирован: в нём есть хотя бы
	// одно богослужение, повторная генерация запрещена
	ErrMonthAlreadyGenerated = errors.New("services for this month already exist")

	// ErrNoWeeklyRules нет ни одного активного правила недельного расписания
	ErrNoWeeklyRules = errors.New("no active weekly rules configured")

	// ErrServiceNotFound богослужение не найдено
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceAlreadyExists на эту дату уже есть богослужение этого типа
	ErrServiceAlreadyExists = errors.New("service already exists for this date and type")

	// ErrServiceTypeNotFound тип богослужения не найден
	ErrServiceTypeNotFound = errors.New("service type not found")

	// ErrReadingNotFound чтение не найдено
	ErrReadingNotFound = errors.New("reading not found")

	// ErrEntryNotFound запись музыкального плана не найдена
	ErrEntryNotFound = errors.New("playlist entry not found")

	// ErrDuplicateEntry такой номер уже есть в этой категории плана
	ErrDuplicateEntry = errors.New("song is already in the playlist")

	// ErrCapacityReached достигнут лимит номеров в категории
	ErrCapacityReached = errors.New("category capacity reached")

	// ErrInvalidRole неизвестная роль
	ErrInvalidRole = errors.New("unknown role")

	// ErrInvalidCategory неизвестная категория песни
	ErrInvalidCategory = errors.New("unknown song category")

	// ErrInvalidReference некорректная ссылка на отрывок
	ErrInvalidReference = errors.New("invalid scripture reference")

	// ErrInvalidStartTime некорректное время начала
	ErrInvalidStartTime = errors.New("invalid start time")

	// ErrOrderingMismatch переданный порядок не совпадает с составом плана
	ErrOrderingMismatch = errors.New("ordering does not match playlist entries")
)
