package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/controller/render"
	"github.com/Freeeeeet/congregation_scheduler/internal/model"
)

func main() {
	// Создаем тестовые данные
	now := time.Now()
	year, month := now.Year(), now.Month()

	bibleStudy := &model.ServiceType{
		ID:    1,
		Name:  "Изучение",
		Color: "#1565c0",
	}
	worship := &model.ServiceType{
		ID:    2,
		Name:  "Собрание",
		Color: "#2e7d32",
	}

	// Богослужения: среда 19:30 и воскресенье 10:00 весь месяц
	var services []*model.Service
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		switch day.Weekday() {
		case time.Wednesday:
			services = append(services, &model.Service{
				ID:            int64(len(services) + 1),
				Date:          day,
				StartHour:     19,
				StartMinute:   30,
				ServiceTypeID: bibleStudy.ID,
				ServiceType:   bibleStudy,
			})
		case time.Sunday:
			services = append(services, &model.Service{
				ID:            int64(len(services) + 1),
				Date:          day,
				StartHour:     10,
				StartMinute:   0,
				ServiceTypeID: worship.ID,
				ServiceType:   worship,
			})
		}
	}

	// Один сдвинутый из-за праздника день для проверки рамки
	if len(services) > 0 {
		services[0].StartHour--
		services[0].HolidayAdjusted = true
	}

	// Генерируем изображение
	imageData, err := render.NewMonthImage(year, month, services).Render()
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	// Сохраняем в файл
	filename := "month.png"
	err = os.WriteFile(filename, imageData, 0644)
	if err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📅 Месяц: %02d.%d\n", month, year)
	fmt.Printf("📊 Богослужений: %d\n", len(services))
}
