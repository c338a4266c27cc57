package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/Freeeeeet/congregation_scheduler/internal/controller/format"
	"github.com/Freeeeeet/congregation_scheduler/internal/model"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	imageWidth     = 1120
	imageHeight    = 860
	headerHeight   = 70
	weekdayRowH    = 30
	cellPadding    = 6
	markerHeight   = 22
	markerRadius   = 4.0
	totalWeekCols  = 7
	maxWeekRows    = 6
	dayNumberInset = 18
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	gridColor        = color.NRGBA{200, 203, 207, 255}
	headerTextColor  = color.RGBA{60, 64, 70, 255}
	dayNumberColor   = color.RGBA{90, 95, 100, 255}
	otherMonthColor  = color.NRGBA{235, 236, 238, 255}
	weekendBgColor   = color.NRGBA{238, 240, 244, 255}
	markerFallback   = color.RGBA{120, 144, 156, 255}
	markerTextColor  = color.RGBA{255, 255, 255, 255}
	adjustedRimColor = color.RGBA{230, 81, 0, 255}
)

// MonthImage рисует календарь месяца с богослужениями
type MonthImage struct {
	year     int
	month    time.Month
	services []*model.Service
}

// NewMonthImage создаёт рендерер для месяца
func NewMonthImage(year int, month time.Month, services []*model.Service) *MonthImage {
	return &MonthImage{
		year:     year,
		month:    month,
		services: services,
	}
}

// Render рисует календарь и возвращает PNG
func (m *MonthImage) Render() ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	m.drawHeader(dc)
	m.drawWeekdayRow(dc)
	m.drawGrid(dc)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode month image: %w", err)
	}

	return buf.Bytes(), nil
}

func (m *MonthImage) drawHeader(dc *gg.Context) {
	title := fmt.Sprintf("%s %d", format.GetMonthName(m.month), m.year)
	dc.SetColor(headerTextColor)
	dc.DrawStringAnchored(title, imageWidth/2, headerHeight/2, 0.5, 0.5)
}

func (m *MonthImage) drawWeekdayRow(dc *gg.Context) {
	cellW := float64(imageWidth) / totalWeekCols

	dc.SetColor(headerTextColor)
	for col := 0; col < totalWeekCols; col++ {
		// Неделя отображается с понедельника
		weekday := (col + 1) % 7
		x := cellW*float64(col) + cellW/2
		dc.DrawStringAnchored(format.GetWeekdayShortName(weekday), x, headerHeight+weekdayRowH/2, 0.5, 0.5)
	}
}

func (m *MonthImage) drawGrid(dc *gg.Context) {
	cellW := float64(imageWidth) / totalWeekCols
	gridTop := float64(headerHeight + weekdayRowH)
	cellH := (float64(imageHeight) - gridTop) / maxWeekRows

	firstDay := time.Date(m.year, m.month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	// Колонка первого числа при неделе с понедельника
	startCol := (int(firstDay.Weekday()) + 6) % 7

	servicesByDay := make(map[int][]*model.Service)
	for _, svc := range m.services {
		servicesByDay[svc.Date.Day()] = append(servicesByDay[svc.Date.Day()], svc)
	}

	for row := 0; row < maxWeekRows; row++ {
		for col := 0; col < totalWeekCols; col++ {
			x := cellW * float64(col)
			y := gridTop + cellH*float64(row)
			day := row*totalWeekCols + col - startCol + 1

			if day < 1 || day > daysInMonth {
				dc.SetColor(otherMonthColor)
				dc.DrawRectangle(x, y, cellW, cellH)
				dc.Fill()
				continue
			}

			if col >= 5 { // суббота и воскресенье
				dc.SetColor(weekendBgColor)
				dc.DrawRectangle(x, y, cellW, cellH)
				dc.Fill()
			}

			dc.SetColor(dayNumberColor)
			dc.DrawStringAnchored(fmt.Sprintf("%d", day), x+dayNumberInset, y+dayNumberInset, 0.5, 0.5)

			m.drawDayServices(dc, servicesByDay[day], x, y, cellW)
		}
	}

	// Сетка поверх ячеек
	dc.SetColor(gridColor)
	dc.SetLineWidth(1)
	for col := 0; col <= totalWeekCols; col++ {
		x := cellW * float64(col)
		dc.DrawLine(x, gridTop, x, imageHeight)
	}
	for row := 0; row <= maxWeekRows; row++ {
		y := gridTop + cellH*float64(row)
		dc.DrawLine(0, y, imageWidth, y)
	}
	dc.Stroke()
}

func (m *MonthImage) drawDayServices(dc *gg.Context, services []*model.Service, x, y, cellW float64) {
	markerY := y + float64(dayNumberInset) + cellPadding*2

	for _, svc := range services {
		markerColor := markerFallback
		if svc.ServiceType != nil {
			if parsed, ok := parseHexColor(svc.ServiceType.Color); ok {
				markerColor = parsed
			}
		}

		dc.SetColor(markerColor)
		dc.DrawRoundedRectangle(x+cellPadding, markerY, cellW-cellPadding*2, markerHeight, markerRadius)
		dc.Fill()

		if svc.HolidayAdjusted {
			dc.SetColor(adjustedRimColor)
			dc.SetLineWidth(2)
			dc.DrawRoundedRectangle(x+cellPadding, markerY, cellW-cellPadding*2, markerHeight, markerRadius)
			dc.Stroke()
		}

		label := format.FormatClock(svc.StartHour, svc.StartMinute)
		if svc.ServiceType != nil {
			label = label + " " + svc.ServiceType.Name
		}

		dc.SetColor(markerTextColor)
		dc.DrawStringAnchored(label, x+cellW/2, markerY+markerHeight/2, 0.5, 0.5)

		markerY += markerHeight + cellPadding
	}
}

// parseHexColor разбирает цвет вида "#rrggbb"
func parseHexColor(s string) (color.RGBA, bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}

	var r, g, b uint8
	_, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b)
	if err != nil {
		return color.RGBA{}, false
	}

	return color.RGBA{r, g, b, 255}, true
}
