package format

// PluralizeServices возвращает правильное склонение слова "богослужение"
func PluralizeServices(count int) string {
	if count%10 == 1 && count%100 != 11 {
		return "богослужение"
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return "богослужения"
	}
	return "богослужений"
}

// PluralizeSongs возвращает правильное склонение слова "песня"
func PluralizeSongs(count int) string {
	if count%10 == 1 && count%100 != 11 {
		return "песня"
	}
	if count%10 >= 2 && count%10 <= 4 && (count%100 < 10 || count%100 >= 20) {
		return "песни"
	}
	return "песен"
}
