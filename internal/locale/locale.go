// Package locale maps language codes to the bot's display strings. Pure
// lookup tables, no state.
package locale

// Supported language codes.
const (
	LangRU = "ru"
	LangHY = "hy"
	LangEN = "en"
)

// DefaultLanguage is used until a user picks one.
const DefaultLanguage = LangRU

// Labels maps the language keyboard button labels to language codes.
var Labels = map[string]string{
	"Русский": LangRU,
	"Հայերեն": LangHY,
	"English": LangEN,
}

// LanguageCode resolves a keyboard label to a language code.
func LanguageCode(label string) (string, bool) {
	code, ok := Labels[label]
	return code, ok
}

// Texts returns the string table for a language, falling back to the default
// language for unknown codes.
func Texts(lang string) map[string]string {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations[DefaultLanguage]
}

// ShortDays returns localized weekday abbreviations, Monday first.
func ShortDays(lang string) []string {
	if d, ok := shortDays[lang]; ok {
		return d
	}
	return shortDays[DefaultLanguage]
}

// MonthName returns the localized genitive month name for 1-based month
// numbers, used in the confirmation summary ("30 января").
func MonthName(lang string, month int) string {
	names, ok := months[lang]
	if !ok {
		names = months[DefaultLanguage]
	}
	if month < 1 || month > 12 {
		return ""
	}
	return names[month-1]
}

var shortDays = map[string][]string{
	LangRU: {"пн", "вт", "ср", "чт", "пт", "сб", "вс"},
	LangHY: {"երկ", "երք", "չրք", "հնգ", "ուրբ", "շբթ", "կիր"},
	LangEN: {"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
}

var months = map[string][]string{
	LangRU: {
		"января", "февраля", "марта", "апреля", "мая", "июня",
		"июля", "августа", "сентября", "октября", "ноября", "декабря",
	},
	LangHY: {
		"հունվարի", "փետրվարի", "մարտի", "ապրիլի", "մայիսի", "հունիսի",
		"հուլիսի", "օգոստոսի", "սեպտեմբերի", "հոկտեմբերի", "նոյեմբերի", "դեկտեմբերի",
	},
	LangEN: {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
}

var translations = map[string]map[string]string{
	LangRU: {
		"welcome":               "Добро пожаловать в Reservon Bot!",
		"choose_language":       "Выберите язык:",
		"language_set":          "Язык установлен: Русский",
		"select_language_error": "Пожалуйста, выберите доступный язык.",
		"ask_salon":             "Выберите салон:",
		"salon_chosen":          "Салон выбран: ",
		"salon_not_found":       "Салон не найден.",
		"ask_barber":            "Выберите мастера:",
		"barber_chosen":         "Вы выбрали мастера: ",
		"barber_not_found":      "Ошибка: мастер не найден!",
		"choose_barber_button":  "Выбрать",
		"ask_services":          "Выберите услуги и нажмите готово.",
		"services_chosen":       "Вы выбрали: ",
		"no_services_chosen":    "Вы не выбрали ни одной услуги. (Будет 30 мин по умолчанию)",
		"total_duration":        "общая длительность",
		"minutes_suffix":        "мин",
		"done":                  "Готово",
		"change_barber":         "Сменить мастера",
		"change_services":       "Изменить услуги",
		"change_day":            "Изменить день",
		"change_hour":           "Изменить час",
		"ask_day":               "Выберите день:",
		"ask_hour":              "Выберите примерный час:",
		"ask_minutes":           "Выберите точное время:",
		"no_hours":              "Нет доступных часов для этого дня.",
		"no_minutes":            "Нет доступных минут для этого часа.",
		"no_slots":              "Нет свободного времени рядом с выбранным часом.",
		"server_error":          "Ошибка сервера.",
		"summary_barber":        "Мастер",
		"summary_services":      "Услуги",
		"summary_chosen":        "Вы выбрали",
		"summary_none":          "не выбраны",
		"confirm":               "Подтвердить",
		"cancel":                "Отменить",
		"final_confirmation":    "Подтвердить бронирование?",
		"booking_done":          "Бронирование успешно!",
		"booking_failed":        "Не удалось создать бронирование: ",
		"booking_incomplete":    "Дата/время не выбраны.",
		"booking_cancelled":     "Вы отменили бронирование.",
		"share_phone":           "Поделиться номером телефона",
		"ask_phone":             "Поделитесь номером телефона или нажмите 'Отмена':",
		"phone_cancel":          "Отмена",
		"phone_received":        "Спасибо! Ваш номер: ",
		"phone_repeat":          "Нажмите кнопку 'Поделиться номером' или 'Отмена'.",
		"booking_in_progress":   "Оформляем бронирование...",
		"invalid_option":        "Пожалуйста, выберите доступную опцию.",
		"start_hint":            "Введите команду /start, чтобы начать.",
	},
	LangHY: {
		"welcome":               "Բարի գալուստ Reservon Bot!",
		"choose_language":       "Ընտրեք լեզուն:",
		"language_set":          "Լեզուն ընտրված է: Հայերեն",
		"select_language_error": "Խնդրում ենք ընտրել հասանելի լեզուն.",
		"ask_salon":             "Ընտրեք սալոնը:",
		"salon_chosen":          "Սալոնը ընտրված է: ",
		"salon_not_found":       "Սալոնը չի գտնվել.",
		"ask_barber":            "Ընտրեք վարպետին:",
		"barber_chosen":         "Դուք ընտրել եք - ",
		"barber_not_found":      "Սխալ. վարպետը չի գտնվել!",
		"choose_barber_button":  "Ընտրել",
		"ask_services":          "Ընտրեք ծառայությունները եւ սեղմեք ավարտել.",
		"services_chosen":       "Դուք ընտրել եք: ",
		"no_services_chosen":    "Դուք ոչ մի ծառայություն չեք ընտրել. (30 րոպե լռելյայն)",
		"total_duration":        "ընդհանուր տեւողություն",
		"minutes_suffix":        "րոպե",
		"done":                  "Ավարտել",
		"change_barber":         "Փոխել վարպետին",
		"change_services":       "Փոխել ծառայությունները",
		"change_day":            "Փոխել օրը",
		"change_hour":           "Փոխել ժամը",
		"ask_day":               "Ընտրեք օրը:",
		"ask_hour":              "Ընտրեք մոտավոր ժամը:",
		"ask_minutes":           "Ընտրեք ճշգրիտ ժամը:",
		"no_hours":              "Այս օրվա համար հասանելի ժամեր չկան.",
		"no_minutes":            "Այս ժամի համար հասանելի րոպեներ չկան.",
		"no_slots":              "Ընտրված ժամի մոտ ազատ ժամանակ չկա.",
		"server_error":          "Սերվերի սխալ.",
		"summary_barber":        "Վարպետ",
		"summary_services":      "Ծառայություններ",
		"summary_chosen":        "Դուք ընտրել եք",
		"summary_none":          "ընտրված չեն",
		"confirm":               "Հաստատել",
		"cancel":                "Չեղարկել",
		"final_confirmation":    "Հաստատե՞լ ամրագրումը",
		"booking_done":          "Ամրագրումը հաջողվեց!",
		"booking_failed":        "Չհաջողվեց ստեղծել ամրագրումը: ",
		"booking_incomplete":    "Ամսաթիվը/ժամը ընտրված չեն.",
		"booking_cancelled":     "Դուք չեղարկեցիք ամրագրումը.",
		"share_phone":           "Կիսվել հեռախոսահամարով",
		"ask_phone":             "Կիսվեք հեռախոսահամարով կամ սեղմեք 'Չեղարկել':",
		"phone_cancel":          "Չեղարկել",
		"phone_received":        "Շնորհակալություն! Ձեր համարը: ",
		"phone_repeat":          "Սեղմեք 'Կիսվել համարով' կամ 'Չեղարկել' կոճակը.",
		"booking_in_progress":   "Ձեւակերպում ենք ամրագրումը...",
		"invalid_option":        "Խնդրում ենք ընտրել հասանելի տարբերակը.",
		"start_hint":            "Մուտքագրեք /start հրամանը սկսելու համար.",
	},
	LangEN: {
		"welcome":               "Welcome to Reservon Bot!",
		"choose_language":       "Choose a language:",
		"language_set":          "Language set: English",
		"select_language_error": "Please select a valid language.",
		"ask_salon":             "Choose a salon:",
		"salon_chosen":          "Salon chosen: ",
		"salon_not_found":       "Salon not found.",
		"ask_barber":            "Choose a barber:",
		"barber_chosen":         "Barber chosen: ",
		"barber_not_found":      "Error: barber not found!",
		"choose_barber_button":  "Choose",
		"ask_services":          "Select services and press done.",
		"services_chosen":       "You chose: ",
		"no_services_chosen":    "You did not choose any service. (30 min by default)",
		"total_duration":        "total duration",
		"minutes_suffix":        "min",
		"done":                  "Done",
		"change_barber":         "Change barber",
		"change_services":       "Change services",
		"change_day":            "Change day",
		"change_hour":           "Change hour",
		"ask_day":               "Choose a day:",
		"ask_hour":              "Choose an approximate hour:",
		"ask_minutes":           "Choose the exact time:",
		"no_hours":              "No available hours for this day.",
		"no_minutes":            "No available minutes for this hour.",
		"no_slots":              "No free time near the chosen hour.",
		"server_error":          "Server error.",
		"summary_barber":        "Barber",
		"summary_services":      "Services",
		"summary_chosen":        "You chose",
		"summary_none":          "none chosen",
		"confirm":               "Confirm",
		"cancel":                "Cancel",
		"final_confirmation":    "Confirm booking?",
		"booking_done":          "Booking successful!",
		"booking_failed":        "Failed to create booking: ",
		"booking_incomplete":    "Date/time not chosen.",
		"booking_cancelled":     "You cancelled the booking.",
		"share_phone":           "Share phone number",
		"ask_phone":             "Share your phone number or press 'Cancel':",
		"phone_cancel":          "Cancel",
		"phone_received":        "Thank you! Your number: ",
		"phone_repeat":          "Press the 'Share phone' or 'Cancel' button.",
		"booking_in_progress":   "Creating your booking...",
		"invalid_option":        "Please choose an available option.",
		"start_hint":            "Type /start to begin.",
	},
}
