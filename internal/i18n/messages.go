package i18n

import "github.com/ayoisaiah/focusplan/internal/models"

var messages = map[models.Language]map[string]string{
	models.English: {
		TimerFocus:         "Focus",
		TimerShortBreak:    "Short Break",
		TimerLongBreak:     "Long Break",
		TimerSession:       "Session",
		TimerStreak:        "STREAK",
		TimerToday:         "TODAY",
		TimerComplete:      "Session Complete!",
		TimerCompleteBody:  "Time to take a break or switch tasks.",
		TimerBreakComplete: "Break Over",
		TimerBreakBody:     "Let's get back to work!",
		TimerNoTask:        "No active task",
		TimerDeletedTask:   "Deleted task",
		TimerPaused:        "Paused",

		SettingsTitle:           "Settings",
		SettingsLanguage:        "Language",
		SettingsWork:            "Focus Duration",
		SettingsShort:           "Short Break",
		SettingsLong:            "Long Break",
		SettingsAutoStartBreaks: "Auto-start Breaks",
		SettingsMinutes:         "minutes",

		StatsTitle:         "Statistics Center",
		StatsOverview:      "Overview",
		StatsTime:          "Chronobiology",
		StatsDistribution:  "Distribution",
		StatsTotalHours:    "Total Hours",
		StatsSessionsToday: "Sessions Today",
		StatsTotalSessions: "Total Sessions",
		StatsAccuracy:      "Estimation Accuracy",
		StatsUnderestimate: "Underestimating",
		StatsOverestimate:  "Overestimating",
		StatsRealVsEst:     "REALITY VS EXPECTATION",
		StatsGoldenHour:    "Golden Hour",
		StatsBestDay:       "Best Day",
		StatsAreaTime:      "Time by Area",
		StatsActivity:      "Activity",
		StatsNoData:        "Not enough data yet",
		StatsHistory:       "Session Log",
		StatsDate:          "Date",
		StatsDuration:      "Duration",
		StatsTask:          "Task / Item",
		StatsEmptyHistory:  "No sessions recorded yet.",
		StatsUnassigned:    "Unassigned",
		StatsOther:         "Other",
		StatsFreeSession:   "Free session",
		StatsDeletedItem:   "Deleted item",
		StatsLess:          "Less",
		StatsMore:          "More",
	},
	models.Spanish: {
		TimerFocus:         "Enfoque",
		TimerShortBreak:    "Descanso Corto",
		TimerLongBreak:     "Descanso Largo",
		TimerSession:       "Sesión",
		TimerStreak:        "RACHA",
		TimerToday:         "HOY",
		TimerComplete:      "¡Sesión Completada!",
		TimerCompleteBody:  "Es hora de un descanso o cambiar de tarea.",
		TimerBreakComplete: "Descanso Terminado",
		TimerBreakBody:     "¡A trabajar de nuevo!",
		TimerNoTask:        "Sin tarea activa",
		TimerDeletedTask:   "Tarea eliminada",
		TimerPaused:        "En pausa",

		SettingsTitle:           "Configuración",
		SettingsLanguage:        "Idioma",
		SettingsWork:            "Duración Enfoque",
		SettingsShort:           "Descanso Corto",
		SettingsLong:            "Descanso Largo",
		SettingsAutoStartBreaks: "Iniciar descansos automáticamente",
		SettingsMinutes:         "minutos",

		StatsTitle:         "Centro de Estadísticas",
		StatsOverview:      "Resumen",
		StatsTime:          "Cronobiología",
		StatsDistribution:  "Distribución",
		StatsTotalHours:    "Total Horas",
		StatsSessionsToday: "Sesiones Hoy",
		StatsTotalSessions: "Total Sesiones",
		StatsAccuracy:      "Precisión Est.",
		StatsUnderestimate: "Subestimas tiempo",
		StatsOverestimate:  "Sobrestimas tiempo",
		StatsRealVsEst:     "REALIDAD VS EXPECTATIVA",
		StatsGoldenHour:    "Hora Dorada",
		StatsBestDay:       "Día Favorito",
		StatsAreaTime:      "Tiempo por Área",
		StatsActivity:      "Actividad",
		StatsNoData:        "No hay datos suficientes",
		StatsHistory:       "Historial",
		StatsDate:          "Fecha",
		StatsDuration:      "Duración",
		StatsTask:          "Tarea / Ítem",
		StatsEmptyHistory:  "No hay sesiones registradas aún.",
		StatsUnassigned:    "Sin asignar",
		StatsOther:         "Otro",
		StatsFreeSession:   "Sesión libre",
		StatsDeletedItem:   "Ítem eliminado",
		StatsLess:          "Menos",
		StatsMore:          "Más",
	},
}
