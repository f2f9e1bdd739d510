package i18n

// Message keys.
const (
	TimerFocus         = "timer.focus"
	TimerShortBreak    = "timer.shortBreak"
	TimerLongBreak     = "timer.longBreak"
	TimerSession       = "timer.session"
	TimerStreak        = "timer.streak"
	TimerToday         = "timer.today"
	TimerComplete      = "timer.complete"
	TimerCompleteBody  = "timer.completeBody"
	TimerBreakComplete = "timer.breakComplete"
	TimerBreakBody     = "timer.breakBody"
	TimerNoTask        = "timer.noTask"
	TimerDeletedTask   = "timer.deletedTask"
	TimerPaused        = "timer.paused"

	SettingsTitle           = "settings.title"
	SettingsLanguage        = "settings.language"
	SettingsWork            = "settings.work"
	SettingsShort           = "settings.short"
	SettingsLong            = "settings.long"
	SettingsAutoStartBreaks = "settings.autoStartBreaks"
	SettingsMinutes         = "settings.minutes"

	StatsTitle         = "stats.title"
	StatsOverview      = "stats.overview"
	StatsTime          = "stats.time"
	StatsDistribution  = "stats.distribution"
	StatsTotalHours    = "stats.totalHours"
	StatsSessionsToday = "stats.sessionsToday"
	StatsTotalSessions = "stats.totalSessions"
	StatsAccuracy      = "stats.accuracy"
	StatsUnderestimate = "stats.underestimate"
	StatsOverestimate  = "stats.overestimate"
	StatsRealVsEst     = "stats.realVsEst"
	StatsGoldenHour    = "stats.goldenHour"
	StatsBestDay       = "stats.bestDay"
	StatsAreaTime      = "stats.areaTime"
	StatsActivity      = "stats.activity"
	StatsNoData        = "stats.noData"
	StatsHistory       = "stats.history"
	StatsDate          = "stats.date"
	StatsDuration      = "stats.duration"
	StatsTask          = "stats.task"
	StatsEmptyHistory  = "stats.emptyHistory"
	StatsUnassigned    = "stats.unassigned"
	StatsOther         = "stats.other"
	StatsFreeSession   = "stats.freeSession"
	StatsDeletedItem   = "stats.deletedItem"
	StatsSessionCount  = "stats.sessionCount"
	StatsLess          = "stats.less"
	StatsMore          = "stats.more"
)
