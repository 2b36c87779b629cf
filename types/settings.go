package types

// ReminderSchedule controls the periodic reminder loop.
type ReminderSchedule struct {
	Enabled bool  `json:"enabled"`
	Hours   []int `json:"hours"`
}

// AnnouncementSchedule controls the periodic announcement loop.
type AnnouncementSchedule struct {
	Enabled bool     `json:"enabled"`
	Days    []string `json:"days"`
	Hour    *int     `json:"hour"`
}

// ScheduleSettings holds the enable flags and trigger rules for both loops.
type ScheduleSettings struct {
	Reminders     ReminderSchedule     `json:"reminders"`
	Announcements AnnouncementSchedule `json:"announcements"`
}

// Settings is the bot runtime configuration loaded from settings.json.
type Settings struct {
	CommandPrefix    string           `json:"command_prefix"`
	DefaultChannelID string           `json:"default_channel_id"`
	Schedule         ScheduleSettings `json:"schedule"`
}
