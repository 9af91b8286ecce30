package tui

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/huddle/internal/config/colors"
	"github.com/thenoetrevino/huddle/internal/notify"
)

// NotificationTTL is how long a notification stays on screen
const NotificationTTL = 4 * time.Second

type severityStyle struct {
	icon       string
	title      string
	foreground string
}

func levelStyle(level notify.Level, scheme colors.ColorScheme) severityStyle {
	switch level {
	case notify.LevelSuccess:
		return severityStyle{icon: "✓", title: "Success", foreground: scheme.SuccessFg}
	case notify.LevelWarning:
		return severityStyle{icon: "⚠", title: "Warning", foreground: scheme.WarningFg}
	case notify.LevelError:
		return severityStyle{icon: "✕", title: "Error", foreground: scheme.ErrorFg}
	default:
		return severityStyle{icon: "🔔", title: "Info", foreground: scheme.InfoFg}
	}
}

// renderNotification renders a notification banner based on its level
func renderNotification(n notify.Notification, scheme colors.ColorScheme) string {
	style := levelStyle(n.Level, scheme)

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(n.Message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	message := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(n.Message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.foreground)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, message))
}

// renderNotifications stacks the banners of every live notification, newest last
func renderNotifications(items []notify.Notification, scheme colors.ColorScheme) string {
	if len(items) == 0 {
		return ""
	}
	banners := make([]string, 0, len(items))
	for _, n := range items {
		banners = append(banners, renderNotification(n, scheme))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, banners...)
}
