// Package notify shows desktop notifications through whichever notification
// tool is installed.
package notify

import (
	"fmt"

	"github.com/bnema/tabletray/internal/logger"
	"github.com/bnema/tabletray/internal/tool"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	Error NotificationType = iota
	Info
)

func (t NotificationType) String() string {
	if t == Error {
		return "error"
	}
	return "info"
}

type notificationTool struct {
	name      string
	buildArgs func(title, message string, nType NotificationType) []string
}

func urgency(nType NotificationType) string {
	if nType == Error {
		return "critical"
	}
	return "normal"
}

var notificationTools = []notificationTool{
	{
		name: "notify-send",
		buildArgs: func(title, message string, nType NotificationType) []string {
			return []string{"-u", urgency(nType), "-a", "tabletray", title, message}
		},
	},
	{
		name: "dunstify",
		buildArgs: func(title, message string, nType NotificationType) []string {
			return []string{"-u", urgency(nType), "-t", "5000", title, message}
		},
	},
	{
		name: "zenity",
		buildArgs: func(title, message string, nType NotificationType) []string {
			flag := "--info"
			if nType == Error {
				flag = "--error"
			}
			return []string{flag, "--title", title, "--text", message}
		},
	},
}

// ToolNames lists the notification tools in the order they are tried
func ToolNames() []string {
	names := make([]string, 0, len(notificationTools))
	for _, t := range notificationTools {
		names = append(names, t.name)
	}
	return names
}

// Notifier sends notifications, falling back to the log
type Notifier struct {
	runner   tool.Runner
	lookPath func(string) (string, bool)
	enabled  bool
}

// New creates a notifier. A disabled notifier only logs.
func New(r tool.Runner, enabled bool) *Notifier {
	return &Notifier{
		runner:   r,
		lookPath: tool.Available,
		enabled:  enabled,
	}
}

// Error shows an error notification
func (n *Notifier) Error(title, message string) error {
	return n.Show(title, message, Error)
}

// Show tries each known tool in order and stops at the first that succeeds
func (n *Notifier) Show(title, message string, nType NotificationType) error {
	if !n.enabled {
		logger.Debug("Notifications disabled", "title", title, "message", message)
		return nil
	}

	for _, t := range notificationTools {
		if _, ok := n.lookPath(t.name); !ok {
			continue
		}
		if _, err := n.runner.Run(t.name, t.buildArgs(title, message, nType)...); err != nil {
			logger.Debug("Notification tool failed", "tool", t.name, "err", err)
			continue
		}
		logger.Debug("Notification sent", "tool", t.name, "type", nType)
		return nil
	}

	logger.Warn("No notification tool available", "title", title, "message", message)
	return fmt.Errorf("no notification tools available")
}
