// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("esc: quit"))

	return appStyle.Render(b.String())
}

// relativeTime renders t as "3 minutes ago (2026-05-01 10:04)", or "Never".
func relativeTime(t *time.Time, now time.Time) string {
	if t == nil || t.IsZero() {
		return "Never"
	}
	return humanize.RelTime(*t, now, "ago", "from now") + " (" + t.Local().Format("2006-01-02 15:04") + ")"
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

