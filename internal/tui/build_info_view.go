// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/tzy-lab/paperdesk/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := []struct{ label, value string }{
		{"Название приложения", "PaperDesk"},
		{"Версия", info.BuildVersion()},
		{"Дата", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, row.label+": "+valueOrNA(row.value))
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", strings.Join(lines, "\n"), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
