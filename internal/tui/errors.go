// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/tzy-lab/paperdesk/internal/service"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrServerUnavailable) {
		return "Отсутствует сеть или Сервер недоступен"
	}

	switch {
	case errors.Is(err, service.ErrWrongCredentials):
		return "Неверный логин или пароль"
	case errors.Is(err, service.ErrLoginAlreadyExists):
		return "Такой логин уже занят"
	case errors.Is(err, service.ErrEmptyCredentials):
		return "Логин и пароль обязательны"
	case errors.Is(err, service.ErrPasswordMismatch):
		return "Пароли не совпадают"
	case errors.Is(err, service.ErrSessionExpired):
		return "Сессия истекла, войдите заново"
	case errors.Is(err, service.ErrNotImplemented):
		return "Вход через внешние сервисы пока не поддерживается"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
