package service

import "errors"

// Ошибки ввода, которые обнаруживает сервисный слой
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidPreferenceValue = errors.New("preference value does not match its data type")
)
