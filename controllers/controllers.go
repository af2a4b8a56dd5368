package controllers

import (
	"strconv"

	apperrors "hotelbooking/errors"
)

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.InvalidInput("invalid id")
	}
	return uint(id), nil
}

func invalidBody(err error) error {
	return apperrors.NewAppError(apperrors.ErrCodeInvalidInput, "invalid request body", err)
}
