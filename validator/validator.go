package validator

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"hotelbooking/constants"
	"hotelbooking/dto"
	apperrors "hotelbooking/errors"
	"hotelbooking/models"

	playground "github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

const MinPasswordLength = 6

var (
	structValidator = playground.New()
	emailRegex      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidateStruct chạy các rule `validate` trên struct và trả về lỗi đầu tiên
func ValidateStruct(v interface{}) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}
	if fieldErrs, ok := err.(playground.ValidationErrors); ok && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewAppError(apperrors.ErrCodeInvalidInput,
			fmt.Sprintf("field %s failed rule %s", fe.Namespace(), fe.Tag()), err)
	}
	return apperrors.NewAppError(apperrors.ErrCodeInvalidInput, "invalid request", err)
}

// ParseDate accepts a calendar date (YYYY-MM-DD) or an RFC3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// ValidateBookingInput kiểm tra các trường bắt buộc và trả về ngày đã parse.
// Date ordering is checked by the caller once nights are computed.
func ValidateBookingInput(req *dto.CreateBookingRequest) (time.Time, time.Time, error) {
	if req.RoomID == 0 || req.HotelID == 0 || strings.TrimSpace(req.CheckIn) == "" ||
		strings.TrimSpace(req.CheckOut) == "" || req.Guests == 0 {
		return time.Time{}, time.Time{}, apperrors.InvalidInput("all fields are required")
	}
	if req.Guests < 0 {
		return time.Time{}, time.Time{}, apperrors.InvalidInput("guests must be at least 1")
	}

	checkIn, err := ParseDate(req.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidInput, "invalid check-in date", err)
	}
	checkOut, err := ParseDate(req.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.NewAppError(apperrors.ErrCodeInvalidInput, "invalid check-out date", err)
	}
	return checkIn, checkOut, nil
}

// ValidateRating requires a whole number in [1,5].
func ValidateRating(rating *float64) (int, error) {
	if rating == nil {
		return 0, apperrors.InvalidInput("rating must be between 1 and 5")
	}
	r := *rating
	if math.IsNaN(r) || r < constants.MinRating || r > constants.MaxRating {
		return 0, apperrors.InvalidInput("rating must be between 1 and 5")
	}
	if r != math.Trunc(r) {
		return 0, apperrors.InvalidInput("rating must be a whole number")
	}
	return int(r), nil
}

// NormalizeComment trims the comment and cuts it to MaxCommentLength runes.
func NormalizeComment(comment string) (string, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return "", apperrors.InvalidInput("comment is required")
	}
	if utf8.RuneCountInString(comment) > constants.MaxCommentLength {
		runes := []rune(comment)
		comment = string(runes[:constants.MaxCommentLength])
	}
	return comment, nil
}

// ValidateContact trims every field in place.
func ValidateContact(req *dto.ContactRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return apperrors.InvalidInput("all fields are required")
	}
	return ValidateEmail(req.Email)
}

func ValidateRegister(input *dto.RegisterInput) error {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Name = strings.TrimSpace(input.Name)
	if input.Email == "" || input.Password == "" {
		return apperrors.InvalidInput("email and password are required")
	}
	if err := ValidateEmail(input.Email); err != nil {
		return err
	}
	return ValidatePassword(input.Password)
}

func ValidateHotel(req *dto.CreateHotelRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.City = strings.TrimSpace(req.City)
	req.Country = strings.TrimSpace(req.Country)
	if err := (&models.Hotel{Stars: req.Stars}).ValidateStars(); err != nil {
		return apperrors.InvalidInput("stars must be between 1 and 5")
	}
	return ValidateStruct(req)
}

func ValidateRoom(req *dto.CreateRoomRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if err := (&models.Room{PricePerNight: req.PricePerNight}).ValidatePrice(); err != nil {
		return apperrors.InvalidInput("price per night must be positive")
	}
	return ValidateStruct(req)
}

// ValidateEmail kiểm tra email hợp lệ
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return apperrors.InvalidInput("invalid email")
	}
	return nil
}

// ValidatePassword kiểm tra mật khẩu hợp lệ
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return apperrors.InvalidInput(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	return nil
}
