package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPosterURL    = errors.New("poster URL is required")
	ErrInvalidPosterURL  = errors.New("poster URL must be an absolute http(s) URL")
	ErrTitleTooShort     = errors.New("title must be at least 2 characters")
	ErrEmptyGenre        = errors.New("genre is required")
	ErrDurationTooShort  = errors.New("duration must be greater than 60 minutes")
	ErrInvalidYear       = errors.New("invalid release year")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrSummaryTooShort   = errors.New("summary must be at least 10 characters")
	ErrEmptyCreatorEmail = errors.New("creator email is required")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")

	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrPasswordTooWeak  = errors.New("password must contain upper and lower case letters")
)
