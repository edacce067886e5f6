// Package validation contains field-level validators for API input.
package validation

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	MaxNameLen     = 50
	MaxBioLen      = 500
	MaxTitleLen    = 100
	MinPasswordLen = 6

	// MaxImageBytes is the upload size ceiling for a single image.
	MaxImageBytes = 5 * 1024 * 1024
)

var emailRegex = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,}$`)

// allowed image extensions and their MIME types
var imageExtensions = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true, ".webp": true,
}

var imageMimeTypes = map[string]bool{
	"image/jpeg": true, "image/jpg": true, "image/png": true,
	"image/gif": true, "image/webp": true,
}

// ValidateName checks the user display name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("Name is required")
	}
	if len(name) > MaxNameLen {
		return errors.New("Name cannot be more than 50 characters")
	}
	return nil
}

// ValidateEmail checks the email address format.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errors.New("Email is required")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("Please add a valid email")
	}
	return nil
}

// ValidatePassword checks the plaintext password before hashing.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("Password is required")
	}
	if len(password) < MinPasswordLen {
		return errors.New("Password must be at least 6 characters")
	}
	return nil
}

// ValidateBio checks the optional profile bio.
func ValidateBio(bio string) error {
	if len(bio) > MaxBioLen {
		return errors.New("Bio cannot be more than 500 characters")
	}
	return nil
}

// ValidateTitle checks the blog post title.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("Title is required")
	}
	if len(title) > MaxTitleLen {
		return errors.New("Title cannot be more than 100 characters")
	}
	return nil
}

// ValidateContent checks the blog post body.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.New("Content is required")
	}
	return nil
}

// ValidateImageFile gates an upload on extension, MIME type and size before
// any bytes are sent to the media host.
func ValidateImageFile(filename, contentType string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return errors.New("Only image files are allowed")
	}
	if contentType != "" && !imageMimeTypes[strings.ToLower(contentType)] {
		return errors.New("Only image files are allowed")
	}
	if size > MaxImageBytes {
		return errors.New("Image must be smaller than 5MB")
	}
	return nil
}
