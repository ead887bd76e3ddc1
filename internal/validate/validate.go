// Package validate содержит проверки формы входных данных: идентификаторы
// и тела запросов на создание сущностей. Проверки не ходят в хранилище.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/GoArmGo/CatalogApp/internal/domain"
)

var (
	objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// IsObjectID сообщает, является ли строка правдоподобной ссылкой на документ:
// 24 шестнадцатеричных символа (текстовая форма MongoDB ObjectID).
// Правдоподобие не означает, что документ существует.
func IsObjectID(id string) bool {
	return objectIDPattern.MatchString(id)
}

// ValidateID проверяет форму идентификатора на границе HTTP:
// непустая строка, являющаяся либо валидным ObjectID,
// либо строкой длиной не менее 3 символов.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("ID is required and must be a valid string")
	}
	if IsObjectID(id) {
		return nil
	}
	if len(strings.TrimSpace(id)) < 3 {
		return fmt.Errorf("ID must be at least 3 characters long or be a valid ObjectId")
	}
	return nil
}

// ValidateCreateUserRequest проверяет тело запроса на создание пользователя.
func ValidateCreateUserRequest(req domain.CreateUserRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("Email is required and must be a valid string")
	}
	if !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("Email must be a valid email address")
	}
	return nil
}

// ValidateCreateMediaRequest проверяет тело запроса на создание медиа-единицы.
func ValidateCreateMediaRequest(req domain.CreateMediaRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("Title is required and must be a valid string")
	}
	if strings.TrimSpace(req.Description) == "" {
		return fmt.Errorf("Description is required and must be a valid string")
	}
	if req.Type != domain.MediaTypeMovie && req.Type != domain.MediaTypeSeries {
		return fmt.Errorf(`Type must be "movie" or "series"`)
	}
	maxYear := time.Now().Year() + 5
	if req.ReleaseYear < 1900 || req.ReleaseYear > maxYear {
		return fmt.Errorf("Release year must be a valid number between 1900 and %d", maxYear)
	}
	if strings.TrimSpace(req.Genre) == "" {
		return fmt.Errorf("Genre is required and must be a valid string")
	}
	return nil
}
