// file: services/flag_service.go
package services

import (
	"regexp"
	"strings"
	"unicode"

	"FlagCore/database"
	"FlagCore/models"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

var flagToken = regexp.MustCompile(`[0-9a-f]{32}`)

// CorrectFlag canonicalizes pasted flag input. All whitespace is
// stripped and the input lowercased before searching for a 32-char hex
// token; anything without such a token is returned untouched so that
// the flag lookup fails on the original input.
func CorrectFlag(raw string) string {
	filtered := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	filtered = strings.ToLower(filtered)

	if match := flagToken.FindString(filtered); match != "" {
		return "__flag__{" + match + "}"
	}
	return raw
}

// GenerateFlag produces a fresh random flag value.
func GenerateFlag() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "__flag__{" + hex + "}"
}

// CreateFlag inserts or replaces a flag for an existing challenge. An
// empty flag value gets a generated one.
func CreateFlag(cid string, maxSubmissions int, flag string) (string, error) {
	if flag == "" {
		flag = GenerateFlag()
	}
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "fid"}},
		UpdateAll: true,
	}).Create(&models.Flag{
		FID:            flag,
		CID:            cid,
		MaxSubmissions: maxSubmissions,
	}).Error
	if err != nil {
		return "", err
	}
	return flag, nil
}
