// file: services/submission_service.go
package services

import (
	"database/sql"
	"errors"
	"time"

	"FlagCore/database"
	"FlagCore/models"

	"gorm.io/gorm"
)

// Audit event types written by Submit. Every attempt, rejected or not,
// produces exactly one event.
const (
	EventFlagSubmit   = "flag-submit"
	EventFlagUnknown  = "flag-err-unknown"
	EventFlagInactive = "flag-err-inactive"
	EventFlagSolved   = "flag-err-solved"
	EventFlagUsed     = "flag-err-used"
)

// ValidationError is a rejected submission. Type matches the audit
// event written for the rejection; Message is safe to show the user.
type ValidationError struct {
	Type    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Submit validates a flag submission and credits the user on success,
// returning the challenge id the flag belongs to.
//
// The checks run in order and the first failure wins: user exists,
// flag exists, challenge active (skipped with force), not already
// credited, flag not exhausted (skipped with force). All reads, the
// audit event and the submission row share one serializable
// transaction, so two submissions racing for a flag's last slot cannot
// both pass the exhaustion check; the losing transaction surfaces a
// store error and should be retried as a fresh attempt.
//
// A rejection still commits its audit event: the transaction is only
// rolled back on store-level failure.
func Submit(rawFlag, uid string, src IPSource, force bool) (string, error) {
	flag := CorrectFlag(rawFlag)
	ip := IP(src.ClientIP())

	var cid string
	var rejected *ValidationError

	reject := func(tx *gorm.DB, typ, message string, withCID bool, withUID bool) error {
		rejected = &ValidationError{Type: typ, Message: message}
		var ecid, euid *string
		if withCID {
			ecid = &cid
		}
		if withUID {
			euid = &uid
		}
		_, err := Record(tx, ip, typ, &flag, ecid, euid)
		return err
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var userCount int64
		if err := tx.Model(&models.User{}).Where("uid = ?", uid).Count(&userCount).Error; err != nil {
			return err
		}
		if userCount == 0 {
			// The identity itself is unverified, so no uid on the event.
			return reject(tx, EventFlagUnknown, "Unknown user.", false, false)
		}

		var flagRow models.Flag
		if err := tx.Where("fid = ?", flag).First(&flagRow).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return reject(tx, EventFlagUnknown, "Unknown Flag.", false, true)
			}
			return err
		}
		cid = flagRow.CID

		var challenge models.Challenge
		if err := tx.First(&challenge, "cid = ?", cid).Error; err != nil {
			return err
		}
		if !challenge.ActiveAt(time.Now()) && !force {
			return reject(tx, EventFlagInactive, "Challenge is not active.", true, true)
		}

		var credited int64
		if err := creditedSolves(tx, uid, cid).Count(&credited).Error; err != nil {
			return err
		}
		if credited > 0 {
			return reject(tx, EventFlagSolved, "Challenge already solved.", true, true)
		}

		var used int64
		if err := tx.Model(&models.Submission{}).Where("fid = ?", flagRow.FID).Count(&used).Error; err != nil {
			return err
		}
		if used >= int64(flagRow.MaxSubmissions) && !force {
			return reject(tx, EventFlagUsed, "Flag already used too often.", true, true)
		}

		if _, err := Record(tx, ip, EventFlagSubmit, &flag, &cid, &uid); err != nil {
			return err
		}
		return tx.Create(&models.Submission{UID: uid, FID: flagRow.FID}).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})

	if err != nil {
		return "", err
	}
	if rejected != nil {
		return "", rejected
	}

	InvalidateSolveBoard()
	return cid, nil
}
