package repositories

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"

	"jobtalk/domain"
)

// Directory is the badger-backed, read-only view over the user, job and
// application records owned by the external job-board system. The messaging
// core only ever reads them; cmd/tools seeds them for local runs and tests.
type Directory struct {
	db *badger.DB
}

func NewDirectory(db *badger.DB) *Directory {
	return &Directory{db: db}
}

type diskUser struct {
	ID      string `cbor:"id"`
	Name    string `cbor:"name"`
	Email   string `cbor:"email"`
	Role    string `cbor:"role"`
	Blocked bool   `cbor:"blocked"`
}

type diskJob struct {
	ID         string `cbor:"id"`
	Title      string `cbor:"title"`
	EmployerID string `cbor:"employer_id"`
}

type diskApplication struct {
	ID        string `cbor:"id"`
	JobID     string `cbor:"job_id"`
	UserID    string `cbor:"user_id"`
	Status    string `cbor:"status"`
	CreatedAt int64  `cbor:"created_at"`
}

func userKey(userID string) []byte { return []byte("user:" + userID) }
func jobKey(jobID string) []byte   { return []byte("job:" + jobID) }

// Application keys are "app:{job}:{user}" so Exists is a point lookup and
// ListApplicants is a prefix scan.
func applicationKey(jobID, userID string) []byte {
	return []byte(fmt.Sprintf("app:%s:%s", jobID, userID))
}

// get decodes one record; missing keys surface as found=false, not errors.
func (d *Directory) get(key []byte, out any) (bool, error) {
	err := d.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cbor.Unmarshal(val, out)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetSnapshot implements contract.UserDirectory. A deleted user yields
// (nil, nil) so read paths can degrade instead of failing.
func (d *Directory) GetSnapshot(_ context.Context, userID string) (*domain.UserSnapshot, error) {
	var record diskUser
	found, err := d.get(userKey(userID), &record)
	if err != nil || !found {
		return nil, err
	}
	return &domain.UserSnapshot{
		ID:    record.ID,
		Name:  record.Name,
		Email: record.Email,
		Role:  domain.Role(record.Role),
	}, nil
}

// IsBlocked reports whether the user is administratively blocked. Unknown
// users are not blocked; they fail credential resolution instead.
func (d *Directory) IsBlocked(_ context.Context, userID string) (bool, error) {
	var record diskUser
	found, err := d.get(userKey(userID), &record)
	if err != nil || !found {
		return false, err
	}
	return record.Blocked, nil
}

// GetJobSnapshot implements contract.JobDirectory.
func (d *Directory) GetJobSnapshot(_ context.Context, jobID string) (*domain.JobSnapshot, error) {
	var record diskJob
	found, err := d.get(jobKey(jobID), &record)
	if err != nil || !found {
		return nil, err
	}
	return &domain.JobSnapshot{
		ID:         record.ID,
		Title:      record.Title,
		EmployerID: record.EmployerID,
	}, nil
}

// Exists implements contract.ApplicationDirectory.
func (d *Directory) Exists(_ context.Context, jobID, userID string) (bool, error) {
	var record diskApplication
	return d.get(applicationKey(jobID, userID), &record)
}

// ListApplicants returns every application for a job, in key order.
func (d *Directory) ListApplicants(_ context.Context, jobID string) ([]domain.Application, error) {
	return d.scanApplications([]byte("app:"+jobID+":"), nil)
}

// ListApplications returns every application filed by one user. Applications
// are keyed by job, so this is a filtered full scan; application counts per
// user are small.
func (d *Directory) ListApplications(_ context.Context, userID string) ([]domain.Application, error) {
	return d.scanApplications([]byte("app:"), func(a domain.Application) bool {
		return a.UserID == userID
	})
}

func (d *Directory) scanApplications(prefix []byte, keep func(domain.Application) bool) ([]domain.Application, error) {
	var applications []domain.Application
	err := d.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record diskApplication
			if err := it.Item().Value(func(val []byte) error {
				return cbor.Unmarshal(val, &record)
			}); err != nil {
				return err
			}
			application := toApplication(record)
			if keep == nil || keep(application) {
				applications = append(applications, application)
			}
		}
		return nil
	})
	return applications, err
}

func toApplication(record diskApplication) domain.Application {
	return domain.Application{
		ID:        record.ID,
		JobID:     record.JobID,
		UserID:    record.UserID,
		Status:    record.Status,
		CreatedAt: time.Unix(0, record.CreatedAt).UTC(),
	}
}

// PutUser, PutJob and PutApplication write directory records. The records
// belong to the job-board system; these writers exist for the dev seeder and
// the test suites that stand in for it.
func (d *Directory) PutUser(user domain.UserSnapshot, blocked bool) error {
	return d.put(userKey(user.ID), diskUser{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    string(user.Role),
		Blocked: blocked,
	})
}

func (d *Directory) PutJob(job domain.JobSnapshot) error {
	return d.put(jobKey(job.ID), diskJob{
		ID:         job.ID,
		Title:      job.Title,
		EmployerID: job.EmployerID,
	})
}

func (d *Directory) PutApplication(application domain.Application) error {
	return d.put(applicationKey(application.JobID, application.UserID), diskApplication{
		ID:        application.ID,
		JobID:     application.JobID,
		UserID:    application.UserID,
		Status:    application.Status,
		CreatedAt: application.CreatedAt.UnixNano(),
	})
}

func (d *Directory) put(key []byte, record any) error {
	bytes, err := cbor.Marshal(record)
	if err != nil {
		return err
	}
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, bytes)
	})
}
