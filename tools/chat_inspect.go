package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/olekukonko/tablewriter"
)

// record mirrors the on-disk message encoding so the inspector stays a
// standalone binary with no server wiring.
type record struct {
	ID            string  `cbor:"id"`
	SenderID      string  `cbor:"sender_id"`
	ReceiverID    string  `cbor:"receiver_id"`
	Body          string  `cbor:"body"`
	JobID         *string `cbor:"job_id,omitempty"`
	ApplicationID *string `cbor:"application_id,omitempty"`
	Read          bool    `cbor:"read"`
	At            int64   `cbor:"at"`
}

func main() {
	dbPath := flag.String("db", "/tmp/jobtalk", "Path to badger DB")
	// Par défaut on cherche "msg:" pour éviter de percuter les index usr:
	prefix := flag.String("prefix", "msg:", "Prefix to scan")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Timestamp", "Sender", "Receiver", "Job", "Read", "Body"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()

			// Les entrées usr: sont des pointeurs vers les clés primaires
			if strings.HasPrefix(string(item.Key()), "usr:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				var r record
				if err := cbor.Unmarshal(v, &r); err != nil {
					// Au lieu de stopper tout le script, on log l'erreur et on continue
					fmt.Printf("Error unmarshaling key %s: %v\n", string(item.Key()), err)
					return nil
				}

				jobID := ""
				if r.JobID != nil {
					jobID = *r.JobID
				}

				body := r.Body
				if len(body) > 40 {
					body = body[:40] + "…"
				}

				table.Append([]string{
					string(item.Key()),
					time.Unix(0, r.At).UTC().Format("15:04:05"),
					r.SenderID,
					r.ReceiverID,
					jobID,
					fmt.Sprintf("%t", r.Read),
					body,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		// Si corruption détectée, essaie un open en write pour truncate
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}

			// Ferme et réouvre en read-only
			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
