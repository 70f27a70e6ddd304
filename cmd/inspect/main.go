// Command inspect dumps sessions and stored results from a live or
// offline BadgerDB, for debugging what the server has persisted.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"

	"neuroview/domain"
	"neuroview/session"
)

func main() {
	dbPath := flag.String("db", "/tmp/neuroview/badger", "Path to badger DB")
	prefix := flag.String("prefix", "session:", "Prefix to scan (session: or result:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "ID", "Detail"})
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
			err := item.Value(func(v []byte) error {
				table.Append(toRow(string(item.Key()), v))
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

func toRow(key string, value []byte) []string {
	switch {
	case strings.HasPrefix(key, "session:"):
		var record session.Record
		if err := json.Unmarshal(value, &record); err != nil {
			return rawRow(key, value, err)
		}
		return []string{
			key,
			"SESSION",
			shortID(record.ID.String()),
			fmt.Sprintf("%s created %s", record.Email, record.CreatedAt.Format("15:04:05")),
		}
	case strings.HasPrefix(key, "result:"):
		var resp domain.PredictionResponse
		if err := json.Unmarshal(value, &resp); err != nil {
			return rawRow(key, value, err)
		}
		detail := string(resp.Status)
		if resp.TopPrediction != nil {
			detail = fmt.Sprintf("%s %s %.1f%%", resp.Status, resp.TopPrediction.Label, resp.TopPrediction.Percentage)
		}
		return []string{key, "RESULT", shortID(strings.TrimPrefix(key, "result:")), detail}
	default:
		return rawRow(key, value, nil)
	}
}

func rawRow(key string, value []byte, err error) []string {
	detail := fmt.Sprintf("Size: %d bytes", len(value))
	if err != nil {
		detail = fmt.Sprintf("unreadable: %v", err)
	}
	return []string{key, "RAW", "--------", detail}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	return badger.Open(opts)
}
