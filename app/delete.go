package app

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/oarlock/rowflow/internal/models"
	"github.com/oarlock/rowflow/report"
	"github.com/oarlock/rowflow/store"
)

// deleteAction handles the delete command which deletes the sessions
// matching the filter flags.
func deleteAction(ctx *cli.Context) error {
	records, db, err := recordHelper(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	return delRecords(db, records)
}

// delRecords deletes all the specified records. It requests confirmation
// before proceeding with the operation.
func delRecords(db store.DB, records []models.Record) error {
	if len(records) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printRecordsTable(os.Stdout, records)

	warning := pterm.Warning.Sprint(
		"The above sessions will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(os.Stdout, warning)

	reader := bufio.NewReader(os.Stdin)

	_, _ = reader.ReadString('\n')

	if err := db.DeleteRecords(records); err != nil {
		return err
	}

	slog.Info("sessions deleted", slog.Int("count", len(records)))

	report.RecordsDeleted(len(records))

	return nil
}
