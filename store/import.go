package store

import (
	"encoding/json"
	"io"

	"github.com/ayoisaiah/focusquest/internal/models"
)

// ImportRecord reads a progress document exported from the browser version
// of the game (the JSON value of its local storage entry) and saves it as
// the current record. Fields that cannot be used fall back to their
// defaults.
func ImportRecord(db DB, r io.Reader) (models.Record, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return models.Record{}, errImport.Wrap(err)
	}

	if !json.Valid(b) {
		return models.Record{}, errImport.Wrap(errInvalidDocument)
	}

	rec := models.DecodeRecord(b)

	err = db.SaveRecord(rec)
	if err != nil {
		return models.Record{}, err
	}

	return rec, nil
}
