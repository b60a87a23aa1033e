package store

import "github.com/ayoisaiah/focusquest/internal/apperr"

var (
	errFocusRunning = &apperr.Error{
		Message: "is focusquest already running? Only one instance can be active at a time",
	}

	errReadState = &apperr.Error{
		Message: "reading saved progress failed",
	}

	errWriteState = &apperr.Error{
		Message: "saving progress failed",
	}

	errImport = &apperr.Error{
		Message: "importing progress failed",
	}

	errInvalidDocument = &apperr.Error{
		Message: "the document is not valid JSON",
	}
)
