package answer

import (
	"errors"
	"fmt"

	id "festa/pkg/domain"
)

// ErrorKind is the machine-readable reason an answer was rejected.
type ErrorKind string

const (
	KindMismatchedItemsLength ErrorKind = "mismatched_items_length"
	KindMismatchedItemID      ErrorKind = "mismatched_item_id"
	KindMismatchedItemType    ErrorKind = "mismatched_item_type"
	KindUnexpectedAnswer      ErrorKind = "unexpected_answer"

	KindNotAnsweredWithCondition    ErrorKind = "not_answered_with_condition"
	KindNotAnsweredWithoutCondition ErrorKind = "not_answered_without_condition"

	KindNotAnsweredText            ErrorKind = "not_answered_text"
	KindTooShortText               ErrorKind = "too_short_text"
	KindTooLongText                ErrorKind = "too_long_text"
	KindNotAllowedMultipleLineText ErrorKind = "not_allowed_multiple_line_text"

	KindNotAnsweredInteger ErrorKind = "not_answered_integer"
	KindTooSmallInteger    ErrorKind = "too_small_integer"
	KindTooBigInteger      ErrorKind = "too_big_integer"

	KindTooFewChecks      ErrorKind = "too_few_checks"
	KindTooManyChecks     ErrorKind = "too_many_checks"
	KindUnknownCheckboxID ErrorKind = "unknown_checkbox_id"

	KindNotAnsweredRadio ErrorKind = "not_answered_radio"
	KindUnknownRadioID   ErrorKind = "unknown_radio_id"

	KindMismatchedGridRadioRowsLength       ErrorKind = "mismatched_grid_radio_rows_length"
	KindMismatchedGridRadioRowID            ErrorKind = "mismatched_grid_radio_row_id"
	KindUnknownGridRadioColumnID            ErrorKind = "unknown_grid_radio_column_id"
	KindNotAnsweredGridRadioRows            ErrorKind = "not_answered_grid_radio_rows"
	KindNotAllowedDuplicatedGridRadioColumn ErrorKind = "not_allowed_duplicated_grid_radio_column"

	KindNotAnsweredFile         ErrorKind = "not_answered_file"
	KindNotAllowedMultipleFiles ErrorKind = "not_allowed_multiple_files"
	KindNotAllowedFileType      ErrorKind = "not_allowed_file_type"
)

// Kinds lists every ErrorKind, for metrics label pre-registration and exhaustive tests.
func Kinds() []ErrorKind {
	return []ErrorKind{
		KindMismatchedItemsLength, KindMismatchedItemID, KindMismatchedItemType, KindUnexpectedAnswer,
		KindNotAnsweredWithCondition, KindNotAnsweredWithoutCondition,
		KindNotAnsweredText, KindTooShortText, KindTooLongText, KindNotAllowedMultipleLineText,
		KindNotAnsweredInteger, KindTooSmallInteger, KindTooBigInteger,
		KindTooFewChecks, KindTooManyChecks, KindUnknownCheckboxID,
		KindNotAnsweredRadio, KindUnknownRadioID,
		KindMismatchedGridRadioRowsLength, KindMismatchedGridRadioRowID, KindUnknownGridRadioColumnID,
		KindNotAnsweredGridRadioRows, KindNotAllowedDuplicatedGridRadioColumn,
		KindNotAnsweredFile, KindNotAllowedMultipleFiles, KindNotAllowedFileType,
	}
}

// Error is a rejected answer. ItemID is zero only for MismatchedItemsLength.
// Expected and Got are filled for the mismatch kinds; ColumnID for the grid column kinds.
type Error struct {
	Kind     ErrorKind
	ItemID   id.FormItemID
	Expected string
	Got      string
	ColumnID *id.GridRadioColumnID
}

func (e *Error) Error() string {
	msg := "answer rejected: " + string(e.Kind)
	if e.ItemID != (id.FormItemID{}) {
		msg += " at item " + e.ItemID.String()
	}
	if e.Expected != "" || e.Got != "" {
		msg += fmt.Sprintf(" (expected %s, got %s)", e.Expected, e.Got)
	}
	if e.ColumnID != nil {
		msg += " column " + e.ColumnID.String()
	}
	return msg
}

// AsError extracts an *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func itemError(kind ErrorKind, itemID id.FormItemID) *Error {
	return &Error{Kind: kind, ItemID: itemID}
}
