// Code generated by ent, DO NOT EDIT.

package generationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the generationevent type in the database.
	Label = "generation_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldUnitName holds the string denoting the unit_name field in the database.
	FieldUnitName = "unit_name"
	// FieldTopics holds the string denoting the topics field in the database.
	FieldTopics = "topics"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldRequestedCount holds the string denoting the requested_count field in the database.
	FieldRequestedCount = "requested_count"
	// FieldReturnedCount holds the string denoting the returned_count field in the database.
	FieldReturnedCount = "returned_count"
	// FieldModel holds the string denoting the model field in the database.
	FieldModel = "model"
	// FieldLatencyMs holds the string denoting the latency_ms field in the database.
	FieldLatencyMs = "latency_ms"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the generationevent in the database.
	Table = "generation_events"
)

// Columns holds all SQL columns for generationevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSubject,
	FieldUnitName,
	FieldTopics,
	FieldDifficulty,
	FieldRequestedCount,
	FieldReturnedCount,
	FieldModel,
	FieldLatencyMs,
	FieldSuccess,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultReturnedCount holds the default value on creation for the "returned_count" field.
	DefaultReturnedCount int
	// DefaultModel holds the default value on creation for the "model" field.
	DefaultModel string
	// DefaultLatencyMs holds the default value on creation for the "latency_ms" field.
	DefaultLatencyMs int64
	// DefaultErrorMessage holds the default value on creation for the "error_message" field.
	DefaultErrorMessage string
)

// OrderOption defines the ordering options for the GenerationEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByUnitName orders the results by the unit_name field.
func ByUnitName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnitName, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByRequestedCount orders the results by the requested_count field.
func ByRequestedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequestedCount, opts...).ToFunc()
}

// ByReturnedCount orders the results by the returned_count field.
func ByReturnedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReturnedCount, opts...).ToFunc()
}

// ByModel orders the results by the model field.
func ByModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModel, opts...).ToFunc()
}

// ByLatencyMs orders the results by the latency_ms field.
func ByLatencyMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLatencyMs, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
