// Code generated by ent, DO NOT EDIT.

package generationevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/fkadir-guler19/soru-canavari-5-sinif-pro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldSubject, v))
}

// UnitName applies equality check predicate on the "unit_name" field. It's identical to UnitNameEQ.
func UnitName(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldUnitName, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldDifficulty, v))
}

// RequestedCount applies equality check predicate on the "requested_count" field. It's identical to RequestedCountEQ.
func RequestedCount(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldRequestedCount, v))
}

// ReturnedCount applies equality check predicate on the "returned_count" field. It's identical to ReturnedCountEQ.
func ReturnedCount(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldReturnedCount, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldModel, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// Success applies equality check predicate on the "success" field. It's identical to SuccessEQ.
func Success(v bool) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldSuccess, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContainsFold(FieldSubject, v))
}

// UnitNameEQ applies the EQ predicate on the "unit_name" field.
func UnitNameEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldUnitName, v))
}

// UnitNameNEQ applies the NEQ predicate on the "unit_name" field.
func UnitNameNEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldUnitName, v))
}

// UnitNameIn applies the In predicate on the "unit_name" field.
func UnitNameIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldUnitName, vs...))
}

// UnitNameNotIn applies the NotIn predicate on the "unit_name" field.
func UnitNameNotIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldUnitName, vs...))
}

// UnitNameGT applies the GT predicate on the "unit_name" field.
func UnitNameGT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldUnitName, v))
}

// UnitNameGTE applies the GTE predicate on the "unit_name" field.
func UnitNameGTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldUnitName, v))
}

// UnitNameLT applies the LT predicate on the "unit_name" field.
func UnitNameLT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldUnitName, v))
}

// UnitNameLTE applies the LTE predicate on the "unit_name" field.
func UnitNameLTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldUnitName, v))
}

// UnitNameContains applies the Contains predicate on the "unit_name" field.
func UnitNameContains(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContains(FieldUnitName, v))
}

// UnitNameHasPrefix applies the HasPrefix predicate on the "unit_name" field.
func UnitNameHasPrefix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasPrefix(FieldUnitName, v))
}

// UnitNameHasSuffix applies the HasSuffix predicate on the "unit_name" field.
func UnitNameHasSuffix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasSuffix(FieldUnitName, v))
}

// UnitNameEqualFold applies the EqualFold predicate on the "unit_name" field.
func UnitNameEqualFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEqualFold(FieldUnitName, v))
}

// UnitNameContainsFold applies the ContainsFold predicate on the "unit_name" field.
func UnitNameContainsFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContainsFold(FieldUnitName, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// RequestedCountEQ applies the EQ predicate on the "requested_count" field.
func RequestedCountEQ(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldRequestedCount, v))
}

// RequestedCountNEQ applies the NEQ predicate on the "requested_count" field.
func RequestedCountNEQ(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldRequestedCount, v))
}

// RequestedCountIn applies the In predicate on the "requested_count" field.
func RequestedCountIn(vs ...int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldRequestedCount, vs...))
}

// RequestedCountNotIn applies the NotIn predicate on the "requested_count" field.
func RequestedCountNotIn(vs ...int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldRequestedCount, vs...))
}

// RequestedCountGT applies the GT predicate on the "requested_count" field.
func RequestedCountGT(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldRequestedCount, v))
}

// RequestedCountGTE applies the GTE predicate on the "requested_count" field.
func RequestedCountGTE(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldRequestedCount, v))
}

// RequestedCountLT applies the LT predicate on the "requested_count" field.
func RequestedCountLT(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldRequestedCount, v))
}

// RequestedCountLTE applies the LTE predicate on the "requested_count" field.
func RequestedCountLTE(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldRequestedCount, v))
}

// ReturnedCountEQ applies the EQ predicate on the "returned_count" field.
func ReturnedCountEQ(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldReturnedCount, v))
}

// ReturnedCountNEQ applies the NEQ predicate on the "returned_count" field.
func ReturnedCountNEQ(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldReturnedCount, v))
}

// ReturnedCountIn applies the In predicate on the "returned_count" field.
func ReturnedCountIn(vs ...int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldReturnedCount, vs...))
}

// ReturnedCountNotIn applies the NotIn predicate on the "returned_count" field.
func ReturnedCountNotIn(vs ...int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldReturnedCount, vs...))
}

// ReturnedCountGT applies the GT predicate on the "returned_count" field.
func ReturnedCountGT(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldReturnedCount, v))
}

// ReturnedCountGTE applies the GTE predicate on the "returned_count" field.
func ReturnedCountGTE(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldReturnedCount, v))
}

// ReturnedCountLT applies the LT predicate on the "returned_count" field.
func ReturnedCountLT(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldReturnedCount, v))
}

// ReturnedCountLTE applies the LTE predicate on the "returned_count" field.
func ReturnedCountLTE(v int) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldReturnedCount, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContainsFold(FieldModel, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int64) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldLatencyMs, v))
}

// SuccessEQ applies the EQ predicate on the "success" field.
func SuccessEQ(v bool) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldSuccess, v))
}

// SuccessNEQ applies the NEQ predicate on the "success" field.
func SuccessNEQ(v bool) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldSuccess, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GenerationEvent) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GenerationEvent) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GenerationEvent) predicate.GenerationEvent {
	return predicate.GenerationEvent(sql.NotPredicates(p))
}
