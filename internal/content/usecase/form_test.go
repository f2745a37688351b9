package usecase_test

import (
	"testing"

	"clubsite/internal/content/domain/model"
	"clubsite/internal/content/usecase"
	apperrors "clubsite/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var formFields = []model.Field{
	{Key: "id", Label: "ID", Type: model.FieldText, Required: true},
	{Key: "bio", Label: "BIO", Type: model.FieldTextarea},
	{Key: "status", Label: "STATUS", Type: model.FieldSelect, Options: []string{"ONLINE", "OFFLINE"}, Required: true},
	{Key: "impact", Label: "IMPACT", Type: model.FieldNumber},
	{Key: "tags", Label: "TAGS", Type: model.FieldArray},
}

func TestZeroRecord(t *testing.T) {
	record := usecase.ZeroRecord(formFields)

	assert.Equal(t, "", record["id"])
	assert.Equal(t, "", record["bio"])
	assert.Equal(t, "", record["status"])
	assert.Equal(t, float64(0), record["impact"])
	assert.Equal(t, []string{}, record["tags"])
}

func TestZeroRecord_UnknownTypePanics(t *testing.T) {
	assert.Panics(t, func() {
		usecase.ZeroRecord([]model.Field{{Key: "x", Type: model.FieldType(99)}})
	})
}

func TestDecodeForm_Valid(t *testing.T) {
	record, err := usecase.DecodeForm(formFields, model.Row{
		"id":     "m1",
		"status": "ONLINE",
		"impact": "3",
		"tags":   "defi, l2",
	})
	require.NoError(t, err)

	assert.Equal(t, "m1", record["id"])
	assert.Equal(t, "ONLINE", record["status"])
	assert.Equal(t, float64(3), record["impact"])
	assert.Equal(t, []string{"defi", "l2"}, record["tags"])
}

func TestDecodeForm_RequiredFieldMissing(t *testing.T) {
	_, err := usecase.DecodeForm(formFields, model.Row{"status": "ONLINE"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "id")
}

func TestDecodeForm_SelectRejectsUnknownOption(t *testing.T) {
	_, err := usecase.DecodeForm(formFields, model.Row{"id": "m1", "status": "AWAY"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDecodeForm_NumberParsing(t *testing.T) {
	record, err := usecase.DecodeForm(formFields, model.Row{"id": "m1", "status": "ONLINE", "impact": float64(2)})
	require.NoError(t, err)
	assert.Equal(t, float64(2), record["impact"])

	// Absent optional number decodes to zero.
	record, err = usecase.DecodeForm(formFields, model.Row{"id": "m1", "status": "ONLINE"})
	require.NoError(t, err)
	assert.Equal(t, float64(0), record["impact"])

	_, err = usecase.DecodeForm(formFields, model.Row{"id": "m1", "status": "ONLINE", "impact": "abc"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestDecodeForm_DropsUndeclaredKeys(t *testing.T) {
	record, err := usecase.DecodeForm(formFields, model.Row{
		"id":       "m1",
		"status":   "ONLINE",
		"password": "nope",
	})
	require.NoError(t, err)
	_, present := record["password"]
	assert.False(t, present)
}

func TestArrayFieldRoundTrip(t *testing.T) {
	parsed := model.SplitArray("a, b ,c,,  ")
	assert.Equal(t, []string{"a", "b", "c"}, parsed)

	joined := model.JoinArray(parsed)
	assert.Equal(t, "a, b, c", joined)

	// parse(serialize(list)) == list for canonical lists.
	assert.Equal(t, parsed, model.SplitArray(joined))
}
