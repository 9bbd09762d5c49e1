package dto

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festa/internal/form/answer"
	dErrors "festa/pkg/domain-errors"
)

const formYAML = `
id: 7f0c9d4e-0c3a-4a5e-9d55-1f1b0f6f2a01
author_id: 5b7e6f3a-2d7c-4c43-8f7b-3a4e2b1c0d02
created_at: 2026-09-01T00:00:00Z
updated_at: 2026-09-01T00:00:00Z
name: 模擬店調査
starts_at: 2026-10-01T00:00:00Z
ends_at: 2026-10-08T00:00:00Z
condition:
  query:
    - category: cooking
      attributes: [outdoor]
  includes: [0d7c2a91-55d8-4a7e-b1f5-6d3e2c1b0a03]
items:
  - id: 1a2b3c4d-0000-4000-8000-000000000001
    name: 火気の使用
    body:
      type: radio
      is_required: true
      buttons:
        - {id: 1a2b3c4d-0000-4000-8000-0000000000a1, label: 使用する}
        - {id: 1a2b3c4d-0000-4000-8000-0000000000a2, label: 使用しない}
  - id: 1a2b3c4d-0000-4000-8000-000000000002
    name: 使用する機器
    conditions:
      - - type: radio
          item_id: 1a2b3c4d-0000-4000-8000-000000000001
          button_id: 1a2b3c4d-0000-4000-8000-0000000000a1
          expected: true
    body:
      type: checkbox
      min_checks: 1
      max_checks: 2
      boxes:
        - {id: 1a2b3c4d-0000-4000-8000-0000000000b1, label: ガスコンロ}
        - {id: 1a2b3c4d-0000-4000-8000-0000000000b2, label: 鉄板}
        - {id: 1a2b3c4d-0000-4000-8000-0000000000b3, label: 炭火}
`

const answerYAML = `
- item_id: 1a2b3c4d-0000-4000-8000-000000000001
  body: {type: radio, selected: 1a2b3c4d-0000-4000-8000-0000000000a1}
- item_id: 1a2b3c4d-0000-4000-8000-000000000002
  body:
    type: checkbox
    checks: [1a2b3c4d-0000-4000-8000-0000000000b1, 1a2b3c4d-0000-4000-8000-0000000000b2, 1a2b3c4d-0000-4000-8000-0000000000b3]
`

func decodeForm(t *testing.T) Form {
	t.Helper()
	var f Form
	require.NoError(t, DecodeBytes([]byte(formYAML), FormatYAML, &f))
	return f
}

func TestForm_YAMLToModel(t *testing.T) {
	doc := decodeForm(t)
	form, err := doc.ToModel()
	require.NoError(t, err)

	assert.Equal(t, "模擬店調査", form.Name)
	assert.Equal(t, 2, form.Items.Len())
	assert.True(t, form.IsOpenAt(time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, form.Condition.Includes.Len())
	assert.True(t, form.Items.At(1).HasConditions())
}

func TestForm_RoundTripThroughBothFormats(t *testing.T) {
	form, err := decodeForm(t).ToModel()
	require.NoError(t, err)
	want := FromForm(form)

	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, format, want))

			var got Form
			require.NoError(t, Decode(&buf, format, &got))
			rebuilt, err := got.ToModel()
			require.NoError(t, err)

			if diff := cmp.Diff(want, FromForm(rebuilt), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("form changed through %s (-want +got):\n%s", format, diff)
			}
		})
	}
}

func TestAnswer_CheckAgainstDecodedForm(t *testing.T) {
	form, err := decodeForm(t).ToModel()
	require.NoError(t, err)

	var doc Answer
	require.NoError(t, DecodeBytes([]byte(answerYAML), FormatYAML, &doc))
	ans, err := doc.ToModel()
	require.NoError(t, err)

	e, ok := answer.AsError(answer.Check(form.Items, ans))
	require.True(t, ok)
	assert.Equal(t, answer.KindTooManyChecks, e.Kind)

	out := FromCheckError(e)
	assert.Equal(t, "too_many_checks", out.Error)
	require.NotNil(t, out.ItemID)
	assert.Equal(t, "1a2b3c4d-0000-4000-8000-000000000002", out.ItemID.String())
}

func TestAnswer_RoundTrip(t *testing.T) {
	var doc Answer
	require.NoError(t, DecodeBytes([]byte(answerYAML), FormatYAML, &doc))
	ans, err := doc.ToModel()
	require.NoError(t, err)

	if diff := cmp.Diff(doc, FromAnswer(ans)); diff != "" {
		t.Errorf("answer changed (-want +got):\n%s", diff)
	}
}

func TestDecode_RejectsInvalidDocuments(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		var f Form
		err := DecodeBytes([]byte("name: x\nsurprise: true\n"), FormatYAML, &f)
		assert.Error(t, err)
	})

	t.Run("unknown item type", func(t *testing.T) {
		_, err := ItemBody{Type: "slider"}.ToModel()
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("condition without choice id", func(t *testing.T) {
		_, err := Condition{Type: "checkbox"}.ToModel()
		assert.Error(t, err)
	})

	t.Run("duplicated checks", func(t *testing.T) {
		doc := strings.Replace(answerYAML, "0000000000b2", "0000000000b1", 1)
		var a Answer
		require.NoError(t, DecodeBytes([]byte(doc), FormatYAML, &a))
		_, err := a.ToModel()
		assert.Error(t, err)
	})

	t.Run("invalid project attribute", func(t *testing.T) {
		_, err := ProjectFacts{Category: "stage", Attributes: []string{"loud"}}.ToTarget()
		assert.Error(t, err)
	})
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("form.JSON"))
	assert.Equal(t, FormatYAML, FormatFromPath("form.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("form"))
}
