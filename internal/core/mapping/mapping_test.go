package mapping

import (
	"errors"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	Title string
	Body  string
	Pin   string
}

func noteConfig() Config[note] {
	return Config[note]{
		Entity: "note",
		Fields: []Field[note]{
			{
				Name:      "title",
				Callbacks: []Callback{StringFunc(strings.TrimSpace)},
				Rules:     []validation.Rule{validation.Required, validation.Length(5, 50)},
				Assign: func(n *note, v interface{}) error {
					s, err := AsString(v)
					if err != nil {
						return err
					}
					n.Title = s
					return nil
				},
			},
			{
				Name:  "body",
				Rules: []validation.Rule{validation.Required},
				Assign: func(n *note, v interface{}) error {
					s, err := AsString(v)
					if err != nil {
						return err
					}
					n.Body = s
					return nil
				},
			},
			{
				Name:     "pin",
				Optional: true,
				Assign: func(n *note, v interface{}) error {
					s, err := AsString(v)
					if err != nil {
						return err
					}
					n.Pin = s
					return nil
				},
			},
		},
		EditDenied: []string{"pin"},
	}
}

func TestCreatePopulatesEntity(t *testing.T) {
	n, err := Create(`{"title":"  hello world  ","body":"content","pin":"1234"}`, noteConfig())
	require.NoError(t, err)
	assert.Equal(t, "hello world", n.Title) // callback trimmed
	assert.Equal(t, "content", n.Body)
	assert.Equal(t, "1234", n.Pin)
}

func TestCreateMissingRequiredField(t *testing.T) {
	_, err := Create(`{"title":"hello world"}`, noteConfig())

	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "body", missing.Field)
	assert.Equal(t, "note", missing.Entity)
}

func TestCreateMissingOptionalFieldIsSkipped(t *testing.T) {
	n, err := Create(`{"title":"hello world","body":"content"}`, noteConfig())
	require.NoError(t, err)
	assert.Empty(t, n.Pin)
}

func TestCreateInvalidPayloads(t *testing.T) {
	cases := []interface{}{
		`[1,2,3]`,             // sequential list, not string-keyed
		`{}`,                  // empty object
		``,                    // blank
		`"scalar"`,            // not an object
		42,                    // unsupported Go type
		map[string]interface{}{}, // empty map
		nil,
	}

	for _, raw := range cases {
		_, err := Create(raw, noteConfig())
		var invalid *InvalidPayloadError
		assert.ErrorAs(t, err, &invalid, "payload %v", raw)
	}
}

func TestCreateValidationErrorNamesField(t *testing.T) {
	_, err := Create(`{"title":"shrt","body":"content"}`, noteConfig())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
}

func TestCreateShortCircuitsOnFirstFailure(t *testing.T) {
	// title is declared before body: a failing title aborts before body is
	// applied, leaving the entity partially populated.
	cfg := noteConfig()
	n, err := Create(`{"title":"bad","body":"content"}`, cfg)
	require.Error(t, err)
	assert.Empty(t, n.Body)
}

func TestCreateNilAssignIsConfigError(t *testing.T) {
	cfg := Config[note]{
		Entity: "note",
		Fields: []Field[note]{{Name: "title"}},
	}

	_, err := Create(`{"title":"anything"}`, cfg)

	var cerr *ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "title", cerr.Field)
}

func TestCreateUsesConstructor(t *testing.T) {
	cfg := noteConfig()
	cfg.New = func() *note { return &note{Pin: "default"} }

	n, err := Create(`{"title":"hello world","body":"content"}`, cfg)
	require.NoError(t, err)
	assert.Equal(t, "default", n.Pin)
}

func TestUpdateAppliesPresentFields(t *testing.T) {
	n := &note{Title: "old title", Body: "old body"}

	err := Update(`{"body":"new body"}`, n, noteConfig())
	require.NoError(t, err)
	assert.Equal(t, "old title", n.Title)
	assert.Equal(t, "new body", n.Body)
}

func TestUpdateSkipsBlankValues(t *testing.T) {
	n := &note{Title: "old title", Body: "old body"}

	err := Update(`{"body":""}`, n, noteConfig())
	require.NoError(t, err)
	assert.Equal(t, "old body", n.Body)
}

func TestUpdateNeverTouchesEditDeniedFields(t *testing.T) {
	n := &note{Pin: "1234"}

	err := Update(`{"pin":"9999","body":"new body"}`, n, noteConfig())
	require.NoError(t, err)
	assert.Equal(t, "1234", n.Pin)
	assert.Equal(t, "new body", n.Body)
}

func TestUpdateRejectsInvalidPayload(t *testing.T) {
	n := &note{}
	err := Update(`[]`, n, noteConfig())

	var invalid *InvalidPayloadError
	assert.ErrorAs(t, err, &invalid)
}

func TestCallbackErrorBecomesValidationError(t *testing.T) {
	_, err := Create(`{"title":5,"body":"content"}`, noteConfig())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
	assert.True(t, errors.As(err, &verr))
}
