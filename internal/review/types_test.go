package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	data := []byte(`{
		"code_snippet": "def f():\n    pass",
		"review_comments": ["too slow", "bad name"]
	}`)

	req, err := ParseRequest(data)
	require.NoError(t, err)
	assert.Equal(t, "def f():\n    pass", req.CodeSnippet)
	assert.Equal(t, []string{"too slow", "bad name"}, req.ReviewComments)
}

func TestParseRequest_EmptyComments(t *testing.T) {
	req, err := ParseRequest([]byte(`{"code_snippet": "x=1", "review_comments": []}`))
	require.NoError(t, err)
	assert.NotNil(t, req.ReviewComments)
	assert.Empty(t, req.ReviewComments)
}

func TestParseRequest_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing code_snippet", `{"review_comments": []}`},
		{"missing review_comments", `{"code_snippet": "x=1"}`},
		{"comments not an array", `{"code_snippet": "x=1", "review_comments": "nope"}`},
		{"comments is an object", `{"code_snippet": "x=1", "review_comments": {}}`},
		{"comments is null", `{"code_snippet": "x=1", "review_comments": null}`},
		{"empty document", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest([]byte(tt.data))
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestParseRequest_MalformedJSON(t *testing.T) {
	_, err := ParseRequest([]byte(`{not json`))
	require.Error(t, err)
	var verr *ValidationError
	assert.NotErrorAs(t, err, &verr, "malformed JSON is a decode error, not a validation error")
}

func TestParseRequest_EmptySnippetAllowed(t *testing.T) {
	req, err := ParseRequest([]byte(`{"code_snippet": "", "review_comments": ["hm"]}`))
	require.NoError(t, err)
	assert.Equal(t, "", req.CodeSnippet)
}
