package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{`{"smoker": true}`, true},
		{`{"smoker": false}`, false},
		{`{"smoker": 1}`, true},
		{`{"smoker": 0}`, false},
		{`{"smoker": "1"}`, true},
		{`{"smoker": "true"}`, true},
		{`{"smoker": null}`, false},
		{`{}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req SaveDigestiveRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, bool(req.Smoker))
		})
	}
}

func TestFlexibleBool_RejectsGarbage(t *testing.T) {
	var req SaveDigestiveRequest
	err := json.Unmarshal([]byte(`{"smoker": "sometimes"}`), &req)
	assert.Error(t, err)
}

func TestListQuery_Normalize(t *testing.T) {
	q := ListQuery{}
	q.Normalize()
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, DefaultPageLimit, q.Limit)
	assert.Equal(t, 0, q.Offset())

	q = ListQuery{Page: 3, Limit: 1000}
	q.Normalize()
	assert.Equal(t, MaxPageLimit, q.Limit)
	assert.Equal(t, 2*MaxPageLimit, q.Offset())
}
