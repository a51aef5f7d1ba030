package model

import (
	"encoding/json"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want StringList
	}{
		{name: "null", src: nil, want: StringList{}},
		{name: "empty string", src: "", want: StringList{}},
		{name: "string", src: `["A","B"]`, want: StringList{"A", "B"}},
		{name: "bytes", src: []byte(`["x"]`), want: StringList{"x"}},
		{name: "json null", src: "null", want: StringList{}},
		{name: "malformed", src: `["A",`, want: StringList{}},
		{name: "wrong shape", src: `{"a":1}`, want: StringList{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			require.NoError(t, l.Scan(tt.src))
			assert.Equal(t, tt.want, l)
		})
	}

	var l StringList
	assert.Error(t, l.Scan(42))
}

func TestStringList_Value(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = StringList{"A", "B"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["A","B"]`, v)

	v, err = StringList{}.Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestStringList_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Tags StringList `json:"tags"`
	}{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":[]}`, string(b))
}

func TestOmittedFieldsDecodeAsNil(t *testing.T) {
	var s Speaker
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Jane Doe","company":"Acme"}`), &s))

	assert.Equal(t, "Jane Doe", s.Name)
	require.NotNil(t, s.Company)
	assert.Equal(t, "Acme", *s.Company)
	assert.Nil(t, s.Img)
	assert.Nil(t, s.Title)
	assert.Zero(t, s.ID)
}

func TestEntityValidate(t *testing.T) {
	tests := []struct {
		name    string
		entity  Entity
		wantErr string
		wantTag string
	}{
		{name: "speaker ok", entity: &Speaker{Name: "Jane Doe"}},
		{name: "speaker missing name", entity: &Speaker{}, wantErr: "name", wantTag: "required"},
		{name: "speaker blank name", entity: &Speaker{Name: "  \t "}, wantErr: "name", wantTag: "notblank"},
		{name: "event missing title", entity: &Event{}, wantErr: "title", wantTag: "required"},
		{name: "event blank title", entity: &Event{Title: "   "}, wantErr: "title", wantTag: "notblank"},
		{name: "vault ok", entity: &InnovationVault{Title: "AI sourcing"}},
		{name: "report missing title", entity: &ExclusiveIntelligenceReport{}, wantErr: "title", wantTag: "required"},
		{name: "partner missing name", entity: &VipRecruitmentPartner{}, wantErr: "name", wantTag: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.wantErr, verrs[0].Field())
			assert.Equal(t, tt.wantTag, verrs[0].Tag())
		})
	}
}

func TestBaseMetaAndJSON(t *testing.T) {
	e := &Event{Title: "Summit"}
	e.Meta().ID = 7

	b, err := json.Marshal(e)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.EqualValues(t, 7, out["id"])
	assert.NotContains(t, out, "deleted_at")
	assert.Equal(t, []any{}, out["speakers"])
	assert.Nil(t, out["overview"])
}

func TestIsLookupTable(t *testing.T) {
	assert.True(t, IsLookupTable("industries"))
	assert.False(t, IsLookupTable("users"))
}

func TestEntityLabel(t *testing.T) {
	assert.Equal(t, "Jane Doe", (&Speaker{Name: "Jane Doe"}).Label())
	assert.Equal(t, "Procurement Summit", (&Event{Title: "Procurement Summit"}).Label())
	assert.Equal(t, "Q3 Outlook", (&ExclusiveIntelligenceReport{Title: "Q3 Outlook"}).Label())
}
