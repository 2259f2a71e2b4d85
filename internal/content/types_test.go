package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantSet bool
		wantErr bool
	}{
		{input: `3`, want: 3, wantSet: true},
		{input: `2.0`, want: 2, wantSet: true},
		{input: `"4"`, want: 4, wantSet: true},
		{input: `" 7 "`, want: 7, wantSet: true},
		{input: `""`},
		{input: `null`},
		{input: `"first"`, wantErr: true},
		{input: `true`, wantErr: true},
		{input: `"-5"`, want: -5, wantSet: true},
		{input: `1e300`, wantErr: true},
		{input: `-1e300`, wantErr: true},
		{input: `"1e300"`, wantErr: true},
		{input: `"NaN"`, wantErr: true},
		{input: `"Inf"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var o Order
			err := json.Unmarshal([]byte(tt.input), &o)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			v, set := o.Value()
			assert.Equal(t, tt.wantSet, set)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestOrder_MissingField(t *testing.T) {
	var m StatisticMeta
	require.NoError(t, json.Unmarshal([]byte(`{"statistic_value":"4M+"}`), &m))
	_, set := m.DisplayOrder.Value()
	assert.False(t, set)
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  StringList
	}{
		{"array", `["Email support","Mobile app access"]`, StringList{"Email support", "Mobile app access"}},
		{"newline text", `"Email support\n\n  Mobile app access  \n"`, StringList{"Email support", "Mobile app access"}},
		{"null", `null`, nil},
		{"empty text", `""`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			require.NoError(t, json.Unmarshal([]byte(tt.input), &l))
			assert.Equal(t, tt.want, l)
		})
	}

	var l StringList
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &l))
}

func TestFlag_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input   string
		want    Flag
		wantErr bool
	}{
		{input: `true`, want: true},
		{input: `false`},
		{input: `"true"`, want: true},
		{input: `"FALSE"`},
		{input: `null`},
		{input: `""`},
		{input: `"maybe"`, wantErr: true},
		{input: `1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f Flag
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, f)
		})
	}
}

func TestImageRef(t *testing.T) {
	var meta FeatureMeta
	require.NoError(t, json.Unmarshal([]byte(`{"icon":{"url":"https://cdn.cosmicjs.com/a.png","imgix_url":"https://imgix.cosmicjs.com/a.png"}}`), &meta))
	assert.Equal(t, "https://imgix.cosmicjs.com/a.png", meta.Icon.Src())

	require.NoError(t, json.Unmarshal([]byte(`{"icon":{"url":"https://cdn.cosmicjs.com/b.png"}}`), &meta))
	assert.Equal(t, "https://cdn.cosmicjs.com/b.png", meta.Icon.Src())

	require.NoError(t, json.Unmarshal([]byte(`{"icon":"/images/c.png"}`), &meta))
	assert.Equal(t, "/images/c.png", meta.Icon.Src())

	meta = FeatureMeta{}
	require.NoError(t, json.Unmarshal([]byte(`{"icon":null}`), &meta))
	assert.Nil(t, meta.Icon)
	assert.Empty(t, meta.Icon.Src())
}

func TestOption(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKey   string
		wantLabel string
	}{
		{"key and value", `{"key":"hr-systems","value":"HR Systems"}`, "hr-systems", "HR Systems"},
		{"value only", `{"value":"Security"}`, "Security", "Security"},
		{"key only", `{"key":"crm"}`, "crm", "crm"},
		{"bare string", `"Communication"`, "Communication", "Communication"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Option
			require.NoError(t, json.Unmarshal([]byte(tt.input), &o))
			assert.Equal(t, tt.wantKey, o.Key)
			assert.Equal(t, tt.wantLabel, o.Label())
		})
	}

	var missing *Option
	assert.Empty(t, missing.Label())
}

func TestHomepageSectionMeta_Kind(t *testing.T) {
	var m HomepageSectionMeta
	assert.Empty(t, m.Kind())

	require.NoError(t, json.Unmarshal([]byte(`{"section_type":{"key":"Hero","value":"Hero Banner"}}`), &m))
	assert.Equal(t, SectionHero, m.Kind())

	require.NoError(t, json.Unmarshal([]byte(`{"section_type":"cta"}`), &m))
	assert.Equal(t, SectionCTA, m.Kind())
}

func TestObject_NullMetadata(t *testing.T) {
	var s Solution
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","title":"For Businesses","metadata":null}`), &s))
	assert.Equal(t, "For Businesses", s.Title)
	assert.Nil(t, s.Metadata.Category)
}
