package model

import (
	"math"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_MarshalJSON_KeepsColumnOrder(t *testing.T) {
	r := Record{
		Columns: []string{"title", "description", "price", "id"},
		Values:  []any{"Rajdhani", "NDLS to LTT", "2450.00", int64(7)},
	}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Rajdhani","description":"NDLS to LTT","price":"2450.00","id":7}`, string(b))
}

func TestRecord_MarshalJSON_Values(t *testing.T) {
	ts := time.Date(2024, 12, 14, 6, 30, 0, 0, time.UTC)
	r := Record{
		Columns: []string{"a", "b", "c"},
		Values:  []any{nil, true, ts},
	}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"a":null,"b":true,"c":"2024-12-14T06:30:00Z"}`, string(b))
}

func TestRecord_MarshalJSON_NonFiniteFloats(t *testing.T) {
	r := Record{
		Columns: []string{"nan", "inf", "ninf", "f32", "ok"},
		Values:  []any{math.NaN(), math.Inf(1), math.Inf(-1), float32(math.Inf(1)), 1210.5},
	}

	b, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"nan":null,"inf":null,"ninf":null,"f32":null,"ok":1210.5}`, string(b))
}

func TestRecord_MarshalJSON_Empty(t *testing.T) {
	b, err := json.Marshal(Record{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))

	b, err = json.Marshal([]Record{})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(b))
}

func TestRecord_Get(t *testing.T) {
	r := Record{Columns: []string{"title", "price"}, Values: []any{"A", 5}}

	v, ok := r.Get("price")
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestDecodeCard(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Card
		wantErr bool
	}{
		{
			name: "numeric price kept verbatim",
			raw:  `{"title":"A","description":"B","price":5}`,
			want: Card{Title: "A", Description: "B", Price: "5"},
		},
		{
			name: "text price and decimal precision",
			raw:  `{"title":"Duronto","description":"overnight","price":"1210.50"}`,
			want: Card{Title: "Duronto", Description: "overnight", Price: "1210.50"},
		},
		{
			name: "markup is not escaped",
			raw:  `{"title":"<em>A</em>","description":"B","price":1.25}`,
			want: Card{Title: "<em>A</em>", Description: "B", Price: "1.25"},
		},
		{
			name: "nulls and missing fields render empty",
			raw:  `{"title":null,"price":0}`,
			want: Card{Price: "0"},
		},
		{
			name: "extra columns ignored",
			raw:  `{"pid":1,"title":"A","description":"B","price":5,"train_number":"12951"}`,
			want: Card{Title: "A", Description: "B", Price: "5"},
		},
		{name: "null record", raw: `null`, wantErr: true},
		{name: "number record", raw: `42`, wantErr: true},
		{name: "string record", raw: `"card"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeCard([]byte(tt.raw))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotObject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
